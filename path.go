package fstree

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"slices"
	"strings"
)

// Path string syntax tokens.
const (
	Root   = "/"
	Sep    = "/"
	CurDir = "."
	ParDir = ".."
)

// Path is an immutable tree path: an ordered segment list, an
// absolute/relative flag, and a count of retained leading ".." references.
//
// Absolute paths are rooted at the tree root and never retain parent
// references; ".." at the root stays at the root. Relative paths keep
// leading ".." segments they cannot cancel locally, with exactly the first
// ParentCount segments holding the literal ".." marker.
//
// The zero value is the empty relative path, which renders as ".".
type Path struct {
	elems    []string
	absolute bool
	parents  int
}

// ParsePath parses and normalizes a path string.
//
// It performs the following transformations:
//   - Empty and "." segments are dropped: "a//./b" → "a/b"
//   - ".." cancels the preceding segment: "/a/b/../c" → "/a/c"
//   - ".." at the root of an absolute path is dropped: "/../a" → "/a"
//   - Uncancelable ".." on a relative path is retained and counted:
//     "../../x" → parents 2, segments [.., .., x]
//
// The result is absolute iff s begins with "/".
func ParsePath(s string) Path {
	return parsePath(s, nil)
}

// ResolvePath parses s interpreted relative to base.
//
// If s is absolute, base is ignored and the result equals ParsePath(s).
// Otherwise the working segments are seeded with base's segments and the
// result is absolute; leading ".." in s cancels against base.
func ResolvePath(s string, base Path) Path {
	return parsePath(s, &base)
}

// PathFromSegments builds a Path from pre-normalized segments. The parent
// count is recomputed from leading ".." markers; segments are not otherwise
// reparsed. Absolute paths never carry parent references.
func PathFromSegments(segs []string, absolute bool) Path {
	elems := slices.Clone(segs)
	parents := 0
	if !absolute {
		for _, e := range elems {
			if e != ParDir {
				break
			}
			parents++
		}
	}
	return Path{elems: elems, absolute: absolute, parents: parents}
}

func parsePath(s string, base *Path) Path {
	var elems []string
	absolute := strings.HasPrefix(s, Root)
	if !absolute && base != nil {
		absolute = true
		elems = append(elems, base.elems...)
	}

	parents := 0
	for _, elem := range strings.Split(s, Sep) {
		if elem == "" || elem == CurDir {
			continue
		}
		if elem == ParDir {
			if absolute || (len(elems) > 0 && elems[len(elems)-1] != ParDir) {
				// Cancel against the last segment; at the root of an
				// absolute path there is nothing to cancel and the
				// reference is dropped.
				if len(elems) > 0 {
					elems = elems[:len(elems)-1]
				}
			} else {
				elems = append(elems, ParDir)
				parents++
			}
			continue
		}
		elems = append(elems, elem)
	}

	return Path{elems: elems, absolute: absolute, parents: parents}
}

// IsAbsolute reports whether the path is rooted at the tree root.
func (p Path) IsAbsolute() bool { return p.absolute }

// ParentCount returns the number of retained leading ".." references.
func (p Path) ParentCount() int { return p.parents }

// Len returns the number of segments, including retained ".." markers.
func (p Path) Len() int { return len(p.elems) }

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string { return slices.Clone(p.elems) }

// Parents returns the portion of the path which traverses the parents.
func (p Path) Parents() string {
	return strings.Join(p.elems[:p.parents], Sep)
}

// Remainder returns the part of the path beyond the retained parents.
func (p Path) Remainder() string {
	return strings.Join(p.elems[p.parents:], Sep)
}

// String renders the path. Absolute paths begin with the root marker; the
// empty relative path renders as ".".
func (p Path) String() string {
	if !p.absolute && len(p.elems) == 0 {
		return CurDir
	}
	s := strings.Join(p.elems, Sep)
	if p.absolute {
		return Root + s
	}
	return s
}

// Equal reports whether two paths have the same absoluteness and segment
// sequence. The parent count is derived bookkeeping and does not
// participate.
func (p Path) Equal(o Path) bool {
	return p.absolute == o.absolute && slices.Equal(p.elems, o.elems)
}

// Hash returns a hash consistent with Equal.
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	if p.absolute {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	for _, e := range p.elems {
		h.Write([]byte(e))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// RelativeTo computes the relative path from start to p. Both paths must
// match in absoluteness; two relative paths are assumed to share a starting
// location. The result is always relative.
func (p Path) RelativeTo(start Path) (Path, error) {
	if p.absolute != start.absolute {
		return Path{}, fmt.Errorf("relative path from %q to %q: %w", start, p, ErrMismatchedPaths)
	}

	i := commonPrefixLen(p.elems, start.elems)
	parents := len(start.elems) - i

	elems := make([]string, 0, parents+len(p.elems)-i)
	for range parents {
		elems = append(elems, ParDir)
	}
	elems = append(elems, p.elems[i:]...)

	return Path{elems: elems, parents: parents}, nil
}

// Absolute returns the absolute form of p interpreted against base, which
// must be absolute. Absolute receivers are returned unchanged.
//
// Retained parent references are consumed by dropping segments from the end
// of base. When the parent count exceeds base's depth the result is clamped
// at the root, consistent with parse-time ".." handling.
func (p Path) Absolute(base Path) (Path, error) {
	if p.absolute {
		return p, nil
	}
	if !base.absolute {
		return Path{}, fmt.Errorf("absolute form of %q: %w", p, ErrNotAbsolute)
	}

	keep := len(base.elems) - p.parents
	if keep < 0 {
		keep = 0
	}
	elems := make([]string, 0, keep+len(p.elems)-p.parents)
	elems = append(elems, base.elems[:keep]...)
	elems = append(elems, p.elems[p.parents:]...)

	return Path{elems: elems, absolute: true}, nil
}

// SystemPath computes the host path for this tree path. Absolute paths are
// joined under the tree's root directory; relative paths are joined alone,
// for the caller to combine with its own working directory.
func (p Path) SystemPath(rootDir string) string {
	if p.absolute {
		return filepath.Join(append([]string{rootDir}, p.elems...)...)
	}
	return filepath.Join(p.elems...)
}

// SplitSystemPath splits a host path into the portion this path reaches and
// the elided remainder. It is defined only for relative paths consisting of
// only parent references or only children; other paths return
// ErrInvalidSplit.
func (p Path) SplitSystemPath(sys string) (resolved, elided string, err error) {
	sys = filepath.Clean(sys)

	if p.absolute {
		return "", "", fmt.Errorf("split %q with absolute path %q: %w", sys, p, ErrInvalidSplit)
	}
	if p.parents > 0 && len(p.elems) > p.parents {
		return "", "", fmt.Errorf("split %q with mixed path %q: %w", sys, p, ErrInvalidSplit)
	}

	// Pure-child paths leave the system path untouched.
	if p.parents == 0 {
		child := CurDir
		if len(p.elems) > 0 {
			child = filepath.Join(p.elems...)
		}
		return sys, child, nil
	}

	// Pure-parent paths walk up from the system path; the elided part is
	// whatever the walk discarded.
	parent := filepath.Clean(filepath.Join(append([]string{sys}, p.elems...)...))
	idx := len(parent) + len(string(filepath.Separator))
	if idx > len(sys) {
		return parent, "", nil
	}
	return parent, sys[idx:], nil
}

// NonAbsolute returns a relative version of this path. Relative paths are
// returned unchanged.
func (p Path) NonAbsolute() Path {
	if !p.absolute {
		return p
	}
	return Path{elems: p.elems}
}

func commonPrefixLen(a, b []string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
