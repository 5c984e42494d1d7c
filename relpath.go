package fstree

import (
	"fmt"
	"strings"
)

// Deroot recomputes an absolute system path with respect to the designated
// root, so that callers working inside a tree see root-relative paths. The
// path must be absolute and normalized. A path that does not descend from
// the root returns ErrOutsideRoot.
func Deroot(path, root string) (string, error) {
	if root == Root {
		return path, nil
	}

	if len(path) < len(root) || path[:len(root)] != root ||
		(len(path) > len(root) && path[len(root)] != '/') {
		return "", fmt.Errorf("deroot %q against %q: %w", path, root, ErrOutsideRoot)
	}

	path = path[len(root):]
	if path == "" {
		path = Root
	}
	return path, nil
}

// Abs returns the normalized absolute form of path. Relative paths are
// interpreted against cwd, which must itself be absolute; pass the root
// marker when no working directory applies.
func Abs(path, cwd string) string {
	if !strings.HasPrefix(path, Root) {
		if cwd == "" {
			cwd = Root
		}
		path = cwd + Sep + path
	}
	return ParsePath(path).String()
}

// RelPath decomposes the relative route between two locations in a tree:
// the number of parent levels to climb and the path beyond them.
// Conversion to a string yields the final relative path.
type RelPath struct {
	parents   int
	remainder string
}

// NewRelPath computes the relative route from start to path. Both are made
// absolute first (relative inputs are interpreted against start's tree
// root), so the result depends only on where the two locations sit in the
// tree. An empty path returns ErrEmptyPath.
func NewRelPath(path, start string) (*RelPath, error) {
	if path == "" {
		return nil, fmt.Errorf("relative path: %w", ErrEmptyPath)
	}
	if start == "" {
		start = CurDir
	}

	target := ParsePath(Abs(path, Root))
	from := ParsePath(Abs(start, Root))

	rel, err := target.RelativeTo(from)
	if err != nil {
		// Both operands are absolute by construction.
		return nil, err
	}

	return &RelPath{
		parents:   rel.ParentCount(),
		remainder: rel.Remainder(),
	}, nil
}

// Parents returns the number of parent levels to climb.
func (r *RelPath) Parents() int { return r.parents }

// Remainder returns the path beyond the parent levels.
func (r *RelPath) Remainder() string { return r.remainder }

// String renders the final relative path, or "." when start and path are
// the same location.
func (r *RelPath) String() string {
	if r.parents == 0 && r.remainder == "" {
		return CurDir
	}

	elems := make([]string, 0, r.parents+1)
	for range r.parents {
		elems = append(elems, ParDir)
	}
	if r.remainder != "" {
		elems = append(elems, r.remainder)
	}
	return strings.Join(elems, Sep)
}
