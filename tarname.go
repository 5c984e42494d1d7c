package fstree

import (
	"fmt"
	"path"
	"strings"
)

// TarExtension is the canonical marker extension for an uncompressed
// archive container.
const TarExtension = ".tar"

// TarName represents the file name of a tar archive: a base name, the
// recognized extensions in order, and the compression scheme, if any.
//
// Compression may be set once after parsing if the file name did not fix
// it.
type TarName struct {
	base           string
	extensions     []string
	compression    *Compression
	compressionSet bool
	reg            *Registry
}

// ParseTarName parses a tar file name against reg, determining the
// extensions and compression scheme in use.
//
// Extensions are stripped right to left until the archive suffix is seen or
// an unrecognized extension stops the scan. A compression extension without
// an accompanying archive suffix returns ErrMissingTarExt; conflicting,
// repeated, or unsupported compression extensions return
// ErrConflictingCompression, ErrDuplicateCompression, and
// ErrUnsupportedCompression respectively. When no archive suffix appears at
// all, ".tar" is supplied.
func ParseTarName(name string, reg *Registry) (*TarName, error) {
	dir, basename := path.Split(name)

	var extensions []string
	var compression *Compression
	compressionSet := false
	hasTarExt := false

	for !hasTarExt {
		root, ext := splitExt(basename)
		if ext == "" {
			break
		}
		info, ok := reg.LookupExtension(ext)
		if !ok {
			break
		}

		if info.Compression != nil {
			if compressionSet {
				if compression == info.Compression {
					return nil, fmt.Errorf("%q references %q twice: %w", name, info.Compression, ErrDuplicateCompression)
				}
				return nil, fmt.Errorf("%q contains both %q and %q: %w", name, info.Compression, compression, ErrConflictingCompression)
			}
			if !info.Compression.Supported() {
				return nil, fmt.Errorf("%q: format %q: %w", name, info.Compression, ErrUnsupportedCompression)
			}
			compression = info.Compression
			compressionSet = true
		}
		if info.TarExt {
			hasTarExt = true
		}

		extensions = append([]string{ext}, extensions...)
		basename = root
	}

	if compressionSet && !hasTarExt {
		return nil, fmt.Errorf("%q has %q compression: %w", name, compression, ErrMissingTarExt)
	}
	if !hasTarExt {
		extensions = append([]string{TarExtension}, extensions...)
	}

	return &TarName{
		base:           dir + basename,
		extensions:     extensions,
		compression:    compression,
		compressionSet: compressionSet,
		reg:            reg,
	}, nil
}

// Base returns the file name with all recognized extensions stripped,
// directory portion included.
func (t *TarName) Base() string { return t.base }

// Extensions returns a copy of the recognized extensions, innermost first.
func (t *TarName) Extensions() []string {
	exts := make([]string, len(t.extensions))
	copy(exts, t.extensions)
	return exts
}

// Compression returns the designated compression scheme, or nil when none
// is set.
func (t *TarName) Compression() *Compression { return t.compression }

// String reassembles the file name: the base plus all extensions in stored
// order.
func (t *TarName) String() string {
	return t.base + strings.Join(t.extensions, "")
}

// SetCompression designates the compression scheme, appending its preferred
// extension. A nil descriptor records an explicit "no compression". The
// scheme may be set at most once, whether by parsing or a prior call;
// later attempts return ErrCompressionSet.
func (t *TarName) SetCompression(c *Compression) error {
	if t.compressionSet {
		return fmt.Errorf("%q: %w", t, ErrCompressionSet)
	}
	if c != nil {
		if !c.Supported() {
			return fmt.Errorf("scheme %q: %w", c, ErrUnsupportedCompression)
		}
		t.extensions = append(t.extensions, c.Extension())
		t.compression = c
	}
	t.compressionSet = true
	return nil
}

// SetCompressionName designates the compression scheme by registry name.
func (t *TarName) SetCompressionName(name string) error {
	if t.compressionSet {
		return fmt.Errorf("%q: %w", t, ErrCompressionSet)
	}
	c, ok := t.reg.Lookup(name)
	if !ok {
		return fmt.Errorf("scheme %q: %w", name, ErrUnknownCompression)
	}
	return t.SetCompression(c)
}

// splitExt splits the trailing extension off a file name. A name without a
// dot, or whose only dot leads, has no extension.
func splitExt(name string) (root, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}
