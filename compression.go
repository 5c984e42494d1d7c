package fstree

import (
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compression describes a compression scheme compatible with the tar
// archive suffix. Not every scheme is supported by this build, but the
// descriptor data is needed for parsing tar file names either way.
//
// Descriptors are immutable once registered.
type Compression struct {
	name      string
	supported bool
	extension string
	newReader func(io.Reader) (io.ReadCloser, error)
	newWriter func(io.Writer) (io.WriteCloser, error)
}

// Name returns the canonical scheme identifier, e.g. "gz".
func (c *Compression) Name() string { return c.name }

// Supported reports whether this build can apply the compression.
func (c *Compression) Supported() bool { return c.supported }

// Extension returns the preferred extension, with a leading dot.
func (c *Compression) Extension() string { return c.extension }

// String returns the scheme name.
func (c *Compression) String() string { return c.name }

// NewReader wraps r with the scheme's decompressor. Descriptors without a
// read codec return ErrNoCodec.
func (c *Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	if c.newReader == nil {
		return nil, fmt.Errorf("decompress %s: %w", c.name, ErrNoCodec)
	}
	return c.newReader(r)
}

// NewWriter wraps w with the scheme's compressor. Descriptors without a
// write codec return ErrNoCodec.
func (c *Compression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if c.newWriter == nil {
		return nil, fmt.Errorf("compress %s: %w", c.name, ErrNoCodec)
	}
	return c.newWriter(w)
}

// CompressionOption configures a descriptor at registration.
type CompressionOption func(*Compression)

// WithReader installs the decompression hook.
func WithReader(f func(io.Reader) (io.ReadCloser, error)) CompressionOption {
	return func(c *Compression) {
		c.newReader = f
	}
}

// WithWriter installs the compression hook.
func WithWriter(f func(io.Writer) (io.WriteCloser, error)) CompressionOption {
	return func(c *Compression) {
		c.newWriter = f
	}
}

// ExtInfo describes what a registered file extension means.
type ExtInfo struct {
	// Compression is the scheme the extension implies, or nil for the bare
	// archive suffix.
	Compression *Compression

	// TarExt reports whether the extension implies the ".tar" archive
	// suffix (either ".tar" itself or a combined form like ".tgz").
	TarExt bool
}

// Registry maps compression names and file extensions to descriptors.
//
// A Registry is populated by a fixed sequence of Register calls before any
// parsing occurs; registration is not safe for concurrent use, reads after
// setup are.
type Registry struct {
	compressions map[string]*Compression
	extensions   map[string]ExtInfo
}

// NewRegistry returns a registry holding only the archive suffix itself.
func NewRegistry() *Registry {
	return &Registry{
		compressions: make(map[string]*Compression),
		extensions: map[string]ExtInfo{
			"tar": {TarExt: true},
		},
	}
}

// Register declares a compression scheme. The first extension is the
// preferred one; remaining extensions are treated as combined forms of the
// ".tar" suffix (e.g. "tgz"). Extensions are given without a leading dot.
//
// Duplicate names and extension collisions return ErrRegistryCollision; an
// empty extension list returns ErrNoExtensions.
func (r *Registry) Register(name string, supported bool, exts []string, opts ...CompressionOption) (*Compression, error) {
	if _, ok := r.compressions[name]; ok {
		return nil, fmt.Errorf("compression %q: %w", name, ErrRegistryCollision)
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("compression %q: %w", name, ErrNoExtensions)
	}
	for _, ext := range exts {
		if _, ok := r.extensions[ext]; ok {
			return nil, fmt.Errorf("extension %q already declared: %w", "."+ext, ErrRegistryCollision)
		}
	}

	c := &Compression{
		name:      name,
		supported: supported,
		extension: "." + exts[0],
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	for i, ext := range exts {
		r.extensions[ext] = ExtInfo{Compression: c, TarExt: i > 0}
	}
	r.compressions[name] = c

	return c, nil
}

// Lookup retrieves a descriptor by scheme name.
func (r *Registry) Lookup(name string) (*Compression, bool) {
	c, ok := r.compressions[name]
	return c, ok
}

// LookupExtension retrieves the descriptor for a file extension, given with
// its leading dot.
func (r *Registry) LookupExtension(ext string) (ExtInfo, bool) {
	if len(ext) == 0 || ext[0] != '.' {
		return ExtInfo{}, false
	}
	info, ok := r.extensions[ext[1:]]
	return info, ok
}

// DefaultRegistry builds the registry of schemes known to GNU tar. The
// extension data is culled from tar/src/suffix.c in the GNU tar sources.
//
// Supported schemes carry codec hooks: gzip via klauspost/compress, bzip2
// read-only via the standard library (no bzip2 writer exists, so write
// requests surface ErrNoCodec). xz is registered unsupported because no xz
// codec ships with this build; callers with one can register it supported
// in their own registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	mustRegister(r, "gz", true, []string{"gz", "tgz", "taz"},
		WithReader(func(rd io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(rd)
		}),
		WithWriter(func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		}),
	)
	mustRegister(r, "Z", false, []string{"Z", "taZ"})
	mustRegister(r, "bz2", true, []string{"bz2", "tbz", "tbz2", "tz2"},
		WithReader(func(rd io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(bzip2.NewReader(rd)), nil
		}),
	)
	mustRegister(r, "lz", false, []string{"lz"})
	mustRegister(r, "lzma", false, []string{"lzma", "tlz"})
	mustRegister(r, "lzo", false, []string{"lzo"})
	mustRegister(r, "xz", false, []string{"xz", "txz"})
	return r
}

// mustRegister panics on registration failure; the default table is fixed,
// so a failure is a programming error.
func mustRegister(r *Registry, name string, supported bool, exts []string, opts ...CompressionOption) {
	if _, err := r.Register(name, supported, exts, opts...); err != nil {
		panic(err)
	}
}
