package fstree

import "errors"

// Path errors.
var (
	// ErrMismatchedPaths is returned when RelativeTo is given one absolute
	// and one relative operand.
	ErrMismatchedPaths = errors.New("fstree: one path absolute, one not")

	// ErrNotAbsolute is returned when Absolute is given a relative base.
	ErrNotAbsolute = errors.New("fstree: base must be an absolute path")

	// ErrInvalidSplit is returned when SplitSystemPath is called on an
	// absolute path, or on a relative path that mixes parent references
	// with further children.
	ErrInvalidSplit = errors.New("fstree: path cannot split a system path")

	// ErrEmptyPath is returned when a relative-path computation is given an
	// empty path string.
	ErrEmptyPath = errors.New("fstree: no path specified")

	// ErrOutsideRoot is returned when a system path does not descend from
	// the declared root.
	ErrOutsideRoot = errors.New("fstree: path outside of root")
)

// Compression registry errors.
var (
	// ErrRegistryCollision is returned when registering a compression name
	// or extension that already exists in the registry.
	ErrRegistryCollision = errors.New("fstree: compression already declared")

	// ErrNoExtensions is returned when registering a compression with no
	// extensions.
	ErrNoExtensions = errors.New("fstree: at least one extension must be provided")

	// ErrNoCodec is returned when a descriptor has no reader or writer hook
	// for the requested direction.
	ErrNoCodec = errors.New("fstree: no codec available")
)

// Archive name errors.
var (
	// ErrDuplicateCompression is returned when a filename references the
	// same compression extension twice.
	ErrDuplicateCompression = errors.New("fstree: compression referenced twice")

	// ErrConflictingCompression is returned when a filename contains two
	// different compression extensions.
	ErrConflictingCompression = errors.New("fstree: conflicting compression")

	// ErrUnsupportedCompression is returned when a detected or requested
	// compression scheme is registered but not supported.
	ErrUnsupportedCompression = errors.New("fstree: compression not supported")

	// ErrMissingTarExt is returned when a filename contains a compression
	// extension but no archive suffix.
	ErrMissingTarExt = errors.New("fstree: compression without .tar extension")

	// ErrUnknownCompression is returned when a requested compression name
	// matches no registered descriptor.
	ErrUnknownCompression = errors.New("fstree: unknown compression scheme")

	// ErrCompressionSet is returned when setting compression on an archive
	// name that already has one.
	ErrCompressionSet = errors.New("fstree: compression is already set")
)

// Digest errors.
var (
	// ErrUnknownAlgorithm is returned when a digest algorithm is not
	// available in this build.
	ErrUnknownAlgorithm = errors.New("fstree: unknown digest algorithm")
)
