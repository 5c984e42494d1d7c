package fstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarName(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name        string
		input       string
		base        string
		extensions  []string
		compression string // "" means none
	}{
		{"bare name", "archive", "archive", []string{".tar"}, ""},
		{"tar only", "archive.tar", "archive", []string{".tar"}, ""},
		{"tar gz", "archive.tar.gz", "archive", []string{".tar", ".gz"}, "gz"},
		{"combined tgz", "archive.tgz", "archive", []string{".tgz"}, "gz"},
		{"combined tbz2", "archive.tbz2", "archive", []string{".tbz2"}, "bz2"},
		{"unknown extension kept", "archive.ext1.ext2", "archive.ext1.ext2", []string{".tar"}, ""},
		{"directory preserved", "/foo/bar/archive.tar.gz", "/foo/bar/archive", []string{".tar", ".gz"}, "gz"},
		{"scan stops at tar", "archive.ext.gz.tar", "archive.ext.gz", []string{".tar"}, ""},
		{"scan stops at tgz", "archive.ext.gz.tgz", "archive.ext.gz", []string{".tgz"}, "gz"},
		{"dotted base", "archive.v1", "archive.v1", []string{".tar"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn, err := ParseTarName(tt.input, reg)
			require.NoError(t, err)
			assert.Equal(t, tt.base, tn.Base())
			assert.Equal(t, tt.extensions, tn.Extensions())
			if tt.compression == "" {
				assert.Nil(t, tn.Compression())
			} else {
				require.NotNil(t, tn.Compression())
				assert.Equal(t, tt.compression, tn.Compression().Name())
			}
		})
	}
}

func TestParseTarNameErrors(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"compression without tar", "archive.gz", ErrMissingTarExt},
		{"duplicate compression", "archive.tar.gz.gz", ErrDuplicateCompression},
		{"conflicting compression", "archive.tar.gz.bz2", ErrConflictingCompression},
		{"conflict via combined form", "archive.tgz.bz2", ErrConflictingCompression},
		{"unsupported compression", "archive.tar.lzo", ErrUnsupportedCompression},
		{"unsupported xz", "archive.txz", ErrUnsupportedCompression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTarName(tt.input, reg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTarNameString(t *testing.T) {
	reg := DefaultRegistry()

	for _, name := range []string{"archive.tar.gz", "archive.tgz", "dir/archive.tar"} {
		t.Run(name, func(t *testing.T) {
			tn, err := ParseTarName(name, reg)
			require.NoError(t, err)
			assert.Equal(t, name, tn.String())
		})
	}

	// A bare name gains the implied archive suffix.
	tn, err := ParseTarName("archive", reg)
	require.NoError(t, err)
	assert.Equal(t, "archive.tar", tn.String())
}

func TestTarNameSetCompression(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("by name", func(t *testing.T) {
		tn, err := ParseTarName("archive.tar", reg)
		require.NoError(t, err)

		require.NoError(t, tn.SetCompressionName("gz"))
		assert.Equal(t, "archive.tar.gz", tn.String())
		require.NotNil(t, tn.Compression())
		assert.Equal(t, "gz", tn.Compression().Name())

		// Only once.
		assert.ErrorIs(t, tn.SetCompressionName("bz2"), ErrCompressionSet)
	})

	t.Run("by descriptor", func(t *testing.T) {
		tn, err := ParseTarName("archive.tar", reg)
		require.NoError(t, err)

		bz2, ok := reg.Lookup("bz2")
		require.True(t, ok)
		require.NoError(t, tn.SetCompression(bz2))
		assert.Equal(t, "archive.tar.bz2", tn.String())
		assert.ErrorIs(t, tn.SetCompression(nil), ErrCompressionSet)
	})

	t.Run("explicit none", func(t *testing.T) {
		tn, err := ParseTarName("archive.tar", reg)
		require.NoError(t, err)

		require.NoError(t, tn.SetCompression(nil))
		assert.Nil(t, tn.Compression())
		assert.Equal(t, "archive.tar", tn.String())

		// Explicit none still pins the decision.
		assert.ErrorIs(t, tn.SetCompressionName("gz"), ErrCompressionSet)
	})

	t.Run("unknown name", func(t *testing.T) {
		tn, err := ParseTarName("archive.tar", reg)
		require.NoError(t, err)
		assert.ErrorIs(t, tn.SetCompressionName("zstd"), ErrUnknownCompression)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		tn, err := ParseTarName("archive.tar", reg)
		require.NoError(t, err)
		assert.ErrorIs(t, tn.SetCompressionName("lzma"), ErrUnsupportedCompression)
		// A failed set does not pin the decision.
		require.NoError(t, tn.SetCompressionName("gz"))
	})

	t.Run("already set by parsing", func(t *testing.T) {
		tn, err := ParseTarName("archive.tgz", reg)
		require.NoError(t, err)
		assert.ErrorIs(t, tn.SetCompressionName("gz"), ErrCompressionSet)
	})
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		root string
		ext  string
	}{
		{"plain", "archive.tar", "archive", ".tar"},
		{"no dot", "archive", "archive", ""},
		{"leading dot", ".tar", ".tar", ""},
		{"double dot", "a..gz", "a.", ".gz"},
		{"trailing dot", "a.", "a", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, ext := splitExt(tt.in)
			assert.Equal(t, tt.root, root)
			assert.Equal(t, tt.ext, ext)
		})
	}
}
