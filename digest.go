package fstree

import (
	"errors"
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
)

// digestBlockSize is the read block size used while digesting a stream.
const digestBlockSize = 64 * 1024

// NewDigester returns a digester for the given algorithm. Algorithms not
// available in this build return ErrUnknownAlgorithm.
func NewDigester(algo digest.Algorithm) (digest.Digester, error) {
	if !algo.Available() {
		return nil, fmt.Errorf("algorithm %q: %w", algo, ErrUnknownAlgorithm)
	}
	return algo.Digester(), nil
}

// Sum streams r through every digester and, for convenience, returns the
// first digester's digest. Callers own the reader; Sum reads it to EOF but
// does not close it.
func Sum(r io.Reader, digesters ...digest.Digester) (digest.Digest, error) {
	if len(digesters) == 0 {
		return "", errors.New("fstree: no digesters provided")
	}

	writers := make([]io.Writer, len(digesters))
	for i, d := range digesters {
		writers[i] = d.Hash()
	}

	buf := make([]byte, digestBlockSize)
	if _, err := io.CopyBuffer(io.MultiWriter(writers...), r, buf); err != nil {
		return "", fmt.Errorf("digest stream: %w", err)
	}

	return digesters[0].Digest(), nil
}
