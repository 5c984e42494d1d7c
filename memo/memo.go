// Package memo provides values that are computed once and cached until
// their dependencies change.
//
// A [Value] wraps an expensive computation together with an optional
// dependency fingerprint. The computation runs on first access and is
// cached; it reruns only when the fingerprint differs from the one recorded
// at the last computation, or after an explicit Invalidate. A Value with no
// fingerprint caches indefinitely.
package memo

import (
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Value caches the result of a computation keyed by a dependency
// fingerprint.
//
// Value is safe for concurrent use. Concurrent first accesses are
// deduplicated, so the computation runs once even under contention.
// Computation errors are returned to all waiters and are not cached; the
// next access retries.
type Value[T any] struct {
	compute     func() (T, error)
	fingerprint func() []string

	mu     sync.Mutex
	group  singleflight.Group
	valid  bool
	cached T
	ctrl   []string
}

// Option configures a Value.
type Option[T any] func(*Value[T])

// WithDependencies installs the dependency fingerprint. The cached result
// is reused only while the fingerprint matches the one captured when the
// result was computed.
func WithDependencies[T any](fingerprint func() []string) Option[T] {
	return func(v *Value[T]) {
		v.fingerprint = fingerprint
	}
}

// New creates a Value around compute.
func New[T any](compute func() (T, error), opts ...Option[T]) *Value[T] {
	v := &Value[T]{compute: compute}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Get returns the cached result, computing or recomputing it as needed.
func (v *Value[T]) Get() (T, error) {
	want := v.deps()

	// Fast path: cache is warm and the dependencies are unchanged.
	v.mu.Lock()
	if v.valid && slices.Equal(v.ctrl, want) {
		cached := v.cached
		v.mu.Unlock()
		return cached, nil
	}
	v.mu.Unlock()

	result, err, _ := v.group.Do("value", func() (any, error) {
		// Re-check under singleflight: another goroutine may have just
		// refreshed the cache while we waited.
		want := v.deps()
		v.mu.Lock()
		if v.valid && slices.Equal(v.ctrl, want) {
			cached := v.cached
			v.mu.Unlock()
			return cached, nil
		}
		v.mu.Unlock()

		val, err := v.compute()
		if err != nil {
			return nil, err
		}

		v.mu.Lock()
		v.cached = val
		v.ctrl = want
		v.valid = true
		v.mu.Unlock()

		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	cached, _ := result.(T) //nolint:errcheck // type assertion always succeeds when err is nil
	return cached, nil
}

// Invalidate discards the cached result; the next Get recomputes.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	v.valid = false
	var zero T
	v.cached = zero
	v.ctrl = nil
	v.mu.Unlock()
}

func (v *Value[T]) deps() []string {
	if v.fingerprint == nil {
		return nil
	}
	return v.fingerprint()
}
