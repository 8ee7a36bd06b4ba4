// Package refs provides reference-counted handles over shared resources.
//
// A Ref is an ownership-tracked handle to a value whose backing memory must
// be released deterministically (typically a pooled pixel buffer). Cloning a
// Ref increments the shared count and yields a new independent handle;
// closing a Ref decrements the count, and the last close invokes the release
// callback. A handle must be closed exactly once by its owner: closing the
// same handle twice or reading through a closed handle is a programming
// error and panics.
package refs

import (
	"sync/atomic"
)

// shared holds the value and count shared by all handles cloned from the
// same origin.
type shared[T any] struct {
	value   T
	count   atomic.Int32
	release func(T)
}

func (s *shared[T]) acquire() {
	s.count.Add(1)
}

func (s *shared[T]) drop() {
	if n := s.count.Add(-1); n == 0 {
		if s.release != nil {
			s.release(s.value)
		}
	} else if n < 0 {
		panic("refs: shared count dropped below zero")
	}
}

// Ref is a single ownership-tracked handle to a shared value.
// The zero value is not usable; create handles with New and Clone.
type Ref[T any] struct {
	shared *shared[T]
	closed atomic.Bool
}

// New wraps value in a reference-counted handle with an initial count of
// one. The release callback runs exactly once, when the last handle cloned
// from this one is closed. A nil release is allowed for values that need no
// reclamation.
func New[T any](value T, release func(T)) *Ref[T] {
	s := &shared[T]{value: value, release: release}
	s.count.Store(1)
	return &Ref[T]{shared: s}
}

// Get returns the shared value. It panics if the handle has been closed.
func (r *Ref[T]) Get() T {
	if r.closed.Load() {
		panic("refs: get through closed reference")
	}
	return r.shared.value
}

// Clone increments the shared count and returns a new independent handle to
// the same value. It panics if the handle has been closed.
func (r *Ref[T]) Clone() *Ref[T] {
	if r.closed.Load() {
		panic("refs: clone of closed reference")
	}
	r.shared.acquire()
	return &Ref[T]{shared: r.shared}
}

// Close releases this handle's reference. The last close across all handles
// invokes the release callback. Closing the same handle twice panics.
func (r *Ref[T]) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		panic("refs: close of closed reference")
	}
	r.shared.drop()
}

// Valid reports whether the handle is still open.
func (r *Ref[T]) Valid() bool {
	return r != nil && !r.closed.Load()
}

// Count returns the current shared count. Intended for tests and
// diagnostics; the value may be stale by the time it is observed.
func (r *Ref[T]) Count() int32 {
	return r.shared.count.Load()
}

// CloneOrNil clones r, or returns nil if r is nil. It makes "no buffer"
// propagate through accessors without a nil check at every call site.
func CloneOrNil[T any](r *Ref[T]) *Ref[T] {
	if r == nil {
		return nil
	}
	return r.Clone()
}

// CloseSafely closes r unless it is nil or already closed. Unlike Close it
// tolerates absent handles, which makes teardown of optional fields
// idempotent.
func CloseSafely[T any](r *Ref[T]) {
	if r == nil {
		return
	}
	if r.closed.CompareAndSwap(false, true) {
		r.shared.drop()
	}
}

// CloseAll safely closes every handle in refs. Nil entries and a nil slice
// are allowed.
func CloseAll[T any](refs []*Ref[T]) {
	for _, r := range refs {
		CloseSafely(r)
	}
}
