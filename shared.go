// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "code.hybscloud.com/atomix"

// Shared is an atomically reference-counted value with no single owner.
//
// A Shared starts with one reference. Every holder that hands it to another
// goroutine calls Retain first; every holder that is done calls Release.
// The value is freed exactly once, by the Release that observes the count
// drop from one to zero, via a single atomic add. No check-then-act
// sequence is involved, so two racing releases can never both free.
//
// Only the count is synchronized. Access to the value itself needs
// caller-level coordination.
//
// Calling any method after the final Release is caller misuse and is not
// checked.
type Shared[T any] struct {
	refs  atomix.Int64
	value T
	free  func(*T)
}

// SharedOption configures a Shared at creation.
type SharedOption[T any] func(*Shared[T])

// WithFree registers fn to run exactly once, when the last reference is
// released. fn runs on the releasing goroutine before the value is cleared.
func WithFree[T any](fn func(*T)) SharedOption[T] {
	return func(s *Shared[T]) {
		s.free = fn
	}
}

// MakeShared wraps v in a Shared holding one reference.
func MakeShared[T any](v T, opts ...SharedOption[T]) *Shared[T] {
	s := &Shared[T]{value: v}
	for _, opt := range opts {
		opt(s)
	}
	s.refs.StoreRelaxed(1)
	return s
}

// MakeSharedBytes allocates a zeroed byte payload of size bytes in a Shared
// holding one reference. Returns nil if size < 0.
func MakeSharedBytes(size int, opts ...SharedOption[[]byte]) *Shared[[]byte] {
	if size < 0 {
		return nil
	}
	return MakeShared(make([]byte, size), opts...)
}

// Value returns a pointer to the payload.
func (s *Shared[T]) Value() *T {
	return &s.value
}

// Retain adds a reference and returns s.
func (s *Shared[T]) Retain() *Shared[T] {
	s.refs.AddAcqRel(1)
	return s
}

// Release drops a reference.
//
// It returns s while other references remain, and nil when this call
// released the last one and freed the value. The usual form is:
//
//	buf = buf.Release()
func (s *Shared[T]) Release() *Shared[T] {
	if s.refs.AddAcqRel(-1) != 0 {
		return s
	}
	if s.free != nil {
		s.free(&s.value)
	}
	var zero T
	s.value = zero
	return nil
}

// Count returns a snapshot of the reference count, for diagnostics only.
func (s *Shared[T]) Count() uint32 {
	n := s.refs.Load()
	if n < 0 {
		return 0
	}
	return uint32(n)
}
