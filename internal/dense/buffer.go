package dense

import (
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted element store shared by a matrix and every
// zero-copy view taken over it.
type buffer[T DType] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a zeroed buffer of n elements with refCount = 1.
func newBuffer[T DType](n int) *buffer[T] {
	buf := &buffer[T]{
		data: make([]T, n),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (views and clones).
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the storage at zero.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}
