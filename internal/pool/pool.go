// Package pool provides typed wrappers around sync.Pool.
package pool

import "sync"

// Pool is a generic wrapper around sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
}

// New creates a new Pool with the given constructor.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	p.internal.Put(item)
}

// Buffers hands out fixed-size receive buffers.
// Buffers of a different size are dropped by Put instead of being pooled.
type Buffers struct {
	size int
	p    *Pool[*[]byte]
}

// NewBuffers creates a pool of size-byte buffers.
func NewBuffers(size int) *Buffers {
	return &Buffers{
		size: size,
		p: New(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
	}
}

// Size returns the length of the buffers handed out.
func (b *Buffers) Size() int {
	return b.size
}

// Get returns a buffer of exactly Size bytes.
func (b *Buffers) Get() *[]byte {
	return b.p.Get()
}

// Put returns buf to the pool.
func (b *Buffers) Put(buf *[]byte) {
	if buf == nil || len(*buf) != b.size {
		return
	}
	b.p.Put(buf)
}
