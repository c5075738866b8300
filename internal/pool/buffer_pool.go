package pool

import (
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified capacity
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves an empty buffer that can hold at least n bytes
func (bp *BufferPool) Get(n int) *[]byte {
	buffer := bp.pool.Get().(*[]byte)
	if cap(*buffer) < n {
		*buffer = make([]byte, 0, n)
	}
	*buffer = (*buffer)[:0]
	return buffer
}

// Put returns a buffer to the pool for reuse.
// Buffers that grew far beyond the pool size are dropped.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > bp.size*4 {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RuneBufferPool implements a pool of rune slices
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified capacity
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves an empty rune buffer from the pool
func (rbp *RuneBufferPool) Get() *[]rune {
	buffer := rbp.pool.Get().(*[]rune)
	*buffer = (*buffer)[:0]
	return buffer
}

// Put returns a rune buffer to the pool
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	if cap(*buffer) > rbp.size*4 {
		return
	}
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}
