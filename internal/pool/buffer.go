// Package pool provides reusable chunk buffers for streaming comparisons.
//
// Buffers are grouped into fixed-capacity tiers so that comparisons running
// with different chunk sizes still share memory with each other.
package pool

import (
	"sync"
)

const (
	// SmallBufferSize defines the size for small buffers (4KB)
	SmallBufferSize = 4 * 1024
	// MediumBufferSize defines the size for medium buffers (64KB)
	MediumBufferSize = 64 * 1024
	// LargeBufferSize defines the size for large buffers (1MB)
	LargeBufferSize = 1024 * 1024
)

var tierSizes = [...]int{SmallBufferSize, MediumBufferSize, LargeBufferSize}

// BufferPool hands out chunk buffers of an exact requested length.
// It is safe for concurrent use.
type BufferPool struct {
	tiers [len(tierSizes)]*sync.Pool
}

// NewBufferPool creates a new buffer pool with the default tier sizes.
func NewBufferPool() *BufferPool {
	bp := &BufferPool{}
	for i, size := range tierSizes {
		bp.tiers[i] = &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		}
	}
	return bp
}

// Get returns a buffer with len(buf) == size.
// Sizes above LargeBufferSize are allocated directly and never pooled.
// The caller is responsible for calling Put once the buffer is no longer used.
func (bp *BufferPool) Get(size int) []byte {
	if size < 1 {
		size = 1
	}
	for i, capacity := range tierSizes {
		if size <= capacity {
			bufPtr := bp.tiers[i].Get().(*[]byte)
			return (*bufPtr)[:size]
		}
	}
	return make([]byte, size)
}

// Put returns a buffer to the tier matching its capacity.
// Buffers that did not come from a tier are dropped.
func (bp *BufferPool) Put(buf []byte) {
	for i, capacity := range tierSizes {
		if cap(buf) == capacity {
			buf = buf[:capacity]
			bp.tiers[i].Put(&buf)
			return
		}
	}
}

// Global buffer pool instance shared by all comparators.
var globalBufferPool = NewBufferPool()

// Get returns a buffer of the given length from the global pool.
func Get(size int) []byte {
	return globalBufferPool.Get(size)
}

// Put returns a buffer to the global pool.
func Put(buf []byte) {
	globalBufferPool.Put(buf)
}
