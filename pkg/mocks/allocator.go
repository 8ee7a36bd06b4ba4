package mocks

import (
	"image"
	"sync/atomic"

	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// Allocator is a mock implementation of ports.BitmapAllocator that counts
// allocations and releases.
type Allocator struct {
	Allocated atomic.Int64
	Released  atomic.Int64

	AllocateFunc func(width, height int) *refs.Bitmap
}

// NewAllocator creates a new mock Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

func (m *Allocator) Allocate(width, height int) *refs.Bitmap {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(width, height)
	}
	m.Allocated.Add(1)
	return refs.NewBitmap(image.NewRGBA(image.Rect(0, 0, width, height)), func(*image.RGBA) {
		m.Released.Add(1)
	})
}

// Outstanding returns the number of buffers not yet released.
func (m *Allocator) Outstanding() int64 {
	return m.Allocated.Load() - m.Released.Load()
}

var _ ports.BitmapAllocator = (*Allocator)(nil)
