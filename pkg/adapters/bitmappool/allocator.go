// Package bitmappool provides a pooled BitmapAllocator implementation.
//
// Decoding an animation allocates one large RGBA backing slice per frame.
// Pooling those slices keeps repeated decodes from churning the heap: when
// the last handle to a buffer is closed, the buffer is returned here for
// reuse instead of being left to the garbage collector.
package bitmappool

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// Allocator implements ports.BitmapAllocator over a sync.Pool.
type Allocator struct {
	pool sync.Pool // stores *image.RGBA

	allocated atomic.Int64
	reused    atomic.Int64
}

// New creates a new Allocator.
func New() *Allocator {
	return &Allocator{}
}

// Allocate returns an owned handle to a zeroed width x height buffer. The
// handle's last close recycles the buffer into the pool.
func (a *Allocator) Allocate(width, height int) *refs.Bitmap {
	img := a.acquire(width, height)
	return refs.NewBitmap(img, a.recycle)
}

// acquire returns a pooled RGBA buffer resized to width x height, or a fresh
// one if nothing suitable is pooled. The pixel data is zeroed either way.
func (a *Allocator) acquire(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return &image.RGBA{Rect: image.Rect(0, 0, width, height)}
	}
	needed := width * height * 4

	var img *image.RGBA
	if v := a.pool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		a.allocated.Add(1)
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}

	a.reused.Add(1)
	img.Pix = img.Pix[:needed]
	for i := range img.Pix {
		img.Pix[i] = 0
	}
	img.Stride = width * 4
	img.Rect = image.Rect(0, 0, width, height)
	return img
}

// recycle returns a buffer to the pool. Called by the handle's release, so
// the buffer is no longer reachable through any open reference.
func (a *Allocator) recycle(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	a.pool.Put(img)
}

// Stats returns the number of fresh allocations and pool reuses so far.
func (a *Allocator) Stats() (allocated, reused int64) {
	return a.allocated.Load(), a.reused.Load()
}

var _ ports.BitmapAllocator = (*Allocator)(nil)
