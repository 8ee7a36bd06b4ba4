package ports

import (
	"github.com/user/animshow/pkg/refs"
)

// BitmapAllocator hands out reference-counted RGBA buffers. The handle's
// last close returns the buffer to the allocator, so decoded pixel memory is
// reclaimed deterministically rather than waiting on the garbage collector.
type BitmapAllocator interface {
	// Allocate returns an owned handle to a zeroed width x height buffer.
	Allocate(width, height int) *refs.Bitmap
}
