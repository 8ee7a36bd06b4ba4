package refs

import "image"

// Bitmap is a reference-counted handle to an RGBA pixel buffer. This is the
// handle type that flows between the allocator, decode results, and
// consumers.
type Bitmap = Ref[*image.RGBA]

// NewBitmap wraps img in a Bitmap handle with the given release callback.
func NewBitmap(img *image.RGBA, release func(*image.RGBA)) *Bitmap {
	return New(img, release)
}
