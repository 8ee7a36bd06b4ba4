package animated

import (
	"errors"
	"sync"

	"github.com/user/animshow/pkg/refs"
)

// ErrNilImage is returned when a Result is constructed without an image
// descriptor.
var ErrNilImage = errors.New("animated: result requires an image descriptor")

// Result is the outcome of decoding an animated image: the descriptor plus
// any eagerly decoded pixel buffers, held as jointly owned reference-counted
// handles.
//
// A Result owns its preview and per-frame handles. Accessors hand out clones
// that the caller must close independently; Dispose releases exactly the
// references the Result itself owns and is safe to call more than once.
// After Dispose the Result behaves as if it never held any buffers.
type Result struct {
	image           Image
	frameForPreview int
	transformation  Transformation

	mu            sync.Mutex
	previewBitmap *refs.Bitmap
	decodedFrames []*refs.Bitmap
}

// ForImage creates a Result with no preview or decoded-frame buffers, for
// decodes that produced metadata only.
func ForImage(image Image) (*Result, error) {
	if image == nil {
		return nil, ErrNilImage
	}
	return &Result{image: image}, nil
}

// Image returns the underlying image descriptor.
func (r *Result) Image() Image {
	return r.image
}

// FrameForPreview returns the index of the frame designated for preview. If
// a preview bitmap was decoded, this is the frame it was decoded from.
func (r *Result) FrameForPreview() int {
	return r.frameForPreview
}

// Transformation returns the transformation to apply when rendering, or nil.
func (r *Result) Transformation() Transformation {
	return r.transformation
}

// DecodedFrame returns a new owned handle to the decoded frame at index, or
// nil if frames were not decoded eagerly, the slot is empty, or the Result
// has been disposed. The caller must close the returned handle.
//
// Index bounds are the caller's responsibility: an index outside the stored
// sequence panics.
func (r *Result) DecodedFrame(index int) *refs.Bitmap {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.decodedFrames != nil {
		return refs.CloneOrNil(r.decodedFrames[index])
	}
	return nil
}

// HasDecodedFrame reports whether a decoded frame is present at index. Same
// bounds contract as DecodedFrame.
func (r *Result) HasDecodedFrame(index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.decodedFrames != nil && r.decodedFrames[index] != nil
}

// PreviewBitmap returns a new owned handle to the preview buffer, or nil if
// none was decoded or the Result has been disposed. The caller must close
// the returned handle.
func (r *Result) PreviewBitmap() *refs.Bitmap {
	r.mu.Lock()
	defer r.mu.Unlock()
	return refs.CloneOrNil(r.previewBitmap)
}

// Dispose releases the Result's own references to the preview buffer and
// every decoded frame, and clears both fields. Handles previously cloned out
// by accessors are unaffected. Dispose is idempotent.
func (r *Result) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	refs.CloseSafely(r.previewBitmap)
	r.previewBitmap = nil
	refs.CloseAll(r.decodedFrames)
	r.decodedFrames = nil
}
