package animated

import "github.com/user/animshow/pkg/refs"

// Builder accumulates the fields of a Result before construction. Buffer
// handles passed to setters are transferred, not cloned: after a setter the
// builder (and the built Result) owns the handle, and the caller must not
// close or reuse it.
type Builder struct {
	image           Image
	frameForPreview int
	previewBitmap   *refs.Bitmap
	decodedFrames   []*refs.Bitmap
	transformation  Transformation
}

// NewBuilder creates a Builder for a Result around the given descriptor.
func NewBuilder(image Image) *Builder {
	return &Builder{image: image}
}

// SetFrameForPreview sets the index of the frame designated for preview.
func (b *Builder) SetFrameForPreview(index int) *Builder {
	b.frameForPreview = index
	return b
}

// SetPreviewBitmap transfers ownership of the preview buffer handle to the
// builder.
func (b *Builder) SetPreviewBitmap(bitmap *refs.Bitmap) *Builder {
	b.previewBitmap = bitmap
	return b
}

// SetDecodedFrames transfers ownership of the per-frame buffer handles to
// the builder. The slice is index-aligned with the image's frames; nil
// entries mark frames that were not decoded.
func (b *Builder) SetDecodedFrames(frames []*refs.Bitmap) *Builder {
	b.decodedFrames = frames
	return b
}

// SetTransformation sets the transformation to apply when rendering.
func (b *Builder) SetTransformation(t Transformation) *Builder {
	b.transformation = t
	return b
}

// Build constructs the Result, transferring all held fields into it. It
// fails with ErrNilImage if no descriptor was supplied. Frame indices are
// not validated against the descriptor; bounds errors surface at access
// time.
func (b *Builder) Build() (*Result, error) {
	if b.image == nil {
		return nil, ErrNilImage
	}
	return &Result{
		image:           b.image,
		frameForPreview: b.frameForPreview,
		previewBitmap:   b.previewBitmap,
		decodedFrames:   b.decodedFrames,
		transformation:  b.transformation,
	}, nil
}
