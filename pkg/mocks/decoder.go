package mocks

import (
	"image"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// Decoder is a mock implementation of ports.AnimationDecoder.
type Decoder struct {
	DecodeFunc func(data []byte, opts ports.DecodeOptions) (*animated.Result, error)
	FormatFunc func() ports.ImageFormat
}

func (m *Decoder) Decode(data []byte, opts ports.DecodeOptions) (*animated.Result, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data, opts)
	}
	return DecodedResult(3, opts)
}

func (m *Decoder) Format() ports.ImageFormat {
	if m.FormatFunc != nil {
		return m.FormatFunc()
	}
	return ports.FormatGIF
}

var _ ports.AnimationDecoder = (*Decoder)(nil)

// DecodedResult builds a plain result with the given frame count for tests:
// a 16x16 canvas, 100ms frames, buffers per opts.
func DecodedResult(frames int, opts ports.DecodeOptions) (*animated.Result, error) {
	infos := make([]animated.FrameInfo, frames)
	for i := range infos {
		infos[i] = animated.FrameInfo{Width: 16, Height: 16, DurationMs: 100}
	}
	meta := &animated.Metadata{CanvasWidth: 16, CanvasHeight: 16, Frames: infos}

	builder := animated.NewBuilder(meta).
		SetFrameForPreview(opts.PreviewFrame).
		SetTransformation(opts.Transformation)

	newBitmap := func() *refs.Bitmap {
		return refs.NewBitmap(image.NewRGBA(image.Rect(0, 0, 16, 16)), nil)
	}

	if opts.DecodeAllFrames {
		handles := make([]*refs.Bitmap, frames)
		for i := range handles {
			handles[i] = newBitmap()
		}
		builder.SetDecodedFrames(handles)
	}
	if opts.DecodePreview {
		builder.SetPreviewBitmap(newBitmap())
	}

	return builder.Build()
}
