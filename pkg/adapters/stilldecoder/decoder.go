// Package stilldecoder decodes still WebP and PNG images as single-frame
// animations, so the rest of the pipeline handles them through the same
// result container as real animations.
package stilldecoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/webp"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// Decoder implements ports.AnimationDecoder for single-frame formats.
type Decoder struct {
	allocator ports.BitmapAllocator
	format    ports.ImageFormat
	decode    func([]byte) (image.Image, error)
}

// NewWebP creates a decoder for still WebP images. Animated WebP is not
// supported by the underlying decoder and fails with a decode error.
func NewWebP(allocator ports.BitmapAllocator) *Decoder {
	return &Decoder{
		allocator: allocator,
		format:    ports.FormatWebP,
		decode: func(data []byte) (image.Image, error) {
			return webp.Decode(bytes.NewReader(data))
		},
	}
}

// NewPNG creates a decoder for PNG images.
func NewPNG(allocator ports.BitmapAllocator) *Decoder {
	return &Decoder{
		allocator: allocator,
		format:    ports.FormatPNG,
		decode: func(data []byte) (image.Image, error) {
			return png.Decode(bytes.NewReader(data))
		},
	}
}

// Format returns the container format this decoder handles.
func (d *Decoder) Format() ports.ImageFormat {
	return d.format
}

// Decode decodes the image as a one-frame animation.
func (d *Decoder) Decode(data []byte, opts ports.DecodeOptions) (*animated.Result, error) {
	img, err := d.decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.format, err)
	}

	bounds := img.Bounds()
	meta := &animated.Metadata{
		CanvasWidth:  bounds.Dx(),
		CanvasHeight: bounds.Dy(),
		Loops:        1,
		Frames: []animated.FrameInfo{{
			Width:     bounds.Dx(),
			Height:    bounds.Dy(),
			BlendMode: animated.BlendSource,
		}},
	}

	builder := animated.NewBuilder(meta).SetTransformation(opts.Transformation)

	if opts.PreviewFrame != 0 {
		return nil, fmt.Errorf("decode %s: preview frame %d out of range (1 frame)", d.format, opts.PreviewFrame)
	}

	if opts.DecodeAllFrames || opts.DecodePreview {
		ref := d.allocator.Allocate(bounds.Dx(), bounds.Dy())
		draw.Draw(ref.Get(), ref.Get().Bounds(), img, bounds.Min, draw.Src)

		switch {
		case opts.DecodeAllFrames && opts.DecodePreview:
			builder.SetDecodedFrames([]*refs.Bitmap{ref})
			builder.SetPreviewBitmap(ref.Clone())
		case opts.DecodeAllFrames:
			builder.SetDecodedFrames([]*refs.Bitmap{ref})
		default:
			builder.SetPreviewBitmap(ref)
		}
	}

	return builder.Build()
}

var _ ports.AnimationDecoder = (*Decoder)(nil)
