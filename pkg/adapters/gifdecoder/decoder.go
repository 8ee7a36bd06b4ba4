// Package gifdecoder decodes animated GIF images into reference-counted
// frame buffers.
//
// GIF frames are stored as partial-canvas patches with disposal semantics,
// so eager frame decoding coalesces each frame onto a full canvas before
// copying it into an allocated buffer. Consumers then get full independent
// frames and never need to replay disposal themselves.
package gifdecoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// Decoder implements ports.AnimationDecoder for GIF.
type Decoder struct {
	allocator ports.BitmapAllocator
}

// New creates a GIF decoder that allocates frame buffers from allocator.
func New(allocator ports.BitmapAllocator) *Decoder {
	return &Decoder{allocator: allocator}
}

// Format returns ports.FormatGIF.
func (d *Decoder) Format() ports.ImageFormat {
	return ports.FormatGIF
}

// Decode decodes a GIF animation per opts. The returned result owns all
// buffers it references; the caller must dispose it.
func (d *Decoder) Decode(data []byte, opts ports.DecodeOptions) (*animated.Result, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode gif: no frames")
	}

	meta := metadataFor(g)
	builder := animated.NewBuilder(meta).
		SetFrameForPreview(opts.PreviewFrame).
		SetTransformation(opts.Transformation)

	if !opts.DecodeAllFrames && !opts.DecodePreview {
		return builder.Build()
	}

	if opts.PreviewFrame < 0 || opts.PreviewFrame >= len(g.Image) {
		return nil, fmt.Errorf("decode gif: preview frame %d out of range (%d frames)", opts.PreviewFrame, len(g.Image))
	}

	frames, err := d.decodeFrames(g, meta, opts)
	if err != nil {
		refs.CloseAll(frames)
		return nil, err
	}

	if opts.DecodePreview {
		// The preview is its own reference to the preview frame's buffer.
		builder.SetPreviewBitmap(refs.CloneOrNil(frames[opts.PreviewFrame]))
	}
	if opts.DecodeAllFrames {
		builder.SetDecodedFrames(frames)
	} else {
		refs.CloseAll(frames)
	}

	return builder.Build()
}

// decodeFrames coalesces every frame up to the last one needed. When only
// the preview is wanted, frames before it still have to be composed for
// disposal replay, but only the preview slot keeps a buffer.
func (d *Decoder) decodeFrames(g *gif.GIF, meta *animated.Metadata, opts ports.DecodeOptions) ([]*refs.Bitmap, error) {
	width, height := meta.Width(), meta.Height()
	last := len(g.Image) - 1
	if !opts.DecodeAllFrames {
		last = opts.PreviewFrame
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	frames := make([]*refs.Bitmap, len(g.Image))

	for i := 0; i <= last; i++ {
		patch := g.Image[i]

		var restore *image.RGBA
		if g.Disposal[i] == gif.DisposalPrevious {
			restore = cloneCanvas(canvas)
		}

		draw.Draw(canvas, patch.Bounds(), patch, patch.Bounds().Min, draw.Over)

		if opts.DecodeAllFrames || i == opts.PreviewFrame {
			ref := d.allocator.Allocate(width, height)
			copy(ref.Get().Pix, canvas.Pix)
			frames[i] = ref
		}

		// Prepare the canvas for the next frame per this frame's disposal.
		switch g.Disposal[i] {
		case gif.DisposalBackground:
			draw.Draw(canvas, patch.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			if restore != nil {
				canvas = restore
			}
		}
	}

	return frames, nil
}

func cloneCanvas(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

func metadataFor(g *gif.GIF) *animated.Metadata {
	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 {
		b := g.Image[0].Bounds()
		width, height = b.Dx(), b.Dy()
	}

	infos := make([]animated.FrameInfo, len(g.Image))
	for i, frame := range g.Image {
		b := frame.Bounds()
		dispose := animated.DisposeNone
		if g.Disposal[i] == gif.DisposalBackground {
			dispose = animated.DisposeBackground
		}
		infos[i] = animated.FrameInfo{
			X:           b.Min.X,
			Y:           b.Min.Y,
			Width:       b.Dx(),
			Height:      b.Dy(),
			DurationMs:  g.Delay[i] * 10, // GIF delays are in centiseconds
			DisposeMode: dispose,
			BlendMode:   animated.BlendOver,
		}
	}

	loops := g.LoopCount
	if loops < 0 {
		// image/gif uses -1 for "play once".
		loops = 1
	}

	return &animated.Metadata{
		CanvasWidth:  width,
		CanvasHeight: height,
		Loops:        loops,
		Frames:       infos,
	}
}

var _ ports.AnimationDecoder = (*Decoder)(nil)
