package ports

import (
	"github.com/user/animshow/pkg/animated"
)

// ImageFormat identifies a supported animated image container format.
type ImageFormat int

const (
	// FormatUnknown is an unrecognized format.
	FormatUnknown ImageFormat = iota
	// FormatGIF is GIF 87a/89a.
	FormatGIF
	// FormatWebP is RIFF/WebP.
	FormatWebP
	// FormatPNG is PNG (treated as a single-frame animation).
	FormatPNG
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

// DecodeOptions controls how much pixel data a decode produces eagerly.
// With all fields zero a decode yields metadata only.
type DecodeOptions struct {
	// DecodeAllFrames decodes every frame into a buffer at decode time.
	DecodeAllFrames bool

	// DecodePreview decodes the preview frame into a buffer.
	DecodePreview bool

	// PreviewFrame is the index of the frame designated for preview.
	PreviewFrame int

	// Transformation, if set, is stored on the result and applied by
	// renderers.
	Transformation animated.Transformation
}

// AnimationDecoder decodes an animated image into a reference-counted
// result. The caller owns the returned result and must dispose it.
type AnimationDecoder interface {
	// Decode decodes data per the given options.
	Decode(data []byte, opts DecodeOptions) (*animated.Result, error)

	// Format returns the container format this decoder handles.
	Format() ImageFormat
}
