// Package smartdecoder provides a decoder that automatically detects the
// image format and dispatches to the matching format decoder.
package smartdecoder

import (
	"errors"
	"fmt"

	"github.com/user/animshow/pkg/adapters/formatdetect"
	"github.com/user/animshow/pkg/adapters/gifdecoder"
	"github.com/user/animshow/pkg/adapters/stilldecoder"
	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/ports"
)

// ErrUnsupportedFormat is returned when the data is not in a recognized
// image format.
var ErrUnsupportedFormat = errors.New("smartdecoder: unsupported image format")

// Decoder selects a format decoder per decode call based on magic bytes.
type Decoder struct {
	byFormat map[ports.ImageFormat]ports.AnimationDecoder
}

// New creates a smart decoder with all format decoders registered, sharing
// the given allocator.
func New(allocator ports.BitmapAllocator) *Decoder {
	return &Decoder{
		byFormat: map[ports.ImageFormat]ports.AnimationDecoder{
			ports.FormatGIF:  gifdecoder.New(allocator),
			ports.FormatWebP: stilldecoder.NewWebP(allocator),
			ports.FormatPNG:  stilldecoder.NewPNG(allocator),
		},
	}
}

// Format returns ports.FormatUnknown; the actual format is chosen per call.
func (d *Decoder) Format() ports.ImageFormat {
	return ports.FormatUnknown
}

// Detect returns the format the given data would be decoded as.
func (d *Decoder) Detect(data []byte) ports.ImageFormat {
	return formatdetect.DetectFromBytes(data)
}

// Decode sniffs the format and decodes with the matching decoder.
func (d *Decoder) Decode(data []byte, opts ports.DecodeOptions) (*animated.Result, error) {
	format := formatdetect.DetectFromBytes(data)
	dec, ok := d.byFormat[format]
	if !ok {
		return nil, fmt.Errorf("%w (%d bytes)", ErrUnsupportedFormat, len(data))
	}
	return dec.Decode(data, opts)
}

var _ ports.AnimationDecoder = (*Decoder)(nil)
