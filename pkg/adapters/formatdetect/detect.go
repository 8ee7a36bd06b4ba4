// Package formatdetect provides utilities for detecting the container
// format of an image from its leading bytes.
package formatdetect

import (
	"bytes"
	"fmt"
	"os"

	"github.com/user/animshow/pkg/ports"
)

var (
	gifMagic87 = []byte("GIF87a")
	gifMagic89 = []byte("GIF89a")
	riffMagic  = []byte("RIFF")
	webpMagic  = []byte("WEBP")
	pngMagic   = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

// DetectFromFile detects the image format of a file.
func DetectFromFile(path string) (ports.ImageFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.FormatUnknown, fmt.Errorf("open file: %w", err)
	}
	return DetectFromBytes(data), nil
}

// DetectFromBytes detects the image format from the data's magic bytes.
func DetectFromBytes(data []byte) ports.ImageFormat {
	switch {
	case bytes.HasPrefix(data, gifMagic87), bytes.HasPrefix(data, gifMagic89):
		return ports.FormatGIF
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return ports.FormatWebP
	case bytes.HasPrefix(data, pngMagic):
		return ports.FormatPNG
	default:
		return ports.FormatUnknown
	}
}
