// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/animshow/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveMetadataJSON does nothing.
func (s *Sink) SaveMetadataJSON(data []byte) error {
	return nil
}

// SaveDecodedFrame does nothing.
func (s *Sink) SaveDecodedFrame(index int, img image.Image) error {
	return nil
}

// SavePreview does nothing.
func (s *Sink) SavePreview(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
