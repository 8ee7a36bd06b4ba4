package mocks

import (
	"image"
	"sync"

	"github.com/user/animshow/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink. It records what was
// saved for test verification.
type DebugSink struct {
	mu      sync.RWMutex
	enabled bool

	MetadataJSON  []byte
	DecodedFrames map[int]image.Image
	Preview       image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:       enabled,
		DecodedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveMetadataJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MetadataJSON = data
	return nil
}

func (m *DebugSink) SaveDecodedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecodedFrames[index] = img
	return nil
}

func (m *DebugSink) SavePreview(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Preview = img
	return nil
}

// SavedFrameCount returns how many decoded frames were saved.
func (m *DebugSink) SavedFrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.DecodedFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
