package mocks

import (
	"github.com/user/animshow/pkg/ports"
)

// Exporter is a mock implementation of ports.VideoExporter.
type Exporter struct {
	ExportFunc func(frames []ports.ExportFrame) ([]byte, error)

	// LastFrames holds the frames from the most recent Export call.
	LastFrames []ports.ExportFrame
}

func (m *Exporter) Export(frames []ports.ExportFrame) ([]byte, error) {
	m.LastFrames = frames
	if m.ExportFunc != nil {
		return m.ExportFunc(frames)
	}
	return []byte("video"), nil
}

var _ ports.VideoExporter = (*Exporter)(nil)
