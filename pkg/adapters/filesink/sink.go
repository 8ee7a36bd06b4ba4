// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/animshow/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveMetadataJSON saves the decoded animation metadata as JSON.
func (s *Sink) SaveMetadataJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "metadata.json")
	return s.fs.WriteFile(path, data)
}

// SaveDecodedFrame saves one decoded frame buffer as PNG.
func (s *Sink) SaveDecodedFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.OutputPNG, 0)
	if err != nil {
		return fmt.Errorf("encode decoded frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SavePreview saves the extracted preview frame as PNG.
func (s *Sink) SavePreview(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.OutputPNG, 0)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	path := filepath.Join(s.baseDir, "preview.png")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
