package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveMetadataJSON saves the decoded animation metadata as JSON.
	SaveMetadataJSON(data []byte) error

	// SaveDecodedFrame saves one decoded frame buffer.
	SaveDecodedFrame(index int, img image.Image) error

	// SavePreview saves the extracted preview frame.
	SavePreview(img image.Image) error
}
