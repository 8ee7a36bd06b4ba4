package ports

import "image"

// ExportFrame is one frame handed to a video exporter, with its display
// duration.
type ExportFrame struct {
	Image      image.Image
	DurationMs int
}

// VideoExporter turns a frame sequence into an encoded video container.
type VideoExporter interface {
	// Export encodes and muxes the frames. All frames must share one size.
	Export(frames []ExportFrame) ([]byte, error)
}
