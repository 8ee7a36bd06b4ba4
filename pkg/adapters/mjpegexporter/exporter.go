// Package mjpegexporter turns a sequence of decoded animation frames into
// an MJPEG video in a fragmented MP4 container. Every sample is an intra
// frame, so the output seeks cleanly and needs no inter-frame codec.
package mjpegexporter

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/user/animshow/pkg/ports"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 85

// defaultFrameMs is the duration assumed for frames without timing
// information (still images exported as one-frame videos).
const defaultFrameMs = 100

// Options configures the exporter.
type Options struct {
	// Quality is the JPEG quality (1-100).
	Quality int

	// Loops repeats the frame sequence in the output. 0 and 1 both mean a
	// single pass; animations that loop forever have to pick a finite count
	// for export.
	Loops int
}

// Exporter encodes frames to MJPEG-in-MP4.
type Exporter struct {
	quality int
	loops   int
}

// New creates a new Exporter.
func New(opts Options) *Exporter {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	loops := opts.Loops
	if loops < 1 {
		loops = 1
	}
	return &Exporter{quality: quality, loops: loops}
}

// Export encodes the frames and muxes them into an MP4. The first frame
// fixes the video dimensions; smaller frames are centered on their canvas by
// the decoder before they get here, so all frames share one size.
func (e *Exporter) Export(frames []ports.ExportFrame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("export: no frames")
	}

	bounds := frames[0].Image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("export: empty frame dimensions")
	}

	samples := make([]sample, 0, len(frames)*e.loops)
	for loop := 0; loop < e.loops; loop++ {
		for _, frame := range frames {
			if frame.Image.Bounds().Dx() != width || frame.Image.Bounds().Dy() != height {
				return nil, fmt.Errorf("export: frame size %v differs from %dx%d",
					frame.Image.Bounds(), width, height)
			}
			data, err := e.encodeJPEG(frame.Image)
			if err != nil {
				return nil, err
			}
			durationMs := frame.DurationMs
			if durationMs <= 0 {
				durationMs = defaultFrameMs
			}
			samples = append(samples, sample{data: data, durationMs: durationMs})
		}
	}

	return buildMP4(samples, width, height)
}

func (e *Exporter) encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

var _ ports.VideoExporter = (*Exporter)(nil)
