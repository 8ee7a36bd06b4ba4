// Package export implements the stage that turns decoded frames into a
// video file.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// ErrNoDecodedFrames is returned when the result holds no decoded frames to
// export.
var ErrNoDecodedFrames = errors.New("export: result holds no decoded frames")

// Stage exports decoded frames through a VideoExporter.
type Stage struct {
	exporter ports.VideoExporter
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(exporter ports.VideoExporter, logger ports.Logger) *Stage {
	return &Stage{
		exporter: exporter,
		logger:   logger.WithComponent("export"),
	}
}

// Execute exports every decoded frame in index order. Frame handles stay
// open for the duration of the export and are all released before the stage
// returns.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ExportResult{}, err
	}

	result := input.Result
	meta := result.Image()
	transform := result.Transformation()

	var handles []*refs.Bitmap
	defer func() { refs.CloseAll(handles) }()

	var frames []ports.ExportFrame
	durationMs := 0
	for i := 0; i < meta.FrameCount(); i++ {
		if !result.HasDecodedFrame(i) {
			continue
		}
		ref := result.DecodedFrame(i)
		if ref == nil {
			continue
		}
		handles = append(handles, ref)

		var img image.Image = ref.Get()
		if transform != nil {
			copied := image.NewRGBA(ref.Get().Rect)
			copy(copied.Pix, ref.Get().Pix)
			transform.Transform(copied)
			img = copied
		}

		dur := meta.FrameInfo(i).DurationMs
		frames = append(frames, ports.ExportFrame{Image: img, DurationMs: dur})
		durationMs += dur
	}

	if len(frames) == 0 {
		return pipeline.ExportResult{}, ErrNoDecodedFrames
	}

	s.logger.Debug("Exporting %d frames, %d ms", len(frames), durationMs)

	data, err := s.exporter.Export(frames)
	if err != nil {
		return pipeline.ExportResult{}, fmt.Errorf("export video: %w", err)
	}

	s.logger.Debug("Video exported: %d bytes", len(data))
	return pipeline.ExportResult{
		VideoData:  data,
		DurationMs: durationMs,
		FrameCount: len(frames),
	}, nil
}

var _ pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult] = (*Stage)(nil)
