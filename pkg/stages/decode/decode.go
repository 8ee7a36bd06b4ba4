// Package decode implements the stage that turns raw image bytes into a
// reference-counted animation result.
package decode

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
)

// Stage decodes image data through an AnimationDecoder.
type Stage struct {
	decoder ports.AnimationDecoder
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(decoder ports.AnimationDecoder, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		sink:    sink,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes the input. The caller owns the result in the output and
// must dispose it.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.DecodeResult{}, err
	}

	s.logger.Debug("Decoding %d bytes", len(input.Data))

	result, err := s.decoder.Decode(input.Data, input.Options)
	if err != nil {
		return pipeline.DecodeResult{}, fmt.Errorf("decode: %w", err)
	}

	meta := result.Image()
	s.logger.Debug("Decoded %dx%d, %d frames", meta.Width(), meta.Height(), meta.FrameCount())

	if s.sink.Enabled() {
		s.saveDebug(result)
	}

	format := ports.FormatUnknown
	if detector, ok := s.decoder.(interface{ Detect([]byte) ports.ImageFormat }); ok {
		format = detector.Detect(input.Data)
	} else {
		format = s.decoder.Format()
	}

	return pipeline.DecodeResult{Result: result, Format: format}, nil
}

// saveDebug writes metadata and any decoded buffers to the sink. Handles are
// cloned for the duration of the save and closed again.
func (s *Stage) saveDebug(result *animated.Result) {
	meta := result.Image()

	if data, err := json.MarshalIndent(metadataReport(meta), "", "  "); err == nil {
		s.sink.SaveMetadataJSON(data)
	}

	for i := 0; i < meta.FrameCount(); i++ {
		if !result.HasDecodedFrame(i) {
			continue
		}
		if ref := result.DecodedFrame(i); ref != nil {
			s.sink.SaveDecodedFrame(i, ref.Get())
			ref.Close()
		}
	}

	if ref := result.PreviewBitmap(); ref != nil {
		s.sink.SavePreview(ref.Get())
		ref.Close()
	}
}

func metadataReport(meta animated.Image) map[string]any {
	return map[string]any{
		"width":       meta.Width(),
		"height":      meta.Height(),
		"frame_count": meta.FrameCount(),
		"loop_count":  meta.LoopCount(),
		"duration_ms": meta.DurationMs(),
		"frames_ms":   meta.FrameDurationsMs(),
	}
}

var _ pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult] = (*Stage)(nil)
