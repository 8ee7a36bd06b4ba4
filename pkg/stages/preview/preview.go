// Package preview implements the stage that extracts and encodes the
// preview frame of an animation result.
package preview

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/refs"
)

// ErrNoPreview is returned when the result holds neither a preview buffer
// nor a decoded frame at the preview index.
var ErrNoPreview = errors.New("preview: result holds no preview buffer")

// Stage extracts the preview frame from a decode result.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new preview stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("preview"),
	}
}

// Execute encodes the result's preview frame. The stage clones the handle it
// reads from and releases the clone before returning; the result itself is
// left untouched for the owner to dispose.
func (s *Stage) Execute(ctx context.Context, input pipeline.PreviewInput) (pipeline.PreviewResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.PreviewResult{}, err
	}

	index := input.Result.FrameForPreview()
	ref := s.previewRef(input.Result, index)
	if ref == nil {
		return pipeline.PreviewResult{}, ErrNoPreview
	}
	defer ref.Close()

	img := s.render(input.Result, ref)

	if input.MaxWidth > 0 && img.Bounds().Dx() > input.MaxWidth {
		scale := float64(input.MaxWidth) / float64(img.Bounds().Dx())
		height := int(float64(img.Bounds().Dy()) * scale)
		img = s.renderer.ResizeImage(img, input.MaxWidth, height)
	}

	data, err := s.renderer.EncodeImage(img, input.Format, input.Quality)
	if err != nil {
		return pipeline.PreviewResult{}, fmt.Errorf("encode preview: %w", err)
	}

	s.logger.Debug("Preview frame %d encoded: %d bytes", index, len(data))
	return pipeline.PreviewResult{ImageData: data, FrameIndex: index}, nil
}

// previewRef returns an owned handle to the preview pixels: the dedicated
// preview buffer when present, otherwise the decoded frame at the preview
// index.
func (s *Stage) previewRef(result *animated.Result, index int) *refs.Bitmap {
	if ref := result.PreviewBitmap(); ref != nil {
		return ref
	}
	if index < result.Image().FrameCount() && result.HasDecodedFrame(index) {
		return result.DecodedFrame(index)
	}
	return nil
}

// render applies the result's transformation, if any, to a copy of the
// buffer. The shared buffer itself is never written.
func (s *Stage) render(result *animated.Result, ref *refs.Bitmap) image.Image {
	src := ref.Get()
	transform := result.Transformation()
	if transform == nil {
		return src
	}

	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	transform.Transform(dst)
	s.logger.Debug("Applied transformation %s", transform.Name())
	return dst
}

var _ pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult] = (*Stage)(nil)
