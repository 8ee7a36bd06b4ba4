// Package sheet implements the stage that composes decoded frames into a
// contact-sheet image.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
)

// ErrNoDecodedFrames is returned when the result holds no decoded frames to
// compose.
var ErrNoDecodedFrames = errors.New("sheet: result holds no decoded frames")

// Stage composes decoded frames into a grid.
type Stage struct {
	renderer   ports.Renderer
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new sheet stage.
func NewStage(renderer ports.Renderer, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		renderer:   renderer,
		logger:     logger.WithComponent("sheet"),
		numWorkers: numWorkers,
	}
}

// thumb is one scaled frame with its slot index.
type thumb struct {
	index int
	img   image.Image
}

// Execute scales every decoded frame and draws the grid. Frame handles are
// cloned per worker and closed as soon as the thumbnail is scaled, so the
// stage holds no references when it returns.
func (s *Stage) Execute(ctx context.Context, input pipeline.SheetInput) (pipeline.SheetResult, error) {
	result := input.Result
	meta := result.Image()

	indices := decodedIndices(result)
	if len(indices) == 0 {
		return pipeline.SheetResult{}, ErrNoDecodedFrames
	}

	cols := input.Columns
	if cols <= 0 {
		cols = 1
	}
	if cols > len(indices) {
		cols = len(indices)
	}
	rows := (len(indices) + cols - 1) / cols

	thumbW := input.ThumbWidth
	thumbH := thumbW * meta.Height() / meta.Width()

	workers := s.numWorkers
	if input.Workers > 0 {
		workers = input.Workers
	}
	if workers > len(indices) {
		workers = len(indices)
	}
	s.logger.Debug("Composing %d frames into %dx%d grid with %d workers", len(indices), cols, rows, workers)

	thumbs, err := s.scaleFrames(ctx, result, indices, thumbW, thumbH, workers)
	if err != nil {
		return pipeline.SheetResult{}, err
	}

	gap := input.Gap
	width := cols*thumbW + (cols+1)*gap
	height := rows*thumbH + (rows+1)*gap
	canvas := s.renderer.CreateCanvas(width, height, input.Theme.BackgroundColor)

	for slot, th := range thumbs {
		col := slot % cols
		row := slot / cols
		x := gap + col*(thumbW+gap)
		y := gap + row*(thumbH+gap)

		if input.Theme.Checkerboard {
			canvas.DrawCheckerboard(x, y, thumbW, thumbH, 8, input.Theme.CheckerLight, input.Theme.CheckerDark)
		}
		canvas.DrawImage(th.img, x, y)
		canvas.DrawRectStroke(x, y, thumbW, thumbH, input.Theme.BorderColor, 1)
		if input.Labels {
			label := fmt.Sprintf("#%d %dms", th.index, meta.FrameInfo(th.index).DurationMs)
			canvas.DrawText(label, x+4, y+thumbH-8, ports.TextStyle{
				FontSize: 11,
				Color:    input.Theme.LabelColor,
				Align:    ports.AlignLeft,
			})
		}
	}

	return pipeline.SheetResult{Image: canvas.ToImage(), Rows: rows, Cols: cols}, nil
}

// scaleFrames produces the thumbnails slot-ordered, one per decoded frame.
func (s *Stage) scaleFrames(ctx context.Context, result *animated.Result, indices []int, thumbW, thumbH, workers int) ([]thumb, error) {
	jobs := make(chan int, len(indices))
	out := make([]thumb, len(indices))
	errCh := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slot := range jobs {
				if err := ctx.Err(); err != nil {
					errCh <- err
					return
				}
				index := indices[slot]
				ref := result.DecodedFrame(index)
				if ref == nil {
					// Disposed between listing and cloning.
					errCh <- ErrNoDecodedFrames
					return
				}
				img := s.renderer.ResizeImage(ref.Get(), thumbW, thumbH)
				ref.Close()
				out[slot] = thumb{index: index, img: img}
			}
		}()
	}

	for slot := range indices {
		jobs <- slot
	}
	close(jobs)
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return out, nil
}

func decodedIndices(result *animated.Result) []int {
	var indices []int
	for i := 0; i < result.Image().FrameCount(); i++ {
		if result.HasDecodedFrame(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

var _ pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult] = (*Stage)(nil)
