package sheet

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/user/animshow/pkg/adapters/logger"
	"github.com/user/animshow/pkg/mocks"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	result, err := mocks.DecodedResult(6, ports.DecodeOptions{DecodeAllFrames: true})
	if err != nil {
		t.Fatalf("build result: %v", err)
	}
	defer result.Dispose()

	stage := NewStage(&mocks.Renderer{}, logger.NewNoop(), 2)

	input := pipeline.DefaultSheetInput()
	input.Result = result
	input.Columns = 4

	out, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cols != 4 || out.Rows != 2 {
		t.Errorf("expected 4x2 grid, got %dx%d", out.Cols, out.Rows)
	}
	if out.Image == nil {
		t.Fatal("expected a composed image")
	}
}

func TestStage_Execute_ColumnsClampedToFrames(t *testing.T) {
	result, err := mocks.DecodedResult(2, ports.DecodeOptions{DecodeAllFrames: true})
	if err != nil {
		t.Fatalf("build result: %v", err)
	}
	defer result.Dispose()

	stage := NewStage(&mocks.Renderer{}, logger.NewNoop(), 1)
	input := pipeline.DefaultSheetInput()
	input.Result = result
	input.Columns = 10

	out, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cols != 2 || out.Rows != 1 {
		t.Errorf("expected 2x1 grid, got %dx%d", out.Cols, out.Rows)
	}
}

func TestStage_Execute_NoDecodedFrames(t *testing.T) {
	result, err := mocks.DecodedResult(3, ports.DecodeOptions{})
	if err != nil {
		t.Fatalf("build result: %v", err)
	}
	defer result.Dispose()

	stage := NewStage(&mocks.Renderer{}, logger.NewNoop(), 2)
	input := pipeline.DefaultSheetInput()
	input.Result = result

	if _, err := stage.Execute(context.Background(), input); !errors.Is(err, ErrNoDecodedFrames) {
		t.Errorf("expected ErrNoDecodedFrames, got %v", err)
	}
}

func TestStage_Execute_ReleasesItsClones(t *testing.T) {
	result, err := mocks.DecodedResult(8, ports.DecodeOptions{DecodeAllFrames: true})
	if err != nil {
		t.Fatalf("build result: %v", err)
	}

	stage := NewStage(&mocks.Renderer{}, logger.NewNoop(), 4)
	input := pipeline.DefaultSheetInput()
	input.Result = result

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// After the stage returns, the result's references are the only ones
	// left; dispose must not panic on double-close.
	result.Dispose()
}

func TestStage_Execute_Checkerboard(t *testing.T) {
	result, err := mocks.DecodedResult(3, ports.DecodeOptions{DecodeAllFrames: true})
	if err != nil {
		t.Fatalf("build result: %v", err)
	}
	defer result.Dispose()

	canvas := &mocks.Canvas{}
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(width, height int, bg color.Color) ports.Canvas {
			return canvas
		},
	}

	stage := NewStage(renderer, logger.NewNoop(), 1)
	input := pipeline.DefaultSheetInput()
	input.Result = result
	input.Theme.Checkerboard = true

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canvas.DrawnCheckerboards != 3 {
		t.Errorf("expected a checkerboard per frame, got %d", canvas.DrawnCheckerboards)
	}
}
