package decode

import (
	"context"
	"errors"
	"testing"

	"github.com/user/animshow/pkg/adapters/logger"
	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/mocks"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	stage := NewStage(&mocks.Decoder{}, mocks.NewDebugSink(false), logger.NewNoop())

	out, err := stage.Execute(context.Background(), pipeline.DecodeInput{
		Data:    []byte("GIF89a..."),
		Options: ports.DecodeOptions{DecodeAllFrames: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer out.Result.Dispose()

	if out.Result.Image().FrameCount() != 3 {
		t.Errorf("expected 3 frames, got %d", out.Result.Image().FrameCount())
	}
	if out.Format != ports.FormatGIF {
		t.Errorf("expected gif format, got %v", out.Format)
	}
}

func TestStage_Execute_SavesDebugOutput(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(&mocks.Decoder{}, sink, logger.NewNoop())

	out, err := stage.Execute(context.Background(), pipeline.DecodeInput{
		Data:    []byte("GIF89a..."),
		Options: ports.DecodeOptions{DecodeAllFrames: true, DecodePreview: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer out.Result.Dispose()

	if sink.MetadataJSON == nil {
		t.Error("metadata not saved")
	}
	if sink.SavedFrameCount() != 3 {
		t.Errorf("expected 3 frames saved, got %d", sink.SavedFrameCount())
	}
	if sink.Preview == nil {
		t.Error("preview not saved")
	}

	// Saving debug output must not consume the result's own references.
	preview := out.Result.PreviewBitmap()
	if !out.Result.HasDecodedFrame(0) || preview == nil {
		t.Error("debug save consumed result buffers")
	}
	if preview != nil {
		preview.Close()
	}
}

func TestStage_Execute_DecoderError(t *testing.T) {
	dec := &mocks.Decoder{
		DecodeFunc: func(data []byte, opts ports.DecodeOptions) (*animated.Result, error) {
			return nil, errors.New("corrupt data")
		},
	}
	stage := NewStage(dec, mocks.NewDebugSink(false), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.DecodeInput{}); err == nil {
		t.Fatal("expected decoder error to propagate")
	}
}

func TestStage_Execute_CanceledContext(t *testing.T) {
	stage := NewStage(&mocks.Decoder{}, mocks.NewDebugSink(false), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, pipeline.DecodeInput{}); err == nil {
		t.Fatal("expected context error")
	}
}
