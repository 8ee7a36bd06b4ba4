package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSource(t *testing.T) {
	summary := NewBuilder().
		WithSource("anim.gif", "gif", 12345).
		Build()

	if summary.Source.Path != "anim.gif" {
		t.Errorf("expected path 'anim.gif', got '%s'", summary.Source.Path)
	}
	if summary.Source.Format != "gif" {
		t.Errorf("expected format 'gif', got '%s'", summary.Source.Format)
	}
	if summary.Source.FileSize != 12345 {
		t.Errorf("expected file size 12345, got %d", summary.Source.FileSize)
	}
}

func TestBuilder_WithAnimation(t *testing.T) {
	summary := NewBuilder().
		WithAnimation(AnimationInfo{
			CanvasWidth:  320,
			CanvasHeight: 240,
			FrameCount:   12,
			LoopCount:    0,
			DurationMs:   1200,
		}).
		Build()

	if summary.Animation.CanvasWidth != 320 || summary.Animation.CanvasHeight != 240 {
		t.Errorf("expected canvas 320x240, got %dx%d",
			summary.Animation.CanvasWidth, summary.Animation.CanvasHeight)
	}
	if summary.Animation.FrameCount != 12 {
		t.Errorf("expected 12 frames, got %d", summary.Animation.FrameCount)
	}
	if summary.Animation.DurationMs != 1200 {
		t.Errorf("expected duration 1200, got %d", summary.Animation.DurationMs)
	}
}

func TestBuilder_WithOutputs(t *testing.T) {
	summary := NewBuilder().
		WithOutputs(OutputsInfo{
			PreviewPath:     "preview.png",
			PreviewBytes:    1024,
			VideoPath:       "out.mp4",
			VideoBytes:      4096,
			VideoDurationMs: 1200,
		}).
		Build()

	if summary.Outputs.PreviewPath != "preview.png" {
		t.Errorf("expected preview path 'preview.png', got '%s'", summary.Outputs.PreviewPath)
	}
	if summary.Outputs.VideoBytes != 4096 {
		t.Errorf("expected video bytes 4096, got %d", summary.Outputs.VideoBytes)
	}
	if summary.Outputs.SheetPath != "" {
		t.Errorf("expected empty sheet path, got '%s'", summary.Outputs.SheetPath)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	summary := NewBuilder().
		WithSource("a.webp", "webp", 100).
		WithAnimation(AnimationInfo{FrameCount: 1}).
		WithOutputs(OutputsInfo{PreviewPath: "p.png"}).
		Build()

	if summary.Source.Format != "webp" {
		t.Errorf("expected format 'webp', got '%s'", summary.Source.Format)
	}
	if summary.Animation.FrameCount != 1 {
		t.Errorf("expected 1 frame, got %d", summary.Animation.FrameCount)
	}
	if summary.Outputs.PreviewPath != "p.png" {
		t.Errorf("expected preview path 'p.png', got '%s'", summary.Outputs.PreviewPath)
	}
}
