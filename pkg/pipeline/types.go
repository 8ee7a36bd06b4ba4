package pipeline

import (
	"image"
	"image/color"

	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/ports"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains the raw image data and decode options.
type DecodeInput struct {
	Data    []byte
	Options ports.DecodeOptions
}

// DecodeResult contains the decoded animation.
type DecodeResult struct {
	// Result owns the decoded buffers. Whoever receives the DecodeResult is
	// responsible for disposing it.
	Result *animated.Result

	// Format is the detected container format.
	Format ports.ImageFormat
}

// =============================================================================
// Preview Stage Types
// =============================================================================

// PreviewInput contains parameters for preview extraction.
type PreviewInput struct {
	Result *animated.Result

	// MaxWidth bounds the preview width; 0 keeps the original size.
	MaxWidth int

	// Format is the still-image output format.
	Format ports.OutputFormat

	// Quality is the JPEG quality when Format is OutputJPEG.
	Quality int
}

// DefaultPreviewInput returns PreviewInput with default values.
func DefaultPreviewInput() PreviewInput {
	return PreviewInput{
		Format:  ports.OutputPNG,
		Quality: 90,
	}
}

// PreviewResult contains the encoded preview image.
type PreviewResult struct {
	ImageData  []byte
	FrameIndex int
}

// =============================================================================
// Sheet Stage Types
// =============================================================================

// SheetInput contains parameters for contact-sheet composition.
type SheetInput struct {
	Result *animated.Result

	Columns    int
	ThumbWidth int
	Gap        int
	Labels     bool
	Theme      SheetTheme

	// Workers bounds the number of goroutines scaling thumbnails.
	Workers int
}

// DefaultSheetInput returns SheetInput with default values.
func DefaultSheetInput() SheetInput {
	return SheetInput{
		Columns:    4,
		ThumbWidth: 160,
		Gap:        8,
		Labels:     true,
		Theme:      DefaultSheetTheme(),
		Workers:    4,
	}
}

// SheetTheme defines contact-sheet styling.
type SheetTheme struct {
	BackgroundColor color.Color
	BorderColor     color.Color
	LabelColor      color.Color

	// Checkerboard draws an alternating backdrop behind each thumbnail so
	// transparent regions stay visible.
	Checkerboard bool
	CheckerLight color.Color
	CheckerDark  color.Color
}

// DefaultSheetTheme returns a default sheet theme.
func DefaultSheetTheme() SheetTheme {
	return SheetTheme{
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		BorderColor:     color.RGBA{R: 80, G: 80, B: 80, A: 255},
		LabelColor:      color.White,
		CheckerLight:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
		CheckerDark:     color.RGBA{R: 150, G: 150, B: 150, A: 255},
	}
}

// SheetResult contains the composed contact sheet.
type SheetResult struct {
	Image image.Image
	Rows  int
	Cols  int
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput contains parameters for video export.
type ExportInput struct {
	Result *animated.Result
}

// ExportResult contains the exported video.
type ExportResult struct {
	VideoData  []byte
	DurationMs int
	FrameCount int
}
