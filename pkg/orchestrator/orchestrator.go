// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"image/color"

	"github.com/ideamans/go-l10n"
	"github.com/user/animshow/pkg/animated"
	"github.com/user/animshow/pkg/pipeline"
	"github.com/user/animshow/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputPath string

	// Outputs; an empty path skips that stage.
	PreviewPath string
	SheetPath   string
	VideoPath   string

	// Decode
	PreviewFrame   int
	Transformation animated.Transformation

	// Preview
	PreviewMaxWidth int

	// Sheet
	SheetColumns      int
	SheetThumbWidth   int
	SheetGap          int
	SheetLabels       bool
	SheetCheckerboard bool

	// Style
	BackgroundColor [4]uint8 // RGBA
	BorderColor     [4]uint8 // RGBA

	// Export
	VideoQuality int
	VideoLoops   int

	// Composition
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SheetColumns:    4,
		SheetThumbWidth: 160,
		SheetGap:        8,
		SheetLabels:     true,
		VideoQuality:    85,
		VideoLoops:      1,
		Workers:         4,
	}
}

// Orchestrator coordinates the execution of all pipeline stages. It is the
// owner of the decode result: the stages only borrow it, and the
// orchestrator disposes it when the run finishes.
type Orchestrator struct {
	decodeStage  pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult]
	sheetStage   pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult]
	exportStage  pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	renderer     ports.Renderer
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult],
	sheetStage pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:  decodeStage,
		previewStage: previewStage,
		sheetStage:   sheetStage,
		exportStage:  exportStage,
		renderer:     renderer,
		fs:           fs,
		logger:       logger,
	}
}

// Run executes the configured pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Read input
	o.logger.Info(l10n.F("Reading %s", config.InputPath))
	data, err := o.fs.ReadFile(config.InputPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input: %s", err))
		return RunResult{}, fmt.Errorf("read input: %w", err)
	}

	// 2. Decode
	decodeInput := o.buildDecodeInput(config, data)
	decoded, err := o.decodeStage.Execute(ctx, decodeInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode image: %s", err))
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}
	result := decoded.Result
	defer func() {
		o.logger.Debug(l10n.T("Disposing decode result"))
		result.Dispose()
	}()

	meta := result.Image()
	o.logger.Info(l10n.F("Decoded %dx%d animation with %d frames", meta.Width(), meta.Height(), meta.FrameCount()))

	decodedFrames := 0
	for i := 0; i < meta.FrameCount(); i++ {
		if result.HasDecodedFrame(i) {
			decodedFrames++
		}
	}

	run := RunResult{
		Format:        decoded.Format.String(),
		CanvasWidth:   meta.Width(),
		CanvasHeight:  meta.Height(),
		FrameCount:    meta.FrameCount(),
		DecodedFrames: decodedFrames,
		LoopCount:     meta.LoopCount(),
		DurationMs:    meta.DurationMs(),
	}

	// 3. Preview (optional)
	if config.PreviewPath != "" {
		o.logger.Info(l10n.F("Extracting preview frame %d", result.FrameForPreview()))
		previewInput := o.buildPreviewInput(config, result)
		preview, err := o.previewStage.Execute(ctx, previewInput)
		if err != nil {
			o.logger.Error(l10n.F("Failed to extract preview: %s", err))
			return RunResult{}, fmt.Errorf("preview stage: %w", err)
		}
		if err := o.fs.WriteFile(config.PreviewPath, preview.ImageData); err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("write preview: %w", err)
		}
		o.logger.Info(l10n.F("Output saved to %s", config.PreviewPath))
		run.PreviewBytes = len(preview.ImageData)
	}

	// 4. Contact sheet (optional)
	if config.SheetPath != "" {
		o.logger.Info(l10n.F("Composing contact sheet (%d frames, %d columns)", meta.FrameCount(), config.SheetColumns))
		sheetInput := o.buildSheetInput(config, result)
		sheet, err := o.sheetStage.Execute(ctx, sheetInput)
		if err != nil {
			o.logger.Error(l10n.F("Failed to compose contact sheet: %s", err))
			return RunResult{}, fmt.Errorf("sheet stage: %w", err)
		}
		encoded, err := o.renderer.EncodeImage(sheet.Image, ports.OutputPNG, 0)
		if err != nil {
			return RunResult{}, fmt.Errorf("encode sheet: %w", err)
		}
		if err := o.fs.WriteFile(config.SheetPath, encoded); err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("write sheet: %w", err)
		}
		o.logger.Info(l10n.F("Output saved to %s", config.SheetPath))
		run.SheetBytes = len(encoded)
	}

	// 5. Video export (optional)
	if config.VideoPath != "" {
		o.logger.Info(l10n.F("Exporting %d frames as MJPEG video", meta.FrameCount()))
		exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{Result: result})
		if err != nil {
			o.logger.Error(l10n.F("Failed to export video: %s", err))
			return RunResult{}, fmt.Errorf("export stage: %w", err)
		}
		if err := o.fs.WriteFile(config.VideoPath, exported.VideoData); err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("write video: %w", err)
		}
		o.logger.Info(l10n.F("Video exported: %d bytes, %d ms", len(exported.VideoData), exported.DurationMs))
		run.VideoBytes = len(exported.VideoData)
		run.VideoDurationMs = exported.DurationMs
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))
	return run, nil
}

func (o *Orchestrator) buildDecodeInput(config Config, data []byte) pipeline.DecodeInput {
	// Sheet and video need every frame; preview alone decodes just the
	// preview frame.
	return pipeline.DecodeInput{
		Data: data,
		Options: ports.DecodeOptions{
			DecodeAllFrames: config.SheetPath != "" || config.VideoPath != "",
			DecodePreview:   config.PreviewPath != "",
			PreviewFrame:    config.PreviewFrame,
			Transformation:  config.Transformation,
		},
	}
}

func (o *Orchestrator) buildPreviewInput(config Config, result *animated.Result) pipeline.PreviewInput {
	input := pipeline.DefaultPreviewInput()
	input.Result = result
	input.MaxWidth = config.PreviewMaxWidth
	return input
}

func (o *Orchestrator) buildSheetInput(config Config, result *animated.Result) pipeline.SheetInput {
	theme := pipeline.DefaultSheetTheme()
	theme.Checkerboard = config.SheetCheckerboard
	if config.BackgroundColor != [4]uint8{} {
		theme.BackgroundColor = rgbaFromArray(config.BackgroundColor)
	}
	if config.BorderColor != [4]uint8{} {
		theme.BorderColor = rgbaFromArray(config.BorderColor)
	}

	return pipeline.SheetInput{
		Result:     result,
		Columns:    config.SheetColumns,
		ThumbWidth: config.SheetThumbWidth,
		Gap:        config.SheetGap,
		Labels:     config.SheetLabels,
		Theme:      theme,
		Workers:    config.Workers,
	}
}

func rgbaFromArray(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Animation information
	Format       string
	CanvasWidth  int
	CanvasHeight int
	FrameCount   int
	LoopCount    int
	DurationMs   int

	// DecodedFrames is how many frames carried eagerly decoded buffers.
	DecodedFrames int

	// Output sizes in bytes (zero when the stage did not run)
	PreviewBytes    int
	SheetBytes      int
	VideoBytes      int
	VideoDurationMs int
}
