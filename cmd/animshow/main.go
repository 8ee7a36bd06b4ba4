// Package main provides the CLI entry point for animshow.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/animshow/pkg/adapters/bitmappool"
	"github.com/user/animshow/pkg/adapters/filesink"
	"github.com/user/animshow/pkg/adapters/ggrenderer"
	"github.com/user/animshow/pkg/adapters/logger"
	"github.com/user/animshow/pkg/adapters/mjpegexporter"
	"github.com/user/animshow/pkg/adapters/nullsink"
	"github.com/user/animshow/pkg/adapters/osfilesystem"
	"github.com/user/animshow/pkg/adapters/smartdecoder"
	"github.com/user/animshow/pkg/config"
	"github.com/user/animshow/pkg/orchestrator"
	"github.com/user/animshow/pkg/ports"
	"github.com/user/animshow/pkg/stages/decode"
	"github.com/user/animshow/pkg/stages/export"
	"github.com/user/animshow/pkg/stages/preview"
	"github.com/user/animshow/pkg/stages/sheet"
	"github.com/user/animshow/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Inspect InspectCmd `cmd:"" help:"Inspect an animated image and print a summary."`
	Preview PreviewCmd `cmd:"" help:"Extract a preview frame as a still image."`
	Sheet   SheetCmd   `cmd:"" help:"Compose all frames into a contact sheet."`
	Export  ExportCmd  `cmd:"" help:"Export the animation as an MJPEG MP4 video."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// CommonFlags are shared by all processing subcommands.
type CommonFlags struct {
	Config string `short:"C" help:"Path to YAML configuration file."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// InspectCmd defines the inspect subcommand.
type InspectCmd struct {
	Input string `arg:"" help:"Input animation file path."`

	Summary string `short:"s" help:"Write the summary to a file instead of stdout."`
	Format  string `short:"f" default:"markdown" enum:"markdown,json" help:"Summary format (markdown, json)."`

	CommonFlags `embed:""`
}

// PreviewCmd defines the preview subcommand.
type PreviewCmd struct {
	Input  string `arg:"" help:"Input animation file path."`
	Output string `short:"o" required:"" help:"Output still image file path."`

	Frame    int `help:"Frame index to use as the preview."`
	MaxWidth int `help:"Maximum preview width in pixels (0 = original size)."`

	CommonFlags `embed:""`
}

// SheetCmd defines the sheet subcommand.
type SheetCmd struct {
	Input  string `arg:"" help:"Input animation file path."`
	Output string `short:"o" required:"" help:"Output contact sheet file path."`

	Columns    *int `short:"c" help:"Number of columns in the grid."`
	ThumbWidth *int `help:"Thumbnail width in pixels."`
	Gap        *int `help:"Gap between thumbnails in pixels."`
	NoLabels   bool `help:"Disable frame index and duration labels."`

	Checkerboard bool `help:"Draw a checkerboard backdrop behind transparent frames."`

	// Style options
	BackgroundColor *string `help:"Background color (hex, e.g., #1e1e1e)."`
	BorderColor     *string `help:"Border color (hex, e.g., #505050)."`

	Workers *int `help:"Number of goroutines scaling thumbnails."`

	CommonFlags `embed:""`
}

// ExportCmd defines the export subcommand.
type ExportCmd struct {
	Input  string `arg:"" help:"Input animation file path."`
	Output string `short:"o" required:"" help:"Output MP4 file path."`

	Quality *int `short:"q" help:"JPEG quality for video frames (1-100)."`
	Loops   *int `help:"Number of times to repeat the animation."`

	CommonFlags `embed:""`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("animshow"),
		kong.Description("Inspect animated images and render previews, contact sheets and videos."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger builds the logger configured by the common flags.
func (f *CommonFlags) newLogger() ports.Logger {
	if f.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(f.LogLevel))
}

// loadConfig loads the YAML configuration, or defaults when no file is given.
func (f *CommonFlags) loadConfig() (config.Config, error) {
	if f.Config == "" {
		return config.Defaults(), nil
	}
	return config.LoadFromFile(f.Config)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}

// runPipeline wires the adapters and stages and executes one run.
func runPipeline(ctx context.Context, cfg config.Config, flags *CommonFlags, log ports.Logger) (orchestrator.RunResult, error) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	allocator := bitmappool.New()
	decoder := smartdecoder.New(allocator)
	exporter := mjpegexporter.New(mjpegexporter.Options{
		Quality: cfg.VideoQuality,
		Loops:   cfg.VideoLoops,
	})

	var sink ports.DebugSink
	if flags.Debug {
		if err := fs.MkdirAll(flags.DebugDir); err != nil {
			return orchestrator.RunResult{}, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(flags.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		decode.NewStage(decoder, sink, log),
		preview.NewStage(renderer, log),
		sheet.NewStage(renderer, log, cfg.Workers),
		export.NewStage(exporter, log),
		renderer,
		fs,
		log,
	)

	return orch.Run(ctx, cfg.ToOrchestratorConfig())
}

// Run executes the inspect command.
func (cmd *InspectCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	cfg.InputPath = cmd.Input
	cfg.PreviewPath = ""
	cfg.SheetPath = ""
	cfg.VideoPath = ""

	log := cmd.newLogger()
	ctx, cancel := signalContext(log)
	defer cancel()

	run, err := runPipeline(ctx, cfg, &cmd.CommonFlags, log)
	if err != nil {
		return err
	}

	fileSize, _ := osfilesystem.New().FileSize(cmd.Input)
	summary := buildSummary(cmd.Input, fileSize, run, cfg)

	var formatter summarizer.Formatter
	if cmd.Format == "json" {
		formatter = summarizer.NewJSONFormatter()
	} else {
		formatter = summarizer.NewMarkdownFormatter()
	}

	if cmd.Summary != "" {
		if err := summarizer.NewWriter(formatter).Write(cmd.Summary, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		log.Info(l10n.F("Summary saved to %s", cmd.Summary))
		return nil
	}

	fmt.Print(formatter.Format(summary))
	return nil
}

// Run executes the preview command.
func (cmd *PreviewCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	cfg.InputPath = cmd.Input
	cfg.PreviewPath = cmd.Output
	cfg.PreviewFrame = cmd.Frame
	cfg.PreviewMaxWidth = cmd.MaxWidth

	log := cmd.newLogger()
	ctx, cancel := signalContext(log)
	defer cancel()

	_, err = runPipeline(ctx, cfg, &cmd.CommonFlags, log)
	return err
}

// Run executes the sheet command.
func (cmd *SheetCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	cfg.InputPath = cmd.Input
	cfg.SheetPath = cmd.Output

	if cmd.Columns != nil {
		cfg.SheetColumns = *cmd.Columns
	}
	if cmd.ThumbWidth != nil {
		cfg.SheetThumbWidth = *cmd.ThumbWidth
	}
	if cmd.Gap != nil {
		cfg.SheetGap = *cmd.Gap
	}
	if cmd.NoLabels {
		cfg.SheetLabels = false
	}
	if cmd.Checkerboard {
		cfg.Theme.Checkerboard = true
	}
	if cmd.BackgroundColor != nil {
		cfg.Theme.BackgroundColor = *cmd.BackgroundColor
	}
	if cmd.BorderColor != nil {
		cfg.Theme.BorderColor = *cmd.BorderColor
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}

	log := cmd.newLogger()
	ctx, cancel := signalContext(log)
	defer cancel()

	_, err = runPipeline(ctx, cfg, &cmd.CommonFlags, log)
	return err
}

// Run executes the export command.
func (cmd *ExportCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	cfg.InputPath = cmd.Input
	cfg.VideoPath = cmd.Output

	if cmd.Quality != nil {
		cfg.VideoQuality = *cmd.Quality
	}
	if cmd.Loops != nil {
		cfg.VideoLoops = *cmd.Loops
	}

	log := cmd.newLogger()
	ctx, cancel := signalContext(log)
	defer cancel()

	_, err = runPipeline(ctx, cfg, &cmd.CommonFlags, log)
	return err
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("animshow version %s", version))
	return nil
}

// buildSummary converts a pipeline run into a Summary.
func buildSummary(inputPath string, fileSize int64, run orchestrator.RunResult, cfg config.Config) *summarizer.Summary {
	return summarizer.NewBuilder().
		WithSource(inputPath, run.Format, fileSize).
		WithAnimation(summarizer.AnimationInfo{
			CanvasWidth:   run.CanvasWidth,
			CanvasHeight:  run.CanvasHeight,
			FrameCount:    run.FrameCount,
			DecodedFrames: run.DecodedFrames,
			LoopCount:     run.LoopCount,
			DurationMs:    run.DurationMs,
		}).
		WithOutputs(summarizer.OutputsInfo{
			PreviewPath:     cfg.PreviewPath,
			PreviewBytes:    run.PreviewBytes,
			SheetPath:       cfg.SheetPath,
			SheetBytes:      run.SheetBytes,
			VideoPath:       cfg.VideoPath,
			VideoBytes:      run.VideoBytes,
			VideoDurationMs: run.VideoDurationMs,
		}).
		Build()
}
