// Package summarizer provides summary generation for inspection results.
package summarizer

import "time"

// Summary contains all data collected during an inspection run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source file information
	Source SourceInfo

	// Animation descriptor
	Animation AnimationInfo

	// Output details
	Outputs OutputsInfo
}

// SourceInfo contains information about the input file.
type SourceInfo struct {
	Path     string
	Format   string
	FileSize int64
}

// AnimationInfo contains the decoded animation descriptor.
type AnimationInfo struct {
	CanvasWidth  int
	CanvasHeight int
	FrameCount   int

	// DecodedFrames is how many frames carried eagerly decoded buffers.
	DecodedFrames int

	// LoopCount is 0 for infinite looping.
	LoopCount int

	DurationMs int
}

// OutputsInfo contains information about the generated outputs.
// An empty path means that output was not requested.
type OutputsInfo struct {
	PreviewPath  string
	PreviewBytes int

	SheetPath  string
	SheetBytes int

	VideoPath       string
	VideoBytes      int
	VideoDurationMs int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source file information.
func (b *Builder) WithSource(path, format string, fileSize int64) *Builder {
	b.summary.Source = SourceInfo{
		Path:     path,
		Format:   format,
		FileSize: fileSize,
	}
	return b
}

// WithAnimation sets the animation descriptor.
func (b *Builder) WithAnimation(animation AnimationInfo) *Builder {
	b.summary.Animation = animation
	return b
}

// WithOutputs sets output information.
func (b *Builder) WithOutputs(outputs OutputsInfo) *Builder {
	b.summary.Outputs = outputs
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
