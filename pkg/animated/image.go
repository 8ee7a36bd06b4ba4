// Package animated holds the decode-time model of a multi-frame image: the
// image descriptor, per-frame metadata, and the reference-counted result
// container that owns decoded pixel buffers.
package animated

import "image"

// Disposal and blend modes for rendering one frame on top of the previous
// canvas.
const (
	// DisposeNone leaves the current frame visible when rendering the next.
	DisposeNone = 0

	// DisposeBackground clears the area used by the current frame before
	// rendering the next.
	DisposeBackground = 1

	// BlendOver alpha-blends the frame over the previous canvas.
	BlendOver = 0

	// BlendSource replaces the corresponding area of the previous canvas.
	BlendSource = 1
)

// LoopForever is the loop count of an animation that repeats indefinitely.
const LoopForever = 0

// FrameInfo describes a single frame of an animated image.
type FrameInfo struct {
	// X and Y are the offset of the frame within the canvas.
	X int
	Y int

	// Width and Height are the frame dimensions.
	Width  int
	Height int

	// DurationMs is the display duration of the frame in milliseconds.
	DurationMs int

	// DisposeMode is DisposeNone or DisposeBackground.
	DisposeMode int

	// BlendMode is BlendOver or BlendSource.
	BlendMode int
}

// Image is the descriptor of a decoded animated image: its canvas geometry
// and frame timing. It carries no pixel data; decoded pixels travel in
// reference-counted handles held by a Result.
type Image interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// FrameCount returns the number of frames in the animation.
	FrameCount() int

	// LoopCount returns the number of times the animation repeats, or
	// LoopForever.
	LoopCount() int

	// DurationMs returns the total duration of one loop in milliseconds.
	DurationMs() int

	// FrameDurationsMs returns the per-frame durations in milliseconds.
	FrameDurationsMs() []int

	// FrameInfo returns metadata for the frame at index.
	FrameInfo(index int) FrameInfo
}

// Transformation is a pixel-level adjustment applied when a frame is
// rendered. Implementations operate in place on the buffer they are given.
// A Transformation is configuration, not an owned resource.
type Transformation interface {
	// Transform applies the adjustment to img.
	Transform(img *image.RGBA)

	// Name identifies the transformation for logs and reports.
	Name() string
}

// Metadata is a plain Image implementation that decoders populate.
type Metadata struct {
	CanvasWidth  int
	CanvasHeight int
	Loops        int
	Frames       []FrameInfo
}

// Width returns the canvas width.
func (m *Metadata) Width() int { return m.CanvasWidth }

// Height returns the canvas height.
func (m *Metadata) Height() int { return m.CanvasHeight }

// FrameCount returns the number of frames.
func (m *Metadata) FrameCount() int { return len(m.Frames) }

// LoopCount returns the loop count, or LoopForever.
func (m *Metadata) LoopCount() int { return m.Loops }

// DurationMs returns the sum of all frame durations.
func (m *Metadata) DurationMs() int {
	total := 0
	for _, f := range m.Frames {
		total += f.DurationMs
	}
	return total
}

// FrameDurationsMs returns the per-frame durations.
func (m *Metadata) FrameDurationsMs() []int {
	durations := make([]int, len(m.Frames))
	for i, f := range m.Frames {
		durations[i] = f.DurationMs
	}
	return durations
}

// FrameInfo returns metadata for the frame at index.
func (m *Metadata) FrameInfo(index int) FrameInfo {
	return m.Frames[index]
}

var _ Image = (*Metadata)(nil)
