package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts the summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Animation Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	sb.WriteString("## Source\n\n")
	sb.WriteString(fmt.Sprintf("- Path: %s\n", summary.Source.Path))
	sb.WriteString(fmt.Sprintf("- Format: %s\n", summary.Source.Format))
	sb.WriteString(fmt.Sprintf("- File Size: %s\n", formatBytes(summary.Source.FileSize)))
	sb.WriteString("\n")

	anim := summary.Animation
	sb.WriteString("## Animation\n\n")
	sb.WriteString(fmt.Sprintf("- Canvas: %dx%d\n", anim.CanvasWidth, anim.CanvasHeight))
	sb.WriteString(fmt.Sprintf("- Frames: %d\n", anim.FrameCount))
	if anim.DecodedFrames > 0 {
		sb.WriteString(fmt.Sprintf("- Decoded Frames: %d\n", anim.DecodedFrames))
	}
	sb.WriteString(fmt.Sprintf("- Loops: %s\n", formatLoops(anim.LoopCount)))
	sb.WriteString(fmt.Sprintf("- Duration: %d ms\n", anim.DurationMs))
	if anim.DurationMs > 0 && anim.FrameCount > 0 {
		fps := float64(anim.FrameCount) * 1000.0 / float64(anim.DurationMs)
		sb.WriteString(fmt.Sprintf("- Average FPS: %.2f\n", fps))
	}
	sb.WriteString("\n")

	out := summary.Outputs
	sb.WriteString("## Outputs\n\n")
	if out.PreviewPath == "" && out.SheetPath == "" && out.VideoPath == "" {
		sb.WriteString("No outputs were generated.\n")
		return sb.String()
	}
	if out.PreviewPath != "" {
		sb.WriteString(fmt.Sprintf("- Preview: %s (%s)\n", out.PreviewPath, formatBytes(int64(out.PreviewBytes))))
	}
	if out.SheetPath != "" {
		sb.WriteString(fmt.Sprintf("- Contact Sheet: %s (%s)\n", out.SheetPath, formatBytes(int64(out.SheetBytes))))
	}
	if out.VideoPath != "" {
		sb.WriteString(fmt.Sprintf("- Video: %s (%s, %d ms)\n", out.VideoPath, formatBytes(int64(out.VideoBytes)), out.VideoDurationMs))
	}

	return sb.String()
}

func formatLoops(loops int) string {
	if loops == 0 {
		return "infinite"
	}
	return fmt.Sprintf("%d", loops)
}

// formatBytes formats a byte count with a human-readable unit.
func formatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
