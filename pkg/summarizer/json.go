package summarizer

import "encoding/json"

// JSONFormatter formats a Summary as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format converts the summary to JSON. A summary that cannot be marshaled
// yields an empty object.
func (f *JSONFormatter) Format(summary *Summary) string {
	data, err := json.MarshalIndent(jsonSummary(summary), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}

// jsonSummary maps a Summary onto the wire shape with stable lowercase keys.
func jsonSummary(s *Summary) map[string]interface{} {
	out := map[string]interface{}{
		"generatedAt": s.GeneratedAt,
		"source": map[string]interface{}{
			"path":     s.Source.Path,
			"format":   s.Source.Format,
			"fileSize": s.Source.FileSize,
		},
		"animation": map[string]interface{}{
			"canvasWidth":   s.Animation.CanvasWidth,
			"canvasHeight":  s.Animation.CanvasHeight,
			"frameCount":    s.Animation.FrameCount,
			"decodedFrames": s.Animation.DecodedFrames,
			"loopCount":     s.Animation.LoopCount,
			"durationMs":    s.Animation.DurationMs,
		},
	}

	outputs := map[string]interface{}{}
	if s.Outputs.PreviewPath != "" {
		outputs["preview"] = map[string]interface{}{
			"path":  s.Outputs.PreviewPath,
			"bytes": s.Outputs.PreviewBytes,
		}
	}
	if s.Outputs.SheetPath != "" {
		outputs["sheet"] = map[string]interface{}{
			"path":  s.Outputs.SheetPath,
			"bytes": s.Outputs.SheetBytes,
		}
	}
	if s.Outputs.VideoPath != "" {
		outputs["video"] = map[string]interface{}{
			"path":       s.Outputs.VideoPath,
			"bytes":      s.Outputs.VideoBytes,
			"durationMs": s.Outputs.VideoDurationMs,
		}
	}
	out["outputs"] = outputs

	return out
}
