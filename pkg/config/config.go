// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"github.com/user/animshow/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for animshow.
type Config struct {
	// Input/Output
	InputPath   string `yaml:"input"`
	PreviewPath string `yaml:"preview"`
	SheetPath   string `yaml:"sheet"`
	VideoPath   string `yaml:"video"`

	// Decode
	PreviewFrame int `yaml:"preview_frame"`

	// Preview
	PreviewMaxWidth int `yaml:"preview_max_width"`

	// Contact sheet
	SheetColumns    int         `yaml:"sheet_columns"`
	SheetThumbWidth int         `yaml:"sheet_thumb_width"`
	SheetGap        int         `yaml:"sheet_gap"`
	SheetLabels     bool        `yaml:"sheet_labels"`
	Theme           ThemeConfig `yaml:"theme"`

	// Video export
	VideoQuality int `yaml:"video_quality"`
	VideoLoops   int `yaml:"video_loops"`

	// Composition
	Workers int `yaml:"workers"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// ThemeConfig represents contact sheet theming options.
type ThemeConfig struct {
	BackgroundColor string `yaml:"background_color"`
	BorderColor     string `yaml:"border_color"`
	LabelColor      string `yaml:"label_color"`
	Checkerboard    bool   `yaml:"checkerboard"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Contact sheet
		SheetColumns:    4,
		SheetThumbWidth: 160,
		SheetGap:        8,
		SheetLabels:     true,
		Theme: ThemeConfig{
			BackgroundColor: "#1e1e1e",
			BorderColor:     "#505050",
			LabelColor:      "#ffffff",
		},

		// Video export
		VideoQuality: 85,
		VideoLoops:   1,

		// Composition
		Workers: 4,

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputPath:   c.InputPath,
		PreviewPath: c.PreviewPath,
		SheetPath:   c.SheetPath,
		VideoPath:   c.VideoPath,

		PreviewFrame:    c.PreviewFrame,
		PreviewMaxWidth: c.PreviewMaxWidth,

		SheetColumns:      c.SheetColumns,
		SheetThumbWidth:   c.SheetThumbWidth,
		SheetGap:          c.SheetGap,
		SheetLabels:       c.SheetLabels,
		SheetCheckerboard: c.Theme.Checkerboard,

		BackgroundColor: rgbaArray(ParseColor(c.Theme.BackgroundColor)),
		BorderColor:     rgbaArray(ParseColor(c.Theme.BorderColor)),

		VideoQuality: c.VideoQuality,
		VideoLoops:   c.VideoLoops,

		Workers: c.Workers,
	}
}

func rgbaArray(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
