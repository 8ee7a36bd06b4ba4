package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.SheetColumns != 4 {
		t.Errorf("expected 4 sheet columns, got %d", cfg.SheetColumns)
	}
	if cfg.SheetThumbWidth != 160 {
		t.Errorf("expected thumb width 160, got %d", cfg.SheetThumbWidth)
	}
	if cfg.VideoQuality != 85 {
		t.Errorf("expected video quality 85, got %d", cfg.VideoQuality)
	}
	if !cfg.SheetLabels {
		t.Error("expected sheet labels enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animshow.yaml")

	content := []byte(`
input: anim.gif
sheet: sheet.png
sheet_columns: 6
video_quality: 70
theme:
  background_color: "#000000"
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.InputPath != "anim.gif" {
		t.Errorf("expected input 'anim.gif', got '%s'", cfg.InputPath)
	}
	if cfg.SheetColumns != 6 {
		t.Errorf("expected 6 columns, got %d", cfg.SheetColumns)
	}
	if cfg.VideoQuality != 70 {
		t.Errorf("expected quality 70, got %d", cfg.VideoQuality)
	}
	// Unset fields keep defaults
	if cfg.SheetThumbWidth != 160 {
		t.Errorf("expected default thumb width 160, got %d", cfg.SheetThumbWidth)
	}
	if cfg.Theme.BackgroundColor != "#000000" {
		t.Errorf("expected background '#000000', got '%s'", cfg.Theme.BackgroundColor)
	}
	// Nested defaults not overridden survive partial theme
	if cfg.Theme.BorderColor != "" && cfg.Theme.BorderColor != "#505050" {
		t.Errorf("unexpected border color '%s'", cfg.Theme.BorderColor)
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/animshow.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00ff00", color.RGBA{G: 255, A: 255}},
		{"#1e1e1e", color.RGBA{R: 30, G: 30, B: 30, A: 255}},
		{"#FFFFFF", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		got := ParseColor(tt.hex)
		r, g, b, a := got.RGBA()
		want := tt.want
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(a>>8) != want.A {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.hex, got, want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, hex := range []string{"", "#fff", "notacolor!"} {
		got := ParseColor(hex)
		r, g, b, _ := got.RGBA()
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("ParseColor(%q) = %v, want black", hex, got)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.InputPath = "anim.gif"
	cfg.SheetPath = "sheet.png"
	cfg.Theme.BackgroundColor = "#102030"

	oc := cfg.ToOrchestratorConfig()

	if oc.InputPath != "anim.gif" {
		t.Errorf("expected input 'anim.gif', got '%s'", oc.InputPath)
	}
	if oc.SheetPath != "sheet.png" {
		t.Errorf("expected sheet 'sheet.png', got '%s'", oc.SheetPath)
	}
	if oc.BackgroundColor != [4]uint8{0x10, 0x20, 0x30, 0xff} {
		t.Errorf("unexpected background color %v", oc.BackgroundColor)
	}
	if oc.SheetColumns != 4 || oc.Workers != 4 {
		t.Errorf("defaults not carried: columns=%d workers=%d", oc.SheetColumns, oc.Workers)
	}
}
