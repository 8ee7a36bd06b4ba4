package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/animshow/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 12, color.RGBA{R: 255, A: 255})
	img := canvas.ToImage()

	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 12 {
		t.Errorf("unexpected canvas bounds: %v", img.Bounds())
	}
	r8, _, _, _ := img.At(5, 5).RGBA()
	if r8>>8 != 255 {
		t.Errorf("background not applied, got red %d", r8>>8)
	}
}

func TestRenderer_EncodeImage_PNG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	data, err := r.EncodeImage(img, ports.OutputPNG, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestRenderer_EncodeImage_JPEG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	data, err := r.EncodeImage(img, ports.OutputJPEG, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("output does not start with JPEG SOI marker")
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))

	dst := r.ResizeImage(src, 4, 2)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 2 {
		t.Errorf("unexpected resized bounds: %v", dst.Bounds())
	}
}

func TestCanvas_Drawing(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(20, 20, color.Black)

	tile := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for i := range tile.Pix {
		tile.Pix[i] = 0xFF
	}
	canvas.DrawImage(tile, 0, 0)
	canvas.DrawImageScaled(tile, 10, 10, 10, 10)
	canvas.DrawRect(0, 15, 5, 5, color.RGBA{G: 255, A: 255})
	canvas.DrawRectStroke(1, 1, 18, 18, color.White, 1)
	canvas.DrawText("x", 10, 3, ports.TextStyle{FontSize: 10, Color: color.White})

	out := canvas.ToImage()
	r8, _, _, _ := out.At(2, 2).RGBA()
	if r8 == 0 {
		t.Error("DrawImage left no trace on the canvas")
	}
}

func TestCanvas_DrawCheckerboard(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(16, 16, color.Black)

	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	canvas.DrawCheckerboard(0, 0, 16, 16, 4, light, dark)

	out := canvas.ToImage()
	lr, _, _, _ := out.At(1, 1).RGBA()
	dr, _, _, _ := out.At(5, 1).RGBA()
	if uint8(lr>>8) != 200 {
		t.Errorf("expected light cell at (1,1), got %d", uint8(lr>>8))
	}
	if uint8(dr>>8) != 100 {
		t.Errorf("expected dark cell at (5,1), got %d", uint8(dr>>8))
	}
}
