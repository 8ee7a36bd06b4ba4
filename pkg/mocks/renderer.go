package mocks

import (
	"image"
	"image/color"

	"github.com/user/animshow/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.OutputFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) EncodeImage(img image.Image, format ports.OutputFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas. It records draw calls so
// tests can assert composition happened.
type Canvas struct {
	width  int
	height int

	DrawnImages        int
	DrawnRects         int
	DrawnTexts         int
	DrawnCheckerboards int
}

func (m *Canvas) DrawImage(img image.Image, x, y int) { m.DrawnImages++ }

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) { m.DrawnImages++ }

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) { m.DrawnRects++ }

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) { m.DrawnRects++ }

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) { m.DrawnTexts++ }

func (m *Canvas) DrawCheckerboard(x, y, w, h, cell int, light, dark color.Color) {
	m.DrawnCheckerboards++
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
