package gifdecoder

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/user/animshow/pkg/adapters/bitmappool"
	"github.com/user/animshow/pkg/ports"
)

// encodeTestGIF builds a small 3-frame animation in memory. Each frame is a
// solid color so decoded pixels are easy to check.
func encodeTestGIF(t *testing.T) []byte {
	t.Helper()

	palette := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	}

	g := &gif.GIF{LoopCount: 2}
	for i := 0; i < 3; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 8, 8), palette)
		for p := range frame.Pix {
			frame.Pix[p] = uint8(i)
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 5) // 50ms
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("encode test gif: %v", err)
	}
	return buf.Bytes()
}

func TestDecoder_MetadataOnly(t *testing.T) {
	d := New(bitmappool.New())

	result, err := d.Decode(encodeTestGIF(t), ports.DecodeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer result.Dispose()

	meta := result.Image()
	if meta.FrameCount() != 3 {
		t.Errorf("expected 3 frames, got %d", meta.FrameCount())
	}
	if meta.Width() != 8 || meta.Height() != 8 {
		t.Errorf("unexpected canvas: %dx%d", meta.Width(), meta.Height())
	}
	if meta.LoopCount() != 2 {
		t.Errorf("expected loop count 2, got %d", meta.LoopCount())
	}
	if meta.DurationMs() != 150 {
		t.Errorf("expected 150ms duration, got %d", meta.DurationMs())
	}

	if result.PreviewBitmap() != nil {
		t.Error("metadata-only decode produced a preview buffer")
	}
	if result.HasDecodedFrame(0) {
		t.Error("metadata-only decode produced frame buffers")
	}
}

func TestDecoder_DecodeAllFrames(t *testing.T) {
	d := New(bitmappool.New())

	result, err := d.Decode(encodeTestGIF(t), ports.DecodeOptions{DecodeAllFrames: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer result.Dispose()

	want := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for i := 0; i < 3; i++ {
		if !result.HasDecodedFrame(i) {
			t.Fatalf("frame %d missing", i)
		}
		ref := result.DecodedFrame(i)
		got := ref.Get().RGBAAt(4, 4)
		if got != want[i] {
			t.Errorf("frame %d: expected %v, got %v", i, want[i], got)
		}
		ref.Close()
	}
}

func TestDecoder_DecodePreviewOnly(t *testing.T) {
	d := New(bitmappool.New())

	result, err := d.Decode(encodeTestGIF(t), ports.DecodeOptions{
		DecodePreview: true,
		PreviewFrame:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer result.Dispose()

	if result.FrameForPreview() != 1 {
		t.Errorf("expected preview frame 1, got %d", result.FrameForPreview())
	}
	if result.HasDecodedFrame(1) {
		t.Error("preview-only decode kept frame buffers")
	}

	preview := result.PreviewBitmap()
	if preview == nil {
		t.Fatal("expected a preview buffer")
	}
	defer preview.Close()

	got := preview.Get().RGBAAt(4, 4)
	want := color.RGBA{G: 255, A: 255}
	if got != want {
		t.Errorf("expected preview pixel %v, got %v", want, got)
	}
}

func TestDecoder_PreviewOutOfRange(t *testing.T) {
	d := New(bitmappool.New())

	_, err := d.Decode(encodeTestGIF(t), ports.DecodeOptions{
		DecodePreview: true,
		PreviewFrame:  9,
	})
	if err == nil {
		t.Fatal("expected an error for out-of-range preview frame")
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	d := New(bitmappool.New())

	if _, err := d.Decode([]byte("not a gif"), ports.DecodeOptions{}); err == nil {
		t.Fatal("expected an error for invalid data")
	}
}

func TestDecoder_Format(t *testing.T) {
	if New(bitmappool.New()).Format() != ports.FormatGIF {
		t.Error("wrong format")
	}
}
