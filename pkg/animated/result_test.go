package animated

import (
	"image"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/user/animshow/pkg/refs"
)

func testMetadata(frames int) *Metadata {
	infos := make([]FrameInfo, frames)
	for i := range infos {
		infos[i] = FrameInfo{Width: 4, Height: 4, DurationMs: 100}
	}
	return &Metadata{CanvasWidth: 4, CanvasHeight: 4, Frames: infos}
}

func testBitmap(released *atomic.Int32) *refs.Bitmap {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	return refs.NewBitmap(img, func(*image.RGBA) {
		if released != nil {
			released.Add(1)
		}
	})
}

func TestForImage(t *testing.T) {
	meta := testMetadata(3)
	result, err := ForImage(meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Image() != meta {
		t.Error("Image() does not return the supplied descriptor")
	}
	if result.FrameForPreview() != 0 {
		t.Errorf("expected preview frame 0, got %d", result.FrameForPreview())
	}
	if result.PreviewBitmap() != nil {
		t.Error("expected no preview bitmap")
	}
	if result.Transformation() != nil {
		t.Error("expected no transformation")
	}
}

func TestForImage_NilImage(t *testing.T) {
	if _, err := ForImage(nil); err != ErrNilImage {
		t.Errorf("expected ErrNilImage, got %v", err)
	}
}

func TestResult_DecodedFrame(t *testing.T) {
	var released atomic.Int32
	frames := []*refs.Bitmap{testBitmap(&released), nil, testBitmap(&released)}

	result, err := NewBuilder(testMetadata(3)).SetDecodedFrames(frames).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer result.Dispose()

	if !result.HasDecodedFrame(0) {
		t.Error("expected frame 0 present")
	}
	if result.HasDecodedFrame(1) {
		t.Error("expected frame 1 absent")
	}

	clone := result.DecodedFrame(0)
	if clone == nil {
		t.Fatal("expected a cloned handle for frame 0")
	}
	clone.Close()

	// Releasing the clone must not affect the stored original.
	if released.Load() != 0 {
		t.Error("closing a clone released the underlying buffer")
	}
	if !result.HasDecodedFrame(0) {
		t.Error("frame 0 went absent after a clone was closed")
	}

	if result.DecodedFrame(1) != nil {
		t.Error("expected nil handle for empty slot")
	}
}

func TestResult_DecodedFrame_OutOfRangePanics(t *testing.T) {
	frames := []*refs.Bitmap{testBitmap(nil)}
	result, err := NewBuilder(testMetadata(1)).SetDecodedFrames(frames).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer result.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	result.DecodedFrame(5)
}

func TestResult_Dispose(t *testing.T) {
	var released atomic.Int32
	frames := []*refs.Bitmap{testBitmap(&released), testBitmap(&released)}
	preview := testBitmap(&released)

	result, err := NewBuilder(testMetadata(2)).
		SetPreviewBitmap(preview).
		SetDecodedFrames(frames).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result.Dispose()

	if released.Load() != 3 {
		t.Errorf("expected 3 buffer releases, got %d", released.Load())
	}
	if result.PreviewBitmap() != nil {
		t.Error("preview bitmap present after dispose")
	}
	// Disposed results report no frames for any index.
	if result.DecodedFrame(7) != nil {
		t.Error("decoded frame present after dispose")
	}
	if result.HasDecodedFrame(7) {
		t.Error("HasDecodedFrame true after dispose")
	}
	if result.Image() == nil {
		t.Error("descriptor lost after dispose")
	}

	// Second dispose is a no-op, not a double release.
	result.Dispose()
	if released.Load() != 3 {
		t.Errorf("second dispose released buffers again: %d", released.Load())
	}
}

func TestResult_DisposeDoesNotAffectClones(t *testing.T) {
	var released atomic.Int32
	result, err := NewBuilder(testMetadata(1)).
		SetDecodedFrames([]*refs.Bitmap{testBitmap(&released)}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := result.DecodedFrame(0)
	result.Dispose()

	if released.Load() != 0 {
		t.Error("buffer released while a clone was outstanding")
	}
	if clone.Get() == nil {
		t.Error("clone invalidated by dispose")
	}

	clone.Close()
	if released.Load() != 1 {
		t.Errorf("expected exactly one release, got %d", released.Load())
	}
}

func TestResult_ConcurrentAccessAndDispose(t *testing.T) {
	const frames = 8
	const readers = 8

	for round := 0; round < 50; round++ {
		var released atomic.Int32
		handles := make([]*refs.Bitmap, frames)
		for i := range handles {
			handles[i] = testBitmap(&released)
		}
		result, err := NewBuilder(testMetadata(frames)).SetDecodedFrames(handles).Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wg sync.WaitGroup
		for w := 0; w < readers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < frames; i++ {
					if clone := result.DecodedFrame(i); clone != nil {
						// A clone handed out during a concurrent dispose
						// must still reference live memory.
						if clone.Get() == nil {
							t.Error("clone references released buffer")
						}
						clone.Close()
					}
				}
			}(w)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Dispose()
		}()
		wg.Wait()

		if released.Load() != frames {
			t.Fatalf("expected %d releases, got %d", frames, released.Load())
		}
	}
}
