package bitmappool

import (
	"testing"
)

func TestAllocator_Allocate(t *testing.T) {
	a := New()

	ref := a.Allocate(8, 6)
	img := ref.Get()
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("unexpected bounds: %v", img.Bounds())
	}
	if len(img.Pix) != 8*6*4 {
		t.Errorf("unexpected pix length: %d", len(img.Pix))
	}
	ref.Close()
}

func TestAllocator_ReusesReleasedBuffers(t *testing.T) {
	a := New()

	ref := a.Allocate(16, 16)
	// Dirty the buffer so reuse without zeroing would be visible.
	ref.Get().Pix[0] = 0xFF
	ref.Close()

	ref2 := a.Allocate(16, 16)
	defer ref2.Close()

	if ref2.Get().Pix[0] != 0 {
		t.Error("reused buffer was not zeroed")
	}

	_, reused := a.Stats()
	if reused != 1 {
		t.Errorf("expected 1 reuse, got %d", reused)
	}
}

func TestAllocator_HeldBufferNotRecycled(t *testing.T) {
	a := New()

	ref := a.Allocate(4, 4)
	clone := ref.Clone()
	ref.Close()

	// The clone still owns the buffer, so the next allocation must not
	// hand out the same memory.
	ref2 := a.Allocate(4, 4)
	defer ref2.Close()
	if &ref2.Get().Pix[0] == &clone.Get().Pix[0] {
		t.Error("buffer recycled while a handle was still open")
	}
	clone.Close()
}

func TestAllocator_ZeroSize(t *testing.T) {
	a := New()
	ref := a.Allocate(0, 0)
	defer ref.Close()
	if ref.Get() == nil {
		t.Error("expected a valid empty image")
	}
}
