package fitz

import (
	"errors"
	"testing"
)

func TestRenderGeometry(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{"geometry"}})

	pix, err := doc.RenderPage(0, 72)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	defer pix.Close()

	if pix.Width() != 612 || pix.Height() != 792 {
		t.Fatalf("expected 612x792 at 72 dpi, got %dx%d", pix.Width(), pix.Height())
	}
	if pix.Components() != 3 {
		t.Fatalf("expected 3 components, got %d", pix.Components())
	}
	if pix.Stride() < pix.Width()*pix.Components() {
		t.Fatalf("stride %d smaller than width*components %d", pix.Stride(), pix.Width()*pix.Components())
	}
	if got, want := len(pix.Samples()), pix.Height()*pix.Stride(); got != want {
		t.Fatalf("expected %d sample bytes, got %d", want, got)
	}
}

func TestRenderDPIDoubling(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{"dpi"}})

	low, err := doc.RenderPage(0, 72)
	if err != nil {
		t.Fatalf("RenderPage at 72 dpi failed: %v", err)
	}
	defer low.Close()

	high, err := doc.RenderPage(0, 144)
	if err != nil {
		t.Fatalf("RenderPage at 144 dpi failed: %v", err)
	}
	defer high.Close()

	if diff := high.Width() - 2*low.Width(); diff < -2 || diff > 2 {
		t.Fatalf("width did not double: %d vs %d", low.Width(), high.Width())
	}
	if diff := high.Height() - 2*low.Height(); diff < -2 || diff > 2 {
		t.Fatalf("height did not double: %d vs %d", low.Height(), high.Height())
	}
}

func TestRenderOutOfRange(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{"one page"}})

	_, err := doc.RenderPage(9, 72)
	if err == nil {
		t.Fatalf("expected error for out-of-range page, got nil")
	}
	var engErr *EngineError
	if !errors.As(err, &engErr) {
		t.Fatalf("expected EngineError, got %T", err)
	}
}

func TestPixmapRGBA(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{}})

	pix, err := doc.RenderPage(0, 72)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	defer pix.Close()

	img := pix.RGBA()
	if img.Bounds().Dx() != pix.Width() || img.Bounds().Dy() != pix.Height() {
		t.Fatalf("image bounds %v do not match pixmap %dx%d", img.Bounds(), pix.Width(), pix.Height())
	}

	// An empty page renders white, fully opaque.
	r, g, b, a := img.At(10, 10).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Fatalf("expected white background, got %d %d %d", r, g, b)
	}
	if a != 0xffff {
		t.Fatalf("expected opaque alpha, got %d", a)
	}
}

func TestRenderAllPagesAndClose(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{"a"}, {"b"}, {"c"}})

	count, err := doc.PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	for i := 0; i < count; i++ {
		pix, err := doc.RenderPage(i, 96)
		if err != nil {
			t.Fatalf("RenderPage(%d) failed: %v", i, err)
		}
		if pix.Width() <= 0 || pix.Height() <= 0 {
			t.Fatalf("page %d: degenerate pixmap %dx%d", i, pix.Width(), pix.Height())
		}
		pix.Close()
	}
}
