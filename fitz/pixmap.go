package fitz

/*
#include "wrapper.h"
*/
import "C"

import (
	"image"
	"unsafe"
)

// Pixmap is an engine-owned RGB pixel buffer produced by RenderPage. Its
// samples stay valid until Close.
type Pixmap struct {
	ctx *Context
	pix *C.fz_pixmap
}

// RenderPage rasterizes the zero-based page at the given DPI into an RGB
// pixmap without alpha. The scale is uniform: dpi/72 in both axes. An
// out-of-range page index surfaces as an EngineError; a non-positive dpi is
// passed through to the engine unpoliced.
func (d *Document) RenderPage(pageNumber, dpi int) (*Pixmap, error) {
	if !d.alive() {
		return nil, newValidationError("document is closed", nil)
	}

	var pix *C.fz_pixmap
	var diag diagBuffer
	rc := C.crab_render_page(d.ctx.ctx, d.doc, C.int(pageNumber), C.int(dpi), &pix, &diag[0], diagCapacity)
	if err := errorFromCode(int(rc), &diag, "render page"); err != nil {
		return nil, err
	}
	return &Pixmap{ctx: d.ctx, pix: pix}, nil
}

// Close releases the pixmap. Safe on nil and after a prior Close.
func (p *Pixmap) Close() {
	if p == nil || p.pix == nil {
		return
	}
	C.crab_drop_pixmap(p.ctx.ctx, p.pix)
	p.pix = nil
}

// Width returns the pixel width.
func (p *Pixmap) Width() int {
	return int(C.crab_pixmap_width(p.ctx.ctx, p.pix))
}

// Height returns the pixel height.
func (p *Pixmap) Height() int {
	return int(C.crab_pixmap_height(p.ctx.ctx, p.pix))
}

// Stride returns the row stride in bytes. Always at least Width times
// Components.
func (p *Pixmap) Stride() int {
	return int(C.crab_pixmap_stride(p.ctx.ctx, p.pix))
}

// Components returns the number of color components per pixel, 3 for the RGB
// pixmaps this package produces.
func (p *Pixmap) Components() int {
	return int(C.crab_pixmap_components(p.ctx.ctx, p.pix))
}

// Samples returns a view of the row-major, top-down pixel data: exactly
// Height times Stride bytes. The slice borrows engine memory and must not be
// used after Close.
func (p *Pixmap) Samples() []byte {
	n := p.Height() * p.Stride()
	if n == 0 {
		return nil
	}
	ptr := C.crab_pixmap_samples(p.ctx.ctx, p.pix)
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// RGBA copies the pixmap into an image.RGBA, expanding the 3-component rows
// to 4 components with full opacity. The result is caller-owned and remains
// valid after the pixmap is closed.
func (p *Pixmap) RGBA() *image.RGBA {
	width := p.Width()
	height := p.Height()
	stride := p.Stride()
	n := p.Components()
	samples := p.Samples()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := samples[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*n+0]
			dst[x*4+1] = src[x*n+1]
			dst[x*4+2] = src[x*n+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}
