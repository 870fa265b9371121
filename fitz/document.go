package fitz

/*
#include "wrapper.h"
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Document is an opened document bound to the Context that produced it. It
// supports any number of page operations before Close.
type Document struct {
	ctx  *Context
	doc  *C.fz_document
	path string
}

// Open opens the document at path. Missing, unreadable, or unrecognized
// files surface as an EngineError carrying the engine diagnostic.
func (c *Context) Open(path string) (*Document, error) {
	if !c.alive() {
		return nil, newValidationError("context is closed", nil)
	}
	if path == "" {
		return nil, newValidationError("path cannot be empty", nil)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var doc *C.fz_document
	var diag diagBuffer
	rc := C.crab_open_document(c.ctx, cPath, &doc, &diag[0], diagCapacity)
	if err := errorFromCode(int(rc), &diag, "open "+path); err != nil {
		return nil, err
	}
	return &Document{ctx: c, doc: doc, path: path}, nil
}

// rawOpen drives the C open entry point with a caller-sized diagnostic
// buffer and drops any document it produces. Tests use it to exercise the
// diagnostic capacity contract the Go layer never reaches with its fixed
// buffer.
func (c *Context) rawOpen(path string, diag []byte, diagLen int) int {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var errOut *C.char
	if len(diag) > 0 {
		errOut = (*C.char)(unsafe.Pointer(&diag[0]))
	}
	var doc *C.fz_document
	rc := C.crab_open_document(c.ctx, cPath, &doc, errOut, C.size_t(diagLen))
	if doc != nil {
		C.crab_drop_document(c.ctx, doc)
	}
	return int(rc)
}

// Close releases the document. Safe to call on a nil or already-closed
// Document.
func (d *Document) Close() {
	if d == nil || d.doc == nil {
		return
	}
	C.crab_drop_document(d.ctx.ctx, d.doc)
	d.doc = nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

func (d *Document) alive() bool {
	return d != nil && d.doc != nil && d.ctx.alive()
}

// PageCount returns the number of pages. The count is stable across repeated
// calls on the same Document.
func (d *Document) PageCount() (int, error) {
	if !d.alive() {
		return 0, newValidationError("document is closed", nil)
	}

	var count C.int
	var diag diagBuffer
	rc := C.crab_count_pages(d.ctx.ctx, d.doc, &count, &diag[0], diagCapacity)
	if err := errorFromCode(int(rc), &diag, "count pages"); err != nil {
		return 0, err
	}
	return int(count), nil
}

// PageText extracts the plain UTF-8 text of the zero-based page. A page
// without any text returns "" with a nil error; extraction failure returns
// an EngineError. The engine-allocated payload is copied and released before
// returning.
func (d *Document) PageText(pageNumber int) (string, error) {
	if !d.alive() {
		return "", newValidationError("document is closed", nil)
	}

	var diag diagBuffer
	ptr := C.crab_extract_text(d.ctx.ctx, d.doc, C.int(pageNumber), &diag[0], diagCapacity)
	if ptr == nil {
		return "", newEngineError("extract text", diag.String())
	}
	defer C.crab_free_text(d.ctx.ctx, ptr)

	return C.GoString(ptr), nil
}

// XFA returns the raw concatenated XFA payload of a PDF, in PDF array order,
// without parsing the XML. A nil slice with a nil error means the document
// is not a PDF, has no AcroForm, or carries no XFA entry. Repeated calls on
// the same Document return identical bytes.
func (d *Document) XFA() ([]byte, error) {
	if !d.alive() {
		return nil, newValidationError("document is closed", nil)
	}

	var length C.size_t
	var diag diagBuffer
	ptr := C.crab_extract_xfa(d.ctx.ctx, d.doc, &length, &diag[0], diagCapacity)
	if ptr == nil {
		// An untouched diagnostic buffer marks structural absence.
		if msg := diag.String(); msg != "" {
			return nil, newEngineError("extract xfa", msg)
		}
		return nil, nil
	}
	defer C.crab_free_xfa(d.ctx.ctx, ptr)

	return C.GoBytes(unsafe.Pointer(ptr), C.int(length)), nil
}
