package fitz

/*
#include "wrapper.h"
*/
import "C"

// diagCapacity is the size of the fixed diagnostic buffer handed to the C
// layer on every fallible call. Engine messages longer than this are cut.
const diagCapacity = 256

type diagBuffer [diagCapacity]C.char

func (d *diagBuffer) String() string {
	return C.GoString(&d[0])
}

// Context owns an engine context. Every other handle in this package is
// allocated through a Context and must be released before that Context is
// closed.
//
// A Context is not safe for concurrent use. Hosts that need parallelism
// should hold one Context per worker and partition documents across them;
// Documents and Pixmaps must never cross Contexts.
type Context struct {
	ctx *C.fz_context
}

// NewContext creates an engine context with the default store size and a
// suppressed warning sink, so benign warnings from malformed inputs never
// reach stderr.
func NewContext() (*Context, error) {
	ctx := C.crab_new_context()
	if ctx == nil {
		return nil, newInternalError("cannot allocate engine context", nil)
	}
	return &Context{ctx: ctx}, nil
}

// Close drops the engine context. Calling Close on a nil or already-closed
// Context is a no-op. All Documents and Pixmaps derived from the Context
// must be closed first.
func (c *Context) Close() {
	if c == nil || c.ctx == nil {
		return
	}
	C.crab_drop_context(c.ctx)
	c.ctx = nil
}

func (c *Context) alive() bool {
	return c != nil && c.ctx != nil
}

// errorFromCode translates the C layer's -1/0/1 convention into a typed
// error, attaching the diagnostic buffer contents for engine exceptions.
func errorFromCode(code int, diag *diagBuffer, operation string) error {
	switch code {
	case 0:
		return nil
	case 1:
		return newEngineError(operation+" failed", diag.String())
	default:
		return newValidationError(operation+": required argument missing", nil)
	}
}
