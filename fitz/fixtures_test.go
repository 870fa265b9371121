package fitz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wmahfoudh/crabocr/internal/pdftest"
)

// newTestContext creates a Context that is closed when the test ends.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx
}

// writePDF writes the given PDF bytes into the test's temp dir and returns
// the path.
func writePDF(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}

// openTestPDF builds a text PDF, writes it to disk, and opens it. The
// document is closed when the test ends.
func openTestPDF(t *testing.T, pages [][]string) (*Context, *Document) {
	t.Helper()
	ctx := newTestContext(t)
	path := writePDF(t, "sample.pdf", pdftest.TextPDF(pages))
	doc, err := ctx.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(doc.Close)
	return ctx, doc
}
