// Package extract runs page-level text extraction over a whole document,
// combining the MuPDF text pipeline with optional Tesseract OCR and XFA
// form-data conversion.
package extract

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/wmahfoudh/crabocr/fitz"
	"github.com/wmahfoudh/crabocr/ocr"
	"github.com/wmahfoudh/crabocr/xfadata"
)

// Mode selects how page text is produced.
type Mode string

const (
	// ModeHybrid extracts embedded text and falls back to OCR on pages
	// without any.
	ModeHybrid Mode = "hybrid"
	// ModeText extracts embedded text only.
	ModeText Mode = "text"
	// ModeOCR renders and recognizes every page, ignoring embedded text.
	ModeOCR Mode = "ocr"
)

// XFAMode selects what, if anything, is produced from XFA form data.
type XFAMode string

const (
	// XFAOff skips XFA processing.
	XFAOff XFAMode = "off"
	// XFARaw returns the original XFA XML.
	XFARaw XFAMode = "raw"
	// XFAFull returns the complete parsed JSON.
	XFAFull XFAMode = "full"
	// XFAClean returns data-only JSON with metadata fields and large
	// lookup lists removed.
	XFAClean XFAMode = "clean"
)

const (
	defaultDPI = 300
	minDPI     = 72
	maxDPI     = 600
)

// pageSeparator sits between consecutive page texts, form feed included so
// downstream consumers can split pages again.
const pageSeparator = "\n\f\n"

// Options configures a Run. The zero value selects hybrid mode, 300 DPI,
// all pages, and no XFA processing.
type Options struct {
	Mode  Mode
	DPI   int
	Pages string
	XFA   XFAMode
	OCR   ocr.Options
}

// PageResult holds the text of one processed page.
type PageResult struct {
	// Number is the zero-based page index, even when the page was
	// selected through a one-based Options.Pages range.
	Number int
	Text   string
}

// Result aggregates the output of a Run.
type Result struct {
	// Text is the concatenation of all page texts separated by form
	// feeds, NFC-normalized.
	Text string
	// Pages holds the per-page texts in processing order.
	Pages []PageResult
	// XFA holds the XFA output in the representation selected by
	// Options.XFA, empty when the document has none.
	XFA string
}

// Run processes the document at path with the engine context fc. The
// context is checked between pages, so cancellation takes effect at page
// granularity without interrupting the engine mid-call.
func Run(ctx context.Context, fc *fitz.Context, path string, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeHybrid
	}
	switch mode {
	case ModeHybrid, ModeText, ModeOCR:
	default:
		return nil, fmt.Errorf("unknown extraction mode %q", mode)
	}

	dpi := opts.DPI
	if dpi == 0 {
		dpi = defaultDPI
	}
	if dpi < minDPI || dpi > maxDPI {
		return nil, fmt.Errorf("dpi must be between %d and %d, got %d", minDPI, maxDPI, dpi)
	}

	doc, err := fc.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pageCount, err := doc.PageCount()
	if err != nil {
		return nil, err
	}
	pages, err := ParsePageRange(opts.Pages, pageCount)
	if err != nil {
		return nil, err
	}

	var recognizer *ocr.Client
	if mode != ModeText {
		recognizer, err = ocr.New(opts.OCR)
		if err != nil {
			return nil, err
		}
		defer recognizer.Close()
	}

	result := &Result{Pages: make([]PageResult, 0, len(pages))}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := extractPage(doc, recognizer, mode, page, dpi)
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", doc.Path(), page+1, err)
		}
		result.Pages = append(result.Pages, PageResult{Number: page, Text: norm.NFC.String(text)})
	}
	result.Text = joinPages(result.Pages)

	xfaMode := opts.XFA
	if xfaMode == "" {
		xfaMode = XFAOff
	}
	if xfaMode != XFAOff {
		result.XFA, err = extractXFA(doc, xfaMode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Path(), err)
		}
	}

	return result, nil
}

func extractPage(doc *fitz.Document, recognizer *ocr.Client, mode Mode, page, dpi int) (string, error) {
	if mode == ModeText || mode == ModeHybrid {
		text, err := doc.PageText(page)
		if err != nil {
			return "", err
		}
		if mode == ModeText || strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	pix, err := doc.RenderPage(page, dpi)
	if err != nil {
		return "", err
	}
	defer pix.Close()

	return recognizer.RecognizePixmap(pix)
}

func extractXFA(doc *fitz.Document, mode XFAMode) (string, error) {
	raw, err := doc.XFA()
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	switch mode {
	case XFARaw:
		return string(raw), nil
	case XFAFull, XFAClean:
		converted, err := xfadata.ToJSON(raw, mode == XFAClean)
		if err != nil {
			return "", err
		}
		return string(converted), nil
	default:
		return "", fmt.Errorf("unknown xfa mode %q", mode)
	}
}

func joinPages(pages []PageResult) string {
	texts := make([]string, len(pages))
	for i, page := range pages {
		texts[i] = page.Text
	}
	return strings.Join(texts, pageSeparator)
}
