// Package fitz is a thin cgo binding over the MuPDF rendering engine.
//
// It exposes a small, safe surface for opening a document, counting pages,
// rasterizing a page to an RGB pixel buffer, extracting plain text from a
// page, and extracting raw XFA form data from a PDF. The engine's
// structured-exception idiom is converted into explicit error returns at
// the C boundary; every engine resource acquired inside a call is released
// before the call returns, on success and failure alike.
//
// # Installation
//
// The binding links against the system MuPDF library:
//
//	apt-get install libmupdf-dev  # Debian/Ubuntu
//	brew install mupdf            # macOS
//
// # Quick start
//
//	ctx, err := fitz.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	doc, err := ctx.Open("report.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//
//	text, err := doc.PageText(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(text)
//
// # Threading
//
// A Context is single-threaded. For parallel workloads hold one Context per
// worker; Documents and Pixmaps belong to the Context that created them and
// must not cross workers.
//
// Higher-level extraction (OCR, page ranges, XFA-to-JSON) lives in the
// sibling ocr, extract, and xfadata packages.
package fitz
