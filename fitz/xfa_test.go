package fitz

import (
	"bytes"
	"testing"

	"github.com/wmahfoudh/crabocr/internal/pdftest"
)

func openXFAPDF(t *testing.T, data []byte) *Document {
	t.Helper()
	ctx := newTestContext(t)
	path := writePDF(t, "xfa.pdf", data)
	doc, err := ctx.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(doc.Close)
	return doc
}

func TestXFAArrayConcatenation(t *testing.T) {
	streamA := "<xdp:xdp xmlns:xdp=\"http://ns.adobe.com/xdp/\">"
	streamB := "</xdp:xdp>"
	doc := openXFAPDF(t, pdftest.XFAArrayPDF([]pdftest.XFAPart{
		{Name: "preamble", Data: streamA},
		{Name: "postamble", Data: streamB},
	}))

	payload, err := doc.XFA()
	if err != nil {
		t.Fatalf("XFA failed: %v", err)
	}
	want := []byte(streamA + streamB)
	if !bytes.Equal(payload, want) {
		t.Fatalf("expected %q, got %q", want, payload)
	}
}

func TestXFARepeatedCallsIdentical(t *testing.T) {
	doc := openXFAPDF(t, pdftest.XFAArrayPDF([]pdftest.XFAPart{
		{Name: "datasets", Data: "<data><name>John</name></data>"},
	}))

	first, err := doc.XFA()
	if err != nil {
		t.Fatalf("first XFA call failed: %v", err)
	}
	second, err := doc.XFA()
	if err != nil {
		t.Fatalf("second XFA call failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("repeated extraction differs: %q vs %q", first, second)
	}
}

func TestXFASingleStream(t *testing.T) {
	data := "<xfa><form/></xfa>"
	doc := openXFAPDF(t, pdftest.XFAStreamPDF(data))

	payload, err := doc.XFA()
	if err != nil {
		t.Fatalf("XFA failed: %v", err)
	}
	if string(payload) != data {
		t.Fatalf("expected %q, got %q", data, payload)
	}
}

func TestXFANonStreamPartSkipped(t *testing.T) {
	doc := openXFAPDF(t, pdftest.XFAArrayPDF([]pdftest.XFAPart{
		{Name: "preamble", Data: "<a/>"},
		{Name: "broken", Data: "not a stream", NonStream: true},
		{Name: "postamble", Data: "<b/>"},
	}))

	payload, err := doc.XFA()
	if err != nil {
		t.Fatalf("XFA failed: %v", err)
	}
	if string(payload) != "<a/><b/>" {
		t.Fatalf("expected non-stream part skipped, got %q", payload)
	}
}

func TestXFAAbsentOnPlainPDF(t *testing.T) {
	_, doc := openTestPDF(t, [][]string{{"no forms here"}})

	payload, err := doc.XFA()
	if err != nil {
		t.Fatalf("expected nil error for PDF without AcroForm, got %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload, got %q", payload)
	}
}
