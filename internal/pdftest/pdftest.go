// Package pdftest builds small, valid PDF files in memory for tests. The
// documents carry a correct cross-reference table so any conforming reader
// can open them without repair.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

type builder struct {
	buf     bytes.Buffer
	offsets []int
}

func newBuilder() *builder {
	b := &builder{}
	b.buf.WriteString("%PDF-1.4\n")
	return b
}

// add writes object bodies in ascending numeric order starting at 1 and
// returns the assigned object number.
func (b *builder) add(body string) int {
	num := len(b.offsets) + 1
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
	return num
}

func (b *builder) addStream(dict, data string) int {
	body := fmt.Sprintf("<< %s /Length %d >>\nstream\n%s\nendstream", dict, len(data), data)
	return b.add(body)
}

func (b *builder) finish(rootRef int) []byte {
	start := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(b.offsets)+1)
	b.buf.WriteString("0000000000 65535 f \n")
	for _, off := range b.offsets {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(b.offsets)+1, rootRef, start)
	return b.buf.Bytes()
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `(`, `\(`)
	s = strings.ReplaceAll(s, `)`, `\)`)
	return s
}

func contentStream(lines []string) string {
	var sb strings.Builder
	sb.WriteString("BT /F1 12 Tf 14 TL 72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("T*\n")
		}
		fmt.Fprintf(&sb, "(%s) Tj\n", escapeText(line))
	}
	sb.WriteString("ET")
	return sb.String()
}

// TextPDF builds a US-Letter (612x792) PDF with one page per element of
// pages, each page showing its lines top-down in Helvetica 12.
func TextPDF(pages [][]string) []byte {
	b := newBuilder()

	np := len(pages)
	// Fixed numbering: 1 catalog, 2 page tree, then page/content pairs,
	// shared font last.
	fontNum := 3 + 2*np

	kids := make([]string, 0, np)
	for i := 0; i < np; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	b.add("<< /Type /Catalog /Pages 2 0 R >>")
	b.add(fmt.Sprintf("<< /Type /Pages /Kids [ %s ] /Count %d >>", strings.Join(kids, " "), np))

	for i, lines := range pages {
		pageNum := 3 + 2*i
		b.add(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 612 792 ] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontNum, pageNum+1))
		b.addStream("", contentStream(lines))
	}

	b.add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	return b.finish(1)
}

// XFAPart is one (name, payload) pair of an XFA array. NonStream parts are
// written as literal strings instead of stream objects.
type XFAPart struct {
	Name      string
	Data      string
	NonStream bool
}

// XFAArrayPDF builds a one-page PDF whose AcroForm XFA entry is an array of
// (name, part) pairs in the given order.
func XFAArrayPDF(parts []XFAPart) []byte {
	b := newBuilder()

	// 1 catalog, 2 page tree, 3 page, 4 content, then one object per
	// stream part.
	next := 5
	entries := make([]string, 0, 2*len(parts))
	streams := make([]string, 0, len(parts))
	for _, part := range parts {
		entries = append(entries, fmt.Sprintf("(%s)", escapeText(part.Name)))
		if part.NonStream {
			entries = append(entries, fmt.Sprintf("(%s)", escapeText(part.Data)))
			continue
		}
		entries = append(entries, fmt.Sprintf("%d 0 R", next))
		streams = append(streams, part.Data)
		next++
	}

	b.add(fmt.Sprintf(
		"<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [ ] /XFA [ %s ] >> >>",
		strings.Join(entries, " ")))
	b.add("<< /Type /Pages /Kids [ 3 0 R ] /Count 1 >>")
	b.add("<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 612 792 ] /Contents 4 0 R >>")
	b.addStream("", "")
	for _, data := range streams {
		b.addStream("", data)
	}
	return b.finish(1)
}

// XFAStreamPDF builds a one-page PDF whose AcroForm XFA entry is a single
// stream holding data.
func XFAStreamPDF(data string) []byte {
	b := newBuilder()
	b.add("<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [ ] /XFA 5 0 R >> >>")
	b.add("<< /Type /Pages /Kids [ 3 0 R ] /Count 1 >>")
	b.add("<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 612 792 ] /Contents 4 0 R >>")
	b.addStream("", "")
	b.addStream("", data)
	return b.finish(1)
}
