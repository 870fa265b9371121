package ocr

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/tiff"
)

// encodeTIFF serializes an image as uncompressed TIFF, the cheapest format
// for handing raw page renders to Tesseract.
func encodeTIFF(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	opts := &tiff.Options{Compression: tiff.Uncompressed}
	if err := tiff.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}
	return buf.Bytes(), nil
}
