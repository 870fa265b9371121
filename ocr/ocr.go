// Package ocr recognizes text on rendered page images using the Tesseract
// engine via gosseract. Tesseract must be installed on the system together
// with the traineddata for the requested languages. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/wmahfoudh/crabocr/fitz"
)

// DefaultMinConfidence is the mean word-confidence gate below which a
// recognition result is discarded as noise.
const DefaultMinConfidence = 60

// Options configures a Client. The zero value selects English, automatic
// page segmentation, and the default confidence gate.
type Options struct {
	// Language holds one or more "+"-separated Tesseract language codes,
	// e.g. "eng" or "eng+fra". Defaults to "eng".
	Language string

	// PageSegMode overrides the page segmentation mode. Defaults to
	// automatic layout analysis.
	PageSegMode *gosseract.PageSegMode

	// MinConfidence overrides the mean-confidence gate. Negative disables
	// gating entirely; zero selects DefaultMinConfidence.
	MinConfidence float64
}

// Client wraps a Tesseract handle for repeated recognition calls. It is not
// safe for concurrent use; hold one Client per worker.
type Client struct {
	client        *gosseract.Client
	minConfidence float64
}

// New creates an OCR client. The client must be closed when no longer
// needed to release the underlying Tesseract handle.
func New(opts Options) (*Client, error) {
	client := gosseract.NewClient()

	lang := opts.Language
	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language %q: %w", lang, err)
	}

	mode := gosseract.PSM_AUTO
	if opts.PageSegMode != nil {
		mode = *opts.PageSegMode
	}
	if err := client.SetPageSegMode(mode); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	// Dictionary correction on, default whitespace handling.
	if err := client.SetVariable("tessedit_enable_doc_dict", "1"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to configure tesseract: %w", err)
	}
	if err := client.SetVariable("preserve_interword_spaces", "0"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to configure tesseract: %w", err)
	}

	minConfidence := opts.MinConfidence
	if minConfidence == 0 {
		minConfidence = DefaultMinConfidence
	}

	return &Client{client: client, minConfidence: minConfidence}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (TIFF, PNG, JPEG, ...).
// A page whose mean word confidence falls below the gate returns an empty
// string rather than garbage.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	if c.minConfidence >= 0 {
		ok, err := c.confidentEnough()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}
	return text, nil
}

// RecognizePixmap performs OCR on a rendered page. The pixmap is encoded as
// an uncompressed TIFF before being handed to Tesseract; the pixmap itself
// is left untouched and still owned by the caller.
func (c *Client) RecognizePixmap(pix *fitz.Pixmap) (string, error) {
	data, err := encodeTIFF(pix.RGBA())
	if err != nil {
		return "", err
	}
	return c.RecognizeImage(data)
}

// confidentEnough runs recognition at word level and checks the mean
// confidence against the gate. A page with no recognizable words fails the
// gate.
func (c *Client) confidentEnough() (bool, error) {
	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return false, fmt.Errorf("recognition failed: %w", err)
	}
	if len(boxes) == 0 {
		return false, nil
	}

	var sum float64
	for _, box := range boxes {
		sum += box.Confidence
	}
	return sum/float64(len(boxes)) >= c.minConfidence, nil
}
