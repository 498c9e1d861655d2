//go:build ocr

// Package ocr recovers page text from scanned page images using the
// Tesseract engine via gosseract.
//
// This implementation is compiled with the "ocr" build tag and requires
// Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, a stub is compiled instead and every call reports
// ErrNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for page-oriented recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client must be closed when no longer
// needed to release engine resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be given as a "+" separated string (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// PageText performs OCR on one page image (PNG, TIFF, JPEG, etc.) and
// returns the recognized text with surrounding whitespace trimmed.
func (c *Client) PageText(image []byte) (string, error) {
	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set page image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize page: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// PageTexts runs PageText over a sequence of page images, preserving order.
// Recognition stops at the first failing page.
func (c *Client) PageTexts(images [][]byte) ([]string, error) {
	texts := make([]string, 0, len(images))
	for i, img := range images {
		text, err := c.PageText(img)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}
