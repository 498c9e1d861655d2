//go:build !ocr

// Package ocr recovers page text from scanned page images using the
// Tesseract engine via gosseract.
//
// This is the stub implementation compiled when the "ocr" build tag is not
// set; every call reports ErrNotEnabled. To enable recognition, rebuild with
// the tag:
//
//	go build -tags ocr
//
// which requires Tesseract to be installed on the system.
package ocr

import "errors"

// ErrNotEnabled is returned when OCR support was not compiled in. Rebuild
// with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client.
type Client struct{}

// New reports that OCR support is not compiled in.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close releases nothing on the stub client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage reports that OCR support is not compiled in.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// PageText reports that OCR support is not compiled in.
func (c *Client) PageText(image []byte) (string, error) {
	return "", ErrNotEnabled
}

// PageTexts reports that OCR support is not compiled in.
func (c *Client) PageTexts(images [][]byte) ([]string, error) {
	return nil, ErrNotEnabled
}
