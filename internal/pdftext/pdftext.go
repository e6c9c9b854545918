// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext reads the text layer of a submission's first page.
// Only embedded text is extracted; scanned (image-only) PDFs yield no text.
package pdftext

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor returns the plain text of the first page of a PDF. A PDF with no
// pages yields an empty string and a nil error.
type Extractor interface {
	FirstPage(path string) (string, error)
}

// PDFExtractor implements Extractor with github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// FirstPage opens the PDF at path and returns the plain text of page 1. The
// file is closed before returning. Panics raised by the parser on malformed
// input are returned as errors.
func (e *PDFExtractor) FirstPage(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("reading first page of %s: %w", path, err)
	}
	return text, nil
}
