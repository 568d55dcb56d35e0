// Package pdftext extracts plain text and structural facts from pattern
// PDFs. Text quality depends entirely on the source document; scanned
// patterns with no text layer legitimately yield nothing.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ExtractText returns the document's text with pages joined by a blank
// line. Pages that fail to decode are skipped; only a document that cannot
// be opened at all is an error, and callers treat that as an empty-field
// parse rather than a failure.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n\n"), nil
}

// PageCount returns the number of pages without decoding content.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return n, nil
}

// Validate checks that the file is a structurally sound PDF.
func Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("invalid pdf: %w", err)
	}
	return nil
}
