// Package extract is the document-decoding boundary. The pipeline itself
// only ever sees plain text; this package turns supported upload formats
// into it. Binary formats (PDF, DOCX) are not handled here.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromFile reads the document at path and returns its plain text.
// .txt and .md are read verbatim; .html and .htm are reduced to their text
// content. Any other extension is an error.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return string(data), nil
	case ".html", ".htm":
		return FromHTML(string(data))
	default:
		return "", fmt.Errorf("unsupported document format %q (want .txt, .md, .html)", filepath.Ext(path))
	}
}

// FromHTML strips markup and collapses whitespace, leaving the readable text.
func FromHTML(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
