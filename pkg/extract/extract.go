// Package extract turns uploaded transcript files into plain text.
// Supported formats: raw UTF-8 text (.txt) and PDF (.pdf).
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedType is returned for any extension other than .txt/.pdf.
	ErrUnsupportedType = errors.New("unsupported file type, only .txt and .pdf files are allowed")
	// ErrInvalidUTF8 is returned when a .txt upload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("file must be a valid UTF-8 text file")
	// ErrNoText is returned when a PDF contains no readable text layer.
	ErrNoText = errors.New("no readable text found in PDF")
	// ErrEmptyContent is returned when extraction yields only whitespace.
	ErrEmptyContent = errors.New("file appears to be empty or contains no readable text")
)

// FromUpload extracts plain text from an uploaded file. The format is chosen
// by the file extension, case-insensitively. The returned text is trimmed and
// guaranteed non-empty.
func FromUpload(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var (
		text string
		err  error
	)
	switch ext {
	case "txt":
		text, err = fromText(data)
	case "pdf":
		text, err = fromPDF(data)
	default:
		return "", ErrUnsupportedType
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

func fromText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// fromPDF extracts text page by page in document order, joining pages with a
// newline separator.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoText, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract text from page %d: %w", i, err)
		}
		pages = append(pages, content)
	}

	joined := strings.Join(pages, "\n")
	if strings.TrimSpace(joined) == "" {
		return "", ErrNoText
	}
	return joined, nil
}
