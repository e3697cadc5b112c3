package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Error is a typed extraction failure. The original service swallowed these
// and returned an empty string; callers here get the error and map it to a
// 400 the same way they treated empty text.
type Error struct {
	Filename string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract text from %s: %v", e.Filename, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Text converts uploaded file bytes to plain text based on the filename
// suffix: .pdf pages are decoded and concatenated, .docx paragraphs are
// joined, anything else is treated as UTF-8 text with invalid sequences
// tolerated.
func Text(content []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfText(content)
		if err != nil {
			return "", &Error{Filename: filename, Cause: err}
		}
		return text, nil
	case ".docx":
		text, err := docxText(content)
		if err != nil {
			return "", &Error{Filename: filename, Cause: err}
		}
		return text, nil
	default:
		return plainText(content), nil
	}
}

func pdfText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// A page may yield no text; that is not an error.
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return b.String(), nil
}

func docxText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func plainText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), "")
}
