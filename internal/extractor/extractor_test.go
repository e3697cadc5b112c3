package extractor

import (
	"errors"
	"testing"
)

func TestText_PlainFile(t *testing.T) {
	got, err := Text([]byte("John Doe\nPython developer"), "resume.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "John Doe\nPython developer" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestText_UnknownSuffixTreatedAsText(t *testing.T) {
	got, err := Text([]byte("plain content"), "resume.rtf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "plain content" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestText_InvalidUTF8Tolerated(t *testing.T) {
	got, err := Text([]byte{'o', 'k', 0xff, 0xfe, '!'}, "notes.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "ok!" {
		t.Fatalf("invalid sequences not stripped: %q", got)
	}
}

func TestText_CorruptPDFReturnsTypedError(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), "resume.pdf")
	if err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
	var extErr *Error
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *extractor.Error, got %T", err)
	}
	if extErr.Filename != "resume.pdf" {
		t.Fatalf("unexpected filename %q", extErr.Filename)
	}
}

func TestText_CorruptDocxReturnsTypedError(t *testing.T) {
	_, err := Text([]byte("zip? no"), "resume.docx")
	if err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
	var extErr *Error
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *extractor.Error, got %T", err)
	}
}

func TestText_SuffixCaseInsensitive(t *testing.T) {
	_, err := Text([]byte("nope"), "RESUME.PDF")
	if err == nil {
		t.Fatalf("expected pdf path for upper-case suffix")
	}
}
