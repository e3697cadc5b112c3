package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/domain/skills"
)

func newResumeForTest() *Resume {
	matcher := skills.NewMatcher(skills.DefaultVocabulary())
	return NewResumeUsecase(resume.NewParser(matcher))
}

func TestUpload_PlainTextResume(t *testing.T) {
	u := newResumeForTest()

	content := []byte("Jane Roe\njane@example.com\nPython and AWS experience.")
	res, err := u.Upload(context.Background(), content, "resume.txt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Text != string(content) {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if res.Parsed.Email != "jane@example.com" {
		t.Fatalf("email = %q", res.Parsed.Email)
	}
	found := false
	for _, s := range res.Parsed.Skills {
		if s == "python" {
			found = true
		}
	}
	if !found {
		t.Fatalf("python not extracted: %v", res.Parsed.Skills)
	}
}

func TestUpload_EmptyFileRejected(t *testing.T) {
	u := newResumeForTest()

	if _, err := u.Upload(context.Background(), nil, "resume.txt"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := u.Upload(context.Background(), []byte("x"), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank filename, got %v", err)
	}
}

func TestUpload_OversizedFileRejected(t *testing.T) {
	u := newResumeForTest()

	big := bytes.Repeat([]byte("a"), maxUploadBytes+1)
	if _, err := u.Upload(context.Background(), big, "resume.txt"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpload_CorruptPDFRejected(t *testing.T) {
	u := newResumeForTest()

	if _, err := u.Upload(context.Background(), []byte("not a pdf"), "resume.pdf"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpload_WhitespaceOnlyRejected(t *testing.T) {
	u := newResumeForTest()

	if _, err := u.Upload(context.Background(), []byte("   \n\t  "), "resume.txt"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
