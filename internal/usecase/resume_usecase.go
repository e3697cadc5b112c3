package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/extractor"
)

const maxUploadBytes = 10 << 20

type UploadResult struct {
	Text   string
	Parsed resume.Parsed
}

type ResumeUsecase interface {
	Upload(ctx context.Context, content []byte, filename string) (UploadResult, error)
}

type Resume struct {
	parser *resume.Parser
}

func NewResumeUsecase(parser *resume.Parser) *Resume {
	return &Resume{parser: parser}
}

func (u *Resume) Upload(_ context.Context, content []byte, filename string) (UploadResult, error) {
	if len(content) == 0 || strings.TrimSpace(filename) == "" {
		return UploadResult{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if len(content) > maxUploadBytes {
		return UploadResult{}, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, maxUploadBytes)
	}

	text, err := extractor.Text(content, filename)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: could not read %s: %v", ErrInvalidInput, filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return UploadResult{}, fmt.Errorf("%w: no text found in %s", ErrInvalidInput, filename)
	}

	return UploadResult{
		Text:   text,
		Parsed: u.parser.Parse(text),
	}, nil
}
