package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/skills"
)

type fakeFetcher struct {
	text    string
	err     error
	lastURL string
}

func (f *fakeFetcher) Fetch(rawURL string) (string, error) {
	f.lastURL = rawURL
	return f.text, f.err
}

func newJobForTest(f Fetcher) *Job {
	matcher := skills.NewMatcher(skills.DefaultVocabulary())
	return NewJobUsecase(job.NewAnalyzer(matcher), f, log.New(&strings.Builder{}, "", 0))
}

func TestAnalyze_TextPreferredOverURL(t *testing.T) {
	f := &fakeFetcher{text: "ignored"}
	u := newJobForTest(f)

	ja, err := u.Analyze(context.Background(), "Senior Engineer at Globex. python required.", "https://example.com/job")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.lastURL != "" {
		t.Fatalf("fetcher called although text was provided")
	}
	if ja.Company != "Globex" {
		t.Fatalf("company = %q", ja.Company)
	}
}

func TestAnalyze_FetchesWhenOnlyURLGiven(t *testing.T) {
	f := &fakeFetcher{text: "Junior Developer at Initech. Requirements: java."}
	u := newJobForTest(f)

	ja, err := u.Analyze(context.Background(), "", "https://example.com/job")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.lastURL != "https://example.com/job" {
		t.Fatalf("fetcher url = %q", f.lastURL)
	}
	if ja.ExperienceLevel != job.LevelJunior {
		t.Fatalf("level = %q", ja.ExperienceLevel)
	}
}

func TestAnalyze_FetchFailureIsInvalidInput(t *testing.T) {
	u := newJobForTest(&fakeFetcher{err: errors.New("dns failure")})

	if _, err := u.Analyze(context.Background(), "", "https://example.com/job"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_NothingProvided(t *testing.T) {
	u := newJobForTest(&fakeFetcher{})

	if _, err := u.Analyze(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
