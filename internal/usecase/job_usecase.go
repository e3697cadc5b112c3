package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resume-tailor/internal/domain/job"
)

// Fetcher pulls job-posting text from a URL.
type Fetcher interface {
	Fetch(rawURL string) (string, error)
}

type JobUsecase interface {
	Analyze(ctx context.Context, text, rawURL string) (job.Analysis, error)
}

type Job struct {
	analyzer *job.Analyzer
	fetcher  Fetcher
	logger   *log.Logger
}

func NewJobUsecase(analyzer *job.Analyzer, fetcher Fetcher, logger *log.Logger) *Job {
	if logger == nil {
		logger = log.Default()
	}
	return &Job{analyzer: analyzer, fetcher: fetcher, logger: logger}
}

// Analyze works from pasted text when present, otherwise fetches the posting
// at rawURL.
func (u *Job) Analyze(_ context.Context, text, rawURL string) (job.Analysis, error) {
	text = strings.TrimSpace(text)
	rawURL = strings.TrimSpace(rawURL)

	if text == "" && rawURL == "" {
		return job.Analysis{}, fmt.Errorf("%w: job description or job url required", ErrInvalidInput)
	}

	if text == "" {
		if u.fetcher == nil {
			return job.Analysis{}, fmt.Errorf("%w: job url fetching not configured", ErrInvalidInput)
		}
		fetched, err := u.fetcher.Fetch(rawURL)
		if err != nil {
			u.logger.Printf("[Job] fetch failed | url=%s err=%v", rawURL, err)
			return job.Analysis{}, fmt.Errorf("%w: could not fetch job posting", ErrInvalidInput)
		}
		text = fetched
	}

	return u.analyzer.Analyze(text), nil
}
