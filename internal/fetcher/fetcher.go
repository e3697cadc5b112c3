package fetcher

import (
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	requestTimeout = 20 * time.Second
	maxTextLength  = 20000
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// JobPostingFetcher pulls the text of a job posting page so /analyze-job can
// accept a URL instead of pasted text.
type JobPostingFetcher struct {
	logger    *log.Logger
	userAgent string
}

func NewJobPostingFetcher(logger *log.Logger) *JobPostingFetcher {
	if logger == nil {
		logger = log.Default()
	}
	return &JobPostingFetcher{
		logger:    logger,
		userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	}
}

// Fetch downloads the page at rawURL and returns its visible text, title
// first, whitespace-collapsed and capped.
func (f *JobPostingFetcher) Fetch(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("parse job url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported job url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("job url missing host")
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Host),
		colly.MaxDepth(1),
		colly.UserAgent(f.userAgent),
	)
	c.SetRequestTimeout(requestTimeout)

	var title string
	var parts []string

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("h1, h2, h3, p, li", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if text != "" {
			parts = append(parts, text)
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		f.logger.Printf("[Fetcher] job url fetch error | url=%s status=%d err=%v", rawURL, r.StatusCode, err)
	})

	if err := c.Visit(u.String()); err != nil {
		return "", fmt.Errorf("fetch job url: %w", err)
	}
	c.Wait()

	text := strings.TrimSpace(title + "\n" + strings.Join(parts, "\n"))
	if text == "" {
		return "", fmt.Errorf("job url yielded no text")
	}

	text = collapseLines(text)
	if len(text) > maxTextLength {
		text = text[:maxTextLength]
	}
	return text, nil
}

func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
