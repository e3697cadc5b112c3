package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-tailor/internal/domain/job"

	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	requestTimeout = 60 * time.Second
)

// Generator rewrites a résumé for a specific job. Implementations may fail
// for any reason (network, auth, quota); callers must treat every error as a
// signal to fall back to rule-based tailoring and never surface it.
type Generator interface {
	Generate(ctx context.Context, resumeText string, ja job.Analysis) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds a Gemini-backed generator, or returns nil when no
// API key is configured so the caller wires the rule-based path only.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: defaultModel}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, resumeText string, ja job.Analysis) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("gemini not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(resumeText, ja)), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

func buildPrompt(resumeText string, ja job.Analysis) string {
	return fmt.Sprintf(`Rewrite this resume to better match the job requirements. Focus on:
1. Including relevant keywords: %s
2. Emphasizing experience related to: %s
3. Optimizing for ATS systems
4. Maintaining truthfulness while highlighting relevant skills

Original Resume:
%s

Job Role: %s
Company: %s

Provide a tailored version that maintains the original structure but optimizes for this specific role.`,
		strings.Join(ja.RequiredSkills, ", "),
		strings.Join(ja.KeyPhrases, ", "),
		resumeText,
		ja.Role,
		ja.Company,
	)
}
