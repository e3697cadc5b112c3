package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/domain/scoring"
	"resume-tailor/internal/domain/tailoring"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/repository"
	"resume-tailor/internal/store"
	"resume-tailor/internal/ws"
)

type TailorInput struct {
	UserID         string
	ResumeText     string
	JobDescription string
}

type TailorOutput struct {
	Result            tailoring.Result
	SuggestedProjects []string
	Analysis          job.Analysis
}

// StructuredInput is the services-variant request: a parsed résumé plus
// either a precomputed job analysis or raw job text to analyze.
type StructuredInput struct {
	Resume      resume.Parsed
	JobAnalysis *job.Analysis
	JobText     string
}

type TailorUsecase interface {
	Tailor(ctx context.Context, in TailorInput) (TailorOutput, error)
	TailorStructured(ctx context.Context, in StructuredInput) (tailoring.StructuredResult, error)
}

type Tailor struct {
	analyzer  *job.Analyzer
	scorer    *scoring.Engine
	engine    *tailoring.Engine
	generator llm.Generator
	stats     store.StatsStore
	history   repository.HistoryRepository
	logger    *log.Logger
}

func NewTailorUsecase(
	analyzer *job.Analyzer,
	scorer *scoring.Engine,
	engine *tailoring.Engine,
	generator llm.Generator,
	stats store.StatsStore,
	history repository.HistoryRepository,
	logger *log.Logger,
) *Tailor {
	if logger == nil {
		logger = log.Default()
	}
	return &Tailor{
		analyzer:  analyzer,
		scorer:    scorer,
		engine:    engine,
		generator: generator,
		stats:     stats,
		history:   history,
		logger:    logger,
	}
}

// Tailor rewrites the résumé for the given job. When an LLM generator is
// wired it gets the first shot; any failure falls back to the rule-based
// engine and is never surfaced to the caller.
func (u *Tailor) Tailor(ctx context.Context, in TailorInput) (TailorOutput, error) {
	resumeText := strings.TrimSpace(in.ResumeText)
	jobText := strings.TrimSpace(in.JobDescription)
	if resumeText == "" || jobText == "" {
		return TailorOutput{}, fmt.Errorf("%w: resume text and job description required", ErrInvalidInput)
	}

	ja := u.analyzer.Analyze(jobText)
	score := u.scorer.Similarity(resumeText, jobText)

	tailored := ""
	if u.generator != nil {
		text, err := u.generator.Generate(ctx, resumeText, ja)
		if err != nil {
			u.logger.Printf("[Tailor] LLM generation failed, using rule-based fallback: %v", err)
		} else {
			tailored = text
		}
	}
	if tailored == "" {
		tailored = u.engine.BuildFallback(resumeText, ja)
	}

	result := u.engine.Package(resumeText, tailored, score.Value, tailored != resumeText)

	u.recordTailored(ctx, in.UserID, ja, result)

	return TailorOutput{
		Result:            result,
		SuggestedProjects: u.engine.SuggestProjects(ja),
		Analysis:          ja,
	}, nil
}

func (u *Tailor) TailorStructured(_ context.Context, in StructuredInput) (tailoring.StructuredResult, error) {
	jobText := strings.TrimSpace(in.JobText)
	if in.JobAnalysis == nil && jobText == "" {
		return tailoring.StructuredResult{}, fmt.Errorf("%w: job analysis or job description required", ErrInvalidInput)
	}

	ja := job.Analysis{}
	if in.JobAnalysis != nil {
		ja = *in.JobAnalysis
	} else {
		ja = u.analyzer.Analyze(jobText)
	}
	return u.engine.TailorStructured(in.Resume, ja), nil
}

// recordTailored applies the side effects of a successful run. All of them
// are best effort; a stats or history failure never fails the request.
func (u *Tailor) recordTailored(ctx context.Context, userID string, ja job.Analysis, result tailoring.Result) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return
	}

	if u.stats != nil {
		err := u.stats.RecordActivity(ctx, userID, store.Activity{
			Action:     store.ActionTailored,
			Company:    ja.Company,
			Role:       ja.Role,
			MatchScore: result.MatchScore,
		})
		if err != nil {
			u.logger.Printf("[Tailor] stats record failed | user=%s err=%v", userID, err)
		}
	}

	if u.history != nil {
		err := u.history.Insert(ctx, repository.HistoryEntry{
			UserID:     userID,
			Company:    ja.Company,
			Role:       ja.Role,
			MatchScore: result.MatchScore,
		})
		if err != nil {
			u.logger.Printf("[Tailor] history insert failed | user=%s err=%v", userID, err)
		}
	}

	ws.NotifyResumeTailored(userID, ja.Company, ja.Role, result.MatchScore)
}
