package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/domain/scoring"
	"resume-tailor/internal/domain/skills"
	"resume-tailor/internal/domain/tailoring"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/store"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, _ job.Analysis) (string, error) {
	return f.text, f.err
}

func newTailorForTest(gen llm.Generator, stats store.StatsStore) *Tailor {
	matcher := skills.NewMatcher(skills.DefaultVocabulary())
	return NewTailorUsecase(
		job.NewAnalyzer(matcher),
		scoring.NewEngine(matcher),
		tailoring.NewEngine(),
		gen,
		stats,
		nil,
		log.New(&strings.Builder{}, "", 0),
	)
}

const testResume = "Jane Roe\njane@example.com\nDeveloped backend services with python and aws."

const testJob = "Senior Software Engineer at Globex\nRequirements: python, aws, docker required."

func TestTailor_UsesGeneratorOutput(t *testing.T) {
	u := newTailorForTest(&fakeGenerator{text: "LLM TAILORED RESUME with python"}, nil)

	out, err := u.Tailor(context.Background(), TailorInput{ResumeText: testResume, JobDescription: testJob})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Result.TailoredText != "LLM TAILORED RESUME with python" {
		t.Fatalf("generator output not used: %q", out.Result.TailoredText)
	}
	if !out.Result.ATSOptimized {
		t.Fatalf("expected ats_optimized true")
	}
}

func TestTailor_FailingGeneratorMatchesNoGenerator(t *testing.T) {
	failing := newTailorForTest(&fakeGenerator{err: errors.New("quota exceeded")}, nil)
	none := newTailorForTest(nil, nil)

	in := TailorInput{ResumeText: testResume, JobDescription: testJob}

	got, err := failing.Tailor(context.Background(), in)
	if err != nil {
		t.Fatalf("fallback must not surface generator errors, got %v", err)
	}
	want, err := none.Tailor(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.Result.TailoredText != want.Result.TailoredText {
		t.Fatalf("fallback output differs from no-generator output")
	}
	if !strings.Contains(got.Result.TailoredText, "PROFESSIONAL RESUME") {
		t.Fatalf("fallback template missing header: %q", got.Result.TailoredText[:80])
	}
}

func TestTailor_DisjointResumeGetsDefaultScore(t *testing.T) {
	u := newTailorForTest(nil, nil)

	out, err := u.Tailor(context.Background(), TailorInput{
		ResumeText:     "zzqy wvut plonk",
		JobDescription: testJob,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// The score comes from the original resume against the job, not from the
	// keyword-enhanced output, so zero overlap yields the default.
	if out.Result.MatchScore != 50 {
		t.Fatalf("match score = %d, want 50 for zero-overlap inputs", out.Result.MatchScore)
	}
}

func TestTailor_EmptyInputsRejected(t *testing.T) {
	u := newTailorForTest(nil, nil)

	cases := []TailorInput{
		{ResumeText: "", JobDescription: testJob},
		{ResumeText: testResume, JobDescription: ""},
		{ResumeText: "   ", JobDescription: "   "},
	}
	for _, in := range cases {
		if _, err := u.Tailor(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestTailor_RecordsActivityForUser(t *testing.T) {
	stats := store.NewMemoryStats()
	u := newTailorForTest(nil, stats)

	out, err := u.Tailor(context.Background(), TailorInput{
		UserID:         "u1",
		ResumeText:     testResume,
		JobDescription: testJob,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s, _ := stats.Stats(context.Background(), "u1")
	if s.ResumesTailored != 1 {
		t.Fatalf("resumes_tailored = %d, want 1", s.ResumesTailored)
	}
	if len(s.RecentActivity) != 1 {
		t.Fatalf("activity length = %d, want 1", len(s.RecentActivity))
	}
	act := s.RecentActivity[0]
	if act.Action != store.ActionTailored || act.Company != "Globex" {
		t.Fatalf("unexpected activity %+v", act)
	}
	if act.MatchScore != out.Result.MatchScore {
		t.Fatalf("activity score %d != result score %d", act.MatchScore, out.Result.MatchScore)
	}
}

func TestTailor_AnonymousRunSkipsStats(t *testing.T) {
	stats := store.NewMemoryStats()
	u := newTailorForTest(nil, stats)

	_, err := u.Tailor(context.Background(), TailorInput{ResumeText: testResume, JobDescription: testJob})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s, _ := stats.Stats(context.Background(), "u1")
	if s.ResumesTailored != 0 {
		t.Fatalf("anonymous run must not record stats")
	}
}

func TestTailor_SuggestionsIncluded(t *testing.T) {
	u := newTailorForTest(nil, nil)

	out, err := u.Tailor(context.Background(), TailorInput{ResumeText: testResume, JobDescription: testJob})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.SuggestedProjects) == 0 {
		t.Fatalf("expected project suggestions")
	}
}

func TestTailorStructured_RequiresJobInput(t *testing.T) {
	u := newTailorForTest(nil, nil)

	_, err := u.TailorStructured(context.Background(), StructuredInput{JobText: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTailorStructured_ProducesSections(t *testing.T) {
	matcher := skills.NewMatcher(skills.DefaultVocabulary())
	u := newTailorForTest(nil, nil)

	parsed := resume.NewParser(matcher).Parse(testResume)
	res, err := u.TailorStructured(context.Background(), StructuredInput{Resume: parsed, JobText: testJob})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TailoredSummary == "" {
		t.Fatalf("expected a tailored summary")
	}
	if len(res.RecommendedSkills) == 0 {
		t.Fatalf("expected recommended skills")
	}
}

func TestTailorStructured_UsesProvidedAnalysis(t *testing.T) {
	u := newTailorForTest(nil, nil)

	ja := job.Analysis{
		Company:         "Initech",
		Role:            "Software Engineer",
		ExperienceLevel: job.LevelSenior,
		RequiredSkills:  []string{"python"},
	}
	res, err := u.TailorStructured(context.Background(), StructuredInput{JobAnalysis: &ja})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(res.TailoredSummary, "Senior professional") ||
		!strings.Contains(res.TailoredSummary, "python") {
		t.Fatalf("provided analysis not used: %q", res.TailoredSummary)
	}
}
