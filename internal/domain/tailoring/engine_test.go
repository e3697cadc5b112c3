package tailoring

import (
	"strings"
	"testing"

	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
)

func analysis() job.Analysis {
	return job.Analysis{
		RequiredSkills:  []string{"python", "aws", "react"},
		Role:            "Backend Developer",
		Company:         "Globex",
		ExperienceLevel: job.LevelSenior,
		KeyPhrases:      []string{"ci/cd"},
		CompanyValues:   []string{"innovation", "remote"},
	}
}

func TestBuildFallback_StructureAndHeaders(t *testing.T) {
	e := NewEngine()
	resumeText := strings.Join([]string{
		"Jane Smith",
		"WORK HISTORY",
		"• Developed internal tooling for the data team",
		"EDUCATION",
		"BSc Computer Science",
	}, "\n")

	got := e.BuildFallback(resumeText, analysis())

	if !strings.HasPrefix(got, "PROFESSIONAL RESUME") {
		t.Fatalf("missing fixed header:\n%s", got)
	}
	for _, want := range []string{"PROFESSIONAL SUMMARY", "TECHNICAL SKILLS", "PROFESSIONAL EXPERIENCE", "EDUCATION"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing section %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "python, aws, react") {
		t.Fatalf("summary does not name top skills:\n%s", got)
	}
}

func TestBuildFallback_EnhancesActionBullets(t *testing.T) {
	e := NewEngine()
	resumeText := "EXPERIENCE\n• Developed internal tooling for the data team"

	got := e.BuildFallback(resumeText, analysis())
	if !strings.Contains(got, "• Developed internal tooling for the data team using python") {
		t.Fatalf("bullet not enhanced:\n%s", got)
	}
}

func TestBuildFallback_SkipsBulletsWithSkillOrNoVerb(t *testing.T) {
	e := NewEngine()
	resumeText := strings.Join([]string{
		"EXPERIENCE",
		"• Built dashboards in react for stakeholders",
		"• Responsible for on-call rotation",
	}, "\n")

	got := e.BuildFallback(resumeText, analysis())
	if strings.Contains(got, "react for stakeholders using") {
		t.Fatalf("bullet with skill was enhanced:\n%s", got)
	}
	if strings.Contains(got, "on-call rotation using") {
		t.Fatalf("bullet without action verb was enhanced:\n%s", got)
	}
}

func TestBuildFallback_AppendsProjectsWhenAbsent(t *testing.T) {
	e := NewEngine()

	got := e.BuildFallback("EXPERIENCE\n• Developed things carefully", analysis())
	if !strings.Contains(got, "KEY PROJECTS") {
		t.Fatalf("missing synthesized projects:\n%s", got)
	}

	withProjects := e.BuildFallback("PROJECTS\nBuilt a chess engine in go", analysis())
	if strings.Count(withProjects, "KEY PROJECTS") != 1 {
		t.Fatalf("projects header not canonicalized once:\n%s", withProjects)
	}
	if !strings.Contains(withProjects, "Built a chess engine in go") {
		t.Fatalf("project content dropped:\n%s", withProjects)
	}
	if strings.Count(withProjects, "Relevant project demonstrating") != 0 {
		t.Fatalf("synthesized projects despite existing section:\n%s", withProjects)
	}
}

func TestBuildFallback_EveryProjectLineBecomesHeader(t *testing.T) {
	e := NewEngine()

	// Section matching is per-line containment, so a body line that names a
	// project is canonicalized into a header as well.
	got := e.BuildFallback("PROJECTS\nSome project text", analysis())
	if strings.Count(got, "KEY PROJECTS") != 2 {
		t.Fatalf("expected both lines canonicalized:\n%s", got)
	}
	if strings.Contains(got, "Some project text") {
		t.Fatalf("body line naming a project should be swallowed:\n%s", got)
	}
}

func TestSuggestProjects_CategoriesInOrder(t *testing.T) {
	e := NewEngine()

	got := e.SuggestProjects(analysis())
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d: %v", len(got), got)
	}
	// react category first, then backend (role), then aws; python truncated off.
	if got[0] != "E-commerce Platform with React & TypeScript" {
		t.Fatalf("unexpected first suggestion %q", got[0])
	}
}

func TestSuggestProjects_Default(t *testing.T) {
	e := NewEngine()
	got := e.SuggestProjects(job.Analysis{Role: "Accountant"})
	if len(got) != 3 || got[0] != "Full-Stack Web Application" {
		t.Fatalf("unexpected default suggestions %v", got)
	}
}

func TestPackage_MatchScoreAndKeywords(t *testing.T) {
	e := NewEngine()

	res := e.Package("alpha beta", "alpha beta gamma delta", 0.40, true)
	if res.MatchScore != 55 {
		t.Fatalf("expected 55, got %d", res.MatchScore)
	}
	if len(res.AddedKeywords) != 2 || res.AddedKeywords[0] != "gamma" {
		t.Fatalf("unexpected added keywords %v", res.AddedKeywords)
	}
	if !res.ATSOptimized {
		t.Fatalf("expected ats optimized")
	}

	if got := e.Package("a", "a", 0, true).MatchScore; got != 50 {
		t.Fatalf("zero similarity should default to 50, got %d", got)
	}
	if got := e.Package("a", "a", 0.93, true).MatchScore; got != 95 {
		t.Fatalf("expected cap 95, got %d", got)
	}
}

func TestPackage_AddedKeywordCap(t *testing.T) {
	e := NewEngine()
	res := e.Package("", "one two three four five six seven eight nine ten", 0.1, true)
	if len(res.AddedKeywords) != 8 {
		t.Fatalf("expected 8 added keywords, got %d", len(res.AddedKeywords))
	}
}

func TestTailorStructured(t *testing.T) {
	e := NewEngine()
	parsed := resume.Parsed{
		Summary: "Seasoned builder of systems.",
		Skills:  []string{"Python", "Docker"},
		Experience: []resume.Experience{
			{Title: "Engineer", Company: "Acme", Duration: "2020-2024", Description: "Shipped the flagship service."},
		},
	}

	got := e.TailorStructured(parsed, analysis())

	if !strings.HasPrefix(got.TailoredSummary, "Senior professional with extensive expertise in") {
		t.Fatalf("summary prefix missing: %q", got.TailoredSummary)
	}
	if !strings.Contains(got.TailoredSummary, "Passionate about innovation, remote") {
		t.Fatalf("company values missing: %q", got.TailoredSummary)
	}

	if len(got.TailoredExperience) != 1 {
		t.Fatalf("experience length changed")
	}
	desc := got.TailoredExperience[0].Description
	if !strings.Contains(desc, "Utilized python for implementation.") ||
		!strings.Contains(desc, "Utilized aws for implementation.") {
		t.Fatalf("experience not enhanced: %q", desc)
	}

	// python matched (1 of 3 required) -> 1/3.
	if got.MatchScore < 0.32 || got.MatchScore > 0.34 {
		t.Fatalf("unexpected match score %v", got.MatchScore)
	}

	hasRec := func(name string) bool {
		for _, s := range got.RecommendedSkills {
			if strings.EqualFold(s, name) {
				return true
			}
		}
		return false
	}
	if !hasRec("Python") || !hasRec("aws") || !hasRec("react") {
		t.Fatalf("unexpected recommendations %v", got.RecommendedSkills)
	}
}
