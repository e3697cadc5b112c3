package tailoring

import "resume-tailor/internal/domain/resume"

// Result is the outcome of tailoring raw résumé text against a job analysis.
// Derived, never persisted as-is.
type Result struct {
	TailoredText  string   `json:"tailored_resume"`
	MatchScore    int      `json:"match_score"`
	AddedKeywords []string `json:"added_keywords"`
	ATSOptimized  bool     `json:"ats_optimized"`
}

// StructuredResult is the services-variant outcome for structured résumé
// input: per-section rewrites instead of a single text blob.
type StructuredResult struct {
	TailoredSummary    string              `json:"tailored_summary"`
	TailoredExperience []resume.Experience `json:"tailored_experience"`
	RecommendedSkills  []string            `json:"recommended_skills"`
	MatchScore         float64             `json:"match_score"`
}
