package dto

import (
	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/domain/tailoring"
)

type TailorResumeRequest struct {
	UserID         string `json:"user_id"`
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`

	// Structured variant. When resume_data or job_analysis is present and
	// resume_text is absent, the request takes the structured path.
	ResumeData  *resume.Parsed `json:"resume_data"`
	JobAnalysis *job.Analysis  `json:"job_analysis"`
}

// Structured reports whether the request carries the structured payload shape.
func (r TailorResumeRequest) Structured() bool {
	return r.ResumeText == "" && (r.ResumeData != nil || r.JobAnalysis != nil)
}

type TailorResumeResponse struct {
	TailoredResume    string       `json:"tailored_resume"`
	MatchScore        int          `json:"match_score"`
	AddedKeywords     []string     `json:"added_keywords"`
	ATSOptimized      bool         `json:"ats_optimized"`
	SuggestedProjects []string     `json:"suggested_projects"`
	JobAnalysis       job.Analysis `json:"job_analysis"`
}

type TailorStructuredRequest struct {
	ResumeData     resume.Parsed `json:"resume_data"`
	JobAnalysis    *job.Analysis `json:"job_analysis"`
	JobDescription string        `json:"job_description"`
}

type TailorStructuredResponse struct {
	tailoring.StructuredResult
}
