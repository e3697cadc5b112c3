package dto

import "resume-tailor/internal/domain/job"

type AnalyzeJobRequest struct {
	JobDescription string `json:"job_description"`
	// Text is a legacy alias for job_description.
	Text   string `json:"text"`
	JobURL string `json:"job_url"`
}

func (r AnalyzeJobRequest) Description() string {
	if r.JobDescription != "" {
		return r.JobDescription
	}
	return r.Text
}

type AnalyzeJobResponse struct {
	Analysis job.Analysis `json:"analysis"`
}
