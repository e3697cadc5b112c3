package dto

import "resume-tailor/internal/domain/resume"

type GeneratePDFRequest struct {
	ResumeData resume.Parsed `json:"resume_data"`
	// TailoredSummary overrides the parsed summary when set, so a tailored
	// run can be printed without mutating the uploaded data.
	TailoredSummary string `json:"tailored_summary,omitempty"`
}

type GeneratePDFResponse struct {
	Filename    string `json:"filename"`
	PDFPath     string `json:"pdf_path"`
	DownloadURL string `json:"download_url"`
}
