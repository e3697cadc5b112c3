package dto

import "resume-tailor/internal/domain/resume"

type UploadResumeResponse struct {
	Filename      string        `json:"filename"`
	TextLength    int           `json:"text_length"`
	ExtractedText string        `json:"extracted_text"`
	ParsedData    resume.Parsed `json:"parsed_data"`
}
