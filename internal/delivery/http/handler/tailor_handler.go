package handler

import (
	"errors"

	"resume-tailor/internal/delivery/http/dto"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/pkg/response"
	"resume-tailor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TailorHandler struct {
	uc usecase.TailorUsecase
}

func NewTailorHandler(uc usecase.TailorUsecase) *TailorHandler {
	return &TailorHandler{uc: uc}
}

func (h *TailorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/tailor-resume", h.Tailor)
	r.Post("/tailor-resume/structured", h.TailorStructured)
}

func (h *TailorHandler) Tailor(c fiber.Ctx) error {
	var req dto.TailorResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if req.Structured() {
		return h.tailorStructured(c, dto.TailorStructuredRequest{
			ResumeData:     derefParsed(req.ResumeData),
			JobAnalysis:    req.JobAnalysis,
			JobDescription: req.JobDescription,
		})
	}

	out, err := h.uc.Tailor(c.Context(), usecase.TailorInput{
		UserID:         req.UserID,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return mapTailorUsecaseError(err)
	}

	data := dto.TailorResumeResponse{
		TailoredResume:    out.Result.TailoredText,
		MatchScore:        out.Result.MatchScore,
		AddedKeywords:     out.Result.AddedKeywords,
		ATSOptimized:      out.Result.ATSOptimized,
		SuggestedProjects: out.SuggestedProjects,
		JobAnalysis:       out.Analysis,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}

func (h *TailorHandler) TailorStructured(c fiber.Ctx) error {
	var req dto.TailorStructuredRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return h.tailorStructured(c, req)
}

func (h *TailorHandler) tailorStructured(c fiber.Ctx, req dto.TailorStructuredRequest) error {
	res, err := h.uc.TailorStructured(c.Context(), usecase.StructuredInput{
		Resume:      req.ResumeData,
		JobAnalysis: req.JobAnalysis,
		JobText:     req.JobDescription,
	})
	if err != nil {
		return mapTailorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "ok", res)
}

func derefParsed(p *resume.Parsed) resume.Parsed {
	if p == nil {
		return resume.Parsed{}
	}
	return *p
}

func mapTailorUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume text and job description required", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
}
