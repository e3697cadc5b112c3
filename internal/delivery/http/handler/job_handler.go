package handler

import (
	"errors"

	"resume-tailor/internal/delivery/http/dto"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/pkg/response"
	"resume-tailor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze-job", h.Analyze)
}

func (h *JobHandler) Analyze(c fiber.Ctx) error {
	var req dto.AnalyzeJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ja, err := h.uc.Analyze(c.Context(), req.Description(), req.JobURL)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.AnalyzeJobResponse{Analysis: ja})
}

func mapJobUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description or job url required", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
}
