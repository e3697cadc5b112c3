package handler

import (
	"errors"
	"io"

	"resume-tailor/internal/delivery/http/dto"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/pkg/response"
	"resume-tailor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload-resume", h.Upload)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file required", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
	}

	res, err := h.uc.Upload(c.Context(), content, fh.Filename)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	data := dto.UploadResumeResponse{
		Filename:      fh.Filename,
		TextLength:    len(res.Text),
		ExtractedText: res.Text,
		ParsedData:    res.Parsed,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}

func mapResumeUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume file", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
}
