package handler

import (
	"errors"
	"strings"

	"resume-tailor/internal/delivery/http/dto"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/pkg/response"
	"resume-tailor/internal/render"
	"resume-tailor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PDFHandler struct {
	uc usecase.PDFUsecase
}

func NewPDFHandler(uc usecase.PDFUsecase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

func (h *PDFHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/generate-pdf", h.Generate)
	r.Get("/download-pdf/:filename", h.Download)
}

func (h *PDFHandler) Generate(c fiber.Ctx) error {
	var req dto.GeneratePDFRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	summary := req.ResumeData.Summary
	if strings.TrimSpace(req.TailoredSummary) != "" {
		summary = req.TailoredSummary
	}

	doc := render.Document{
		Name:       req.ResumeData.Name,
		Email:      req.ResumeData.Email,
		Phone:      req.ResumeData.Phone,
		Summary:    summary,
		Skills:     req.ResumeData.Skills,
		Experience: req.ResumeData.Experience,
		Education:  req.ResumeData.Education,
	}

	gen, err := h.uc.Generate(c.Context(), doc)
	if err != nil {
		return mapPDFUsecaseError(err)
	}

	data := dto.GeneratePDFResponse{
		Filename:    gen.Filename,
		PDFPath:     gen.Path,
		DownloadURL: "/api/v1/download-pdf/" + gen.Filename,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}

func (h *PDFHandler) Download(c fiber.Ctx) error {
	filename := c.Params("filename")

	path, err := h.uc.Locate(filename)
	if err != nil {
		return mapPDFUsecaseError(err)
	}

	return c.Download(path, filename)
}

func mapPDFUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pdf request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "PDF not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
	}
}
