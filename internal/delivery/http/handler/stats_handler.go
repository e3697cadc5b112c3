package handler

import (
	"errors"

	"resume-tailor/internal/delivery/http/dto"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/pkg/response"
	"resume-tailor/internal/store"
	"resume-tailor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user/:user_id/stats", h.Stats)
	r.Get("/user/:user_id/activity", h.Activity)
	r.Post("/user/:user_id/activity", h.Record)
	r.Get("/user/:user_id/history", h.History)
}

func (h *StatsHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapStatsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "ok", stats)
}

func (h *StatsHandler) Activity(c fiber.Ctx) error {
	acts, err := h.uc.Activity(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapStatsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "ok", map[string]any{"recent_activity": acts})
}

func (h *StatsHandler) Record(c fiber.Ctx) error {
	var req dto.RecordActivityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	stats, err := h.uc.Record(c.Context(), c.Params("user_id"), store.Activity{
		Action:     req.Action,
		Company:    req.Company,
		Role:       req.Role,
		MatchScore: req.MatchScore,
	})
	if err != nil {
		return mapStatsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "ok", stats)
}

func (h *StatsHandler) History(c fiber.Ctx) error {
	entries, err := h.uc.History(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapStatsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "ok", map[string]any{"history": entries})
}

func mapStatsUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "User id required", nil, err)
	case errors.Is(err, usecase.ErrHistoryUnavailable):
		return middleware.NewAppError(fiber.StatusNotFound, "History storage not configured", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
	}
}
