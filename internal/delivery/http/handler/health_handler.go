package handler

import (
	"resume-tailor/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthFeatures reports which optional integrations came up at boot.
type HealthFeatures struct {
	GeminiConfigured bool `json:"gemini_configured"`
	Redis            bool `json:"redis"`
	Database         bool `json:"database"`
}

type HealthHandler struct {
	service  string
	features HealthFeatures
}

func NewHealthHandler(service string, features HealthFeatures) *HealthHandler {
	return &HealthHandler{service: service, features: features}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status":   "healthy",
		"service":  h.service,
		"features": h.features,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}
