package handler

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestHealth_ReportsFeatures(t *testing.T) {
	h := NewHealthHandler("resume-tailor", HealthFeatures{GeminiConfigured: true})
	app := newTestApp(func(r fiber.Router) { h.RegisterRoutes(r) })

	resp, env := doJSON(t, app, "GET", "/health", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var data struct {
		Status   string         `json:"status"`
		Service  string         `json:"service"`
		Features HealthFeatures `json:"features"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Status != "healthy" || data.Service != "resume-tailor" {
		t.Fatalf("unexpected payload %+v", data)
	}
	if !data.Features.GeminiConfigured || data.Features.Redis {
		t.Fatalf("unexpected features %+v", data.Features)
	}
}
