package routes

import (
	"resume-tailor/internal/delivery/http/handler"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires constructed handlers onto the fiber app. Handlers are built
// by the app container; this package only knows the URL layout.
type Registry struct {
	Health *handler.HealthHandler
	Resume *handler.ResumeHandler
	Job    *handler.JobHandler
	Tailor *handler.TailorHandler
	PDF    *handler.PDFHandler
	Stats  *handler.StatsHandler

	Activity *ws.Handler
	AuthMW   *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))

	if r.Activity != nil {
		app.Get("/ws/activity", r.Activity.HandleActivityWS)
	}
}
