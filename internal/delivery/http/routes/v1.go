package routes

import "github.com/gofiber/fiber/v3"

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(v1)
	}
	if r.Resume != nil {
		r.Resume.RegisterRoutes(v1)
	}
	if r.Job != nil {
		r.Job.RegisterRoutes(v1)
	}
	if r.Tailor != nil {
		r.Tailor.RegisterRoutes(v1)
	}
	if r.PDF != nil {
		r.PDF.RegisterRoutes(v1)
	}

	if r.Stats != nil {
		protected := v1
		if r.AuthMW != nil {
			protected = v1.Group("", r.AuthMW.Middleware())
		}
		r.Stats.RegisterRoutes(protected)
	}
}
