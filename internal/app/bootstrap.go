package app

import (
	"fmt"
	"log"
	"strings"

	"resume-tailor/internal/config"
	"resume-tailor/internal/delivery/http/handler"
	"resume-tailor/internal/delivery/http/middleware"
	"resume-tailor/internal/delivery/http/routes"
	"resume-tailor/internal/pkg/jwt"
	"resume-tailor/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	var authMW *middleware.AuthMiddleware
	if cfg.Auth.JWTSecret != "" {
		authMW = middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.Auth.JWTSecret))
	}

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(cfg.App.AppName, handler.HealthFeatures{
			GeminiConfigured: c.Generator != nil,
			Redis:            c.RedisStats != nil,
			Database:         c.DB != nil,
		}),
		Resume:   handler.NewResumeHandler(c.ResumeUC),
		Job:      handler.NewJobHandler(c.JobUC),
		Tailor:   handler.NewTailorHandler(c.TailorUC),
		PDF:      handler.NewPDFHandler(c.PDFUC),
		Stats:    handler.NewStatsHandler(c.StatsUC),
		Activity: ws.NewHandler(c.Hub, logger),
		AuthMW:   authMW,
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
