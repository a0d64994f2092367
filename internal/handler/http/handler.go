package http

import (
	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/service"
)

type Handler struct {
	services *service.Services
	guard    *auth.Guard

	app   config.App
	files config.Files

	logger *logger.Logger
}

func NewHandler(services *service.Services, guard *auth.Guard, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		guard:    guard,
		app:      cfg.App,
		files:    cfg.Storage.Files,
		logger:   logger,
	}
}
