package handler

import (
	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/handler/http"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, guard *auth.Guard, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, guard, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
