package handler

import (
	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/handler/http"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
