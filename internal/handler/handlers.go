package handler

import (
	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/handler/http"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
)

// Handlers groups the transport handlers enabled by the configuration.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the local API handler when an HTTP address is
// configured.
func NewHandlers(services *service.ClientServices, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
