package http

import (
	"sync"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/utils"
)

// Handler serves the local JSON API used by the new-tab page.
type Handler struct {
	services *service.ClientServices
	traceIDs *utils.UUIDGenerator
	cfg      config.ClientServer

	// intakeMu pairs a load of the intake service with the reads that
	// follow it, so concurrent requests do not observe each other's range.
	intakeMu sync.Mutex

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, cfg config.ClientServer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   logger,
	}
}
