package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/handler"
	"github.com/Theworld7/VisiFind/internal/logger"
)

type server struct {
	httpServer *httpServer
	running    sync.WaitGroup
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) Start() {
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	s.running.Go(s.httpServer.RunServer)
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.Start()

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown stops the HTTP server and waits for ListenAndServe to return.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.running.Wait()
}
