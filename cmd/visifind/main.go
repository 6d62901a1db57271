package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Theworld7/VisiFind/internal/adapter"
	"github.com/Theworld7/VisiFind/internal/client"
	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/handler"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/server"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/tui"
	"github.com/Theworld7/VisiFind/internal/workers"
	"github.com/Theworld7/VisiFind/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	if cfg.App.Headless || cfg.Backup.OneShot() {
		printBuildInfo()
	}

	log := logger.NewClientLogger("visifind", cfg.Storage.DataDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	wallpaper, err := adapter.NewHTTPWallpaperAdapter(cfg.Adapter, log)
	if err != nil {
		// The launcher still works without wallpapers.
		log.Err(err).Msg("create wallpaper adapter")
	}

	services := service.NewClientServices(storages, wallpaper, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services.AppInfoService, err = service.NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	srv, err := newServer(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local api server")
	}

	var ui client.Launcher
	if !cfg.App.Headless {
		ui, err = tui.New(services, services.AppInfoService.GetBuildInfo(context.Background()), log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, ui, srv, workers.NewWorkers(services, cfg.Workers, cfg.Storage, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		_ = storages.Close()
		os.Exit(1)
	}
}

// newServer returns a nil server when the local API is disabled.
func newServer(services *service.ClientServices, cfg config.ClientServer, log *logger.Logger) (server.Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, nil
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	return server.NewServer(handlers, cfg, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
