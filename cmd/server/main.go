package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ccm-project/internal/adapter"
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/handler"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/server"
	"github.com/MKhiriev/ccm-project/internal/service"
	"github.com/MKhiriev/ccm-project/internal/store"
	"github.com/MKhiriev/ccm-project/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("ccm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	control, err := adapter.NewControlChannel(cfg.Control, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating control channel")
	}

	services, err := service.NewServices(storages, control, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
