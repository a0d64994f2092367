package main

import (
	"context"
	"fmt"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/handler"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/server"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("belavista-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	signer := auth.NewSigner(cfg.App.SessionSecret)
	guard := auth.NewGuard(signer, storages.UserRepository)

	services := service.NewServices(storages, signer, cfg, log)

	if err := services.AuthService.BootstrapAdmin(log.WithContext(ctx)); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	handlers, err := handler.NewHandlers(services, guard, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
