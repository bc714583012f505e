// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/handler"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/server"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/workers"
	"github.com/MKhiriev/airline-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("airline-guard")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// warnings and errors are also kept in the application_logs table
	hook := logger.NewPersistHook(storages.ApplicationLogRepository, zerolog.WarnLevel, 0)
	defer hook.Close()
	log = log.WithHook(hook)

	cipher, err := crypto.NewValueCipher(ctx, crypto.NewPassphraseProvider(cfg.App.ConfigEncryptionKey))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating configuration cipher")
	}

	bus, err := notify.NewBus(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting notification bus")
	}
	defer bus.Close()

	m := metrics.New()

	services, err := service.NewServices(service.Dependencies{
		Storages:  storages,
		Cipher:    cipher,
		Hasher:    crypto.NewPasswordHasher(crypto.DefaultArgon2Params()),
		Publisher: bus,
		Metrics:   m,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	background := workers.NewBackgroundWorkers(services, bus, cfg.Workers, m, log)
	background.Run(ctx)

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	background.Wait()
	log.Info().Msg("airline-guard stopped")
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
