// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/airline-guard/internal/adapter"
	"github.com/MKhiriev/airline-guard/internal/client"
	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("airline-guard-admin")

	var overrides config.ClientConfig
	var showVersion bool
	flag.StringVar(&overrides.Adapter.HTTPAddress, "a", "", "Server address, e.g. http://localhost:8080")
	flag.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&overrides.Token, "t", "", "Bearer access token")
	flag.BoolVar(&showVersion, "version", false, "Print build information and exit")
	flag.Parse()

	if showVersion {
		printBuildInfo()
		return
	}

	args := flag.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	cfg, err := config.GetClientConfig(overrides)
	if err != nil && !(errors.Is(err, config.ErrMissingClientToken) && !client.NeedsToken(command)) {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Token)

	app, err := client.NewApp(serverAdapter, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
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
