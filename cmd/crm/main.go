package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chem-crm/internal/client"
	"github.com/MKhiriev/go-chem-crm/internal/config"
	"github.com/MKhiriev/go-chem-crm/internal/crm"
	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/identity"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/session"
	"github.com/MKhiriev/go-chem-crm/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-chem-crm")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	accounts, err := identity.NewHTTPAccountClient(cfg.Identity, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create account client")
	}

	store, err := docstore.New(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create document store")
	}

	sessions, err := session.NewManager(accounts, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session manager")
	}

	services := tui.Services{
		Sessions:     sessions,
		Tasks:        crm.NewTaskService(store, log),
		PriceUpdates: crm.NewPriceUpdateService(store, log),
		OceanFreight: crm.NewOceanFreightService(store, log),
		Staff:        crm.NewStaffService(store, accounts, log),
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(sessions, store, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
