package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/apexmotors/dealerdesk-backend/api/routes"
	"github.com/apexmotors/dealerdesk-backend/internal/directory"
	"github.com/apexmotors/dealerdesk-backend/internal/financing"
	"github.com/apexmotors/dealerdesk-backend/internal/inventory"
	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	"github.com/apexmotors/dealerdesk-backend/internal/sales"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	"github.com/apexmotors/dealerdesk-backend/pkg/config"
	"github.com/apexmotors/dealerdesk-backend/pkg/db"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
	"github.com/apexmotors/dealerdesk-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	reviewsSvc, err := reviews.NewService(reviews.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}

	servicingSvc, err := servicing.NewService(servicing.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create servicing service", err)
		os.Exit(1)
	}

	inventorySvc, err := inventory.NewService(inventory.NewRepository(dbClient.DB()), reviewsSvc, servicingSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	salesSvc, err := sales.NewService(sales.ServiceParams{
		Repo:            sales.NewRepository(dbClient.DB()),
		Tx:              dbClient,
		MarkVehicleSold: cfg.Sales.MarkVehicleSold,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	financingSvc, err := financing.NewService(financing.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create financing service", err)
		os.Exit(1)
	}

	directorySvc, err := directory.NewService(directory.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create directory service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, registry, routes.Services{
			Inventory: inventorySvc,
			Reviews:   reviewsSvc,
			Sales:     salesSvc,
			Financing: financingSvc,
			Servicing: servicingSvc,
			Directory: directorySvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
