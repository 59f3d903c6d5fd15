package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "library-backend/internal/api/http"
	"library-backend/internal/config"
	"library-backend/internal/logger"
	"library-backend/internal/repository/postgres"
	"library-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting library backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Loan policy", "period_days", cfg.Loan.PeriodDays, "daily_fine_rate", cfg.Loan.DailyFineRate)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	ctx := context.Background()
	if cfg.Database.Bootstrap {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			logger.Error("Failed to bootstrap schema", "error", err)
			log.Fatalf("Failed to bootstrap schema: %v", err)
		}
	}
	if cfg.Database.Seed {
		if err := postgres.SeedReferenceData(ctx, db); err != nil {
			logger.Error("Failed to seed reference data", "error", err)
			log.Fatalf("Failed to seed reference data: %v", err)
		}
	}

	store := postgres.NewStore(db)

	catalogSvc := service.NewCatalogService(store.Books)
	fineSvc := service.NewFineService(store.Fines)
	loanSvc := service.NewLoanService(store, service.LoanPolicy{
		PeriodDays:    cfg.Loan.PeriodDays,
		DailyFineRate: cfg.Loan.DailyFineRate,
	})

	router := httpapi.NewRouter(
		httpapi.NewBookHandler(catalogSvc),
		httpapi.NewLoanHandler(loanSvc),
		httpapi.NewFineHandler(fineSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
