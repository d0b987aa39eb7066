package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/api"
	"github.com/fundflow/crowdfund-backend/internal/auth"
	"github.com/fundflow/crowdfund-backend/internal/config"
	"github.com/fundflow/crowdfund-backend/internal/db"
	"github.com/fundflow/crowdfund-backend/internal/logger"
	"github.com/fundflow/crowdfund-backend/internal/metrics"
	"github.com/fundflow/crowdfund-backend/internal/repository/postgres"
	"github.com/fundflow/crowdfund-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	campaignSvc := services.NewCampaignService(repos.Campaigns)

	var accountSvc *services.AccountService
	if cfg.AuthEnabled {
		tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, time.Hour)
		accountSvc = services.NewAccountService(repos.Users, tm)
	}

	metrics.Init()
	r := api.NewRouter(cfg, campaignSvc, accountSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "auth_enabled", cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
