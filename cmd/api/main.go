package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/portfolio-showcase/portfolio-api/config"
	"github.com/portfolio-showcase/portfolio-api/internal/bootstrap"
	"github.com/portfolio-showcase/portfolio-api/internal/logging"
	cronjob "github.com/portfolio-showcase/portfolio-api/internal/portfolio/cron"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/stack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("bootstrap failed", zap.Error(err))
	}
	defer app.Close()

	items, err := stack.Default()
	if err != nil {
		logger.Fatal("tech stack catalogue", zap.Error(err))
	}

	var refresher *cronjob.Refresher
	if cfg.Portfolio.RefreshSchedule != "" {
		refresher, err = cronjob.NewRefresher(app.Loader, cfg.Portfolio.RefreshSchedule, logger)
		if err != nil {
			logger.Fatal("refresh scheduler", zap.Error(err))
		}
		refresher.Start()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: bootstrap.BuildRouter(bootstrap.RouterDepsFromApp(app, items)),
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if refresher != nil {
		refresher.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
