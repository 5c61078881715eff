package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/portfolio-showcase/portfolio-api/config"
	contactmail "github.com/portfolio-showcase/portfolio-api/internal/contact/mail"
	contactsvc "github.com/portfolio-showcase/portfolio-api/internal/contact/service"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/repository"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
)

// App holds the long-lived clients and services shared by the API server
// and the worker CLI.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Firestore *firestore.Client
	Redis     *redis.Client
	Documents *repository.FirestoreClient
	Snapshots *repository.SnapshotRepository
	Loader    *service.Loader
	Relay     *contactsvc.Relay
}

// NewApp opens Firestore and, when configured, the Redis mirror, then builds
// the loader and contact relay on top of them.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	fs, err := InitializeFirestore(ctx, &cfg.Firebase)
	if err != nil {
		return nil, err
	}

	rdb, err := OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("snapshot mirror: %w", err)
	}

	app := &App{
		Config:    cfg,
		Logger:    logger,
		Firestore: fs,
		Redis:     rdb,
		Documents: repository.NewFirestoreClient(fs),
	}

	var mirror service.Mirror
	if rdb != nil {
		app.Snapshots = repository.NewSnapshotRepository(rdb)
		mirror = app.Snapshots
	} else {
		logger.Info("snapshot mirror disabled, REDIS_ADDR not set")
	}

	app.Loader = service.NewLoader(app.Documents, mirror, nil, service.LoaderOptions{
		ProjectsCollection:     cfg.Portfolio.ProjectsCollection,
		CertificatesCollection: cfg.Portfolio.CertificatesCollection,
		Logger:                 logger,
	})

	app.Relay = contactsvc.NewRelay(contactmail.NewResendMailer(cfg.Mail.APIKey), contactsvc.RelayOptions{
		From:   cfg.Mail.From,
		To:     cfg.Mail.To,
		Logger: logger,
	})

	return app, nil
}

// Close releases the Firestore and Redis connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("redis close", zap.Error(err))
		}
	}
	if a.Firestore != nil {
		if err := a.Firestore.Close(); err != nil {
			a.Logger.Warn("firestore close", zap.Error(err))
		}
	}
}
