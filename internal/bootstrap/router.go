package bootstrap

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/portfolio-showcase/portfolio-api/internal/api/http"
	"github.com/portfolio-showcase/portfolio-api/internal/api/http/middleware"
	contacthttp "github.com/portfolio-showcase/portfolio-api/internal/contact/http"
	portfoliohttp "github.com/portfolio-showcase/portfolio-api/internal/portfolio/http"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/repository"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/stack"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Logger         *zap.Logger

	Loader      *service.Loader
	Snapshots   portfoliohttp.SnapshotReader
	Stack       []stack.Item
	FallbackURL string
	Relay       contacthttp.Submitter

	ContactRatePerMinute int
	ContactBurst         int

	FirestorePing httpapi.Pinger
	RedisPing     httpapi.Pinger
}

// RouterDepsFromApp fills RouterDeps from a wired App.
func RouterDepsFromApp(app *App, items []stack.Item) RouterDeps {
	dep := RouterDeps{
		ServiceName:          "portfolio-api",
		Version:              app.Config.App.Version,
		AllowedOrigins:       app.Config.Server.AllowedOrigins,
		Logger:               app.Logger,
		Loader:               app.Loader,
		Stack:                items,
		FallbackURL:          app.Config.Portfolio.FallbackURL,
		Relay:                app.Relay,
		ContactRatePerMinute: app.Config.Contact.RatePerMinute,
		ContactBurst:         app.Config.Contact.Burst,
		FirestorePing: collectionPinger{
			docs:       app.Documents,
			collection: app.Config.Portfolio.ProjectsCollection,
		},
	}
	// Leave the interfaces nil rather than wrapping a nil pointer.
	if app.Snapshots != nil {
		dep.Snapshots = app.Snapshots
		dep.RedisPing = app.Snapshots
	}
	return dep
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.FirestorePing, dep.RedisPing)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	portfolioHandler := portfoliohttp.New(dep.Loader, dep.Snapshots, dep.Stack, dep.FallbackURL)
	portfolioHandler.Register(api)

	limiter := middleware.NewRateLimiter(dep.ContactRatePerMinute, dep.ContactBurst)
	contactHandler := contacthttp.New(dep.Relay)
	contactHandler.Register(api, limiter.Middleware())

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

// collectionPinger probes Firestore by reading at most one document.
type collectionPinger struct {
	docs       *repository.FirestoreClient
	collection string
}

func (p collectionPinger) Ping(ctx context.Context) error {
	return p.docs.Ping(ctx, p.collection)
}
