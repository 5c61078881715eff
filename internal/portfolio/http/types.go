package http

import (
	"context"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/stack"
)

// SnapshotReader reads the mirrored snapshot.
type SnapshotReader interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
}

// Handler handles HTTP requests for the portfolio
type Handler struct {
	loader      *service.Loader
	snapshots   SnapshotReader
	stack       []stack.Item
	fallbackURL string
}

// New creates a new Handler. snapshots may be nil when the mirror is disabled.
func New(loader *service.Loader, snapshots SnapshotReader, items []stack.Item, fallbackURL string) *Handler {
	return &Handler{
		loader:      loader,
		snapshots:   snapshots,
		stack:       items,
		fallbackURL: fallbackURL,
	}
}
