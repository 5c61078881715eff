package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

// Loader runs one load cycle.
type Loader interface {
	Load(ctx context.Context) (domain.Collections, error)
}

// Refresher reloads the portfolio on a cron schedule so the process state
// and the mirror stay warm between visitors.
type Refresher struct {
	loader  Loader
	logger  *zap.Logger
	timeout time.Duration
	cron    *cron.Cron
}

// NewRefresher parses schedule (six fields, seconds first) and registers the
// reload job. Call Start to begin running it.
func NewRefresher(loader Loader, schedule string, logger *zap.Logger) (*Refresher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Refresher{
		loader:  loader,
		logger:  logger,
		timeout: 30 * time.Second,
		cron:    cron.New(cron.WithSeconds()),
	}

	if _, err := r.cron.AddFunc(schedule, r.Run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	return r, nil
}

// Run performs a single reload.
func (r *Refresher) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	c, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Warn("scheduled refresh failed", zap.Error(err))
		return
	}

	r.logger.Info("scheduled refresh completed",
		zap.Int("projects", len(c.Projects)),
		zap.Int("certificates", len(c.Certificates)),
		zap.Duration("took", time.Since(start)),
	)
}

func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info("refresh scheduler started")
}

// Stop halts the scheduler and waits for a running job to finish or ctx to
// expire.
func (r *Refresher) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		r.logger.Warn("refresh scheduler stop timed out")
	}
}
