package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/portfolio-showcase/portfolio-api/internal/logging"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/normalize"
)

const (
	loadKey            = "portfolio"
	defaultLoadTimeout = 30 * time.Second
)

// DocumentClient reads documents from the remote store.
type DocumentClient interface {
	FetchCollection(ctx context.Context, name string) ([]domain.RawRecord, error)
	// FetchOne returns domain.ErrNotFound when the document does not exist.
	FetchOne(ctx context.Context, collection, id string) (domain.RawRecord, error)
}

// Mirror persists a copy of the last successful load.
type Mirror interface {
	Save(ctx context.Context, snap domain.Snapshot) error
}

type LoaderOptions struct {
	ProjectsCollection     string
	CertificatesCollection string

	// LoadTimeout bounds one shared load cycle. Zero means 30s.
	LoadTimeout time.Duration
	Logger      *zap.Logger
	Now         func() time.Time
}

// Loader fetches and normalizes the projects and certificates collections.
// Overlapping Load calls share a single in-flight fetch.
type Loader struct {
	docs   DocumentClient
	mirror Mirror
	state  *State
	group  singleflight.Group

	projectsCollection     string
	certificatesCollection string
	loadTimeout            time.Duration
	logger                 *zap.Logger
	now                    func() time.Time
	metrics                Metrics
}

// NewLoader creates a Loader. mirror may be nil, which disables mirroring.
func NewLoader(docs DocumentClient, mirror Mirror, state *State, opts LoaderOptions) *Loader {
	if opts.ProjectsCollection == "" {
		opts.ProjectsCollection = "projects"
	}
	if opts.CertificatesCollection == "" {
		opts.CertificatesCollection = "certificates"
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = defaultLoadTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if state == nil {
		state = NewState()
	}
	return &Loader{
		docs:                   docs,
		mirror:                 mirror,
		state:                  state,
		projectsCollection:     opts.ProjectsCollection,
		certificatesCollection: opts.CertificatesCollection,
		loadTimeout:            opts.LoadTimeout,
		logger:                 opts.Logger,
		now:                    opts.Now,
	}
}

// State returns the container updated by every load.
func (l *Loader) State() *State {
	return l.state
}

// Metrics returns the loader counters.
func (l *Loader) Metrics() MetricsSnapshot {
	return l.metrics.Snapshot()
}

// Load runs one load cycle. A call made while another is in flight waits for
// and returns that cycle's result. The shared fetch is detached from every
// caller's cancellation and bounded by the load timeout instead; a caller
// whose ctx ends returns ctx.Err() and leaves the fetch running for the rest.
func (l *Loader) Load(ctx context.Context) (domain.Collections, error) {
	initiated := false
	ch := l.group.DoChan(loadKey, func() (interface{}, error) {
		initiated = true
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.loadTimeout)
		defer cancel()
		return l.load(loadCtx)
	})

	select {
	case res := <-ch:
		if res.Shared && !initiated {
			l.metrics.recordJoined()
		}
		if res.Err != nil {
			return domain.Collections{}, res.Err
		}
		return res.Val.(domain.Collections), nil
	case <-ctx.Done():
		return domain.Collections{}, ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context) (domain.Collections, error) {
	log := logging.For(ctx, l.logger)
	start := time.Now()
	l.state.StartLoad()

	var projectsRaw, certificatesRaw []domain.RawRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raws, err := l.docs.FetchCollection(gctx, l.projectsCollection)
		if err != nil {
			return &domain.FetchError{Collection: l.projectsCollection, Err: err}
		}
		projectsRaw = raws
		return nil
	})
	g.Go(func() error {
		raws, err := l.docs.FetchCollection(gctx, l.certificatesCollection)
		if err != nil {
			return &domain.FetchError{Collection: l.certificatesCollection, Err: err}
		}
		certificatesRaw = raws
		return nil
	})

	if err := g.Wait(); err != nil {
		l.metrics.recordLoad(time.Since(start), err)
		l.state.LoadFailed(err)
		log.Error("portfolio.load", err)
		return domain.Collections{}, err
	}

	collections := domain.Collections{
		Projects:     normalize.Projects(projectsRaw),
		Certificates: normalize.Certificates(certificatesRaw),
	}

	loadedAt := l.now()
	l.state.LoadSucceeded(collections, loadedAt)
	l.metrics.recordLoad(time.Since(start), nil)
	log.Info("portfolio.load", "collections loaded",
		zap.Int("projects", len(collections.Projects)),
		zap.Int("certificates", len(collections.Certificates)),
	)

	l.saveMirror(ctx, log, collections, loadedAt)
	return collections, nil
}

// saveMirror writes the snapshot; failures are logged and otherwise ignored.
func (l *Loader) saveMirror(ctx context.Context, log *logging.Logger, c domain.Collections, at time.Time) {
	if l.mirror == nil {
		return
	}
	snap := domain.Snapshot{
		ID:           uuid.New().String(),
		SavedAt:      at,
		Projects:     c.Projects,
		Certificates: c.Certificates,
	}
	if err := l.mirror.Save(ctx, snap); err != nil {
		l.metrics.recordMirrorError()
		log.Warn("portfolio.mirror", "snapshot mirror failed", zap.Error(err))
	}
}

// Project fetches and normalizes a single project for its detail page.
func (l *Loader) Project(ctx context.Context, id string) (domain.ProjectDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ProjectDetail{}, domain.ErrNotFound
	}

	raw, err := l.docs.FetchOne(ctx, l.projectsCollection, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ProjectDetail{}, domain.ErrNotFound
	}
	if err != nil {
		logging.For(ctx, l.logger).Error("portfolio.project", err)
		return domain.ProjectDetail{}, &domain.FetchError{Collection: l.projectsCollection, Err: err}
	}

	return normalize.ProjectDetail(raw), nil
}
