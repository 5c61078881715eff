package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

const (
	snapshotKeyPrefix       = "portfolio:snapshot:"
	projectsSnapshotKey     = snapshotKeyPrefix + "projects"     // JSON array of normalized projects
	certificatesSnapshotKey = snapshotKeyPrefix + "certificates" // JSON array of normalized certificates
	metaSnapshotKey         = snapshotKeyPrefix + "meta"         // snapshot id and save time
)

type snapshotMeta struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// SnapshotRepository mirrors the last successful load into Redis
type SnapshotRepository struct {
	client *redis.Client
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

// Save overwrites the mirrored snapshot
func (r *SnapshotRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	projects := snap.Projects
	if projects == nil {
		projects = []domain.Project{}
	}
	certificates := snap.Certificates
	if certificates == nil {
		certificates = []domain.Certificate{}
	}

	projectsData, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	certificatesData, err := json.Marshal(certificates)
	if err != nil {
		return fmt.Errorf("failed to marshal certificates: %w", err)
	}
	metaData, err := json.Marshal(snapshotMeta{ID: snap.ID, SavedAt: snap.SavedAt})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot meta: %w", err)
	}

	// All three keys change together
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, projectsSnapshotKey, projectsData, 0)
	pipe.Set(ctx, certificatesSnapshotKey, certificatesData, 0)
	pipe.Set(ctx, metaSnapshotKey, metaData, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Get returns the mirrored snapshot
func (r *SnapshotRepository) Get(ctx context.Context) (*domain.Snapshot, error) {
	values, err := r.client.MGet(ctx, metaSnapshotKey, projectsSnapshotKey, certificatesSnapshotKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	raw := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, domain.ErrSnapshotNotFound
		}
		raw[i] = s
	}

	var meta snapshotMeta
	if err := json.Unmarshal([]byte(raw[0]), &meta); err != nil {
		return nil, fmt.Errorf("%w: snapshot meta: %v", domain.ErrDecode, err)
	}

	snap := &domain.Snapshot{ID: meta.ID, SavedAt: meta.SavedAt}
	if err := json.Unmarshal([]byte(raw[1]), &snap.Projects); err != nil {
		return nil, fmt.Errorf("%w: projects snapshot: %v", domain.ErrDecode, err)
	}
	if err := json.Unmarshal([]byte(raw[2]), &snap.Certificates); err != nil {
		return nil, fmt.Errorf("%w: certificates snapshot: %v", domain.ErrDecode, err)
	}

	return snap, nil
}

// Ping checks the Redis connection
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
