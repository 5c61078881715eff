package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

// FirestoreClient reads portfolio documents from Cloud Firestore.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient wraps an initialized Firestore client
func NewFirestoreClient(client *firestore.Client) *FirestoreClient {
	return &FirestoreClient{client: client}
}

// FetchCollection returns every document in the collection, in store order
func (c *FirestoreClient) FetchCollection(ctx context.Context, name string) ([]domain.RawRecord, error) {
	snaps, err := c.client.Collection(name).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", name, err)
	}

	records := make([]domain.RawRecord, 0, len(snaps))
	for _, snap := range snaps {
		records = append(records, domain.RawRecord{
			ID:     snap.Ref.ID,
			Fields: snap.Data(),
		})
	}
	return records, nil
}

// FetchOne returns a single document or domain.ErrNotFound
func (c *FirestoreClient) FetchOne(ctx context.Context, collection, id string) (domain.RawRecord, error) {
	// a slash would address a sub-collection rather than a document
	if id == "" || strings.Contains(id, "/") {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	snap, err := c.client.Collection(collection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.RawRecord{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	return domain.RawRecord{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

// Ping checks that the store answers. It lists at most one document.
func (c *FirestoreClient) Ping(ctx context.Context, collection string) error {
	iter := c.client.Collection(collection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}
