package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "no such document")))
	assert.True(t, isNotFound(fmt.Errorf("wrapped: %w", status.Error(codes.NotFound, "gone"))))
	assert.False(t, isNotFound(status.Error(codes.PermissionDenied, "nope")))
	assert.False(t, isNotFound(errors.New("plain")))
	assert.False(t, isNotFound(nil))
}

func TestFetchOne_InvalidID(t *testing.T) {
	c := NewFirestoreClient(nil)

	for _, id := range []string{"", "projects/other", "a/b/c"} {
		_, err := c.FetchOne(context.Background(), "projects", id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "id %q", id)
	}
}
