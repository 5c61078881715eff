package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = New("development", "loud")
	assert.Error(t, err)
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestFor_TagsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := WithRequestID(context.Background(), "rid-42")
	For(ctx, base).Error("portfolio.load", errors.New("boom"))
	For(context.Background(), base).Info("portfolio.load", "done")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "rid-42", first["request_id"])
	assert.Equal(t, "portfolio.load", first["operation"])
	assert.Equal(t, "boom", first["error"])

	second := entries[1].ContextMap()
	assert.Equal(t, "unknown", second["request_id"])
	assert.Equal(t, "done", entries[1].Message)
}
