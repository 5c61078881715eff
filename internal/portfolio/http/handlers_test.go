package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/repository"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/stack"
)

type memoryDocs struct {
	collections map[string][]domain.RawRecord
	err         error
}

func (m *memoryDocs) FetchCollection(ctx context.Context, name string) ([]domain.RawRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.collections[name], nil
}

func (m *memoryDocs) FetchOne(ctx context.Context, collection, id string) (domain.RawRecord, error) {
	if m.err != nil {
		return domain.RawRecord{}, m.err
	}
	for _, raw := range m.collections[collection] {
		if raw.ID == id {
			return raw, nil
		}
	}
	return domain.RawRecord{}, domain.ErrNotFound
}

func sevenProjects() []domain.RawRecord {
	out := make([]domain.RawRecord, 7)
	for i := range out {
		out[i] = domain.RawRecord{
			ID:     fmt.Sprintf("project-%d", i+1),
			Fields: map[string]interface{}{"Title": fmt.Sprintf("Project %d", i+1)},
		}
	}
	out[0].Fields["TechStack"] = []interface{}{"React"}
	out[0].Fields["TeckStack"] = []interface{}{" Firebase "}
	out[0].Fields["Responsibilities "] = []interface{}{"Everything"}
	return out
}

type testEnv struct {
	router *gin.Engine
	docs   *memoryDocs
	repo   *repository.SnapshotRepository
}

func setupEnv(t *testing.T, withMirror bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	docs := &memoryDocs{collections: map[string][]domain.RawRecord{
		"projects":     sevenProjects(),
		"certificates": {{ID: "cert-1", Fields: map[string]interface{}{"Title": "CKA"}}},
	}}

	env := &testEnv{docs: docs}
	var mirror service.Mirror
	var reader SnapshotReader
	if withMirror {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() {
			client.Close()
			mr.Close()
		})
		env.repo = repository.NewSnapshotRepository(client)
		mirror = env.repo
		reader = env.repo
	}

	items, err := stack.Default()
	require.NoError(t, err)

	loader := service.NewLoader(docs, mirror, nil, service.LoaderOptions{})
	env.router = gin.New()
	New(loader, reader, items, "https://fallback.example.dev/").Register(env.router.Group("/api"))
	return env
}

func get(t *testing.T, router http.Handler, path string, out interface{}) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr.Code
}

func TestGetPortfolio_Windowing(t *testing.T) {
	env := setupEnv(t, false)

	var view service.View
	code := get(t, env.router, "/api/portfolio?viewport=1280", &view)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, view.Compact)
	assert.Len(t, view.Projects.Items, 6)
	assert.Equal(t, 7, view.Projects.Total)
	assert.True(t, view.Projects.ShowToggle)
	assert.False(t, view.Certificates.ShowToggle)

	code = get(t, env.router, "/api/portfolio?viewport=1280&projects_expanded=true", &view)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, view.Projects.Items, 7)
	assert.True(t, view.Projects.Expanded)

	code = get(t, env.router, "/api/portfolio?viewport=1280&projects_expanded=false", &view)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, view.Projects.Items, 6)
}

func TestGetPortfolio_Compact(t *testing.T) {
	env := setupEnv(t, false)

	var view service.View
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio?viewport=375", &view))
	assert.True(t, view.Compact)
	assert.Len(t, view.Projects.Items, 4)

	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio?viewport=375&compact=false", &view))
	assert.Len(t, view.Projects.Items, 6)

	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio?compact=true", &view))
	assert.Equal(t, 4, view.Projects.Threshold)
}

func TestGetPortfolio_FetchFailure(t *testing.T) {
	env := setupEnv(t, false)
	env.docs.err = errors.New("firestore unavailable")

	var body map[string]string
	code := get(t, env.router, "/api/portfolio", &body)

	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "Failed to load data", body["error"])
	assert.Equal(t, "https://fallback.example.dev/", body["fallback_url"])

	var view service.View
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio/state", &view))
	assert.Contains(t, view.Error, "firestore unavailable")
	assert.False(t, view.Loading)
}

func TestGetSnapshot(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		env := setupEnv(t, false)
		assert.Equal(t, http.StatusNotFound, get(t, env.router, "/api/portfolio/snapshot", nil))
	})

	t.Run("missing then mirrored", func(t *testing.T) {
		env := setupEnv(t, true)
		assert.Equal(t, http.StatusNotFound, get(t, env.router, "/api/portfolio/snapshot", nil))

		require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio", nil))

		var body struct {
			Snapshot domain.Snapshot `json:"snapshot"`
		}
		require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio/snapshot", &body))
		assert.Len(t, body.Snapshot.Projects, 7)
		assert.Len(t, body.Snapshot.Certificates, 1)
		assert.WithinDuration(t, time.Now(), body.Snapshot.SavedAt, time.Minute)
	})
}

func TestGetProject(t *testing.T) {
	env := setupEnv(t, false)

	var body struct {
		Project domain.ProjectDetail `json:"project"`
	}
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/projects/project-1", &body))
	assert.Equal(t, "Project 1", body.Project.Title)
	assert.Equal(t, []string{"React", "Firebase"}, body.Project.TechStack)
	assert.Equal(t, []string{"Everything"}, body.Project.Responsibilities)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, get(t, env.router, "/api/projects/nope", &errBody))
	assert.Equal(t, "project not found", errBody["error"])

	env.docs.err = errors.New("timeout")
	assert.Equal(t, http.StatusBadGateway, get(t, env.router, "/api/projects/project-1", nil))
}

func TestGetStatsAndStack(t *testing.T) {
	env := setupEnv(t, false)
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio", nil))

	var stats service.MetricsSnapshot
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/portfolio/stats", &stats))
	assert.Equal(t, int64(1), stats.Loads)

	var body struct {
		Items []stack.Item `json:"items"`
	}
	require.Equal(t, http.StatusOK, get(t, env.router, "/api/stack", &body))
	assert.Len(t, body.Items, 13)
}
