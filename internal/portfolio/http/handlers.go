package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/service"
)

// GetPortfolio runs a load cycle and returns both lists, windowed for the
// caller's viewport.
func (h *Handler) GetPortfolio(c *gin.Context) {
	compact := compactFromQuery(c)
	projectsExpanded := boolQuery(c, "projects_expanded")
	certificatesExpanded := boolQuery(c, "certificates_expanded")

	collections, err := h.loader.Load(c.Request.Context())
	if err != nil {
		body := gin.H{"error": "Failed to load data"}
		if h.fallbackURL != "" {
			body["fallback_url"] = h.fallbackURL
		}
		c.JSON(http.StatusBadGateway, body)
		return
	}

	c.JSON(http.StatusOK, service.Render(collections, compact, projectsExpanded, certificatesExpanded))
}

// GetState returns the last load cycle as held in process state
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.loader.State().View(compactFromQuery(c)))
}

// GetSnapshot returns the mirrored copy of the last successful load
func (h *Handler) GetSnapshot(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot mirror disabled"})
		return
	}

	snap, err := h.snapshots.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}

// GetStats returns loader counters
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.loader.Metrics())
}

// GetProject returns the detail record for one project
func (h *Handler) GetProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID is required"})
		return
	}

	project, err := h.loader.Project(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// GetStack returns the technology catalogue
func (h *Handler) GetStack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.stack})
}

// compactFromQuery decides the window threshold. An explicit compact flag
// wins over the viewport width.
func compactFromQuery(c *gin.Context) bool {
	if v, ok := c.GetQuery("compact"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	width, err := strconv.Atoi(c.Query("viewport"))
	if err != nil {
		return false
	}
	return service.IsCompact(width)
}

func boolQuery(c *gin.Context, key string) bool {
	b, err := strconv.ParseBool(c.Query(key))
	return err == nil && b
}
