package http

import "github.com/gin-gonic/gin"

// Register registers the portfolio routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.GetPortfolio)
	rg.GET("/portfolio/state", h.GetState)
	rg.GET("/portfolio/snapshot", h.GetSnapshot)
	rg.GET("/portfolio/stats", h.GetStats)
	rg.GET("/projects/:id", h.GetProject)
	rg.GET("/stack", h.GetStack)
}
