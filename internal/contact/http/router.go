package http

import "github.com/gin-gonic/gin"

// Register registers the contact routes. Extra middleware (rate limiting)
// applies to the send endpoint only.
func (h *Handler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.POST("/send-email", append(mw, h.SendEmail)...)
}
