package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-showcase/portfolio-api/internal/contact/domain"
)

// Submitter relays a contact form submission.
type Submitter interface {
	Submit(ctx context.Context, s domain.Submission) (domain.SendResult, error)
}

// Handler handles HTTP requests for the contact form
type Handler struct {
	relay Submitter
}

// New creates a new Handler
func New(relay Submitter) *Handler {
	return &Handler{relay: relay}
}

// SendEmail relays a contact form submission to the site owner
func (h *Handler) SendEmail(c *gin.Context) {
	var body domain.Submission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.relay.Submit(c.Request.Context(), body)
	if err != nil {
		var de *domain.DeliveryError
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required"})
		case errors.As(err, &de):
			c.JSON(http.StatusInternalServerError, gin.H{"error": de.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to send email",
				"details": unknownDetails(err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email sent successfully!",
		"data":    res,
	})
}

func unknownDetails(err error) string {
	var ue *domain.UnknownError
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err.Error()
	}
	if err != nil {
		return err.Error()
	}
	return "Unknown error"
}
