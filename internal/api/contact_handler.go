package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/service"
	"github.com/runhub/directory-api/internal/validation"
)

// ContactHandler relays contact form messages to the site admin
type ContactHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// Send handles POST /v1/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := validation.ValidateContact(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": errs,
		})
		return
	}

	if err := h.services.Contact.Send(c.Request.Context(), &req); err != nil {
		h.log.Error().Err(err).Msg("Failed to relay contact message")
		// Unlike submission notifications, this message has no other
		// path to the admin, so delivery failure is the request failing.
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent",
	})
}
