package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/service"
	"github.com/runhub/directory-api/internal/validation"
)

// NewsletterHandler handles newsletter signup requests
type NewsletterHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services: services,
		log:      log.With().Str("handler", "newsletter").Logger(),
	}
}

// Signup handles POST /v1/newsletter
func (h *NewsletterHandler) Signup(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := validation.ValidateNewsletter(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": errs,
		})
		return
	}

	result, err := h.services.Newsletter.Signup(c.Request.Context(), &req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		h.log.Error().Err(err).Msg("Newsletter signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
		return
	}

	// Duplicates get the same friendly response as first-time signups.
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Thanks for signing up!",
		"already_exists": result.AlreadyExists,
	})
}

// Confirm handles GET /v1/newsletter/confirm/:token
func (h *NewsletterHandler) Confirm(c *gin.Context) {
	signup, err := h.services.Newsletter.Confirm(c.Request.Context(), c.Param("token"))
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			h.log.Error().Err(err).Msg("Newsletter confirmation failed")
		}
		h.renderError(c, "This confirmation link is invalid or has already been used.")
		return
	}

	var buf bytes.Buffer
	if err := newsletterConfirmTmpl.Execute(&buf, confirmPageData{Email: signup.Email}); err != nil {
		h.log.Error().Err(err).Msg("Failed to render confirmation page")
		h.renderError(c, "Failed to render confirmation")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *NewsletterHandler) renderError(c *gin.Context, message string) {
	var buf bytes.Buffer
	if err := errorPageTmpl.Execute(&buf, errorPageData{Message: message}); err != nil {
		c.String(http.StatusInternalServerError, message)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
