package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/service"
)

// AdminHandler handles the emailed one-click approval links. These
// render HTML rather than JSON because the admin opens them straight
// from their mail client.
type AdminHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// ApprovalAction handles GET /v1/admin/clubs/:token
func (h *AdminHandler) ApprovalAction(c *gin.Context) {
	token := c.Param("token")
	action := c.Query("action")
	reason := c.Query("reason")

	result, err := h.services.Club.ProcessApproval(c.Request.Context(), token, action, reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			h.renderError(c, "Invalid action")
		case errors.Is(err, service.ErrNotFound):
			// Covers unknown tokens and already-consumed ones alike.
			h.renderError(c, "Club not found or already processed")
		default:
			h.log.Error().Err(err).Msg("Failed to process approval")
			h.renderError(c, "Failed to process approval")
		}
		return
	}

	var buf bytes.Buffer
	err = approvalPageTmpl.Execute(&buf, approvalPageData{
		Club:      result.Club,
		Approved:  result.Action == "approve",
		EmailSent: result.EmailSent,
		ClubURL:   h.cfg.App.BaseURL + "/clubs/" + result.Club.Slug,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to render approval page")
		h.renderError(c, "Failed to render confirmation")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *AdminHandler) renderError(c *gin.Context, message string) {
	var buf bytes.Buffer
	if err := errorPageTmpl.Execute(&buf, errorPageData{Message: message}); err != nil {
		c.String(http.StatusInternalServerError, message)
		return
	}
	// The mail client follows a plain link, so even failures render
	// as a readable page with a 200.
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
