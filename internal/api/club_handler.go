package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/search"
	"github.com/runhub/directory-api/internal/service"
	"github.com/runhub/directory-api/internal/validation"
)

// ClubHandler handles the public club endpoints
type ClubHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewClubHandler creates a new ClubHandler
func NewClubHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ClubHandler {
	return &ClubHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "club").Logger(),
	}
}

// ListClubs handles GET /v1/clubs.
// The approved snapshot is filtered in-process and paginated; every
// request computes its page from scratch, so a stale page number from
// a previous filter state can never strand the client.
func (h *ClubHandler) ListClubs(c *gin.Context) {
	ctx := c.Request.Context()

	clubs, err := h.services.Club.ListApproved(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list clubs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clubs"})
		return
	}

	query := queryFromRequest(c)
	filtered := search.Filter(clubs, query)

	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", h.cfg.App.PageSize)
	result := search.Paginate(filtered, page, perPage)

	c.JSON(http.StatusOK, result)
}

// GetClub handles GET /v1/clubs/:slug
func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.services.Club.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get club")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load club"})
		return
	}

	c.JSON(http.StatusOK, club)
}

// SubmitClub handles POST /v1/clubs
func (h *ClubHandler) SubmitClub(c *gin.Context) {
	var sub models.ClubSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := validation.ValidateSubmission(&sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": errs,
		})
		return
	}

	club, err := h.services.Club.Submit(c.Request.Context(), &sub)
	if err != nil {
		h.log.Error().Err(err).Str("club_name", sub.ClubName).Msg("Failed to submit club")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit club"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Club submitted successfully and is pending approval",
		"club_id": club.ID,
		"slug":    club.Slug,
	})
}

// queryFromRequest maps listing query parameters onto a search query.
// Bounds apply only when all four edges parse; junk values never
// error, they just match nothing.
func queryFromRequest(c *gin.Context) search.Query {
	q := search.Query{
		Search:           c.Query("search"),
		States:           c.QueryArray("state"),
		MeetingDays:      c.QueryArray("day"),
		ClubTypes:        c.QueryArray("club_type"),
		Terrain:          c.QueryArray("terrain"),
		Extracurriculars: c.QueryArray("extracurricular"),
		Cost:             c.QueryArray("cost"),
	}

	north, okN := floatQuery(c, "north")
	south, okS := floatQuery(c, "south")
	east, okE := floatQuery(c, "east")
	west, okW := floatQuery(c, "west")
	if okN && okS && okE && okW {
		q.Bounds = &search.Bounds{North: north, South: south, East: east, West: west}
	}

	return q
}

func intQuery(c *gin.Context, name string, defaultValue int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultValue
}

func floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
