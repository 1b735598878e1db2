package api

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	clubHandler := NewClubHandler(services, cfg, log)
	adminHandler := NewAdminHandler(services, cfg, log)
	newsletterHandler := NewNewsletterHandler(services, log)
	contactHandler := NewContactHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", clubHandler.ListClubs)
			clubs.POST("", clubHandler.SubmitClub)
			clubs.GET("/:slug", clubHandler.GetClub)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/clubs/:token", adminHandler.ApprovalAction)
		}

		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("", newsletterHandler.Signup)
			newsletter.GET("/confirm/:token", newsletterHandler.Confirm)
		}

		v1.POST("/contact", contactHandler.Send)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "directory-api",
	})
}

// metricsHandler returns directory row counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		approved, _ := services.Club.CountByStatus(ctx, models.ClubStatusApproved)
		pending, _ := services.Club.CountByStatus(ctx, models.ClubStatusPending)
		rejected, _ := services.Club.CountByStatus(ctx, models.ClubStatusRejected)
		signups, _ := services.Newsletter.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"clubs": gin.H{
				"approved": approved,
				"pending":  pending,
				"rejected": rejected,
			},
			"newsletter_signups": signups,
			"timestamp":          time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics and reports them to Sentry when
// configured
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				sentry.CurrentHub().Recover(err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
