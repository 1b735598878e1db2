package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/repository"
)

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	repo repository.NewsletterRepository
	log  zerolog.Logger
	now  func() time.Time
}

// newNewsletterService creates a new NewsletterService
func newNewsletterService(repo repository.NewsletterRepository, log zerolog.Logger) *newsletterService {
	return &newsletterService{
		repo: repo,
		log:  log.With().Str("service", "newsletter").Logger(),
		now:  time.Now,
	}
}

// Signup subscribes an email address. Signups are verified
// immediately; the confirmation token remains for links issued under
// the older double-opt-in flow. A duplicate email is a friendly
// already-subscribed outcome, not an error.
func (s *newsletterService) Signup(ctx context.Context, req *models.NewsletterRequest, ip, userAgent string) (*SignupResult, error) {
	source := req.Source
	if source == "" {
		source = "unknown"
	}

	signup := &models.NewsletterSignup{
		ID:                uuid.NewString(),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:         req.FirstName,
		Source:            source,
		IPAddress:         ip,
		UserAgent:         userAgent,
		VerificationToken: uuid.NewString(),
		IsVerified:        true,
		CreatedAt:         s.now(),
	}

	if err := s.repo.Insert(ctx, signup); err != nil {
		if database.IsUniqueViolation(err, "") {
			s.log.Debug().Str("email", signup.Email).Msg("Duplicate newsletter signup")
			return &SignupResult{AlreadyExists: true}, nil
		}
		return nil, fmt.Errorf("failed to insert newsletter signup: %w", err)
	}

	s.log.Info().Str("email", signup.Email).Str("source", source).Msg("Newsletter signup")
	return &SignupResult{Signup: signup}, nil
}

// Confirm marks a signup as verified via its emailed token. A token
// that matches no unverified signup reports not found.
func (s *newsletterService) Confirm(ctx context.Context, token string) (*models.NewsletterSignup, error) {
	signup, err := s.repo.GetByVerificationToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}
	if signup == nil {
		return nil, ErrNotFound
	}

	at := s.now()
	found, err := s.repo.MarkVerified(ctx, signup.ID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to mark signup verified: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}

	signup.IsVerified = true
	signup.VerifiedAt = &at
	return signup, nil
}

// Count returns the total number of signups
func (s *newsletterService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
