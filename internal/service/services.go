package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/mailer"
	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/repository"
)

// ErrNotFound is returned when a lookup matches no record. Approval
// token reuse surfaces as ErrNotFound by design: once a club leaves
// pending, its token finds nothing.
var ErrNotFound = errors.New("not found")

// ErrInvalidAction is returned for approval actions other than
// approve or reject.
var ErrInvalidAction = errors.New("invalid action")

// ClubService defines the club directory operations
type ClubService interface {
	Submit(ctx context.Context, sub *models.ClubSubmission) (*models.ClubRecord, error)
	ListApproved(ctx context.Context) ([]models.CanonicalClub, error)
	GetBySlug(ctx context.Context, slug string) (*models.CanonicalClub, error)
	ProcessApproval(ctx context.Context, token, action, reason string) (*ApprovalResult, error)
	CountByStatus(ctx context.Context, status models.ClubStatus) (int, error)
}

// NewsletterService defines the newsletter signup operations
type NewsletterService interface {
	Signup(ctx context.Context, req *models.NewsletterRequest, ip, userAgent string) (*SignupResult, error)
	Confirm(ctx context.Context, token string) (*models.NewsletterSignup, error)
	Count(ctx context.Context) (int, error)
}

// ContactService relays contact form messages
type ContactService interface {
	Send(ctx context.Context, req *models.ContactRequest) error
}

// ApprovalResult describes the outcome of an approval action
type ApprovalResult struct {
	Club      *models.ClubRecord
	Action    string
	EmailSent bool
}

// SignupResult describes the outcome of a newsletter signup
type SignupResult struct {
	Signup        *models.NewsletterSignup
	AlreadyExists bool
}

// Services holds all service interfaces
type Services struct {
	Club       ClubService
	Newsletter NewsletterService
	Contact    ContactService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Club:       newClubService(repos.Club, mail, cfg, log),
		Newsletter: newNewsletterService(repos.Newsletter, log),
		Contact:    newContactService(mail, log),
	}
}
