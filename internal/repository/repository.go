package repository

import (
	"context"
	"time"

	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/models"
)

// ClubRepository defines the interface for club data operations.
// Lookups that find nothing return (nil, nil), not an error.
type ClubRepository interface {
	Insert(ctx context.Context, club *models.ClubRecord) error
	ListApproved(ctx context.Context) ([]*models.ClubRecord, error)
	GetBySlug(ctx context.Context, slug string) (*models.ClubRecord, error)
	GetByApprovalToken(ctx context.Context, token string) (*models.ClubRecord, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status models.ClubStatus, approvedBy, rejectionReason string, at time.Time) (bool, error)
	CountByStatus(ctx context.Context, status models.ClubStatus) (int, error)
}

// NewsletterRepository defines the interface for newsletter signups.
type NewsletterRepository interface {
	Insert(ctx context.Context, signup *models.NewsletterSignup) error
	GetByVerificationToken(ctx context.Context, token string) (*models.NewsletterSignup, error)
	MarkVerified(ctx context.Context, id string, at time.Time) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Club       ClubRepository
	Newsletter NewsletterRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Club:       NewClubRepo(db),
		Newsletter: NewNewsletterRepo(db),
	}
}
