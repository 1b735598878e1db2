package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/models"
)

// newsletterRepo is the concrete implementation of NewsletterRepository
type newsletterRepo struct {
	db *database.DB
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(db *database.DB) NewsletterRepository {
	return &newsletterRepo{db: db}
}

// Insert persists a new signup. A duplicate email surfaces as a
// unique violation for the service to translate.
func (r *newsletterRepo) Insert(ctx context.Context, signup *models.NewsletterSignup) error {
	query := `
		INSERT INTO newsletter_signups (
			id, email, first_name, source, ip_address, user_agent,
			verification_token, is_verified, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		signup.ID, signup.Email, signup.FirstName, signup.Source,
		signup.IPAddress, signup.UserAgent,
		signup.VerificationToken, signup.IsVerified, time.Now(),
	)
	return err
}

// GetByVerificationToken retrieves an unverified signup by token
func (r *newsletterRepo) GetByVerificationToken(ctx context.Context, token string) (*models.NewsletterSignup, error) {
	query := `
		SELECT id, email, first_name, source, ip_address, user_agent,
		       verification_token, is_verified, verified_at, created_at
		FROM newsletter_signups
		WHERE verification_token = $1 AND is_verified = false
	`

	var signup models.NewsletterSignup
	var verifiedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&signup.ID, &signup.Email, &signup.FirstName, &signup.Source,
		&signup.IPAddress, &signup.UserAgent,
		&signup.VerificationToken, &signup.IsVerified, &verifiedAt, &signup.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if verifiedAt.Valid {
		signup.VerifiedAt = &verifiedAt.Time
	}
	return &signup, nil
}

// MarkVerified flips a signup to verified. Returns false when no row
// matched.
func (r *newsletterRepo) MarkVerified(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE newsletter_signups SET is_verified = true, verified_at = $2 WHERE id = $1", id, at)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of signups
func (r *newsletterRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM newsletter_signups").Scan(&count)
	return count, err
}
