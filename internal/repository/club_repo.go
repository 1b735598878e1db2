package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/models"
)

// clubColumns is the full select list, kept in one place so every
// read path scans the same shape.
const clubColumns = `
	id, slug, club_name, contact_name, short_bio,
	website_url, instagram_url, strava_url, additional_url,
	suburb_or_town, postcode, state, latitude, longitude,
	run_details, run_days, run_sessions,
	club_type, is_paid, extracurriculars, terrain, club_photo,
	leader_name, contact_mobile, contact_email,
	status, approval_token, approved_at, approved_by, rejection_reason,
	created_at, updated_at
`

// clubRepo is the concrete implementation of ClubRepository
type clubRepo struct {
	db  *database.DB
	log zerolog.Logger
}

// NewClubRepo creates a new club repository
func NewClubRepo(db *database.DB) ClubRepository {
	return &clubRepo{
		db:  db,
		log: db.Logger().With().Str("repository", "club").Logger(),
	}
}

// Insert persists a new club submission. The caller assigns the slug
// and approval token; the database's unique constraint on slug is the
// final authority on collisions.
func (r *clubRepo) Insert(ctx context.Context, club *models.ClubRecord) error {
	sessionsJSON, _ := json.Marshal(club.RunSessions)
	if club.RunSessions == nil {
		sessionsJSON = []byte("[]")
	}

	query := `
		INSERT INTO run_clubs (
			id, slug, club_name, contact_name, short_bio,
			website_url, instagram_url, strava_url, additional_url,
			suburb_or_town, postcode, state, latitude, longitude,
			run_details, run_days, run_sessions,
			club_type, is_paid, extracurriculars, terrain, club_photo,
			leader_name, contact_mobile, contact_email,
			status, approval_token, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		club.ID, club.Slug, club.ClubName, club.ContactName, club.ShortBio,
		club.WebsiteURL, club.InstagramURL, club.StravaURL, club.AdditionalURL,
		club.SuburbOrTown, club.Postcode, club.State, club.Latitude, club.Longitude,
		pq.Array(emptyStrings(club.RunDetails)), pq.Array(emptyStrings(club.RunDays)), sessionsJSON,
		club.ClubType, club.IsPaid, pq.Array(emptyStrings(club.Extracurriculars)), pq.Array(emptyStrings(club.Terrain)), club.ClubPhoto,
		club.LeaderName, club.ContactMobile, club.ContactEmail,
		club.Status, club.ApprovalToken, now, now,
	)
	return err
}

// ListApproved retrieves every approved club, alphabetical by name.
// Listing pages rely on this ordering; filtering downstream never
// resorts.
func (r *clubRepo) ListApproved(ctx context.Context) ([]*models.ClubRecord, error) {
	query := `SELECT ` + clubColumns + ` FROM run_clubs WHERE status = $1 ORDER BY club_name`

	rows, err := r.db.QueryContext(ctx, query, models.ClubStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []*models.ClubRecord
	for rows.Next() {
		club, err := r.scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}

// GetBySlug retrieves a single approved club by slug
func (r *clubRepo) GetBySlug(ctx context.Context, slug string) (*models.ClubRecord, error) {
	query := `SELECT ` + clubColumns + ` FROM run_clubs WHERE slug = $1 AND status = $2`

	club, err := r.scanClub(r.db.QueryRowContext(ctx, query, slug, models.ClubStatusApproved))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return club, nil
}

// GetByApprovalToken retrieves a pending club by its one-time token.
// Once the status has flipped the same token finds nothing, which is
// what makes approval links safely idempotent.
func (r *clubRepo) GetByApprovalToken(ctx context.Context, token string) (*models.ClubRecord, error) {
	query := `SELECT ` + clubColumns + ` FROM run_clubs WHERE approval_token = $1 AND status = $2`

	club, err := r.scanClub(r.db.QueryRowContext(ctx, query, token, models.ClubStatusPending))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return club, nil
}

// SlugExists checks if a club with the given slug exists in any status
func (r *clubRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM run_clubs WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// UpdateStatus transitions a club out of pending and records the
// audit fields. Returns false when no row matched the id.
func (r *clubRepo) UpdateStatus(ctx context.Context, id string, status models.ClubStatus, approvedBy, rejectionReason string, at time.Time) (bool, error) {
	query := `
		UPDATE run_clubs
		SET status = $2, approved_at = $3, approved_by = $4, rejection_reason = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, status, at, approvedBy, rejectionReason, time.Now())
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CountByStatus returns the number of clubs in a given status
func (r *clubRepo) CountByStatus(ctx context.Context, status models.ClubStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM run_clubs WHERE status = $1", status).Scan(&count)
	return count, err
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *clubRepo) scanClub(row rowScanner) (*models.ClubRecord, error) {
	var club models.ClubRecord
	var sessionsJSON []byte
	var approvedAt sql.NullTime

	err := row.Scan(
		&club.ID, &club.Slug, &club.ClubName, &club.ContactName, &club.ShortBio,
		&club.WebsiteURL, &club.InstagramURL, &club.StravaURL, &club.AdditionalURL,
		&club.SuburbOrTown, &club.Postcode, &club.State, &club.Latitude, &club.Longitude,
		pq.Array(&club.RunDetails), pq.Array(&club.RunDays), &sessionsJSON,
		&club.ClubType, &club.IsPaid, pq.Array(&club.Extracurriculars), pq.Array(&club.Terrain), &club.ClubPhoto,
		&club.LeaderName, &club.ContactMobile, &club.ContactEmail,
		&club.Status, &club.ApprovalToken, &approvedAt, &club.ApprovedBy, &club.RejectionReason,
		&club.CreatedAt, &club.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(sessionsJSON) > 0 {
		if err := json.Unmarshal(sessionsJSON, &club.RunSessions); err != nil {
			// Corrupt JSONB degrades to an empty session list rather
			// than failing the read, but not silently.
			r.log.Error().Err(err).Str("club_id", club.ID).Msg("Invalid run_sessions JSON, dropping sessions")
			club.RunSessions = nil
		}
	}
	if approvedAt.Valid {
		club.ApprovedAt = &approvedAt.Time
	}

	return &club, nil
}

// emptyStrings keeps nil slices out of pq.Array so text[] columns
// always store '{}' rather than NULL.
func emptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
