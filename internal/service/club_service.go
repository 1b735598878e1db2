package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/mailer"
	"github.com/runhub/directory-api/internal/models"
	"github.com/runhub/directory-api/internal/repository"
	"github.com/runhub/directory-api/internal/slug"
	"github.com/runhub/directory-api/internal/transform"
	"github.com/runhub/directory-api/internal/validation"
)

// slugUniqueConstraint is the unique index name on run_clubs.slug,
// matched when classifying insert failures.
const slugUniqueConstraint = "run_clubs_slug_key"

// clubService is the concrete implementation of ClubService
type clubService struct {
	clubRepo repository.ClubRepository
	mailer   mailer.Mailer
	cfg      *config.Config
	log      zerolog.Logger
	now      func() time.Time
}

// newClubService creates a new ClubService
func newClubService(clubRepo repository.ClubRepository, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *clubService {
	return &clubService{
		clubRepo: clubRepo,
		mailer:   mail,
		cfg:      cfg,
		log:      log.With().Str("service", "club").Logger(),
		now:      time.Now,
	}
}

// Submit validates nothing itself (the handler runs the validation
// pass); it assigns identity, persists the club as pending, and
// notifies the admin. Slug conflicts from concurrent submissions are
// absorbed by a bounded retry around the insert: the pre-insert probe
// in generateUniqueSlug is an optimization, the database's unique
// constraint is the authority.
func (s *clubService) Submit(ctx context.Context, sub *models.ClubSubmission) (*models.ClubRecord, error) {
	club := s.recordFromSubmission(sub)

	attempts := s.cfg.App.InsertRetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var insertErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		clubSlug, err := s.generateUniqueSlug(ctx, sub.ClubName)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		club.Slug = clubSlug

		insertErr = s.clubRepo.Insert(ctx, club)
		if insertErr == nil {
			break
		}
		if !database.IsUniqueViolation(insertErr, slugUniqueConstraint) {
			return nil, fmt.Errorf("failed to insert club: %w", insertErr)
		}

		s.log.Warn().
			Str("slug", clubSlug).
			Int("attempt", attempt).
			Msg("Slug conflict on insert, retrying")
	}
	if insertErr != nil {
		return nil, fmt.Errorf("failed to insert club after %d attempts: %w", attempts, insertErr)
	}

	// Admin notification is best-effort; the submission stands even
	// if the email never goes out.
	if err := s.mailer.SendSubmissionNotification(ctx, club); err != nil {
		s.log.Error().Err(err).Str("club_id", club.ID).Msg("Failed to send submission notification")
	}

	s.log.Info().
		Str("club_id", club.ID).
		Str("slug", club.Slug).
		Str("name", club.ClubName).
		Msg("Club submitted")

	return club, nil
}

// ListApproved returns every approved club as its canonical view, in
// the store's alphabetical order.
func (s *clubService) ListApproved(ctx context.Context) ([]models.CanonicalClub, error) {
	records, err := s.clubRepo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return transform.Clubs(records), nil
}

// GetBySlug returns a single approved club's canonical view
func (s *clubService) GetBySlug(ctx context.Context, clubSlug string) (*models.CanonicalClub, error) {
	record, err := s.clubRepo.GetBySlug(ctx, clubSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	if record == nil {
		return nil, ErrNotFound
	}

	canonical := transform.Club(record)
	return &canonical, nil
}

// ProcessApproval consumes an approval token. The token only matches
// a pending club, so a second use of the same link reports not found
// rather than repeating the transition or re-sending email.
func (s *clubService) ProcessApproval(ctx context.Context, token, action, reason string) (*ApprovalResult, error) {
	if action != "approve" && action != "reject" {
		return nil, ErrInvalidAction
	}

	club, err := s.clubRepo.GetByApprovalToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up approval token: %w", err)
	}
	if club == nil {
		return nil, ErrNotFound
	}

	status := models.ClubStatusApproved
	if action == "reject" {
		status = models.ClubStatusRejected
	} else {
		reason = ""
	}

	found, err := s.clubRepo.UpdateStatus(ctx, club.ID, status, "admin", reason, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to update club status: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	club.Status = status

	result := &ApprovalResult{Club: club, Action: action}

	// The status change is committed; a failed confirmation email
	// must not reverse it.
	if action == "approve" {
		if err := s.mailer.SendApprovalConfirmation(ctx, club); err != nil {
			s.log.Error().Err(err).Str("club_id", club.ID).Msg("Failed to send approval confirmation")
		} else {
			result.EmailSent = true
		}
	}

	s.log.Info().
		Str("club_id", club.ID).
		Str("action", action).
		Msg("Approval processed")

	return result, nil
}

// CountByStatus returns the number of clubs in a status
func (s *clubService) CountByStatus(ctx context.Context, status models.ClubStatus) (int, error) {
	return s.clubRepo.CountByStatus(ctx, status)
}

// generateUniqueSlug converts a club name to a slug that no existing
// club holds. A name that normalizes to nothing goes straight to the
// timestamp path; otherwise numeric suffixes are probed up to the
// configured bound before the timestamp fallback guarantees
// termination.
func (s *clubService) generateUniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return fmt.Sprintf("club-%d", s.now().UnixMilli()), nil
	}

	probes := s.cfg.App.SlugProbeAttempts
	if probes < 1 {
		probes = 1
	}

	candidate := base
	for attempt := 0; attempt < probes; attempt++ {
		exists, err := s.clubRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt+2)
	}

	return fmt.Sprintf("%s-%d", base, s.now().UnixMilli()), nil
}

// recordFromSubmission builds the pending record, dropping incomplete
// run sessions and minting the identity and approval token.
func (s *clubService) recordFromSubmission(sub *models.ClubSubmission) *models.ClubRecord {
	now := s.now()

	var lat, lng float64
	if sub.Latitude != nil {
		lat = *sub.Latitude
	}
	if sub.Longitude != nil {
		lng = *sub.Longitude
	}

	return &models.ClubRecord{
		ID:               uuid.NewString(),
		ClubName:         sub.ClubName,
		ContactName:      sub.ContactName,
		ShortBio:         sub.ShortBio,
		WebsiteURL:       sub.WebsiteURL,
		InstagramURL:     sub.InstagramURL,
		StravaURL:        sub.StravaURL,
		AdditionalURL:    sub.AdditionalURL,
		SuburbOrTown:     sub.SuburbOrTown,
		Postcode:         sub.Postcode,
		State:            sub.State,
		Latitude:         lat,
		Longitude:        lng,
		RunDetails:       []string{}, // legacy column, kept empty for new rows
		RunSessions:      validation.CompleteSessions(sub.RunSessions),
		RunDays:          sub.RunDays,
		ClubType:         sub.ClubType,
		IsPaid:           sub.IsPaid,
		Extracurriculars: sub.Extracurriculars,
		Terrain:          sub.Terrain,
		ClubPhoto:        sub.ClubPhoto,
		LeaderName:       sub.LeaderName,
		ContactMobile:    sub.ContactMobile,
		ContactEmail:     sub.ContactEmail,
		Status:           models.ClubStatusPending,
		ApprovalToken:    uuid.NewString(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
