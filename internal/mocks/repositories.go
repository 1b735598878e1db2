package mocks

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/runhub/directory-api/internal/models"
)

// MockClubRepository is a mock implementation of ClubRepository
type MockClubRepository struct {
	Clubs       map[string]*models.ClubRecord // by ID
	Slugs       map[string]*models.ClubRecord // by slug
	InsertError error
	InsertFunc  func(ctx context.Context, club *models.ClubRecord) error
	InsertCalls int
	ProbeCalls  int
}

func NewMockClubRepository() *MockClubRepository {
	return &MockClubRepository{
		Clubs: make(map[string]*models.ClubRecord),
		Slugs: make(map[string]*models.ClubRecord),
	}
}

// Seed adds a record directly, bypassing insert accounting.
func (m *MockClubRepository) Seed(club *models.ClubRecord) {
	m.Clubs[club.ID] = club
	m.Slugs[club.Slug] = club
}

func (m *MockClubRepository) Insert(ctx context.Context, club *models.ClubRecord) error {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, club)
	}
	if m.InsertError != nil {
		return m.InsertError
	}
	if _, exists := m.Slugs[club.Slug]; exists {
		return &pq.Error{Code: "23505", Constraint: "run_clubs_slug_key"}
	}
	m.Seed(club)
	return nil
}

func (m *MockClubRepository) ListApproved(ctx context.Context) ([]*models.ClubRecord, error) {
	var out []*models.ClubRecord
	for _, c := range m.Clubs {
		if c.Status == models.ClubStatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockClubRepository) GetBySlug(ctx context.Context, slug string) (*models.ClubRecord, error) {
	club, ok := m.Slugs[slug]
	if !ok || club.Status != models.ClubStatusApproved {
		return nil, nil
	}
	return club, nil
}

func (m *MockClubRepository) GetByApprovalToken(ctx context.Context, token string) (*models.ClubRecord, error) {
	for _, c := range m.Clubs {
		if c.ApprovalToken == token && c.Status == models.ClubStatusPending {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockClubRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	m.ProbeCalls++
	_, exists := m.Slugs[slug]
	return exists, nil
}

func (m *MockClubRepository) UpdateStatus(ctx context.Context, id string, status models.ClubStatus, approvedBy, rejectionReason string, at time.Time) (bool, error) {
	club, ok := m.Clubs[id]
	if !ok {
		return false, nil
	}
	club.Status = status
	club.ApprovedAt = &at
	club.ApprovedBy = approvedBy
	club.RejectionReason = rejectionReason
	return true, nil
}

func (m *MockClubRepository) CountByStatus(ctx context.Context, status models.ClubStatus) (int, error) {
	count := 0
	for _, c := range m.Clubs {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

// MockNewsletterRepository is a mock implementation of NewsletterRepository
type MockNewsletterRepository struct {
	Signups     map[string]*models.NewsletterSignup // by ID
	Emails      map[string]*models.NewsletterSignup
	InsertError error
}

func NewMockNewsletterRepository() *MockNewsletterRepository {
	return &MockNewsletterRepository{
		Signups: make(map[string]*models.NewsletterSignup),
		Emails:  make(map[string]*models.NewsletterSignup),
	}
}

func (m *MockNewsletterRepository) Insert(ctx context.Context, signup *models.NewsletterSignup) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	if _, exists := m.Emails[signup.Email]; exists {
		// Same shape the real unique constraint produces.
		return &pq.Error{Code: "23505", Constraint: "newsletter_signups_email_key"}
	}
	m.Signups[signup.ID] = signup
	m.Emails[signup.Email] = signup
	return nil
}

func (m *MockNewsletterRepository) GetByVerificationToken(ctx context.Context, token string) (*models.NewsletterSignup, error) {
	for _, s := range m.Signups {
		if s.VerificationToken == token && !s.IsVerified {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockNewsletterRepository) MarkVerified(ctx context.Context, id string, at time.Time) (bool, error) {
	signup, ok := m.Signups[id]
	if !ok {
		return false, nil
	}
	signup.IsVerified = true
	signup.VerifiedAt = &at
	return true, nil
}

func (m *MockNewsletterRepository) Count(ctx context.Context) (int, error) {
	return len(m.Signups), nil
}
