package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/runhub/directory-api/internal/database"
	"github.com/runhub/directory-api/internal/mocks"
	"github.com/runhub/directory-api/internal/models"
)

// The mocks stand in for Postgres in the service and API tests, so
// they have to reproduce the behaviors those layers depend on: the
// slug unique constraint, pending-only token lookups, and (nil, nil)
// misses.

func TestMockClubRepository_DuplicateSlug(t *testing.T) {
	repo := mocks.NewMockClubRepository()
	ctx := context.Background()

	first := &models.ClubRecord{ID: "club-1", Slug: "river-runners", Status: models.ClubStatusPending}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	second := &models.ClubRecord{ID: "club-2", Slug: "river-runners", Status: models.ClubStatusPending}
	err := repo.Insert(ctx, second)
	if err == nil {
		t.Fatal("Expected duplicate slug insert to fail")
	}
	if !database.IsUniqueViolation(err, "run_clubs_slug_key") {
		t.Errorf("Expected slug unique violation, got %v", err)
	}

	if repo.InsertCalls != 2 {
		t.Errorf("Expected 2 insert calls, got %d", repo.InsertCalls)
	}
}

func TestMockClubRepository_SlugExists(t *testing.T) {
	repo := mocks.NewMockClubRepository()
	ctx := context.Background()

	repo.Seed(&models.ClubRecord{ID: "club-1", Slug: "river-runners"})

	exists, err := repo.SlugExists(ctx, "river-runners")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected slug to exist")
	}

	exists, err = repo.SlugExists(ctx, "river-runners-2")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if exists {
		t.Error("Expected slug to be free")
	}

	if repo.ProbeCalls != 2 {
		t.Errorf("Expected 2 probe calls, got %d", repo.ProbeCalls)
	}
}

func TestMockClubRepository_ApprovalTokenLookup(t *testing.T) {
	repo := mocks.NewMockClubRepository()
	ctx := context.Background()

	repo.Seed(&models.ClubRecord{
		ID:            "club-1",
		Slug:          "river-runners",
		ApprovalToken: "tok-1",
		Status:        models.ClubStatusPending,
	})

	club, err := repo.GetByApprovalToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByApprovalToken failed: %v", err)
	}
	if club == nil {
		t.Fatal("Expected pending club to be found by token")
	}

	// Token lookups only see pending clubs.
	ok, err := repo.UpdateStatus(ctx, "club-1", models.ClubStatusApproved, "admin", "", time.Now())
	if err != nil || !ok {
		t.Fatalf("UpdateStatus failed: ok=%v err=%v", ok, err)
	}

	club, err = repo.GetByApprovalToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByApprovalToken failed: %v", err)
	}
	if club != nil {
		t.Error("Expected consumed token to find nothing")
	}
}

func TestMockClubRepository_GetBySlugApprovedOnly(t *testing.T) {
	repo := mocks.NewMockClubRepository()
	ctx := context.Background()

	repo.Seed(&models.ClubRecord{ID: "club-1", Slug: "river-runners", Status: models.ClubStatusPending})

	club, err := repo.GetBySlug(ctx, "river-runners")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if club != nil {
		t.Error("Expected pending club to be invisible by slug")
	}

	club, err = repo.GetBySlug(ctx, "no-such-slug")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if club != nil {
		t.Error("Expected miss to return nil, nil")
	}
}

func TestMockNewsletterRepository_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockNewsletterRepository()
	ctx := context.Background()

	first := &models.NewsletterSignup{ID: "sub-1", Email: "runner@test.com"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	second := &models.NewsletterSignup{ID: "sub-2", Email: "runner@test.com"}
	err := repo.Insert(ctx, second)
	if err == nil {
		t.Fatal("Expected duplicate email insert to fail")
	}
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Constraint != "newsletter_signups_email_key" {
		t.Errorf("Expected email unique violation, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 signup, got %d", count)
	}
}

func TestMockNewsletterRepository_Verification(t *testing.T) {
	repo := mocks.NewMockNewsletterRepository()
	ctx := context.Background()

	signup := &models.NewsletterSignup{ID: "sub-1", Email: "runner@test.com", VerificationToken: "tok-1"}
	if err := repo.Insert(ctx, signup); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	found, err := repo.GetByVerificationToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByVerificationToken failed: %v", err)
	}
	if found == nil {
		t.Fatal("Expected unverified signup to be found by token")
	}

	ok, err := repo.MarkVerified(ctx, "sub-1", time.Now())
	if err != nil || !ok {
		t.Fatalf("MarkVerified failed: ok=%v err=%v", ok, err)
	}

	found, err = repo.GetByVerificationToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByVerificationToken failed: %v", err)
	}
	if found != nil {
		t.Error("Expected verified signup to be invisible by token")
	}
}
