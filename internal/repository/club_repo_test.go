package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/models"
)

// stubRow feeds scanClub a fixed row, varying only the run_sessions
// JSONB payload.
type stubRow struct {
	sessions []byte
}

func (s stubRow) Scan(dest ...interface{}) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = ""
		case *float64:
			*v = 0
		case *[]byte:
			*v = s.sessions
		case *models.ClubStatus:
			*v = models.ClubStatusApproved
		case *time.Time:
			*v = time.Time{}
		case sql.Scanner:
			if err := v.Scan(nil); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected scan destination %T", d)
		}
	}
	return nil
}

func TestScanClubRunSessions(t *testing.T) {
	repo := &clubRepo{log: zerolog.Nop()}

	t.Run("valid JSON parses into sessions", func(t *testing.T) {
		club, err := repo.scanClub(stubRow{
			sessions: []byte(`[{"day":"saturday","time":"6:00am","location":"Pier","run_type":"social"}]`),
		})
		if err != nil {
			t.Fatalf("scanClub failed: %v", err)
		}
		if len(club.RunSessions) != 1 {
			t.Fatalf("Expected 1 session, got %d", len(club.RunSessions))
		}
		if club.RunSessions[0].Day != "saturday" {
			t.Errorf("Session day = %q, want saturday", club.RunSessions[0].Day)
		}
	})

	t.Run("corrupt JSON drops sessions without failing the read", func(t *testing.T) {
		club, err := repo.scanClub(stubRow{sessions: []byte(`{"not an": array`)})
		if err != nil {
			t.Fatalf("Expected corrupt JSON to degrade, got error: %v", err)
		}
		if club.RunSessions != nil {
			t.Errorf("Expected no sessions from corrupt JSON, got %v", club.RunSessions)
		}
	})

	t.Run("empty column yields no sessions", func(t *testing.T) {
		club, err := repo.scanClub(stubRow{})
		if err != nil {
			t.Fatalf("scanClub failed: %v", err)
		}
		if club.RunSessions != nil {
			t.Errorf("Expected no sessions, got %v", club.RunSessions)
		}
	})
}
