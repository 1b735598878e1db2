package validation

import (
	"testing"

	"github.com/runhub/directory-api/internal/models"
)

func float64Ptr(f float64) *float64 { return &f }

func validSubmission() *models.ClubSubmission {
	return &models.ClubSubmission{
		ClubName:     "Bondi Beach Runners",
		ContactName:  "Alex Chen",
		ShortBio:     "Social beach runs every weekend",
		SuburbOrTown: "Bondi",
		Postcode:     "2026",
		State:        "NSW",
		Latitude:     float64Ptr(-33.8908),
		Longitude:    float64Ptr(151.2743),
		ContactEmail: "hello@bondirunners.com",
		LeaderName:   "Alex Chen",
		ClubType:     "everyone",
		IsPaid:       "free",
		RunSessions: []models.RunSession{
			{Day: "saturday", Time: "6:00am", Location: "North Bondi", RunType: "Social Run"},
		},
	}
}

func fieldErrors(errs []ValidationError) map[string]bool {
	out := make(map[string]bool)
	for _, e := range errs {
		out[e.Field] = true
	}
	return out
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.ClubSubmission)
		wantFields []string
	}{
		{
			name:       "valid submission has no errors",
			mutate:     func(s *models.ClubSubmission) {},
			wantFields: nil,
		},
		{
			name:       "missing club name",
			mutate:     func(s *models.ClubSubmission) { s.ClubName = "  " },
			wantFields: []string{"club_name"},
		},
		{
			name: "multiple errors collected in one pass",
			mutate: func(s *models.ClubSubmission) {
				s.ClubName = ""
				s.ContactEmail = "not-an-email"
				s.Latitude = nil
			},
			wantFields: []string{"club_name", "contact_email", "latitude"},
		},
		{
			name:       "latitude out of range",
			mutate:     func(s *models.ClubSubmission) { s.Latitude = float64Ptr(120) },
			wantFields: []string{"latitude"},
		},
		{
			name:       "invalid club type",
			mutate:     func(s *models.ClubSubmission) { s.ClubType = "mixed" },
			wantFields: []string{"club_type"},
		},
		{
			name:       "invalid cost",
			mutate:     func(s *models.ClubSubmission) { s.IsPaid = "donation" },
			wantFields: []string{"is_paid"},
		},
		{
			name:       "no sessions at all",
			mutate:     func(s *models.ClubSubmission) { s.RunSessions = nil },
			wantFields: []string{"run_sessions"},
		},
		{
			name: "only incomplete sessions",
			mutate: func(s *models.ClubSubmission) {
				s.RunSessions = []models.RunSession{
					{Day: "monday", Time: "6:00pm"}, // missing location and run type
				}
			},
			wantFields: []string{"run_sessions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)

			errs := ValidateSubmission(sub)
			if len(tt.wantFields) == 0 {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			got := fieldErrors(errs)
			if len(errs) != len(tt.wantFields) {
				t.Errorf("expected %d errors, got %d: %v", len(tt.wantFields), len(errs), errs)
			}
			for _, f := range tt.wantFields {
				if !got[f] {
					t.Errorf("expected an error for field %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestCompleteSessions(t *testing.T) {
	sessions := []models.RunSession{
		{Day: "saturday", Time: "6:00am", Location: "Pier", RunType: "Long Run"},
		{Day: "monday"}, // incomplete
		{Day: "wednesday", Time: "6:00pm", Location: "Track", RunType: "Intervals", Distance: "5km"},
		{Time: "7:00am", Location: "Park", RunType: "Easy"}, // no day
	}

	got := CompleteSessions(sessions)
	if len(got) != 2 {
		t.Fatalf("expected 2 complete sessions, got %d", len(got))
	}
	if got[0].Day != "saturday" || got[1].Day != "wednesday" {
		t.Errorf("complete sessions out of order: %v", got)
	}
}

func TestValidateNewsletter(t *testing.T) {
	tests := []struct {
		name       string
		req        models.NewsletterRequest
		wantFields []string
	}{
		{
			name:       "valid",
			req:        models.NewsletterRequest{Email: "runner@example.com"},
			wantFields: nil,
		},
		{
			name:       "honeypot filled",
			req:        models.NewsletterRequest{Email: "runner@example.com", Website: "spam.com"},
			wantFields: []string{"honeypot"},
		},
		{
			name:       "missing email",
			req:        models.NewsletterRequest{},
			wantFields: []string{"email"},
		},
		{
			name:       "bad email",
			req:        models.NewsletterRequest{Email: "nope"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateNewsletter(&tt.req)
			got := fieldErrors(errs)
			if len(errs) != len(tt.wantFields) {
				t.Errorf("expected %d errors, got %v", len(tt.wantFields), errs)
			}
			for _, f := range tt.wantFields {
				if !got[f] {
					t.Errorf("expected error on %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestValidateContact(t *testing.T) {
	valid := models.ContactRequest{
		Name: "Sam", Email: "sam@example.com", Subject: "Hi", Message: "A question",
	}
	if errs := ValidateContact(&valid); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	empty := models.ContactRequest{}
	errs := ValidateContact(&empty)
	if len(errs) != 4 {
		t.Errorf("expected 4 errors for empty request, got %v", errs)
	}
}
