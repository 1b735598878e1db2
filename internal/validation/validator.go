package validation

import (
	"regexp"
	"strings"

	"github.com/runhub/directory-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// CompleteSessions returns only the run sessions with all four
// required fields populated. Incomplete entries are dropped before
// persistence rather than rejected.
func CompleteSessions(sessions []models.RunSession) []models.RunSession {
	var complete []models.RunSession
	for _, s := range sessions {
		if s.Complete() {
			complete = append(complete, s)
		}
	}
	return complete
}

// ValidateSubmission validates a club submission in a single pass,
// collecting every field error rather than stopping at the first.
// An empty result means the submission may proceed to slug generation
// and insert.
func ValidateSubmission(sub *models.ClubSubmission) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(sub.ClubName) == "" {
		errors = append(errors, ValidationError{Field: "club_name", Message: "club name is required"})
	}
	if strings.TrimSpace(sub.ContactName) == "" {
		errors = append(errors, ValidationError{Field: "contact_name", Message: "contact name is required"})
	}
	if strings.TrimSpace(sub.ShortBio) == "" {
		errors = append(errors, ValidationError{Field: "short_bio", Message: "short bio is required"})
	}
	if strings.TrimSpace(sub.LeaderName) == "" {
		errors = append(errors, ValidationError{Field: "leader_name", Message: "leader name is required"})
	}

	if strings.TrimSpace(sub.SuburbOrTown) == "" {
		errors = append(errors, ValidationError{Field: "suburb_or_town", Message: "suburb or town is required"})
	}
	if strings.TrimSpace(sub.Postcode) == "" {
		errors = append(errors, ValidationError{Field: "postcode", Message: "postcode is required"})
	}
	if strings.TrimSpace(sub.State) == "" {
		errors = append(errors, ValidationError{Field: "state", Message: "state is required"})
	}

	if sub.Latitude == nil {
		errors = append(errors, ValidationError{Field: "latitude", Message: "latitude is required"})
	} else if *sub.Latitude < -90 || *sub.Latitude > 90 {
		errors = append(errors, ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90", Value: *sub.Latitude})
	}
	if sub.Longitude == nil {
		errors = append(errors, ValidationError{Field: "longitude", Message: "longitude is required"})
	} else if *sub.Longitude < -180 || *sub.Longitude > 180 {
		errors = append(errors, ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180", Value: *sub.Longitude})
	}

	if sub.ContactEmail == "" {
		errors = append(errors, ValidationError{Field: "contact_email", Message: "contact email is required"})
	} else if !IsValidEmail(sub.ContactEmail) {
		errors = append(errors, ValidationError{Field: "contact_email", Message: "invalid email format", Value: sub.ContactEmail})
	}

	if sub.ClubType != "" && !models.ValidClubTypes[sub.ClubType] {
		errors = append(errors, ValidationError{
			Field:   "club_type",
			Message: "invalid club type, must be one of: everyone, women-only, men-only",
			Value:   sub.ClubType,
		})
	}
	if sub.IsPaid != "" && !models.ValidCostTypes[sub.IsPaid] {
		errors = append(errors, ValidationError{
			Field:   "is_paid",
			Message: "invalid cost, must be one of: free, paid",
			Value:   sub.IsPaid,
		})
	}

	if len(CompleteSessions(sub.RunSessions)) == 0 {
		errors = append(errors, ValidationError{
			Field:   "run_sessions",
			Message: "at least one complete run session is required (day, time, location, and run type)",
		})
	}

	return errors
}

// ValidateNewsletter validates a newsletter signup request. Filled
// honeypot fields mark the request as a bot submission.
func ValidateNewsletter(req *models.NewsletterRequest) []ValidationError {
	var errors []ValidationError

	if req.Website != "" || req.URL != "" || req.Phone != "" {
		errors = append(errors, ValidationError{Field: "honeypot", Message: "invalid submission"})
		return errors
	}

	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !IsValidEmail(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "please enter a valid email address", Value: req.Email})
	}

	return errors
}

// ValidateContact validates a contact form request
func ValidateContact(req *models.ContactRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Subject) == "" {
		errors = append(errors, ValidationError{Field: "subject", Message: "subject is required"})
	}
	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, ValidationError{Field: "message", Message: "message is required"})
	}
	if req.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !IsValidEmail(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "please enter a valid email address", Value: req.Email})
	}

	return errors
}
