package models

import (
	"time"
)

// NewsletterSignup represents a newsletter subscription row.
type NewsletterSignup struct {
	ID                string     `json:"id" db:"id"`
	Email             string     `json:"email" db:"email"`
	FirstName         string     `json:"first_name,omitempty" db:"first_name"`
	Source            string     `json:"source" db:"source"`
	IPAddress         string     `json:"-" db:"ip_address"`
	UserAgent         string     `json:"-" db:"user_agent"`
	VerificationToken string     `json:"-" db:"verification_token"`
	IsVerified        bool       `json:"is_verified" db:"is_verified"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}
