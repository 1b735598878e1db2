package models

import (
	"time"
)

// ClubStatus represents the lifecycle state of a club submission
type ClubStatus string

const (
	ClubStatusPending  ClubStatus = "pending"
	ClubStatusApproved ClubStatus = "approved"
	ClubStatusRejected ClubStatus = "rejected"
)

// ValidClubTypes defines allowed club type values
var ValidClubTypes = map[string]bool{
	"everyone":   true,
	"women-only": true,
	"men-only":   true,
}

// ValidCostTypes defines allowed cost values
var ValidCostTypes = map[string]bool{
	"free": true,
	"paid": true,
}

// RunSession is one scheduled recurring run belonging to a club.
// Day, Time, Location and RunType are required for a session to count;
// incomplete sessions are dropped before persistence.
type RunSession struct {
	Day         string `json:"day"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	RunType     string `json:"run_type"`
	Distance    string `json:"distance,omitempty"`
	Description string `json:"description,omitempty"`
}

// Complete reports whether all four required session fields are populated.
func (s RunSession) Complete() bool {
	return s.Day != "" && s.Time != "" && s.Location != "" && s.RunType != ""
}

// ClubRecord represents a club row as persisted, including private
// contact fields. Never serialize this on public endpoints; use
// CanonicalClub instead.
type ClubRecord struct {
	ID   string `json:"id" db:"id"`
	Slug string `json:"slug" db:"slug"`

	ClubName    string `json:"club_name" db:"club_name"`
	ContactName string `json:"contact_name" db:"contact_name"`
	ShortBio    string `json:"short_bio" db:"short_bio"`

	WebsiteURL    string `json:"website_url,omitempty" db:"website_url"`
	InstagramURL  string `json:"instagram_url,omitempty" db:"instagram_url"`
	StravaURL     string `json:"strava_url,omitempty" db:"strava_url"`
	AdditionalURL string `json:"additional_url,omitempty" db:"additional_url"`

	SuburbOrTown string  `json:"suburb_or_town" db:"suburb_or_town"`
	Postcode     string  `json:"postcode" db:"postcode"`
	State        string  `json:"state" db:"state"`
	Latitude     float64 `json:"latitude" db:"latitude"`
	Longitude    float64 `json:"longitude" db:"longitude"`

	RunDetails  []string     `json:"run_details" db:"-"`  // legacy free-text entries
	RunSessions []RunSession `json:"run_sessions" db:"-"` // stored as JSONB
	RunDays     []string     `json:"run_days" db:"-"`

	ClubType         string   `json:"club_type" db:"club_type"`
	IsPaid           string   `json:"is_paid" db:"is_paid"`
	Extracurriculars []string `json:"extracurriculars" db:"-"`
	Terrain          []string `json:"terrain" db:"-"`

	ClubPhoto string `json:"club_photo,omitempty" db:"club_photo"`

	// Private contact fields; excluded from public reads.
	LeaderName    string `json:"-" db:"leader_name"`
	ContactMobile string `json:"-" db:"contact_mobile"`
	ContactEmail  string `json:"-" db:"contact_email"`

	Status          ClubStatus `json:"status" db:"status"`
	ApprovalToken   string     `json:"-" db:"approval_token"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty" db:"approved_at"`
	ApprovedBy      string     `json:"approved_by,omitempty" db:"approved_by"`
	RejectionReason string     `json:"rejection_reason,omitempty" db:"rejection_reason"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinates is a latitude/longitude pair for map display.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CanonicalClub is the derived, display-ready view of a ClubRecord.
// It is recomputed on every read and never persisted, so changes to
// the derivation rules take effect without a migration. Contact
// details are deliberately absent.
type CanonicalClub struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"` // "Suburb, STATE"
	Suburb      string `json:"suburb"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`

	Coordinates Coordinates `json:"coordinates"`

	MeetingDay  string `json:"meeting_day"`
	MeetingTime string `json:"meeting_time"`
	TimeOfDay   string `json:"time_of_day"` // morning, afternoon, evening

	Difficulty    string   `json:"difficulty"` // beginner, intermediate, advanced, all-levels
	DistanceFocus []string `json:"distance_focus"`
	ClubType      string   `json:"club_type"`
	IsPaid        string   `json:"is_paid"`

	RunDays     []string     `json:"run_days"`
	RunSessions []RunSession `json:"run_sessions"`

	Extracurriculars []string `json:"extracurriculars"`
	Terrain          []string `json:"terrain"`

	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Strava    string `json:"strava,omitempty"`

	ClubPhoto string `json:"club_photo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
