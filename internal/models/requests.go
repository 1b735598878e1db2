package models

// ClubSubmission is the typed request body for POST /v1/clubs. It is
// validated in a single pass at the boundary; handlers never probe
// loose maps for fields.
type ClubSubmission struct {
	ClubName    string `json:"club_name"`
	ContactName string `json:"contact_name"`
	ShortBio    string `json:"short_bio"`

	WebsiteURL    string `json:"website_url"`
	InstagramURL  string `json:"instagram_url"`
	StravaURL     string `json:"strava_url"`
	AdditionalURL string `json:"additional_url"`

	SuburbOrTown string   `json:"suburb_or_town"`
	Postcode     string   `json:"postcode"`
	State        string   `json:"state"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	RunSessions []RunSession `json:"run_sessions"`
	RunDays     []string     `json:"run_days"`

	ClubType         string   `json:"club_type"`
	IsPaid           string   `json:"is_paid"`
	Extracurriculars []string `json:"extracurriculars"`
	Terrain          []string `json:"terrain"`

	ClubPhoto string `json:"club_photo"`

	LeaderName    string `json:"leader_name"`
	ContactMobile string `json:"contact_mobile"`
	ContactEmail  string `json:"contact_email"`
}

// NewsletterRequest is the request body for POST /v1/newsletter.
// Website, URL and Phone are honeypot fields; real users never fill
// them in.
type NewsletterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Source    string `json:"source"`

	Website string `json:"website"`
	URL     string `json:"url"`
	Phone   string `json:"phone"`
}

// ContactRequest is the request body for POST /v1/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
