// Package transform derives the canonical display view of a club from
// its stored record. All functions are pure: the same record always
// produces the same view, and malformed input degrades to sentinel
// values rather than errors. Because the view is recomputed on every
// read, rule changes here apply to all clubs without a migration.
package transform

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/runhub/directory-api/internal/models"
)

// SentinelContactClub is shown when a meeting day or time cannot be
// derived from the stored record.
const SentinelContactClub = "Contact club"

// Time of day buckets.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// Difficulty buckets.
const (
	DifficultyAllLevels    = "all-levels"
	DifficultyAdvanced     = "advanced"
	DifficultyIntermediate = "intermediate"
	DifficultyBeginner     = "beginner"
)

var dayNames = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
	"mon":       "Monday",
	"tue":       "Tuesday",
	"wed":       "Wednesday",
	"thu":       "Thursday",
	"fri":       "Friday",
	"sat":       "Saturday",
	"sun":       "Sunday",
}

// orderedDays is used when scanning free text so the first day
// mentioned wins deterministically.
var orderedDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var (
	timePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s?(AM|PM)|\d{1,2}(AM|PM))`)
	hourPattern = regexp.MustCompile(`(\d{1,2})`)
	instagramRe = regexp.MustCompile(`instagram\.com/([^/\?]+)`)
)

// keyword sets for difficulty inference, checked in priority order:
// inclusive wording beats competitive wording beats intermediate
// wording, because bios often contain several classes at once.
var (
	allLevelsKeywords    = []string{"beginner", "all welcome", "any pace", "all levels", "any speed", "social"}
	advancedKeywords     = []string{"advanced", "competitive", "fast", "elite", "speed", "interval"}
	intermediateKeywords = []string{"intermediate", "moderate", "threshold", "tempo"}
)

// distanceMarkers maps each focus tag to the pattern that implies it.
// Numeric markers refuse a preceding digit and require a word boundary
// after, so "15km" never reads as "5km" nor "150km" as "50km". Plain
// word markers stay simple substrings. Order is preserved in the
// derived tag list.
var distanceMarkers = []struct {
	tag     string
	pattern *regexp.Regexp
}{
	{"5K", regexp.MustCompile(`(^|\D)5km?\b|parkrun`)},
	{"10K", regexp.MustCompile(`(^|\D)10km?\b`)},
	{"Half Marathon", regexp.MustCompile(`half marathon|(^|\D)21km\b`)},
	{"Marathon", regexp.MustCompile(`marathon`)}, // suppressed when "half" is present
	{"Ultra", regexp.MustCompile(`ultra|(^|\D)50km\b|(^|\D)100km\b`)},
	{"Track", regexp.MustCompile(`track|(^|\D)400m\b|(^|\D)800m\b`)},
}

// Club converts a stored club record into its canonical display view.
// Private contact fields are never copied over.
func Club(rec *models.ClubRecord) models.CanonicalClub {
	meetingDay := MeetingDay(rec.RunSessions, rec.RunDays, rec.RunDetails)
	meetingTime := MeetingTime(rec.RunSessions, rec.RunDetails)

	return models.CanonicalClub{
		ID:   rec.ID,
		Slug: rec.Slug,

		Name:        rec.ClubName,
		Description: rec.ShortBio,
		Location:    rec.SuburbOrTown + ", " + rec.State,
		Suburb:      rec.SuburbOrTown,
		State:       rec.State,
		Postcode:    rec.Postcode,

		Coordinates: models.Coordinates{Lat: rec.Latitude, Lng: rec.Longitude},

		MeetingDay:  meetingDay,
		MeetingTime: meetingTime,
		TimeOfDay:   TimeOfDay(meetingTime),

		Difficulty:    Difficulty(rec.RunSessions, rec.RunDetails, rec.ShortBio),
		DistanceFocus: DistanceFocus(rec.RunSessions, rec.RunDetails),
		ClubType:      rec.ClubType,
		IsPaid:        rec.IsPaid,

		RunDays:     emptyIfNil(rec.RunDays),
		RunSessions: rec.RunSessions,

		Extracurriculars: emptyIfNil(rec.Extracurriculars),
		Terrain:          emptyIfNil(rec.Terrain),

		Website:   CleanURL(rec.WebsiteURL),
		Instagram: CleanInstagramURL(rec.InstagramURL),
		Strava:    CleanURL(rec.StravaURL),

		ClubPhoto: rec.ClubPhoto,

		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// Clubs converts a list of records, preserving order.
func Clubs(recs []*models.ClubRecord) []models.CanonicalClub {
	out := make([]models.CanonicalClub, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Club(rec))
	}
	return out
}

// MeetingDay derives the primary meeting day. The first run session's
// day wins; clubs without sessions fall back to the run_days list,
// then to scanning the legacy free-text run details. Unrecognized day
// names map to the sentinel, never to an error.
func MeetingDay(sessions []models.RunSession, runDays []string, runDetails []string) string {
	if len(sessions) > 0 {
		if day, ok := dayNames[strings.ToLower(strings.TrimSpace(sessions[0].Day))]; ok {
			return day
		}
		return SentinelContactClub
	}

	if len(runDays) > 0 {
		if day, ok := dayNames[strings.ToLower(strings.TrimSpace(runDays[0]))]; ok {
			return day
		}
		return SentinelContactClub
	}

	text := strings.ToLower(strings.Join(runDetails, " "))
	for _, day := range orderedDays {
		if strings.Contains(text, day) {
			return dayNames[day]
		}
	}

	return SentinelContactClub
}

// MeetingTime derives the primary meeting time. The first session's
// time is used verbatim unless it is empty or a stored "unknown";
// otherwise the legacy run details are scanned for an H:MM or H
// followed by AM/PM pattern.
func MeetingTime(sessions []models.RunSession, runDetails []string) string {
	if len(sessions) > 0 {
		t := strings.TrimSpace(sessions[0].Time)
		if t != "" && !strings.EqualFold(t, "unknown") {
			return t
		}
	}

	for _, detail := range runDetails {
		if match := timePattern.FindString(detail); match != "" {
			return strings.ToUpper(match)
		}
	}

	return SentinelContactClub
}

// TimeOfDay buckets a resolved meeting time. PM times at 6 or later
// are evening; 12pm and pm times before 6 are afternoon; AM times are
// morning. Unknown times default to morning. These thresholds are
// policy and pinned by tests, not incidental.
func TimeOfDay(meetingTime string) string {
	lower := strings.ToLower(meetingTime)

	hour, ok := leadingHour(lower)
	if !ok {
		return TimeMorning
	}

	if strings.Contains(lower, "pm") {
		if hour >= 6 && hour != 12 {
			return TimeEvening
		}
		return TimeAfternoon
	}

	if strings.Contains(lower, "am") {
		return TimeMorning
	}

	return TimeMorning
}

// leadingHour extracts the hour component from a time string such as
// "6:00pm" or "7am".
func leadingHour(s string) (int, bool) {
	match := hourPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(match)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// Difficulty infers the difficulty bucket from session text plus the
// club bio. Checked in priority order so that a bio mentioning both
// "all welcome" and "fast" still reads as all-levels.
func Difficulty(sessions []models.RunSession, runDetails []string, bio string) string {
	var parts []string
	for _, s := range sessions {
		parts = append(parts, s.RunType, s.Description)
	}
	parts = append(parts, runDetails...)
	parts = append(parts, bio)
	text := strings.ToLower(strings.Join(parts, " "))

	if containsAny(text, allLevelsKeywords) {
		return DifficultyAllLevels
	}
	if containsAny(text, advancedKeywords) {
		return DifficultyAdvanced
	}
	if containsAny(text, intermediateKeywords) {
		return DifficultyIntermediate
	}

	return DifficultyAllLevels
}

// DistanceFocus scans session distance, run type and description text
// (plus the legacy run details) for distance markers. Each tag is
// appended at most once; with no matches the result is ["Various"],
// never an empty list.
func DistanceFocus(sessions []models.RunSession, runDetails []string) []string {
	var parts []string
	for _, s := range sessions {
		parts = append(parts, s.Distance, s.RunType, s.Description)
	}
	parts = append(parts, runDetails...)
	text := strings.ToLower(strings.Join(parts, " "))

	var focus []string
	for _, dm := range distanceMarkers {
		if !dm.pattern.MatchString(text) {
			continue
		}
		if dm.tag == "Marathon" && strings.Contains(text, "half") {
			// "half marathon" must not also count as "marathon"
			continue
		}
		focus = append(focus, dm.tag)
	}

	if len(focus) == 0 {
		return []string{"Various"}
	}
	return focus
}

// CleanURL normalizes a website or Strava URL. Empty and "Unknown"
// placeholder values come back as empty strings; schemeless values
// get https:// prepended; anything that still fails to parse as a URL
// with a host is treated as absent.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "Unknown" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return ""
	}

	return raw
}

// CleanInstagramURL canonicalizes an Instagram value, which may arrive
// as a full profile URL, a bare handle, or an @handle. The result is
// always https://www.instagram.com/<handle>, or empty when no handle
// can be recovered.
func CleanInstagramURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "Unknown" {
		return ""
	}

	handle := raw
	if match := instagramRe.FindStringSubmatch(raw); match != nil {
		handle = match[1]
	}
	handle = strings.TrimPrefix(handle, "@")
	handle = strings.Trim(handle, "/")
	if handle == "" {
		return ""
	}

	return "https://www.instagram.com/" + handle
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
