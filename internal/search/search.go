// Package search filters canonical club lists for the listing and map
// pages. Filtering is a pure function over a snapshot: it never
// reorders, never errors on junk filter values, and treats empty
// selection sets as imposing no constraint.
package search

import (
	"strings"

	"github.com/runhub/directory-api/internal/models"
)

// Bounds is a rectangular map viewport in latitude/longitude degrees.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether the coordinate falls inside the viewport.
func (b Bounds) Contains(c models.Coordinates) bool {
	return c.Lat <= b.North && c.Lat >= b.South &&
		c.Lng <= b.East && c.Lng >= b.West
}

// Query carries one page's worth of search state: a free-text term,
// the selected values per category, and an optional map viewport.
// Categories combine with AND; values within a category with OR.
type Query struct {
	Search string

	States           []string
	MeetingDays      []string
	ClubTypes        []string
	Terrain          []string
	Extracurriculars []string
	Cost             []string

	Bounds *Bounds
}

// IsEmpty reports whether the query imposes no constraint at all.
func (q Query) IsEmpty() bool {
	return q.Search == "" &&
		len(q.States) == 0 && len(q.MeetingDays) == 0 &&
		len(q.ClubTypes) == 0 && len(q.Terrain) == 0 &&
		len(q.Extracurriculars) == 0 && len(q.Cost) == 0 &&
		q.Bounds == nil
}

// Filter returns the clubs matching the query, in input order. An
// empty query returns every club.
func Filter(clubs []models.CanonicalClub, q Query) []models.CanonicalClub {
	out := make([]models.CanonicalClub, 0, len(clubs))
	for _, club := range clubs {
		if Matches(club, q) {
			out = append(out, club)
		}
	}
	return out
}

// Matches reports whether a single club satisfies every part of the
// query.
func Matches(club models.CanonicalClub, q Query) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(club.Name), term) &&
			!strings.Contains(strings.ToLower(club.Description), term) &&
			!strings.Contains(strings.ToLower(club.Location), term) &&
			!strings.Contains(strings.ToLower(club.Suburb), term) {
			return false
		}
	}

	if len(q.States) > 0 && !contains(q.States, club.State) {
		return false
	}

	if len(q.MeetingDays) > 0 && !overlaps(club.RunDays, q.MeetingDays) {
		return false
	}

	if len(q.ClubTypes) > 0 && !contains(q.ClubTypes, club.ClubType) {
		return false
	}

	if len(q.Terrain) > 0 && !overlaps(club.Terrain, q.Terrain) {
		return false
	}

	if len(q.Extracurriculars) > 0 && !overlaps(club.Extracurriculars, q.Extracurriculars) {
		return false
	}

	if len(q.Cost) > 0 && !contains(q.Cost, club.IsPaid) {
		return false
	}

	if q.Bounds != nil && hasCoordinates(club) && !q.Bounds.Contains(club.Coordinates) {
		return false
	}

	return true
}

// Page is one slice of a filtered result set.
type Page struct {
	Items      []models.CanonicalClub `json:"items"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	Total      int                    `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

// Paginate slices an already-filtered, already-ordered list. Pages
// are 1-based; out-of-range pages come back empty rather than erroring
// so a stale page number never breaks the listing.
func Paginate(clubs []models.CanonicalClub, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(clubs)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      clubs[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// hasCoordinates treats the (0,0) null island pair as missing so that
// clubs persisted before coordinates were mandatory are never hidden
// by the map viewport.
func hasCoordinates(club models.CanonicalClub) bool {
	return club.Coordinates.Lat != 0 || club.Coordinates.Lng != 0
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func overlaps(values, set []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
