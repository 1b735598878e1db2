package search

import (
	"reflect"
	"testing"

	"github.com/runhub/directory-api/internal/models"
)

func testClubs() []models.CanonicalClub {
	return []models.CanonicalClub{
		{
			ID: "1", Name: "Bondi Beach Runners", Description: "Social beach runs",
			Location: "Bondi, NSW", Suburb: "Bondi", State: "NSW",
			Coordinates: models.Coordinates{Lat: -33.8908, Lng: 151.2743},
			RunDays:     []string{"saturday"},
			ClubType:    "everyone", IsPaid: "free",
			Terrain:          []string{"road", "sand"},
			Extracurriculars: []string{"coffee"},
		},
		{
			ID: "2", Name: "Yarra Trail Harriers", Description: "Trail miles along the river",
			Location: "Abbotsford, VIC", Suburb: "Abbotsford", State: "VIC",
			Coordinates: models.Coordinates{Lat: -37.8025, Lng: 145.0010},
			RunDays:     []string{"wednesday", "sunday"},
			ClubType:    "everyone", IsPaid: "paid",
			Terrain:          []string{"trail"},
			Extracurriculars: []string{"brunch"},
		},
		{
			ID: "3", Name: "Perth Pacers", Description: "Fast track intervals",
			Location: "Perth, WA", Suburb: "Perth", State: "WA",
			RunDays:  []string{"tuesday"},
			ClubType: "women-only", IsPaid: "free",
			Terrain: []string{"track"},
		},
	}
}

func ids(clubs []models.CanonicalClub) []string {
	out := make([]string, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	clubs := testClubs()
	got := Filter(clubs, Query{})
	if !reflect.DeepEqual(got, clubs) {
		t.Error("empty query should return every club in input order")
	}
}

func TestFilterFreeText(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"matches name", "bondi", []string{"1"}},
		{"matches description", "river", []string{"2"}},
		{"matches suburb", "perth", []string{"3"}},
		{"matches location string", "vic", []string{"2"}},
		{"case-insensitive", "BONDI", []string{"1"}},
		{"no match", "canberra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testClubs(), Query{Search: tt.search}))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Filter(search=%q) = %v, want %v", tt.search, got, tt.expected)
			}
		})
	}
}

func TestFilterCategories(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{"single state", Query{States: []string{"NSW"}}, []string{"1"}},
		{"multiple states OR together", Query{States: []string{"NSW", "WA"}}, []string{"1", "3"}},
		{"meeting day overlaps run days", Query{MeetingDays: []string{"sunday"}}, []string{"2"}},
		{"club type", Query{ClubTypes: []string{"women-only"}}, []string{"3"}},
		{"terrain any-element match", Query{Terrain: []string{"sand", "trail"}}, []string{"1", "2"}},
		{"extracurricular", Query{Extracurriculars: []string{"coffee"}}, []string{"1"}},
		{"cost", Query{Cost: []string{"paid"}}, []string{"2"}},
		{"categories AND together", Query{States: []string{"NSW", "VIC"}, Cost: []string{"paid"}}, []string{"2"}},
		{"junk value matches nothing", Query{States: []string{"??"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testClubs(), tt.query))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Filter() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFilterBounds(t *testing.T) {
	sydney := &Bounds{North: -33.0, South: -34.5, East: 152.0, West: 150.5}

	tests := []struct {
		name     string
		bounds   *Bounds
		expected []string
	}{
		{"no bounds includes all", nil, []string{"1", "2", "3"}},
		// club 2 is outside on latitude, club 3 has no coordinates and
		// is never excluded by the viewport
		{"sydney viewport", sydney, []string{"1", "3"}},
		{"viewport excluding everything still keeps coordinate-less club", &Bounds{North: 1, South: 0, East: 1, West: 0}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testClubs(), Query{Bounds: tt.bounds}))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Filter(bounds) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{North: 10, South: -10, East: 20, West: -20}

	tests := []struct {
		name     string
		coord    models.Coordinates
		expected bool
	}{
		{"strictly inside", models.Coordinates{Lat: 5, Lng: 5}, true},
		{"on the north edge", models.Coordinates{Lat: 10, Lng: 0}, true},
		{"outside north", models.Coordinates{Lat: 11, Lng: 0}, false},
		{"outside west", models.Coordinates{Lat: 0, Lng: -21}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.coord); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.coord, got, tt.expected)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	clubs := testClubs()

	tests := []struct {
		name       string
		page       int
		perPage    int
		wantIDs    []string
		wantTotal  int
		wantPages  int
		wantPageNo int
	}{
		{"first page", 1, 2, []string{"1", "2"}, 3, 2, 1},
		{"second page partial", 2, 2, []string{"3"}, 3, 2, 2},
		{"page past the end is empty", 5, 2, []string{}, 3, 2, 5},
		{"zero page clamps to one", 0, 2, []string{"1", "2"}, 3, 2, 1},
		{"zero per page clamps to one", 1, 0, []string{"1"}, 3, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(clubs, tt.page, tt.perPage)
			if !reflect.DeepEqual(ids(got.Items), tt.wantIDs) {
				t.Errorf("items = %v, want %v", ids(got.Items), tt.wantIDs)
			}
			if got.Total != tt.wantTotal || got.TotalPages != tt.wantPages || got.Page != tt.wantPageNo {
				t.Errorf("page meta = (%d,%d,%d), want (%d,%d,%d)",
					got.Page, got.Total, got.TotalPages, tt.wantPageNo, tt.wantTotal, tt.wantPages)
			}
		})
	}
}
