package search

import (
	"testing"

	"talent-search/internal/domain/candidate"
)

func intPtr(v int) *int { return &v }

func TestManual_KeywordFilter(t *testing.T) {
	pool := []candidate.Candidate{
		{Name: "A", CurrentRole: "Truck Driver", UploadedAt: "2024-01-01T00:00:00Z"},
		{Name: "B", CurrentRole: "Warehouse Manager", UploadedAt: "2024-06-01T00:00:00Z"},
	}

	results := Manual{}.Search(pool, Filters{Keywords: []string{"Driver"}})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "A" {
		t.Fatalf("expected candidate A, got %s", results[0].Name)
	}
	if results[0].RelevanceScore != ManualScore {
		t.Fatalf("manual relevance must be %v, got %v", ManualScore, results[0].RelevanceScore)
	}
	if len(results[0].MatchingKeywords) != 1 || results[0].MatchingKeywords[0] != "driver" {
		t.Fatalf("unexpected matching keywords: %v", results[0].MatchingKeywords)
	}
}

func TestManual_AllPredicatesMustHold(t *testing.T) {
	pool := []candidate.Candidate{
		{
			Name:            "fit",
			CurrentRole:     "Fleet Supervisor",
			Location:        "Chicago, IL",
			Qualification:   "B.Sc Logistics",
			TotalExperience: "7 years in transportation",
			UploadedAt:      "2024-01-01T00:00:00Z",
		},
		{
			Name:            "wrong city",
			CurrentRole:     "Fleet Supervisor",
			Location:        "Denver, CO",
			Qualification:   "B.Sc Logistics",
			TotalExperience: "7 years in transportation",
		},
		{
			Name:            "too junior",
			CurrentRole:     "Fleet Supervisor",
			Location:        "Chicago, IL",
			Qualification:   "B.Sc Logistics",
			TotalExperience: "2 years in transportation",
		},
	}

	f := Filters{
		Keywords:      []string{"fleet"},
		Location:      "chicago",
		Education:     "b.sc",
		MinExperience: intPtr(5),
		MaxExperience: intPtr(10),
	}

	results := Manual{}.Search(pool, f)

	if len(results) != 1 || results[0].Name != "fit" {
		t.Fatalf("expected only the fitting candidate, got %d results", len(results))
	}
}

func TestManual_OrdersByRecency(t *testing.T) {
	pool := []candidate.Candidate{
		{Name: "old", CurrentRole: "Dispatcher", UploadedAt: "2023-01-01T00:00:00Z"},
		{Name: "new", CurrentRole: "Dispatcher", UploadedAt: "2024-01-01T00:00:00Z"},
	}

	results := Manual{}.Search(pool, Filters{Keywords: []string{"dispatcher"}})

	if len(results) != 2 || results[0].Name != "new" {
		t.Fatalf("expected most recent first, got %+v", results)
	}
}

func TestExperienceYears(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"7 years in logistics", 7},
		{"12 Years experience", 12},
		{"1 year", 1},
		{"over 5 years, mostly warehousing; 2 years abroad", 5},
		{"fresh graduate", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ExperienceYears(tc.raw); got != tc.want {
			t.Fatalf("ExperienceYears(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
