package search

import (
	"testing"

	"talent-search/internal/domain/candidate"
)

func scoredWith(name string, relevance float64, uploadedAt string) candidate.Scored {
	return candidate.Scored{
		Candidate:      candidate.Candidate{Name: name, UploadedAt: uploadedAt},
		RelevanceScore: relevance,
	}
}

func TestSort_RelevanceDescending(t *testing.T) {
	results := []candidate.Scored{
		scoredWith("low", 0.5, "2024-01-01T00:00:00Z"),
		scoredWith("high", 0.95, "2024-01-01T00:00:00Z"),
		scoredWith("mid", 0.7, "2024-01-01T00:00:00Z"),
	}

	Sort(results)

	want := []string{"high", "mid", "low"}
	for i, name := range want {
		if results[i].Name != name {
			t.Fatalf("position %d: got %s, want %s", i, results[i].Name, name)
		}
	}
}

func TestSort_TieBreaksOnRecency(t *testing.T) {
	results := []candidate.Scored{
		scoredWith("older", 0.6, "2024-01-01T00:00:00Z"),
		scoredWith("newer", 0.6, "2024-06-01T00:00:00Z"),
	}

	Sort(results)

	if results[0].Name != "newer" {
		t.Fatalf("expected newer upload first, got %s", results[0].Name)
	}
}

func TestSort_UnparsableTimestampSortsLast(t *testing.T) {
	results := []candidate.Scored{
		scoredWith("garbage", 0.6, "not a timestamp"),
		scoredWith("dated", 0.6, "2020-03-15"),
	}

	Sort(results)

	if results[0].Name != "dated" {
		t.Fatalf("candidate with valid timestamp should sort first, got %s", results[0].Name)
	}
}

func TestSort_Idempotent(t *testing.T) {
	results := []candidate.Scored{
		scoredWith("a", 0.6, "2024-02-01T00:00:00Z"),
		scoredWith("b", 0.9, "2024-01-01T00:00:00Z"),
		scoredWith("c", 0.6, "2024-03-01T00:00:00Z"),
	}

	Sort(results)
	first := make([]string, len(results))
	for i, r := range results {
		first[i] = r.Name
	}

	Sort(results)
	for i, r := range results {
		if r.Name != first[i] {
			t.Fatalf("second sort reordered results at %d: %s vs %s", i, r.Name, first[i])
		}
	}
}
