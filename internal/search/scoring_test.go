package search

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCoverage(t *testing.T) {
	if got := Coverage(2, 4, 0); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
	if got := Coverage(3, 0, DefaultCoverage); got != DefaultCoverage {
		t.Fatalf("zero total should return default, got %v", got)
	}
}

func TestSmartRelevance_Band(t *testing.T) {
	if got := SmartRelevance(1.0); got != 0.95 {
		t.Fatalf("full coverage should hit ceiling, got %v", got)
	}
	if got := SmartRelevance(0); got != 0.5 {
		t.Fatalf("zero coverage should hit floor, got %v", got)
	}
	if got := SmartRelevance(0.5); !approxEqual(got, 0.8) {
		t.Fatalf("got %v, want 0.8", got)
	}
}

func TestHitBoost_Capped(t *testing.T) {
	if got := HitBoost(3); !approxEqual(got, 0.06) {
		t.Fatalf("got %v, want 0.06", got)
	}
	if got := HitBoost(50); !approxEqual(got, 0.15) {
		t.Fatalf("boost must cap at 0.15, got %v", got)
	}
}

func TestSkillRelevance_FullRange(t *testing.T) {
	if got := SkillRelevance(0, 0); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := SkillRelevance(1.0, 50); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
	if got := SkillRelevance(0.5, 2); !approxEqual(got, 0.54) {
		t.Fatalf("got %v, want 0.54", got)
	}
}

func TestMatchPercentage(t *testing.T) {
	cases := []struct {
		coverage float64
		want     int
	}{
		{0, 0},
		{0.5, 50},
		{0.666, 67},
		{1.0, 100},
		{1.5, 100},
		{-0.2, 0},
	}
	for _, tc := range cases {
		if got := MatchPercentage(tc.coverage); got != tc.want {
			t.Fatalf("MatchPercentage(%v) = %d, want %d", tc.coverage, got, tc.want)
		}
	}
}
