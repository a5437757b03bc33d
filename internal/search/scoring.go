package search

import "math"

const (
	// A keyword-only match is never fully certain and never fully zero, so
	// the smart strategy scores inside an asymmetric band.
	smartScoreFloor = 0.5
	smartScoreCeil  = 0.95
	smartBoost      = 0.3

	// DefaultCoverage is the smart strategy's coverage when no terms exist.
	DefaultCoverage = 0.6

	// ManualScore is the flat relevance of every manually filtered candidate;
	// manual search filters, it does not rank by quality.
	ManualScore = 0.6

	hitBoostStep = 0.02
	hitBoostCap  = 0.15
)

// Coverage is the fraction of terms found, or def when there are no terms.
func Coverage(matched, total int, def float64) float64 {
	if total <= 0 {
		return def
	}
	return float64(matched) / float64(total)
}

// SmartRelevance maps coverage into the smart strategy's [0.5, 0.95] band.
func SmartRelevance(coverage float64) float64 {
	return clamp(coverage+smartBoost, smartScoreFloor, smartScoreCeil)
}

// HitBoost is a small bonus for absolute skill hits, capped so it cannot
// dominate the coverage term.
func HitBoost(hits int) float64 {
	return math.Min(hitBoostCap, float64(hits)*hitBoostStep)
}

// SkillRelevance uses the full [0, 1] range; a skill intersection is a
// stronger signal than keyword containment.
func SkillRelevance(coverage float64, hits int) float64 {
	return clamp(coverage+HitBoost(hits), 0, 1)
}

// MatchPercentage is the human-facing 0-100 integer derived from coverage.
func MatchPercentage(coverage float64) int {
	return int(math.Round(clamp(coverage, 0, 1) * 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
