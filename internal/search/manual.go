package search

import (
	"regexp"
	"strconv"
	"strings"

	"talent-search/internal/domain/candidate"
)

// Manual filters the pool by structured criteria. Survivors all carry the
// same flat relevance, so the effective order is recency among matches.
type Manual struct{}

var experiencePattern = regexp.MustCompile(`(\d+)\s*year`)

func (Manual) Search(pool []candidate.Candidate, f Filters) []candidate.Scored {
	keywords := make([]string, 0, len(f.Keywords))
	for _, k := range f.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
	}

	out := make([]candidate.Scored, 0, len(pool))
	for _, c := range pool {
		if !matchesKeywords(c, keywords) {
			continue
		}
		if !matchesLocation(c, f.Location) {
			continue
		}
		if !matchesEducation(c, f.Education) {
			continue
		}
		if !matchesExperience(c, f.MinExperience, f.MaxExperience) {
			continue
		}
		out = append(out, candidate.Scored{
			Candidate:        c,
			RelevanceScore:   ManualScore,
			MatchPercentage:  MatchPercentage(ManualScore),
			MatchingKeywords: keywords,
		})
	}

	Sort(out)
	return out
}

func matchesKeywords(c candidate.Candidate, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	blob := c.SearchText()
	for _, k := range keywords {
		if strings.Contains(blob, k) {
			return true
		}
	}
	return false
}

func matchesLocation(c candidate.Candidate, location string) bool {
	location = strings.TrimSpace(location)
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Location), strings.ToLower(location))
}

func matchesEducation(c candidate.Candidate, education string) bool {
	education = strings.TrimSpace(education)
	if education == "" {
		return true
	}
	lowered := strings.ToLower(education)
	return strings.Contains(strings.ToLower(c.Qualification), lowered) ||
		strings.Contains(strings.ToLower(c.Degree), lowered)
}

func matchesExperience(c candidate.Candidate, minExp, maxExp *int) bool {
	if minExp == nil && maxExp == nil {
		return true
	}
	years := ExperienceYears(c.TotalExperience)
	if minExp != nil && years < *minExp {
		return false
	}
	if maxExp != nil && years > *maxExp {
		return false
	}
	return true
}

// ExperienceYears parses a free-text experience field like "5 years in
// warehousing" by taking the first integer that precedes the word "year".
// Text with no such pattern counts as zero years.
func ExperienceYears(raw string) int {
	m := experiencePattern.FindStringSubmatch(strings.ToLower(raw))
	if len(m) < 2 {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}
