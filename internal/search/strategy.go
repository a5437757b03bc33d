package search

import (
	"context"
	"log"
	"strings"

	"talent-search/internal/domain/candidate"
)

// Filters are the structured constraints of a manual search.
type Filters struct {
	Keywords      []string
	Location      string
	MinExperience *int
	MaxExperience *int
	Education     string
}

// remoteFirst attempts the remote search and degrades to the local scoring
// path when the call errors or returns nothing. The single fallback step is
// the entire resilience mechanism; there are no retries.
func remoteFirst(
	ctx context.Context,
	logger *log.Logger,
	name string,
	remote func(context.Context) ([]candidate.Candidate, error),
	score func([]candidate.Candidate) []candidate.Scored,
	fallback func() []candidate.Scored,
) []candidate.Scored {
	found, err := remote(ctx)
	if err != nil {
		if logger != nil {
			logger.Printf("[Search] remote %s search failed, using local fallback | error=%v", name, err)
		}
		return fallback()
	}
	if len(found) == 0 {
		return fallback()
	}
	return score(found)
}

// scoreLocally runs the blob-substring technique over the candidate pool.
// Every candidate is scored; keywords is the matchingKeywords value assigned
// to all of them.
func scoreLocally(pool []candidate.Candidate, terms []string, keywords []string) []candidate.Scored {
	out := make([]candidate.Scored, 0, len(pool))
	for _, c := range pool {
		blob := c.SearchText()
		matched := matchedTerms(terms, blob)
		cov := Coverage(len(matched), len(terms), DefaultCoverage)
		out = append(out, candidate.Scored{
			Candidate:        c,
			RelevanceScore:   SmartRelevance(cov),
			MatchPercentage:  MatchPercentage(cov),
			MatchingKeywords: keywords,
		})
	}
	return out
}

func matchedTerms(terms []string, blob string) []string {
	matched := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.Contains(blob, strings.ToLower(t)) {
			matched = append(matched, t)
		}
	}
	return matched
}
