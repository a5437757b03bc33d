package search

import (
	"context"
	"log"
	"strings"

	"talent-search/internal/domain/candidate"
)

// Smart ranks candidates against a free-text query: extracted keywords drive
// a full-text search against the store, with local blob scoring as fallback.
type Smart struct {
	Store  candidate.Store
	Logger *log.Logger
}

func (s Smart) Search(ctx context.Context, pool []candidate.Candidate, query string) []candidate.Scored {
	terms := QueryTerms(query)
	processed := strings.Join(terms, " ")

	results := remoteFirst(ctx, s.Logger, "full-text",
		func(ctx context.Context) ([]candidate.Candidate, error) {
			return s.Store.FullTextSearch(ctx, processed)
		},
		func(found []candidate.Candidate) []candidate.Scored {
			return scoreSmartMatches(found, terms, query)
		},
		func() []candidate.Scored {
			return scoreLocally(pool, terms, terms)
		},
	)

	Sort(results)
	return results
}

func scoreSmartMatches(found []candidate.Candidate, terms []string, query string) []candidate.Scored {
	out := make([]candidate.Scored, 0, len(found))
	for _, c := range found {
		blob := c.SearchText()
		matched := matchedTerms(terms, blob)
		cov := Coverage(len(matched), len(terms), DefaultCoverage)

		keywords := matched
		if len(keywords) == 0 {
			keywords = terms
		}
		if len(keywords) == 0 {
			keywords = []string{query}
		}

		out = append(out, candidate.Scored{
			Candidate:        c,
			RelevanceScore:   SmartRelevance(cov),
			MatchPercentage:  MatchPercentage(cov),
			MatchingKeywords: keywords,
		})
	}
	return out
}
