package candidate

import "context"

// Store is the upstream candidate source. Remote search calls are fallible by
// contract; callers fall back to local scoring on error or empty results.
type Store interface {
	FetchAll(ctx context.Context) ([]Candidate, error)
	FullTextSearch(ctx context.Context, query string) ([]Candidate, error)
	SkillSearch(ctx context.Context, skills []string) ([]Candidate, error)
}
