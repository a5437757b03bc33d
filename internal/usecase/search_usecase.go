package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"talent-search/internal/domain/candidate"
	"talent-search/internal/search"
)

type SearchType string

const (
	SearchTypeSmart          SearchType = "smart"
	SearchTypeJobDescription SearchType = "jd"
	SearchTypeManual         SearchType = "manual"
)

type SearchParams struct {
	Type           SearchType
	Query          string
	JobDescription string
	Filters        search.Filters

	Paginate bool
	Page     int
	PerPage  int
}

// SearchResult is either the bare ranked list or a single page of it.
type SearchResult struct {
	Items []candidate.Scored `json:"items"`
	Page  *search.Page       `json:"page,omitempty"`
}

type SearchUsecase interface {
	Search(ctx context.Context, params SearchParams) (SearchResult, error)
}

type Search struct {
	pool      *PoolCache
	cache     SearchCache
	resultTTL time.Duration
	logger    *log.Logger

	smart  search.Smart
	jd     search.JobDescription
	manual search.Manual
}

func NewSearchUsecase(store candidate.Store, pool *PoolCache, cache SearchCache, resultTTL time.Duration, logger *log.Logger) *Search {
	return &Search{
		pool:      pool,
		cache:     cache,
		resultTTL: resultTTL,
		logger:    logger,
		smart:     search.Smart{Store: store, Logger: logger},
		jd:        search.JobDescription{Store: store, Logger: logger},
		manual:    search.Manual{},
	}
}

func (u *Search) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	if err := validateSearchParams(params); err != nil {
		return SearchResult{}, err
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = SearchResultCacheKey(params)
		var cached SearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Search] cache HIT | key=%s", cacheKey)
			}
			return cached, nil
		}
	}

	pool := u.pool.Candidates(ctx)
	results := u.dispatch(ctx, pool, params)
	if results == nil {
		results = []candidate.Scored{}
	}

	out := SearchResult{Items: results}
	if params.Paginate {
		page := search.Paginate(results, params.Page, params.PerPage)
		out = SearchResult{Items: page.Items, Page: &page}
	}

	if u.cache != nil && cacheKey != "" {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.resultTTL)
	}
	return out, nil
}

// dispatch runs exactly one strategy. A panic inside a strategy is converted
// to an empty result set: prefer silence over noise.
func (u *Search) dispatch(ctx context.Context, pool []candidate.Candidate, params SearchParams) (results []candidate.Scored) {
	defer func() {
		if r := recover(); r != nil {
			if u.logger != nil {
				u.logger.Printf("[Search] strategy panicked, returning no results | type=%s panic=%v", params.Type, r)
			}
			results = []candidate.Scored{}
		}
	}()

	switch params.Type {
	case SearchTypeSmart:
		return u.smart.Search(ctx, pool, params.Query)
	case SearchTypeJobDescription:
		return u.jd.Search(ctx, pool, params.JobDescription)
	case SearchTypeManual:
		return u.manual.Search(pool, params.Filters)
	}
	return nil
}

func validateSearchParams(params SearchParams) error {
	switch params.Type {
	case SearchTypeSmart:
		if strings.TrimSpace(params.Query) == "" {
			return ErrQueryRequired
		}
	case SearchTypeJobDescription:
		if strings.TrimSpace(params.JobDescription) == "" {
			return ErrJobDescriptionRequired
		}
	case SearchTypeManual:
		if !hasKeyword(params.Filters.Keywords) {
			return ErrKeywordsRequired
		}
	default:
		return ErrInvalidSearchType
	}
	return nil
}

func hasKeyword(keywords []string) bool {
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			return true
		}
	}
	return false
}
