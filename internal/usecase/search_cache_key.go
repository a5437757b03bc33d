package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type searchCacheKeyInput struct {
	Type           string   `json:"type"`
	Query          string   `json:"query"`
	JobDescription string   `json:"job_description"`
	Keywords       []string `json:"keywords"`
	Location       string   `json:"location"`
	Education      string   `json:"education"`
	MinExperience  *int     `json:"min_experience"`
	MaxExperience  *int     `json:"max_experience"`
	Paginate       bool     `json:"paginate"`
	Page           int      `json:"page"`
	PerPage        int      `json:"per_page"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// SearchResultCacheKey derives a stable cache key from the normalized request
// so whitespace and casing variants share an entry.
func SearchResultCacheKey(params SearchParams) string {
	keywords := make([]string, 0, len(params.Filters.Keywords))
	for _, k := range params.Filters.Keywords {
		k = normalizeSearchValue(k)
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
	}

	in := searchCacheKeyInput{
		Type:           string(params.Type),
		Query:          normalizeSearchValue(params.Query),
		JobDescription: normalizeSearchValue(params.JobDescription),
		Keywords:       keywords,
		Location:       normalizeSearchValue(params.Filters.Location),
		Education:      normalizeSearchValue(params.Filters.Education),
		MinExperience:  params.Filters.MinExperience,
		MaxExperience:  params.Filters.MaxExperience,
		Paginate:       params.Paginate,
		Page:           params.Page,
		PerPage:        params.PerPage,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "search:results:" + hex.EncodeToString(sum[:])
}
