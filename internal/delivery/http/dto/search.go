package dto

import "talent-search/internal/domain/candidate"

type SearchRequest struct {
	SearchType     string        `json:"searchType"`
	Query          string        `json:"query"`
	JobDescription string        `json:"jobDescription"`
	Filters        SearchFilters `json:"filters"`

	Paginate bool `json:"paginate"`
	Page     int  `json:"page"`
	PerPage  int  `json:"perPage"`
}

type SearchFilters struct {
	Keywords      []string `json:"keywords"`
	Location      string   `json:"location"`
	MinExperience *int     `json:"minExperience"`
	MaxExperience *int     `json:"maxExperience"`
	Education     string   `json:"education"`
}

type PagedSearchResponse struct {
	Items   []candidate.Scored `json:"items"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"perPage"`
}
