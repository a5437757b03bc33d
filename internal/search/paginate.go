package search

import "talent-search/internal/domain/candidate"

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type Page struct {
	Items   []candidate.Scored `json:"items"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"perPage"`
}

// Paginate slices results deterministically. The page number is clamped to
// [1, ceil(total/perPage)] with a minimum of one page even when empty.
func Paginate(results []candidate.Scored, page, perPage int) Page {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total := len(results)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	items := results[start:end]
	if items == nil {
		items = []candidate.Scored{}
	}

	return Page{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
}
