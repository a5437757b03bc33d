package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-search/internal/domain/candidate"
	"talent-search/internal/search"
)

type mockStore struct {
	fetchAll   []candidate.Candidate
	fetchErr   error
	fetchCalls int

	fullTextResults []candidate.Candidate
	fullTextErr     error

	skillResults []candidate.Candidate
	skillErr     error
}

func (m *mockStore) FetchAll(context.Context) ([]candidate.Candidate, error) {
	m.fetchCalls++
	return m.fetchAll, m.fetchErr
}

func (m *mockStore) FullTextSearch(context.Context, string) ([]candidate.Candidate, error) {
	return m.fullTextResults, m.fullTextErr
}

func (m *mockStore) SkillSearch(context.Context, []string) ([]candidate.Candidate, error) {
	return m.skillResults, m.skillErr
}

func newTestUsecase(store *mockStore) *Search {
	pool := NewPoolCache(store, time.Minute, nil)
	return NewSearchUsecase(store, pool, nil, 30*time.Second, nil)
}

func TestSearch_ValidationErrors(t *testing.T) {
	uc := newTestUsecase(&mockStore{})

	cases := []struct {
		name   string
		params SearchParams
		want   error
	}{
		{"smart without query", SearchParams{Type: SearchTypeSmart}, ErrQueryRequired},
		{"jd without text", SearchParams{Type: SearchTypeJobDescription}, ErrJobDescriptionRequired},
		{"manual without keywords", SearchParams{Type: SearchTypeManual}, ErrKeywordsRequired},
		{"manual with blank keywords", SearchParams{Type: SearchTypeManual, Filters: search.Filters{Keywords: []string{"  "}}}, ErrKeywordsRequired},
		{"unknown type", SearchParams{Type: "fuzzy"}, ErrInvalidSearchType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Search(context.Background(), tc.params)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSearch_ManualDispatch(t *testing.T) {
	store := &mockStore{
		fetchAll: []candidate.Candidate{
			{Name: "A", CurrentRole: "Truck Driver", UploadedAt: "2024-01-01T00:00:00Z"},
			{Name: "B", CurrentRole: "Warehouse Manager", UploadedAt: "2024-06-01T00:00:00Z"},
		},
	}
	uc := newTestUsecase(store)

	res, err := uc.Search(context.Background(), SearchParams{
		Type:    SearchTypeManual,
		Filters: search.Filters{Keywords: []string{"driver"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Page != nil {
		t.Fatalf("unpaginated search must not carry a page")
	}
	if len(res.Items) != 1 || res.Items[0].Name != "A" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Items[0].RelevanceScore != 0.6 {
		t.Fatalf("manual relevance must be 0.6, got %v", res.Items[0].RelevanceScore)
	}
}

func TestSearch_PaginatedResponse(t *testing.T) {
	pool := make([]candidate.Candidate, 0, 25)
	for i := 0; i < 25; i++ {
		pool = append(pool, candidate.Candidate{
			Name:        "c",
			CurrentRole: "Dispatcher",
		})
	}
	store := &mockStore{fetchAll: pool, fullTextErr: errors.New("down")}
	uc := newTestUsecase(store)

	res, err := uc.Search(context.Background(), SearchParams{
		Type:     SearchTypeSmart,
		Query:    "dispatcher",
		Paginate: true,
		Page:     3,
		PerPage:  10,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Page == nil {
		t.Fatalf("expected a page")
	}
	if res.Page.Total != 25 || res.Page.Page != 3 || len(res.Page.Items) != 5 {
		t.Fatalf("unexpected page: total=%d page=%d items=%d", res.Page.Total, res.Page.Page, len(res.Page.Items))
	}
}

func TestSearch_FailedRefreshDegradesToEmpty(t *testing.T) {
	store := &mockStore{fetchErr: errors.New("store down")}
	uc := newTestUsecase(store)

	res, err := uc.Search(context.Background(), SearchParams{
		Type:    SearchTypeManual,
		Filters: search.Filters{Keywords: []string{"driver"}},
	})
	if err != nil {
		t.Fatalf("refresh failure must not surface, got %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %v", res.Items)
	}
}
