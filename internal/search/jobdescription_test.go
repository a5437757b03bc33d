package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"talent-search/internal/domain/candidate"
)

var testVocab = []string{"logistics", "fleet management", "dispatch"}

func TestJobDescription_VocabularyIntersection(t *testing.T) {
	store := &mockStore{
		skillResults: []candidate.Candidate{
			{Name: "c", TechnicalSkills: []string{"Logistics"}},
		},
	}
	jd := JobDescription{Store: store, Vocabulary: testVocab}

	results := jd.Search(context.Background(), nil, "We need logistics and dispatch expertise")

	if !reflect.DeepEqual(store.skillsSeen, []string{"logistics", "dispatch"}) {
		t.Fatalf("expected matched skills sent to store, got %v", store.skillsSeen)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	// 1 of 2 searched skills present, +0.02 hit boost.
	if !approxEqual(r.RelevanceScore, 0.52) {
		t.Fatalf("got relevance %v, want 0.52", r.RelevanceScore)
	}
	if r.MatchPercentage != 50 {
		t.Fatalf("got %d%%, want 50", r.MatchPercentage)
	}
	if !reflect.DeepEqual(r.MatchingKeywords, []string{"logistics", "dispatch"}) {
		t.Fatalf("unexpected matching keywords: %v", r.MatchingKeywords)
	}
}

func TestJobDescription_ZeroHitsSearchesBroadly(t *testing.T) {
	store := &mockStore{skillErr: errors.New("down")}
	jd := JobDescription{Store: store, Vocabulary: testVocab}

	jd.Search(context.Background(), nil, "completely unrelated text")

	if !reflect.DeepEqual(store.skillsSeen, testVocab) {
		t.Fatalf("zero vocabulary hits must search the full vocabulary, got %v", store.skillsSeen)
	}
}

func TestJobDescription_LocalFallback(t *testing.T) {
	store := &mockStore{skillErr: errors.New("down")}
	pool := []candidate.Candidate{
		{Name: "local", ResumeText: "dispatch and logistics coordinator"},
	}
	jd := JobDescription{Store: store, Vocabulary: testVocab}

	results := jd.Search(context.Background(), pool, "looking for dispatch help")

	if len(results) != 1 {
		t.Fatalf("expected 1 result from local fallback, got %d", len(results))
	}
	if !reflect.DeepEqual(results[0].MatchingKeywords, []string{"dispatch"}) {
		t.Fatalf("fallback must preserve the matched-skill keywords, got %v", results[0].MatchingKeywords)
	}
	if results[0].RelevanceScore < 0.5 || results[0].RelevanceScore > 0.95 {
		t.Fatalf("fallback uses the smart scoring band, got %v", results[0].RelevanceScore)
	}
}

func TestJobDescription_TotalFailureReturnsEmpty(t *testing.T) {
	store := &mockStore{skillErr: errors.New("down")}
	jd := JobDescription{Store: store, Vocabulary: testVocab}

	results := jd.Search(context.Background(), nil, "anything")

	if results == nil {
		t.Fatalf("results must be an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Fatalf("empty pool and dead store should yield no results, got %d", len(results))
	}
}

func TestJobDescription_SkillHitsCountBlobToo(t *testing.T) {
	store := &mockStore{
		skillResults: []candidate.Candidate{
			{Name: "blob-only", ResumeText: "ran fleet management for a 3pl"},
		},
	}
	jd := JobDescription{Store: store, Vocabulary: testVocab}

	results := jd.Search(context.Background(), nil, "fleet management role")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// Single searched skill found in the resume blob: full coverage.
	if results[0].MatchPercentage != 100 {
		t.Fatalf("got %d%%, want 100", results[0].MatchPercentage)
	}
}

func TestMatchVocabulary_Order(t *testing.T) {
	got := MatchVocabulary("Dispatch first, then LOGISTICS", testVocab)
	if !reflect.DeepEqual(got, []string{"logistics", "dispatch"}) {
		t.Fatalf("matches must follow vocabulary order, got %v", got)
	}
}
