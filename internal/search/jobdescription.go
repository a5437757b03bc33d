package search

import (
	"context"
	"log"
	"strings"

	"talent-search/internal/domain/candidate"
)

// JobDescription matches candidates against the skill demands of a job
// description using the logistics vocabulary. An empty vocabulary
// intersection means "search broadly", never "match nothing".
type JobDescription struct {
	Store  candidate.Store
	Logger *log.Logger

	// Vocabulary overrides LogisticsSkills, mainly for tests.
	Vocabulary []string
}

func (s JobDescription) Search(ctx context.Context, pool []candidate.Candidate, text string) (out []candidate.Scored) {
	// Prefer no results over noisy ones when scoring itself blows up on
	// malformed candidate data.
	defer func() {
		if r := recover(); r != nil {
			if s.Logger != nil {
				s.Logger.Printf("[Search] job-description scoring panicked, returning no results | panic=%v", r)
			}
			out = []candidate.Scored{}
		}
	}()

	vocab := s.Vocabulary
	if len(vocab) == 0 {
		vocab = LogisticsSkills
	}

	matchedSkills := MatchVocabulary(text, vocab)
	skillsForSearch := matchedSkills
	if len(skillsForSearch) == 0 {
		skillsForSearch = vocab
	}

	keywords := matchedSkills
	if len(keywords) == 0 {
		keywords = skillsForSearch
	}

	out = remoteFirst(ctx, s.Logger, "skill",
		func(ctx context.Context) ([]candidate.Candidate, error) {
			return s.Store.SkillSearch(ctx, skillsForSearch)
		},
		func(found []candidate.Candidate) []candidate.Scored {
			return scoreSkillMatches(found, skillsForSearch, keywords)
		},
		func() []candidate.Scored {
			effective := strings.Join(skillsForSearch, " ")
			return scoreLocally(pool, QueryTerms(effective), keywords)
		},
	)
	if out == nil {
		out = []candidate.Scored{}
	}

	Sort(out)
	return out
}

func scoreSkillMatches(found []candidate.Candidate, skillsForSearch, keywords []string) []candidate.Scored {
	out := make([]candidate.Scored, 0, len(found))
	for _, c := range found {
		blob := c.SearchText()
		skillSet := c.SkillSet()

		hits := 0
		for _, skill := range skillsForSearch {
			lowered := strings.ToLower(skill)
			if containsSkill(skillSet, lowered) || strings.Contains(blob, lowered) {
				hits++
			}
		}

		cov := Coverage(hits, len(skillsForSearch), 1.0)
		out = append(out, candidate.Scored{
			Candidate:        c,
			RelevanceScore:   SkillRelevance(cov, hits),
			MatchPercentage:  MatchPercentage(cov),
			MatchingKeywords: keywords,
		})
	}
	return out
}

func containsSkill(skillSet []string, skill string) bool {
	for _, s := range skillSet {
		if strings.Contains(s, skill) {
			return true
		}
	}
	return false
}
