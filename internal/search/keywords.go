package search

import "strings"

// stopWords are articles, prepositions and generic verbs that carry no search
// signal in a query or job description.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "into": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "are": {}, "was": {},
	"were": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "can": {}, "may": {},
	"must": {}, "shall": {}, "does": {}, "did": {}, "doing": {}, "about": {},
	"above": {}, "after": {}, "before": {}, "between": {}, "during": {},
	"under": {}, "over": {}, "within": {}, "without": {}, "their": {},
	"there": {}, "where": {}, "which": {}, "while": {}, "who": {}, "whom": {},
	"what": {}, "when": {}, "how": {}, "all": {}, "any": {}, "both": {},
	"each": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"not": {}, "only": {}, "than": {}, "then": {}, "too": {}, "very": {},
	"just": {}, "also": {}, "our": {}, "your": {}, "you": {}, "they": {},
	"them": {}, "looking": {}, "seeking": {}, "want": {}, "wanted": {},
	"need": {}, "needed": {}, "required": {}, "responsible": {},
}

// ExtractKeywords reduces free text to meaningful lowercased search terms in
// first-seen order. Tokens of length <= 2 and stop words are dropped.
func ExtractKeywords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for _, tok := range fields {
		tok = strings.Trim(tok, ".,;:!?()[]{}\"'")
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// QueryTerms extracts keywords from a query and falls back to the raw query
// as a single term when extraction yields nothing. Every text-based caller
// must go through this fallback.
func QueryTerms(query string) []string {
	terms := ExtractKeywords(query)
	if len(terms) == 0 {
		return []string{query}
	}
	return terms
}
