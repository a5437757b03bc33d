package search

import "strings"

// LogisticsSkills is the domain vocabulary the job-description strategy
// intersects against. Configuration data, not logic.
var LogisticsSkills = []string{
	"supply chain",
	"logistics",
	"warehouse management",
	"inventory management",
	"fleet management",
	"transportation",
	"freight forwarding",
	"customs clearance",
	"route planning",
	"dispatch",
	"procurement",
	"demand planning",
	"vendor management",
	"order fulfillment",
	"last mile delivery",
	"cold chain",
	"import export",
	"shipping",
	"distribution",
	"load planning",
	"forklift",
	"3pl",
	"erp",
	"sap",
	"wms",
	"tms",
	"hazmat",
	"dot compliance",
}

// MatchVocabulary returns the vocabulary skills contained in text, in
// vocabulary order. Matching is lowercased substring containment.
func MatchVocabulary(text string, vocab []string) []string {
	lowered := strings.ToLower(text)
	out := make([]string, 0, len(vocab))
	for _, skill := range vocab {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			out = append(out, skill)
		}
	}
	return out
}
