package search

import (
	"sort"
	"time"

	"talent-search/internal/domain/candidate"
)

var uploadedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Sort orders results by relevance descending, most recent upload first on
// ties. Unparsable or missing timestamps sort as epoch zero, after every
// candidate with a valid timestamp.
func Sort(results []candidate.Scored) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return uploadedTime(results[i].UploadedAt).After(uploadedTime(results[j].UploadedAt))
	})
}

func uploadedTime(raw string) time.Time {
	for _, layout := range uploadedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
