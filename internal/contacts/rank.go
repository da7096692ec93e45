package contacts

import (
	"sort"
	"strings"
)

// DefaultMinScore keeps only contacts with at least some title signal.
const DefaultMinScore = 1

// Rank scores every contact from scratch (any incoming Score is
// discarded), drops those under minScore, deduplicates by lowercase
// email keeping the first occurrence, sorts descending by score with
// the original order as the tie break and returns at most topN entries.
func Rank(list []*Contact, topN, minScore int) []*Contact {
	ranked := make([]*Contact, 0, len(list))
	seen := make(map[string]struct{})

	for _, c := range list {
		email := strings.TrimSpace(c.Email)
		if email == "" {
			continue
		}

		score := ScoreTitle(c.Title) + emailAliasBonus(email)
		if score < minScore {
			continue
		}

		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		ranked = append(ranked, &Contact{
			Name:   c.Name,
			Title:  c.Title,
			Email:  email,
			Source: c.Source,
			Score:  score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
