package keyword

import (
	"sort"
	"strings"
)

// MatchResult holds the per-page outcome of a keyword scan.
type MatchResult struct {
	Matched  []string
	Excluded []string
}

// Match scans text for the include and exclude keyword lists. A keyword
// counts as matched when it occurs verbatim in the normalized text, or
// when the longest contiguous run shared by keyword and text covers at
// least ratio of the keyword length. The exclude list goes through the
// same dual logic. Both result slices are sorted.
func Match(text string, include, exclude []string, ratio float64) MatchResult {
	t := Normalize(text)

	return MatchResult{
		Matched:  hits(t, include, ratio),
		Excluded: hits(t, exclude, ratio),
	}
}

func hits(text string, keywords []string, ratio float64) []string {
	seen := make(map[string]struct{})
	for _, k := range keywords {
		k = Normalize(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		if contains(text, k, ratio) {
			seen[k] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func contains(text, keyword string, ratio float64) bool {
	if strings.Contains(text, keyword) {
		return true
	}
	// Fuzzy fallback catches near-misses such as hyphenation variants
	// without a full edit-distance pass.
	run := longestCommonRun(keyword, text)
	return float64(run) >= ratio*float64(len(keyword))
}

// longestCommonRun returns the length of the longest contiguous
// substring shared by a and b. Rolling single-row DP keeps memory at
// O(len(b)).
func longestCommonRun(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return best
}
