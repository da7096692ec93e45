package keyword

import (
	"sort"
	"strings"
)

const (
	// DefaultFuzzyRatio is the minimal longest-common-run share of the
	// keyword length for a fuzzy hit.
	DefaultFuzzyRatio = 0.75
	// DefaultSnippetRadius is the context window kept on each side of a
	// matched keyword in evidence snippets.
	DefaultSnippetRadius = 80
	// DefaultThreshold is the minimal score for a positive business flag.
	DefaultThreshold = 10

	matchPoints     = 10
	excludePenalty  = 5
	maxEvidence     = 5
	fallbackSnippet = 160
	snippetEllipsis = "..."
)

// Page is an already fetched and text-extracted web page.
type Page struct {
	URL  string
	Text string
}

// Evidence justifies a score contribution: where it was found, a short
// context window and which keywords were new on that page.
type Evidence struct {
	URL      string   `json:"url"`
	Snippet  string   `json:"snippet"`
	Keywords []string `json:"keywords"`
}

// Relevance is the aggregated outcome over a page sequence.
type Relevance struct {
	Score    int        `json:"score"`
	Evidence []Evidence `json:"evidence"`
	Matched  []string   `json:"matched_keywords"`
	Excluded []string   `json:"excluded_keywords"`
}

// FlagResult wraps Relevance with the threshold decision.
type FlagResult struct {
	Flag     bool       `json:"flag"`
	Score    int        `json:"score"`
	Matched  []string   `json:"matched_keywords"`
	Excluded []string   `json:"excluded_keywords"`
	Evidence []Evidence `json:"evidence"`
	Domain   string     `json:"domain,omitempty"`
}

// Scorer owns the scoring tunables. The zero value is not usable;
// construct via NewScorer.
type Scorer struct {
	FuzzyRatio    float64
	SnippetRadius int
}

// NewScorer returns a scorer with the historical defaults.
func NewScorer() *Scorer {
	return &Scorer{
		FuzzyRatio:    DefaultFuzzyRatio,
		SnippetRadius: DefaultSnippetRadius,
	}
}

// Match runs the match engine with the scorer's fuzzy ratio.
func (s *Scorer) Match(text string, include, exclude []string) MatchResult {
	return Match(text, include, exclude, s.FuzzyRatio)
}

// Score walks the pages in order and awards matchPoints for every
// keyword seen for the first time across the whole sequence. Each page
// that contributes new keywords yields one Evidence entry. Excluded
// keyword hits are collected over all pages and cost excludePenalty
// each, once per unique keyword. The final score never goes below zero
// and evidence is capped at maxEvidence entries in processing order.
func (s *Scorer) Score(pages []Page, include, exclude []string) *Relevance {
	include = Expand(include)
	exclude = Expand(exclude)

	total := 0
	evidence := make([]Evidence, 0, maxEvidence)
	allMatched := make(map[string]struct{})
	allExcluded := make(map[string]struct{})

	for _, page := range pages {
		text := Normalize(page.Text)
		res := Match(text, include, exclude, s.FuzzyRatio)

		for _, k := range res.Excluded {
			allExcluded[k] = struct{}{}
		}

		var fresh []string
		for _, k := range res.Matched {
			if _, ok := allMatched[k]; !ok {
				fresh = append(fresh, k)
			}
		}
		if len(fresh) == 0 {
			continue
		}

		total += matchPoints * len(fresh)
		for _, k := range fresh {
			allMatched[k] = struct{}{}
		}
		if len(evidence) < maxEvidence {
			evidence = append(evidence, Evidence{
				URL:      page.URL,
				Snippet:  s.snippet(text, fresh[0]),
				Keywords: fresh,
			})
		}
	}

	total -= excludePenalty * len(allExcluded)
	if total < 0 {
		total = 0
	}

	return &Relevance{
		Score:    total,
		Evidence: evidence,
		Matched:  sortedKeys(allMatched),
		Excluded: sortedKeys(allExcluded),
	}
}

// Flag applies the threshold decision on top of Score. An empty domain
// means the company could not be resolved: a normal negative outcome,
// not an error. A non-positive threshold falls back to the default.
func (s *Scorer) Flag(domain string, pages []Page, include, exclude []string, threshold int) *FlagResult {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if strings.TrimSpace(domain) == "" {
		return &FlagResult{Matched: []string{}, Excluded: []string{}, Evidence: []Evidence{}}
	}

	scored := s.Score(pages, include, exclude)

	return &FlagResult{
		Flag:     scored.Score >= threshold,
		Score:    scored.Score,
		Matched:  scored.Matched,
		Excluded: scored.Excluded,
		Evidence: scored.Evidence,
		Domain:   domain,
	}
}

// snippet cuts a context window of SnippetRadius bytes around the first
// occurrence of keyword, marking truncated ends with an ellipsis.
func (s *Scorer) snippet(text, keyword string) string {
	i := strings.Index(text, keyword)
	if i == -1 {
		if len(text) > fallbackSnippet {
			return text[:fallbackSnippet] + snippetEllipsis
		}
		return text + snippetEllipsis
	}

	start := i - s.SnippetRadius
	if start < 0 {
		start = 0
	}
	end := i + len(keyword) + s.SnippetRadius
	if end > len(text) {
		end = len(text)
	}

	out := text[start:end]
	if start > 0 {
		out = snippetEllipsis + out
	}
	if end < len(text) {
		out += snippetEllipsis
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
