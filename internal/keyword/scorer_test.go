package keyword

import (
	"reflect"
	"strings"
	"testing"
)

func TestScoreSinglePage(t *testing.T) {
	t.Parallel()

	pages := []Page{{URL: "https://x.com", Text: "we are an ai saas platform"}}

	got := NewScorer().Score(pages, []string{"ai", "saas"}, nil)

	if got.Score != 20 {
		t.Fatalf("score = %d, want 20", got.Score)
	}
	if !reflect.DeepEqual(got.Matched, []string{"ai", "saas"}) {
		t.Fatalf("matched = %v, want [ai saas]", got.Matched)
	}
	if len(got.Evidence) != 1 {
		t.Fatalf("expected 1 evidence entry, got %d", len(got.Evidence))
	}
	if got.Evidence[0].URL != "https://x.com" {
		t.Fatalf("evidence url = %q", got.Evidence[0].URL)
	}
}

func TestScoreCountsKeywordsOnce(t *testing.T) {
	t.Parallel()

	page := Page{URL: "https://x.com/about", Text: "crm for everyone"}

	s := NewScorer()
	single := s.Score([]Page{page}, []string{"crm"}, nil)
	repeated := s.Score([]Page{page, page, page}, []string{"crm"}, nil)

	if repeated.Score != single.Score {
		t.Fatalf("re-scanning the same page changed the score: %d vs %d", repeated.Score, single.Score)
	}
}

func TestScoreMonotonicOnNewMatches(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	include := []string{"ai", "erp"}

	base := s.Score([]Page{{URL: "a", Text: "ai products"}}, include, nil)
	more := s.Score([]Page{
		{URL: "a", Text: "ai products"},
		{URL: "b", Text: "enterprise resource planning suite"},
	}, include, nil)

	if more.Score < base.Score {
		t.Fatalf("adding a page with a new match decreased the score: %d < %d", more.Score, base.Score)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	t.Parallel()

	pages := []Page{{URL: "a", Text: "gambling casino tobacco betting"}}

	got := NewScorer().Score(pages, nil, []string{"gambling", "casino", "tobacco", "betting"})

	if got.Score != 0 {
		t.Fatalf("score = %d, want 0 under exclusion-only input", got.Score)
	}
	if len(got.Excluded) == 0 {
		t.Fatalf("expected excluded keywords to be reported")
	}
}

func TestScoreExcludedHitsCollectedOnMatchlessPages(t *testing.T) {
	t.Parallel()

	pages := []Page{
		{URL: "a", Text: "pure gambling content"},
		{URL: "b", Text: "ai and saas and crm"},
	}

	got := NewScorer().Score(pages, []string{"ai", "saas", "crm"}, []string{"gambling"})

	// 3 matches (+30) minus one excluded keyword (-5).
	if got.Score != 25 {
		t.Fatalf("score = %d, want 25", got.Score)
	}
	if !reflect.DeepEqual(got.Excluded, []string{"gambling"}) {
		t.Fatalf("excluded = %v, want [gambling]", got.Excluded)
	}
}

func TestScoreEvidenceCapped(t *testing.T) {
	t.Parallel()

	include := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}
	pages := make([]Page, 0, len(include))
	for _, k := range include {
		pages = append(pages, Page{URL: "https://x.com/" + k, Text: "about " + k + " products"})
	}

	got := NewScorer().Score(pages, include, nil)

	if len(got.Evidence) != maxEvidence {
		t.Fatalf("evidence length = %d, want %d", len(got.Evidence), maxEvidence)
	}
	// Processing order preserved.
	if got.Evidence[0].URL != "https://x.com/alpha" {
		t.Fatalf("first evidence = %q, want the alpha page", got.Evidence[0].URL)
	}
}

func TestSnippetClipping(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	long := strings.Repeat("x ", 200) + "needle" + strings.Repeat(" y", 200)

	got := s.snippet(Normalize(long), "needle")

	if !strings.Contains(got, "needle") {
		t.Fatalf("snippet does not contain the keyword: %q", got)
	}
	if !strings.HasPrefix(got, snippetEllipsis) || !strings.HasSuffix(got, snippetEllipsis) {
		t.Fatalf("expected ellipsis on both truncated ends: %q", got)
	}
	if len(got) > len("needle")+2*s.SnippetRadius+2*len(snippetEllipsis) {
		t.Fatalf("snippet too long: %d bytes", len(got))
	}
}

func TestFlag(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	pages := []Page{{URL: "https://x.com", Text: "we are an ai saas platform"}}

	t.Run("flagged above threshold", func(t *testing.T) {
		t.Parallel()
		got := s.Flag("x.com", pages, []string{"ai", "saas"}, nil, 0)
		if !got.Flag || got.Score != 20 {
			t.Fatalf("flag = %v score = %d, want true/20", got.Flag, got.Score)
		}
		if got.Domain != "x.com" {
			t.Fatalf("domain = %q", got.Domain)
		}
	})

	t.Run("below custom threshold", func(t *testing.T) {
		t.Parallel()
		got := s.Flag("x.com", pages, []string{"ai", "saas"}, nil, 30)
		if got.Flag {
			t.Fatalf("expected flag=false for score %d against threshold 30", got.Score)
		}
	})

	t.Run("unresolved domain is a negative outcome", func(t *testing.T) {
		t.Parallel()
		got := s.Flag("", pages, []string{"ai"}, nil, 0)
		if got.Flag || got.Score != 0 || len(got.Evidence) != 0 {
			t.Fatalf("expected empty negative result, got %+v", got)
		}
	})
}
