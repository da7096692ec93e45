package swot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bizradar/bizradar/internal/news"
)

func TestBuildBucketsByTag(t *testing.T) {
	t.Parallel()

	items := []*news.Item{
		{Title: "Acme raises $10M Series B", URL: "https://n.example/1", Date: "2024-08-28"},
		{Title: "Acme hit by ransomware attack", URL: "https://n.example/2"},
		{Title: "Acme announces layoffs", URL: "https://n.example/3"},
		{Title: "Acme opens new office in Berlin", URL: "https://n.example/4"},
		{Title: "Acme attends a conference", URL: "https://n.example/5"},
	}

	got := Build(items, 5)

	// Funding is Strengths-primary; expansion lands there as secondary.
	if len(got.Strengths) != 2 || !strings.Contains(got.Strengths[0], "Series B") {
		t.Fatalf("strengths = %v", got.Strengths)
	}
	if len(got.Opportunities) != 2 {
		t.Fatalf("opportunities = %v", got.Opportunities)
	}
	// Ransomware: Threats primary, Weaknesses secondary.
	if len(got.Threats) != 2 {
		t.Fatalf("threats = %v", got.Threats)
	}
	if len(got.Weaknesses) != 2 {
		t.Fatalf("weaknesses = %v", got.Weaknesses)
	}
	// Untagged item appears nowhere.
	for _, bucket := range [][]string{got.Strengths, got.Weaknesses, got.Opportunities, got.Threats} {
		for _, line := range bucket {
			if strings.Contains(line, "conference") {
				t.Fatalf("untagged item leaked: %q", line)
			}
		}
	}
}

func TestBuildLineFormat(t *testing.T) {
	t.Parallel()

	got := Build([]*news.Item{
		{Title: "Acme raises $1M", Date: "2024-01-02", URL: "https://n.example/a"},
	}, 5)

	want := "Acme raises $1M (2024-01-02) — https://n.example/a"
	if len(got.Strengths) != 1 || got.Strengths[0] != want {
		t.Fatalf("line = %v, want %q", got.Strengths, want)
	}
}

func TestBuildGlobalDedupe(t *testing.T) {
	t.Parallel()

	item := &news.Item{Title: "Acme raises $1M", URL: "https://n.example/a"}
	got := Build([]*news.Item{item, item, item}, 5)

	// The repeated item lands once in its primary and once in its
	// secondary bucket, never more.
	if len(got.Strengths) != 1 || len(got.Opportunities) != 1 {
		t.Fatalf("duplicate item re-added: strengths=%v opportunities=%v", got.Strengths, got.Opportunities)
	}
	for _, bucket := range [][]string{got.Strengths, got.Weaknesses, got.Opportunities, got.Threats} {
		seen := make(map[string]struct{})
		for _, line := range bucket {
			if _, dup := seen[line]; dup {
				t.Fatalf("line %q repeated inside one bucket", line)
			}
			seen[line] = struct{}{}
		}
	}
}

func TestBuildCaps(t *testing.T) {
	t.Parallel()

	items := make([]*news.Item, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, &news.Item{
			Title: fmt.Sprintf("Acme raises $%dM", i+1),
			URL:   fmt.Sprintf("https://n.example/%d", i),
		})
	}

	got := Build(items, 3)

	if len(got.Strengths) != 3 {
		t.Fatalf("strengths over cap: %d", len(got.Strengths))
	}
	if len(got.Opportunities) != 3 {
		t.Fatalf("opportunities over cap: %d", len(got.Opportunities))
	}
}

func TestBuildSecondarySkippedWhenFull(t *testing.T) {
	t.Parallel()

	// Two funding items with cap 1: the second line fits nowhere.
	items := []*news.Item{
		{Title: "Acme raises $1M", URL: "https://n.example/a"},
		{Title: "Acme raises $2M", URL: "https://n.example/b"},
	}

	got := Build(items, 1)

	if len(got.Strengths) != 1 || len(got.Opportunities) != 1 {
		t.Fatalf("caps not enforced: strengths=%d opportunities=%d", len(got.Strengths), len(got.Opportunities))
	}
	if got.Strengths[0] != got.Opportunities[0] {
		t.Fatalf("expected the first line in both buckets")
	}
}
