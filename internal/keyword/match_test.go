package keyword

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		include  []string
		exclude  []string
		matched  []string
		excluded []string
	}{
		{
			name:    "substring hit",
			text:    "we build a saas platform",
			include: []string{"saas"},
			matched: []string{"saas"},
		},
		{
			name:    "case insensitive",
			text:    "We Build AI Products",
			include: []string{"AI"},
			matched: []string{"ai"},
		},
		{
			name:    "fuzzy hyphenation variant",
			text:    "leaders in e mobility solutions",
			include: []string{"e-mobility"},
			matched: []string{"e-mobility"},
		},
		{
			name:    "no hit",
			text:    "plain industrial equipment",
			include: []string{"blockchain"},
			matched: []string{},
		},
		{
			name:     "exclude uses the same logic",
			text:     "gambling and crypto casino",
			include:  []string{"crypto"},
			exclude:  []string{"gambling", "tobacco"},
			matched:  []string{"crypto"},
			excluded: []string{"gambling"},
		},
		{
			name:    "results sorted",
			text:    "saas and ai and crm",
			include: []string{"saas", "crm", "ai"},
			matched: []string{"ai", "crm", "saas"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Match(tt.text, tt.include, tt.exclude, DefaultFuzzyRatio)
			if !reflect.DeepEqual(res.Matched, tt.matched) {
				t.Fatalf("matched = %v, want %v", res.Matched, tt.matched)
			}
			wantExcluded := tt.excluded
			if wantExcluded == nil {
				wantExcluded = []string{}
			}
			if !reflect.DeepEqual(res.Excluded, wantExcluded) {
				t.Fatalf("excluded = %v, want %v", res.Excluded, wantExcluded)
			}
		})
	}
}

func TestLongestCommonRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b   string
		expect int
	}{
		{"", "anything", 0},
		{"abc", "", 0},
		{"abc", "abc", 3},
		{"e-mobility", "e mobility", 8},
		{"saas", "xxsaayy", 3},
	}

	for _, tt := range tests {
		if got := longestCommonRun(tt.a, tt.b); got != tt.expect {
			t.Fatalf("longestCommonRun(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expect)
		}
	}
}
