package keyword

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{
			name:   "known keyword expands with synonyms first",
			input:  []string{"erp"},
			expect: []string{"enterprise resource planning", "erp"},
		},
		{
			name:   "unknown keyword passes through",
			input:  []string{"fintech"},
			expect: []string{"fintech"},
		},
		{
			name:   "trims and lowercases",
			input:  []string{"  ERP  "},
			expect: []string{"enterprise resource planning", "erp"},
		},
		{
			name:   "empty entries skipped",
			input:  []string{"", "   ", "erp"},
			expect: []string{"enterprise resource planning", "erp"},
		},
		{
			name:   "duplicates removed across input",
			input:  []string{"erp", "erp", "enterprise resource planning"},
			expect: []string{"enterprise resource planning", "erp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Expand(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("Expand(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestExpandIdempotent(t *testing.T) {
	t.Parallel()

	once := Expand([]string{"ai", "saas", "custom term"})
	twice := Expand(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-expanding changed the set: %v vs %v", once, twice)
	}
}

func TestExpandContainsBaseAndSynonymsOnce(t *testing.T) {
	t.Parallel()

	for base, alts := range synonyms {
		got := Expand([]string{base})

		counts := make(map[string]int)
		for _, k := range got {
			counts[k]++
		}
		if counts[base] != 1 {
			t.Fatalf("expected %q exactly once, got %d", base, counts[base])
		}
		for _, alt := range alts {
			if counts[alt] != 1 {
				t.Fatalf("expected synonym %q of %q exactly once, got %d", alt, base, counts[alt])
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "lowercases",
			input:  "Hello World",
			expect: "hello world",
		},
		{
			name:   "unicode dashes folded",
			input:  "e–mobility and e—mobility",
			expect: "e-mobility and e-mobility",
		},
		{
			name:   "markup noise stripped",
			input:  "AI & <b>SaaS</b>!",
			expect: "ai b saas b",
		},
		{
			name:   "whitespace collapsed",
			input:  "  a \t b\n\nc  ",
			expect: "a b c",
		},
		{
			name:   "allowed specials kept",
			input:  "sales@acme.com +50% off",
			expect: "sales@acme.com +50% off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
