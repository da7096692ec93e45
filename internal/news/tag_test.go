package news

import "testing"

func TestTagHeadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		kind   string
		expect string
	}{
		{
			name:   "funding from title",
			title:  "Acme raises $10M Series B",
			expect: TagFunding,
		},
		{
			name:   "mna from title",
			title:  "Acme to acquire Beta Corp",
			expect: TagMNA,
		},
		{
			name:   "kind wins over title",
			title:  "Acme opens new plant",
			kind:   "Funding",
			expect: TagFunding,
		},
		{
			name:   "mna kind variants",
			title:  "irrelevant",
			kind:   "m&a",
			expect: TagMNA,
		},
		{
			name:   "expansion kind",
			title:  "irrelevant",
			kind:   "Expansion",
			expect: TagExpansion,
		},
		{
			name:   "first match wins on overlapping cues",
			title:  "Acme raises funding after acquisition rumors",
			expect: TagFunding,
		},
		{
			name:   "layoffs",
			title:  "Acme announces layoffs amid restructuring",
			expect: TagLayoffs,
		},
		{
			name:   "security incident",
			title:  "Acme hit by ransomware attack",
			expect: TagSecurity,
		},
		{
			name:   "supply disruption",
			title:  "Chip shortage slows Acme production",
			expect: TagSupply,
		},
		{
			name:   "untagged",
			title:  "Acme appears at industry conference",
			expect: "",
		},
		{
			name:   "case insensitive",
			title:  "ACME RAISES FUNDING",
			expect: TagFunding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TagHeadline(tt.title, tt.kind); got != tt.expect {
				t.Fatalf("TagHeadline(%q, %q) = %q, want %q", tt.title, tt.kind, got, tt.expect)
			}
		})
	}
}
