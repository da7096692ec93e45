package contacts

import "testing"

func TestScoreTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		check func(t *testing.T, score int)
	}{
		{
			name:  "empty title scores zero",
			title: "",
			check: func(t *testing.T, score int) {
				if score != 0 {
					t.Fatalf("score = %d, want 0", score)
				}
			},
		},
		{
			name:  "chief executive officer",
			title: "Chief Executive Officer",
			check: func(t *testing.T, score int) {
				// Role family +15, "chief" +15.
				if score != 30 {
					t.Fatalf("score = %d, want 30", score)
				}
			},
		},
		{
			name:  "junior term penalized",
			title: "Marketing Coordinator",
			check: func(t *testing.T, score int) {
				// "marketing" +5, coordinator -5.
				if score != 0 {
					t.Fatalf("score = %d, want 0", score)
				}
			},
		},
		{
			name:  "junior penalty may go negative",
			title: "Office Intern",
			check: func(t *testing.T, score int) {
				if score >= 0 {
					t.Fatalf("score = %d, want negative", score)
				}
			},
		},
		{
			name:  "overlapping tokens both count",
			title: "Co-Founder",
			check: func(t *testing.T, score int) {
				// Role family +15, "founder" +15; "cofounder" does not
				// occur as a plain substring of "co-founder".
				if score != 30 {
					t.Fatalf("score = %d, want 30", score)
				}
			},
		},
		{
			name:  "stacked role families",
			title: "Founder and CEO",
			check: func(t *testing.T, score int) {
				// Two role families +30, "founder" +15, "ceo" +15.
				if score != 60 {
					t.Fatalf("score = %d, want 60", score)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, ScoreTitle(tt.title))
		})
	}
}

func TestScoreTitleOrdering(t *testing.T) {
	t.Parallel()

	ceo := ScoreTitle("Chief Executive Officer")
	coordinator := ScoreTitle("Marketing Coordinator")
	if ceo <= coordinator {
		t.Fatalf("expected CEO (%d) to outrank coordinator (%d)", ceo, coordinator)
	}

	vpSales := ScoreTitle("VP of Sales")
	salesManager := ScoreTitle("Sales Manager")
	if vpSales <= salesManager {
		t.Fatalf("expected VP of Sales (%d) to outrank Sales Manager (%d)", vpSales, salesManager)
	}
}

func TestEmailAliasBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email  string
		expect int
	}{
		{"ceo@acme.com", aliasBonus},
		{"CEO@acme.com", aliasBonus},
		{"sales@acme.com", aliasBonus},
		{"ceo.office@acme.com", 0},
		{"jane@acme.com", 0},
		{"no-at-sign", 0},
	}

	for _, tt := range tests {
		if got := emailAliasBonus(tt.email); got != tt.expect {
			t.Fatalf("emailAliasBonus(%q) = %d, want %d", tt.email, got, tt.expect)
		}
	}
}
