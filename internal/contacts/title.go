package contacts

import (
	"regexp"
	"strings"
)

const (
	rolePoints    = 15
	juniorPenalty = 5
	aliasBonus    = 2
)

// rolePatterns are the target-role families. Each independent hit is
// worth rolePoints, so a combined title can stack several.
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(chief executive officer|ceo)\b`),
	regexp.MustCompile(`(?i)\b(co[-\s]?founder|founder|owner)\b`),
	regexp.MustCompile(`(?i)\b(chief sales officer|cso|(vp|vice president|head|director) of sales|sales (director|vp))\b`),
	regexp.MustCompile(`(?i)\b(chief marketing officer|cmo|(vp|vice president|head|director) of marketing|marketing (director|vp))\b`),
	regexp.MustCompile(`(?i)\b(chief procurement officer|cpo|(vp|vice president|head|director) of (procurement|purchasing|sourcing)|procurement (director|manager))\b`),
}

// Token weights are applied by plain substring containment, so
// overlapping tokens ("co-founder" contains "founder") both count.
var seniorityWeights = map[string]int{
	"ceo":       15,
	"chief":     15,
	"founder":   15,
	"cofounder": 12,
	"vp":        8,
	"director":  7,
	"head":      6,
	"manager":   4,
	"lead":      3,
	"senior":    2,
}

var departmentWeights = map[string]int{
	"sales":        5,
	"marketing":    5,
	"procurement":  6,
	"purchasing":   6,
	"sourcing":     5,
	"supply chain": 5,
	"category":     3,
}

var juniorTerms = []string{"intern", "assistant", "coordinator", "student", "trainee"}

// priorityAliases are email local parts worth a small bonus on exact
// match (ceo@, sales@ and friends are usually routed to the right desk).
var priorityAliases = map[string]struct{}{
	"ceo":         {},
	"founder":     {},
	"sales":       {},
	"marketing":   {},
	"procurement": {},
	"purchasing":  {},
	"sourcing":    {},
}

// ScoreTitle rates a job title for outreach priority. The result is
// unbounded in both directions; an empty title scores zero.
func ScoreTitle(title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0
	}
	low := strings.ToLower(title)

	score := 0
	for _, pattern := range rolePatterns {
		if pattern.MatchString(title) {
			score += rolePoints
		}
	}
	for token, weight := range seniorityWeights {
		if strings.Contains(low, token) {
			score += weight
		}
	}
	for token, weight := range departmentWeights {
		if strings.Contains(low, token) {
			score += weight
		}
	}
	for _, term := range juniorTerms {
		if strings.Contains(low, term) {
			score -= juniorPenalty
			break
		}
	}

	return score
}

// emailAliasBonus returns the bonus for an email whose local part is
// exactly one of the priority aliases.
func emailAliasBonus(email string) int {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return 0
	}
	local := strings.ToLower(email[:at])
	if _, ok := priorityAliases[local]; ok {
		return aliasBonus
	}
	return 0
}
