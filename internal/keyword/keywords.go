// Package keyword contains the deterministic scoring core: keyword
// expansion, text normalization, substring/fuzzy matching and the
// multi-page relevance scorer. Everything here is pure and safe for
// concurrent use.
package keyword

import "strings"

// synonyms is the curated expansion table. Keys must be lowercase.
var synonyms = map[string][]string{
	"ai":          {"artificial intelligence", "machine learning", "ml", "deep learning"},
	"saas":        {"software as a service", "subscription software", "cloud software"},
	"crm":         {"customer relationship management", "sales platform"},
	"procurement": {"purchasing", "sourcing", "supplier management"},
	"ev":          {"electric vehicle", "battery electric", "e-mobility"},
	"chip":        {"semiconductor", "integrated circuit", "ic", "microchip"},
	"erp":         {"enterprise resource planning"},
	"expansion":   {"expands", "expansion", "opens new", "new office", "new plant", "new factory", "new facility", "new market"},
}

// Expand lowercases every keyword and expands it with its synonyms,
// synonyms first, original last. First-seen order is preserved and
// duplicates are dropped, so expanding an already expanded list is a
// no-op. Unknown keywords pass through unchanged.
func Expand(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{})

	for _, k := range keywords {
		base := strings.ToLower(strings.TrimSpace(k))
		if base == "" {
			continue
		}
		for _, alt := range append(append([]string{}, synonyms[base]...), base) {
			if _, ok := seen[alt]; ok {
				continue
			}
			seen[alt] = struct{}{}
			out = append(out, alt)
		}
	}

	return out
}

// Normalize lowercases the input, folds unicode dash variants to "-",
// replaces everything outside [a-z0-9%+@.\- ] with a space and
// collapses whitespace. The result is stable under re-normalization.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x2010 && r <= 0x2015: // ‐ ‑ ‒ – — ―
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '%' || r == '+' || r == '@' || r == '.' || r == '-' || r == ' ':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
