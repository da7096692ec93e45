// Package news finds and classifies recent company headlines: a Google
// Programmable Search provider when keys are configured, a keyless
// Google News RSS fallback, a headline summarizer and the SWOT tagger.
package news

// Item is one normalized news hit.
type Item struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Date    string `json:"date"` // YYYY-MM-DD when parseable, else raw
}
