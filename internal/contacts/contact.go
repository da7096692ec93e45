// Package contacts discovers and ranks people worth reaching at a
// company: Hunter.io domain search when a key is configured, a shallow
// site scrape otherwise, and a rule-weighted title ranker on top.
package contacts

// Contact is a discovered person. Email is the identity; everything
// else is best effort and may be empty.
type Contact struct {
	Name   string `json:"name,omitempty"`
	Title  string `json:"title,omitempty"`
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
	Score  int    `json:"score"`
}
