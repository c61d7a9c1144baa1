package engine

import (
	"regexp"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// EntityAnalysis is a heuristic extraction of named entities. Empty results
// are legal; extraction quality is best-effort and never scored.
type EntityAnalysis struct {
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
	Degrees       []string `json:"degrees"`
}

var (
	organizationHint = regexp.MustCompile(`\b([A-Z][A-Za-z&.]+(?:\s+[A-Z][A-Za-z&.]+)*)\s+(?:Inc\.?|LLC|Corp\.?|Ltd\.?|Technologies|Systems|Solutions|University|College|Institute)\b`)
	locationHint     = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s*([A-Z]{2})\b`)
	degreeHint       = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?d\.?|b\.?s\.?c?\.?|m\.?s\.?c?\.?|m\.?b\.?a\.?|associate(?:'s)?)\s*(?:of|in|degree)?\s*([A-Za-z ]{0,40})`)
)

// extractEntities runs regex heuristics over the document. Each list is
// deduplicated preserving first-seen order.
func extractEntities(doc *Document) *EntityAnalysis {
	a := &EntityAnalysis{}

	for _, m := range organizationHint.FindAllString(doc.Text, -1) {
		a.Organizations = appendUnique(a.Organizations, strings.TrimSpace(m))
	}
	for _, m := range locationHint.FindAllString(doc.Text, -1) {
		a.Locations = appendUnique(a.Locations, strings.TrimSpace(m))
	}
	for _, pat := range patterns.DatePatterns {
		for _, m := range pat.FindAllString(doc.Text, -1) {
			a.Dates = appendUnique(a.Dates, m)
		}
	}
	for _, m := range degreeHint.FindAllString(doc.Text, -1) {
		a.Degrees = appendUnique(a.Degrees, strings.TrimSpace(m))
	}
	return a
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
