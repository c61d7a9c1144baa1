package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// OutdatedFinding is one detected outdated section.
type OutdatedFinding struct {
	Type           string   `json:"type"`
	PatternsFound  []string `json:"patternsFound"`
	Description    string   `json:"description"`
	Severity       string   `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

// PassedCheck records a modern-standards check the resume passed.
type PassedCheck struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ModernizationAnalysis reports outdated resume conventions.
type ModernizationAnalysis struct {
	Found              []OutdatedFinding `json:"unnecessarySectionsFound"`
	PassedChecks       []PassedCheck     `json:"passedChecks"`
	TotalIssues        int               `json:"totalIssues"`
	ModernizationScore int               `json:"modernizationScore"`
	HasOutdated        bool              `json:"hasOutdatedSections"`
	Recommendations    []string          `json:"recommendations"`
}

// analyzeModernization detects outdated section types. A pattern counts only
// as a short standalone header line, except references phrasing which is also
// matched anywhere in the body.
func analyzeModernization(doc *Document) *ModernizationAnalysis {
	a := &ModernizationAnalysis{}
	severityTotal := 0

	for _, section := range patterns.OutdatedSections {
		var detected []string
		for _, pattern := range section.Patterns {
			if hasHeaderLike(doc.Lines, pattern) {
				detected = append(detected, pattern)
			}
		}
		if section.Type == patterns.OutdatedReferences && strings.Contains(doc.TextLower, "references") {
			for _, phrase := range patterns.ReferencesContentPhrases {
				if strings.Contains(doc.TextLower, phrase) {
					detected = append(detected, "references available upon request")
					break
				}
			}
		}
		if len(detected) > 0 {
			severityTotal += patterns.SeverityWeights[section.Severity]
			a.Found = append(a.Found, OutdatedFinding{
				Type:           section.Type,
				PatternsFound:  detected,
				Description:    section.Description,
				Severity:       section.Severity,
				Recommendation: section.Recommendation,
			})
		} else if containsString(patterns.PassedCheckTypes, section.Type) {
			a.PassedChecks = append(a.PassedChecks, PassedCheck{
				Type:        section.Type,
				Description: fmt.Sprintf("Great! No %s section found - this follows modern resume standards.", section.Type),
			})
		}
	}

	a.TotalIssues = len(a.Found)
	a.HasOutdated = a.TotalIssues > 0
	a.ModernizationScore = 100 - severityTotal*10
	if a.ModernizationScore < 0 {
		a.ModernizationScore = 0
	}
	a.Recommendations = modernizationRecommendations(a.Found)
	return a
}

// hasHeaderLike reports whether a pattern appears as a short standalone line
// that equals the pattern once header punctuation is stripped.
func hasHeaderLike(lines []string, pattern string) bool {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, pattern) || len(strings.Fields(line)) > patterns.OutdatedHeaderMaxWords {
			continue
		}
		stripped := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(lower, ":", ""), "-", ""))
		if stripped == pattern {
			return true
		}
	}
	return false
}

func modernizationRecommendations(found []OutdatedFinding) []string {
	if len(found) == 0 {
		return []string{"Excellent! Your resume follows modern standards with no outdated sections."}
	}
	bySeverity := func(severity, heading string) []string {
		var recs []string
		for _, f := range found {
			if f.Severity == severity {
				if len(recs) == 0 {
					recs = append(recs, heading)
				}
				recs = append(recs, f.Recommendation)
			}
		}
		return recs
	}
	var recs []string
	recs = append(recs, bySeverity(patterns.SeverityHigh, "Remove these sections immediately as they may hurt your application:")...)
	recs = append(recs, bySeverity(patterns.SeverityMedium, "Important modernization updates:")...)
	recs = append(recs, bySeverity(patterns.SeverityLow, "Consider these improvements:")...)
	return recs
}
