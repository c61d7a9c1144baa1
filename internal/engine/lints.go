package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// BulletIssue is one lint finding on a single bullet.
type BulletIssue struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// BulletLint pairs a bullet with its findings.
type BulletLint struct {
	Text   string        `json:"text"`
	Issues []BulletIssue `json:"issues"`
}

// Bullet lint issue types.
const (
	LintTooShort       = "too_short"
	LintTooLong        = "too_long"
	LintMissingMetrics = "missing_metrics"
	LintWeakVerb       = "weak_action_verb"
	LintMissingVerb    = "missing_action_verb"
)

// Bullet length bounds in words.
const (
	lintMinWords = 5
	lintMaxWords = 30
)

// lintBullets runs per-bullet quality checks: length bounds, metric presence
// and opening-verb strength, each with a concrete rewrite suggestion.
func lintBullets(doc *Document) []BulletLint {
	var lints []BulletLint
	for _, bullet := range doc.Bullets {
		issues := lintBullet(bullet)
		if len(issues) > 0 {
			lints = append(lints, BulletLint{Text: bullet, Issues: issues})
		}
	}
	return lints
}

func lintBullet(bullet string) []BulletIssue {
	var issues []BulletIssue
	words := strings.Fields(bullet)

	switch {
	case len(words) < lintMinWords:
		issues = append(issues, BulletIssue{
			Type:       LintTooShort,
			Severity:   "medium",
			Message:    fmt.Sprintf("Bullet has only %d words; expand it with context and outcome", len(words)),
			Suggestion: "Describe what you did, how, and the measurable result",
		})
	case len(words) > lintMaxWords:
		issues = append(issues, BulletIssue{
			Type:       LintTooLong,
			Severity:   "low",
			Message:    fmt.Sprintf("Bullet has %d words; split or tighten it", len(words)),
			Suggestion: "Keep bullets under 30 words, one achievement each",
		})
	}

	hasMetric := false
	for _, key := range patterns.ImpactPatternKeys {
		if patterns.ImpactPatterns[key].MatchString(bullet) {
			hasMetric = true
			break
		}
	}
	if !hasMetric {
		issues = append(issues, BulletIssue{
			Type:       LintMissingMetrics,
			Severity:   "high",
			Message:    "No quantifiable metric found",
			Suggestion: fmt.Sprintf("%s [Add: by X%%, reducing costs by $Y, impacting Z users]", bullet),
		})
	}

	if len(words) > 0 {
		first := strings.ToLower(strings.Trim(words[0], ".,:;"))
		switch {
		case verbCategory(first) != "":
			// strong opener, nothing to flag
		case isWeakVerb(first):
			replacements := patterns.VerbImprovements[first]
			if replacements == nil {
				replacements = patterns.DefaultVerbSuggestions
			}
			issues = append(issues, BulletIssue{
				Type:       LintWeakVerb,
				Severity:   "medium",
				Message:    fmt.Sprintf("Opens with weak verb %q", first),
				Suggestion: "Replace with: " + strings.Join(replacements, ", "),
			})
		default:
			issues = append(issues, BulletIssue{
				Type:       LintMissingVerb,
				Severity:   "medium",
				Message:    "Does not open with an action verb",
				Suggestion: fmt.Sprintf("[Action verb]: %s", bullet),
			})
		}
	}
	return issues
}
