package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// QuantifiedBullet is a bullet with at least one impact pattern, annotated
// with which families matched.
type QuantifiedBullet struct {
	Text     string   `json:"text"`
	Patterns []string `json:"patterns"`
}

// VagueBullet is an unquantified bullet that uses task language, paired with
// a rewrite suggestion.
type VagueBullet struct {
	Text       string `json:"text"`
	TaskWord   string `json:"taskWord"`
	Suggestion string `json:"suggestion"`
}

// QuantificationAnalysis measures how much of the resume's bullet content
// carries metrics.
type QuantificationAnalysis struct {
	TotalBullets        int                `json:"totalBullets"`
	QuantifiedCount     int                `json:"quantifiedCount"`
	Percentage          float64            `json:"quantificationPercentage"`
	MeetsTarget         bool               `json:"meetsTarget"`
	QuantifiedBullets   []QuantifiedBullet `json:"quantifiedBullets"`
	VagueBullets        []VagueBullet      `json:"vagueBullets"`
	PatternDistribution map[string]int     `json:"patternDistribution"`
	Recommendations     []string           `json:"recommendations"`
}

// analyzeQuantification tests every glyph bullet against the eight impact
// families. Bullets with no metric but task language are flagged vague,
// capped at five examples.
func analyzeQuantification(doc *Document) *QuantificationAnalysis {
	bullets := glyphBullets(doc.Text)
	a := &QuantificationAnalysis{
		TotalBullets:        len(bullets),
		PatternDistribution: make(map[string]int),
	}

	for _, bullet := range bullets {
		var matched []string
		for _, key := range patterns.ImpactPatternKeys {
			if patterns.ImpactPatterns[key].MatchString(bullet) {
				matched = append(matched, key)
				a.PatternDistribution[key]++
			}
		}
		if len(matched) > 0 {
			a.QuantifiedCount++
			a.QuantifiedBullets = append(a.QuantifiedBullets, QuantifiedBullet{Text: bullet, Patterns: matched})
			continue
		}
		if len(a.VagueBullets) < 5 {
			lower := strings.ToLower(bullet)
			for _, task := range patterns.TaskLanguageIndicators {
				if strings.Contains(lower, task) {
					a.VagueBullets = append(a.VagueBullets, VagueBullet{
						Text:       bullet,
						TaskWord:   task,
						Suggestion: vagueRewrite(task, bullet),
					})
					break
				}
			}
		}
	}

	if a.TotalBullets > 0 {
		a.Percentage = 100 * float64(a.QuantifiedCount) / float64(a.TotalBullets)
	}
	a.MeetsTarget = a.Percentage >= patterns.QuantificationTarget

	if a.Percentage < patterns.QuantificationTarget {
		a.Recommendations = append(a.Recommendations, "Add numbers, percentages or dollar amounts to more bullet points")
	}
	if len(a.VagueBullets) > 0 {
		a.Recommendations = append(a.Recommendations, fmt.Sprintf("Rewrite %d vague bullets to state measurable outcomes", len(a.VagueBullets)))
	}
	return a
}

// vagueRewrite templates a concrete rewrite for a task-language bullet.
func vagueRewrite(task, bullet string) string {
	switch task {
	case "managed":
		return fmt.Sprintf("Managed [N people/projects], achieving [metric]: %s", bullet)
	case "handled":
		return fmt.Sprintf("Resolved [N] [items] per [period]: %s", bullet)
	case "worked on":
		return fmt.Sprintf("Delivered [outcome] for [project], improving [metric] by [N%%]: %s", bullet)
	case "responsible for":
		return fmt.Sprintf("Led [scope], producing [measurable result]: %s", bullet)
	default:
		return fmt.Sprintf("Quantify the outcome: %s", bullet)
	}
}
