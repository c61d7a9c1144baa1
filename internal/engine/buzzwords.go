package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// BuzzwordFinding is one flagged buzzword or buzzword phrase.
type BuzzwordFinding struct {
	Word        string   `json:"word"`
	Count       int      `json:"count"`
	Severity    string   `json:"severity"`
	Penalty     int      `json:"penalty"`
	Suggestions []string `json:"suggestions"`
}

// BuzzwordAnalysis totals buzzword penalties into a 0-100 score.
type BuzzwordAnalysis struct {
	Found           []BuzzwordFinding `json:"buzzwordsFound"`
	TotalBuzzwords  int               `json:"totalBuzzwords"`
	TotalPenalty    int               `json:"totalPenalty"`
	Score           float64           `json:"buzzwordScore"`
	Severity        string            `json:"severity"`
	Recommendations []string          `json:"recommendations"`
}

// analyzeBuzzwords counts tiered buzzword occurrences plus phrase-pattern
// matches; the score floors at zero.
func analyzeBuzzwords(doc *Document) *BuzzwordAnalysis {
	a := &BuzzwordAnalysis{}

	for _, tier := range patterns.BuzzwordTierOrder {
		penalty := patterns.BuzzwordPenalties[tier]
		for _, word := range patterns.Buzzwords[tier] {
			count := strings.Count(doc.TextLower, word)
			if count == 0 {
				continue
			}
			a.TotalPenalty += penalty * count
			a.Found = append(a.Found, BuzzwordFinding{
				Word:        word,
				Count:       count,
				Severity:    tier,
				Penalty:     penalty,
				Suggestions: buzzwordAlternatives(word),
			})
		}
	}

	patternPenalty := patterns.BuzzwordPenalties[patterns.BuzzwordPattern]
	for _, pat := range patterns.BuzzwordPhrasePatterns {
		for _, m := range pat.FindAllString(doc.TextLower, -1) {
			a.TotalPenalty += patternPenalty
			a.Found = append(a.Found, BuzzwordFinding{
				Word:        m,
				Count:       1,
				Severity:    patterns.BuzzwordPattern,
				Penalty:     patternPenalty,
				Suggestions: patterns.DefaultBuzzwordAlternative,
			})
		}
	}

	a.TotalBuzzwords = len(a.Found)
	a.Score = float64(100 - a.TotalPenalty)
	if a.Score < 0 {
		a.Score = 0
	}
	a.Severity = buzzwordSeverity(a.TotalBuzzwords)
	a.Recommendations = buzzwordRecommendations(a.Found)
	return a
}

func buzzwordAlternatives(word string) []string {
	if alts, ok := patterns.BuzzwordAlternatives[strings.ToLower(word)]; ok {
		return alts
	}
	return patterns.DefaultBuzzwordAlternative
}

func buzzwordSeverity(count int) string {
	switch {
	case count == 0:
		return "excellent"
	case count <= 2:
		return "good"
	case count <= 5:
		return "moderate"
	default:
		return "poor"
	}
}

func buzzwordRecommendations(found []BuzzwordFinding) []string {
	if len(found) == 0 {
		return []string{"Great! No generic buzzwords detected"}
	}
	var recs []string
	for i, f := range found {
		if i == 3 {
			break
		}
		recs = append(recs, fmt.Sprintf("Replace %q with specific achievements or metrics", f.Word))
	}
	recs = append(recs, "Use action verbs with quantifiable results instead of generic descriptors")
	if len(found) > 5 {
		recs = append(recs, "Consider rewriting sections with too many generic terms")
	}
	return recs
}
