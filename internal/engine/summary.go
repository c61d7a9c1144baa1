package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// SummaryAnalysis judges the professional summary block.
type SummaryAnalysis struct {
	HasSummary      bool     `json:"hasSummary"`
	SummaryText     string   `json:"summaryText,omitempty"`
	WordCount       int      `json:"wordCount"`
	QualityScore    int      `json:"qualityScore"`
	Issues          []string `json:"issues"`
	GenericPhrases  []string `json:"genericPhrasesFound"`
	HasSkillKeyword bool     `json:"hasSpecificSkills"`
	HasMetrics      bool     `json:"hasMetrics"`
	Recommendations []string `json:"recommendations"`
}

// analyzeSummary locates the summary by explicit header first, then by
// inference near the top of the document. An inferred block outside the 15-80
// word window means the resume has no summary at all, not a bad one.
func analyzeSummary(doc *Document) *SummaryAnalysis {
	lines := doc.Lines

	headerIdx := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, patterns.SummaryHeaderKeywords) && len(strings.Fields(line)) <= patterns.SummaryHeaderMaxWords {
			headerIdx = i
			break
		}
	}

	var summaryLines []string
	if headerIdx >= 0 {
		end := headerIdx + 1 + patterns.SummaryMaxLines
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[headerIdx+1 : end] {
			if identifySection(line) != "" {
				break
			}
			summaryLines = append(summaryLines, line)
		}
	} else {
		start := 0
		if len(lines) > 1 {
			start = 1
		}
		end := start + 6
		if end > len(lines) {
			end = len(lines)
		}
		var candidate []string
		for _, line := range lines[start:end] {
			if identifySection(line) != "" {
				break
			}
			candidate = append(candidate, line)
			if len(candidate) >= patterns.SummaryInferredMaxLines {
				break
			}
		}
		words := len(strings.Fields(strings.Join(candidate, " ")))
		if words < patterns.SummaryInferredMinWords || words > patterns.SummaryInferredMaxWords {
			return &SummaryAnalysis{
				HasSummary: false,
				Issues:     []string{"No professional summary found"},
				Recommendations: []string{
					"Add a professional summary (2-4 lines)",
					"Include relevant skills and experience",
					"Tailor summary to target job role",
					"Avoid generic phrases and buzzwords",
				},
			}
		}
		summaryLines = candidate
	}

	text := strings.Join(summaryLines, " ")
	a := &SummaryAnalysis{
		HasSummary:  true,
		SummaryText: text,
		WordCount:   len(strings.Fields(text)),
	}

	score := 100
	if a.WordCount < patterns.SummaryShortWordCount {
		a.Issues = append(a.Issues, "Summary too short (should be 20-100 words)")
		score -= 20
	} else if a.WordCount > patterns.SummaryLongWordCount {
		a.Issues = append(a.Issues, "Summary too long (should be 20-100 words)")
		score -= 15
	}

	textLower := strings.ToLower(text)
	for _, phrase := range patterns.GenericSummaryPhrases {
		if strings.Contains(textLower, phrase) {
			a.GenericPhrases = append(a.GenericPhrases, phrase)
		}
	}
	if len(a.GenericPhrases) > 0 {
		a.Issues = append(a.Issues, fmt.Sprintf("Contains generic phrases: %s", strings.Join(a.GenericPhrases, ", ")))
		score -= len(a.GenericPhrases) * 10
	}

	a.HasSkillKeyword = patterns.SummarySpecificSkillPattern.MatchString(text)
	if !a.HasSkillKeyword {
		a.Issues = append(a.Issues, "Summary lacks specific skills or technical expertise")
		score -= 15
	}

	for _, key := range patterns.ImpactPatternKeys {
		if patterns.ImpactPatterns[key].MatchString(text) {
			a.HasMetrics = true
			break
		}
	}
	if !a.HasMetrics {
		a.Issues = append(a.Issues, "Consider adding quantifiable achievements in summary")
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	a.QualityScore = score
	a.Recommendations = summaryRecommendations(a)
	return a
}

func summaryRecommendations(a *SummaryAnalysis) []string {
	var recs []string
	if a.WordCount < patterns.SummaryShortWordCount {
		recs = append(recs, "Expand summary to 2-3 sentences with more detail about your expertise")
	}
	if a.WordCount > patterns.SummaryLongWordCount {
		recs = append(recs, "Condense summary to 2-3 impactful sentences")
	}
	if len(a.GenericPhrases) > 0 {
		recs = append(recs, "Replace buzzwords with specific skills and achievements")
	}
	if !a.HasSkillKeyword {
		recs = append(recs, "Include relevant technical skills and industry expertise")
	}
	if !a.HasMetrics {
		recs = append(recs, "Add numbers to demonstrate your impact (e.g., \"5+ years experience\")")
	}
	if len(recs) == 0 {
		recs = append(recs, "Good summary! Consider tailoring it to each specific job application")
	}
	return recs
}
