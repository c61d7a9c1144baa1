package engine

import (
	"regexp"
	"strings"
)

// ReadabilityAnalysis reports Flesch-based readability plus sentence and
// bullet length statistics.
type ReadabilityAnalysis struct {
	FleschScore        float64  `json:"fleschScore"`
	GradeLevel         float64  `json:"gradeLevel"`
	AvgSentenceLength  float64  `json:"avgSentenceLength"`
	LongSentenceCount  int      `json:"longSentencesCount"`
	AvgBulletLength    float64  `json:"avgBulletLength"`
	ReadabilityGrade   string   `json:"readabilityGrade"`
	UsedNeutralDefault bool     `json:"usedNeutralDefault"`
	Recommendations    []string `json:"recommendations"`
}

// Neutral defaults when the formulas cannot run on degenerate text.
const (
	neutralFleschScore = 50.0
	neutralGradeLevel  = 10.0
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordToken     = regexp.MustCompile(`[A-Za-z]+`)
	vowelGroup    = regexp.MustCompile(`[aeiouy]+`)
)

// analyzeReadability computes Flesch reading ease and Flesch-Kincaid grade
// level from word, sentence and syllable counts. Text with no countable words
// or sentences gets fixed neutral defaults instead of an error.
func analyzeReadability(doc *Document) *ReadabilityAnalysis {
	a := &ReadabilityAnalysis{}

	sentences := splitSentences(doc.Text)
	words := wordToken.FindAllString(doc.Text, -1)

	if len(sentences) == 0 || len(words) == 0 {
		a.FleschScore = neutralFleschScore
		a.GradeLevel = neutralGradeLevel
		a.UsedNeutralDefault = true
	} else {
		syllables := 0
		for _, w := range words {
			syllables += countSyllables(w)
		}
		wps := float64(len(words)) / float64(len(sentences))
		spw := float64(syllables) / float64(len(words))
		a.FleschScore = 206.835 - 1.015*wps - 84.6*spw
		a.GradeLevel = 0.39*wps + 11.8*spw - 15.59
		a.AvgSentenceLength = wps
	}

	for _, s := range sentences {
		if len(strings.Fields(s)) > 25 {
			a.LongSentenceCount++
		}
	}

	bullets := glyphBullets(doc.Text)
	if len(bullets) > 0 {
		total := 0
		for _, b := range bullets {
			total += len(strings.Fields(b))
		}
		a.AvgBulletLength = float64(total) / float64(len(bullets))
	}

	a.ReadabilityGrade = readabilityGrade(a.FleschScore)
	a.Recommendations = readabilityRecommendations(a)
	return a
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// countSyllables approximates syllables as vowel groups with a silent-e
// correction, never below one.
func countSyllables(word string) int {
	lower := strings.ToLower(word)
	n := len(vowelGroup.FindAllString(lower, -1))
	if strings.HasSuffix(lower, "e") && !strings.HasSuffix(lower, "le") && n > 1 {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

func readabilityGrade(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

func readabilityRecommendations(a *ReadabilityAnalysis) []string {
	var recs []string
	if a.FleschScore < 60 {
		recs = append(recs, "Simplify sentence structure for better readability")
	}
	if a.AvgSentenceLength > 20 {
		recs = append(recs, "Reduce average sentence length (aim for 15-20 words)")
	}
	if a.LongSentenceCount > 5 {
		recs = append(recs, "Break down overly long sentences")
	}
	return recs
}
