package engine

import (
	"strings"

	"resume-critic/internal/engine/patterns"
)

// WritingQualityAnalysis measures professional register.
type WritingQualityAnalysis struct {
	InformalWords        []string `json:"informalWords"`
	VaguePhrases         []string `json:"vaguePhrases"`
	PassiveVoiceCount    int      `json:"passiveVoiceCount"`
	PronounCount         int      `json:"pronounCount"`
	ProfessionalismScore int      `json:"professionalismScore"`
	Recommendations      []string `json:"recommendations"`
}

// ToneAnalysis balances emotional against confidence vocabulary.
type ToneAnalysis struct {
	EmotionalLanguage    []string `json:"emotionalLanguage"`
	ConfidenceIndicators []string `json:"confidenceIndicators"`
	ToneScore            int      `json:"toneScore"`
}

// FormattingAnalysis checks bullet and date style consistency.
type FormattingAnalysis struct {
	BulletConsistency bool `json:"bulletConsistency"`
	DateConsistency   bool `json:"dateConsistency"`
	FormattingScore   int  `json:"formattingScore"`
}

// analyzeWritingQuality deducts from 100 for informal words, vague phrases,
// passive voice (capped) and first-person pronouns (capped).
func analyzeWritingQuality(doc *Document) *WritingQualityAnalysis {
	a := &WritingQualityAnalysis{}

	for _, word := range patterns.InformalWords {
		if strings.Contains(doc.TextLower, word) {
			a.InformalWords = append(a.InformalWords, word)
		}
	}
	for _, phrase := range patterns.VaguePhrases {
		if strings.Contains(doc.TextLower, phrase) {
			a.VaguePhrases = append(a.VaguePhrases, phrase)
		}
	}
	for _, pat := range patterns.PassivePatterns {
		a.PassiveVoiceCount += len(pat.FindAllString(doc.Text, -1))
	}
	a.PronounCount = len(patterns.PronounPattern.FindAllString(doc.Text, -1))

	score := 100
	score -= len(a.InformalWords) * patterns.InformalWordPenalty
	score -= len(a.VaguePhrases) * patterns.VaguePhrasePenalty
	passivePenalty := a.PassiveVoiceCount * patterns.PassivePenaltyEach
	if passivePenalty > patterns.PassivePenaltyMax {
		passivePenalty = patterns.PassivePenaltyMax
	}
	score -= passivePenalty
	pronounPenalty := a.PronounCount
	if pronounPenalty > patterns.PronounPenaltyMax {
		pronounPenalty = patterns.PronounPenaltyMax
	}
	score -= pronounPenalty
	if score < 0 {
		score = 0
	}
	a.ProfessionalismScore = score

	if len(a.InformalWords) > 0 {
		a.Recommendations = append(a.Recommendations, "Replace informal words with professional vocabulary")
	}
	if len(a.VaguePhrases) > 0 {
		a.Recommendations = append(a.Recommendations, "Replace vague phrases with specific action statements")
	}
	if a.PassiveVoiceCount > 3 {
		a.Recommendations = append(a.Recommendations, "Rewrite passive constructions in active voice")
	}
	if a.PronounCount > 5 {
		a.Recommendations = append(a.Recommendations, "Remove first-person pronouns; resumes use implied first person")
	}
	return a
}

// analyzeTone starts from a neutral base and moves per confidence or
// emotional word found, clamped to [0,100].
func analyzeTone(doc *Document) *ToneAnalysis {
	a := &ToneAnalysis{}
	for _, word := range patterns.EmotionalWords {
		if strings.Contains(doc.TextLower, word) {
			a.EmotionalLanguage = append(a.EmotionalLanguage, word)
		}
	}
	for _, word := range patterns.ConfidenceWords {
		if strings.Contains(doc.TextLower, word) {
			a.ConfidenceIndicators = append(a.ConfidenceIndicators, word)
		}
	}
	score := patterns.ToneBase +
		len(a.ConfidenceIndicators)*patterns.ToneConfidenceBonus -
		len(a.EmotionalLanguage)*patterns.ToneEmotionalPenalty
	a.ToneScore = int(clamp(float64(score), 0, 100))
	return a
}

// analyzeFormatting checks that one bullet glyph style is used and that date
// tokens normalize to at most two shapes.
func analyzeFormatting(doc *Document) *FormattingAnalysis {
	a := &FormattingAnalysis{}

	glyphs := make(map[rune]struct{})
	for _, line := range doc.RawLines {
		if patterns.GlyphBulletLinePrefix.MatchString(line) {
			for _, r := range strings.TrimSpace(line) {
				glyphs[r] = struct{}{}
				break
			}
		}
	}
	a.BulletConsistency = len(glyphs) <= 1

	styles := make(map[string]struct{})
	for _, token := range patterns.FormattingDatePattern.FindAllString(doc.Text, -1) {
		styles[patterns.NormalizeDateStyle(token)] = struct{}{}
	}
	a.DateConsistency = len(styles) <= 2

	score := 100
	if !a.BulletConsistency {
		score -= 25
	}
	if !a.DateConsistency {
		score -= 25
	}
	a.FormattingScore = score
	return a
}
