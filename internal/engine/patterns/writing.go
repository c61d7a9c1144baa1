package patterns

import "regexp"

// InformalWords read as unprofessional and cost points each.
var InformalWords = []string{"awesome", "cool", "stuff", "things", "lot", "tons", "loads", "super", "really", "very"}

// VaguePhrases describe duties without ownership.
var VaguePhrases = []string{"responsible for", "worked on", "dealt with", "helped with", "involved in", "participated in"}

// PassivePatterns approximate passive-voice constructions.
var PassivePatterns = compileAllCI(
	`\b(was|were|is|are|been|being)\s+\w+ed\b`,
	`\b(was|were|is|are)\s+\w+en\b`,
)

// PronounPattern finds first-person pronouns, which resumes should avoid.
var PronounPattern = regexp.MustCompile(`(?i)\b(I|me|my|we|our|us)\b`)

// Professionalism deductions.
const (
	InformalWordPenalty = 5
	VaguePhrasePenalty  = 3
	PassivePenaltyEach  = 2
	PassivePenaltyMax   = 20
	PronounPenaltyMax   = 15
)

// EmotionalWords read as overwrought in professional writing.
var EmotionalWords = []string{"amazing", "incredible", "fantastic", "terrible", "awful", "hate", "love"}

// ConfidenceWords signal grounded, achievement-oriented tone.
var ConfidenceWords = []string{"achieved", "accomplished", "delivered", "exceeded", "successful"}

// Tone score parameters: the score starts at the base and moves per word
// found, clamped to [0,100].
const (
	ToneBase             = 50
	ToneConfidenceBonus  = 5
	ToneEmotionalPenalty = 10
)
