package engine

// Report is the complete evaluation output: the shared section picture, every
// sub-analysis, the twelve display criteria and the weighted final score. It
// is fully derived from the input text; evaluating the same text twice yields
// an identical report.
type Report struct {
	Sections       *SectionAnalysis        `json:"sections"`
	Readability    *ReadabilityAnalysis    `json:"readability"`
	WritingQuality *WritingQualityAnalysis `json:"writingQuality"`
	ActionVerbs    *ActionVerbAnalysis     `json:"actionVerbs"`
	Quantification *QuantificationAnalysis `json:"quantification"`
	Skills         *SkillsAnalysis         `json:"skillsAnalysis"`
	Chronology     *ChronologyAnalysis     `json:"chronology"`
	Summary        *SummaryAnalysis        `json:"summaryAnalysis"`
	Buzzwords      *BuzzwordAnalysis       `json:"buzzwordsAnalysis"`
	Modernization  *ModernizationAnalysis  `json:"unnecessarySections"`
	Formatting     *FormattingAnalysis     `json:"formatting"`
	Tone           *ToneAnalysis           `json:"tone"`
	Entities       *EntityAnalysis         `json:"entities"`
	BulletLints    []BulletLint            `json:"bulletLints"`
	Criteria       []Criterion             `json:"criteria"`
	Score          *FinalScore             `json:"score"`
}
