package engine

import (
	"fmt"
	"math"
)

// Aggregator category keys. These are a different granularity than the
// display criteria: readability, buzzwords and formatting feed the weighted
// total only through the composite ats_compatibility category.
const (
	CategoryQuantifyImpact = "quantify_impact"
	CategoryDates          = "dates"
	CategorySummary        = "summary"
	CategoryActionVerbs    = "action_verbs"
	CategorySkillsSection  = "skills_section"
	CategoryStructure      = "structure"
	CategoryATS            = "ats_compatibility"
	CategoryWritingQuality = "writing_quality"
	CategoryChronology     = "chronology"
	CategoryUnnecessary    = "unnecessary_sections"
)

// CategoryWeights is the fixed weight table. It must sum to 1.0; the package
// panics at initialization otherwise.
var CategoryWeights = map[string]float64{
	CategoryQuantifyImpact: 0.12,
	CategoryDates:          0.08,
	CategorySummary:        0.06,
	CategoryActionVerbs:    0.10,
	CategorySkillsSection:  0.10,
	CategoryStructure:      0.12,
	CategoryATS:            0.24,
	CategoryWritingQuality: 0.08,
	CategoryChronology:     0.06,
	CategoryUnnecessary:    0.04,
}

// categoryOrder fixes the summation order of the weighted total. Float
// addition is not associative, so ranging over the weight map would make the
// final score vary in the last ulp between runs.
var categoryOrder = []string{
	CategoryQuantifyImpact,
	CategoryDates,
	CategorySummary,
	CategoryActionVerbs,
	CategorySkillsSection,
	CategoryStructure,
	CategoryATS,
	CategoryWritingQuality,
	CategoryChronology,
	CategoryUnnecessary,
}

func init() {
	sum := 0.0
	for _, key := range categoryOrder {
		w, ok := CategoryWeights[key]
		if !ok {
			panic(fmt.Sprintf("engine: category %q has no weight", key))
		}
		sum += w
	}
	if len(categoryOrder) != len(CategoryWeights) {
		panic("engine: category order does not cover the weight table")
	}
	if math.Abs(sum-1.0) > 1e-9 {
		panic(fmt.Sprintf("engine: category weights sum to %v, want 1.0", sum))
	}
}

// FinalScore is the aggregate verdict. When Invalidated is true the score is
// forced to zero because a gate section is missing; category scores are still
// reported so the caller can see where the resume stood.
type FinalScore struct {
	CategoryScores map[string]float64 `json:"categoryScores"`
	Weights        map[string]float64 `json:"weights"`
	FinalScore     float64            `json:"finalScore"`
	Grade          string             `json:"grade"`
	Invalidated    bool               `json:"invalidated"`
	MissingGate    []string           `json:"missingGateSections,omitempty"`
}

// computeFinalScore derives the ten category scores from the detector
// outputs, applies the weight table, and enforces the hard gate on
// {contact, experience, skills}.
func computeFinalScore(r *Report) *FinalScore {
	scores := map[string]float64{
		CategoryQuantifyImpact: math.Min(r.Quantification.Percentage*2, 100),
		CategoryDates:          datesCategoryScore(r.Chronology),
		CategorySummary:        summaryCategoryScore(r.Summary),
		CategoryActionVerbs:    r.ActionVerbs.ActionVerbScore,
		CategorySkillsSection:  math.Min(float64(r.Skills.TotalTechnical+r.Skills.TotalSoft)*6, 100),
		CategoryStructure:      structureCategoryScore(r.Sections),
		CategoryATS:            atsCategoryScore(r),
		CategoryWritingQuality: float64(r.WritingQuality.ProfessionalismScore),
		CategoryChronology:     math.Max(100-float64(len(r.Chronology.OrderIssues))*15, 0),
		CategoryUnnecessary:    float64(r.Modernization.ModernizationScore),
	}

	fs := &FinalScore{
		CategoryScores: scores,
		Weights:        CategoryWeights,
	}

	if len(r.Sections.MissingGate) > 0 {
		fs.Invalidated = true
		fs.MissingGate = r.Sections.MissingGate
		fs.FinalScore = 0
		fs.Grade = gradeFor(0)
		return fs
	}

	total := 0.0
	for _, key := range categoryOrder {
		total += scores[key] * CategoryWeights[key]
	}
	fs.FinalScore = clamp(total, 0, 100)
	fs.Grade = gradeFor(fs.FinalScore)
	return fs
}

func datesCategoryScore(c *ChronologyAnalysis) float64 {
	switch {
	case !c.HasDates:
		return 0
	case c.FormatConsistency && len(c.OrderIssues) == 0:
		return 100
	case c.FormatConsistency:
		return 60
	default:
		return 40
	}
}

func summaryCategoryScore(s *SummaryAnalysis) float64 {
	if !s.HasSummary {
		return 0
	}
	return float64(s.QualityScore)
}

// structureCategoryScore penalizes missing required sections, duplicates and
// illogical ordering, floored at zero.
func structureCategoryScore(s *SectionAnalysis) float64 {
	score := 100.0
	score -= float64(len(s.MissingRequired)) * 20
	score -= float64(len(s.DuplicatedSections)) * 10
	if !s.OrderLogical {
		score -= 15
	}
	if score < 0 {
		score = 0
	}
	return score
}

// atsCategoryScore is the unweighted mean of formatting, clamped readability,
// a buzzword-count score and a missing-required-section score.
func atsCategoryScore(r *Report) float64 {
	formatting := float64(r.Formatting.FormattingScore)
	readability := clamp(r.Readability.FleschScore, 0, 100)
	buzzwords := math.Max(100-float64(r.Buzzwords.TotalBuzzwords)*10, 0)
	sections := math.Max(100-float64(len(r.Sections.MissingRequired))*25, 0)
	return (formatting + readability + buzzwords + sections) / 4
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
