package engine

import (
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// Criterion is one of the twelve fixed user-facing quality dimensions, scored
// 0-5 with a templated explanation.
type Criterion struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Display criterion names, in report order.
const (
	CriterionQuantifyImpact   = "Quantify Impact"
	CriterionDates            = "Dates & Chronology"
	CriterionSummary          = "Summary"
	CriterionActionVerbs      = "Action Verbs"
	CriterionBuzzwords        = "Buzzwords"
	CriterionSkillsSection    = "Skills Section"
	CriterionExperience       = "Experience & Projects"
	CriterionATS              = "ATS Compatibility"
	CriterionWritingQuality   = "Writing Quality"
	CriterionReadability      = "Readability"
	CriterionFormatting       = "Formatting"
	CriterionUnnecessary      = "Unnecessary Sections"
)

// buildCriteria synthesizes the twelve display criteria from the detector
// outputs. These are cosmetic: only the aggregator's category scores feed the
// weighted total.
func buildCriteria(r *Report) []Criterion {
	return []Criterion{
		quantifyCriterion(r.Quantification),
		datesCriterion(r.Chronology),
		summaryCriterion(r.Summary),
		actionVerbsCriterion(r.ActionVerbs),
		buzzwordsCriterion(r.Buzzwords),
		skillsCriterion(r.Skills),
		experienceCriterion(r.Sections),
		atsCriterion(r),
		writingCriterion(r.WritingQuality),
		readabilityCriterion(r.Readability),
		formattingCriterion(r.Formatting),
		unnecessaryCriterion(r.Modernization),
	}
}

func scale(score float64) int {
	n := int(score / 20)
	if n > 5 {
		n = 5
	}
	if n < 0 {
		n = 0
	}
	return n
}

func quantifyCriterion(q *QuantificationAnalysis) Criterion {
	score := scale(q.Percentage)
	desc := fmt.Sprintf("Your resume has %.1f%% quantified achievements. ", q.Percentage)
	switch {
	case score <= 1:
		desc += "Add specific numbers, percentages, and metrics to demonstrate your impact."
	case score <= 3:
		desc += "Good start! Add more measurable results to strengthen your achievements."
	default:
		desc += "Excellent use of quantifiable metrics and results!"
	}
	return Criterion{Name: CriterionQuantifyImpact, Score: score, Description: desc}
}

// datesCriterion folds date presence, format consistency and chronological
// order into one criterion.
func datesCriterion(c *ChronologyAnalysis) Criterion {
	var score int
	var desc string
	switch {
	case !c.HasDates:
		score = 0
		desc = "No dates found on your resume. Add start and end dates to all work experience and education entries."
	case c.FormatConsistency && len(c.OrderIssues) == 0:
		score = 5
		desc = fmt.Sprintf("Found %d properly formatted dates in reverse chronological order with good consistency.", c.TotalDateRanges)
	case c.FormatConsistency:
		score = 3
		desc = fmt.Sprintf("Found %d dates but check chronological order: list the most recent position first.", c.TotalDateRanges)
	default:
		score = 2
		desc = fmt.Sprintf("Found %d dates but they need consistent formatting throughout.", c.TotalDateRanges)
	}
	return Criterion{Name: CriterionDates, Score: score, Description: desc}
}

func summaryCriterion(s *SummaryAnalysis) Criterion {
	if !s.HasSummary {
		return Criterion{
			Name:        CriterionSummary,
			Score:       0,
			Description: "No professional summary found. Add a 2-3 line summary highlighting your skills and experience.",
		}
	}
	score := scale(float64(s.QualityScore))
	var desc string
	switch {
	case score <= 1:
		issues := s.Issues
		if len(issues) > 2 {
			issues = issues[:2]
		}
		desc = "Summary needs improvement. Issues: " + strings.Join(issues, ", ")
	case score <= 3:
		hint := "adding more specific skills"
		if len(s.Recommendations) > 0 {
			hint = s.Recommendations[0]
		}
		desc = "Good summary foundation. Consider: " + hint
	default:
		desc = "Excellent professional summary! Well-written and specific."
	}
	return Criterion{Name: CriterionSummary, Score: score, Description: desc}
}

func actionVerbsCriterion(v *ActionVerbAnalysis) Criterion {
	score := scale(v.ActionVerbScore)
	var desc string
	switch {
	case score >= 4:
		used := 0
		for _, n := range v.CategoriesUsed {
			if n > 0 {
				used++
			}
		}
		desc = fmt.Sprintf("Excellent! %.1f%% strong action verbs with good diversity across %d categories.", v.StrongPercentage, used)
	case score >= 3:
		desc = fmt.Sprintf("Good use of action verbs (%.1f%% strong). Consider diversifying verb categories for better impact.", v.StrongPercentage)
	case score >= 2:
		desc = fmt.Sprintf("Moderate action verb usage (%.1f%% strong). Replace weak verbs like 'responsible for' with stronger alternatives.", v.StrongPercentage)
	default:
		desc = fmt.Sprintf("Poor action verb usage (%.1f%% strong). Start bullets with powerful verbs like 'Led', 'Developed', 'Achieved'.", v.StrongPercentage)
	}
	return Criterion{Name: CriterionActionVerbs, Score: score, Description: desc}
}

func buzzwordsCriterion(b *BuzzwordAnalysis) Criterion {
	score := scale(b.Score)
	var desc string
	switch {
	case b.TotalBuzzwords == 0:
		desc = "Excellent! No generic buzzwords detected. Your resume uses specific, professional language."
	case b.TotalBuzzwords <= 2:
		desc = fmt.Sprintf("Found %d buzzwords (%q). Replace with specific achievements and metrics.", b.TotalBuzzwords, b.Found[0].Word)
	default:
		critical := ""
		for _, f := range b.Found {
			if f.Severity == patterns.BuzzwordCritical {
				critical = f.Word
				break
			}
		}
		if critical != "" {
			desc = fmt.Sprintf("Found %d buzzwords including critical ones like %q. Replace with quantified achievements.", b.TotalBuzzwords, critical)
		} else {
			desc = fmt.Sprintf("Found %d buzzwords. Focus on specific achievements rather than generic descriptors.", b.TotalBuzzwords)
		}
	}
	return Criterion{Name: CriterionBuzzwords, Score: score, Description: desc}
}

func skillsCriterion(s *SkillsAnalysis) Criterion {
	total := s.TotalTechnical + s.TotalSoft
	var score int
	var desc string
	switch {
	case total == 0:
		score = 0
		desc = "No skills section found. Add technical and soft skills relevant to your target role."
	case total < 5:
		score = 2
		desc = fmt.Sprintf("Found %d skills. Add more relevant technical skills and organize them into categories.", total)
	case s.Balance.Balance == patterns.BalanceBalanced:
		score = 5
		desc = fmt.Sprintf("Excellent! Found %d well-balanced skills across technical and soft skill categories.", total)
	default:
		score = 3
		desc = fmt.Sprintf("Found %d skills. %s", total, s.Balance.Recommendation)
	}
	return Criterion{Name: CriterionSkillsSection, Score: score, Description: desc}
}

// experienceCriterion rewards having both an experience history and a
// projects section; projects alone is acceptable for early-career resumes.
func experienceCriterion(s *SectionAnalysis) Criterion {
	hasExperience := s.Has(patterns.SectionExperience)
	hasProjects := s.Has(patterns.SectionProjects)
	var score int
	var desc string
	switch {
	case !hasExperience && !hasProjects:
		score = 0
		desc = "No Experience or Projects section found. Add a work experience section and/or a projects section highlighting what you built and your impact."
	case hasExperience && hasProjects:
		score = 5
		desc = "Great! Your resume includes both Experience and Projects sections, giving a clear view of your professional history and hands-on work."
	case hasExperience:
		score = 4
		desc = "Experience section found but no dedicated Projects section. Consider adding one to showcase key work, personal, or academic projects."
	default:
		score = 3
		desc = "Projects section found but no Experience section. Add internships, part-time roles, or relevant experience when possible."
	}
	return Criterion{Name: CriterionExperience, Score: score, Description: desc}
}

// atsCriterion averages four factor sub-scores: formatting, readability,
// buzzword count and required-section presence.
func atsCriterion(r *Report) Criterion {
	factors := []int{
		thresholdFactor(float64(r.Formatting.FormattingScore), 90, 70, 50),
		thresholdFactor(r.Readability.FleschScore, 60, 40, 20),
		countFactor(r.Buzzwords.TotalBuzzwords, 2, 4, 6),
		countFactor(len(r.Sections.MissingRequired), 0, 1, 2),
	}
	sum := 0
	for _, f := range factors {
		sum += f
	}
	score := (sum + len(factors)/2) / len(factors) // rounded mean

	var desc string
	switch {
	case score >= 5:
		desc = "Excellent ATS compatibility! Clean formatting, good readability, minimal buzzwords, and complete sections."
	case score >= 4:
		desc = "Good ATS compatibility. Minor improvements in formatting or keyword usage could help."
	case score >= 3:
		desc = "Moderate ATS compatibility. Focus on cleaner formatting and reducing buzzwords."
	default:
		desc = "Poor ATS compatibility. Needs better formatting, structure, and keyword optimization."
	}
	return Criterion{Name: CriterionATS, Score: score, Description: desc}
}

// thresholdFactor maps a 0-100 value to a 2-5 factor by descending cutoffs.
func thresholdFactor(v float64, hi, mid, lo float64) int {
	switch {
	case v >= hi:
		return 5
	case v >= mid:
		return 4
	case v >= lo:
		return 3
	default:
		return 2
	}
}

// countFactor maps a count to a 2-5 factor by ascending cutoffs.
func countFactor(n, best, good, fair int) int {
	switch {
	case n <= best:
		return 5
	case n <= good:
		return 4
	case n <= fair:
		return 3
	default:
		return 2
	}
}

func writingCriterion(w *WritingQualityAnalysis) Criterion {
	score := scale(float64(w.ProfessionalismScore))
	var desc string
	switch {
	case score >= 4:
		desc = fmt.Sprintf("Excellent writing quality! Professional tone with minimal issues. Professionalism score: %d/100.", w.ProfessionalismScore)
	case score >= 3:
		desc = fmt.Sprintf("Good writing quality with room for improvement. Consider reducing passive voice (%d) and pronouns (%d).", w.PassiveVoiceCount, w.PronounCount)
	default:
		var issues []string
		if n := len(w.InformalWords); n > 0 {
			issues = append(issues, fmt.Sprintf("%d informal words", n))
		}
		if w.PassiveVoiceCount > 3 {
			issues = append(issues, fmt.Sprintf("%d passive voice instances", w.PassiveVoiceCount))
		}
		if w.PronounCount > 5 {
			issues = append(issues, fmt.Sprintf("%d personal pronouns", w.PronounCount))
		}
		if len(issues) == 0 {
			issues = append(issues, "multiple areas need attention")
		}
		desc = "Writing needs improvement. Issues: " + strings.Join(issues, ", ") + "."
	}
	return Criterion{Name: CriterionWritingQuality, Score: score, Description: desc}
}

func readabilityCriterion(r *ReadabilityAnalysis) Criterion {
	score := scale(clamp(r.FleschScore, 0, 100))
	if score < 1 {
		score = 1
	}
	var desc string
	switch {
	case score >= 4:
		desc = fmt.Sprintf("Excellent readability! Flesch score: %.1f (easy to read), grade level: %.1f.", r.FleschScore, r.GradeLevel)
	case score >= 3:
		desc = fmt.Sprintf("Good readability with Flesch score: %.1f. Consider simplifying complex sentences for better clarity.", r.FleschScore)
	default:
		desc = fmt.Sprintf("Poor readability. Flesch score: %.1f (difficult to read). Simplify sentences and use clearer language.", r.FleschScore)
	}
	return Criterion{Name: CriterionReadability, Score: score, Description: desc}
}

func formattingCriterion(f *FormattingAnalysis) Criterion {
	score := scale(float64(f.FormattingScore))
	var desc string
	switch {
	case score >= 4:
		desc = fmt.Sprintf("Excellent formatting! Consistent bullets and dates. Formatting score: %d/100.", f.FormattingScore)
	case score >= 3:
		desc = "Good formatting with minor inconsistencies. Ensure consistent bullet styles and date formats throughout."
	default:
		var issues []string
		if !f.BulletConsistency {
			issues = append(issues, "inconsistent bullet styles")
		}
		if !f.DateConsistency {
			issues = append(issues, "inconsistent date formats")
		}
		if len(issues) == 0 {
			issues = append(issues, "multiple formatting issues detected")
		}
		desc = "Formatting needs improvement: " + strings.Join(issues, ", ") + "."
	}
	return Criterion{Name: CriterionFormatting, Score: score, Description: desc}
}

func unnecessaryCriterion(m *ModernizationAnalysis) Criterion {
	score := scale(float64(m.ModernizationScore))
	var desc string
	switch {
	case m.ModernizationScore >= 90:
		desc = "Excellent! No outdated sections detected. Your resume follows modern hiring standards."
	case m.ModernizationScore >= 70:
		desc = fmt.Sprintf("Good modernization with %d minor issues. Consider removing outdated elements for a cleaner presentation.", m.TotalIssues)
	case m.ModernizationScore >= 50:
		desc = fmt.Sprintf("Found %d outdated sections. Remove references, objectives, and other unnecessary elements to modernize your resume.", m.TotalIssues)
	default:
		desc = fmt.Sprintf("Multiple outdated sections detected (%d issues). Remove references, personal photos, and irrelevant personal information.", m.TotalIssues)
	}
	return Criterion{Name: CriterionUnnecessary, Score: score, Description: desc}
}
