package engine

import (
	"regexp"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// SkillBalance classifies the technical/soft mix.
type SkillBalance struct {
	Balance        string  `json:"balance"`
	TechRatio      float64 `json:"techRatio"`
	Recommendation string  `json:"recommendation"`
}

// SkillsSectionQuality describes how the skills section itself is formatted.
type SkillsSectionQuality struct {
	HasDedicatedSection bool `json:"hasDedicatedSection"`
	HasCategories       bool `json:"hasCategories"`
	UsesSeparators      bool `json:"usesSeparators"`
}

// SkillsAnalysis inventories recognized skills by category.
type SkillsAnalysis struct {
	ByCategory      map[string][]string  `json:"skillsByCategory"`
	TotalTechnical  int                  `json:"totalTechnicalSkills"`
	TotalSoft       int                  `json:"totalSoftSkills"`
	OutdatedFound   []string             `json:"outdatedSkills"`
	SectionQuality  SkillsSectionQuality `json:"skillsSectionQuality"`
	Balance         SkillBalance         `json:"skillBalance"`
	Recommendations []string             `json:"recommendations"`
}

// skillMatchers holds one boundary-aware matcher per known term. Terms with
// symbols (c++, c#, node.js) defeat plain \b anchors, so boundaries are
// expressed as "not a word or symbol character" on both sides.
var skillMatchers = buildSkillMatchers()

func buildSkillMatchers() map[string]*regexp.Regexp {
	matchers := make(map[string]*regexp.Regexp)
	add := func(terms []string) {
		for _, term := range terms {
			matchers[term] = termMatcher(term)
		}
	}
	for _, cat := range patterns.TechnicalSkillCategoryOrder {
		add(patterns.TechnicalSkills[cat])
	}
	add(patterns.SoftSkills)
	add(patterns.OutdatedSkills)
	return matchers
}

func termMatcher(term string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9+#])` + regexp.QuoteMeta(strings.ToLower(term)) + `($|[^a-z0-9+#])`)
}

func matchesSkill(textLower, term string) bool {
	if m, ok := skillMatchers[term]; ok {
		return m.MatchString(textLower)
	}
	return termMatcher(term).MatchString(textLower)
}

// analyzeSkills matches the taxonomy against the document with word-boundary
// semantics, flags outdated technologies and judges balance and section
// formatting.
func analyzeSkills(doc *Document) *SkillsAnalysis {
	a := &SkillsAnalysis{ByCategory: make(map[string][]string)}

	for _, cat := range patterns.TechnicalSkillCategoryOrder {
		var found []string
		for _, skill := range patterns.TechnicalSkills[cat] {
			if matchesSkill(doc.TextLower, skill) {
				found = append(found, skill)
			}
		}
		a.ByCategory[cat] = found
		a.TotalTechnical += len(found)
	}
	var soft []string
	for _, skill := range patterns.SoftSkills {
		if matchesSkill(doc.TextLower, skill) {
			soft = append(soft, skill)
		}
	}
	a.ByCategory[patterns.SkillSoft] = soft
	a.TotalSoft = len(soft)

	for _, skill := range patterns.OutdatedSkills {
		if matchesSkill(doc.TextLower, skill) {
			a.OutdatedFound = append(a.OutdatedFound, skill)
		}
	}

	a.SectionQuality = skillsSectionQuality(doc)
	a.Balance = skillBalance(a.TotalTechnical, a.TotalSoft)
	a.Recommendations = skillsRecommendations(a)
	return a
}

// skillsSectionQuality finds a dedicated "skills" header line (three words or
// fewer) and inspects up to ten following lines for category structure and
// list separators.
func skillsSectionQuality(doc *Document) SkillsSectionQuality {
	var q SkillsSectionQuality
	for i, line := range doc.Lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "skills") || len(strings.Fields(line)) > 3 {
			continue
		}
		q.HasDedicatedSection = true
		end := i + 11
		if end > len(doc.Lines) {
			end = len(doc.Lines)
		}
		for _, body := range doc.Lines[i+1 : end] {
			bodyLower := strings.ToLower(body)
			if identifySection(body) != "" && !strings.Contains(bodyLower, "skills") {
				break
			}
			if strings.Contains(bodyLower, ":") ||
				containsAny(bodyLower, []string{"languages", "frameworks", "tools", "databases", "technologies"}) {
				q.HasCategories = true
			}
			if containsAny(body, patterns.SkillSectionSeparators) {
				q.UsesSeparators = true
			}
		}
		break
	}
	return q
}

// skillBalance applies the ratio thresholds over the found counts.
func skillBalance(technical, soft int) SkillBalance {
	total := technical + soft
	if total == 0 {
		return SkillBalance{Balance: patterns.BalanceNoSkills, Recommendation: "Add both technical and soft skills"}
	}
	ratio := float64(technical) / float64(total)
	b := SkillBalance{TechRatio: ratio}
	switch {
	case technical == 0:
		b.Balance = patterns.BalanceNoTechnical
		b.Recommendation = "Add technical skills relevant to your target role"
	case soft == 0:
		b.Balance = patterns.BalanceNoSoft
		b.Recommendation = "Add soft skills like leadership or communication"
	case ratio > patterns.TechHeavyRatio:
		b.Balance = patterns.BalanceTechHeavy
		b.Recommendation = "Balance technical skills with a few soft skills"
	case ratio < patterns.SoftHeavyRatio:
		b.Balance = patterns.BalanceSoftHeavy
		b.Recommendation = "Add more technical skills to support your experience"
	default:
		b.Balance = patterns.BalanceBalanced
		b.Recommendation = "Good balance of technical and soft skills"
	}
	return b
}

func skillsRecommendations(a *SkillsAnalysis) []string {
	var recs []string
	if a.TotalTechnical+a.TotalSoft == 0 {
		recs = append(recs, "Add a skills section listing technical and soft skills")
	}
	if len(a.OutdatedFound) > 0 {
		recs = append(recs, "Remove outdated technologies: "+strings.Join(a.OutdatedFound, ", "))
	}
	if a.SectionQuality.HasDedicatedSection && !a.SectionQuality.HasCategories {
		recs = append(recs, "Organize skills into categories (languages, frameworks, tools)")
	}
	if a.Balance.Balance != patterns.BalanceBalanced && a.Balance.Recommendation != "" {
		recs = append(recs, a.Balance.Recommendation)
	}
	return recs
}
