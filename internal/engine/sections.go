package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// Section is one detected resume region. DetectedViaHeader distinguishes
// explicit headers from content-based inference.
type Section struct {
	Name              string `json:"name"`
	DetectedViaHeader bool   `json:"detectedViaHeader"`
	LineIndex         int    `json:"lineIndex"`
}

// SectionAnalysis is the shared, read-only section picture every downstream
// analyzer consumes.
type SectionAnalysis struct {
	Sections           []Section      `json:"sections"`
	DetectedSections   []string       `json:"detectedSections"`
	Positions          map[string]int `json:"sectionPositions"`
	MissingRequired    []string       `json:"missingRequired"`
	PresentOptional    []string       `json:"presentOptional"`
	DuplicatedSections []string       `json:"duplicatedSections"`
	OrderIssues        []string       `json:"orderIssues"`
	OrderLogical       bool           `json:"orderLogical"`
	MissingGate        []string       `json:"missingGate"`
	Recommendations    []string       `json:"recommendations"`
}

// Has reports whether the named section was detected.
func (s *SectionAnalysis) Has(name string) bool {
	_, ok := s.Positions[name]
	return ok
}

// detectSections scans for explicit headers, falls back to content inference
// for contact, education, skills and projects, and judges completeness, order
// and duplication.
func detectSections(doc *Document) *SectionAnalysis {
	var (
		detections []Section
		positions  = make(map[string]int)
		counts     = make(map[string]int)
	)

	for i, line := range doc.Lines {
		name := identifySection(line)
		if name == "" {
			continue
		}
		counts[name]++
		if _, ok := positions[name]; !ok {
			positions[name] = i
			detections = append(detections, Section{Name: name, DetectedViaHeader: true, LineIndex: i})
		}
	}

	// Content inference for sections commonly written without a header.
	if _, ok := positions[patterns.SectionContact]; !ok {
		limit := len(doc.Lines)
		if limit > 10 {
			limit = 10
		}
	scan:
		for _, line := range doc.Lines[:limit] {
			lower := strings.ToLower(line)
			for _, pat := range patterns.ContactInferencePatterns {
				if pat.MatchString(lower) {
					positions[patterns.SectionContact] = 0
					detections = append([]Section{{Name: patterns.SectionContact, LineIndex: 0}}, detections...)
					break scan
				}
			}
		}
	}
	inferFromBody(doc, patterns.SectionEducation, patterns.EducationInferencePatterns, positions, &detections)
	inferFromBody(doc, patterns.SectionSkills, patterns.SkillsInferencePatterns, positions, &detections)
	inferFromBody(doc, patterns.SectionProjects, patterns.ProjectsInferencePatterns, positions, &detections)

	analysis := &SectionAnalysis{
		Sections:  detections,
		Positions: positions,
	}
	for _, name := range patterns.CanonicalSectionOrder {
		if _, ok := positions[name]; ok {
			analysis.DetectedSections = append(analysis.DetectedSections, name)
		}
	}
	for _, name := range patterns.RequiredSections {
		if _, ok := positions[name]; !ok {
			analysis.MissingRequired = append(analysis.MissingRequired, name)
		}
	}
	for _, name := range patterns.GateSections {
		if _, ok := positions[name]; !ok {
			analysis.MissingGate = append(analysis.MissingGate, name)
		}
	}
	for _, name := range patterns.OptionalSections {
		if _, ok := positions[name]; ok {
			analysis.PresentOptional = append(analysis.PresentOptional, name)
		}
	}
	for name, n := range counts {
		if n > 1 {
			analysis.DuplicatedSections = append(analysis.DuplicatedSections, name)
		}
	}
	sort.Strings(analysis.DuplicatedSections)

	analysis.OrderIssues = sectionOrderIssues(positions)
	analysis.OrderLogical = len(analysis.OrderIssues) == 0
	analysis.Recommendations = sectionRecommendations(analysis)
	return analysis
}

func inferFromBody(doc *Document, name string, pats []*regexp.Regexp, positions map[string]int, detections *[]Section) {
	if _, ok := positions[name]; ok {
		return
	}
	for _, pat := range pats {
		if pat.MatchString(doc.TextLower) {
			positions[name] = len(*detections)
			*detections = append(*detections, Section{Name: name, LineIndex: len(*detections)})
			return
		}
	}
}

// identifySection classifies a single line as a section header, or returns
// the empty string. Exact matches win; short lines fall back to keyword
// containment with an education carve-out; sentence-case prefixes catch the
// rest.
func identifySection(line string) string {
	if len(line) < 2 || len(line) > 60 {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	isCaps := line == strings.ToUpper(line) && line != strings.ToLower(line)

	for _, pat := range patterns.ContactLinePatterns {
		if pat.MatchString(lower) {
			return patterns.SectionContact
		}
	}

	for _, name := range patterns.CanonicalSectionOrder {
		for _, header := range patterns.SectionExactHeaders[name] {
			if lower == header {
				return name
			}
		}
	}

	wordCount := len(strings.Fields(line))
	if (isCaps && wordCount <= 4) || wordCount <= 2 {
		for _, name := range patterns.CanonicalSectionOrder {
			for _, keyword := range patterns.SectionKeywords[name] {
				if !strings.Contains(lower, keyword) {
					continue
				}
				if name == patterns.SectionEducation && containsAny(lower, patterns.EducationContentTerms) {
					continue
				}
				return name
			}
		}
	}

	for _, name := range patterns.CanonicalSectionOrder {
		for _, pat := range patterns.SectionLinePrefixes[name] {
			if pat.MatchString(lower) {
				return name
			}
		}
	}
	return ""
}

// sectionOrderIssues compares detected positions against the canonical
// sequence. Any deviation is one flagged issue, not a per-pair diff, so
// duplicate headers can never add issues on their own.
func sectionOrderIssues(positions map[string]int) []string {
	rank := make(map[string]int, len(patterns.CanonicalSectionOrder))
	for i, name := range patterns.CanonicalSectionOrder {
		rank[name] = i
	}

	type placed struct {
		name string
		pos  int
	}
	var order []placed
	for name, pos := range positions {
		order = append(order, placed{name, pos})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].pos != order[j].pos {
			return order[i].pos < order[j].pos
		}
		return rank[order[i].name] < rank[order[j].name]
	})

	for i := 1; i < len(order); i++ {
		if rank[order[i].name] < rank[order[i-1].name] {
			return []string{fmt.Sprintf("sections are out of order: %q appears after %q", order[i].name, order[i-1].name)}
		}
	}
	return nil
}

func sectionRecommendations(a *SectionAnalysis) []string {
	var recs []string
	for _, name := range a.MissingRequired {
		recs = append(recs, fmt.Sprintf("Add a %s section", name))
	}
	if len(a.DuplicatedSections) > 0 {
		recs = append(recs, "Merge duplicated sections into one")
	}
	if !a.OrderLogical {
		recs = append(recs, "Reorder sections: contact, summary, experience, education, skills")
	}
	return recs
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
