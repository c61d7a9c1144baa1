package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// DateMatch is one date occurrence with its format bucket.
type DateMatch struct {
	Text   string `json:"text"`
	Format string `json:"format"`
	Line   int    `json:"line"`
}

// ChronologyAnalysis reports date coverage, format consistency and timeline
// order.
type ChronologyAnalysis struct {
	HasDates           bool        `json:"hasDates"`
	TotalDateRanges    int         `json:"totalDateRanges"`
	Matches            []DateMatch `json:"dateRanges"`
	FormatsFound       []string    `json:"dateFormatsFound"`
	FormatConsistency  bool        `json:"formatConsistency"`
	OrderIssues        []string    `json:"chronologicalOrderIssues"`
	MissingDateEntries []string    `json:"missingDateEntries"`
	Severity           string      `json:"severity"`
	Recommendations    []string    `json:"recommendations"`
}

var yearToken = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)

// analyzeChronology scans every line with the ordered date patterns,
// classifies formats, flags job-title lines with no date in a four-line
// window, and checks that extracted years run most-recent first.
func analyzeChronology(doc *Document) *ChronologyAnalysis {
	a := &ChronologyAnalysis{}

	seen := make(map[string]struct{})
	formats := make(map[string]struct{})
	for i, line := range doc.Lines {
		for _, pat := range patterns.DatePatterns {
			for _, m := range pat.FindAllString(line, -1) {
				key := fmt.Sprintf("%d:%s", i, m)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				format := classifyDateFormat(m)
				formats[format] = struct{}{}
				a.Matches = append(a.Matches, DateMatch{Text: m, Format: format, Line: i})
			}
		}
	}
	a.TotalDateRanges = len(a.Matches)
	a.HasDates = a.TotalDateRanges > 0
	for _, f := range []string{patterns.DateFormatMonthYear, patterns.DateFormatNumericShort, patterns.DateFormatYearRange, patterns.DateFormatOther} {
		if _, ok := formats[f]; ok {
			a.FormatsFound = append(a.FormatsFound, f)
		}
	}
	a.FormatConsistency = len(a.FormatsFound) <= 2

	a.MissingDateEntries = findMissingDateEntries(doc)
	a.OrderIssues = chronologicalOrderIssues(a.Matches)

	switch {
	case !a.HasDates:
		a.Severity = "critical"
		a.Recommendations = []string{
			"Add dates to all work experience entries",
			"Include education dates or graduation year",
			"Use a consistent date format throughout",
			"List entries in reverse chronological order",
		}
	case !a.FormatConsistency || len(a.OrderIssues) > 0:
		a.Severity = "medium"
		if !a.FormatConsistency {
			a.Recommendations = append(a.Recommendations, "Standardize on one or two date formats")
		}
		if len(a.OrderIssues) > 0 {
			a.Recommendations = append(a.Recommendations, "List positions most recent first")
		}
	default:
		a.Severity = "none"
	}
	if len(a.MissingDateEntries) > 0 {
		a.Recommendations = append(a.Recommendations, "Add dates to the listed position entries")
	}
	return a
}

// classifyDateFormat buckets a matched date string by its leading shape.
func classifyDateFormat(match string) string {
	switch {
	case patterns.DateFormatMonthYearPrefix.MatchString(match):
		return patterns.DateFormatMonthYear
	case patterns.DateFormatNumericPrefix.MatchString(match):
		return patterns.DateFormatNumericShort
	case patterns.DateFormatYearRangePrefix.MatchString(match):
		return patterns.DateFormatYearRange
	default:
		return patterns.DateFormatOther
	}
}

// findMissingDateEntries reports job-title lines with no date pattern in the
// window from one line above to two below, capped at three examples.
func findMissingDateEntries(doc *Document) []string {
	var missing []string
	for i, line := range doc.Lines {
		lower := strings.ToLower(line)
		if !containsAny(lower, patterns.JobTitleWords) {
			continue
		}
		start := i - 1
		if start < 0 {
			start = 0
		}
		end := i + 3
		if end > len(doc.Lines) {
			end = len(doc.Lines)
		}
		window := strings.Join(doc.Lines[start:end], "\n")
		found := false
		for _, pat := range patterns.DatePatterns {
			if pat.MatchString(window) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, line)
			if len(missing) == 3 {
				break
			}
		}
	}
	return missing
}

// chronologicalOrderIssues takes the start year of each dated line, in
// document order, and reports one issue if the sequence ever increases
// (resumes should run most recent first). Only the first year per line counts
// so that a range's end year cannot flag its own entry.
func chronologicalOrderIssues(matches []DateMatch) []string {
	var years []int
	lastLine := -1
	for _, m := range matches {
		if m.Line == lastLine {
			continue
		}
		if y := yearToken.FindString(m.Text); y != "" {
			if n, err := strconv.Atoi(y); err == nil {
				years = append(years, n)
				lastLine = m.Line
			}
		}
	}
	for i := 1; i < len(years); i++ {
		if years[i] > years[i-1] {
			return []string{"entries are not in reverse chronological order (most recent first)"}
		}
	}
	return nil
}
