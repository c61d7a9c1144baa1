package patterns

import "regexp"

// BulletMarkerPatterns extract bullet text from marked lines. All four styles
// are recognized; extraction runs each pattern over the whole text in
// multiline mode and deduplicates the results.
var BulletMarkerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[•·▪▫‣⁃]\s*(.+)`),
	regexp.MustCompile(`(?m)^[\s]*[\-\*]\s+(.+)`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s+(.+)`),
	regexp.MustCompile(`(?m)^\s*[➤►▶]\s*(.+)`),
}

// GlyphBulletPattern restricts to glyph-marked bullets; the quantification
// and readability analyzers use only these.
var GlyphBulletPattern = regexp.MustCompile(`[•·▪▫‣⁃]\s*(.+)`)

// GlyphBulletLinePrefix matches a line that opens with a glyph bullet, used
// for style-consistency checks.
var GlyphBulletLinePrefix = regexp.MustCompile(`^\s*[•·▪▫‣⁃]`)

// FormattingDatePattern finds date-like tokens for the format-consistency
// check, looser than the chronology patterns on purpose.
var FormattingDatePattern = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+ \d{4}|\d{4}`)

// Formatting date normalization buckets.
const (
	DateStyleYearOnly  = "year_only"
	DateStyleMonthYear = "month_year"
	DateStyleFullDate  = "full_date"
)

var (
	dateStyleYearPrefix      = regexp.MustCompile(`^\d{4}`)
	dateStyleMonthYearPrefix = regexp.MustCompile(`^\w+ \d{4}`)
)

// NormalizeDateStyle buckets a formatting date token by its shape.
func NormalizeDateStyle(token string) string {
	switch {
	case dateStyleYearPrefix.MatchString(token):
		return DateStyleYearOnly
	case dateStyleMonthYearPrefix.MatchString(token):
		return DateStyleMonthYear
	default:
		return DateStyleFullDate
	}
}
