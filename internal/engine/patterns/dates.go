package patterns

import "regexp"

// Date format buckets used by the chronology analyzer. More than two distinct
// buckets in one resume is flagged as inconsistent formatting.
const (
	DateFormatMonthYear    = "Month_Year"
	DateFormatNumericShort = "Numeric_Short"
	DateFormatYearRange    = "Year_Range"
	DateFormatOther        = "Other"
)

// DatePatterns is the ordered list of date expressions the chronology
// analyzer scans for. Order matters: earlier patterns are more specific and
// their matches are recorded first.
var DatePatterns = compileAllCI(
	// Full month names with years.
	`(?P<month>January|February|March|April|May|June|July|August|September|October|November|December)\s+(?P<year>\d{4})`,
	// Abbreviated month names with years.
	`(?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(?P<year>\d{4})`,
	// Numeric dates MM/YYYY or MM-YYYY.
	`(?P<month>\d{1,2})[/\-](?P<year>\d{4})`,
	// Year-only ranges, possibly open-ended.
	`(?P<year>\d{4})\s*[-–—]\s*(?P<endyear>\d{4}|present|current|now)`,
	// Month-to-month ranges.
	`(?P<startmonth>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(?P<startyear>\d{4})\s*[-–—]\s*(?P<endmonth>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(?P<endyear>\d{4})`,
	// Year ranges spelled with "to".
	`(?P<year>\d{4})\s+to\s+(?P<endyear>\d{4}|present|current)`,
	// Graduation phrasing.
	`graduated?\s+(?P<year>\d{4})`,
	`class\s+of\s+(?P<year>\d{4})`,
	// Plain employment ranges.
	`(?P<startyear>\d{4})\s*-\s*(?P<endyear>\d{4})`,
	// Isolated years, restricted to a plausible window so ordinary numbers
	// do not match.
	`\b(?P<year>19[5-9]\d|20[0-4]\d)\b`,
	// Seasons with years.
	`(?P<season>Spring|Summer|Fall|Winter|Autumn)\s+(?P<year>\d{4})`,
)

// DateFormatMonthYearPrefix classifies matches such as "Jan 2020".
var DateFormatMonthYearPrefix = regexp.MustCompile(`^[A-Za-z]{3}\s+\d{4}`)

// DateFormatNumericPrefix classifies matches such as "01/2020".
var DateFormatNumericPrefix = regexp.MustCompile(`^\d{1,2}[/\-]\d{4}`)

// DateFormatYearRangePrefix classifies matches such as "2019 - 2021".
var DateFormatYearRangePrefix = regexp.MustCompile(`^\d{4}\s*[-–—]`)

// JobTitleWords mark lines that describe a position and therefore ought to
// carry a date somewhere nearby.
var JobTitleWords = []string{"engineer", "manager", "analyst", "developer", "coordinator", "specialist", "director"}

func compileAllCI(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+expr))
	}
	return out
}
