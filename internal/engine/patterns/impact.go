package patterns

import "regexp"

// Impact pattern keys. Each key names one family of quantifiable claims; a
// bullet matching any family counts as quantified.
const (
	ImpactPercentages  = "percentages"
	ImpactDollars      = "dollar_amounts"
	ImpactLargeNumbers = "large_numbers"
	ImpactTimeSaved    = "time_saved"
	ImpactPerformance  = "performance_metrics"
	ImpactTeamSizes    = "team_sizes"
	ImpactCustomers    = "customer_metrics"
	ImpactProjects     = "project_scope"
)

// ImpactPatternKeys lists the families in report order.
var ImpactPatternKeys = []string{
	ImpactPercentages,
	ImpactDollars,
	ImpactLargeNumbers,
	ImpactTimeSaved,
	ImpactPerformance,
	ImpactTeamSizes,
	ImpactCustomers,
	ImpactProjects,
}

// ImpactPatterns maps each family to its expression.
var ImpactPatterns = map[string]*regexp.Regexp{
	ImpactPercentages:  regexp.MustCompile(`\d+\.?\d*%`),
	ImpactDollars:      regexp.MustCompile(`\$[\d,]+(?:\.\d+)?[KMB]?`),
	ImpactLargeNumbers: regexp.MustCompile(`\d+[KMB]|\d{1,3}(?:,\d{3})+`),
	ImpactTimeSaved:    regexp.MustCompile(`(?i)(?:saved|reduced|decreased).*?(\d+).*?(hours?|days?|weeks?|months?)`),
	ImpactPerformance:  regexp.MustCompile(`(?i)(?:increased|improved|enhanced|boosted|grew).*?(\d+\.?\d*)%?`),
	ImpactTeamSizes:    regexp.MustCompile(`(?i)(?:team|group) of (\d+)|led (\d+)|managed (\d+)`),
	ImpactCustomers:    regexp.MustCompile(`(?i)(\d+)\+?\s*(?:customers?|clients?|users?|requests?)`),
	ImpactProjects:     regexp.MustCompile(`(?i)(\d+)\+?\s*(?:projects?|initiatives?|campaigns?)`),
}

// TaskLanguageIndicators mark bullets that describe duties without outcomes;
// a bullet containing one of these and no impact pattern is flagged vague.
var TaskLanguageIndicators = []string{"managed", "handled", "worked on", "responsible for", "involved in"}

// QuantificationTarget is the quantified-bullet share treated as meeting the
// bar for display purposes.
const QuantificationTarget = 30.0

// BulletNumberPattern is the loose numeric check used for per-bullet impact
// sub-scores (any digit optionally followed by a unit marker).
var BulletNumberPattern = regexp.MustCompile(`\d+[%$KMB]?`)

// BulletImprovementPattern detects an improvement verb followed by a number
// within a bullet, worth a small impact bonus.
var BulletImprovementPattern = regexp.MustCompile(`(?i)(?:increased|improved|reduced|saved|generated).*?\d+`)
