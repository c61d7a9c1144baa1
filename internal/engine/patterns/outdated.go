package patterns

// Outdated section severities and their modernization weights.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// SeverityWeights scale the modernization penalty per finding.
var SeverityWeights = map[string]int{
	SeverityHigh:   3,
	SeverityMedium: 2,
	SeverityLow:    1,
}

// OutdatedSection describes one section type that no longer belongs on a
// modern resume.
type OutdatedSection struct {
	Type           string
	Patterns       []string
	Description    string
	Severity       string
	Recommendation string
}

// Outdated section type names.
const (
	OutdatedReferences   = "references"
	OutdatedObjective    = "objective"
	OutdatedPersonalInfo = "personal_info"
	OutdatedHobbies      = "hobbies_interests"
	OutdatedSalary       = "salary_expectations"
)

// OutdatedSections is the registry of section types the modernization check
// scans for, in report order.
var OutdatedSections = []OutdatedSection{
	{
		Type:           OutdatedReferences,
		Patterns:       []string{"references", "reference available", "references upon request", "references provided"},
		Description:    "References section is outdated - employers will ask directly if needed",
		Severity:       SeverityMedium,
		Recommendation: "Remove references section. Employers will request references if needed during the interview process.",
	},
	{
		Type:           OutdatedObjective,
		Patterns:       []string{"objective", "career objective", "professional objective"},
		Description:    "Objective sections are considered outdated",
		Severity:       SeverityMedium,
		Recommendation: "Replace objective with a professional summary that highlights your skills and experience.",
	},
	{
		Type:           OutdatedPersonalInfo,
		Patterns:       []string{"date of birth", "age:", "marital status", "married", "single", "religion", "nationality", "gender:", "photo", "picture"},
		Description:    "Personal information is unnecessary and may lead to discrimination",
		Severity:       SeverityHigh,
		Recommendation: "Remove personal information like age, marital status, religion, or photos.",
	},
	{
		Type:           OutdatedHobbies,
		Patterns:       []string{"hobbies", "interests", "personal interests", "activities"},
		Description:    "Hobbies and interests sections are generally unnecessary unless directly relevant",
		Severity:       SeverityLow,
		Recommendation: "Consider removing hobbies/interests unless they directly relate to the job or show leadership.",
	},
	{
		Type:           OutdatedSalary,
		Patterns:       []string{"salary", "compensation", "expected salary", "salary range"},
		Description:    "Salary information should not be included in resumes",
		Severity:       SeverityHigh,
		Recommendation: "Remove salary information - discuss compensation during interviews.",
	},
}

// ReferencesContentPhrases catch a references habit written inline rather than
// as a header.
var ReferencesContentPhrases = []string{"available upon request", "provided upon request", "furnished upon request"}

// PassedCheckTypes are the outdated section types whose absence earns explicit
// positive feedback.
var PassedCheckTypes = []string{OutdatedReferences, OutdatedObjective}

// OutdatedHeaderMaxWords bounds how long a line can be and still count as a
// standalone section header for this check.
const OutdatedHeaderMaxWords = 4
