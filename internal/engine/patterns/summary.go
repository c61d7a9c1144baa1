package patterns

import "regexp"

// SummaryHeaderKeywords identify a summary header when one appears in a line
// of at most SummaryHeaderMaxWords words.
var SummaryHeaderKeywords = []string{"summary", "objective", "profile", "about"}

// Summary extraction limits.
const (
	SummaryHeaderMaxWords    = 5
	SummaryMaxLines          = 6
	SummaryInferredMaxLines  = 3
	SummaryInferredMinWords  = 15
	SummaryInferredMaxWords  = 80
	SummaryShortWordCount    = 20
	SummaryLongWordCount     = 100
)

// GenericSummaryPhrases are filler phrases that lower summary quality.
var GenericSummaryPhrases = []string{
	"seeking opportunities", "looking for", "hard worker", "team player",
	"results driven", "detail oriented", "fast learner", "motivated individual",
	"excellent communication skills", "problem solver", "self starter",
}

// SummarySpecificSkillPattern checks that the summary names at least one
// concrete skill or field.
var SummarySpecificSkillPattern = regexp.MustCompile(`(?i)\b(python|java|sql|marketing|sales|engineering|management)\b`)
