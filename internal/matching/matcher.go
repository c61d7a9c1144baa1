package matching

import (
	"fmt"
	"math"
	"strings"
)

// MatchResult describes how well a résumé covers a job description's skills.
type MatchResult struct {
	MatchPercentage float64  `json:"matchPercentage"`
	ResumeKeywords  []string `json:"resumeKeywords"`
	JobKeywords     []string `json:"jobKeywords"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	ResumeUnique    []string `json:"resumeUniqueKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// Match compares the skills found in a résumé against a job description.
// The percentage is job-centric: the share of the job's skills the résumé
// covers. A job description with no recognizable skills yields zero.
func Match(resumeText, jobDescription string) MatchResult {
	resumeKw := ExtractKeywords(resumeText)
	jobKw := ExtractKeywords(jobDescription)

	resumeSet := skillSet(resumeKw)
	jobSet := skillSet(jobKw)

	matched := make(map[string]struct{})
	missing := make(map[string]struct{})
	for term := range jobSet {
		if _, ok := resumeSet[term]; ok {
			matched[term] = struct{}{}
		} else {
			missing[term] = struct{}{}
		}
	}
	unique := make(map[string]struct{})
	for term := range resumeSet {
		if _, ok := jobSet[term]; !ok {
			unique[term] = struct{}{}
		}
	}

	pct := 0.0
	if len(jobSet) > 0 {
		pct = math.Round(float64(len(matched))/float64(len(jobSet))*1000) / 10
	}

	result := MatchResult{
		MatchPercentage: pct,
		ResumeKeywords:  sortedSlice(resumeSet),
		JobKeywords:     sortedSlice(jobSet),
		MatchedKeywords: sortedSlice(matched),
		MissingKeywords: sortedSlice(missing),
		ResumeUnique:    sortedSlice(unique),
	}
	result.Suggestions = matchSuggestions(result)
	return result
}

func matchSuggestions(result MatchResult) []string {
	var out []string
	if result.MatchPercentage < 70 {
		out = append(out, "Add more relevant keywords from the job description")
	}
	if len(result.MissingKeywords) > 0 {
		sample := result.MissingKeywords
		if len(sample) > 5 {
			sample = sample[:5]
		}
		out = append(out, fmt.Sprintf("Consider adding these skills: %s", strings.Join(sample, ", ")))
	}
	return out
}
