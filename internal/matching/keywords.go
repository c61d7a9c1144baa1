package matching

import (
	"regexp"
	"sort"
	"strings"
)

// techKeywords are the technology terms scanned for in résumés and job
// descriptions.
var techKeywords = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue", "node",
	"express", "django", "flask", "spring", "docker", "kubernetes", "aws", "azure",
	"gcp", "sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "git",
	"ci/cd", "jenkins", "terraform", "ansible", "linux", "agile", "scrum", "rest",
	"api", "microservices", "machine learning", "ai", "data science", "tensorflow",
	"pytorch", "spark", "hadoop", "pandas", "numpy", "scikit-learn",
}

var softSkillKeywords = []string{
	"leadership", "communication", "teamwork", "problem-solving", "analytical",
	"creative", "organized", "detail-oriented", "collaborative", "adaptable",
}

var degreeKeywords = []string{"bachelor", "master", "phd", "mba", "bs", "ms", "ba", "ma"}

var experienceYearsPattern = regexp.MustCompile(`(\d+)\+?\s*(years?|yrs?)`)

// Keywords holds what was recognized in one piece of text.
type Keywords struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
	ExperienceYears int      `json:"experienceYears"`
	EducationLevels []string `json:"educationLevels"`
	TotalKeywords   int      `json:"totalKeywords"`
}

// ExtractKeywords scans text for technical skills, soft skills, years of
// experience, and degree mentions.
func ExtractKeywords(text string) Keywords {
	lower := strings.ToLower(text)

	var kw Keywords
	for _, term := range techKeywords {
		if strings.Contains(lower, term) {
			kw.TechnicalSkills = append(kw.TechnicalSkills, term)
		}
	}
	for _, term := range softSkillKeywords {
		if strings.Contains(lower, term) {
			kw.SoftSkills = append(kw.SoftSkills, term)
		}
	}
	for _, m := range experienceYearsPattern.FindAllStringSubmatch(lower, -1) {
		years := 0
		for _, r := range m[1] {
			years = years*10 + int(r-'0')
		}
		if years > kw.ExperienceYears {
			kw.ExperienceYears = years
		}
	}
	for _, degree := range degreeKeywords {
		if strings.Contains(lower, degree) {
			kw.EducationLevels = append(kw.EducationLevels, degree)
		}
	}
	kw.TotalKeywords = len(kw.TechnicalSkills) + len(kw.SoftSkills)
	return kw
}

// skillSet collapses a Keywords value into a deduplicated set of skill terms.
func skillSet(kw Keywords) map[string]struct{} {
	out := make(map[string]struct{}, len(kw.TechnicalSkills)+len(kw.SoftSkills))
	for _, term := range kw.TechnicalSkills {
		out[term] = struct{}{}
	}
	for _, term := range kw.SoftSkills {
		out[term] = struct{}{}
	}
	return out
}

func sortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
