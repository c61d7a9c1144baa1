// Package patterns holds the static taxonomies the evaluation engine matches
// against: section vocabularies, date and impact regular expressions, verb and
// buzzword tables, and skill category lists. It contains data only; all
// matching logic lives in the engine package.
package patterns

import "regexp"

// Section names are shared across the section detector and every downstream
// analyzer; they are plain strings rather than a dedicated type so reports
// serialize without translation.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
	SectionAwards         = "awards"
)

// CanonicalSectionOrder is the section sequence resumes are judged against.
var CanonicalSectionOrder = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionAwards,
}

// RequiredSections must all be present for a resume to score well; three of
// them (contact, experience, skills) additionally gate the final score.
var RequiredSections = []string{SectionContact, SectionExperience, SectionEducation, SectionSkills}

// GateSections invalidate the entire evaluation when any one is missing.
var GateSections = []string{SectionContact, SectionExperience, SectionSkills}

// OptionalSections are reported when present but never penalized when absent.
var OptionalSections = []string{SectionProjects, SectionCertifications, SectionLanguages, SectionAwards}

// SectionExactHeaders maps each section to header strings that identify it
// when a line equals one of them (case-insensitively).
var SectionExactHeaders = map[string][]string{
	SectionContact:        {"contact information", "contact", "personal information"},
	SectionSummary:        {"summary", "professional summary", "objective", "profile", "about me", "overview"},
	SectionExperience:     {"experience", "work experience", "professional experience", "employment", "career history", "work", "professional"},
	SectionEducation:      {"education", "academic background", "academic qualifications"},
	SectionSkills:         {"skills", "technical skills", "core competencies", "competencies"},
	SectionProjects:       {"projects", "personal projects", "portfolio", "project"},
	SectionCertifications: {"certifications", "certificates", "credentials", "licenses"},
	SectionLanguages:      {"languages", "language skills"},
	SectionAwards:         {"awards", "honors", "achievements", "recognition"},
}

// SectionKeywords are looser containment vocabularies used only for short
// lines (see the detector's word-count rules).
var SectionKeywords = map[string][]string{
	SectionContact:        {"contact", "personal information", "header", "email:", "phone:", "tel:", "mobile:", "address:"},
	SectionSummary:        {"summary", "objective", "profile", "about", "overview"},
	SectionExperience:     {"experience", "work experience", "employment", "professional experience", "career", "work history"},
	SectionEducation:      {"education", "academic background", "academic", "qualifications"},
	SectionSkills:         {"skills", "competencies", "technologies", "technical skills", "core competencies"},
	SectionProjects:       {"projects", "portfolio", "personal projects"},
	SectionCertifications: {"certifications", "certificates", "credentials", "licenses"},
	SectionLanguages:      {"languages", "language skills"},
	SectionAwards:         {"awards", "honors", "achievements", "recognition", "accomplishments"},
}

// EducationContentTerms disqualify a line from being an education header:
// degree names, GPAs and similar vocabulary belong to content, not headers.
var EducationContentTerms = []string{"gpa", "bachelor", "master", "degree", "university of", "class", "semester"}

// SectionLinePrefixes identify headers written in sentence case at the start
// of a line, a format the all-caps rule misses.
var SectionLinePrefixes = map[string][]*regexp.Regexp{
	SectionSkills:         compileAll(`^technical skills`, `^programming languages`, `^tools`, `^frameworks`),
	SectionEducation:      compileAll(`^education`, `^academic`),
	SectionProjects:       compileAll(`^projects`, `^personal projects`),
	SectionExperience:     compileAll(`^work experience`, `^professional experience`),
	SectionCertifications: compileAll(`^certifications`, `^certificates`),
	SectionLanguages:      compileAll(`^languages`),
	SectionAwards:         compileAll(`^awards`, `^honors`),
}

// ContactLinePatterns detect contact details embedded in a line (email,
// phone, labeled contact fields).
var ContactLinePatterns = compileAll(
	`\b\w+@\w+\.\w+\b`,
	`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`,
	`\b(phone|email|mobile|tel|address):\s*`,
)

// ContactInferencePatterns infer a contact section from the top of the
// document when no explicit header exists.
var ContactInferencePatterns = compileAll(
	`\b\w+@\w+\.\w+\b`,
	`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`,
	`\b(linkedin|github)\.com\b`,
	`\b\d+\s+\w+\s+(street|ave|avenue|road|rd|blvd|boulevard)\b`,
)

// EducationInferencePatterns infer an education section from body content.
var EducationInferencePatterns = compileAll(
	`\b(university|college|school|institute)\b`,
	`\b(bachelor|master|phd|degree|diploma)\b`,
	`\b(gpa|grade|graduated|graduation)\b`,
)

// SkillsInferencePatterns infer a skills section from body content.
var SkillsInferencePatterns = compileAll(
	`\b(programming languages?|technical skills?|tools?)\b`,
	`\b(python|java|javascript|html|css|react|sql)\b`,
	`\b(frameworks?|libraries|databases?)\b`,
)

// ProjectsInferencePatterns infer a projects section from body content.
var ProjectsInferencePatterns = compileAll(
	`\bprojects?\b`,
	`\b(built|developed|created|designed)\s+.*(app|application|website|system)\b`,
	`\bsource code\b`,
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}
