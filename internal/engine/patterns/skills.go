package patterns

// Technical skill category names.
const (
	SkillProgramming = "programming"
	SkillWeb         = "web_technologies"
	SkillDatabases   = "databases"
	SkillCloud       = "cloud_platforms"
	SkillTools       = "tools"
	SkillSoft        = "soft_skills"
)

// TechnicalSkillCategoryOrder lists technical categories in report order.
var TechnicalSkillCategoryOrder = []string{
	SkillProgramming,
	SkillWeb,
	SkillDatabases,
	SkillCloud,
	SkillTools,
}

// TechnicalSkills is the recognition vocabulary per technical category. Terms
// are lowercase; matching is on word boundaries within the lowercased text.
var TechnicalSkills = map[string][]string{
	SkillProgramming: {"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "swift"},
	SkillWeb:         {"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask"},
	SkillDatabases:   {"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite"},
	SkillCloud:       {"aws", "azure", "gcp", "docker", "kubernetes", "terraform"},
	SkillTools:       {"git", "jenkins", "jira", "confluence", "slack", "trello", "figma", "photoshop"},
}

// SoftSkills is the soft-skill recognition vocabulary.
var SoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical thinking",
	"project management", "time management", "adaptability", "creativity", "negotiation",
}

// OutdatedSkills are technologies whose presence dates a resume.
var OutdatedSkills = []string{"internet explorer", "flash", "silverlight", "windows 95", "dos"}

// Skill balance verdicts.
const (
	BalanceNoSkills    = "no_skills"
	BalanceNoTechnical = "no_technical"
	BalanceNoSoft      = "no_soft"
	BalanceTechHeavy   = "tech_heavy"
	BalanceSoftHeavy   = "soft_heavy"
	BalanceBalanced    = "balanced"
)

// Skill balance thresholds on the technical share of all found skills.
const (
	TechHeavyRatio = 0.85
	SoftHeavyRatio = 0.3
)

// SkillSectionSeparators are the punctuation marks whose presence in the
// skills section indicates list formatting.
var SkillSectionSeparators = []string{",", "|", ";", "•"}
