package patterns

// Strong verb category names.
const (
	VerbLeadership  = "leadership"
	VerbAchievement = "achievement"
	VerbDevelopment = "development"
	VerbImprovement = "improvement"
	VerbAnalysis    = "analysis"
)

// VerbCategoryOrder lists the categories in report order.
var VerbCategoryOrder = []string{
	VerbLeadership,
	VerbAchievement,
	VerbDevelopment,
	VerbImprovement,
	VerbAnalysis,
}

// StrongVerbs groups verbs with similar intent; category variety feeds the
// diversity component of the action verb score.
var StrongVerbs = map[string][]string{
	VerbLeadership: {
		"led", "managed", "directed", "supervised", "coordinated", "oversaw",
		"guided", "mentored", "headed", "chaired", "orchestrated", "facilitated",
		"delegated", "coached", "superintended",
	},
	VerbAchievement: {
		"achieved", "accomplished", "exceeded", "delivered", "completed",
		"attained", "surpassed", "earned", "secured", "won",
	},
	VerbDevelopment: {
		"developed", "created", "built", "designed", "implemented", "engineered",
		"constructed", "launched", "deployed", "prototyped", "pioneered",
		"established", "architected",
	},
	VerbImprovement: {
		"improved", "enhanced", "optimized", "streamlined", "increased",
		"reduced", "minimized", "boosted", "accelerated", "upgraded",
		"refined", "simplified",
	},
	VerbAnalysis: {
		"analyzed", "evaluated", "assessed", "researched", "investigated",
		"examined", "studied", "audited", "diagnosed", "modeled",
		"forecasted",
	},
}

// WeakVerbs flag bullets that describe involvement rather than action.
var WeakVerbs = []string{"responsible", "worked", "helped", "assisted", "participated", "involved", "handled", "dealt"}

// WeakVerbIdioms are two-word weak openers checked against a bullet's first
// two words.
var WeakVerbIdioms = []string{"responsible for", "worked on", "helped with"}

// WeakVerbSuggestions offers strong replacements for each weak verb.
var WeakVerbSuggestions = map[string][]string{
	"responsible":  {"Led", "Managed", "Directed", "Oversaw", "Supervised"},
	"worked":       {"Collaborated", "Developed", "Implemented", "Executed", "Delivered"},
	"helped":       {"Assisted", "Facilitated", "Enabled", "Supported", "Guided"},
	"handled":      {"Managed", "Processed", "Resolved", "Coordinated", "Administered"},
	"participated": {"Contributed", "Collaborated", "Engaged", "Partnered", "Supported"},
	"involved":     {"Engaged", "Participated", "Contributed", "Collaborated", "Led"},
	"dealt":        {"Managed", "Resolved", "Addressed", "Handled", "Processed"},
}

// DefaultVerbSuggestions apply when a weak verb has no dedicated entry.
var DefaultVerbSuggestions = []string{"Led", "Developed", "Implemented", "Created", "Managed"}

// VerbImprovements maps common flat verbs to sharper alternatives for rewrite
// suggestions.
var VerbImprovements = map[string][]string{
	"managed":     {"orchestrated", "directed", "led", "oversaw"},
	"created":     {"architected", "designed", "built", "developed"},
	"helped":      {"facilitated", "enabled", "supported", "drove"},
	"worked":      {"collaborated", "partnered", "contributed"},
	"made":        {"produced", "generated", "delivered", "executed"},
	"did":         {"accomplished", "achieved", "completed", "performed"},
	"responsible": {"led", "managed", "directed", "oversaw"},
}
