package engine

import (
	"context"
	"fmt"
	"strings"

	"resume-critic/internal/engine/patterns"
)

// StrongVerbBullet is a bullet opening with a strong action verb.
type StrongVerbBullet struct {
	Text        string        `json:"text"`
	Verb        string        `json:"verb"`
	Category    string        `json:"category"`
	ImpactScore int           `json:"impactScore"`
	Signals     BulletSignals `json:"signals"`
}

// WeakVerbBullet is a bullet opening with a weak verb or idiom, with
// replacement suggestions.
type WeakVerbBullet struct {
	Text        string        `json:"text"`
	Verb        string        `json:"verb"`
	Suggestions []string      `json:"suggestions"`
	Signals     BulletSignals `json:"signals"`
}

// ActionVerbAnalysis scores bullet verb strength and category diversity.
type ActionVerbAnalysis struct {
	TotalBullets     int                `json:"totalBullets"`
	StrongBullets    []StrongVerbBullet `json:"strongVerbBullets"`
	WeakBullets      []WeakVerbBullet   `json:"weakVerbBullets"`
	NoVerbBullets    []string           `json:"noVerbBullets"`
	StrongPercentage float64            `json:"strongPercentage"`
	WeakPercentage   float64            `json:"weakPercentage"`
	DiversityScore   float64            `json:"diversityScore"`
	CategoriesUsed   map[string]int     `json:"categoriesUsed"`
	ActionVerbScore  float64            `json:"actionVerbScore"`
	Recommendations  []string           `json:"recommendations"`
}

// analyzeActionVerbs judges each bullet by its first word only (first two for
// weak idioms). Strong bullets get an informational impact sub-score; weak
// bullets get substitution suggestions.
func analyzeActionVerbs(ctx context.Context, doc *Document, classifier BulletClassifier) *ActionVerbAnalysis {
	a := &ActionVerbAnalysis{
		TotalBullets:   len(doc.Bullets),
		CategoriesUsed: make(map[string]int, len(patterns.VerbCategoryOrder)),
	}
	for _, cat := range patterns.VerbCategoryOrder {
		a.CategoriesUsed[cat] = 0
	}

	for _, bullet := range doc.Bullets {
		words := strings.Fields(bullet)
		if len(words) == 0 {
			a.NoVerbBullets = append(a.NoVerbBullets, bullet)
			continue
		}
		first := strings.ToLower(strings.Trim(words[0], ".,:;"))
		firstTwo := first
		if len(words) > 1 {
			firstTwo = first + " " + strings.ToLower(strings.Trim(words[1], ".,:;"))
		}

		if cat := verbCategory(first); cat != "" {
			a.CategoriesUsed[cat]++
			a.StrongBullets = append(a.StrongBullets, StrongVerbBullet{
				Text:        bullet,
				Verb:        first,
				Category:    cat,
				ImpactScore: verbImpactScore(bullet),
				Signals:     classifyBullet(ctx, classifier, bullet),
			})
			continue
		}
		if isWeakVerb(first) || containsString(patterns.WeakVerbIdioms, firstTwo) {
			suggestions := patterns.WeakVerbSuggestions[first]
			if suggestions == nil {
				suggestions = patterns.DefaultVerbSuggestions
			}
			a.WeakBullets = append(a.WeakBullets, WeakVerbBullet{
				Text:        bullet,
				Verb:        first,
				Suggestions: suggestions,
				Signals:     classifyBullet(ctx, classifier, bullet),
			})
			continue
		}
		a.NoVerbBullets = append(a.NoVerbBullets, bullet)
	}

	if a.TotalBullets > 0 {
		a.StrongPercentage = 100 * float64(len(a.StrongBullets)) / float64(a.TotalBullets)
		a.WeakPercentage = 100 * float64(len(a.WeakBullets)) / float64(a.TotalBullets)
	}
	used := 0
	for _, n := range a.CategoriesUsed {
		if n > 0 {
			used++
		}
	}
	a.DiversityScore = float64(used) / float64(len(patterns.VerbCategoryOrder)) * 100
	a.ActionVerbScore = actionVerbScore(a.StrongPercentage, a.WeakPercentage, a.DiversityScore, a.TotalBullets)
	a.Recommendations = verbRecommendations(a)
	return a
}

func verbCategory(verb string) string {
	for _, cat := range patterns.VerbCategoryOrder {
		if containsString(patterns.StrongVerbs[cat], verb) {
			return cat
		}
	}
	return ""
}

func isWeakVerb(verb string) bool {
	return containsString(patterns.WeakVerbs, verb)
}

// verbImpactScore starts at 70 for having a strong verb, +20 for any number,
// +10 for an improvement verb paired with a number, capped at 100.
func verbImpactScore(bullet string) int {
	score := 70
	if patterns.BulletNumberPattern.MatchString(bullet) {
		score += 20
	}
	if patterns.BulletImprovementPattern.MatchString(bullet) {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// actionVerbScore combines strong share, diversity, bullet quantity and a
// weak-verb penalty into one 0-100 value.
func actionVerbScore(strongPct, weakPct, diversity float64, bulletCount int) float64 {
	if bulletCount == 0 {
		return 0
	}
	quantity := float64(bulletCount) / 8
	if quantity > 1 {
		quantity = 1
	}
	score := strongPct*0.8 + diversity*0.15 + quantity*5 - weakPct*0.3
	return clamp(score, 0, 100)
}

func verbRecommendations(a *ActionVerbAnalysis) []string {
	var recs []string
	if n := len(a.WeakBullets); n > 0 {
		recs = append(recs, fmt.Sprintf("Replace %d weak verbs with strong action verbs", n))
		for i, weak := range a.WeakBullets {
			if i == 2 {
				break
			}
			limit := len(weak.Suggestions)
			if limit > 3 {
				limit = 3
			}
			recs = append(recs, fmt.Sprintf("Replace %q with: %s", weak.Verb, strings.Join(weak.Suggestions[:limit], ", ")))
		}
	}
	if n := len(a.NoVerbBullets); n > 0 {
		recs = append(recs, fmt.Sprintf("Add strong action verbs to %d bullet points", n))
		recs = append(recs, "Start each bullet with verbs like: Led, Developed, Implemented, Created, Managed")
	}
	unused := 0
	for _, n := range a.CategoriesUsed {
		if n == 0 {
			unused++
		}
	}
	if unused >= 3 && a.TotalBullets > 0 {
		recs = append(recs, "Vary verb categories: mix leadership, achievement, development, improvement and analysis verbs")
	}
	return recs
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
