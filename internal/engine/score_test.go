package engine

import (
	"context"
	"math"
	"testing"
)

func TestCategoryWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range CategoryWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("weights sum = %v, want 1.0", sum)
	}
	if len(CategoryWeights) != 10 {
		t.Fatalf("got %d categories, want 10", len(CategoryWeights))
	}
}

func TestCategoryOrderCoversWeightTable(t *testing.T) {
	if len(categoryOrder) != len(CategoryWeights) {
		t.Fatalf("order has %d keys, weights have %d", len(categoryOrder), len(CategoryWeights))
	}
	seen := make(map[string]bool, len(categoryOrder))
	for _, key := range categoryOrder {
		if _, ok := CategoryWeights[key]; !ok {
			t.Fatalf("ordered key %q has no weight", key)
		}
		if seen[key] {
			t.Fatalf("duplicate key %q in order", key)
		}
		seen[key] = true
	}
}

// The weighted total must be summed in a fixed order: float addition is not
// associative, so accumulating in map-iteration order made the last ulp of
// the final score vary between runs on the same input.
func TestFinalScoreStableAcrossRuns(t *testing.T) {
	e := New(nil)
	first, err := e.Evaluate(context.Background(), completeResume)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i := 0; i < 50; i++ {
		next, err := e.Evaluate(context.Background(), completeResume)
		if err != nil {
			t.Fatalf("Evaluate run %d: %v", i+2, err)
		}
		if next.Score.FinalScore != first.Score.FinalScore {
			t.Fatalf("run %d finalScore = %.17g, first run = %.17g", i+2, next.Score.FinalScore, first.Score.FinalScore)
		}
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"}, {90, "A"},
		{89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"},
		{69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.want {
			t.Fatalf("gradeFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestStructureCategoryScore(t *testing.T) {
	tests := []struct {
		name string
		in   SectionAnalysis
		want float64
	}{
		{"clean", SectionAnalysis{OrderLogical: true}, 100},
		{"one missing", SectionAnalysis{MissingRequired: []string{"education"}, OrderLogical: true}, 80},
		{"duplicate", SectionAnalysis{DuplicatedSections: []string{"skills"}, OrderLogical: true}, 90},
		{"bad order", SectionAnalysis{OrderLogical: false}, 85},
		{
			"floor at zero",
			SectionAnalysis{
				MissingRequired:    []string{"contact", "experience", "education", "skills"},
				DuplicatedSections: []string{"awards", "projects", "languages"},
				OrderLogical:       false,
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := structureCategoryScore(&tt.in); got != tt.want {
				t.Fatalf("structureCategoryScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatesCategoryScore(t *testing.T) {
	tests := []struct {
		name string
		in   ChronologyAnalysis
		want float64
	}{
		{"no dates", ChronologyAnalysis{}, 0},
		{"consistent and ordered", ChronologyAnalysis{HasDates: true, FormatConsistency: true}, 100},
		{"consistent only", ChronologyAnalysis{HasDates: true, FormatConsistency: true, OrderIssues: []string{"x"}}, 60},
		{"inconsistent", ChronologyAnalysis{HasDates: true}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datesCategoryScore(&tt.in); got != tt.want {
				t.Fatalf("datesCategoryScore = %v, want %v", got, tt.want)
			}
		})
	}
}
