package engine

import (
	"testing"

	"resume-critic/internal/engine/patterns"
)

func TestAnalyzeModernizationClean(t *testing.T) {
	a := analyzeModernization(mustDocument(t, "Experience\n• Led the platform team"))
	if a.HasOutdated {
		t.Fatalf("found %v, want none", a.Found)
	}
	if a.ModernizationScore != 100 {
		t.Fatalf("score = %d, want 100", a.ModernizationScore)
	}
	// Absence of references and objective earns explicit positive feedback.
	if len(a.PassedChecks) != 2 {
		t.Fatalf("passed checks = %v, want references and objective", a.PassedChecks)
	}
}

func TestAnalyzeModernizationHeaders(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantType  string
		wantScore int
	}{
		{"references header", "References\nJohn Doe, former manager", patterns.OutdatedReferences, 80},
		{"objective header", "Objective:\nTo find a challenging role", patterns.OutdatedObjective, 80},
		{"hobbies header", "Hobbies\nChess and hiking", patterns.OutdatedHobbies, 90},
		{"salary header", "Expected Salary\n$90,000", patterns.OutdatedSalary, 70},
		{"references in body", "Professional references available upon request", patterns.OutdatedReferences, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeModernization(mustDocument(t, tt.text))
			var found bool
			for _, f := range a.Found {
				if f.Type == tt.wantType {
					found = true
				}
			}
			if !found {
				t.Fatalf("findings %v missing type %q", a.Found, tt.wantType)
			}
			if a.ModernizationScore != tt.wantScore {
				t.Fatalf("score = %d, want %d", a.ModernizationScore, tt.wantScore)
			}
		})
	}
}

func TestModernizationIgnoresLongLines(t *testing.T) {
	// "interests" inside a long content line is not a section header.
	text := "Aligned roadmap with customer interests across four product lines"
	a := analyzeModernization(mustDocument(t, text))
	if a.HasOutdated {
		t.Fatalf("found %v, want none", a.Found)
	}
}
