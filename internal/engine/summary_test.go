package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeSummaryWithHeader(t *testing.T) {
	text := `Jane Smith

Summary
Software engineer with 6 years of Python experience building data platforms
that serve 200+ customers and cut processing costs by 30% annually.

Experience
Senior Engineer`
	a := analyzeSummary(mustDocument(t, text))

	if !a.HasSummary {
		t.Fatal("expected summary")
	}
	if strings.Contains(a.SummaryText, "Senior Engineer") {
		t.Fatalf("summary leaked past the next header: %q", a.SummaryText)
	}
	if !a.HasSkillKeyword {
		t.Fatal("python should count as a specific skill")
	}
	if !a.HasMetrics {
		t.Fatal("30% should count as a metric")
	}
	if a.QualityScore != 100 {
		t.Fatalf("quality = %d (issues %v), want 100", a.QualityScore, a.Issues)
	}
}

func TestAnalyzeSummaryGenericPenalties(t *testing.T) {
	text := `Jane Smith

Summary
Hard worker and team player seeking opportunities in software development roles
across many different industries and team environments and company sizes today.`
	a := analyzeSummary(mustDocument(t, text))

	if !a.HasSummary {
		t.Fatal("expected summary")
	}
	if len(a.GenericPhrases) != 3 {
		t.Fatalf("generic phrases = %v, want 3", a.GenericPhrases)
	}
	// 100 - 3x10 generic - 15 no skill keyword - 10 no metric = 45.
	if a.QualityScore != 45 {
		t.Fatalf("quality = %d, want 45", a.QualityScore)
	}
}

func TestAnalyzeSummaryInferred(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "accepted window",
			body: "Backend engineer who has shipped payment systems at scale for eight years " +
				"and enjoys mentoring newer teammates on reliability practices.",
			want: true,
		},
		{
			name: "too short to infer",
			body: "Backend engineer.",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Jane Smith\n" + tt.body + "\n\nExperience\nSenior Engineer"
			a := analyzeSummary(mustDocument(t, text))
			if a.HasSummary != tt.want {
				t.Fatalf("HasSummary = %v, want %v (text %q)", a.HasSummary, tt.want, a.SummaryText)
			}
		})
	}
}
