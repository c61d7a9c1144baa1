package engine

import "testing"

func TestAnalyzeQuantificationEmpty(t *testing.T) {
	a := analyzeQuantification(mustDocument(t, "Experience without any bullet markers"))
	if a.TotalBullets != 0 {
		t.Fatalf("bullets = %d, want 0", a.TotalBullets)
	}
	if a.Percentage != 0 {
		t.Fatalf("percentage = %v, want 0 when no bullets exist", a.Percentage)
	}
}

func TestAnalyzeQuantificationPatterns(t *testing.T) {
	tests := []struct {
		name       string
		bullet     string
		quantified bool
		pattern    string
	}{
		{"percentage", "• Increased uptime by 99.9%", true, "percentages"},
		{"dollars", "• Saved $1.2M in vendor costs", true, "dollar_amounts"},
		{"large number", "• Processed 2,500,000 events daily", true, "large_numbers"},
		{"team size", "• Led a team of 12 engineers", true, "team_sizes"},
		{"customers", "• Supported 300+ customers", true, "customer_metrics"},
		{"unquantified", "• Maintained the internal wiki", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeQuantification(mustDocument(t, tt.bullet))
			if got := a.QuantifiedCount == 1; got != tt.quantified {
				t.Fatalf("quantified = %v, want %v", got, tt.quantified)
			}
			if tt.pattern != "" && a.PatternDistribution[tt.pattern] == 0 {
				t.Fatalf("distribution %v missing %q", a.PatternDistribution, tt.pattern)
			}
		})
	}
}

func TestAnalyzeQuantificationVagueCap(t *testing.T) {
	text := `• Responsible for the intranet
• Worked on documentation
• Handled vendor tickets
• Involved in planning sessions
• Managed the office move
• Responsible for supply ordering
• Worked on the newsletter`
	a := analyzeQuantification(mustDocument(t, text))
	if len(a.VagueBullets) != 5 {
		t.Fatalf("vague bullets = %d, want capped at 5", len(a.VagueBullets))
	}
	for _, v := range a.VagueBullets {
		if v.Suggestion == "" {
			t.Fatalf("vague bullet %q has no rewrite suggestion", v.Text)
		}
	}
}

func TestQuantificationMonotonic(t *testing.T) {
	base := "• Maintained the wiki\n• Organized standups\n"
	prev := analyzeQuantification(mustDocument(t, base)).Percentage
	text := base
	for i := 0; i < 4; i++ {
		text += "• Cut costs by 15%\n"
		pct := analyzeQuantification(mustDocument(t, text)).Percentage
		if pct < prev {
			t.Fatalf("percentage decreased from %v to %v", prev, pct)
		}
		prev = pct
	}
}
