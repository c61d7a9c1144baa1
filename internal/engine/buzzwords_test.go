package engine

import (
	"strings"
	"testing"

	"resume-critic/internal/engine/patterns"
)

func mustDocument(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := NewDocument(text)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func TestAnalyzeBuzzwordsClean(t *testing.T) {
	a := analyzeBuzzwords(mustDocument(t, "Delivered the billing migration two weeks early"))
	if a.TotalBuzzwords != 0 {
		t.Fatalf("found %v, want none", a.Found)
	}
	if a.Score != 100 {
		t.Fatalf("score = %v, want 100", a.Score)
	}
	if a.Severity != "excellent" {
		t.Fatalf("severity = %q, want excellent", a.Severity)
	}
}

func TestAnalyzeBuzzwordsPenalties(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPenalty int
	}{
		{"single critical", "A coding ninja", 15},
		{"critical twice", "A ninja among ninjas... ninja indeed", 45},
		{"medium tier", "An innovative approach", 6},
		{"low tier", "We leverage synergy", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeBuzzwords(mustDocument(t, tt.text))
			if a.TotalPenalty != tt.wantPenalty {
				t.Fatalf("penalty = %d (found %v), want %d", a.TotalPenalty, a.Found, tt.wantPenalty)
			}
		})
	}
}

func TestAnalyzeBuzzwordsPhrasePattern(t *testing.T) {
	a := analyzeBuzzwords(mustDocument(t, "A highly motivated engineer"))
	var pattern *BuzzwordFinding
	for i := range a.Found {
		if a.Found[i].Severity == patterns.BuzzwordPattern {
			pattern = &a.Found[i]
		}
	}
	if pattern == nil {
		t.Fatalf("no phrase-pattern finding in %v", a.Found)
	}
	if pattern.Penalty != 8 {
		t.Fatalf("pattern penalty = %d, want 8", pattern.Penalty)
	}
}

func TestBuzzwordScoreMonotonic(t *testing.T) {
	base := "Shipped the payments service."
	prev := analyzeBuzzwords(mustDocument(t, base)).Score
	text := base
	for i := 0; i < 12; i++ {
		text += " A rockstar guru ninja."
		score := analyzeBuzzwords(mustDocument(t, text)).Score
		if score > prev {
			t.Fatalf("score increased from %v to %v after adding buzzwords", prev, score)
		}
		if score < 0 {
			t.Fatalf("score %v below floor", score)
		}
		prev = score
	}
	if prev != 0 {
		t.Fatalf("score = %v after heavy buzzword use, want floor 0", prev)
	}
}

func TestBuzzwordAlternatives(t *testing.T) {
	a := analyzeBuzzwords(mustDocument(t, "A true team player"))
	for _, f := range a.Found {
		if f.Word == "team player" {
			if len(f.Suggestions) == 0 || strings.Contains(f.Suggestions[0], "Replace with") {
				t.Fatalf("want curated alternatives for team player, got %v", f.Suggestions)
			}
			return
		}
	}
	t.Fatalf("team player not found in %v", a.Found)
}
