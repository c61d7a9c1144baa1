package patterns

import "testing"

func TestDatePatternsMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"full month", "January 2020"},
		{"abbreviated month", "Sep. 2019"},
		{"numeric", "03/2021"},
		{"dash range", "2018 - 2020"},
		{"month range", "Jan 2019 - Dec 2021"},
		{"to range", "2017 to present"},
		{"graduation", "Graduated 2016"},
		{"class of", "Class of 2015"},
		{"bare year", "joined in 2004"},
		{"season", "Fall 2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, pat := range DatePatterns {
				if pat.MatchString(tt.text) {
					return
				}
			}
			t.Fatalf("no date pattern matched %q", tt.text)
		})
	}
}

func TestBareYearWindow(t *testing.T) {
	for _, text := range []string{"item 1947", "room 2055", "part 12345"} {
		matched := false
		for _, pat := range DatePatterns {
			if pat.MatchString(text) {
				matched = true
			}
		}
		if matched {
			t.Fatalf("%q should be outside the recognized year window", text)
		}
	}
}

func TestBuzzwordPenaltiesComplete(t *testing.T) {
	for tier := range Buzzwords {
		if _, ok := BuzzwordPenalties[tier]; !ok {
			t.Fatalf("tier %q has no penalty", tier)
		}
	}
	if BuzzwordPenalties[BuzzwordPattern] == 0 {
		t.Fatal("pattern tier has no penalty")
	}
}

func TestStrongVerbCategoriesDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range VerbCategoryOrder {
		for _, verb := range StrongVerbs[cat] {
			if prev, dup := seen[verb]; dup {
				t.Fatalf("verb %q appears in both %q and %q", verb, prev, cat)
			}
			seen[verb] = cat
		}
	}
}

func TestOutdatedSectionSeverities(t *testing.T) {
	for _, section := range OutdatedSections {
		if _, ok := SeverityWeights[section.Severity]; !ok {
			t.Fatalf("section %q has unknown severity %q", section.Type, section.Severity)
		}
	}
}

func TestNormalizeDateStyle(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"2020", DateStyleYearOnly},
		{"March 2020", DateStyleMonthYear},
		{"01/15/2020", DateStyleFullDate},
	}
	for _, tt := range tests {
		if got := NormalizeDateStyle(tt.token); got != tt.want {
			t.Fatalf("NormalizeDateStyle(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
