package engine

import "testing"

func TestAnalyzeWritingQuality(t *testing.T) {
	text := `I was responsible for a lot of awesome stuff.
My team really liked our super cool results.`
	a := analyzeWritingQuality(mustDocument(t, text))

	if len(a.InformalWords) == 0 {
		t.Fatal("expected informal words")
	}
	if len(a.VaguePhrases) == 0 {
		t.Fatal("expected vague phrases")
	}
	if a.PronounCount == 0 {
		t.Fatal("expected pronouns")
	}
	if a.ProfessionalismScore >= 100 {
		t.Fatalf("score = %d, want deductions applied", a.ProfessionalismScore)
	}
}

func TestAnalyzeWritingQualityClean(t *testing.T) {
	a := analyzeWritingQuality(mustDocument(t, "Delivered the billing migration ahead of schedule"))
	if a.ProfessionalismScore != 100 {
		t.Fatalf("score = %d, want 100", a.ProfessionalismScore)
	}
}

func TestAnalyzeTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"neutral", "Built the reporting pipeline", 50},
		{"confident", "Achieved targets and delivered the platform", 60},
		{"emotional", "An amazing, incredible workplace", 30},
		{"floor", "amazing incredible fantastic terrible awful hate love", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeTone(mustDocument(t, tt.text))
			if a.ToneScore != tt.want {
				t.Fatalf("tone = %d, want %d", a.ToneScore, tt.want)
			}
		})
	}
}

func TestAnalyzeFormatting(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantBullets bool
		wantScore   int
	}{
		{
			name:        "consistent glyphs",
			text:        "• Shipped feature A\n• Shipped feature B",
			wantBullets: true,
			wantScore:   100,
		},
		{
			name:        "mixed glyphs",
			text:        "• Shipped feature A\n▪ Shipped feature B",
			wantBullets: false,
			wantScore:   75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyzeFormatting(mustDocument(t, tt.text))
			if a.BulletConsistency != tt.wantBullets {
				t.Fatalf("bullet consistency = %v, want %v", a.BulletConsistency, tt.wantBullets)
			}
			if a.FormattingScore != tt.wantScore {
				t.Fatalf("formatting score = %d, want %d", a.FormattingScore, tt.wantScore)
			}
		})
	}
}
