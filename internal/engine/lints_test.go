package engine

import "testing"

func lintTypes(issues []BulletIssue) map[string]bool {
	types := make(map[string]bool, len(issues))
	for _, issue := range issues {
		types[issue.Type] = true
	}
	return types
}

func TestLintBullet(t *testing.T) {
	tests := []struct {
		name        string
		bullet      string
		wantTypes   []string
		absentTypes []string
	}{
		{
			name:        "clean",
			bullet:      "Reduced deployment time by 40% across three services",
			absentTypes: []string{LintTooShort, LintTooLong, LintMissingMetrics, LintWeakVerb, LintMissingVerb},
		},
		{
			name:      "too short and no metric",
			bullet:    "Led the team",
			wantTypes: []string{LintTooShort, LintMissingMetrics},
		},
		{
			name:      "weak verb",
			bullet:    "Helped with the quarterly planning process",
			wantTypes: []string{LintWeakVerb, LintMissingMetrics},
		},
		{
			name:      "no action verb",
			bullet:    "The team shipped several features this quarter",
			wantTypes: []string{LintMissingVerb},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lintTypes(lintBullet(tt.bullet))
			for _, want := range tt.wantTypes {
				if !got[want] {
					t.Fatalf("issues %v missing %q", got, want)
				}
			}
			for _, absent := range tt.absentTypes {
				if got[absent] {
					t.Fatalf("issues %v should not include %q", got, absent)
				}
			}
		})
	}
}

func TestLintBulletsOnlyFlagged(t *testing.T) {
	text := `• Reduced deployment time by 40% across three services
• Helped with planning`
	lints := lintBullets(mustDocument(t, text))
	if len(lints) != 1 {
		t.Fatalf("lints = %d, want only the flagged bullet", len(lints))
	}
	if lints[0].Text != "Helped with planning" {
		t.Fatalf("flagged %q, want the weak bullet", lints[0].Text)
	}
}
