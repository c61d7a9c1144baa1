package engine

import (
	"strings"

	"resume-critic/internal/engine/patterns"
)

// Document is the immutable input to every analyzer: the raw text plus its
// line-split and bullet-extracted forms, computed once.
type Document struct {
	Text      string
	Lines     []string // trimmed, empty lines removed
	RawLines  []string // as split, untrimmed
	Bullets   []string // deduplicated, first-seen order
	TextLower string
}

// NewDocument normalizes the raw text into a Document. The only rejected
// input is empty or whitespace-only text.
func NewDocument(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return &Document{
		Text:      text,
		Lines:     lines,
		RawLines:  raw,
		Bullets:   extractBullets(text),
		TextLower: strings.ToLower(text),
	}, nil
}

// extractBullets collects bullet text across all marker styles, keeping the
// first occurrence of each distinct bullet.
func extractBullets(text string) []string {
	var found []string
	for _, pat := range patterns.BulletMarkerPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			found = append(found, m[1])
		}
	}
	seen := make(map[string]struct{}, len(found))
	bullets := make([]string, 0, len(found))
	for _, b := range found {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		bullets = append(bullets, b)
	}
	return bullets
}

// glyphBullets returns only glyph-marked bullets, in document order.
func glyphBullets(text string) []string {
	matches := patterns.GlyphBulletPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if b := strings.TrimSpace(m[1]); b != "" {
			out = append(out, b)
		}
	}
	return out
}
