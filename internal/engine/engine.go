// Package engine evaluates plain-text resumes. It runs a section detector,
// a set of independent feature detectors, and synthesizes their outputs into
// twelve display criteria and one weighted final score with a letter grade.
//
// The pipeline is a pure function over the input text: nothing persists
// between calls and detectors share no mutable state, so they run
// concurrently after section detection.
package engine

import (
	"context"
	"sync"
)

// Engine runs the evaluation pipeline. The zero value is usable; Classifier
// is an optional external signal source.
type Engine struct {
	Classifier BulletClassifier
}

// New returns an Engine with an optional bullet classifier.
func New(classifier BulletClassifier) *Engine {
	return &Engine{Classifier: classifier}
}

// Evaluate analyzes one resume text and returns the full report. The only
// input error is empty or whitespace-only text.
func (e *Engine) Evaluate(ctx context.Context, text string) (*Report, error) {
	doc, err := NewDocument(text)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{}
	report.Sections = detectSections(doc)

	// Feature detectors depend only on the document and the section picture.
	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(func() { report.Readability = analyzeReadability(doc) })
	run(func() { report.WritingQuality = analyzeWritingQuality(doc) })
	run(func() { report.ActionVerbs = analyzeActionVerbs(ctx, doc, e.Classifier) })
	run(func() { report.Quantification = analyzeQuantification(doc) })
	run(func() { report.Skills = analyzeSkills(doc) })
	run(func() { report.Chronology = analyzeChronology(doc) })
	run(func() { report.Summary = analyzeSummary(doc) })
	run(func() { report.Buzzwords = analyzeBuzzwords(doc) })
	run(func() { report.Modernization = analyzeModernization(doc) })
	run(func() { report.Formatting = analyzeFormatting(doc) })
	run(func() { report.Tone = analyzeTone(doc) })
	run(func() { report.Entities = extractEntities(doc) })
	run(func() { report.BulletLints = lintBullets(doc) })
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Criteria = buildCriteria(report)
	report.Score = computeFinalScore(report)
	return report, nil
}
