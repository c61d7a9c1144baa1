package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncEvaluationStarted()
	IncEvaluationCompleted()
	IncEvaluationGated()
	ObserveEvaluationDurationMs(120)

	out := Render()
	for _, name := range []string{
		"evaluation_started_total",
		"evaluation_completed_total",
		"evaluation_failed_total",
		"evaluation_gated_total",
		"evaluation_duration_ms_bucket",
		"evaluation_duration_ms_sum",
		"evaluation_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("render output missing %q", name)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d, want 3", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("bucket counts = %v, want [1 2]", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("sum = %v, want 555", snap.sum)
	}
}
