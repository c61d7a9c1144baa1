package engine

import "context"

// Signal is an optional probability in [0,1]. Known distinguishes a value the
// classifier produced from the neutral default used when it was absent or
// failed.
type Signal struct {
	Value float64 `json:"value"`
	Known bool    `json:"known"`
}

// NeutralSignal is the stand-in when no classifier verdict exists.
func NeutralSignal() Signal { return Signal{Value: 0.5} }

// BulletSignals carries the per-bullet probabilities an external classifier
// can contribute.
type BulletSignals struct {
	Strong   Signal `json:"strong"`
	Relevant Signal `json:"relevant"`
}

// BulletClassifier scores bullet phrasing strength and job relevance. It is
// optional; the engine tolerates a nil classifier and any per-bullet error by
// substituting neutral signals.
type BulletClassifier interface {
	Classify(ctx context.Context, bullet string) (BulletSignals, error)
}

// classifyBullet wraps the optional classifier call with the neutral-default
// policy.
func classifyBullet(ctx context.Context, c BulletClassifier, bullet string) BulletSignals {
	neutral := BulletSignals{Strong: NeutralSignal(), Relevant: NeutralSignal()}
	if c == nil {
		return neutral
	}
	signals, err := c.Classify(ctx, bullet)
	if err != nil {
		return neutral
	}
	if !signals.Strong.Known {
		signals.Strong = NeutralSignal()
	}
	if !signals.Relevant.Known {
		signals.Relevant = NeutralSignal()
	}
	return signals
}
