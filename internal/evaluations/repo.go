package evaluations

import (
	"context"
	"encoding/json"
	"time"
)

// Repo defines persistence operations for evaluations.
type Repo interface {
	Create(ctx context.Context, eval Evaluation) error
	GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error)
	// Get fetches an evaluation without an ownership filter; the async
	// processor looks work up by ID alone.
	Get(ctx context.Context, evaluationID string) (Evaluation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error)
	MarkProcessing(ctx context.Context, evaluationID string, startedAt time.Time) error
	Complete(ctx context.Context, evaluationID string, report json.RawMessage, completedAt time.Time) error
	Fail(ctx context.Context, evaluationID string, errMsg string, completedAt time.Time) error
}
