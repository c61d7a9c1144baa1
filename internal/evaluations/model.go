package evaluations

import (
	"encoding/json"
	"time"
)

// Evaluation statuses. An evaluation moves queued -> processing and ends in
// completed or failed.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Evaluation is one scoring run of the engine over a document.
type Evaluation struct {
	ID            string
	UserID        string
	DocumentID    string
	Status        string
	EngineVersion string
	Report        json.RawMessage
	Error         string
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}
