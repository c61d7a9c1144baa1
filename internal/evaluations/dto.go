package evaluations

import (
	"encoding/json"
	"time"
)

// EvaluationResponse is the outward-facing representation of an evaluation.
type EvaluationResponse struct {
	EvaluationID  string          `json:"evaluationId"`
	DocumentID    string          `json:"documentId"`
	Status        string          `json:"status"`
	EngineVersion string          `json:"engineVersion,omitempty"`
	Report        json.RawMessage `json:"report,omitempty"`
	Error         string          `json:"error,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

func toResponse(eval Evaluation) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID:  eval.ID,
		DocumentID:    eval.DocumentID,
		Status:        eval.Status,
		EngineVersion: eval.EngineVersion,
		Report:        eval.Report,
		Error:         eval.Error,
		CreatedAt:     eval.CreatedAt,
		CompletedAt:   eval.CompletedAt,
	}
}

// toSummaryResponse omits the report payload for list views.
func toSummaryResponse(eval Evaluation) EvaluationResponse {
	out := toResponse(eval)
	out.Report = nil
	return out
}
