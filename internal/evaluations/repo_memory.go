package evaluations

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Evaluation // evaluationID -> evaluation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Evaluation),
	}
}

// Create stores a new evaluation.
func (r *MemoryRepo) Create(ctx context.Context, eval Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[eval.ID] = eval
	return nil
}

// GetByID returns an evaluation by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	eval, ok := r.data[evaluationID]
	if !ok || eval.UserID != userID {
		return Evaluation{}, ErrNotFound
	}
	return eval, nil
}

// Get returns an evaluation by ID alone.
func (r *MemoryRepo) Get(ctx context.Context, evaluationID string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	eval, ok := r.data[evaluationID]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	return eval, nil
}

// ListByUser returns evaluations for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var evals []Evaluation
	for _, eval := range r.data {
		if eval.UserID == userID {
			evals = append(evals, eval)
		}
	}
	r.mu.RUnlock()

	sort.Slice(evals, func(i, j int) bool {
		if evals[i].CreatedAt.Equal(evals[j].CreatedAt) {
			return evals[i].ID < evals[j].ID
		}
		return evals[i].CreatedAt.After(evals[j].CreatedAt)
	})

	if offset >= len(evals) {
		return []Evaluation{}, nil
	}
	end := len(evals)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return evals[offset:end], nil
}

// MarkProcessing transitions a queued evaluation to processing.
func (r *MemoryRepo) MarkProcessing(ctx context.Context, evaluationID string, startedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	eval, ok := r.data[evaluationID]
	if !ok || eval.Status != StatusQueued {
		return ErrNotFound
	}
	eval.Status = StatusProcessing
	eval.StartedAt = &startedAt
	r.data[evaluationID] = eval
	return nil
}

// Complete stores the report and marks the evaluation completed.
func (r *MemoryRepo) Complete(ctx context.Context, evaluationID string, report json.RawMessage, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	eval, ok := r.data[evaluationID]
	if !ok {
		return ErrNotFound
	}
	eval.Status = StatusCompleted
	eval.Report = append(json.RawMessage(nil), report...)
	eval.CompletedAt = &completedAt
	r.data[evaluationID] = eval
	return nil
}

// Fail records the error and marks the evaluation failed.
func (r *MemoryRepo) Fail(ctx context.Context, evaluationID string, errMsg string, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	eval, ok := r.data[evaluationID]
	if !ok {
		return ErrNotFound
	}
	eval.Status = StatusFailed
	eval.Error = errMsg
	eval.CompletedAt = &completedAt
	r.data[evaluationID] = eval
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
