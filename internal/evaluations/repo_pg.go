package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

const evalColumns = `id, user_id, document_id, status, engine_version, report, error, created_at, started_at, completed_at`

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new evaluation.
func (r *PGRepo) Create(ctx context.Context, eval Evaluation) error {
	const query = `
INSERT INTO evaluations (
    id,
    user_id,
    document_id,
    status,
    engine_version,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		eval.ID,
		eval.UserID,
		eval.DocumentID,
		eval.Status,
		eval.EngineVersion,
		eval.CreatedAt,
	)
	return err
}

// GetByID fetches an evaluation by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	const query = `
SELECT ` + evalColumns + `
FROM evaluations
WHERE user_id = $1 AND id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, evaluationID)
	eval, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return eval, nil
}

// Get fetches an evaluation by ID alone.
func (r *PGRepo) Get(ctx context.Context, evaluationID string) (Evaluation, error) {
	const query = `
SELECT ` + evalColumns + `
FROM evaluations
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, evaluationID)
	eval, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return eval, nil
}

// ListByUser lists evaluations ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + evalColumns + `
FROM evaluations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, eval)
	}
	return out, rows.Err()
}

// MarkProcessing transitions a queued evaluation to processing.
func (r *PGRepo) MarkProcessing(ctx context.Context, evaluationID string, startedAt time.Time) error {
	const query = `
UPDATE evaluations
SET status = $1, started_at = $2
WHERE id = $3 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, StatusProcessing, startedAt, evaluationID, StatusQueued)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete stores the report and marks the evaluation completed.
func (r *PGRepo) Complete(ctx context.Context, evaluationID string, report json.RawMessage, completedAt time.Time) error {
	const query = `
UPDATE evaluations
SET status = $1, report = $2, completed_at = $3
WHERE id = $4`
	_, err := r.DB.ExecContext(ctx, query, StatusCompleted, []byte(report), completedAt, evaluationID)
	return err
}

// Fail records the error and marks the evaluation failed.
func (r *PGRepo) Fail(ctx context.Context, evaluationID string, errMsg string, completedAt time.Time) error {
	const query = `
UPDATE evaluations
SET status = $1, error = $2, completed_at = $3
WHERE id = $4`
	_, err := r.DB.ExecContext(ctx, query, StatusFailed, errMsg, completedAt, evaluationID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var eval Evaluation
	var report []byte
	var errMsg sql.NullString
	var startedAt sql.NullTime
	var completedAt sql.NullTime
	if err := row.Scan(
		&eval.ID,
		&eval.UserID,
		&eval.DocumentID,
		&eval.Status,
		&eval.EngineVersion,
		&report,
		&errMsg,
		&eval.CreatedAt,
		&startedAt,
		&completedAt,
	); err != nil {
		return Evaluation{}, err
	}
	if len(report) > 0 {
		eval.Report = json.RawMessage(report)
	}
	if errMsg.Valid {
		eval.Error = errMsg.String
	}
	if startedAt.Valid {
		eval.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		eval.CompletedAt = &completedAt.Time
	}
	return eval, nil
}

var _ Repo = (*PGRepo)(nil)
