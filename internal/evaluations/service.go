package evaluations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-critic/internal/documents"
	"resume-critic/internal/engine"
	"resume-critic/internal/extract"
	"resume-critic/internal/shared/metrics"
	"resume-critic/internal/shared/storage/object"
	"resume-critic/internal/shared/telemetry"
)

// Processor runs a queued evaluation to completion. Handlers depend on this
// interface so tests can substitute a synchronous implementation.
type Processor interface {
	ProcessEvaluation(ctx context.Context, evaluationID string) error
}

// Service contains business logic for evaluations.
type Service struct {
	Repo          Repo
	DocRepo       documents.Repo
	Store         object.ObjectStore
	Engine        *engine.Engine
	EngineVersion string
}

// Start validates the document and records a queued evaluation. Processing
// happens separately via ProcessEvaluation.
func (s *Service) Start(ctx context.Context, userID, documentID string) (Evaluation, error) {
	if userID == "" || documentID == "" {
		return Evaluation{}, ErrInvalidInput
	}

	if _, err := s.DocRepo.GetByID(ctx, userID, documentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Evaluation{}, ErrDocumentNotFound
		}
		return Evaluation{}, err
	}

	eval := Evaluation{
		ID:            uuid.NewString(),
		UserID:        userID,
		DocumentID:    documentID,
		Status:        StatusQueued,
		EngineVersion: s.EngineVersion,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, eval); err != nil {
		return Evaluation{}, err
	}

	metrics.IncEvaluationStarted()
	telemetry.Info("evaluation.queued", map[string]any{
		"evaluation_id": eval.ID,
		"document_id":   documentID,
		"user_id":       userID,
	})
	return eval, nil
}

// GetByID returns an evaluation owned by the user.
func (s *Service) GetByID(ctx context.Context, userID, evaluationID string) (Evaluation, error) {
	if userID == "" || evaluationID == "" {
		return Evaluation{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, evaluationID)
}

// List returns the user's evaluations, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// ProcessEvaluation runs one queued evaluation: load the document text, run
// the engine, persist the report. A second call for the same ID is a no-op.
func (s *Service) ProcessEvaluation(ctx context.Context, evaluationID string) error {
	eval, err := s.Repo.Get(ctx, evaluationID)
	if err != nil {
		return err
	}

	startedAt := time.Now().UTC()
	if err := s.Repo.MarkProcessing(ctx, evaluationID, startedAt); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Already picked up or finished.
			telemetry.Warn("evaluation.already_processed", map[string]any{
				"evaluation_id": evaluationID,
				"status":        eval.Status,
			})
			return nil
		}
		return err
	}

	report, err := s.evaluateDocument(ctx, eval)
	if err != nil {
		return s.fail(ctx, eval, err)
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return s.fail(ctx, eval, fmt.Errorf("marshal report: %w", err))
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.Complete(ctx, evaluationID, payload, completedAt); err != nil {
		return err
	}

	metrics.IncEvaluationCompleted()
	if report.Score.Invalidated {
		metrics.IncEvaluationGated()
	}
	metrics.ObserveEvaluationDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("evaluation.completed", map[string]any{
		"evaluation_id":     evaluationID,
		"document_id":       eval.DocumentID,
		"status_transition": StatusProcessing + "->" + StatusCompleted,
		"final_score":       report.Score.FinalScore,
		"grade":             report.Score.Grade,
		"invalidated":       report.Score.Invalidated,
	})
	return nil
}

// DocumentText loads the plain text of a user's document, extracting it on
// first use. Other features (job matching) reuse this path.
func (s *Service) DocumentText(ctx context.Context, userID, documentID string) (string, error) {
	if userID == "" || documentID == "" {
		return "", ErrInvalidInput
	}
	doc, err := s.DocRepo.GetByID(ctx, userID, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return "", ErrDocumentNotFound
		}
		return "", err
	}
	return s.documentText(ctx, doc)
}

func (s *Service) evaluateDocument(ctx context.Context, eval Evaluation) (*engine.Report, error) {
	doc, err := s.DocRepo.GetByID(ctx, eval.UserID, eval.DocumentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	text, err := s.documentText(ctx, doc)
	if err != nil {
		return nil, err
	}

	return s.Engine.Evaluate(ctx, text)
}

// documentText returns the document's plain text, extracting and caching it
// on first use for binary formats.
func (s *Service) documentText(ctx context.Context, doc documents.Document) (string, error) {
	if doc.ExtractedTextKey != "" {
		return s.readStored(ctx, doc.ExtractedTextKey)
	}

	if strings.HasPrefix(doc.MimeType, "text/") {
		raw, err := s.readStored(ctx, doc.StorageKey)
		if err != nil {
			return "", err
		}
		return extract.NormalizeText(raw), nil
	}

	text, extractedKey, err := extract.Text(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", err
	}
	if err := s.DocRepo.UpdateExtraction(ctx, doc.UserID, doc.ID, extractedKey, time.Now().UTC()); err != nil {
		telemetry.Warn("evaluation.extraction_cache_failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}
	return text, nil
}

func (s *Service) readStored(ctx context.Context, key string) (string, error) {
	body, err := s.Store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Service) fail(ctx context.Context, eval Evaluation, cause error) error {
	completedAt := time.Now().UTC()
	if err := s.Repo.Fail(ctx, eval.ID, cause.Error(), completedAt); err != nil {
		return err
	}
	metrics.IncEvaluationFailed()
	telemetry.Error("evaluation.failed", map[string]any{
		"evaluation_id":     eval.ID,
		"document_id":       eval.DocumentID,
		"status_transition": StatusProcessing + "->" + StatusFailed,
		"error":             cause.Error(),
	})
	return nil
}

var _ Processor = (*Service)(nil)
