package evaluations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-critic/internal/shared/server/middleware"
	"resume-critic/internal/shared/server/respond"
	"resume-critic/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc       *Service
	Processor Processor
}

// NewHandler constructs a Handler. A nil processor defaults to the service
// itself.
func NewHandler(svc *Service, processor Processor) *Handler {
	if processor == nil {
		processor = svc
	}
	return &Handler{Svc: svc, Processor: processor}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/evaluate", h.start)
	rg.GET("/evaluations", h.list)
	rg.GET("/evaluations/:id", h.get)
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")

	eval, err := h.Svc.Start(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start evaluation", nil)
		}
		return
	}

	c.Set("documentId", documentID)
	c.Set("evaluationId", eval.ID)
	c.Set("statusTransition", "->"+StatusQueued)

	// Process off the request goroutine; the client polls for completion.
	evaluationID := eval.ID
	go func() {
		if err := h.Processor.ProcessEvaluation(context.Background(), evaluationID); err != nil {
			telemetry.Error("evaluation.process_error", map[string]any{
				"evaluation_id": evaluationID,
				"error":         err.Error(),
			})
		}
	}()

	respond.JSON(c, http.StatusAccepted, toSummaryResponse(eval))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	evaluationID := c.Param("id")

	eval, err := h.Svc.GetByID(c.Request.Context(), userID, evaluationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "evaluation not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch evaluation", nil)
		}
		return
	}

	c.Set("evaluationId", eval.ID)
	respond.JSON(c, http.StatusOK, toResponse(eval))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	evals, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list evaluations", nil)
		}
		return
	}

	resp := make([]EvaluationResponse, 0, len(evals))
	for _, eval := range evals {
		resp = append(resp, toSummaryResponse(eval))
	}

	respond.JSON(c, http.StatusOK, resp)
}
