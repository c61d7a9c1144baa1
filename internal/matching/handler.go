package matching

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-critic/internal/evaluations"
	"resume-critic/internal/shared/server/middleware"
	"resume-critic/internal/shared/server/respond"
)

// TextProvider loads the plain text of a stored document.
type TextProvider interface {
	DocumentText(ctx context.Context, userID, documentID string) (string, error)
}

// Handler serves résumé-to-job matching.
type Handler struct {
	Texts TextProvider
}

// NewHandler constructs a Handler.
func NewHandler(texts TextProvider) *Handler {
	return &Handler{Texts: texts}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
}

type matchRequest struct {
	DocumentID     string `json:"documentId"`
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// match accepts either inline résumé text or a stored document ID, plus a
// job description, and returns keyword overlap.
func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	resumeText := req.ResumeText
	if strings.TrimSpace(resumeText) == "" {
		if strings.TrimSpace(req.DocumentID) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText or documentId is required", nil)
			return
		}
		userID := middleware.UserIDFromContext(c)
		text, err := h.Texts.DocumentText(c.Request.Context(), userID, req.DocumentID)
		if err != nil {
			switch {
			case errors.Is(err, evaluations.ErrDocumentNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			case errors.Is(err, evaluations.ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document text", nil)
			}
			return
		}
		resumeText = text
		c.Set("documentId", req.DocumentID)
	}

	respond.JSON(c, http.StatusOK, Match(resumeText, req.JobDescription))
}
