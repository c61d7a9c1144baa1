package matching

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-critic/internal/evaluations"
)

type stubTexts struct {
	text string
}

func (s stubTexts) DocumentText(ctx context.Context, userID, documentID string) (string, error) {
	if documentID == "missing" {
		return "", evaluations.ErrDocumentNotFound
	}
	return s.text, nil
}

func newMatchRouter(texts TextProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(texts).RegisterRoutes(api)
	return r
}

func postMatch(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestMatchHandlerInlineText(t *testing.T) {
	router := newMatchRouter(stubTexts{})

	resp := postMatch(router, `{"resumeText":"Python and Docker","jobDescription":"Python required"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result MatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MatchPercentage != 100.0 {
		t.Fatalf("MatchPercentage = %v, want 100.0", result.MatchPercentage)
	}
}

func TestMatchHandlerStoredDocument(t *testing.T) {
	router := newMatchRouter(stubTexts{text: "SQL analyst with leadership"})

	resp := postMatch(router, `{"documentId":"doc-1","jobDescription":"SQL and Python"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result MatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MatchPercentage != 50.0 {
		t.Fatalf("MatchPercentage = %v, want 50.0", result.MatchPercentage)
	}
}

func TestMatchHandlerValidation(t *testing.T) {
	router := newMatchRouter(stubTexts{})

	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"missing job description", `{"resumeText":"Python"}`, http.StatusBadRequest},
		{"missing resume", `{"jobDescription":"Python"}`, http.StatusBadRequest},
		{"unknown document", `{"documentId":"missing","jobDescription":"Python"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postMatch(router, tt.payload)
			if resp.Code != tt.want {
				t.Fatalf("status = %d, want %d", resp.Code, tt.want)
			}
		})
	}
}
