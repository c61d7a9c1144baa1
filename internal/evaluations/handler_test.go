package evaluations_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-critic/internal/bootstrap"
	"resume-critic/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
		EngineVersion:   "rules:v1",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func uploadResume(t *testing.T, router *gin.Engine) string {
	t.Helper()
	payload := `{"title":"resume","text":"Jane Doe\njane@example.com\n\nExperience\nEngineer, Acme Corp\nJan 2021 - Present\n- Cut costs by 30%\n\nEducation\nBS Computer Science\n\nSkills\nPython, SQL, Leadership"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return created.DocumentID
}

func TestEvaluateEndToEnd(t *testing.T) {
	router := buildTestRouter(t)
	documentID := uploadResume(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+documentID+"/evaluate", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var queued struct {
		EvaluationID string `json:"evaluationId"`
		Status       string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&queued); err != nil {
		t.Fatalf("decode queue response: %v", err)
	}
	if queued.EvaluationID == "" {
		t.Fatal("expected evaluationId")
	}

	// Completion happens on a background goroutine; poll for it.
	var final struct {
		Status string          `json:"status"`
		Error  string          `json:"error"`
		Report json.RawMessage `json:"report"`
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/"+queued.EvaluationID, nil)
		reqGet.Header.Set("X-Guest-Id", "test-guest")
		respGet := httptest.NewRecorder()
		router.ServeHTTP(respGet, reqGet)
		if respGet.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", respGet.Code)
		}
		if err := json.NewDecoder(respGet.Body).Decode(&final); err != nil {
			t.Fatalf("decode evaluation: %v", err)
		}
		if final.Status == "completed" || final.Status == "failed" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("evaluation did not finish, status %q", final.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if final.Status != "completed" {
		t.Fatalf("status = %q (error: %s)", final.Status, final.Error)
	}
	if len(final.Report) == 0 {
		t.Fatal("expected report payload")
	}

	var report struct {
		Score struct {
			FinalScore float64 `json:"finalScore"`
			Grade      string  `json:"grade"`
		} `json:"score"`
	}
	if err := json.Unmarshal(final.Report, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Score.Grade == "" {
		t.Fatal("expected a letter grade")
	}
}

func TestEvaluateUnknownDocument(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/does-not-exist/evaluate", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestEvaluationsListOmitsReports(t *testing.T) {
	router := buildTestRouter(t)
	documentID := uploadResume(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+documentID+"/evaluate", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	reqList.Header.Set("X-Guest-Id", "test-guest")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respList.Code)
	}

	var listed []map[string]json.RawMessage
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 evaluation, got %d", len(listed))
	}
	if _, ok := listed[0]["report"]; ok {
		t.Fatal("list view should omit the report payload")
	}
}
