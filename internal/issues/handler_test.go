package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T, stub *stubLLM) (*gin.Engine, *Service, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(NewHistoryStore(), stub, 20<<20)
	sessionID, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, svc, sessionID
}

func postAnalysis(t *testing.T, r *gin.Engine, sessionID string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/analyses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEndpointSuccess(t *testing.T) {
	stub := &stubLLM{raw: validResultJSON(t, nil)}
	r, svc, sessionID := setupRouter(t, stub)

	resp := postAnalysis(t, r, sessionID, map[string]any{
		"description": "deep pothole near the bus stop",
		"location":    map[string]float64{"latitude": 12.9716, "longitude": 77.5946},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Analysis.IssueType != "pothole" {
		t.Fatalf("issueType = %q", out.Analysis.IssueType)
	}
	if out.Analysis.Presentation.SeverityBand.Label != "High" {
		t.Fatalf("severity band = %+v", out.Analysis.Presentation.SeverityBand)
	}
	if out.Analysis.Presentation.ScoreBarWidth != 70 {
		t.Fatalf("score bar width = %d", out.Analysis.Presentation.ScoreBarWidth)
	}
	if out.Stats.Count != 1 || out.Stats.MaxSeverity != 7 {
		t.Fatalf("stats = %+v", out.Stats)
	}

	history, _ := svc.Snapshot(context.Background(), sessionID)
	if len(history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(history))
	}
}

func TestAnalyzeEndpointNoInput(t *testing.T) {
	stub := &stubLLM{raw: validResultJSON(t, nil)}
	r, _, sessionID := setupRouter(t, stub)

	resp := postAnalysis(t, r, sessionID, map[string]any{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("validation failure must not reach the llm")
	}

	var out struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if out.Error.Code != ErrorCodeValidation {
		t.Fatalf("error code = %q", out.Error.Code)
	}
}

func TestAnalyzeEndpointGenericFailureMessage(t *testing.T) {
	stub := &stubLLM{raw: json.RawMessage(`{"issueType":"pothole"}`)}
	r, svc, sessionID := setupRouter(t, stub)

	resp := postAnalysis(t, r, sessionID, map[string]any{"description": "pothole"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}

	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if out.Error.Code != ErrorCodeUnavailable {
		t.Fatalf("error code = %q", out.Error.Code)
	}
	if out.Error.Message != "Analysis unavailable. Please try again." {
		t.Fatalf("message = %q", out.Error.Message)
	}

	history, _ := svc.Snapshot(context.Background(), sessionID)
	if len(history) != 0 {
		t.Fatalf("history must be untouched after failure")
	}
}

func TestAnalyzeEndpointUnknownSession(t *testing.T) {
	stub := &stubLLM{raw: validResultJSON(t, nil)}
	r, _, _ := setupRouter(t, stub)

	resp := postAnalysis(t, r, "nope", map[string]any{"description": "pothole"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCreateSessionAndHistoryEndpoints(t *testing.T) {
	stub := &stubLLM{raw: validResultJSON(t, nil)}
	r, _, _ := setupRouter(t, stub)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if created.SessionID == "" {
		t.Fatalf("expected sessionId")
	}

	if code := postAnalysis(t, r, created.SessionID, map[string]any{"description": "pothole"}).Code; code != http.StatusOK {
		t.Fatalf("analysis failed with %d", code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/analyses", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("history request failed with %d", resp.Code)
	}
	var history historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history.Analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(history.Analyses))
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/stats", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("stats request failed with %d", resp.Code)
	}
	var stats statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Stats.Count != 1 {
		t.Fatalf("stats count = %d", stats.Stats.Count)
	}
}
