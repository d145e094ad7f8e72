package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaiwen-teo/primeprep-lambda/internal/assessment"
	"github.com/kaiwen-teo/primeprep-lambda/internal/router"
	"google.golang.org/genai"
)

type stubProvider struct{}

func (stubProvider) Generate(_ context.Context, _ string, schema *genai.Schema) (json.RawMessage, error) {
	if schema != nil {
		return json.RawMessage(`{"questions":[]}`), nil
	}
	return json.RawMessage(`{"text":"a hint"}`), nil
}

func newTestRouter() http.Handler {
	handler := assessment.NewHandler(assessment.NewService(stubProvider{}))
	return router.New(router.RouterConfig{AssessmentHandler: handler})
}

func TestRouter(t *testing.T) {
	r := newTestRouter()

	t.Run("TaskEndpointsAcceptPost", func(t *testing.T) {
		for _, path := range []string{
			"/api/generate",
			"/api/question-paper",
			"/api/generate-year-end",
			"/api/evaluate",
			"/api/get-hint",
		} {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code == http.StatusNotFound || rec.Code == http.StatusMethodNotAllowed {
				t.Errorf("POST %s should be routed, got %d", path, rec.Code)
			}
		}
	})

	t.Run("WrongMethodRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("GET on a task endpoint should be 405, got %d", rec.Code)
		}
	})

	t.Run("PreflightAnywhere", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/evaluate", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("preflight should be answered with 204, got %d", rec.Code)
		}
	})

	t.Run("HintEndToEnd", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/get-hint", strings.NewReader(`{"question":"What is 7 x 8?"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["text"] == "" {
			t.Errorf("hint responses wrap the raw text: %s", rec.Body.String())
		}
	})

	t.Run("DispatchThroughRoot", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api?path=get-hint", strings.NewReader(`{"question":"What is 7 x 8?"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("dispatch endpoint should route by query parameter, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
