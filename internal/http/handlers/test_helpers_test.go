package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopgenius/shopgenius-api/internal/gemini"
	api "github.com/shopgenius/shopgenius-api/internal/http"
	"github.com/shopgenius/shopgenius-api/internal/http/handlers"
	rl "github.com/shopgenius/shopgenius-api/internal/http/rate_limiter"
	"github.com/shopgenius/shopgenius-api/internal/repo"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) GenerateJSON(_ context.Context, _ string, _ *genai.Schema) (string, error) {
	return s.text, s.err
}

// newRouter wires a fresh catalog and advisor behind the real router. The
// rate limiter is widened so unrelated tests never trip it.
func newRouter(t *testing.T, gen gemini.Generator) http.Handler {
	t.Helper()
	rl.CleanupAllVisitors()
	rl.SetLimits(1000, 1000)
	handlers.SetCatalog(repo.NewCatalog(repo.SeedProducts()))
	handlers.SetAdvisor(gemini.NewService(gen, zap.NewNop()))
	return api.NewRouter()
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("error encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(into); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}
