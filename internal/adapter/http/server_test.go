package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "github.com/couchcryptid/surf-forecast-engine/internal/adapter/http"
	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

// fixedEvaluator runs the real engine at a fixed instant.
type fixedEvaluator struct {
	calls int
}

func (f *fixedEvaluator) Evaluate(req domain.EvaluationRequest) domain.Evaluation {
	f.calls++
	now := time.Date(2026, time.October, 15, 15, 0, 0, 0, time.UTC)
	return domain.Evaluate(req, now, time.UTC, 0)
}

func newTestServer(readyErr error) (*httpadapter.Server, *fixedEvaluator) {
	eval := &fixedEvaluator{}
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, eval, slog.Default()), eval
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv, _ := newTestServer(fmt.Errorf("not ready yet"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestEvaluateReturnsEvaluation(t *testing.T) {
	srv, evaluator := newTestServer(nil)
	body := `{
		"current": {
			"timestamp": "2026-10-15T15:00:00Z",
			"breaking_wave_height_ft": 6,
			"quality_score": 95,
			"wind_type": "offshore",
			"dominant_swell_direction_deg": 270
		},
		"preference": {"home_break": "blacks", "min_wave_height_ft": 3, "wind_preference": "OFFSHORE", "min_quality_score": 60}
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", strings.NewReader(body))

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, evaluator.calls)

	var eval domain.Evaluation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eval))
	assert.Equal(t, domain.SpotBlacks, eval.SpotID)
	assert.Equal(t, 95, eval.Score)
	assert.Equal(t, domain.TierAllTime, eval.Tier)
	assert.Equal(t, domain.StatusGo, eval.Verdict.Status)
	assert.Equal(t, "W", eval.SwellCardinal)
}

func TestEvaluateRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid JSON", `{not json`, "decode evaluation request"},
		{"missing current", `{"preference":{"home_break":"blacks"}}`, "missing current reading"},
		{"missing preference", `{"current":{}}`, "missing preference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, evaluator := newTestServer(nil)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", strings.NewReader(tt.body))

			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, evaluator.calls)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestEvaluateRejectsOversizedBody(t *testing.T) {
	srv, _ := newTestServer(nil)
	body := `{"pad":"` + strings.Repeat("x", 2<<20) + `"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", strings.NewReader(body))

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestEvaluateRequiresPost(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/evaluate", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
