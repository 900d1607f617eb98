package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/config"
	"github.com/JustinWhittecar/mekcore/internal/db"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

type fakeCatalog struct {
	units   []models.UnitSummary
	err     error
	lastFil models.UnitFilter
}

func (f *fakeCatalog) ListUnits(_ context.Context, fil models.UnitFilter) ([]models.UnitSummary, error) {
	f.lastFil = fil
	return f.units, f.err
}

func (f *fakeCatalog) GetUnit(_ context.Context, id int64) (models.UnitSummary, error) {
	if f.err != nil {
		return models.UnitSummary{}, f.err
	}
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return models.UnitSummary{}, fmt.Errorf("unit %d: %w", id, db.ErrNotFound)
}

const hunterMTF = `chassis:Hunter
model:HNT-2
techbase:Inner Sphere
era:3025
rules level:1
mass:50
walk mp:5

Weapons:1
Medium Laser, Right Arm

Right Arm:
Shoulder
Upper Arm Actuator
Medium Laser
`

func newTestServer(t *testing.T, cat *fakeCatalog, opts config.Options) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	h := NewRouter(RouterConfig{
		Catalog: cat,
		Equipment: bvcalc.NewEquipmentDB(bvcalc.EquipInfo{
			Name: "Medium Laser", InternalName: "ISMediumLaser", Type: "weapon", BV: 46, Heat: 3,
		}),
		Options:  opts,
		Registry: reg,
		Origins:  DefaultOrigins,
	})
	return h, reg
}

func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())
	rec := do(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListUnits(t *testing.T) {
	cat := &fakeCatalog{units: []models.UnitSummary{{ID: 1, Name: "Atlas AS7-D"}}}
	h, _ := newTestServer(t, cat, config.DefaultOptions())

	rec := do(h, http.MethodGet, "/api/units?name=atlas&tonnage_min=80&year=3025&limit=9999&offset=5&tonnage_max=bad", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.UnitSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Atlas AS7-D", got[0].Name)

	want := models.UnitFilter{Name: "atlas", MinTons: 80, MaxYear: 3025, Limit: maxPageSize, Offset: 5}
	assert.Equal(t, want, cat.lastFil)
}

func TestListUnitsError(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{err: errors.New("disk on fire")}, config.DefaultOptions())
	rec := do(h, http.MethodGet, "/api/units", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestGetUnit(t *testing.T) {
	cat := &fakeCatalog{units: []models.UnitSummary{{ID: 7, Name: "Locust LCT-1V"}}}
	h, _ := newTestServer(t, cat, config.DefaultOptions())

	tests := []struct {
		path string
		code int
	}{
		{"/api/units/7", http.StatusOK},
		{"/api/units/8", http.StatusNotFound},
		{"/api/units/seven", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func evaluateBody(t *testing.T, req models.EvaluateRequest) io.Reader {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestEvaluate(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())

	rec := do(h, http.MethodPost, "/api/evaluate", evaluateBody(t, models.EvaluateRequest{MTF: hunterMTF}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Hunter HNT-2", resp.Name)
	assert.Equal(t, 5, resp.WalkMP)
	assert.Equal(t, 326, resp.BV)
	assert.Empty(t, resp.Warnings)
}

func TestEvaluateSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		_ = tp.Shutdown(context.Background())
	})

	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())
	rec := do(h, http.MethodPost, "/api/evaluate", evaluateBody(t, models.EvaluateRequest{MTF: hunterMTF}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	spans := map[string]sdktrace.ReadOnlySpan{}
	for _, s := range recorder.Ended() {
		spans[s.Name()] = s
	}
	require.Contains(t, spans, "evaluate")
	require.Contains(t, spans, "summary.Evaluate")
	assert.Equal(t, spans["evaluate"].SpanContext().SpanID(), spans["summary.Evaluate"].Parent().SpanID(),
		"evaluation runs under the request span")
}

func TestEvaluateUsesOptions(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Conditions.Gravity = 2
	opts.TechBase = "Clan"
	opts.MaxRulesLevel = tech.LevelStandard
	h, _ := newTestServer(t, &fakeCatalog{}, opts)

	rec := do(h, http.MethodPost, "/api/evaluate", evaluateBody(t, models.EvaluateRequest{MTF: hunterMTF}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.WalkMP, "campaign gravity applies when the request has none")
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[len(resp.Warnings)-1], "not allowed")
}

func TestEvaluateBadRequests(t *testing.T) {
	h, reg := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())

	bodies := []string{
		"{not json",
		`{"mtf": ""}`,
		`{"mtf": "mass:50\nwalk mp:4\n"}`,
		`{"mtf": "chassis:X\nmass:50\nwalk mp:4\n", "heat": -3}`,
		`{"mtf": "chassis:X\nmass:50\nwalk mp:4\n", "conditions": {"gravity": 0}}`,
	}
	for _, b := range bodies {
		rec := do(h, http.MethodPost, "/api/evaluate", strings.NewReader(b))
		assert.Equal(t, http.StatusBadRequest, rec.Code, b)
	}

	errs, err := testutil.GatherAndCount(reg, "mekcore_http_request_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, errs, "one series for POST /api/evaluate 400")
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())
	rec := do(h, http.MethodGet, "/api/evaluate", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())

	req := httptest.NewRequest(http.MethodOptions, "/api/units", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t, &fakeCatalog{}, config.DefaultOptions())
	do(h, http.MethodGet, "/healthz", nil)

	rec := do(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `mekcore_http_request_duration_seconds_count{method="GET",path="GET /healthz",status="200"} 1`)
}
