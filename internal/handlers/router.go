// Package handlers is the HTTP API over the unit catalog and the
// evaluation rules.
package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/config"
)

var DefaultOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

type RouterConfig struct {
	Catalog   UnitCatalog
	Equipment *bvcalc.EquipmentDB
	Options   config.Options
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	Origins   []string
}

// NewRouter builds the API mux wrapped in metrics, logging and CORS.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	units := &UnitHandler{Catalog: cfg.Catalog, Logger: logger}
	eval := &EvaluateHandler{Equipment: cfg.Equipment, Options: cfg.Options, Logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/units", units.List)
	mux.HandleFunc("GET /api/units/{id}", units.GetByID)
	mux.HandleFunc("POST /api/evaluate", eval.Evaluate)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	metrics := NewMetrics(reg)
	return CORS(cfg.Origins, RequestLogger(logger, metrics.Middleware(mux)))
}
