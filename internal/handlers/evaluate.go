package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/config"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/summary"
	"github.com/JustinWhittecar/mekcore/internal/tech"
	"github.com/JustinWhittecar/mekcore/internal/telemetry"
)

const maxEvaluateBody = 1 << 20

// EvaluateHandler scores a posted .mtf design.
type EvaluateHandler struct {
	Equipment *bvcalc.EquipmentDB
	Options   config.Options
	Logger    *zap.Logger
}

func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.Tracer("handlers").Start(r.Context(), "evaluate")
	defer span.End()

	var req models.EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEvaluateBody)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Conditions == nil {
		c := h.Options.Conditions
		req.Conditions = &c
	}
	if req.Year == 0 {
		req.Year = h.Options.Year
	}

	resp, err := summary.Evaluate(ctx, req, h.Equipment)
	if errors.Is(err, summary.ErrInvalidRequest) {
		span.SetStatus(codes.Error, "invalid request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		span.RecordError(err)
		h.Logger.Error("evaluate", zap.Error(err))
		http.Error(w, "Evaluation failed", http.StatusInternalServerError)
		return
	}

	if lvl, err := tech.ParseLevel(resp.TechLevel); err == nil && !h.Options.Allows(resp.TechBase, lvl) {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s tech is not allowed by the campaign options", resp.TechLevel))
	}

	span.SetAttributes(
		attribute.String("unit.name", resp.Name),
		attribute.Int("unit.bv", resp.BV),
		attribute.Int("unit.walk_mp", resp.WalkMP),
	)
	h.Logger.Debug("evaluated unit",
		zap.String("name", resp.Name),
		zap.Int("bv", resp.BV),
		zap.Int("warnings", len(resp.Warnings)),
	)
	writeJSON(w, http.StatusOK, resp)
}
