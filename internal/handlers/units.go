package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/db"
	"github.com/JustinWhittecar/mekcore/internal/models"
)

const maxPageSize = 500

// UnitCatalog is the read side of the unit catalog.
type UnitCatalog interface {
	ListUnits(ctx context.Context, f models.UnitFilter) ([]models.UnitSummary, error)
	GetUnit(ctx context.Context, id int64) (models.UnitSummary, error)
}

type UnitHandler struct {
	Catalog UnitCatalog
	Logger  *zap.Logger
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.UnitFilter{
		Name:     q.Get("name"),
		UnitType: q.Get("unit_type"),
		TechBase: q.Get("tech_base"),
		Limit:    100,
	}
	if v := q.Get("tonnage_min"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinTons = n
		}
	}
	if v := q.Get("tonnage_max"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxTons = n
		}
	}
	if v := q.Get("year"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxYear = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = min(n, maxPageSize)
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Offset = n
		}
	}

	units, err := h.Catalog.ListUnits(r.Context(), f)
	if err != nil {
		h.Logger.Error("list units", zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *UnitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	u, err := h.Catalog.GetUnit(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("get unit", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
