// Package summary turns units into the catalog and evaluation views shared
// by the HTTP API and the command line.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/ingestion"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/telemetry"
)

// ErrInvalidRequest marks evaluate requests the caller must fix.
var ErrInvalidRequest = errors.New("invalid evaluate request")

// baseMP is the printed movement: standard conditions, no heat, no MASC.
var baseMP = entity.MPOptions{IgnoreHeat: true, IgnoreMASC: true}

// Summarize builds the catalog row for u. bv is the design's BV2, or 0 when
// unknown. The tech level is reported for year, or the design year when
// year is 0.
func Summarize(u entity.Unit, bv, year int) models.UnitSummary {
	e := u.Base()
	c := rules.DefaultConditions()
	if year == 0 {
		year = e.Year
	}
	s := models.UnitSummary{
		UUID:          e.ID.String(),
		Chassis:       e.Chassis,
		Model:         e.Model,
		Name:          e.DisplayName(),
		UnitType:      u.Type().String(),
		Tonnage:       e.Weight,
		TechBase:      e.TechBase.String(),
		IntroYear:     e.Year,
		Era:           rules.EraForYear(e.Year),
		RulesLevel:    e.RulesLevel.String(),
		WalkMP:        u.WalkMP(c, baseMP),
		RunMP:         u.RunMP(c, baseMP),
		JumpMP:        u.JumpMP(c, baseMP),
		ArmorTotal:    e.TotalOrigArmor(),
		InternalTotal: e.TotalOrigInternal(),
		GenericBV:     u.GenericBattleValue(),
	}
	if lvl, ok := e.Tech().LevelIn(year, e.TechBase == entity.TechClan); ok {
		s.TechLevel = lvl.String()
	}
	if bv > 0 {
		s.BV = &bv
	}
	return s
}

// Evaluate parses the design in req and reports its movement, piloting
// target and battle value under the requested conditions.
func Evaluate(ctx context.Context, req models.EvaluateRequest, edb *bvcalc.EquipmentDB) (models.EvaluateResponse, error) {
	_, span := telemetry.Tracer("summary").Start(ctx, "summary.Evaluate")
	defer span.End()

	var resp models.EvaluateResponse
	if strings.TrimSpace(req.MTF) == "" {
		return resp, fmt.Errorf("%w: mtf is empty", ErrInvalidRequest)
	}
	c := rules.DefaultConditions()
	if req.Conditions != nil {
		c = *req.Conditions
	}
	if err := c.Validate(); err != nil {
		return resp, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if req.Heat < 0 {
		return resp, fmt.Errorf("%w: heat %d is negative", ErrInvalidRequest, req.Heat)
	}

	data, err := ingestion.ParseMTFReader(strings.NewReader(req.MTF))
	if err != nil {
		return resp, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	m, err := ingestion.BuildMek(data)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	m.Heat = req.Heat
	if req.Gunnery != nil {
		m.Crew.Gunnery = *req.Gunnery
	}
	if req.Piloting != nil {
		m.Crew.Piloting = *req.Piloting
	}
	year := req.Year
	if year == 0 {
		year = m.Year
	}

	opts := entity.MPOptions{IgnoreMASC: !req.UseMASC}
	psr := m.PilotingRoll()
	bv := bvcalc.CalculateMek(m, edb)

	resp = models.EvaluateResponse{
		Name:           m.DisplayName(),
		UnitType:       m.Type().String(),
		TechBase:       m.TechBase.String(),
		WalkMP:         m.WalkMP(c, opts),
		RunMP:          m.RunMP(c, opts),
		JumpMP:         m.JumpMP(c, opts),
		PilotingTarget: psr.Value(),
		PilotingDesc:   psr.Desc(),
		BV:             bv.FinalBV,
		AdjustedBV:     bvcalc.Adjusted(bv.FinalBV, m.Crew.Gunnery, m.Crew.Piloting),
		GenericBV:      m.GenericBattleValue(),
		Crippled:       m.IsCrippled(),
		Era:            rules.EraForYear(year),
		Warnings:       bv.Errors,
	}
	clan := m.IsClan()
	if lvl, ok := m.Tech().LevelIn(year, clan); ok {
		resp.TechLevel = lvl.String()
	}
	resp.AvailableInYear = m.Tech().IsAvailableIn(year, clan)
	return resp, nil
}
