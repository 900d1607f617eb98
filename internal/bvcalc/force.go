package bvcalc

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/entity"
)

// skillMultipliers is indexed [gunnery][piloting].
var skillMultipliers = [9][9]float64{
	{2.42, 2.31, 2.21, 2.10, 1.93, 1.75, 1.68, 1.59, 1.50},
	{2.21, 2.11, 2.02, 1.92, 1.76, 1.60, 1.54, 1.46, 1.38},
	{1.93, 1.85, 1.76, 1.68, 1.54, 1.40, 1.35, 1.28, 1.21},
	{1.66, 1.58, 1.51, 1.44, 1.32, 1.20, 1.16, 1.10, 1.04},
	{1.38, 1.32, 1.26, 1.20, 1.10, 1.00, 0.95, 0.90, 0.85},
	{1.31, 1.19, 1.13, 1.08, 0.99, 0.90, 0.86, 0.81, 0.77},
	{1.24, 1.12, 1.07, 1.02, 0.94, 0.85, 0.81, 0.77, 0.72},
	{1.17, 1.06, 1.01, 0.96, 0.88, 0.80, 0.76, 0.72, 0.68},
	{1.10, 0.99, 0.95, 0.90, 0.83, 0.75, 0.71, 0.68, 0.64},
}

// SkillMultiplier returns the BV multiplier for a crew's skills. Skills
// outside 0..8 are clamped.
func SkillMultiplier(gunnery, piloting int) float64 {
	return skillMultipliers[clampSkill(gunnery)][clampSkill(piloting)]
}

func clampSkill(s int) int {
	return min(max(s, 0), 8)
}

// Adjusted scales a base BV by crew skill.
func Adjusted(bv, gunnery, piloting int) int {
	return int(math.Round(float64(bv) * SkillMultiplier(gunnery, piloting)))
}

// Valuer computes BV2 for a Mek.
type Valuer interface {
	BattleValue(m *entity.Mek) int
}

// ForceBV totals a force, skill adjusted per unit crew. Meks use v when
// it is non-nil; everything else uses its generic BV.
func ForceBV(units []entity.Unit, v Valuer) int {
	total := 0
	for _, u := range units {
		bv := u.GenericBattleValue()
		if m, ok := u.(*entity.Mek); ok && v != nil {
			bv = v.BattleValue(m)
		}
		crew := u.Base().Crew
		total += Adjusted(bv, crew.Gunnery, crew.Piloting)
	}
	return total
}
