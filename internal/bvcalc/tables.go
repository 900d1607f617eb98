package bvcalc

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/entity"
)

// Armor type modifiers for defensive BV
var ArmorTypeModifier = map[string]float64{
	"Standard":                    1.0,
	"Standard(Inner Sphere)":      1.0,
	"Standard(Clan)":              1.0,
	"Ferro-Fibrous":               1.0,
	"Ferro-Fibrous(Inner Sphere)": 1.0,
	"Ferro-Fibrous(Clan)":         1.0,
	"Light Ferro-Fibrous":         1.0,
	"Light Ferro-Fibrous(Clan)":   1.0,
	"Heavy Ferro-Fibrous":         1.0,
	"Heavy Ferro-Fibrous(Clan)":   1.0,
	"Stealth":                     1.0,
	"Stealth(Inner Sphere)":       1.0,
	"Stealth Armor Type I":        1.0,
	"Stealth Armor Type II":       1.0,
	"Reactive":                    1.0,
	"Reactive(Inner Sphere)":      1.0,
	"Reactive(Clan)":              1.0,
	"Reflective":                  1.0,
	"Reflective(Inner Sphere)":    1.0,
	"Reflective(Clan)":            1.0,
	"Hardened":                    1.0,
	"Hardened(Inner Sphere)":      1.0,
	"Hardened(Clan)":              1.0,
	"Industrial":                  1.0,
	"Heavy Industrial":            1.0,
	"Commercial":                  0.5,
	"Primitive":                   1.0,
	"Patchwork":                   1.0, // handled per-location in full impl
}

// StructureModifier scales internal structure BV.
func StructureModifier(s entity.StructureType) float64 {
	switch s {
	case entity.StructureComposite, entity.StructureIndustrial:
		return 0.5
	case entity.StructureReinforced:
		return 2.0
	default:
		return 1.0
	}
}

// EngineModifier scales internal structure BV for engines that put
// slots in the side torsos.
func EngineModifier(e entity.EngineType, clan bool) float64 {
	switch e {
	case entity.EngineXL:
		if clan {
			return 0.75
		}
		return 0.5
	case entity.EngineXXL:
		if clan {
			return 0.5
		}
		return 0.25
	case entity.EngineLight:
		return 0.75
	default: // Standard, Compact, ICE
		return 1.0
	}
}

// GyroModifier returns the BV modifier for gyro type
func GyroModifier(g entity.GyroType) float64 {
	if g == entity.GyroHeavyDuty {
		return 1.0
	}
	return 0.5
}

// TMM calculates Target Movement Modifier from MP
func TMM(mp int) int {
	switch {
	case mp <= 0:
		return 0
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 12:
		return 4
	case mp <= 17:
		return 5
	case mp <= 24:
		return 6
	default:
		return 7
	}
}

// DefensiveFactor returns 1 + TMM/10
func DefensiveFactor(tmm int) float64 {
	return 1.0 + float64(tmm)/10.0
}

// SpeedFactor calculates the speed factor for OBR
func SpeedFactor(runMP, jumpMP int) float64 {
	speedMP := runMP
	if jumpMP > 0 {
		speedMP += int(math.Ceil(float64(jumpMP) / 2.0))
	}
	base := 1.0 + float64(speedMP-5)/10.0
	if base < 0.1 {
		base = 0.1
	}
	sf := math.Pow(base, 1.2)
	return math.Round(sf*100) / 100
}

// MovementHeat returns the movement heat for BV calculation
func MovementHeat(runMP, jumpMP int, hasStealth bool) int {
	runHeat := 2
	jumpHeat := 0
	if jumpMP > 0 {
		jumpHeat = jumpMP
		if jumpHeat < 3 {
			jumpHeat = 3
		}
	}
	heat := runHeat
	if jumpHeat > heat {
		heat = jumpHeat
	}
	if hasStealth {
		heat += 10
	}
	return heat
}
