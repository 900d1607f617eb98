package rules

// Roller is the dice source used by every random rules lookup.
// *math/rand/v2.Rand satisfies it.
type Roller interface {
	IntN(n int) int
}

func Roll1d6(r Roller) int { return r.IntN(6) + 1 }
func Roll2d6(r Roller) int { return Roll1d6(r) + Roll1d6(r) }

// ─── 2d6 probability table ─────────────────────────────────────────────────

var pHitTable = [13]float64{
	0, 0, 1.0, 35.0 / 36, 33.0 / 36, 30.0 / 36, 26.0 / 36,
	21.0 / 36, 15.0 / 36, 10.0 / 36, 6.0 / 36, 3.0 / 36, 1.0 / 36,
}

// HitProbability returns the chance of rolling target or better on 2d6.
func HitProbability(target int) float64 {
	if target <= 2 {
		return 1.0
	}
	if target >= 13 {
		return 0.0
	}
	return pHitTable[target]
}

// TMM returns the target movement modifier for hexes moved in a turn.
func TMM(mp int) int {
	switch {
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 17:
		return 4
	case mp <= 24:
		return 5
	default:
		return 6
	}
}
