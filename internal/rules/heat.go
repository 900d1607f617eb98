package rules

// ─── Heat scale ─────────────────────────────────────────────────────────────

// HeatMPReduction is the walk MP lost at a given heat level.
func HeatMPReduction(heat int) int {
	switch {
	case heat >= 25:
		return 5
	case heat >= 20:
		return 4
	case heat >= 15:
		return 3
	case heat >= 10:
		return 2
	case heat >= 5:
		return 1
	default:
		return 0
	}
}

func HeatToHitMod(heat int) int {
	switch {
	case heat >= 24:
		return 4
	case heat >= 17:
		return 3
	case heat >= 13:
		return 2
	case heat >= 8:
		return 1
	default:
		return 0
	}
}

// HeatShutdownTarget returns the 2d6 avoid-shutdown target, 0 when no roll
// is needed and AutomaticFail at 30+.
func HeatShutdownTarget(heat int) int {
	switch {
	case heat >= 30:
		return AutomaticFail
	case heat >= 26:
		return 10
	case heat >= 22:
		return 8
	case heat >= 18:
		return 6
	case heat >= 14:
		return 4
	default:
		return 0
	}
}

func HeatAmmoExplosionTarget(heat int) int {
	switch {
	case heat >= 28:
		return 8
	case heat >= 23:
		return 6
	case heat >= 19:
		return 4
	default:
		return 0
	}
}

// AeroHeatThrustLoss is the safe thrust lost by fighters running hot.
func AeroHeatThrustLoss(heat int) int {
	switch {
	case heat >= 25:
		return 3
	case heat >= 20:
		return 2
	case heat >= 15:
		return 1
	default:
		return 0
	}
}
