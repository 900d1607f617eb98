package rules

// EraForYear names the BattleTech era a year falls in.
func EraForYear(year int) string {
	if year <= 0 {
		return ""
	}
	switch {
	case year <= 2570:
		return "Age of War"
	case year <= 2780:
		return "Star League"
	case year <= 2900:
		return "Early Succession Wars"
	case year <= 3049:
		return "Late Succession Wars"
	case year <= 3061:
		return "Clan Invasion"
	case year <= 3067:
		return "Civil War"
	case year <= 3081:
		return "Jihad"
	case year <= 3150:
		return "Dark Age"
	default:
		return "ilClan"
	}
}
