package ingestion

import (
	"strconv"
	"strings"
)

// ammoStats returns shots per ton, damage per shot for explosion purposes,
// and whether the bin explodes when hit. Unknown bins get a conservative
// default of 10 shots at 5 damage.
func ammoStats(name string) (shots, damage int, explosive bool) {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "gauss"):
		return 8, 0, false
	case strings.Contains(n, "ams") || strings.Contains(n, "anti-missile"):
		return 12, 2, true
	case strings.Contains(n, "lrm"):
		if size := launcherSize(n, "lrm"); size > 0 {
			return 120 / size, size, true
		}
	case strings.Contains(n, "srm"):
		switch launcherSize(n, "srm") {
		case 2:
			return 50, 4, true
		case 4:
			return 25, 8, true
		case 6:
			return 15, 12, true
		}
	case strings.Contains(n, "machine gun") || strings.Contains(n, "mg"):
		return 200, 2, true
	case strings.Contains(n, "ac/") || strings.Contains(n, "autocannon"):
		switch launcherSize(n, "/") {
		case 2:
			return 45, 2, true
		case 5:
			return 20, 5, true
		case 10:
			return 10, 10, true
		case 20:
			return 5, 20, true
		}
	}
	return 10, 5, true
}

// launcherSize reads the number that follows marker, as in "lrm-15" or "ac/10".
func launcherSize(lower, marker string) int {
	_, rest, ok := strings.Cut(lower, marker)
	if !ok {
		return 0
	}
	rest = strings.TrimLeft(rest, "- ")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(rest[:end])
	return n
}
