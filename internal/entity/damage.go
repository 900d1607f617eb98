package entity

import (
	"fmt"
	"strings"
)

// HitData is where an attack lands.
type HitData struct {
	Location int
	Rear     bool
	Critical bool // roll of 2 or 12: check for a critical hit regardless of damage
	Motive   bool // vehicle motive system hit
	Side     Side
	Effect   string
}

type LocationDamage struct {
	Location  string
	Armor     int
	Internal  int
	Destroyed bool
}

type CritEvent struct {
	Location string
	Effect   string
}

// DamageReport records what ApplyDamage did, in order.
type DamageReport struct {
	Applied       []LocationDamage
	Crits         []CritEvent
	Transferred   bool
	UnitDestroyed bool
}

func (r *DamageReport) applied(loc string, armor, internal int, destroyed bool) {
	if armor == 0 && internal == 0 && !destroyed {
		return
	}
	r.Applied = append(r.Applied, LocationDamage{Location: loc, Armor: armor, Internal: internal, Destroyed: destroyed})
}

func (r *DamageReport) crit(loc, effect string) {
	r.Crits = append(r.Crits, CritEvent{Location: loc, Effect: effect})
}

func (r DamageReport) String() string {
	var parts []string
	for _, a := range r.Applied {
		s := fmt.Sprintf("%s: %d armor, %d internal", a.Location, a.Armor, a.Internal)
		if a.Destroyed {
			s += " (destroyed)"
		}
		parts = append(parts, s)
	}
	for _, c := range r.Crits {
		parts = append(parts, fmt.Sprintf("critical %s: %s", c.Location, c.Effect))
	}
	if r.UnitDestroyed {
		parts = append(parts, "unit destroyed")
	}
	if len(parts) == 0 {
		return "no damage"
	}
	return strings.Join(parts, "; ")
}

// TotalInternal is the structure damage across all locations in the report.
func (r DamageReport) TotalInternal() int {
	n := 0
	for _, a := range r.Applied {
		n += a.Internal
	}
	return n
}
