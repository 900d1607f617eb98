package entity

import "github.com/JustinWhittecar/mekcore/internal/rules"

// Crew is the pilot or crew of a unit. Hits are pilot damage; six kills.
type Crew struct {
	Name        string
	Size        int
	Gunnery     int
	Piloting    int
	Hits        int
	Unconscious bool
	Ejected     bool
}

const crewDeathHits = 6

var consciousnessTargets = [5]int{3, 5, 7, 10, 11}

func DefaultCrew(size int) Crew {
	return Crew{Name: "Unnamed", Size: size, Gunnery: 4, Piloting: 5}
}

func (c *Crew) Dead() bool { return c.Hits >= crewDeathHits || c.Size <= 0 }

// Active reports whether the crew can operate the unit.
func (c *Crew) Active() bool { return !c.Dead() && !c.Unconscious && !c.Ejected }

func (c *Crew) Damage(n int) {
	c.Hits += n
	if c.Hits > crewDeathHits {
		c.Hits = crewDeathHits
	}
}

// ConsciousnessTarget is the 2d6 target to stay awake at the current hits.
func (c *Crew) ConsciousnessTarget() int {
	switch {
	case c.Hits <= 0:
		return rules.AutomaticSuccess
	case c.Hits >= crewDeathHits:
		return rules.Impossible
	}
	return consciousnessTargets[c.Hits-1]
}

// CheckConsciousness rolls against ConsciousnessTarget and knocks the crew
// out on a failure.
func (c *Crew) CheckConsciousness(r rules.Roller) bool {
	if c.Hits <= 0 {
		return true
	}
	if c.Dead() || rules.Roll2d6(r) < c.ConsciousnessTarget() {
		c.Unconscious = true
		return false
	}
	return true
}
