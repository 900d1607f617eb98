// Package tech tracks when equipment is introduced, becomes common, goes
// extinct and comes back, for Inner Sphere and Clan factions separately.
package tech

import (
	"fmt"
	"strings"
)

type Base int

const (
	BaseAll Base = iota
	BaseInnerSphere
	BaseClan
)

func (b Base) String() string {
	switch b {
	case BaseInnerSphere:
		return "Inner Sphere"
	case BaseClan:
		return "Clan"
	default:
		return "All"
	}
}

// Rating is the A-F technology rating.
type Rating int

const (
	RatingA Rating = iota
	RatingB
	RatingC
	RatingD
	RatingE
	RatingF
)

func (r Rating) String() string { return string(rune('A' + int(r))) }

// Availability is the A-F availability code; X means unavailable.
type Availability int

const (
	AvailA Availability = iota
	AvailB
	AvailC
	AvailD
	AvailE
	AvailF
	AvailX
)

func (a Availability) String() string {
	if a == AvailX {
		return "X"
	}
	return string(rune('A' + int(a)))
}

// Level is the rules level of a piece of technology in a given year.
type Level int

const (
	LevelIntroductory Level = iota
	LevelStandard
	LevelAdvanced
	LevelExperimental
	LevelUnofficial
)

var levelNames = []string{"Introductory", "Standard", "Advanced", "Experimental", "Unofficial"}

func (l Level) String() string {
	if int(l) < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts the names printed by Level.String, in any case.
func ParseLevel(s string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Level(i), nil
		}
	}
	return LevelIntroductory, fmt.Errorf("unknown rules level %q", s)
}

// Availability eras.
const (
	EraStarLeague = iota
	EraSuccessionWars
	EraClan
	EraDarkAge
	numEras
)

// AvailabilityEra maps a year to one of the four availability columns.
func AvailabilityEra(year int) int {
	switch {
	case year <= 2780:
		return EraStarLeague
	case year <= 3049:
		return EraSuccessionWars
	case year <= 3130:
		return EraClan
	default:
		return EraDarkAge
	}
}

// Dates are the milestones of one faction group. Zero means never.
type Dates struct {
	Prototype    int
	Production   int
	Common       int
	Extinct      int
	Reintroduced int
}

func (d Dates) intro() int {
	for _, y := range []int{d.Prototype, d.Production, d.Common} {
		if y > 0 {
			return y
		}
	}
	return 0
}

// Advancement is the tech progression of a single item.
type Advancement struct {
	Base         Base
	IS           Dates
	Clan         Dates
	Rating       Rating
	Availability [numEras]Availability
	StaticLevel  Level
	Unofficial   bool
}

func (a *Advancement) dates(clan bool) Dates {
	if clan {
		return a.Clan
	}
	return a.IS
}

// IntroDate is the first year the item exists for the faction group, 0 if never.
func (a *Advancement) IntroDate(clan bool) int {
	return a.dates(clan).intro()
}

func (a *Advancement) IsIntroducedBy(year int, clan bool) bool {
	intro := a.IntroDate(clan)
	return intro > 0 && intro <= year
}

// IsExtinct reports whether year falls in the extinction window.
func (a *Advancement) IsExtinct(year int, clan bool) bool {
	d := a.dates(clan)
	if d.Extinct == 0 || year < d.Extinct {
		return false
	}
	return d.Reintroduced == 0 || year < d.Reintroduced
}

func (a *Advancement) IsAvailableIn(year int, clan bool) bool {
	return a.IsIntroducedBy(year, clan) && !a.IsExtinct(year, clan)
}

// LevelIn returns the rules level for the year. ok is false when the item
// has not been introduced yet.
func (a *Advancement) LevelIn(year int, clan bool) (Level, bool) {
	if !a.IsIntroducedBy(year, clan) {
		return LevelExperimental, false
	}
	if a.Unofficial {
		return LevelUnofficial, true
	}
	d := a.dates(clan)
	var phase Level
	switch {
	case d.Production == 0 || year < d.Production:
		phase = LevelExperimental
	case d.Common == 0 || year < d.Common:
		phase = LevelAdvanced
	case a.StaticLevel == LevelIntroductory:
		phase = LevelIntroductory
	default:
		phase = LevelStandard
	}
	if a.StaticLevel > phase {
		return a.StaticLevel, true
	}
	return phase, true
}

// AvailabilityIn returns the availability code for the year's era; extinct
// or not-yet-introduced items are X.
func (a *Advancement) AvailabilityIn(year int, clan bool) Availability {
	if !a.IsAvailableIn(year, clan) {
		return AvailX
	}
	return a.Availability[AvailabilityEra(year)]
}

// Composite is the combined progression of everything mounted on a unit.
type Composite struct {
	members      []*Advancement
	Rating       Rating
	Availability [numEras]Availability
	StaticLevel  Level
}

// Combine merges advancements. The result does not depend on argument order.
func Combine(as ...*Advancement) Composite {
	var c Composite
	for _, a := range as {
		if a == nil {
			continue
		}
		c.members = append(c.members, a)
		if a.Rating > c.Rating {
			c.Rating = a.Rating
		}
		for i := range c.Availability {
			if a.Availability[i] > c.Availability[i] {
				c.Availability[i] = a.Availability[i]
			}
		}
		lvl := a.StaticLevel
		if a.Unofficial {
			lvl = LevelUnofficial
		}
		if lvl > c.StaticLevel {
			c.StaticLevel = lvl
		}
	}
	return c
}

// IntroDate is the latest introduction date among the members.
func (c Composite) IntroDate(clan bool) int {
	latest := 0
	for _, a := range c.members {
		if d := a.IntroDate(clan); d > latest {
			latest = d
		}
	}
	return latest
}

func (c Composite) IsAvailableIn(year int, clan bool) bool {
	for _, a := range c.members {
		if !a.IsAvailableIn(year, clan) {
			return false
		}
	}
	return true
}

// LevelIn returns the highest member level. ok is false when any member
// is not introduced by year.
func (c Composite) LevelIn(year int, clan bool) (Level, bool) {
	level := LevelIntroductory
	for _, a := range c.members {
		l, ok := a.LevelIn(year, clan)
		if !ok {
			return LevelExperimental, false
		}
		if l > level {
			level = l
		}
	}
	return level, true
}

func (c Composite) Len() int { return len(c.members) }
