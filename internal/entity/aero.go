package entity

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

// Aerospace fighter locations.
const (
	AeroNose = iota
	AeroLeftWing
	AeroRightWing
	AeroAft
	AeroFuselage
)

// Aero is an aerospace fighter. Safe thrust is its walk MP.
type Aero struct {
	Entity

	SI               int
	OrigSI           int
	Fuel             int
	OrigFuel         int
	AvionicsHits     int
	FCSHits          int
	SensorHits       int
	EngineHits       int
	LandingGearHit   bool
	CargoMPReduction int
}

func NewAero(chassis, model string, tons float64, safeThrust, si, fuel int) *Aero {
	a := &Aero{
		Entity:   newEntity(chassis, model, tons, ModeAerodyne),
		SI:       si,
		OrigSI:   si,
		Fuel:     fuel,
		OrigFuel: fuel,
	}
	a.OrigWalkMP = safeThrust
	a.HeatSinks = 10
	for _, n := range [][2]string{{"Nose", "NOS"}, {"Left Wing", "LWG"}, {"Right Wing", "RWG"}, {"Aft", "AFT"}} {
		a.Locations = append(a.Locations, newLocation(n[0], n[1], 0, 0, false))
	}
	a.Locations = append(a.Locations, newLocation("Fuselage", "FSL", si, 0, false))
	a.AddConstruction(tech.FighterChassis)
	return a
}

func (a *Aero) Type() UnitType { return TypeAero }

func (a *Aero) WalkMP(c rules.Conditions, o MPOptions) int {
	if a.Fuel <= 0 || a.Shutdown || !a.Crew.Active() {
		return 0
	}
	mp := a.OrigWalkMP - a.CargoMPReduction - 2*a.EngineHits
	if !o.IgnoreHeat {
		mp -= rules.AeroHeatThrustLoss(a.Heat)
	}
	if !c.Space && !o.IgnoreWeather {
		mp += c.MovementModifier(rules.MoverAero)
	}
	return clampMP(mp)
}

// RunMP is max thrust.
func (a *Aero) RunMP(c rules.Conditions, o MPOptions) int {
	return runFromWalk(a.WalkMP(c, o))
}

func (a *Aero) JumpMP(rules.Conditions, MPOptions) int { return 0 }

// DamageThreshold is a tenth of the location's remaining armor, rounded up.
func (a *Aero) DamageThreshold(loc int) int {
	return craftThreshold(&a.Entity, loc)
}

func craftThreshold(e *Entity, loc int) int {
	l, err := e.Location(loc)
	if err != nil {
		return 1
	}
	return max(1, int(math.Ceil(float64(l.Armor)/10)))
}

type craftHit struct {
	loc  int
	crit bool
}

const wingSide = -1

var (
	aeroNoseHits = [11]craftHit{
		{AeroNose, true}, {AeroRightWing, false}, {AeroNose, false}, {AeroRightWing, false}, {AeroNose, false},
		{AeroNose, false}, {AeroNose, false}, {AeroLeftWing, false}, {AeroAft, false}, {AeroLeftWing, false},
		{AeroNose, true},
	}
	aeroSideHits = [11]craftHit{
		{wingSide, true}, {AeroNose, false}, {wingSide, false}, {wingSide, false}, {AeroAft, false},
		{wingSide, false}, {AeroNose, false}, {AeroAft, false}, {wingSide, false}, {AeroAft, false},
		{wingSide, true},
	}
	aeroAftHits = [11]craftHit{
		{AeroAft, true}, {AeroRightWing, false}, {AeroAft, false}, {AeroRightWing, false}, {AeroAft, false},
		{AeroAft, false}, {AeroAft, false}, {AeroLeftWing, false}, {AeroNose, false}, {AeroLeftWing, false},
		{AeroAft, true},
	}
)

func (a *Aero) RollHitLocation(r rules.Roller, side Side) HitData {
	roll := rules.Roll2d6(r)
	var h craftHit
	switch side {
	case SideLeft, SideRight:
		h = aeroSideHits[roll-2]
	case SideRear:
		h = aeroAftHits[roll-2]
	default:
		h = aeroNoseHits[roll-2]
	}
	loc := h.loc
	if loc == wingSide {
		loc = AeroLeftWing
		if side == SideRight {
			loc = AeroRightWing
		}
	}
	return HitData{Location: loc, Critical: h.crit, Side: side}
}

// TransferLocation fails: fighter damage past the armor goes to SI.
func (a *Aero) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

// craftDamage runs armor, then structural integrity. It reports the SI lost
// and whether the hit beat the damage threshold.
func craftDamage(e *Entity, si *int, hit HitData, dmg int, rep *DamageReport) (overThreshold bool) {
	l, err := e.Location(hit.Location)
	if err != nil || dmg <= 0 {
		return false
	}
	threshold := craftThreshold(e, hit.Location)
	absorbed := min(l.Armor, dmg)
	l.Armor -= absorbed
	if l.Armor == 0 {
		l.Breached = true
	}
	lost := min(*si, dmg-absorbed)
	*si -= lost
	rep.applied(l.Abbr, absorbed, lost, false)
	return dmg > threshold
}

func (a *Aero) ApplyDamage(r rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	over := craftDamage(&a.Entity, &a.SI, hit, dmg, &rep)
	a.Locations[AeroFuselage].Internal = a.SI
	if over || hit.Critical {
		a.rollCrit(r, hit.Location, &rep)
	}
	if a.IsDestroyed() {
		a.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

func (a *Aero) rollCrit(r rules.Roller, loc int, rep *DamageReport) {
	roll := rules.Roll2d6(r)
	name := a.locName(loc)
	switch roll {
	case 8:
		a.AvionicsHits++
		rep.crit(name, "avionics")
	case 9:
		a.FCSHits++
		rep.crit(name, "fire control")
	case 10:
		a.EngineHits++
		rep.crit(name, "engine")
	case 11:
		a.SensorHits++
		rep.crit(name, "sensors")
	case 12:
		a.Fuel -= int(math.Ceil(float64(a.Fuel) / 10))
		rep.crit(name, "fuel tank")
	}
}

func (a *Aero) IsDestroyed() bool {
	return a.Destroyed || a.SI <= 0 || a.EngineHits >= 3 || a.Crew.Dead()
}

func (a *Aero) IsCrippled() bool {
	return a.IsDestroyed() ||
		a.SI <= a.OrigSI/2 ||
		a.EngineHits >= 2 ||
		a.FCSHits >= 3 ||
		a.SensorHits >= 3 ||
		a.lostAllWeapons() ||
		a.Fuel <= 0
}

// PilotingRoll is the control roll.
func (a *Aero) PilotingRoll() *rules.TargetRoll {
	t := rules.NewTargetRoll(a.Crew.Piloting, "piloting skill")
	if !a.Crew.Active() {
		return t.MarkAutomaticFail("pilot incapacitated")
	}
	t.Add(avionicsMod(a.AvionicsHits), "avionics damage")
	if a.LandingGearHit {
		t.Add(1, "landing gear")
	}
	return t
}

func avionicsMod(hits int) int {
	switch {
	case hits >= 3:
		return 5
	default:
		return hits
	}
}

func (a *Aero) GenericBattleValue() int {
	return genericBV(a.Weight, 3.208, 0.935)
}
