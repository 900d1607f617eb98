package entity

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
	"github.com/JustinWhittecar/mekcore/internal/transport"
)

// Vehicle locations.
const (
	TankBody = iota
	TankFront
	TankRight
	TankLeft
	TankRear
	TankTurret
)

// Tank is a combat vehicle: tracked, wheeled, hover or VTOL.
type Tank struct {
	Entity

	HasTurret        bool
	MotiveDamage     int
	MotivePenaltyMod int
	EngineHit        bool
	TurretLocked     bool
	SensorHits       int
	StabilizerHits   []int
	CrewStunned      int
	CrewKilled       bool
	InfantryCapacity float64
}

// NewTank builds a vehicle with the standard structure of one point per
// ten tons (rounded up) in every location.
func NewTank(chassis, model string, tons float64, cruise int, mode MovementMode, turret bool) *Tank {
	t := &Tank{
		Entity:    newEntity(chassis, model, tons, mode),
		HasTurret: turret,
	}
	t.OrigWalkMP = cruise
	t.Crew = DefaultCrew(int(math.Ceil(tons / 15)))
	is := int(math.Ceil(tons / 10))
	names := [][2]string{{"Body", "BD"}, {"Front", "FR"}, {"Right", "RS"}, {"Left", "LS"}, {"Rear", "RR"}}
	if turret {
		names = append(names, [2]string{"Turret", "TU"})
	}
	for _, n := range names {
		t.Locations = append(t.Locations, newLocation(n[0], n[1], is, 0, false))
	}
	t.StabilizerHits = make([]int, len(t.Locations))
	t.AddConstruction(tech.VehicleChassis)
	return t
}

// SetTroopSpace gives the vehicle an infantry compartment of tons.
func (t *Tank) SetTroopSpace(tons float64) {
	t.InfantryCapacity = tons
	if t.Transports == nil {
		t.Transports = &transport.Manifest{}
	}
	t.Transports.Bays = append(t.Transports.Bays, transport.NewTroopBay(tons))
}

func (t *Tank) Type() UnitType { return TypeTank }

func (t *Tank) moverKind() rules.MoverKind {
	switch t.Mode {
	case ModeWheeled:
		return rules.MoverWheeled
	case ModeHover:
		return rules.MoverHover
	case ModeVTOL:
		return rules.MoverVTOL
	default:
		return rules.MoverTracked
	}
}

// WalkMP is cruise MP. Vehicles have no heat scale.
func (t *Tank) WalkMP(c rules.Conditions, o MPOptions) int {
	if t.Immobile || t.EngineHit || t.Shutdown || !t.Crew.Active() {
		return 0
	}
	mp := t.OrigWalkMP - t.MotiveDamage
	if !o.IgnoreWeather {
		mp += c.MovementModifier(t.moverKind())
	}
	mp = clampMP(mp)
	if !o.IgnoreGravity {
		mp = c.ApplyGravity(mp)
	}
	return clampMP(mp)
}

// RunMP is flank MP.
func (t *Tank) RunMP(c rules.Conditions, o MPOptions) int {
	return runFromWalk(t.WalkMP(c, o))
}

func (t *Tank) JumpMP(rules.Conditions, MPOptions) int { return 0 }

type tankHit struct {
	loc          int
	crit, motive bool
}

// sideLoc stands in for the attacked side in the tables below.
const sideLoc = -1

var (
	tankFrontHits = [11]tankHit{
		{TankFront, true, false}, {TankFront, false, true}, {TankFront, false, true}, {TankRight, false, true},
		{TankFront, false, false}, {TankFront, false, false}, {TankFront, false, false}, {TankLeft, false, true},
		{TankTurret, false, false}, {TankTurret, false, false}, {TankTurret, true, false},
	}
	tankSideHits = [11]tankHit{
		{sideLoc, true, false}, {sideLoc, false, true}, {sideLoc, false, true}, {TankFront, false, false},
		{sideLoc, false, false}, {sideLoc, false, false}, {sideLoc, false, false}, {TankRear, false, false},
		{TankTurret, false, false}, {TankTurret, false, false}, {TankTurret, true, false},
	}
	tankRearHits = [11]tankHit{
		{TankRear, true, false}, {TankRear, false, true}, {TankRear, false, true}, {TankLeft, false, true},
		{TankRear, false, false}, {TankRear, false, false}, {TankRear, false, false}, {TankRight, false, true},
		{TankTurret, false, false}, {TankTurret, false, false}, {TankTurret, true, false},
	}
)

func sideLocation(side Side) int {
	switch side {
	case SideLeft:
		return TankLeft
	case SideRight:
		return TankRight
	case SideRear:
		return TankRear
	default:
		return TankFront
	}
}

func (t *Tank) RollHitLocation(r rules.Roller, side Side) HitData {
	roll := rules.Roll2d6(r)
	var h tankHit
	switch side {
	case SideLeft, SideRight:
		h = tankSideHits[roll-2]
	case SideRear:
		h = tankRearHits[roll-2]
	default:
		h = tankFrontHits[roll-2]
	}
	loc := h.loc
	if loc == sideLoc || (loc == TankTurret && !t.HasTurret) {
		loc = sideLocation(side)
	}
	return HitData{Location: loc, Critical: h.crit, Motive: h.motive, Side: side}
}

// TransferLocation always fails: vehicle damage never moves on.
func (t *Tank) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

func (t *Tank) ApplyDamage(r rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	l, err := t.Location(hit.Location)
	if err != nil || dmg <= 0 {
		return rep
	}
	if l.Destroyed {
		// a blown-off turret passes hits to the body
		hit.Location = TankBody
		l = t.Locations[TankBody]
	}

	absorbed := min(l.Armor, dmg)
	l.Armor -= absorbed
	remaining := dmg - absorbed
	internal := min(l.Internal, remaining)
	l.Internal -= internal
	rep.applied(l.Abbr, absorbed, internal, l.Internal == 0)

	switch {
	case l.Internal == 0 && hit.Location == TankTurret:
		rep.crit(l.Abbr, "turret destroyed")
		t.destroyLocation(TankTurret, false)
	case l.Internal == 0:
		t.Destroyed = true
	case internal > 0 || hit.Critical:
		t.rollCrit(r, hit.Location, &rep)
	}
	if hit.Motive && !t.Destroyed {
		t.rollMotive(r, hit.Side, &rep)
	}
	if t.IsDestroyed() {
		t.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

// rollMotive applies the motive system damage table.
func (t *Tank) rollMotive(r rules.Roller, side Side, rep *DamageReport) {
	roll := rules.Roll2d6(r)
	switch side {
	case SideLeft, SideRight:
		roll += 2
	case SideRear:
		roll++
	}
	switch t.Mode {
	case ModeWheeled:
		roll += 2
	case ModeHover:
		roll += 3
	case ModeVTOL:
		roll += 4
	}
	loc := t.locName(TankBody)
	cruise := t.OrigWalkMP - t.MotiveDamage
	switch {
	case roll >= 12:
		t.Immobile = true
		rep.crit(loc, "motive system immobilized")
	case roll >= 10:
		t.MotiveDamage += cruise - ceilHalf(cruise)
		t.motivePenalty(3)
		rep.crit(loc, "heavy motive damage")
	case roll >= 8:
		if cruise > 0 {
			t.MotiveDamage++
		}
		t.motivePenalty(2)
		rep.crit(loc, "moderate motive damage")
	case roll >= 6:
		t.motivePenalty(1)
		rep.crit(loc, "minor motive damage")
	}
	if t.OrigWalkMP-t.MotiveDamage <= 0 {
		t.Immobile = true
	}
}

func (t *Tank) motivePenalty(mod int) {
	if mod > t.MotivePenaltyMod {
		t.MotivePenaltyMod = mod
	}
}

func (t *Tank) rollCrit(r rules.Roller, loc int, rep *DamageReport) {
	roll := rules.Roll2d6(r)
	name := t.locName(loc)
	if loc == TankTurret {
		switch {
		case roll >= 9:
			rep.crit(name, "turret blown off")
			t.destroyLocation(TankTurret, true)
		case roll >= 6:
			t.TurretLocked = true
			rep.crit(name, "turret locked")
		}
		return
	}
	switch {
	case roll >= 12:
		t.CrewKilled = true
		rep.crit(name, "crew killed")
	case roll == 11:
		if ammo := t.firstExplosive(); ammo != nil {
			ammo.Destroyed = true
			t.Destroyed = true
			rep.crit(name, ammo.Name+" explodes")
			return
		}
		if w := t.firstWeapon(loc); w != nil {
			w.Destroyed = true
			rep.crit(name, w.Name+" destroyed")
		}
	case roll == 10:
		t.EngineHit = true
		rep.crit(name, "engine hit")
	case roll == 9:
		t.SensorHits++
		rep.crit(name, "sensors")
	case roll == 8:
		t.StabilizerHits[loc]++
		rep.crit(name, "stabilizer")
	case roll == 7:
		if w := t.firstWeapon(loc); w != nil {
			w.Hit = true
			rep.crit(name, w.Name+" jammed")
		}
	case roll == 6:
		t.CrewStunned++
		rep.crit(name, "crew stunned")
	}
}

func (t *Tank) firstWeapon(loc int) *Mounted {
	for _, m := range t.equipmentIn(loc) {
		if m.Kind == MountWeapon && m.Usable() {
			return m
		}
	}
	return nil
}

func (t *Tank) firstExplosive() *Mounted {
	for _, m := range t.Equipment {
		if m.explosionDamage() > 0 {
			return m
		}
	}
	return nil
}

func (t *Tank) IsDestroyed() bool {
	if t.Destroyed || t.CrewKilled || t.Crew.Dead() {
		return true
	}
	for i, l := range t.Locations {
		if i != TankTurret && l.Internal <= 0 {
			return true
		}
	}
	return false
}

func (t *Tank) IsCrippled() bool {
	if t.IsDestroyed() || t.Immobile || t.lostAllWeapons() {
		return true
	}
	for i, l := range t.Locations {
		if i != TankBody && l.OrigArmor > 0 && l.Armor == 0 {
			return true
		}
	}
	return false
}

// PilotingRoll is the driving skill roll.
func (t *Tank) PilotingRoll() *rules.TargetRoll {
	roll := rules.NewTargetRoll(t.Crew.Piloting, "driving skill")
	if t.Immobile {
		return roll.MarkImpossible("vehicle immobile")
	}
	return roll.Add(t.MotivePenaltyMod, "motive damage")
}

func (t *Tank) GenericBattleValue() int {
	return genericBV(t.Weight, 3.357, 0.875)
}
