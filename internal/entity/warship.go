package entity

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
	"github.com/JustinWhittecar/mekcore/internal/transport"
)

// WarShip locations. Broadsides carry weapons only and are never hit.
const (
	ShipNose = iota
	ShipFrontLeft
	ShipFrontRight
	ShipAftLeft
	ShipAftRight
	ShipAft
	ShipLeftBroadside
	ShipRightBroadside
)

const (
	escapePodCapacity = 7
	lifeboatCapacity  = 6
)

// Warship is a jump-capable capital ship.
type Warship struct {
	Entity

	SI              int
	OrigSI          int
	KFIntegrity     int
	OrigKFIntegrity int
	KFDriveDamaged  bool
	Gravdecks       int
	Lifeboats       int
	EscapePods      int
	CrewSize        int
	Passengers      int
	Marines         int
	AvionicsHits    int
	FCSHits         int
	SensorHits      int
	EngineHits      int
}

func NewWarship(chassis, model string, tons float64, safeThrust, si, kf, collars int) *Warship {
	w := &Warship{
		Entity:          newEntity(chassis, model, tons, ModeSpheroid),
		SI:              si,
		OrigSI:          si,
		KFIntegrity:     kf,
		OrigKFIntegrity: kf,
	}
	w.OrigWalkMP = safeThrust
	w.Transports = &transport.Manifest{DockingCollars: collars}
	for _, n := range [][2]string{
		{"Nose", "NOS"}, {"Front Left", "FLS"}, {"Front Right", "FRS"}, {"Aft Left", "ALS"},
		{"Aft Right", "ARS"}, {"Aft", "AFT"}, {"Left Broadside", "LBS"}, {"Right Broadside", "RBS"},
	} {
		w.Locations = append(w.Locations, newLocation(n[0], n[1], 0, 0, false))
	}
	w.AddConstruction(tech.WarshipChassis)
	return w
}

func (w *Warship) Type() UnitType { return TypeWarship }

// WalkMP is safe thrust. Capital heat and weather do not apply.
func (w *Warship) WalkMP(rules.Conditions, MPOptions) int {
	if w.Shutdown || !w.Crew.Active() {
		return 0
	}
	return clampMP(w.OrigWalkMP - w.EngineHits)
}

func (w *Warship) RunMP(c rules.Conditions, o MPOptions) int {
	return runFromWalk(w.WalkMP(c, o))
}

func (w *Warship) JumpMP(rules.Conditions, MPOptions) int { return 0 }

func (w *Warship) DamageThreshold(loc int) int { return craftThreshold(&w.Entity, loc) }

var (
	shipNoseHits = [11]craftHit{
		{ShipNose, true}, {ShipFrontRight, false}, {ShipFrontRight, false}, {ShipFrontRight, false},
		{ShipNose, false}, {ShipNose, false}, {ShipNose, false},
		{ShipFrontLeft, false}, {ShipFrontLeft, false}, {ShipFrontLeft, false}, {ShipNose, true},
	}
	shipLeftHits = [11]craftHit{
		{ShipFrontLeft, true}, {ShipNose, false}, {ShipFrontLeft, false}, {ShipFrontLeft, false},
		{ShipAftLeft, false}, {ShipAftLeft, false}, {ShipAftLeft, false},
		{ShipFrontLeft, false}, {ShipFrontLeft, false}, {ShipAft, false}, {ShipAftLeft, true},
	}
	shipRightHits = [11]craftHit{
		{ShipFrontRight, true}, {ShipNose, false}, {ShipFrontRight, false}, {ShipFrontRight, false},
		{ShipAftRight, false}, {ShipAftRight, false}, {ShipAftRight, false},
		{ShipFrontRight, false}, {ShipFrontRight, false}, {ShipAft, false}, {ShipAftRight, true},
	}
	shipAftHits = [11]craftHit{
		{ShipAft, true}, {ShipAftRight, false}, {ShipAftRight, false}, {ShipAftRight, false},
		{ShipAft, false}, {ShipAft, false}, {ShipAft, false},
		{ShipAftLeft, false}, {ShipAftLeft, false}, {ShipAftLeft, false}, {ShipAft, true},
	}
)

func (w *Warship) RollHitLocation(r rules.Roller, side Side) HitData {
	roll := rules.Roll2d6(r)
	var h craftHit
	switch side {
	case SideLeft:
		h = shipLeftHits[roll-2]
	case SideRight:
		h = shipRightHits[roll-2]
	case SideRear:
		h = shipAftHits[roll-2]
	default:
		h = shipNoseHits[roll-2]
	}
	return HitData{Location: h.loc, Critical: h.crit, Side: side}
}

func (w *Warship) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

func (w *Warship) ApplyDamage(r rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	if craftDamage(&w.Entity, &w.SI, hit, dmg, &rep) || hit.Critical {
		w.rollCrit(r, hit.Location, &rep)
	}
	if w.IsDestroyed() {
		w.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

func (w *Warship) rollCrit(r rules.Roller, loc int, rep *DamageReport) {
	roll := rules.Roll2d6(r)
	name := w.locName(loc)
	switch roll {
	case 8:
		w.AvionicsHits++
		rep.crit(name, "avionics")
	case 9:
		w.FCSHits++
		rep.crit(name, "fire control")
	case 10:
		w.EngineHits++
		rep.crit(name, "engine")
	case 11:
		if w.KFIntegrity > 0 {
			w.KFIntegrity--
		}
		if w.KFIntegrity == 0 {
			w.KFDriveDamaged = true
		}
		rep.crit(name, "K-F drive")
	case 12:
		if w.Transports != nil && w.Transports.DockingCollars > 0 {
			w.Transports.DamageCollar()
			rep.crit(name, "docking collar")
			return
		}
		lost := int(math.Ceil(float64(w.CrewSize) / 10))
		w.CrewSize -= lost
		rep.crit(name, "crew casualties")
	}
}

func (w *Warship) IsDestroyed() bool {
	return w.Destroyed || w.SI <= 0 || w.EngineHits >= 4
}

func (w *Warship) IsCrippled() bool {
	if w.IsDestroyed() || w.SI <= w.OrigSI/2 || w.KFDriveDamaged || w.lostAllWeapons() {
		return true
	}
	return w.EngineHits >= 2 && w.WalkMP(rules.Conditions{Space: true, Gravity: 1}, MPOptions{}) == 0
}

// PilotingRoll is the control roll for the ship's helm.
func (w *Warship) PilotingRoll() *rules.TargetRoll {
	t := rules.NewTargetRoll(w.Crew.Piloting, "piloting skill")
	if !w.Crew.Active() || w.CrewSize <= 0 {
		return t.MarkAutomaticFail("no bridge crew")
	}
	return t.Add(avionicsMod(w.AvionicsHits), "avionics damage")
}

func (w *Warship) GenericBattleValue() int {
	return genericBV(w.Weight, 3.6, 0.78)
}

// LaunchEscapePods puts up to n pods into space, each with up to seven
// crew. It stops early when pods or crew run out.
func (w *Warship) LaunchEscapePods(n int) []*EscapePod {
	return w.launch(n, &w.EscapePods, escapePodCapacity, false)
}

// LaunchLifeboats launches up to n lifeboats of six crew each.
func (w *Warship) LaunchLifeboats(n int) []*EscapePod {
	return w.launch(n, &w.Lifeboats, lifeboatCapacity, true)
}

func (w *Warship) launch(n int, stock *int, capacity int, lifeboat bool) []*EscapePod {
	var pods []*EscapePod
	for i := 0; i < n && *stock > 0 && w.CrewSize > 0; i++ {
		aboard := min(capacity, w.CrewSize)
		crew := w.Crew
		crew.Size = aboard
		crew.Hits, crew.Unconscious = 0, false
		pods = append(pods, NewEscapePod(w.ID, crew, lifeboat))
		*stock--
		w.CrewSize -= aboard
	}
	return pods
}
