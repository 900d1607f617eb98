package entity

import (
	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

const (
	podArmor = 3
	podSI    = 2
)

// EscapePod is a pod or lifeboat launched from a larger ship. Pods drift;
// lifeboats have a little thrust.
type EscapePod struct {
	Entity

	Origin   uuid.UUID
	Lifeboat bool
	SI       int
	OrigSI   int
}

func NewEscapePod(origin uuid.UUID, crew Crew, lifeboat bool) *EscapePod {
	name := "Escape Pod"
	if lifeboat {
		name = "Lifeboat"
	}
	p := &EscapePod{
		Entity:   newEntity(name, "", 5, ModeSpheroid),
		Origin:   origin,
		Lifeboat: lifeboat,
		SI:       podSI,
		OrigSI:   podSI,
	}
	p.Crew = crew
	hull := newLocation("Hull", "HUL", podSI, 0, false)
	hull.Armor, hull.OrigArmor = podArmor, podArmor
	p.Locations = []*Location{hull}
	p.AddConstruction(tech.EscapePodChassis)
	if lifeboat {
		p.OrigWalkMP = 1
	}
	return p
}

func (p *EscapePod) Type() UnitType { return TypeEscapePod }

func (p *EscapePod) WalkMP(rules.Conditions, MPOptions) int {
	if p.IsDestroyed() {
		return 0
	}
	return p.OrigWalkMP
}

func (p *EscapePod) RunMP(c rules.Conditions, o MPOptions) int {
	return 2 * p.WalkMP(c, o)
}

func (p *EscapePod) JumpMP(rules.Conditions, MPOptions) int { return 0 }

func (p *EscapePod) RollHitLocation(rules.Roller, Side) HitData {
	return HitData{Location: 0}
}

func (p *EscapePod) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

// ApplyDamage takes armor, then SI. Every point of SI lost kills one
// occupant.
func (p *EscapePod) ApplyDamage(_ rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	hit.Location = 0
	before := p.SI
	craftDamage(&p.Entity, &p.SI, hit, dmg, &rep)
	p.Locations[0].Internal = p.SI
	if lost := before - p.SI; lost > 0 {
		p.Crew.Size = max(0, p.Crew.Size-lost)
	}
	if p.IsDestroyed() {
		p.Destroyed = true
		p.Locations[0].Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

func (p *EscapePod) IsDestroyed() bool { return p.Destroyed || p.SI <= 0 }

func (p *EscapePod) IsCrippled() bool { return p.IsDestroyed() }

func (p *EscapePod) PilotingRoll() *rules.TargetRoll {
	t := rules.NewTargetRoll(p.Crew.Piloting, "piloting skill")
	if !p.Lifeboat {
		return t.MarkAutomaticFail("escape pods have no controls")
	}
	return t.Add(2, "lifeboat")
}

func (p *EscapePod) GenericBattleValue() int { return 0 }
