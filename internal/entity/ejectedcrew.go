package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekcore/internal/rules"
)

// EjectedCrew is a MekWarrior on foot after leaving their Mek.
type EjectedCrew struct {
	Entity

	Origin uuid.UUID
}

// Eject pulls the crew out of m. The Mek is left without a pilot.
func Eject(m *Mek) (*EjectedCrew, error) {
	switch {
	case m.Crew.Dead():
		return nil, ErrCrewDead
	case m.Crew.Ejected:
		return nil, ErrAlreadyEjected
	case !m.Cockpit.CanEject():
		return nil, fmt.Errorf("%w: %s cockpit", ErrCannotEject, m.Cockpit)
	}
	crew := m.Crew
	m.Crew.Ejected = true

	e := &EjectedCrew{
		Entity: newEntity(crew.Name, "", 0, ModeFoot),
		Origin: m.ID,
	}
	e.Crew = crew
	e.Year = m.Year
	e.OrigWalkMP = 1
	e.Locations = []*Location{newLocation("Crew", "CRW", crew.Size, 0, false)}
	return e, nil
}

func (e *EjectedCrew) Type() UnitType { return TypeEjectedCrew }

func (e *EjectedCrew) WalkMP(c rules.Conditions, o MPOptions) int {
	if e.IsDestroyed() || e.Crew.Unconscious {
		return 0
	}
	mp := e.OrigWalkMP
	if !o.IgnoreWeather {
		mp += c.MovementModifier(rules.MoverInfantry)
	}
	mp = clampMP(mp)
	if !o.IgnoreGravity {
		mp = c.ApplyGravity(mp)
	}
	return clampMP(mp)
}

func (e *EjectedCrew) RunMP(c rules.Conditions, o MPOptions) int {
	return runFromWalk(e.WalkMP(c, o))
}

func (e *EjectedCrew) JumpMP(rules.Conditions, MPOptions) int { return 0 }

func (e *EjectedCrew) RollHitLocation(rules.Roller, Side) HitData {
	return HitData{Location: 0}
}

func (e *EjectedCrew) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

// ApplyDamage kills one crew member per point of damage.
func (e *EjectedCrew) ApplyDamage(_ rules.Roller, _ HitData, dmg int) DamageReport {
	var rep DamageReport
	if dmg <= 0 {
		return rep
	}
	l := e.Locations[0]
	killed := min(dmg, e.Crew.Size)
	e.Crew.Size -= killed
	l.Internal = e.Crew.Size
	rep.applied(l.Abbr, 0, killed, e.Crew.Size == 0)
	if e.IsDestroyed() {
		e.Destroyed = true
		l.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

func (e *EjectedCrew) IsDestroyed() bool { return e.Destroyed || e.Crew.Size <= 0 }

func (e *EjectedCrew) IsCrippled() bool { return e.IsDestroyed() }

func (e *EjectedCrew) PilotingRoll() *rules.TargetRoll {
	return rules.NewTargetRoll(e.Crew.Piloting, "piloting skill").MarkImpossible("crew on foot")
}

func (e *EjectedCrew) GenericBattleValue() int { return 0 }
