package entity

import (
	"fmt"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/transport"
)

// Unit is anything that can be placed on the map and take damage.
type Unit interface {
	Base() *Entity
	Type() UnitType

	WalkMP(c rules.Conditions, o MPOptions) int
	RunMP(c rules.Conditions, o MPOptions) int
	JumpMP(c rules.Conditions, o MPOptions) int

	RollHitLocation(r rules.Roller, side Side) HitData
	TransferLocation(hit HitData) (HitData, bool)
	ApplyDamage(r rules.Roller, hit HitData, dmg int) DamageReport

	IsCrippled() bool
	IsDestroyed() bool
	PilotingRoll() *rules.TargetRoll
	GenericBattleValue() int
}

// MPOptions switch off individual movement adjustments. The zero value
// applies everything.
type MPOptions struct {
	IgnoreHeat        bool
	IgnoreGravity     bool
	IgnoreWeather     bool
	IgnoreMyomerBoost bool
	IgnoreMASC        bool
}

var (
	_ Unit = (*Mek)(nil)
	_ Unit = (*Tank)(nil)
	_ Unit = (*Aero)(nil)
	_ Unit = (*Warship)(nil)
	_ Unit = (*Building)(nil)
	_ Unit = (*EscapePod)(nil)
	_ Unit = (*EjectedCrew)(nil)
)

// AsLoadable describes u for a transport bay.
func AsLoadable(u Unit) (transport.Loadable, error) {
	e := u.Base()
	l := transport.Loadable{ID: e.ID, Weight: e.Weight}
	switch v := u.(type) {
	case *Mek:
		l.Kind = transport.KindMek
	case *Tank:
		l.Kind = transport.KindVehicle
	case *Aero:
		l.Kind = transport.KindFighter
	case *EscapePod:
		l.Kind = transport.KindPod
		l.Persons = v.Crew.Size
	case *EjectedCrew:
		l.Kind = transport.KindInfantry
		l.Persons = v.Crew.Size
	default:
		return transport.Loadable{}, fmt.Errorf("%w: %s cannot be carried", transport.ErrIncompatible, u.Type())
	}
	return l, nil
}

func clampMP(mp int) int {
	if mp < 0 {
		return 0
	}
	return mp
}

func ceilHalf(n int) int { return (n + 1) / 2 }

// runFromWalk is the usual flank or run speed of 1.5x walk, rounded up.
func runFromWalk(walk int) int { return (walk*3 + 1) / 2 }
