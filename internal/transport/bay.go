// Package transport models the bays, docking collars and troop space that
// let one unit carry others.
package transport

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrIncompatible  = errors.New("unit cannot use this bay")
	ErrNoSpace       = errors.New("no space left")
	ErrNoDoors       = errors.New("no working bay doors")
	ErrAlreadyLoaded = errors.New("unit already loaded")
	ErrNotLoaded     = errors.New("unit not loaded")
)

type LoadKind int

const (
	KindMek LoadKind = iota
	KindVehicle
	KindFighter
	KindSmallCraft
	KindInfantry
	KindPod
	KindCargo
)

var kindNames = []string{"mek", "vehicle", "fighter", "small craft", "infantry", "pod", "cargo"}

func (k LoadKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Loadable is what a bay needs to know about its cargo.
type Loadable struct {
	ID      uuid.UUID
	Kind    LoadKind
	Weight  float64
	Persons int
}

type BayType int

const (
	BayMek BayType = iota
	BayLightVehicle
	BayHeavyVehicle
	BaySuperHeavyVehicle
	BayFighter
	BaySmallCraft
	BayInfantry
	BayCargo
	BayPod
)

var bayNames = []string{
	"Mek", "Light Vehicle", "Heavy Vehicle", "Super Heavy Vehicle",
	"Fighter", "Small Craft", "Infantry", "Cargo", "Escape Pod",
}

func (t BayType) String() string {
	if int(t) < 0 || int(t) >= len(bayNames) {
		return fmt.Sprintf("bay(%d)", int(t))
	}
	return bayNames[t]
}

// vehicle weight limits per bay class
const (
	lightVehicleMax      = 50
	heavyVehicleMax      = 100
	superHeavyVehicleMax = 200
)

// Bay is one transport bay. Capacity counts units, except cargo bays
// (tons) and infantry bays (persons).
type Bay struct {
	Number       int
	Type         BayType
	Capacity     float64
	Doors        int
	DamagedDoors int
	Damaged      float64

	loaded   map[uuid.UUID]Loadable
	order    []uuid.UUID
	launched int
	used     float64
}

func NewBay(number int, t BayType, capacity float64, doors int) *Bay {
	return &Bay{
		Number:   number,
		Type:     t,
		Capacity: capacity,
		Doors:    doors,
		loaded:   make(map[uuid.UUID]Loadable),
	}
}

func (b *Bay) spaceFor(l Loadable) float64 {
	switch b.Type {
	case BayCargo:
		return l.Weight
	case BayInfantry:
		return float64(l.Persons)
	default:
		return 1
	}
}

func (b *Bay) accepts(l Loadable) bool {
	switch b.Type {
	case BayMek:
		return l.Kind == KindMek
	case BayLightVehicle:
		return l.Kind == KindVehicle && l.Weight <= lightVehicleMax
	case BayHeavyVehicle:
		return l.Kind == KindVehicle && l.Weight <= heavyVehicleMax
	case BaySuperHeavyVehicle:
		return l.Kind == KindVehicle && l.Weight <= superHeavyVehicleMax
	case BayFighter:
		return l.Kind == KindFighter
	case BaySmallCraft:
		return l.Kind == KindSmallCraft || l.Kind == KindFighter
	case BayInfantry:
		return l.Kind == KindInfantry && l.Persons > 0
	case BayCargo:
		return l.Kind == KindCargo
	case BayPod:
		return l.Kind == KindPod
	}
	return false
}

// Unused is the remaining capacity after damage and current load.
func (b *Bay) Unused() float64 {
	u := b.Capacity - b.Damaged - b.used
	if u < 0 {
		return 0
	}
	return u
}

func (b *Bay) UsableDoors() int {
	d := b.Doors - b.DamagedDoors
	if d < 0 {
		return 0
	}
	return d
}

// check returns the reason l cannot go into the bay, or nil.
func (b *Bay) check(l Loadable) error {
	if _, ok := b.loaded[l.ID]; ok {
		return ErrAlreadyLoaded
	}
	if !b.accepts(l) {
		return fmt.Errorf("%w: %s in %s bay", ErrIncompatible, l.Kind, b.Type)
	}
	if b.UsableDoors() == 0 {
		return ErrNoDoors
	}
	if b.spaceFor(l) > b.Unused() {
		return fmt.Errorf("%w: bay %d needs %.1f, has %.1f", ErrNoSpace, b.Number, b.spaceFor(l), b.Unused())
	}
	return nil
}

func (b *Bay) CanLoad(l Loadable) bool { return b.check(l) == nil }

func (b *Bay) Load(l Loadable) error {
	if err := b.check(l); err != nil {
		return err
	}
	b.loaded[l.ID] = l
	b.order = append(b.order, l.ID)
	b.used += b.spaceFor(l)
	return nil
}

// Unload removes a unit. Launching counts against the door launch rate.
func (b *Bay) Unload(id uuid.UUID) (Loadable, error) {
	l, ok := b.loaded[id]
	if !ok {
		return Loadable{}, ErrNotLoaded
	}
	delete(b.loaded, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.used -= b.spaceFor(l)
	if b.used < 0 {
		b.used = 0
	}
	return l, nil
}

// Launch unloads a unit during combat, limited to LaunchRate per turn.
func (b *Bay) Launch(id uuid.UUID) (Loadable, error) {
	if b.launched >= b.LaunchRate() {
		return Loadable{}, fmt.Errorf("bay %d: %w this turn", b.Number, ErrNoDoors)
	}
	l, err := b.Unload(id)
	if err != nil {
		return Loadable{}, err
	}
	b.launched++
	return l, nil
}

// LaunchRate is two units per working door per turn.
func (b *Bay) LaunchRate() int { return 2 * b.UsableDoors() }

func (b *Bay) ResetTurn() { b.launched = 0 }

func (b *Bay) DamageDoor() {
	if b.DamagedDoors < b.Doors {
		b.DamagedDoors++
	}
}

// DamageCapacity destroys bay space; it never goes past the full capacity.
func (b *Bay) DamageCapacity(x float64) {
	b.Damaged += x
	if b.Damaged > b.Capacity {
		b.Damaged = b.Capacity
	}
}

// Loaded lists the units in load order.
func (b *Bay) Loaded() []Loadable {
	out := make([]Loadable, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.loaded[id])
	}
	return out
}

func (b *Bay) Contains(id uuid.UUID) bool {
	_, ok := b.loaded[id]
	return ok
}
