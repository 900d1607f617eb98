package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekcore/internal/tech"
	"github.com/JustinWhittecar/mekcore/internal/transport"
)

// Entity holds the state every unit kind shares. Concrete units embed it.
type Entity struct {
	ID         uuid.UUID
	Chassis    string
	Model      string
	Weight     float64
	TechBase   TechBase
	Year       int
	RulesLevel tech.Level
	Mode       MovementMode
	Crew       Crew

	Locations []*Location
	Equipment []*Mounted

	OrigWalkMP      int
	OrigJumpMP      int
	Heat            int
	HeatSinks       int
	DoubleHeatSinks bool

	Shutdown  bool
	Prone     bool
	Immobile  bool
	Destroyed bool

	Transports *transport.Manifest

	// construction lists the engine, structure and similar choices that
	// feed the tech level alongside mounted equipment.
	construction []*tech.Advancement
}

func newEntity(chassis, model string, weight float64, mode MovementMode) Entity {
	return Entity{
		ID:      uuid.New(),
		Chassis: chassis,
		Model:   model,
		Weight:  weight,
		Mode:    mode,
		Year:    3025,
		Crew:    DefaultCrew(1),
	}
}

func (e *Entity) Base() *Entity { return e }

func (e *Entity) DisplayName() string {
	if e.Model == "" {
		return e.Chassis
	}
	return e.Chassis + " " + e.Model
}

func (e *Entity) Location(loc int) (*Location, error) {
	if loc < 0 || loc >= len(e.Locations) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLocation, loc)
	}
	return e.Locations[loc], nil
}

func (e *Entity) LocationCount() int { return len(e.Locations) }

func (e *Entity) locName(loc int) string {
	if l, err := e.Location(loc); err == nil {
		return l.Abbr
	}
	return fmt.Sprintf("loc%d", loc)
}

// IsLocationBad reports a destroyed location or one with no structure left.
func (e *Entity) IsLocationBad(loc int) bool {
	l, err := e.Location(loc)
	if err != nil {
		return true
	}
	return l.Destroyed || l.Internal <= 0
}

// SetArmor sets the current and original armor of a location.
func (e *Entity) SetArmor(loc, front, rear int) error {
	l, err := e.Location(loc)
	if err != nil {
		return err
	}
	l.Armor, l.OrigArmor = front, front
	if l.HasRear {
		l.RearArmor, l.OrigRearArmor = rear, rear
	} else if rear != 0 {
		return fmt.Errorf("%w: %s has no rear armor", ErrInvalidLocation, l.Abbr)
	}
	return nil
}

func (e *Entity) ArmorRemaining(loc int, rear bool) int {
	l, err := e.Location(loc)
	if err != nil || l.Destroyed {
		return 0
	}
	if rear {
		return l.RearArmor
	}
	return l.Armor
}

func (e *Entity) InternalRemaining(loc int) int {
	l, err := e.Location(loc)
	if err != nil || l.Destroyed {
		return 0
	}
	return l.Internal
}

func (e *Entity) TotalArmor() int {
	n := 0
	for _, l := range e.Locations {
		if !l.Destroyed {
			n += l.Armor + l.RearArmor
		}
	}
	return n
}

func (e *Entity) TotalOrigArmor() int {
	n := 0
	for _, l := range e.Locations {
		n += l.OrigArmor + l.OrigRearArmor
	}
	return n
}

func (e *Entity) TotalInternal() int {
	n := 0
	for _, l := range e.Locations {
		if !l.Destroyed {
			n += l.Internal
		}
	}
	return n
}

func (e *Entity) TotalOrigInternal() int {
	n := 0
	for _, l := range e.Locations {
		n += l.OrigInternal
	}
	return n
}

func (e *Entity) ArmorRemainingPercent() float64 {
	orig := e.TotalOrigArmor()
	if orig == 0 {
		return 0
	}
	return float64(e.TotalArmor()) / float64(orig)
}

func (e *Entity) InternalRemainingPercent() float64 {
	orig := e.TotalOrigInternal()
	if orig == 0 {
		return 0
	}
	return float64(e.TotalInternal()) / float64(orig)
}

// HitCriticals counts damaged slots of sys in loc. Slots in a destroyed
// location count as hit.
func (e *Entity) HitCriticals(sys System, loc int) int {
	l, err := e.Location(loc)
	if err != nil {
		return 0
	}
	n := 0
	for _, s := range l.Slots {
		if s.Kind == SlotSystem && s.System == sys && (s.Hit || s.Destroyed || s.Missing) {
			n++
		}
	}
	return n
}

func (e *Entity) GoodCriticals(sys System, loc int) int {
	l, err := e.Location(loc)
	if err != nil {
		return 0
	}
	n := 0
	for _, s := range l.Slots {
		if s.Kind == SlotSystem && s.System == sys && !s.Hit && !s.Destroyed && !s.Missing {
			n++
		}
	}
	return n
}

// RemoveSystem empties the last slot of sys in loc, for designs that drop
// an actuator. It reports whether a slot was freed.
func (e *Entity) RemoveSystem(loc int, sys System) bool {
	l, err := e.Location(loc)
	if err != nil {
		return false
	}
	for i := len(l.Slots) - 1; i >= 0; i-- {
		if s := l.Slots[i]; s.Kind == SlotSystem && s.System == sys {
			l.Slots[i] = &CritSlot{}
			return true
		}
	}
	return false
}

func (e *Entity) CountSystemHits(sys System) int {
	n := 0
	for i := range e.Locations {
		n += e.HitCriticals(sys, i)
	}
	return n
}

// AddEquipment mounts m in loc, filling the first free slots. Units
// without critical slots (vehicles, fighters) take any equipment with
// slots == 0.
func (e *Entity) AddEquipment(m *Mounted, loc, slots int) error {
	l, err := e.Location(loc)
	if err != nil {
		return err
	}
	if slots > l.freeSlots() {
		return fmt.Errorf("%w: %s needs %d in %s, %d free", ErrNoRoom, m.Name, slots, l.Abbr, l.freeSlots())
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Location = loc
	for _, s := range l.Slots {
		if slots == 0 {
			break
		}
		if s.Kind == SlotEmpty {
			s.Kind = SlotEquipment
			s.Mount = m
			slots--
		}
	}
	e.Equipment = append(e.Equipment, m)
	return nil
}

func (e *Entity) equipmentIn(loc int) []*Mounted {
	var out []*Mounted
	for _, m := range e.Equipment {
		if m.Location == loc {
			out = append(out, m)
		}
	}
	return out
}

func (e *Entity) hasMount(kind MountKind, loc int) bool {
	for _, m := range e.equipmentIn(loc) {
		if m.Kind == kind && !m.Missing {
			return true
		}
	}
	return false
}

// usableMount reports whether a mount of kind exists and none is damaged.
func (e *Entity) usableMount(kind MountKind) (present, usable bool) {
	usable = true
	for _, m := range e.Equipment {
		if m.Kind != kind {
			continue
		}
		present = true
		if !m.Usable() {
			usable = false
		}
	}
	return present, present && usable
}

func (e *Entity) WeaponCount() int {
	n := 0
	for _, m := range e.Equipment {
		if m.Kind == MountWeapon {
			n++
		}
	}
	return n
}

func (e *Entity) WeaponsUsable() int {
	n := 0
	for _, m := range e.Equipment {
		if m.Kind == MountWeapon && m.Usable() {
			n++
		}
	}
	return n
}

func (e *Entity) HasUsableWeapons() bool { return e.WeaponsUsable() > 0 }

// lostAllWeapons is true for a unit that was armed and no longer is.
func (e *Entity) lostAllWeapons() bool {
	return e.WeaponCount() > 0 && e.WeaponsUsable() == 0
}

// HeatDissipation is the heat sunk per turn by undamaged heat sinks.
func (e *Entity) HeatDissipation() int {
	sinks := e.HeatSinks
	for _, m := range e.Equipment {
		if m.Kind == MountHeatSink && !m.Usable() {
			sinks--
		}
	}
	if sinks < 0 {
		sinks = 0
	}
	if e.DoubleHeatSinks {
		return sinks * 2
	}
	return sinks
}

// Tech combines the construction choices and mounted equipment.
func (e *Entity) Tech() tech.Composite {
	as := append([]*tech.Advancement(nil), e.construction...)
	for _, m := range e.Equipment {
		if m.Tech != nil {
			as = append(as, m.Tech)
		}
	}
	return tech.Combine(as...)
}

// TechLevel is the rules level of the unit in its design year.
func (e *Entity) TechLevel() (tech.Level, bool) {
	return e.Tech().LevelIn(e.Year, e.TechBase == TechClan)
}

func (e *Entity) AddConstruction(a ...*tech.Advancement) {
	e.construction = append(e.construction, a...)
}

// destroyLocation wipes a location and everything mounted in it.
func (e *Entity) destroyLocation(loc int, missing bool) {
	l, err := e.Location(loc)
	if err != nil {
		return
	}
	l.Destroyed = true
	l.Armor, l.RearArmor, l.Internal = 0, 0, 0
	for _, s := range l.Slots {
		if missing {
			s.Missing = true
		} else {
			s.Destroyed = true
		}
	}
	for _, m := range e.equipmentIn(loc) {
		if missing {
			m.Missing = true
		} else {
			m.Destroyed = true
		}
	}
}
