package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekcore/internal/tech"
)

type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotSystem
	SlotEquipment
)

// CritSlot is one critical slot of a location.
type CritSlot struct {
	Kind      SlotKind
	System    System
	Mount     *Mounted
	Hit       bool
	Destroyed bool
	Missing   bool
}

func (s *CritSlot) Name() string {
	switch s.Kind {
	case SlotSystem:
		return s.System.String()
	case SlotEquipment:
		return s.Mount.Name
	default:
		return "-Empty-"
	}
}

// hittable slots can still take a critical hit.
func (s *CritSlot) hittable() bool {
	return s.Kind != SlotEmpty && !s.Hit && !s.Destroyed && !s.Missing
}

// Location is one hit location: armor, internal structure and slots.
type Location struct {
	Name          string
	Abbr          string
	Armor         int
	OrigArmor     int
	RearArmor     int
	OrigRearArmor int
	HasRear       bool
	Internal      int
	OrigInternal  int
	Destroyed     bool
	Breached      bool
	Slots         []*CritSlot
}

func newLocation(name, abbr string, internal, slots int, rear bool) *Location {
	l := &Location{Name: name, Abbr: abbr, Internal: internal, OrigInternal: internal, HasRear: rear}
	for i := 0; i < slots; i++ {
		l.Slots = append(l.Slots, &CritSlot{})
	}
	return l
}

// exposed is true once the armor is gone or the structure is damaged.
func (l *Location) exposed() bool {
	return l.Destroyed || l.Internal < l.OrigInternal || (l.OrigArmor > 0 && l.Armor == 0)
}

func (l *Location) freeSlots() int {
	n := 0
	for _, s := range l.Slots {
		if s.Kind == SlotEmpty {
			n++
		}
	}
	return n
}

func (l *Location) setSystem(i int, sys System) {
	l.Slots[i] = &CritSlot{Kind: SlotSystem, System: sys}
}

type MountKind int

const (
	MountWeapon MountKind = iota
	MountAmmo
	MountEquipment
	MountJumpJet
	MountHeatSink
	MountShield
	MountMASC
	MountSupercharger
	MountTSM
	MountCASE
	MountCASEII
)

var mountKindNames = []string{
	"weapon", "ammo", "equipment", "jump jet", "heat sink", "shield",
	"MASC", "supercharger", "TSM", "CASE", "CASE II",
}

func (k MountKind) String() string {
	if int(k) < 0 || int(k) >= len(mountKindNames) {
		return fmt.Sprintf("MountKind(%d)", int(k))
	}
	return mountKindNames[k]
}

type ShieldSize int

const (
	ShieldNone ShieldSize = iota
	ShieldSmall
	ShieldMedium
	ShieldLarge
)

// Mounted is a piece of equipment installed on a unit.
type Mounted struct {
	ID        uuid.UUID
	Name      string
	Kind      MountKind
	Location  int
	Rear      bool
	Hit       bool
	Destroyed bool
	Missing   bool
	Shots     int
	BV        float64
	Heat      int
	Damage    int
	Explosive bool
	Tonnage   float64
	Tech      *tech.Advancement
	Shield    ShieldSize
}

func (m *Mounted) Usable() bool { return !m.Hit && !m.Destroyed && !m.Missing }

// explosionDamage is what the mount does to its location when it cooks off.
func (m *Mounted) explosionDamage() int {
	if !m.Explosive || m.Destroyed || m.Missing {
		return 0
	}
	if m.Kind == MountAmmo {
		return m.Shots * m.Damage
	}
	return m.Damage
}
