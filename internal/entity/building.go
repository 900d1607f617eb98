package entity

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/JustinWhittecar/mekcore/internal/rules"
)

// Hex is an opaque board coordinate.
type Hex struct {
	X, Y int
}

type BuildingType int

const (
	BuildingLight BuildingType = iota
	BuildingMedium
	BuildingHeavy
	BuildingHardened
	BuildingWall
	BuildingGunEmplacement
)

var buildingTypeNames = []string{"Light", "Medium", "Heavy", "Hardened", "Wall", "Gun Emplacement"}

func (t BuildingType) String() string { return buildingTypeNames[t] }

func (t BuildingType) defaultCF() int {
	return [...]int{15, 40, 90, 120, 120, 60}[t]
}

func (t BuildingType) maxCF() int {
	return [...]int{15, 40, 90, 150, 150, 150}[t]
}

// DamageScale is the share of damage that passes through to units inside.
func (t BuildingType) DamageScale() float64 {
	switch t {
	case BuildingLight:
		return 0.75
	case BuildingMedium:
		return 0.5
	case BuildingHeavy:
		return 0.25
	default:
		return 0
	}
}

type BuildingClass int

const (
	ClassStandard BuildingClass = iota
	ClassHangar
	ClassFortress
)

// BuildingSection is the part of a building in one hex. PhaseCF takes
// damage during a phase; CurrentCF catches up at the end of it.
type BuildingSection struct {
	CurrentCF int
	PhaseCF   int
	OrigCF    int
	Armor     int
	Basement  bool
	Burning   bool
	Collapsed bool
}

type Building struct {
	Entity

	Name         string
	BuildingType BuildingType
	Class        BuildingClass
	Sections     map[Hex]*BuildingSection

	order []Hex
}

func NewBuilding(name string, t BuildingType, class BuildingClass, hexes ...Hex) *Building {
	b := &Building{
		Entity:       newEntity(name, "", 0, ModeImmobile),
		Name:         name,
		BuildingType: t,
		Class:        class,
		Sections:     make(map[Hex]*BuildingSection),
	}
	b.Crew = Crew{}
	cf := t.defaultCF()
	for _, h := range hexes {
		if _, ok := b.Sections[h]; ok {
			continue
		}
		b.Sections[h] = &BuildingSection{CurrentCF: cf, PhaseCF: cf, OrigCF: cf}
		b.order = append(b.order, h)
	}
	slices.SortFunc(b.order, func(a, c Hex) int {
		if n := cmp.Compare(a.Y, c.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, c.X)
	})
	for _, h := range b.order {
		l := newLocation(fmt.Sprintf("Section %d,%d", h.X, h.Y), fmt.Sprintf("%d,%d", h.X, h.Y), cf, 0, false)
		b.Locations = append(b.Locations, l)
	}
	return b
}

func (b *Building) section(h Hex) (*BuildingSection, error) {
	s, ok := b.Sections[h]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no section at %d,%d", ErrInvalidLocation, b.Name, h.X, h.Y)
	}
	return s, nil
}

// SetCF sets a section's construction factor, capped by building type.
func (b *Building) SetCF(h Hex, cf int) error {
	s, err := b.section(h)
	if err != nil {
		return err
	}
	cf = min(cf, b.BuildingType.maxCF())
	s.CurrentCF, s.PhaseCF, s.OrigCF = cf, cf, cf
	b.syncLocation(h)
	return nil
}

// DamageSection applies damage to armor and then to the phase CF.
func (b *Building) DamageSection(h Hex, dmg int) (collapsed bool, err error) {
	s, err := b.section(h)
	if err != nil {
		return false, err
	}
	if s.Collapsed || dmg <= 0 {
		return s.Collapsed, nil
	}
	absorbed := min(s.Armor, dmg)
	s.Armor -= absorbed
	s.PhaseCF -= dmg - absorbed
	if s.PhaseCF <= 0 {
		s.PhaseCF = 0
		s.Collapsed = true
	}
	b.syncLocation(h)
	return s.Collapsed, nil
}

// EndPhase settles phase damage into the current CF.
func (b *Building) EndPhase() {
	for _, s := range b.Sections {
		s.CurrentCF = s.PhaseCF
	}
}

// CanSupport reports whether the section holds a unit of tons. Hangars
// carry twice their CF.
func (b *Building) CanSupport(h Hex, tons float64) bool {
	s, err := b.section(h)
	if err != nil || s.Collapsed {
		return false
	}
	limit := float64(s.CurrentCF)
	if b.Class == ClassHangar {
		limit *= 2
	}
	return tons <= limit
}

func (b *Building) DamageScale() float64 { return b.BuildingType.DamageScale() }

func (b *Building) syncLocation(h Hex) {
	i := slices.Index(b.order, h)
	if i < 0 {
		return
	}
	s, l := b.Sections[h], b.Locations[i]
	l.Internal, l.OrigInternal, l.Destroyed = s.PhaseCF, s.OrigCF, s.Collapsed
	l.Armor = s.Armor
}

func (b *Building) Type() UnitType { return TypeBuilding }

func (b *Building) WalkMP(rules.Conditions, MPOptions) int { return 0 }
func (b *Building) RunMP(rules.Conditions, MPOptions) int { return 0 }
func (b *Building) JumpMP(rules.Conditions, MPOptions) int { return 0 }

// RollHitLocation picks a standing section at random.
func (b *Building) RollHitLocation(r rules.Roller, side Side) HitData {
	var standing []int
	for i, h := range b.order {
		if !b.Sections[h].Collapsed {
			standing = append(standing, i)
		}
	}
	if len(standing) == 0 {
		return HitData{Location: 0, Side: side}
	}
	return HitData{Location: standing[r.IntN(len(standing))], Side: side}
}

func (b *Building) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }

func (b *Building) ApplyDamage(_ rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	if hit.Location < 0 || hit.Location >= len(b.order) {
		return rep
	}
	h := b.order[hit.Location]
	s := b.Sections[h]
	armor, cf := s.Armor, s.PhaseCF
	collapsed, _ := b.DamageSection(h, dmg)
	rep.applied(b.locName(hit.Location), armor-s.Armor, cf-s.PhaseCF, collapsed)
	if b.IsDestroyed() {
		b.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

func (b *Building) IsDestroyed() bool {
	for _, s := range b.Sections {
		if !s.Collapsed {
			return false
		}
	}
	return true
}

func (b *Building) IsCrippled() bool {
	cur, orig := 0, 0
	for _, s := range b.Sections {
		cur += s.PhaseCF
		orig += s.OrigCF
	}
	return cur*2 <= orig
}

func (b *Building) PilotingRoll() *rules.TargetRoll {
	return rules.NewTargetRoll(0, "none").MarkImpossible("buildings do not pilot")
}

// GenericBattleValue is a tenth of the original CF, at least one.
func (b *Building) GenericBattleValue() int {
	total := 0
	for _, s := range b.Sections {
		total += s.OrigCF
	}
	return max(1, int(math.Round(float64(total)/10)))
}
