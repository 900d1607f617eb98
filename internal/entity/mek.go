package entity

import (
	"math"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

// Mek location indices. Quads use the same slots for their legs.
const (
	LocHead = iota
	LocCenterTorso
	LocRightTorso
	LocLeftTorso
	LocRightArm
	LocLeftArm
	LocRightLeg
	LocLeftLeg
	numMekLocations
)

const (
	LocFrontRightLeg = LocRightArm
	LocFrontLeftLeg  = LocLeftArm
	LocRearRightLeg  = LocRightLeg
	LocRearLeftLeg   = LocLeftLeg
)

// internal structure points per tonnage: head, center torso, side torso, arm, leg
var internalTable = map[int][5]int{
	10:  {3, 4, 3, 1, 2},
	15:  {3, 5, 4, 2, 3},
	20:  {3, 6, 5, 3, 4},
	25:  {3, 8, 6, 4, 6},
	30:  {3, 10, 7, 5, 7},
	35:  {3, 11, 8, 6, 8},
	40:  {3, 12, 10, 6, 10},
	45:  {3, 14, 11, 7, 11},
	50:  {3, 16, 12, 8, 12},
	55:  {3, 18, 13, 9, 13},
	60:  {3, 20, 14, 10, 14},
	65:  {3, 21, 15, 10, 15},
	70:  {3, 22, 15, 11, 15},
	75:  {3, 23, 16, 12, 16},
	80:  {3, 25, 17, 13, 17},
	85:  {3, 27, 18, 14, 18},
	90:  {3, 29, 19, 15, 19},
	95:  {3, 30, 20, 16, 20},
	100: {3, 31, 21, 17, 21},
}

// InternalForTonnage returns the structure row for a Mek weight, rounded
// down to the nearest five tons and kept within 10 to 100.
func InternalForTonnage(tons float64) [5]int {
	t := int(tons) / 5 * 5
	if t < 10 {
		t = 10
	}
	if t > 100 {
		t = 100
	}
	return internalTable[t]
}

// Mek is a BattleMek, biped or quad.
type Mek struct {
	Entity

	Quad            bool
	EngineType      EngineType
	EngineRating    int
	Gyro            GyroType
	Cockpit         CockpitType
	Myomer          MyomerType
	Structure       StructureType
	ArmorType       string
	HasMASC         bool
	HasSupercharger bool
}

type MekOption func(*Mek)

func WithEngine(t EngineType, rating int) MekOption {
	return func(m *Mek) { m.EngineType, m.EngineRating = t, rating }
}

func WithGyro(g GyroType) MekOption { return func(m *Mek) { m.Gyro = g } }

func WithCockpit(c CockpitType) MekOption { return func(m *Mek) { m.Cockpit = c } }

func WithMyomer(t MyomerType) MekOption { return func(m *Mek) { m.Myomer = t } }

func WithStructure(s StructureType) MekOption { return func(m *Mek) { m.Structure = s } }

func WithTechBase(t TechBase) MekOption { return func(m *Mek) { m.TechBase = t } }

// WithMASC marks the Mek as carrying MASC; the builder mounts the item.
func WithMASC() MekOption { return func(m *Mek) { m.HasMASC = true } }

func WithSupercharger() MekOption { return func(m *Mek) { m.HasSupercharger = true } }

func NewBipedMek(chassis, model string, tons float64, walk, jump int, opts ...MekOption) *Mek {
	return newMek(chassis, model, tons, walk, jump, false, opts)
}

func NewQuadMek(chassis, model string, tons float64, walk, jump int, opts ...MekOption) *Mek {
	return newMek(chassis, model, tons, walk, jump, true, opts)
}

func newMek(chassis, model string, tons float64, walk, jump int, quad bool, opts []MekOption) *Mek {
	mode := ModeBiped
	if quad {
		mode = ModeQuad
	}
	m := &Mek{
		Entity:       newEntity(chassis, model, tons, mode),
		Quad:         quad,
		EngineRating: int(tons) * walk,
		ArmorType:    "Standard",
	}
	m.OrigWalkMP = walk
	m.OrigJumpMP = jump
	m.HeatSinks = 10
	for _, o := range opts {
		o(m)
	}

	is := InternalForTonnage(tons)
	names := [numMekLocations][2]string{
		{"Head", "HD"}, {"Center Torso", "CT"}, {"Right Torso", "RT"}, {"Left Torso", "LT"},
		{"Right Arm", "RA"}, {"Left Arm", "LA"}, {"Right Leg", "RL"}, {"Left Leg", "LL"},
	}
	if quad {
		names[LocFrontRightLeg] = [2]string{"Front Right Leg", "FRL"}
		names[LocFrontLeftLeg] = [2]string{"Front Left Leg", "FLL"}
		names[LocRearRightLeg] = [2]string{"Rear Right Leg", "RRL"}
		names[LocRearLeftLeg] = [2]string{"Rear Left Leg", "RLL"}
	}
	for loc := 0; loc < numMekLocations; loc++ {
		var internal, slots int
		rear := false
		switch loc {
		case LocHead:
			internal, slots = is[0], 6
		case LocCenterTorso:
			internal, slots, rear = is[1], 12, true
		case LocRightTorso, LocLeftTorso:
			internal, slots, rear = is[2], 12, true
		case LocRightArm, LocLeftArm:
			internal, slots = is[3], 12
			if quad {
				internal, slots = is[4], 6
			}
		default:
			internal, slots = is[4], 6
		}
		m.Locations = append(m.Locations, newLocation(names[loc][0], names[loc][1], internal, slots, rear))
	}
	m.layoutSystems()

	m.AddConstruction(tech.MekChassis, m.EngineType.advancement(), m.Structure.advancement())
	if m.Myomer == MyomerTSM {
		m.AddConstruction(tech.TSM)
	}
	if m.HasMASC {
		m.AddConstruction(tech.MASC)
	}
	if m.HasSupercharger {
		m.AddConstruction(tech.Supercharger)
	}
	return m
}

func (m *Mek) layoutSystems() {
	hd := m.Locations[LocHead]
	for i, sys := range []System{SystemLifeSupport, SystemSensors, SystemCockpit} {
		hd.setSystem(i, sys)
	}
	hd.setSystem(4, SystemSensors)
	hd.setSystem(5, SystemLifeSupport)

	ct := m.Locations[LocCenterTorso]
	i := 0
	for ; i < 3; i++ {
		ct.setSystem(i, SystemEngine)
	}
	for g := 0; g < m.Gyro.slots(); g++ {
		ct.setSystem(i, SystemGyro)
		i++
	}
	if m.EngineType != EngineCompact {
		for e := 0; e < 3; e++ {
			ct.setSystem(i, SystemEngine)
			i++
		}
	}

	if m.Cockpit == CockpitTorsoMounted && ct.freeSlots() > 0 {
		hd.Slots[2] = &CritSlot{}
		ct.setSystem(i, SystemCockpit)
	}

	side := m.EngineType.sideTorsoSlots(m.TechBase == TechClan)
	for _, loc := range []int{LocRightTorso, LocLeftTorso} {
		for s := 0; s < side; s++ {
			m.Locations[loc].setSystem(s, SystemEngine)
		}
	}

	for _, loc := range []int{LocRightArm, LocLeftArm} {
		l := m.Locations[loc]
		if m.Quad {
			m.legSystems(l)
			continue
		}
		for i, sys := range []System{SystemShoulder, SystemUpperArm, SystemLowerArm, SystemHand} {
			l.setSystem(i, sys)
		}
	}
	m.legSystems(m.Locations[LocRightLeg])
	m.legSystems(m.Locations[LocLeftLeg])
}

func (m *Mek) legSystems(l *Location) {
	for i, sys := range []System{SystemHip, SystemUpperLeg, SystemLowerLeg, SystemFoot} {
		l.setSystem(i, sys)
	}
}

func (m *Mek) Type() UnitType { return TypeMek }

func (m *Mek) IsClan() bool { return m.TechBase == TechClan }

func (m *Mek) isLeg(loc int) bool {
	if m.Quad {
		return loc >= LocRightArm && loc <= LocLeftLeg
	}
	return loc == LocRightLeg || loc == LocLeftLeg
}

func (m *Mek) legs() []int {
	if m.Quad {
		return []int{LocFrontRightLeg, LocFrontLeftLeg, LocRearRightLeg, LocRearLeftLeg}
	}
	return []int{LocRightLeg, LocLeftLeg}
}

func (m *Mek) isLimb(loc int) bool {
	return loc >= LocRightArm && loc <= LocLeftLeg
}

func (m *Mek) isTorso(loc int) bool {
	return loc == LocCenterTorso || loc == LocRightTorso || loc == LocLeftTorso
}

func (m *Mek) destroyedLegs() int {
	n := 0
	for _, loc := range m.legs() {
		if m.IsLocationBad(loc) {
			n++
		}
	}
	return n
}

// legWalkMP is the walk MP left after leg damage, before heat and terrain.
func (m *Mek) legWalkMP() int {
	mp := m.OrigWalkMP
	if mp == 0 {
		return 0
	}
	destroyed := m.destroyedLegs()
	if m.Quad {
		switch {
		case destroyed >= 3:
			return 0
		case destroyed == 2:
			return 1
		case destroyed == 1:
			mp--
		}
	} else {
		switch destroyed {
		case 0:
		case 1:
			return 1
		default:
			return 0
		}
	}

	hips, actuators := 0, 0
	for _, loc := range m.legs() {
		if m.IsLocationBad(loc) {
			continue
		}
		if m.HitCriticals(SystemHip, loc) > 0 {
			hips++
			continue
		}
		for _, sys := range []System{SystemUpperLeg, SystemLowerLeg, SystemFoot} {
			actuators += m.HitCriticals(sys, loc)
		}
	}
	if m.Quad {
		if hips >= 4 {
			return 0
		}
		for i := 0; i < hips; i++ {
			mp = ceilHalf(mp)
		}
	} else {
		switch hips {
		case 0:
		case 1:
			mp = ceilHalf(mp)
		default:
			return 0
		}
	}
	return clampMP(mp - actuators)
}

func (m *Mek) tsmActive(o MPOptions) bool {
	return !o.IgnoreMyomerBoost && m.Myomer == MyomerTSM && m.Heat >= 9
}

func (m *Mek) largeShields() int {
	n := 0
	for _, eq := range m.Equipment {
		if eq.Kind == MountShield && eq.Shield == ShieldLarge && eq.Usable() {
			n++
		}
	}
	return n
}

func (m *Mek) canMove() bool {
	return !m.Shutdown && !m.Immobile && m.Crew.Active()
}

func (m *Mek) WalkMP(c rules.Conditions, o MPOptions) int {
	if !m.canMove() {
		return 0
	}
	mp := m.legWalkMP()
	if m.tsmActive(o) {
		mp += 2
	}
	if !o.IgnoreHeat {
		mp -= rules.HeatMPReduction(m.Heat)
	}
	if !m.Quad {
		mp -= m.largeShields()
	}
	if !o.IgnoreWeather {
		mp += c.MovementModifier(rules.MoverMek)
	}
	mp = clampMP(mp)
	if !o.IgnoreGravity {
		mp = c.ApplyGravity(mp)
	}
	return clampMP(mp)
}

func (m *Mek) mascUsable() bool {
	if !m.HasMASC {
		return false
	}
	present, usable := m.usableMount(MountMASC)
	return !present || usable
}

func (m *Mek) superchargerUsable() bool {
	if !m.HasSupercharger {
		return false
	}
	present, usable := m.usableMount(MountSupercharger)
	return !present || usable
}

func (m *Mek) RunMP(c rules.Conditions, o MPOptions) int {
	walk := m.WalkMP(c, o)
	masc := !o.IgnoreMASC && m.mascUsable()
	sc := !o.IgnoreMASC && m.superchargerUsable()
	switch {
	case masc && sc:
		return int(math.Ceil(float64(walk) * 2.5))
	case masc || sc:
		return walk * 2
	}
	return runFromWalk(walk)
}

// JumpMP counts working jump jets. Heat never lowers jump MP.
func (m *Mek) JumpMP(c rules.Conditions, o MPOptions) int {
	if !m.canMove() || m.OrigJumpMP == 0 {
		return 0
	}
	if !m.Quad && m.destroyedLegs() > 0 {
		return 0
	}
	if !o.IgnoreWeather && !c.JumpAllowed() {
		return 0
	}
	mp := 0
	for _, eq := range m.Equipment {
		if eq.Kind == MountJumpJet && eq.Usable() {
			mp++
		}
	}
	mp = clampMP(min(mp, m.OrigJumpMP))
	if !o.IgnoreGravity {
		mp = c.ApplyGravity(mp)
	}
	return mp
}

func (m *Mek) GenericBattleValue() int {
	return genericBV(m.Weight, 3.729, 0.889)
}

func genericBV(weight, a, b float64) int {
	if weight <= 0 {
		return 0
	}
	return int(math.Round(math.Exp(a + b*math.Log(weight))))
}
