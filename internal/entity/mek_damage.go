package entity

import (
	"github.com/JustinWhittecar/mekcore/internal/rules"
)

// Hit location tables, indexed by 2d6 roll - 2. Rear attacks use the
// front column with rear armor on the torsos.
var (
	mekFrontHits = [11]int{
		LocCenterTorso, LocRightArm, LocRightArm, LocRightLeg, LocRightTorso,
		LocCenterTorso, LocLeftTorso, LocLeftLeg, LocLeftArm, LocLeftArm, LocHead,
	}
	mekLeftHits = [11]int{
		LocLeftTorso, LocLeftLeg, LocLeftArm, LocLeftArm, LocLeftLeg,
		LocLeftTorso, LocCenterTorso, LocRightTorso, LocRightArm, LocRightLeg, LocHead,
	}
	mekRightHits = [11]int{
		LocRightTorso, LocRightLeg, LocRightArm, LocRightArm, LocRightLeg,
		LocRightTorso, LocCenterTorso, LocLeftTorso, LocLeftArm, LocLeftLeg, LocHead,
	}
)

func (m *Mek) RollHitLocation(r rules.Roller, side Side) HitData {
	roll := rules.Roll2d6(r)
	table := mekFrontHits
	switch side {
	case SideLeft:
		table = mekLeftHits
	case SideRight:
		table = mekRightHits
	}
	loc := table[roll-2]
	return HitData{
		Location: loc,
		Rear:     side == SideRear && m.isTorso(loc),
		Critical: roll == 2,
		Side:     side,
	}
}

// TransferLocation is where damage goes once a location is gone: limbs
// into their side torso, side torsos into the center.
func (m *Mek) TransferLocation(hit HitData) (HitData, bool) {
	var to int
	switch hit.Location {
	case LocRightArm, LocRightLeg:
		to = LocRightTorso
	case LocLeftArm, LocLeftLeg:
		to = LocLeftTorso
	case LocRightTorso, LocLeftTorso:
		to = LocCenterTorso
	default:
		return HitData{}, false
	}
	return HitData{Location: to, Rear: hit.Rear && m.isTorso(to), Side: hit.Side}, true
}

func (m *Mek) ApplyDamage(r rules.Roller, hit HitData, dmg int) DamageReport {
	var rep DamageReport
	m.damage(r, hit, dmg, &rep)
	if m.IsDestroyed() {
		m.Destroyed = true
		rep.UnitDestroyed = true
	}
	return rep
}

// damage runs armor, then structure, then criticals and transfer.
func (m *Mek) damage(r rules.Roller, hit HitData, dmg int, rep *DamageReport) {
	l, err := m.Location(hit.Location)
	if err != nil || dmg <= 0 {
		return
	}
	if l.Destroyed || l.Internal <= 0 {
		m.transfer(r, hit, dmg, rep)
		return
	}

	armor := &l.Armor
	if hit.Rear && l.HasRear {
		armor = &l.RearArmor
	}
	absorbed := min(*armor, dmg)
	*armor -= absorbed
	remaining := dmg - absorbed
	if remaining == 0 {
		rep.applied(l.Abbr, absorbed, 0, false)
		if hit.Critical {
			m.rollCrits(r, hit.Location, rep)
		}
		return
	}
	m.structureDamage(r, hit, m.Structure.internalDamage(remaining), absorbed, m.Structure != StructureComposite, rep)
}

func (m *Mek) structureDamage(r rules.Roller, hit HitData, internal, absorbed int, transfer bool, rep *DamageReport) {
	l := m.Locations[hit.Location]
	if internal < l.Internal {
		l.Internal -= internal
		rep.applied(l.Abbr, absorbed, internal, false)
		m.rollCrits(r, hit.Location, rep)
		return
	}
	overflow := internal - l.Internal
	rep.applied(l.Abbr, absorbed, l.Internal, true)
	m.destroyMekLocation(hit.Location, false, rep)
	if overflow > 0 && transfer {
		m.transfer(r, hit, overflow, rep)
	}
}

func (m *Mek) transfer(r rules.Roller, hit HitData, dmg int, rep *DamageReport) {
	next, ok := m.TransferLocation(hit)
	if !ok {
		return
	}
	rep.Transferred = true
	m.damage(r, next, dmg, rep)
}

// destroyMekLocation also takes the arm with a biped side torso.
func (m *Mek) destroyMekLocation(loc int, missing bool, rep *DamageReport) {
	m.destroyLocation(loc, missing)
	if m.Quad {
		return
	}
	arm := -1
	switch loc {
	case LocRightTorso:
		arm = LocRightArm
	case LocLeftTorso:
		arm = LocLeftArm
	}
	if arm >= 0 && !m.Locations[arm].Destroyed {
		a := m.Locations[arm]
		rep.applied(a.Abbr, a.Armor, a.Internal, true)
		m.destroyLocation(arm, true)
	}
}

// rollCrits checks for critical hits after structure damage.
func (m *Mek) rollCrits(r rules.Roller, loc int, rep *DamageReport) {
	roll := rules.Roll2d6(r)
	if m.Structure == StructureReinforced {
		roll--
	}
	l := m.Locations[loc]
	n := 0
	switch {
	case roll >= 12:
		switch {
		case loc == LocHead && m.hitCockpit(rep):
			return
		case m.isLimb(loc):
			rep.crit(l.Abbr, "limb blown off")
			m.destroyMekLocation(loc, true, rep)
			return
		}
		n = 3
	case roll >= 10:
		n = 2
	case roll >= 8:
		n = 1
	}
	for i := 0; i < n; i++ {
		m.applyCrit(r, loc, rep)
	}
}

// hitCockpit destroys the cockpit in the head. It reports false when the
// cockpit is elsewhere.
func (m *Mek) hitCockpit(rep *DamageReport) bool {
	for _, s := range m.Locations[LocHead].Slots {
		if s.Kind == SlotSystem && s.System == SystemCockpit && s.hittable() {
			s.Hit = true
			rep.crit(m.locName(LocHead), "cockpit destroyed")
			return true
		}
	}
	return false
}

// applyCrit hits one random undamaged slot in loc.
func (m *Mek) applyCrit(r rules.Roller, loc int, rep *DamageReport) {
	l := m.Locations[loc]
	var valid []*CritSlot
	for _, s := range l.Slots {
		if s.hittable() {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return
	}
	s := valid[r.IntN(len(valid))]
	s.Hit = true

	if s.Kind == SlotSystem {
		rep.crit(l.Abbr, s.System.String())
		return
	}
	eq := s.Mount
	if eq.explosionDamage() > 0 {
		m.explode(r, loc, eq, rep)
		return
	}
	eq.Hit = true
	rep.crit(l.Abbr, eq.Name)
}

// explode cooks off ammo or an explosive weapon. CASE II limits the
// damage to one point, CASE keeps it in the location, and without
// either the excess moves inward.
func (m *Mek) explode(r rules.Roller, loc int, eq *Mounted, rep *DamageReport) {
	l := m.Locations[loc]
	dmg := eq.explosionDamage()
	eq.Hit, eq.Destroyed = true, true
	if eq.Kind == MountAmmo {
		eq.Shots = 0
	}
	rep.crit(l.Abbr, eq.Name+" explodes")

	m.Crew.Damage(2)
	m.Crew.CheckConsciousness(r)

	hit := HitData{Location: loc}
	switch {
	case m.hasMount(MountCASEII, loc):
		m.structureDamage(r, hit, 1, 0, false, rep)
	case m.hasMount(MountCASE, loc):
		m.structureDamage(r, hit, dmg, 0, false, rep)
	default:
		m.structureDamage(r, hit, dmg, 0, true, rep)
	}
}

func (m *Mek) engineDestroysOnSideTorso() (either, both bool) {
	slots := m.EngineType.sideTorsoSlots(m.IsClan())
	return slots >= 3, slots > 0
}

func (m *Mek) IsDestroyed() bool {
	if m.Destroyed || m.Crew.Dead() {
		return true
	}
	if m.IsLocationBad(LocCenterTorso) {
		return true
	}
	if m.IsLocationBad(LocHead) && m.Cockpit != CockpitTorsoMounted {
		return true
	}
	if m.CountSystemHits(SystemEngine) >= 3 || m.CountSystemHits(SystemCockpit) > 0 {
		return true
	}
	rt, lt := m.IsLocationBad(LocRightTorso), m.IsLocationBad(LocLeftTorso)
	either, both := m.engineDestroysOnSideTorso()
	if either && (rt || lt) {
		return true
	}
	return both && rt && lt
}

// IsCrippled reports a Mek that must withdraw from the battle.
func (m *Mek) IsCrippled() bool {
	if m.IsDestroyed() {
		return true
	}
	if m.Crew.Hits >= 4 {
		return true
	}
	engine := m.CountSystemHits(SystemEngine)
	if engine >= 2 || (engine >= 1 && m.CountSystemHits(SystemGyro) >= 1) {
		return true
	}
	if m.IsLocationBad(LocRightTorso) || m.IsLocationBad(LocLeftTorso) {
		return true
	}
	if m.CountSystemHits(SystemSensors) >= 2 {
		return true
	}
	limbs, torsos := 0, 0
	for i, l := range m.Locations {
		if !l.exposed() {
			continue
		}
		switch {
		case m.isTorso(i):
			torsos++
		case m.isLimb(i):
			limbs++
		}
	}
	if limbs >= 3 || torsos >= 2 {
		return true
	}
	if m.lostAllWeapons() {
		return true
	}
	return m.OrigWalkMP > 0 && m.legWalkMP() == 0
}

// PilotingRoll is the base piloting skill roll with every standing damage
// modifier.
func (m *Mek) PilotingRoll() *rules.TargetRoll {
	t := rules.NewTargetRoll(m.Crew.Piloting, "piloting skill")
	switch {
	case m.Crew.Dead():
		return t.MarkAutomaticFail("pilot dead")
	case m.Crew.Ejected:
		return t.MarkAutomaticFail("no pilot")
	case m.Crew.Unconscious:
		return t.MarkAutomaticFail("pilot unconscious")
	}

	gyro := m.CountSystemHits(SystemGyro)
	if gyro >= m.Gyro.destroyedAt() {
		return t.MarkAutomaticFail("gyro destroyed")
	}
	if gyro > 0 {
		mod := 3 * gyro
		if m.Gyro == GyroHeavyDuty {
			mod = 1 + 3*(gyro-1)
		}
		t.Add(mod, "damaged gyro")
	}

	for _, loc := range m.legs() {
		abbr := m.Locations[loc].Abbr
		switch {
		case m.IsLocationBad(loc):
			t.Add(5, abbr+" destroyed")
		case m.HitCriticals(SystemHip, loc) > 0:
			t.Add(2, abbr+" hip actuator")
		default:
			for _, sys := range []System{SystemUpperLeg, SystemLowerLeg, SystemFoot} {
				t.Add(m.HitCriticals(sys, loc), abbr+" "+sys.String())
			}
		}
	}
	if m.Quad && m.destroyedLegs() == 0 {
		t.Add(-2, "quad")
	}
	if m.Cockpit == CockpitSmall {
		t.Add(1, "small cockpit")
	}
	return t
}
