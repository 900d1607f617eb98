package ingestion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

// ErrNoMass is returned for a file without a usable tonnage.
var ErrNoMass = errors.New("mass must be positive")

// headerLocations maps location block headers to biped and quad indices.
var headerLocations = map[string]int{
	"Head":            entity.LocHead,
	"Center Torso":    entity.LocCenterTorso,
	"Right Torso":     entity.LocRightTorso,
	"Left Torso":      entity.LocLeftTorso,
	"Right Arm":       entity.LocRightArm,
	"Left Arm":        entity.LocLeftArm,
	"Right Leg":       entity.LocRightLeg,
	"Left Leg":        entity.LocLeftLeg,
	"Front Right Leg": entity.LocFrontRightLeg,
	"Front Left Leg":  entity.LocFrontLeftLeg,
	"Rear Right Leg":  entity.LocRearRightLeg,
	"Rear Left Leg":   entity.LocRearLeftLeg,
}

// armorLocations maps armor keys to a location and whether it is rear armor.
var armorLocations = map[string]struct {
	loc  int
	rear bool
}{
	"HD": {entity.LocHead, false}, "CT": {entity.LocCenterTorso, false},
	"RT": {entity.LocRightTorso, false}, "LT": {entity.LocLeftTorso, false},
	"RA": {entity.LocRightArm, false}, "LA": {entity.LocLeftArm, false},
	"RL": {entity.LocRightLeg, false}, "LL": {entity.LocLeftLeg, false},
	"FRL": {entity.LocFrontRightLeg, false}, "FLL": {entity.LocFrontLeftLeg, false},
	"RRL": {entity.LocRearRightLeg, false}, "RLL": {entity.LocRearLeftLeg, false},
	"RTC": {entity.LocCenterTorso, true}, "RTR": {entity.LocRightTorso, true},
	"RTL": {entity.LocLeftTorso, true},
}

// BuildMek turns parsed file data into a ready-to-play Mek.
func BuildMek(d *MTFData) (*entity.Mek, error) {
	if d.Mass <= 0 {
		return nil, fmt.Errorf("build %s: %w", d.FullName(), ErrNoMass)
	}

	opts := []entity.MekOption{
		entity.WithEngine(entity.ParseEngineType(d.EngineType), d.EngineRating),
		entity.WithGyro(entity.ParseGyroType(d.Gyro)),
		entity.WithCockpit(entity.ParseCockpitType(d.Cockpit)),
		entity.WithStructure(entity.ParseStructureType(d.Structure)),
		entity.WithTechBase(entity.ParseTechBase(d.TechBase)),
	}
	myomer := entity.ParseMyomerType(d.Myomer)
	for _, items := range d.LocationEquipment {
		for _, item := range items {
			switch n := strings.ToLower(item); {
			case strings.Contains(n, "masc"):
				opts = append(opts, entity.WithMASC())
			case strings.Contains(n, "supercharger"):
				opts = append(opts, entity.WithSupercharger())
			case strings.Contains(n, "tsm"), strings.Contains(n, "triple strength"):
				if myomer == entity.MyomerStandard {
					myomer = entity.MyomerTSM
				}
			}
		}
	}
	opts = append(opts, entity.WithMyomer(myomer))

	var m *entity.Mek
	if d.IsQuad() {
		m = entity.NewQuadMek(d.Chassis, d.Model, float64(d.Mass), d.WalkMP, d.JumpMP, opts...)
	} else {
		m = entity.NewBipedMek(d.Chassis, d.Model, float64(d.Mass), d.WalkMP, d.JumpMP, opts...)
	}
	if d.EngineRating == 0 {
		m.EngineRating = d.Mass * d.WalkMP
	}
	if d.Era > 0 {
		m.Year = d.Era
	}
	if d.RulesLevel > 0 {
		m.RulesLevel = tech.Level(d.RulesLevel - 1)
	}
	if d.ArmorType != "" {
		m.ArmorType = d.ArmorType
	}
	m.HeatSinks = d.HeatSinkCount
	m.DoubleHeatSinks = strings.Contains(strings.ToLower(d.HeatSinkType), "double")

	if err := setArmor(m, d); err != nil {
		return nil, fmt.Errorf("build %s: %w", d.FullName(), err)
	}
	for header, items := range d.LocationEquipment {
		loc, ok := headerLocations[header]
		if !ok {
			continue
		}
		dropMissingActuators(m, loc, items)
		if err := mountItems(m, d, header, loc, items); err != nil {
			return nil, fmt.Errorf("build %s: %w", d.FullName(), err)
		}
	}
	return m, nil
}

func setArmor(m *entity.Mek, d *MTFData) error {
	front := map[int]int{}
	rear := map[int]int{}
	for key, v := range d.ArmorValues {
		a, ok := armorLocations[key]
		if !ok {
			continue
		}
		if a.rear {
			rear[a.loc] = v
		} else {
			front[a.loc] = v
		}
	}
	for loc := range m.Locations {
		if err := m.SetArmor(loc, front[loc], rear[loc]); err != nil {
			return err
		}
	}
	return nil
}

// dropMissingActuators frees arm actuator slots a design leaves out.
func dropMissingActuators(m *entity.Mek, loc int, items []string) {
	if m.Quad || (loc != entity.LocRightArm && loc != entity.LocLeftArm) {
		return
	}
	have := map[entity.System]bool{}
	for _, item := range items {
		if sys, ok := entity.ParseSystem(item); ok {
			have[sys] = true
		}
	}
	for _, sys := range []entity.System{entity.SystemHand, entity.SystemLowerArm} {
		if !have[sys] {
			m.RemoveSystem(loc, sys)
		}
	}
}

type slotRun struct {
	name  string
	rear  bool
	slots int
}

// mountItems groups a location's slot list into mounted equipment.
// Weapons are split by the count in the weapons block; ammo and jump jets
// take one mount per slot; other items take one mount per run.
func mountItems(m *entity.Mek, d *MTFData, header string, loc int, items []string) error {
	var runs []slotRun
	weaponSlots := map[string][2]int{} // name -> front, rear slots
	for _, item := range items {
		name, rear := cleanItem(item)
		if skipItem(name) {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].name == name && runs[n-1].rear == rear && !perSlot(name) {
			runs[n-1].slots++
		} else {
			runs = append(runs, slotRun{name: name, rear: rear, slots: 1})
		}
		if weaponCount(d, header, name) > 0 {
			s := weaponSlots[name]
			if rear {
				s[1]++
			} else {
				s[0]++
			}
			weaponSlots[name] = s
		}
	}

	done := map[string]bool{}
	for _, run := range runs {
		if count := weaponCount(d, header, run.name); count > 0 {
			if done[run.name] {
				continue
			}
			done[run.name] = true
			if err := mountWeapons(m, loc, run.name, count, weaponSlots[run.name]); err != nil {
				return err
			}
			continue
		}
		for _, mt := range equipmentMounts(m, run) {
			if err := m.AddEquipment(mt.mount, loc, mt.slots); err != nil {
				return err
			}
		}
	}
	return nil
}

func mountWeapons(m *entity.Mek, loc int, name string, count int, slots [2]int) error {
	per := max(1, (slots[0]+slots[1])/count)
	for side, n := range slots {
		for i := 0; i < n/per; i++ {
			w := &entity.Mounted{Name: name, Kind: entity.MountWeapon, Rear: side == 1}
			if dmg, ok := gaussExplosion(name); ok {
				w.Damage, w.Explosive = dmg, true
			}
			if err := m.AddEquipment(w, loc, per); err != nil {
				return err
			}
		}
	}
	return nil
}

type pendingMount struct {
	mount *entity.Mounted
	slots int
}

func equipmentMounts(m *entity.Mek, run slotRun) []pendingMount {
	n := strings.ToLower(run.name)
	one := func(mt *entity.Mounted, slots int) []pendingMount {
		return []pendingMount{{mt, slots}}
	}
	switch {
	case isAmmo(n):
		shots, dmg, explosive := ammoStats(run.name)
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountAmmo, Shots: shots, Damage: dmg, Explosive: explosive}, 1)
	case strings.Contains(n, "jump jet"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountJumpJet}, 1)
	case strings.Contains(n, "heat sink"):
		size := 1
		var adv *tech.Advancement
		if strings.Contains(n, "double") {
			size, adv = 3, tech.DoubleHeatSink
			if m.IsClan() || strings.HasPrefix(n, "cl") {
				size = 2
			}
		}
		var out []pendingMount
		for i := 0; i < max(1, run.slots/size); i++ {
			out = append(out, pendingMount{&entity.Mounted{Name: run.name, Kind: entity.MountHeatSink, Tech: adv}, min(size, run.slots)})
		}
		return out
	case strings.Contains(n, "case ii"), strings.Contains(n, "caseii"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountCASEII, Tech: tech.CASEII}, run.slots)
	case strings.Contains(n, "case"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountCASE, Tech: tech.CASE}, run.slots)
	case strings.Contains(n, "masc"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountMASC}, run.slots)
	case strings.Contains(n, "supercharger"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountSupercharger}, run.slots)
	case strings.Contains(n, "tsm"), strings.Contains(n, "triple strength"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountTSM}, run.slots)
	case strings.Contains(n, "shield"):
		return one(&entity.Mounted{Name: run.name, Kind: entity.MountShield, Shield: shieldSize(n)}, run.slots)
	}
	return one(&entity.Mounted{Name: run.name, Kind: entity.MountEquipment}, run.slots)
}

// cleanItem strips the rear and omnipod markers from a slot label.
func cleanItem(item string) (name string, rear bool) {
	name = strings.TrimSpace(item)
	name = strings.TrimSuffix(name, " (omnipod)")
	if strings.HasSuffix(name, "(R)") {
		rear = true
		name = strings.TrimSpace(strings.TrimSuffix(name, "(R)"))
	}
	return name, rear
}

// skipItem is true for slots the Mek layout already covers or that hold
// no mountable equipment.
func skipItem(name string) bool {
	if name == "" || strings.EqualFold(name, "-Empty-") {
		return true
	}
	if _, ok := entity.ParseSystem(name); ok {
		return true
	}
	n := strings.ToLower(name)
	for _, filler := range []string{"endo", "ferro", "stealth", "reactive", "reflective", "hardened armor"} {
		if strings.Contains(n, filler) {
			return true
		}
	}
	return false
}

func perSlot(name string) bool {
	n := strings.ToLower(name)
	return isAmmo(n) || strings.Contains(n, "jump jet")
}

func isAmmo(lower string) bool {
	return strings.HasPrefix(lower, "ammo") || strings.Contains(lower, " ammo")
}

// weaponCount is how many of name the weapons block puts in the location.
// Entries may carry a leading count such as "2 ISERMediumLaser".
func weaponCount(d *MTFData, header, name string) int {
	n := 0
	for _, w := range d.Weapons {
		if !strings.EqualFold(w.Location, header) {
			continue
		}
		wname, _ := cleanItem(w.Name)
		count := 1
		if len(wname) > 2 && wname[0] >= '1' && wname[0] <= '9' && wname[1] == ' ' {
			count = int(wname[0] - '0')
			wname = wname[2:]
		}
		if strings.EqualFold(wname, name) {
			n += count
		}
	}
	return n
}

func shieldSize(lower string) entity.ShieldSize {
	switch {
	case strings.Contains(lower, "large"):
		return entity.ShieldLarge
	case strings.Contains(lower, "medium"):
		return entity.ShieldMedium
	default:
		return entity.ShieldSmall
	}
}

func gaussExplosion(name string) (int, bool) {
	n := strings.ToLower(name)
	if !strings.Contains(n, "gauss") {
		return 0, false
	}
	switch {
	case strings.Contains(n, "light"):
		return 16, true
	case strings.Contains(n, "heavy"):
		return 25, true
	default:
		return 20, true
	}
}
