// Package bvcalc computes BattleMek Battle Value 2 from the entity model.
package bvcalc

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/ingestion"
)

// Result holds the calculated BV breakdown
type Result struct {
	FinalBV      int
	DefensiveBR  float64
	OffensiveBR  float64
	ArmorBV      float64
	StructureBV  float64
	GyroBV       float64
	DefEquipBV   float64
	ExplosivePen float64
	DefFactor    float64
	WeaponBV     float64
	AmmoBV       float64
	SpeedFactor  float64
	HeatEff      int
	Errors       []string
}

// EquipmentDB provides weapon BV lookups
type EquipmentDB struct {
	// Map from internal_name -> equipment info
	ByInternalName map[string]*EquipInfo
	// Map from display name -> equipment info (may have duplicates IS/Clan; stores both)
	ByName map[string][]*EquipInfo
}

// EquipInfo holds equipment data from the DB
type EquipInfo struct {
	Name         string
	InternalName string
	Type         string
	BV           int
	Heat         int
	RackSize     int
	Tonnage      float64
}

func NewEquipmentDB(items ...EquipInfo) *EquipmentDB {
	edb := &EquipmentDB{
		ByInternalName: make(map[string]*EquipInfo),
		ByName:         make(map[string][]*EquipInfo),
	}
	for _, e := range items {
		edb.Add(e)
	}
	return edb
}

func (edb *EquipmentDB) Add(e EquipInfo) {
	eCopy := e
	if e.InternalName != "" {
		edb.ByInternalName[e.InternalName] = &eCopy
	}
	edb.ByName[e.Name] = append(edb.ByName[e.Name], &eCopy)
}

// BattleValue makes the database a Valuer for ForceBV.
func (edb *EquipmentDB) BattleValue(m *entity.Mek) int {
	return CalculateMek(m, edb).FinalBV
}

// CalculateMTF builds a Mek from parsed file data and computes its BV2.
func CalculateMTF(mtf *ingestion.MTFData, edb *EquipmentDB) (Result, error) {
	m, err := ingestion.BuildMek(mtf)
	if err != nil {
		return Result{}, err
	}
	return CalculateMek(m, edb), nil
}

type weaponInfo struct {
	name         string
	isRear       bool
	bv           int
	heat         int
	internalName string
}

// CalculateMek computes BV2 for an undamaged Mek.
func CalculateMek(m *entity.Mek, edb *EquipmentDB) Result {
	var r Result

	tonnage := m.Weight
	isClan := m.IsClan()

	// ========== DEFENSIVE BATTLE RATING ==========

	r.ArmorBV = float64(m.TotalOrigArmor()) * 2.5 * getArmorMod(m.ArmorType)
	r.StructureBV = float64(m.TotalOrigInternal()) * 1.5 * StructureModifier(m.Structure) * EngineModifier(m.EngineType, isClan)
	r.GyroBV = tonnage * GyroModifier(m.Gyro)

	caseLocations := map[string]bool{}
	for _, eq := range m.Equipment {
		if eq.Kind == entity.MountCASE || eq.Kind == entity.MountCASEII {
			caseLocations[locAbbr(m, eq.Location)] = true
		}
	}

	// Defensive equipment BV, one entry per mounted item
	defEquipBV := 0.0
	amsBV := 0
	amsAmmoBV := 0
	for _, eq := range m.Equipment {
		if bv := defensiveEquipBV(eq.Name); bv > 0 && eq.Kind != entity.MountAmmo {
			defEquipBV += float64(bv)
			if isAMS(eq.Name) {
				amsBV += bv
			}
		}
		if eq.Kind == entity.MountAmmo && IsAMSAmmo(eq.Name) {
			amsAmmoBV += AmmoBV(eq.Name)
		}
	}
	// Cap AMS ammo BV at AMS weapon BV
	if amsAmmoBV > amsBV {
		amsAmmoBV = amsBV
	}
	defEquipBV += float64(amsAmmoBV)
	r.DefEquipBV = defEquipBV

	// Explosive ammo: 15 per bin. Explosive weapons: 1 per critical slot.
	explosivePenalty := 0.0
	for _, eq := range m.Equipment {
		if eq.Kind != entity.MountAmmo || !eq.Explosive || IsAMSAmmo(eq.Name) {
			continue
		}
		if penaltyApplies(locAbbr(m, eq.Location), caseLocations, isClan) {
			explosivePenalty += 15
		}
	}
	for loc, l := range m.Locations {
		for _, s := range l.Slots {
			if s.Kind != entity.SlotEquipment || s.Mount == nil || s.Mount.Kind != entity.MountWeapon || !s.Mount.Explosive {
				continue
			}
			if penaltyApplies(locAbbr(m, loc), caseLocations, isClan) {
				explosivePenalty++
			}
		}
	}
	r.ExplosivePen = explosivePenalty

	defSubtotal := r.ArmorBV + r.StructureBV + r.GyroBV + r.DefEquipBV - explosivePenalty
	if defSubtotal < 1 {
		defSubtotal = 1
	}

	// Defensive factor from TMM
	walkMP := m.OrigWalkMP
	runMP := walkMP + int(math.Ceil(float64(walkMP)*0.5))
	jumpMP := m.OrigJumpMP
	hasTSM := m.Myomer == entity.MyomerTSM

	mascRunMP := runMP
	if m.HasMASC || m.HasSupercharger {
		mascRunMP = walkMP * 2
	}
	if hasTSM {
		tsmRunMP := (walkMP + 1) + int(math.Ceil(float64(walkMP+1)*0.5))
		if tsmRunMP > mascRunMP {
			mascRunMP = tsmRunMP
		}
	}

	bestTMM := TMM(mascRunMP)
	if jumpTMM := TMM(jumpMP); jumpTMM > bestTMM {
		bestTMM = jumpTMM
	}

	r.DefFactor = DefensiveFactor(bestTMM)
	r.DefensiveBR = defSubtotal * r.DefFactor

	// ========== OFFENSIVE BATTLE RATING ==========

	var weapons []weaponInfo
	hasTC, hasArtemisIV, hasArtemisV := false, false, false
	for _, eq := range m.Equipment {
		switch {
		case strings.Contains(eq.Name, "Targeting Computer"), strings.Contains(eq.Name, "ISTargeting"), strings.Contains(eq.Name, "CLTargeting"):
			hasTC = true
		case strings.Contains(eq.Name, "Artemis V"):
			hasArtemisV = true
		case strings.Contains(eq.Name, "Artemis IV"):
			hasArtemisIV = true
		}
		if eq.Kind != entity.MountWeapon {
			continue
		}
		if info := lookupWeapon(eq.Name, edb, isClan); info != nil {
			weapons = append(weapons, weaponInfo{name: info.Name, isRear: eq.Rear, bv: info.BV, heat: info.Heat, internalName: info.InternalName})
		} else if eq.BV > 0 {
			weapons = append(weapons, weaponInfo{name: eq.Name, isRear: eq.Rear, bv: int(math.Round(eq.BV)), heat: eq.Heat})
		} else if _, known := weaponNameAliases[eq.Name]; !known {
			r.AddError("no BV for weapon %q", eq.Name)
		}
	}

	// Calculate weapon modified BV
	type modWeapon struct {
		modBV float64
		heat  int
		name  string
	}

	totalFrontBV := 0.0
	totalRearBV := 0.0
	var frontWeapons []modWeapon
	var rearWeapons []modWeapon

	for _, w := range weapons {
		bv := float64(w.bv)
		if bv == 0 {
			continue
		}
		lower := strings.ToLower(w.name)

		isLRM := strings.Contains(lower, "lrm") || strings.Contains(lower, "srm") || strings.Contains(lower, "mml")
		isATM := strings.Contains(lower, "atm")

		if (isLRM || isATM) && hasArtemisIV {
			bv *= 1.2
		}
		if (isLRM || isATM) && hasArtemisV {
			bv *= 1.3
		}

		isDirectFire := !isLRM && !isATM && !strings.Contains(lower, "mrm") && !strings.Contains(lower, "narc")
		if hasTC && isDirectFire {
			bv *= 1.25
		}

		// Adjust heat for BV calculation
		heat := w.heat
		if strings.Contains(lower, "ultra") {
			heat *= 2
		}
		if strings.Contains(lower, "rotary") {
			heat *= 6
		}
		if strings.Contains(lower, "streak") {
			heat = int(math.Ceil(float64(heat) * 0.5))
		}
		if strings.Contains(lower, "(os)") || strings.HasSuffix(strings.ToLower(w.internalName), "os") {
			heat = int(math.Ceil(float64(heat) * 0.25))
		}

		mw := modWeapon{modBV: bv, heat: heat, name: w.name}
		if w.isRear {
			totalRearBV += bv
			rearWeapons = append(rearWeapons, mw)
		} else {
			totalFrontBV += bv
			frontWeapons = append(frontWeapons, mw)
		}
	}

	// If rear BV > front BV, swap: rear counts as full, front at half
	if totalRearBV > totalFrontBV {
		frontWeapons, rearWeapons = rearWeapons, frontWeapons
	}

	for i := range rearWeapons {
		rearWeapons[i].modBV *= 0.5
	}

	allWeapons := append(frontWeapons, rearWeapons...)

	// Sort by modified BV descending, then heat ascending
	sort.SliceStable(allWeapons, func(i, j int) bool {
		if allWeapons[i].modBV != allWeapons[j].modBV {
			return allWeapons[i].modBV > allWeapons[j].modBV
		}
		return allWeapons[i].heat < allWeapons[j].heat
	})

	// Heat efficiency
	hsCapacity := m.HeatSinks
	if m.DoubleHeatSinks {
		hsCapacity *= 2
	}

	hasStealth := strings.Contains(strings.ToLower(m.ArmorType), "stealth")
	heatEff := 6 + hsCapacity - MovementHeat(runMP, jumpMP, hasStealth)
	r.HeatEff = heatEff

	// The weapon that crosses the heat line still counts in full.
	heatUsed := 0
	weaponBV := 0.0
	exceeded := false
	for _, w := range allWeapons {
		if exceeded {
			weaponBV += w.modBV * 0.5
			continue
		}
		heatUsed += w.heat
		exceeded = heatUsed > heatEff
		weaponBV += w.modBV
	}
	r.WeaponBV = weaponBV

	// Ammo BV, capped at the BV of the weapons that fire it
	weaponBVByType := map[string]float64{}
	for _, w := range weapons {
		weaponBVByType[normalizeWeaponForAmmo(w.name)] += float64(w.bv)
	}

	ammoBVByType := map[string]float64{}
	for _, eq := range m.Equipment {
		if eq.Kind != entity.MountAmmo || IsAMSAmmo(eq.Name) {
			continue
		}
		ammoBVByType[normalizeAmmoForWeapon(eq.Name)] += float64(AmmoBV(eq.Name))
	}

	totalAmmoBV := 0.0
	for key, abv := range ammoBVByType {
		if wbv := weaponBVByType[key]; abv > wbv {
			abv = wbv
		}
		totalAmmoBV += abv
	}
	r.AmmoBV = totalAmmoBV

	tonnageBV := tonnage
	if hasTSM {
		tonnageBV *= 1.5
	}

	offSubtotal := weaponBV + totalAmmoBV + tonnageBV

	r.SpeedFactor = SpeedFactor(mascRunMP, jumpMP)
	r.OffensiveBR = offSubtotal * r.SpeedFactor

	// ========== FINAL ==========
	baseBV := r.DefensiveBR + r.OffensiveBR

	switch m.Cockpit {
	case entity.CockpitSmall:
		baseBV *= 0.95
	case entity.CockpitIndustrial:
		baseBV *= 0.9
	}

	r.FinalBV = int(math.Round(baseBV))
	return r
}

func getArmorMod(armorType string) float64 {
	if m, ok := ArmorTypeModifier[armorType]; ok {
		return m
	}
	// Default to 1.0 for unknown types
	return 1.0
}

func locAbbr(m *entity.Mek, loc int) string {
	if l, err := m.Location(loc); err == nil {
		return l.Abbr
	}
	return ""
}

func isAMS(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "anti-missile") || strings.Contains(n, "antimissile") ||
		strings.Contains(n, "ams") && !strings.Contains(n, "ammo")
}

func defensiveEquipBV(name string) int {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "laser anti-missile") || n == "cllaserantimissilesystem" || n == "islaserantimissilesystem":
		return 45
	case strings.Contains(n, "anti-missile") || n == "isantimissilesystem" || n == "clantimissilesystem" || n == "ams":
		return 32
	case strings.Contains(n, "a-pod") || n == "isapod" || n == "clapod":
		return 1
	case strings.Contains(n, "b-pod") || n == "isbpod" || n == "clbpod":
		return 2
	case strings.Contains(n, "guardian ecm") || n == "isguardianecmsuite" || n == "isguardianecm":
		return 61
	case strings.Contains(n, "angel ecm"):
		return 100
	case n == "clecmsuite" || strings.Contains(n, "ecm suite"):
		return 61
	case strings.Contains(n, "bloodhound"):
		return 25
	case n == "cllightactiveprobe" || strings.Contains(n, "light active probe"):
		return 7
	case strings.Contains(n, "beagle") || n == "clactiveprobe" || strings.Contains(n, "active probe"):
		return 10
	}
	return 0
}

// penaltyApplies reports whether explosive items in loc cost BV. Head,
// center torso and legs always do. Clan units carry CASE elsewhere.
func penaltyApplies(loc string, caseLocations map[string]bool, isClan bool) bool {
	critical := loc == "CT" || loc == "HD" || loc == "LL" || loc == "RL" ||
		loc == "FLL" || loc == "FRL" || loc == "RLL" || loc == "RRL"
	if critical {
		return true
	}
	if isClan {
		return false
	}
	return !caseLocations[loc]
}

// weaponNameAliases maps display/internal names to equipment DB names
var weaponNameAliases = map[string]string{
	// iATM
	"iATM 3": "Improved ATM 3", "iATM 6": "Improved ATM 6",
	"iATM 9": "Improved ATM 9", "iATM 12": "Improved ATM 12",
	// Non-weapon equipment (BV=0 or defensive)
	"Light TAG": "", "TAG": "", "Clan TAG": "", "Light Active Probe": "",
	"Beagle Active Probe": "", "Guardian ECM Suite": "",
	"AMS": "", "B-Pod": "", "M-Pod": "", "A-Pod": "",
	"Anti-Missile System": "",
	// IS MegaMek internal names → DB display names
	"ISMediumLaser": "Medium Laser", "ISSmallLaser": "Small Laser", "ISLargeLaser": "Large Laser",
	"ISERMediumLaser": "ER Medium Laser", "ISERSmallLaser": "ER Small Laser", "ISERLargeLaser": "ER Large Laser",
	"ISMediumPulseLaser": "Medium Pulse Laser", "ISSmallPulseLaser": "Small Pulse Laser", "ISLargePulseLaser": "Large Pulse Laser",
	"ISPPC": "PPC", "ISERPPC": "ER PPC", "ISLightPPC": "Light PPC", "ISHeavyPPC": "Heavy PPC", "ISSNPPC": "Snub-Nose PPC",
	"ISFlamer": "Flamer",
	"ISLRM5": "LRM 5", "ISLRM10": "LRM 10", "ISLRM15": "LRM 15", "ISLRM20": "LRM 20",
	"ISSRM2": "SRM 2", "ISSRM4": "SRM 4", "ISSRM6": "SRM 6",
	"ISStreakSRM2": "Streak SRM 2", "ISStreakSRM4": "Streak SRM 4", "ISStreakSRM6": "Streak SRM 6",
	"ISGaussRifle": "Gauss Rifle", "ISLightGaussRifle": "Light Gauss Rifle", "ISHeavyGaussRifle": "Heavy Gauss Rifle",
	"ISLBXAC2": "LB 2-X AC", "ISLBXAC5": "LB 5-X AC", "ISLBXAC10": "LB 10-X AC", "ISLBXAC20": "LB 20-X AC",
	"ISUltraAC2": "Ultra AC/2", "ISUltraAC5": "Ultra AC/5", "ISUltraAC10": "Ultra AC/10", "ISUltraAC20": "Ultra AC/20",
	"ISRotaryAC2": "Rotary AC/2", "ISRotaryAC5": "Rotary AC/5",
	"ISAntiMissileSystem": "", "ISGuardianECM": "", "ISBeagleActiveProbe": "", "ISTAG": "",
	"ISC3SlaveUnit": "", "ISImprovedC3CPU": "",
	"ISMediumXPulseLaser": "Medium X-Pulse Laser", "ISSmallXPulseLaser": "Small X-Pulse Laser", "ISLargeXPulseLaser": "Large X-Pulse Laser",
	"ISRocketLauncher10": "Rocket Launcher 10", "ISRocketLauncher15": "Rocket Launcher 15", "ISRocketLauncher20": "Rocket Launcher 20",
	"ISMachine Gun": "Machine Gun", "ISHeavyMachineGun": "Heavy Machine Gun", "ISLightMachineGun": "Light Machine Gun",
	"ISMML3": "MML 3", "ISMML5": "MML 5", "ISMML7": "MML 7", "ISMML9": "MML 9",
	"ISAC2": "AC/2", "ISAC5": "AC/5", "ISAC10": "AC/10", "ISAC20": "AC/20",
	"ISPlasmaRifle": "Plasma Rifle",
	"ISERFlamer": "ER Flamer",
	// Clan MegaMek internal names → DB display names
	"CLERMediumLaser": "ER Medium Laser", "CLERSmallLaser": "ER Small Laser", "CLERLargeLaser": "ER Large Laser",
	"CLMediumPulseLaser": "Medium Pulse Laser", "CLSmallPulseLaser": "Small Pulse Laser", "CLLargePulseLaser": "Large Pulse Laser",
	"CLERMicroLaser": "ER Micro Laser", "CLMicroPulseLaser": "Micro Pulse Laser",
	"CLERPPC": "ER PPC",
	"CLFlamer": "Flamer", "CLERFlamer": "ER Flamer",
	"CLLRM5": "LRM 5", "CLLRM10": "LRM 10", "CLLRM15": "LRM 15", "CLLRM20": "LRM 20",
	"CLSRM2": "SRM 2", "CLSRM4": "SRM 4", "CLSRM6": "SRM 6",
	"CLStreakSRM2": "Streak SRM 2", "CLStreakSRM4": "Streak SRM 4", "CLStreakSRM6": "Streak SRM 6",
	"CLGaussRifle": "Gauss Rifle", "CLHeavyGaussRifle": "Heavy Gauss Rifle", "CLLightGaussRifle": "Light Gauss Rifle",
	"CLLBXAC2": "LB 2-X AC", "CLLBXAC5": "LB 5-X AC", "CLLBXAC10": "LB 10-X AC", "CLLBXAC20": "LB 20-X AC",
	"CLUltraAC2": "Ultra AC/2", "CLUltraAC5": "Ultra AC/5", "CLUltraAC10": "Ultra AC/10", "CLUltraAC20": "Ultra AC/20",
	"CLRotaryAC2": "Rotary AC/2", "CLRotaryAC5": "Rotary AC/5",
	"CLAntiMissileSystem": "", "CLAMS": "", "CLECMSuite": "", "CLActiveProbe": "", "CLLightActiveProbe": "",
	"CLTAG": "", "CLLightTAG": "",
	"CLHeavyMediumLaser": "Heavy Medium Laser", "CLHeavySmallLaser": "Heavy Small Laser", "CLHeavyLargeLaser": "Heavy Large Laser",
	"CLMachine Gun": "Machine Gun", "CLHeavyMachineGun": "Heavy Machine Gun", "CLLightMachineGun": "Light Machine Gun",
	"CLATM3": "ATM 3", "CLATM6": "ATM 6", "CLATM9": "ATM 9", "CLATM12": "ATM 12",
	"CLiATM3": "Improved ATM 3", "CLiATM6": "Improved ATM 6", "CLiATM9": "Improved ATM 9", "CLiATM12": "Improved ATM 12",
	"CLStreakLRM5": "Streak LRM 5", "CLStreakLRM10": "Streak LRM 10", "CLStreakLRM15": "Streak LRM 15", "CLStreakLRM20": "Streak LRM 20",
	"CLAPGaussRifle": "AP Gauss Rifle",
	"CLHAGRifle20": "HAG/20", "CLHAGRifle30": "HAG/30", "CLHAGRifle40": "HAG/40",
	"CLHAG20": "HAG/20", "CLHAG30": "HAG/30", "CLHAG40": "HAG/40",
	"CLPlasmaRifle": "Plasma Rifle", "CLPlasmaCannon": "Plasma Cannon",
	// Some common display name variants
	"Particle Cannon": "PPC",
	"Autocannon/2": "AC/2", "Autocannon/5": "AC/5", "Autocannon/10": "AC/10", "Autocannon/20": "AC/20",
	"LAC/5": "Light AC/5", "LAC/2": "Light AC/2",
	"C3 Master with TAG": "", // C3 + TAG combo, no offensive BV
}

func lookupWeapon(name string, edb *EquipmentDB, clan bool) *EquipInfo {
	if edb == nil {
		return nil
	}

	if eq, ok := edb.ByInternalName[name]; ok {
		return eq
	}
	if edb.ByName != nil {
		if eq := lookupByName(name, edb, clan); eq != nil {
			return eq
		}
	}
	if alias, ok := weaponNameAliases[name]; ok {
		if alias == "" {
			return nil // known non-weapon
		}
		if eq := lookupByName(alias, edb, clan); eq != nil {
			return eq
		}
	}

	clean := strings.TrimSuffix(name, " (omnipod)")
	if clean != name {
		return lookupWeapon(clean, edb, clan)
	}
	return nil
}

func lookupByName(name string, edb *EquipmentDB, clan bool) *EquipInfo {
	if eqs, ok := edb.ByName[name]; ok && len(eqs) > 0 {
		for _, eq := range eqs {
			isClanEquip := strings.HasPrefix(strings.ToLower(eq.InternalName), "cl")
			if clan == isClanEquip {
				return eq
			}
		}
		return eqs[0]
	}
	return nil
}

func normalizeWeaponForAmmo(weaponName string) string {
	n := strings.ToLower(weaponName)
	n = strings.TrimPrefix(n, "cl ")
	n = strings.TrimPrefix(n, "is ")
	n = strings.Replace(n, "autocannon/", "ac/", 1)
	return n
}

func normalizeAmmoForWeapon(ammoName string) string {
	n := strings.ToLower(ammoName)
	n = strings.TrimPrefix(n, "is ")
	n = strings.TrimPrefix(n, "clan ")
	n = strings.TrimPrefix(n, "cl ")
	n = strings.TrimPrefix(n, "ammo ")
	n = strings.TrimSuffix(n, " ammo")
	n = strings.TrimSuffix(n, " artemis-capable")
	n = strings.TrimSuffix(n, " artemis v-capable")
	n = strings.TrimSuffix(n, " narc-capable")
	return strings.ReplaceAll(n, "-", " ")
}

func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
