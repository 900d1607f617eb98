package entity

import (
	"strings"

	"github.com/JustinWhittecar/mekcore/internal/tech"
)

type EngineType int

const (
	EngineFusion EngineType = iota
	EngineXL
	EngineLight
	EngineXXL
	EngineCompact
	EngineICE
)

var engineNames = []string{"Fusion", "XL", "Light", "XXL", "Compact", "ICE"}

func (t EngineType) String() string { return engineNames[t] }

// ParseEngineType reads the engine line of a unit file, e.g. "300 XL (Clan) Engine".
func ParseEngineType(s string) EngineType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "xxl"):
		return EngineXXL
	case strings.Contains(lower, "xl"):
		return EngineXL
	case strings.Contains(lower, "light"):
		return EngineLight
	case strings.Contains(lower, "compact"):
		return EngineCompact
	case strings.Contains(lower, "ice"), strings.Contains(lower, "fuel cell"), strings.Contains(lower, "fuel-cell"):
		return EngineICE
	default:
		return EngineFusion
	}
}

// sideTorsoSlots is how many engine slots sit in each side torso.
func (t EngineType) sideTorsoSlots(clan bool) int {
	switch t {
	case EngineXL:
		if clan {
			return 2
		}
		return 3
	case EngineLight:
		return 2
	case EngineXXL:
		if clan {
			return 4
		}
		return 6
	}
	return 0
}

func (t EngineType) advancement() *tech.Advancement {
	switch t {
	case EngineXL:
		return tech.XLEngine
	case EngineLight:
		return tech.LightEngine
	case EngineXXL:
		return tech.XXLEngine
	case EngineCompact:
		return tech.CompactEngine
	case EngineICE:
		return tech.ICEngine
	default:
		return tech.FusionEngine
	}
}

type GyroType int

const (
	GyroStandard GyroType = iota
	GyroXL
	GyroCompact
	GyroHeavyDuty
)

var gyroNames = []string{"Standard", "XL", "Compact", "Heavy-Duty"}

func (g GyroType) String() string { return gyroNames[g] }

func ParseGyroType(s string) GyroType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "heavy"):
		return GyroHeavyDuty
	case strings.Contains(lower, "compact"):
		return GyroCompact
	case strings.Contains(lower, "xl"):
		return GyroXL
	default:
		return GyroStandard
	}
}

func (g GyroType) slots() int {
	switch g {
	case GyroXL:
		return 6
	case GyroCompact:
		return 2
	default:
		return 4
	}
}

// destroyedAt is the number of gyro hits that knocks out the gyro.
func (g GyroType) destroyedAt() int {
	if g == GyroHeavyDuty {
		return 3
	}
	return 2
}

type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitSmall
	CockpitTorsoMounted
	CockpitIndustrial
	CockpitIndustrialAFC
	CockpitCommandConsole
)

var cockpitNames = []string{"Standard", "Small", "Torso-Mounted", "Industrial", "Industrial (AFC)", "Command Console"}

func (c CockpitType) String() string { return cockpitNames[c] }

func ParseCockpitType(s string) CockpitType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "small"):
		return CockpitSmall
	case strings.Contains(lower, "torso"):
		return CockpitTorsoMounted
	case strings.Contains(lower, "industrial") && strings.Contains(lower, "adv"):
		return CockpitIndustrialAFC
	case strings.Contains(lower, "industrial"):
		return CockpitIndustrial
	case strings.Contains(lower, "command"):
		return CockpitCommandConsole
	default:
		return CockpitStandard
	}
}

// CanEject reports whether the cockpit has an ejection system.
func (c CockpitType) CanEject() bool {
	return c != CockpitIndustrial && c != CockpitIndustrialAFC
}

type MyomerType int

const (
	MyomerStandard MyomerType = iota
	MyomerTSM
	MyomerIndustrialTSM
)

func ParseMyomerType(s string) MyomerType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "industrial"):
		return MyomerIndustrialTSM
	case strings.Contains(lower, "triple"), strings.Contains(lower, "tsm"):
		return MyomerTSM
	default:
		return MyomerStandard
	}
}

type StructureType int

const (
	StructureStandard StructureType = iota
	StructureEndoSteel
	StructureReinforced
	StructureComposite
	StructureIndustrial
)

var structureNames = []string{"Standard", "Endo Steel", "Reinforced", "Composite", "Industrial"}

func (s StructureType) String() string { return structureNames[s] }

func ParseStructureType(s string) StructureType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "endo"):
		return StructureEndoSteel
	case strings.Contains(lower, "reinforced"):
		return StructureReinforced
	case strings.Contains(lower, "composite"):
		return StructureComposite
	case strings.Contains(lower, "industrial"):
		return StructureIndustrial
	default:
		return StructureStandard
	}
}

func (s StructureType) advancement() *tech.Advancement {
	switch s {
	case StructureEndoSteel:
		return tech.EndoSteel
	case StructureReinforced:
		return tech.ReinforcedStructure
	case StructureComposite:
		return tech.CompositeStructure
	default:
		return tech.StandardStructure
	}
}

// internalDamage scales damage that reaches the structure.
func (s StructureType) internalDamage(dmg int) int {
	switch s {
	case StructureReinforced:
		return (dmg + 1) / 2
	case StructureComposite:
		return dmg * 2
	}
	return dmg
}
