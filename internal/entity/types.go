// Package entity is the unit model: Meks, vehicles, aerospace fighters,
// WarShips, buildings and the crews that bail out of them. Each kind
// implements Unit so the rest of the code can move, damage and value
// them without knowing the concrete type.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrNoRoom          = errors.New("not enough free critical slots")
	ErrCrewDead        = errors.New("crew is dead")
	ErrAlreadyEjected  = errors.New("crew already ejected")
	ErrCannotEject     = errors.New("cockpit has no ejection system")
)

type UnitType int

const (
	TypeMek UnitType = iota
	TypeTank
	TypeAero
	TypeWarship
	TypeBuilding
	TypeEscapePod
	TypeEjectedCrew
)

var unitTypeNames = []string{"Mek", "Tank", "Aero", "Warship", "Building", "Escape Pod", "Ejected Crew"}

func (t UnitType) String() string {
	if int(t) < 0 || int(t) >= len(unitTypeNames) {
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
	return unitTypeNames[t]
}

type TechBase int

const (
	TechInnerSphere TechBase = iota
	TechClan
	TechMixed
)

func (t TechBase) String() string {
	switch t {
	case TechClan:
		return "Clan"
	case TechMixed:
		return "Mixed"
	default:
		return "Inner Sphere"
	}
}

// ParseTechBase accepts the spellings found in unit files.
func ParseTechBase(s string) TechBase {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "mixed"):
		return TechMixed
	case strings.Contains(lower, "clan"):
		return TechClan
	default:
		return TechInnerSphere
	}
}

type MovementMode int

const (
	ModeBiped MovementMode = iota
	ModeQuad
	ModeTracked
	ModeWheeled
	ModeHover
	ModeVTOL
	ModeAerodyne
	ModeSpheroid
	ModeImmobile
	ModeFoot
)

var modeNames = []string{"Biped", "Quad", "Tracked", "Wheeled", "Hover", "VTOL", "Aerodyne", "Spheroid", "Immobile", "Foot"}

func (m MovementMode) String() string {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("MovementMode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMovementMode(s string) (MovementMode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return MovementMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown movement mode %q", s)
}

// Side is the direction an attack comes from, relative to the target.
type Side int

const (
	SideFront Side = iota
	SideLeft
	SideRight
	SideRear
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideRear:
		return "rear"
	default:
		return "front"
	}
}

type System int

const (
	SystemEngine System = iota
	SystemGyro
	SystemCockpit
	SystemSensors
	SystemLifeSupport
	SystemShoulder
	SystemUpperArm
	SystemLowerArm
	SystemHand
	SystemHip
	SystemUpperLeg
	SystemLowerLeg
	SystemFoot
)

var systemNames = []string{
	"Engine", "Gyro", "Cockpit", "Sensors", "Life Support",
	"Shoulder", "Upper Arm Actuator", "Lower Arm Actuator", "Hand Actuator",
	"Hip", "Upper Leg Actuator", "Lower Leg Actuator", "Foot Actuator",
}

func (s System) String() string {
	if int(s) < 0 || int(s) >= len(systemNames) {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systemNames[s]
}

func (s System) isLegActuator() bool {
	return s == SystemUpperLeg || s == SystemLowerLeg || s == SystemFoot
}

// ParseSystem maps a critical slot label to a system. ok is false for
// equipment and empty slots.
func ParseSystem(label string) (System, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "engine"):
		return SystemEngine, true
	case strings.Contains(l, "gyro"):
		return SystemGyro, true
	case strings.Contains(l, "cockpit"):
		return SystemCockpit, true
	case l == "sensors":
		return SystemSensors, true
	case l == "life support":
		return SystemLifeSupport, true
	case l == "shoulder":
		return SystemShoulder, true
	case strings.HasPrefix(l, "upper arm"):
		return SystemUpperArm, true
	case strings.HasPrefix(l, "lower arm"):
		return SystemLowerArm, true
	case strings.HasPrefix(l, "hand"):
		return SystemHand, true
	case l == "hip":
		return SystemHip, true
	case strings.HasPrefix(l, "upper leg"):
		return SystemUpperLeg, true
	case strings.HasPrefix(l, "lower leg"):
		return SystemLowerLeg, true
	case strings.HasPrefix(l, "foot"):
		return SystemFoot, true
	}
	return 0, false
}
