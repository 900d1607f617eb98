package ingestion

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

const testerMTF = `Version:1.0
Chassis:Tester
Model:TST-1
Config:Biped
techbase:Inner Sphere
era:3025
source:TRO 3025
rules level:2
mul id:4242

mass:50
engine:200 Fusion Engine(IS)
structure:IS Standard
myomer:Standard
heat sinks:10 Single
walk mp:4
jump mp:0

armor:Standard(Inner Sphere)
LA armor:10
RA armor:12
LT armor:14
RT armor:14
CT armor:20
HD armor:9
LL armor:12
RL armor:12
RTL armor:4
RTR armor:4
RTC armor:6

Weapons:3
2 Medium Laser, Right Arm
Medium Laser (R), Center Torso
LRM 10, Left Torso

Left Arm:
Shoulder
Upper Arm Actuator
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
Medium Laser
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Left Torso:
LRM 10
LRM 10
IS Ammo LRM-10
CASE
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Torso:
Heat Sink
Heat Sink
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Center Torso:
Fusion Engine
Fusion Engine
Fusion Engine
Standard Gyro
Standard Gyro
Standard Gyro
Standard Gyro
Fusion Engine
Fusion Engine
Fusion Engine
Medium Laser (R)
-Empty-

Head:
Life Support
Sensors
Cockpit
-Empty-
Sensors
Life Support

overview: A test design.
`

func TestParseMTFReader(t *testing.T) {
	d, err := ParseMTFReader(strings.NewReader(testerMTF))
	require.NoError(t, err)

	assert.Equal(t, "Tester TST-1", d.FullName())
	assert.Equal(t, 4242, d.MulID)
	assert.Equal(t, 3025, d.Era)
	assert.Equal(t, 2, d.RulesLevel)
	assert.Equal(t, 50, d.Mass)
	assert.Equal(t, 200, d.EngineRating)
	assert.Equal(t, "Fusion Engine(IS)", d.EngineType)
	assert.Equal(t, 10, d.HeatSinkCount)
	assert.Equal(t, "Single", d.HeatSinkType)
	assert.Equal(t, 4, d.WalkMP)
	assert.Equal(t, "Standard(Inner Sphere)", d.ArmorType)
	assert.Equal(t, 6, d.ArmorValues["RTC"])
	assert.Equal(t, 117, d.TotalArmor())
	assert.False(t, d.IsQuad())
	assert.False(t, d.IsClan())

	want := []WeaponEntry{
		{Name: "2 Medium Laser", Location: "Right Arm"},
		{Name: "Medium Laser (R)", Location: "Center Torso"},
		{Name: "LRM 10", Location: "Left Torso"},
	}
	if diff := cmp.Diff(want, d.Weapons); diff != "" {
		t.Errorf("weapons mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, d.LocationEquipment["Left Arm"], 12)
	assert.Len(t, d.LocationEquipment["Head"], 6)
	assert.NotContains(t, d.LocationEquipment, "overview")
}

func TestParseMTFReaderErrors(t *testing.T) {
	_, err := ParseMTFReader(strings.NewReader("mass:50\nwalk mp:4\n"))
	assert.ErrorIs(t, err, ErrMissingChassis)

	_, err = ParseMTF("testdata/does-not-exist.mtf")
	assert.Error(t, err)
}

func TestParseArmorValue(t *testing.T) {
	assert.Equal(t, 26, parseArmorValue("26"))
	assert.Equal(t, 18, parseArmorValue("Reactive(Inner Sphere):18"))
	assert.Zero(t, parseArmorValue("none"))
}

func TestBuildMek(t *testing.T) {
	d, err := ParseMTFReader(strings.NewReader(testerMTF))
	require.NoError(t, err)
	m, err := BuildMek(d)
	require.NoError(t, err)

	assert.Equal(t, "Tester TST-1", m.DisplayName())
	assert.Equal(t, 3025, m.Year)
	assert.Equal(t, tech.LevelStandard, m.RulesLevel)
	assert.Equal(t, entity.EngineFusion, m.EngineType)
	assert.Equal(t, 200, m.EngineRating)
	assert.Equal(t, 10, m.HeatSinks)
	assert.False(t, m.DoubleHeatSinks)

	assert.Equal(t, 20, m.ArmorRemaining(entity.LocCenterTorso, false))
	assert.Equal(t, 6, m.ArmorRemaining(entity.LocCenterTorso, true))
	assert.Equal(t, 4, m.ArmorRemaining(entity.LocLeftTorso, true))
	assert.Equal(t, 117, m.TotalOrigArmor())

	assert.Zero(t, m.GoodCriticals(entity.SystemHand, entity.LocLeftArm))
	assert.Zero(t, m.GoodCriticals(entity.SystemLowerArm, entity.LocLeftArm))
	assert.Equal(t, 1, m.GoodCriticals(entity.SystemHand, entity.LocRightArm))

	counts := map[entity.MountKind]int{}
	var rear, ammo *entity.Mounted
	for _, eq := range m.Equipment {
		counts[eq.Kind]++
		if eq.Kind == entity.MountWeapon && eq.Rear {
			rear = eq
		}
		if eq.Kind == entity.MountAmmo {
			ammo = eq
		}
	}
	assert.Equal(t, 4, counts[entity.MountWeapon])
	assert.Equal(t, 2, counts[entity.MountHeatSink])
	assert.Equal(t, 1, counts[entity.MountCASE])

	require.NotNil(t, rear)
	assert.Equal(t, "Medium Laser", rear.Name)
	assert.Equal(t, entity.LocCenterTorso, rear.Location)

	require.NotNil(t, ammo)
	assert.Equal(t, entity.LocLeftTorso, ammo.Location)
	assert.Equal(t, 12, ammo.Shots)
	assert.Equal(t, 10, ammo.Damage)
	assert.True(t, ammo.Explosive)
}

func TestBuildMekGauss(t *testing.T) {
	slots := []string{"Gauss Rifle", "Gauss Rifle", "Gauss Rifle", "Gauss Rifle", "Gauss Rifle", "Gauss Rifle", "Gauss Rifle", "IS Gauss Ammo", "IS Gauss Ammo"}
	d := &MTFData{
		Chassis:           "Rifleman",
		Model:             "G",
		Mass:              60,
		WalkMP:            4,
		Weapons:           []WeaponEntry{{Name: "Gauss Rifle", Location: "Right Torso"}},
		LocationEquipment: map[string][]string{"Right Torso": slots},
	}
	m, err := BuildMek(d)
	require.NoError(t, err)
	assert.Equal(t, 240, m.EngineRating)

	var weapons, bins []*entity.Mounted
	for _, eq := range m.Equipment {
		switch eq.Kind {
		case entity.MountWeapon:
			weapons = append(weapons, eq)
		case entity.MountAmmo:
			bins = append(bins, eq)
		}
	}
	require.Len(t, weapons, 1)
	assert.True(t, weapons[0].Explosive)
	assert.Equal(t, 20, weapons[0].Damage)
	require.Len(t, bins, 2)
	assert.False(t, bins[0].Explosive)
	assert.Equal(t, 8, bins[0].Shots)
}

func TestBuildMekQuad(t *testing.T) {
	d := &MTFData{
		Chassis: "Scorpion",
		Model:   "SCP-1N",
		Config:  "Quad",
		Mass:    55,
		WalkMP:  6,
		ArmorValues: map[string]int{
			"FLL": 13, "FRL": 13, "RLL": 11, "RRL": 11, "CT": 18, "RTC": 5,
		},
	}
	m, err := BuildMek(d)
	require.NoError(t, err)
	assert.True(t, m.Quad)
	assert.Equal(t, 13, m.ArmorRemaining(entity.LocFrontLeftLeg, false))
	assert.Equal(t, 11, m.ArmorRemaining(entity.LocRearRightLeg, false))
	assert.Equal(t, 5, m.ArmorRemaining(entity.LocCenterTorso, true))
}

func TestBuildMekErrors(t *testing.T) {
	_, err := BuildMek(&MTFData{Chassis: "Nothing"})
	assert.ErrorIs(t, err, ErrNoMass)

	d := &MTFData{
		Chassis:           "Crammed",
		Mass:              50,
		WalkMP:            4,
		Weapons:           []WeaponEntry{{Name: "Large Laser", Location: "Head"}},
		LocationEquipment: map[string][]string{"Head": {"Large Laser", "Large Laser"}},
	}
	_, err = BuildMek(d)
	assert.ErrorIs(t, err, entity.ErrNoRoom)
}

func TestAmmoStats(t *testing.T) {
	tests := []struct {
		name      string
		shots     int
		damage    int
		explosive bool
	}{
		{"IS Ammo AC/5", 20, 5, true},
		{"IS Ammo AC/20", 5, 20, true},
		{"IS Ammo LRM-15", 8, 15, true},
		{"ISLRM20 Ammo", 6, 20, true},
		{"Clan Ammo SRM-6", 15, 12, true},
		{"IS Ammo MG - Full", 200, 2, true},
		{"IS Gauss Ammo", 8, 0, false},
		{"IS Ammo Mystery", 10, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shots, dmg, explosive := ammoStats(tt.name)
			assert.Equal(t, tt.shots, shots)
			assert.Equal(t, tt.damage, dmg)
			assert.Equal(t, tt.explosive, explosive)
		})
	}
}
