package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/rules"
)

const hunterMTF = `chassis:Hunter
model:HNT-2
config:Biped
techbase:Inner Sphere
era:3025
rules level:1
mass:50
engine:250 Fusion Engine
heat sinks:10 Single
walk mp:5
jump mp:0
armor:Standard(Inner Sphere)

Weapons:1
Medium Laser, Right Arm

Right Arm:
Shoulder
Upper Arm Actuator
Medium Laser
`

func testDB() *bvcalc.EquipmentDB {
	return bvcalc.NewEquipmentDB(bvcalc.EquipInfo{
		Name: "Medium Laser", InternalName: "ISMediumLaser", Type: "weapon", BV: 46, Heat: 3,
	})
}

func intp(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	m := entity.NewBipedMek("Hunter", "HNT-2", 50, 5, 3)
	require.NoError(t, m.SetArmor(entity.LocCenterTorso, 20, 6))
	m.Heat = 15

	s := Summarize(m, 1024, 0)
	assert.Equal(t, "Hunter HNT-2", s.Name)
	assert.Equal(t, "Mek", s.UnitType)
	assert.Equal(t, "Inner Sphere", s.TechBase)
	assert.Equal(t, 50.0, s.Tonnage)
	assert.Equal(t, 5, s.WalkMP, "printed movement ignores current heat")
	assert.Equal(t, 8, s.RunMP)
	assert.Equal(t, 26, s.ArmorTotal)
	assert.Equal(t, m.TotalOrigInternal(), s.InternalTotal)
	assert.Equal(t, m.GenericBattleValue(), s.GenericBV)
	assert.Equal(t, rules.EraForYear(m.Year), s.Era)
	assert.Equal(t, m.ID.String(), s.UUID)
	require.NotNil(t, s.BV)
	assert.Equal(t, 1024, *s.BV)

	assert.Nil(t, Summarize(m, 0, 0).BV)
}

func TestSummarizeVehicle(t *testing.T) {
	v := entity.NewTank("Scorpion", "Light Tank", 25, 4, entity.ModeTracked, true)
	s := Summarize(v, 0, 3050)
	assert.Equal(t, "Tank", s.UnitType)
	assert.Equal(t, 4, s.WalkMP)
	assert.Equal(t, 6, s.RunMP)
	assert.Zero(t, s.JumpMP)
}

func TestEvaluate(t *testing.T) {
	resp, err := Evaluate(context.Background(), models.EvaluateRequest{MTF: hunterMTF}, testDB())
	require.NoError(t, err)
	assert.Equal(t, "Hunter HNT-2", resp.Name)
	assert.Equal(t, 5, resp.WalkMP)
	assert.Equal(t, 8, resp.RunMP)
	assert.Equal(t, 5, resp.PilotingTarget)
	assert.Equal(t, 326, resp.BV)
	assert.Equal(t, 326, resp.AdjustedBV, "regular crew keeps base BV")
	assert.False(t, resp.Crippled)
	assert.Empty(t, resp.Warnings)
}

func TestEvaluateConditions(t *testing.T) {
	c := rules.DefaultConditions()
	c.Gravity = 2
	req := models.EvaluateRequest{
		MTF:        hunterMTF,
		Conditions: &c,
		Heat:       5,
		Gunnery:    intp(3),
		Piloting:   intp(4),
	}
	resp, err := Evaluate(context.Background(), req, testDB())
	require.NoError(t, err)
	// heat 5 costs one MP, then high gravity halves the rest
	assert.Equal(t, 2, resp.WalkMP)
	assert.Equal(t, 4, resp.PilotingTarget)
	assert.Equal(t, bvcalc.Adjusted(resp.BV, 3, 4), resp.AdjustedBV)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		req  models.EvaluateRequest
	}{
		{"empty", models.EvaluateRequest{MTF: "  \n"}},
		{"negative heat", models.EvaluateRequest{MTF: hunterMTF, Heat: -1}},
		{"zero gravity", models.EvaluateRequest{MTF: hunterMTF, Conditions: &rules.Conditions{}}},
		{"no chassis", models.EvaluateRequest{MTF: "mass:50\nwalk mp:4\n"}},
		{"no mass", models.EvaluateRequest{MTF: "chassis:Ghost\nwalk mp:4\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(context.Background(), tt.req, testDB())
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestEvaluateUnknownWeapon(t *testing.T) {
	mtf := strings.Replace(hunterMTF, "Medium Laser", "Mystery Cannon", -1)
	resp, err := Evaluate(context.Background(), models.EvaluateRequest{MTF: mtf}, testDB())
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Mystery Cannon")
}
