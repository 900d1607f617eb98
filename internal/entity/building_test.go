package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/rules/rulestest"
)

func depot() *Building {
	return NewBuilding("Depot", BuildingMedium, ClassStandard, Hex{1, 0}, Hex{0, 1}, Hex{0, 0}, Hex{1, 0})
}

func TestNewBuilding(t *testing.T) {
	b := depot()
	require.Equal(t, 3, b.LocationCount())
	assert.Equal(t, "0,0", b.Locations[0].Abbr)
	assert.Equal(t, "1,0", b.Locations[1].Abbr)
	assert.Equal(t, "0,1", b.Locations[2].Abbr)
	assert.Equal(t, 40, b.Sections[Hex{0, 1}].CurrentCF)
	assert.Equal(t, 12, b.GenericBattleValue())
	assert.Zero(t, b.WalkMP(calm, MPOptions{}))
	assert.Equal(t, rules.Impossible, b.PilotingRoll().Value())
}

func TestBuildingSetCF(t *testing.T) {
	b := NewBuilding("Bunker", BuildingHardened, ClassFortress, Hex{})
	require.NoError(t, b.SetCF(Hex{}, 200))
	assert.Equal(t, 150, b.Sections[Hex{}].OrigCF)
	assert.Equal(t, 150, b.InternalRemaining(0))

	err := b.SetCF(Hex{5, 5}, 10)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestDamageSection(t *testing.T) {
	b := depot()
	s := b.Sections[Hex{0, 0}]
	s.Armor = 5

	collapsed, err := b.DamageSection(Hex{0, 0}, 25)
	require.NoError(t, err)
	assert.False(t, collapsed)
	assert.Zero(t, s.Armor)
	assert.Equal(t, 20, s.PhaseCF)
	assert.Equal(t, 40, s.CurrentCF, "current CF settles at the end of the phase")

	b.EndPhase()
	assert.Equal(t, 20, s.CurrentCF)

	collapsed, err = b.DamageSection(Hex{0, 0}, 30)
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.True(t, b.Locations[0].Destroyed)
	assert.False(t, b.IsDestroyed())

	_, err = b.DamageSection(Hex{9, 9}, 1)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestBuildingHitsStandingSections(t *testing.T) {
	b := depot()
	_, err := b.DamageSection(Hex{0, 0}, 100)
	require.NoError(t, err)

	// only 1,0 and 0,1 remain; pick the second
	hit := b.RollHitLocation(rulestest.NewDice().Pick(1), SideFront)
	assert.Equal(t, 2, hit.Location)

	rep := b.ApplyDamage(rulestest.NewDice(), hit, 15)
	assert.Equal(t, []LocationDamage{{Location: "0,1", Internal: 15}}, rep.Applied)
	assert.Equal(t, 25, b.InternalRemaining(2))
}

func TestBuildingDestroyedAndCrippled(t *testing.T) {
	b := depot()
	assert.False(t, b.IsCrippled())

	b.ApplyDamage(rulestest.NewDice(), HitData{Location: 0}, 40)
	b.ApplyDamage(rulestest.NewDice(), HitData{Location: 1}, 20)
	assert.True(t, b.IsCrippled())
	assert.False(t, b.IsDestroyed())

	b.ApplyDamage(rulestest.NewDice(), HitData{Location: 1}, 20)
	rep := b.ApplyDamage(rulestest.NewDice(), HitData{Location: 2}, 50)
	assert.True(t, rep.UnitDestroyed)
	assert.True(t, b.IsDestroyed())
}

func TestBuildingSupport(t *testing.T) {
	b := depot()
	assert.True(t, b.CanSupport(Hex{0, 0}, 40))
	assert.False(t, b.CanSupport(Hex{0, 0}, 55))
	assert.False(t, b.CanSupport(Hex{3, 3}, 5))

	hangar := NewBuilding("Hangar", BuildingMedium, ClassHangar, Hex{})
	assert.True(t, hangar.CanSupport(Hex{}, 80))

	assert.Equal(t, 0.5, b.DamageScale())
	assert.Zero(t, BuildingHardened.DamageScale())
}
