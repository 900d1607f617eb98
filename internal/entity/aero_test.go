package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/rules/rulestest"
)

func TestAeroThrust(t *testing.T) {
	a := NewAero("Stuka", "STU-K5", 100, 5, 5, 400)
	assert.Equal(t, 5, a.WalkMP(calm, MPOptions{}))
	assert.Equal(t, 8, a.RunMP(calm, MPOptions{}))

	tornado := calm
	tornado.Wind = rules.WindTornado
	assert.Equal(t, 2, a.WalkMP(tornado, MPOptions{}))
	tornado.Space = true
	assert.Equal(t, 5, a.WalkMP(tornado, MPOptions{}))

	a.EngineHits = 1
	a.CargoMPReduction = 1
	assert.Equal(t, 2, a.WalkMP(calm, MPOptions{}))

	a.Fuel = 0
	assert.Zero(t, a.WalkMP(calm, MPOptions{}))
}

func TestAeroHitLocation(t *testing.T) {
	a := NewAero("Test", "A", 50, 6, 6, 400)
	tests := []struct {
		side Side
		roll int
		want HitData
	}{
		{SideFront, 7, HitData{Location: AeroNose, Side: SideFront}},
		{SideFront, 12, HitData{Location: AeroNose, Critical: true, Side: SideFront}},
		{SideRight, 2, HitData{Location: AeroRightWing, Critical: true, Side: SideRight}},
		{SideLeft, 7, HitData{Location: AeroLeftWing, Side: SideLeft}},
		{SideRear, 9, HitData{Location: AeroLeftWing, Side: SideRear}},
	}
	for _, tt := range tests {
		got := a.RollHitLocation(rulestest.NewDice().Roll2d6(tt.roll), tt.side)
		assert.Equal(t, tt.want, got, "%s roll %d", tt.side, tt.roll)
	}
}

func TestAeroDamageThreshold(t *testing.T) {
	a := NewAero("Test", "A", 50, 6, 5, 400)
	require.NoError(t, a.SetArmor(AeroNose, 30, 0))
	assert.Equal(t, 3, a.DamageThreshold(AeroNose))
	assert.Equal(t, 1, a.DamageThreshold(AeroAft))

	// at the threshold: no critical
	rep := a.ApplyDamage(rulestest.NewDice(), HitData{Location: AeroNose}, 3)
	assert.Equal(t, 27, a.ArmorRemaining(AeroNose, false))
	assert.Empty(t, rep.Crits)

	d := rulestest.NewDice().Roll2d6(10)
	rep = a.ApplyDamage(d, HitData{Location: AeroNose}, 4)
	require.Len(t, rep.Crits, 1)
	assert.Equal(t, "engine", rep.Crits[0].Effect)
	assert.Equal(t, 4, a.WalkMP(calm, MPOptions{}))
	assert.False(t, a.IsCrippled())
}

func TestAeroStructuralIntegrity(t *testing.T) {
	a := NewAero("Test", "A", 50, 6, 5, 400)
	d := rulestest.NewDice().Roll2d6(12)
	rep := a.ApplyDamage(d, HitData{Location: AeroLeftWing}, 3)

	assert.Equal(t, 2, a.SI)
	assert.Equal(t, 2, a.InternalRemaining(AeroFuselage))
	assert.True(t, a.Locations[AeroLeftWing].Breached)
	assert.Equal(t, 360, a.Fuel)
	assert.Equal(t, "fuel tank", rep.Crits[0].Effect)
	assert.True(t, a.IsCrippled())
	assert.False(t, a.IsDestroyed())

	rep = a.ApplyDamage(rulestest.NewDice().Roll2d6(5), HitData{Location: AeroAft}, 9)
	assert.Zero(t, a.SI)
	assert.True(t, rep.UnitDestroyed)
}

func TestAeroPilotingRoll(t *testing.T) {
	a := NewAero("Test", "A", 50, 6, 5, 400)
	assert.Equal(t, 5, a.PilotingRoll().Value())
	a.AvionicsHits = 3
	a.LandingGearHit = true
	assert.Equal(t, 11, a.PilotingRoll().Value())
	a.Crew.Unconscious = true
	assert.Equal(t, rules.AutomaticFail, a.PilotingRoll().Value())
}

func TestAeroGenericBattleValue(t *testing.T) {
	assert.Equal(t, 959, NewAero("Test", "A", 50, 6, 5, 400).GenericBattleValue())
}

func newCruiser() *Warship {
	w := NewWarship("Aegis", "Heavy Cruiser", 750000, 3, 40, 10, 2)
	w.CrewSize = 95
	for i := 0; i < ShipLeftBroadside; i++ {
		_ = w.SetArmor(i, 50, 0)
	}
	return w
}

func TestWarshipHitLocation(t *testing.T) {
	w := newCruiser()
	assert.Equal(t, HitData{Location: ShipNose, Critical: true, Side: SideFront},
		w.RollHitLocation(rulestest.NewDice().Roll2d6(2), SideFront))
	assert.Equal(t, HitData{Location: ShipAftLeft, Side: SideLeft},
		w.RollHitLocation(rulestest.NewDice().Roll2d6(7), SideLeft))
	assert.Equal(t, HitData{Location: ShipAft, Side: SideRight},
		w.RollHitLocation(rulestest.NewDice().Roll2d6(11), SideRight))
	assert.Equal(t, HitData{Location: ShipAftLeft, Side: SideRear},
		w.RollHitLocation(rulestest.NewDice().Roll2d6(9), SideRear))
}

func TestWarshipCriticals(t *testing.T) {
	t.Run("K-F drive", func(t *testing.T) {
		w := newCruiser()
		w.KFIntegrity = 1
		rep := w.ApplyDamage(rulestest.NewDice().Roll2d6(11), HitData{Location: ShipNose}, 6)
		assert.Equal(t, "K-F drive", rep.Crits[0].Effect)
		assert.True(t, w.KFDriveDamaged)
		assert.True(t, w.IsCrippled())
	})

	t.Run("docking collar", func(t *testing.T) {
		w := newCruiser()
		require.NoError(t, w.Transports.Dock(uuid.New()))
		w.ApplyDamage(rulestest.NewDice().Roll2d6(12), HitData{Location: ShipNose}, 6)
		assert.Equal(t, 1, w.Transports.DockingCollars)
		assert.Equal(t, 1, w.Transports.Docked())
		assert.Equal(t, 95, w.CrewSize)
	})

	t.Run("crew casualties without collars", func(t *testing.T) {
		w := newCruiser()
		w.Transports.DockingCollars = 0
		w.ApplyDamage(rulestest.NewDice().Roll2d6(12), HitData{Location: ShipNose}, 6)
		assert.Equal(t, 85, w.CrewSize)
	})

	t.Run("engine", func(t *testing.T) {
		w := newCruiser()
		w.EngineHits = 3
		rep := w.ApplyDamage(rulestest.NewDice().Roll2d6(10), HitData{Location: ShipNose}, 6)
		assert.True(t, rep.UnitDestroyed)
	})

	t.Run("below threshold", func(t *testing.T) {
		w := newCruiser()
		rep := w.ApplyDamage(rulestest.NewDice(), HitData{Location: ShipNose}, 5)
		assert.Empty(t, rep.Crits)
		assert.Equal(t, 45, w.ArmorRemaining(ShipNose, false))
		assert.Equal(t, 40, w.SI)
	})
}

func TestWarshipThrust(t *testing.T) {
	w := newCruiser()
	assert.Equal(t, 3, w.WalkMP(calm, MPOptions{}))
	assert.Equal(t, 5, w.RunMP(calm, MPOptions{}))
	w.EngineHits = 1
	assert.Equal(t, 2, w.WalkMP(calm, MPOptions{}))
	assert.Equal(t, 1399613, w.GenericBattleValue())
}

func TestLaunchEscapePods(t *testing.T) {
	w := newCruiser()
	w.CrewSize = 20
	w.EscapePods = 5
	w.Crew.Piloting = 3

	pods := w.LaunchEscapePods(4)
	require.Len(t, pods, 3)
	sizes := []int{}
	for _, p := range pods {
		sizes = append(sizes, p.Crew.Size)
		assert.Equal(t, w.ID, p.Origin)
		assert.Equal(t, 3, p.Crew.Piloting)
		assert.False(t, p.Lifeboat)
	}
	assert.Equal(t, []int{7, 7, 6}, sizes)
	assert.Equal(t, 2, w.EscapePods)
	assert.Zero(t, w.CrewSize)
	assert.Equal(t, rules.AutomaticFail, w.PilotingRoll().Value())

	assert.Empty(t, w.LaunchEscapePods(1))
}

func TestLaunchLifeboats(t *testing.T) {
	w := newCruiser()
	w.CrewSize = 10
	w.Lifeboats = 1

	boats := w.LaunchLifeboats(3)
	require.Len(t, boats, 1)
	assert.True(t, boats[0].Lifeboat)
	assert.Equal(t, 6, boats[0].Crew.Size)
	assert.Equal(t, 4, w.CrewSize)
	assert.Zero(t, w.Lifeboats)
}
