package transport

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mek() Loadable { return Loadable{ID: uuid.New(), Kind: KindMek, Weight: 55} }

func vehicle(tons float64) Loadable {
	return Loadable{ID: uuid.New(), Kind: KindVehicle, Weight: tons}
}

func TestBayLoadUnload(t *testing.T) {
	b := NewBay(1, BayMek, 2, 1)
	a, c := mek(), mek()

	require.NoError(t, b.Load(a))
	assert.ErrorIs(t, b.Load(a), ErrAlreadyLoaded)
	require.NoError(t, b.Load(c))
	assert.Equal(t, 0.0, b.Unused())

	err := b.Load(mek())
	assert.ErrorIs(t, err, ErrNoSpace)

	got, err := b.Unload(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 1.0, b.Unused())
	assert.Equal(t, []Loadable{c}, b.Loaded())

	_, err = b.Unload(a.ID)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestVehicleBayWeightClass(t *testing.T) {
	tests := []struct {
		bay  BayType
		tons float64
		ok   bool
	}{
		{BayLightVehicle, 50, true},
		{BayLightVehicle, 55, false},
		{BayHeavyVehicle, 100, true},
		{BayHeavyVehicle, 105, false},
		{BaySuperHeavyVehicle, 200, true},
		{BaySuperHeavyVehicle, 201, false},
	}
	for _, tt := range tests {
		b := NewBay(1, tt.bay, 4, 1)
		if got := b.CanLoad(vehicle(tt.tons)); got != tt.ok {
			t.Errorf("%s bay CanLoad(%v t) = %v, want %v", tt.bay, tt.tons, got, tt.ok)
		}
	}
}

func TestBayIncompatible(t *testing.T) {
	b := NewBay(1, BayFighter, 2, 1)
	err := b.Load(mek())
	assert.ErrorIs(t, err, ErrIncompatible)

	sc := NewBay(2, BaySmallCraft, 2, 1)
	assert.True(t, sc.CanLoad(Loadable{ID: uuid.New(), Kind: KindFighter}))
}

func TestCargoAndInfantryCapacity(t *testing.T) {
	cargo := NewBay(1, BayCargo, 100, 1)
	require.NoError(t, cargo.Load(Loadable{ID: uuid.New(), Kind: KindCargo, Weight: 60}))
	assert.Equal(t, 40.0, cargo.Unused())
	assert.ErrorIs(t, cargo.Load(Loadable{ID: uuid.New(), Kind: KindCargo, Weight: 41}), ErrNoSpace)

	inf := NewBay(2, BayInfantry, 28, 1)
	require.NoError(t, inf.Load(Loadable{ID: uuid.New(), Kind: KindInfantry, Persons: 21}))
	assert.Equal(t, 7.0, inf.Unused())
}

func TestBayDamage(t *testing.T) {
	b := NewBay(1, BayMek, 4, 2)
	assert.Equal(t, 4, b.LaunchRate())

	b.DamageDoor()
	assert.Equal(t, 2, b.LaunchRate())
	b.DamageDoor()
	b.DamageDoor()
	assert.Equal(t, 2, b.DamagedDoors)
	assert.Equal(t, 0, b.LaunchRate())
	assert.ErrorIs(t, b.Load(mek()), ErrNoDoors)

	b.DamagedDoors = 0
	b.DamageCapacity(3)
	assert.Equal(t, 1.0, b.Unused())
	b.DamageCapacity(10)
	assert.Equal(t, 4.0, b.Damaged)
	assert.Equal(t, 0.0, b.Unused())
}

func TestLaunchRate(t *testing.T) {
	b := NewBay(1, BayFighter, 4, 1)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		l := Loadable{ID: uuid.New(), Kind: KindFighter, Weight: 50}
		require.NoError(t, b.Load(l))
		ids = append(ids, l.ID)
	}
	_, err := b.Launch(ids[0])
	require.NoError(t, err)
	_, err = b.Launch(ids[1])
	require.NoError(t, err)
	_, err = b.Launch(ids[2])
	assert.True(t, errors.Is(err, ErrNoDoors))

	b.ResetTurn()
	_, err = b.Launch(ids[2])
	assert.NoError(t, err)
}
