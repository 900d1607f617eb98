package transport

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestFindBay(t *testing.T) {
	var m Manifest
	m.AddBay(BayFighter, 2, 1)
	m.AddBay(BayMek, 1, 1)
	m.AddBay(BayMek, 1, 1)

	a, b, c := mek(), mek(), mek()
	n, err := m.Load(a)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = m.Load(b)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// both mek bays are full; the full-bay error wins over the fighter bay mismatch
	_, err = m.Load(c)
	assert.ErrorIs(t, err, ErrNoSpace)

	_, err = m.Load(a)
	assert.ErrorIs(t, err, ErrAlreadyLoaded)

	assert.Equal(t, 2.0, m.Capacity(BayMek))
	assert.Equal(t, 0.0, m.Unused(BayMek))
	assert.Equal(t, 2.0, m.Unused(BayFighter))
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, m.LoadedIDs())

	_, err = m.Unload(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Unused(BayMek))
	_, err = m.Unload(a.ID)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestManifestNoBays(t *testing.T) {
	var m Manifest
	_, err := m.FindBay(mek())
	assert.ErrorIs(t, err, ErrIncompatible)
}

func TestDockingCollars(t *testing.T) {
	m := Manifest{DockingCollars: 2}
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, m.Dock(a))
	assert.ErrorIs(t, m.Dock(a), ErrAlreadyLoaded)
	require.NoError(t, m.Dock(b))
	assert.ErrorIs(t, m.Dock(c), ErrNoSpace)
	assert.Equal(t, 2, m.Docked())

	released, ok := m.DamageCollar()
	assert.True(t, ok)
	assert.Equal(t, b, released)
	assert.Equal(t, 1, m.Docked())

	require.NoError(t, m.Undock(a))
	assert.ErrorIs(t, m.Undock(a), ErrNotLoaded)
}

func TestTroopBay(t *testing.T) {
	b := NewTroopBay(2.5)
	assert.Equal(t, 25.0, b.Capacity)
	require.NoError(t, b.Load(Loadable{ID: uuid.New(), Kind: KindInfantry, Persons: 21}))
	assert.ErrorIs(t, b.Load(Loadable{ID: uuid.New(), Kind: KindInfantry, Persons: 5}), ErrNoSpace)
	assert.ErrorIs(t, b.Load(mek()), ErrIncompatible)
}
