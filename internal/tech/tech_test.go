package tech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXLEngineExtinction(t *testing.T) {
	tests := []struct {
		year      int
		clan      bool
		available bool
	}{
		{2500, false, false}, // not yet
		{2600, false, true},
		{3025, false, false}, // lost after the Star League
		{3035, false, true},  // recovered
		{3025, true, true},
		{2800, true, false},
	}
	for _, tt := range tests {
		if got := XLEngine.IsAvailableIn(tt.year, tt.clan); got != tt.available {
			t.Errorf("XLEngine.IsAvailableIn(%d, clan=%v) = %v, want %v", tt.year, tt.clan, got, tt.available)
		}
	}
	assert.True(t, XLEngine.IsExtinct(2900, false))
	assert.False(t, XLEngine.IsExtinct(3040, false))
}

func TestLevelIn(t *testing.T) {
	tests := []struct {
		name string
		adv  *Advancement
		year int
		want Level
		ok   bool
	}{
		{"before intro", LightEngine, 3050, LevelExperimental, false},
		{"prototype", LightEngine, 3058, LevelExperimental, true},
		{"production", LightEngine, 3065, LevelAdvanced, true},
		{"common", LightEngine, 3070, LevelStandard, true},
		{"introductory stays introductory", FusionEngine, 3025, LevelIntroductory, true},
		{"advanced static", ReinforcedStructure, 3100, LevelAdvanced, true},
		{"experimental static", XXLEngine, 3140, LevelExperimental, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.adv.LevelIn(tt.year, false)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestUnofficial(t *testing.T) {
	a := &Advancement{IS: Dates{Production: 3000, Common: 3000}, Unofficial: true}
	l, ok := a.LevelIn(3050, false)
	assert.True(t, ok)
	assert.Equal(t, LevelUnofficial, l)
}

func TestAvailabilityIn(t *testing.T) {
	assert.Equal(t, AvailD, XLEngine.AvailabilityIn(2700, false))
	assert.Equal(t, AvailX, XLEngine.AvailabilityIn(2900, false))
	assert.Equal(t, AvailE, XLEngine.AvailabilityIn(3060, false))
	assert.Equal(t, "X", AvailX.String())
	assert.Equal(t, "E", RatingE.String())
}

func TestCombineOrderIndependent(t *testing.T) {
	a := Combine(MekChassis, XLEngine, TSM)
	b := Combine(TSM, nil, MekChassis, XLEngine)

	assert.Equal(t, a.Rating, b.Rating)
	assert.Equal(t, a.Availability, b.Availability)
	assert.Equal(t, a.StaticLevel, b.StaticLevel)
	assert.Equal(t, a.IntroDate(false), b.IntroDate(false))
	assert.Equal(t, 3, b.Len())

	assert.Equal(t, 3028, a.IntroDate(false))
	assert.False(t, a.IsAvailableIn(3025, false))
	assert.True(t, a.IsAvailableIn(3055, false))

	lvl, ok := a.LevelIn(3055, false)
	assert.True(t, ok)
	assert.Equal(t, LevelStandard, lvl)

	lvl, ok = a.LevelIn(3040, false)
	assert.True(t, ok)
	assert.Equal(t, LevelExperimental, lvl) // TSM still a prototype
	_, ok = a.LevelIn(3020, false)
	assert.False(t, ok)
}

func TestAvailabilityEra(t *testing.T) {
	assert.Equal(t, EraStarLeague, AvailabilityEra(2750))
	assert.Equal(t, EraSuccessionWars, AvailabilityEra(3025))
	assert.Equal(t, EraClan, AvailabilityEra(3067))
	assert.Equal(t, EraDarkAge, AvailabilityEra(3145))
}
