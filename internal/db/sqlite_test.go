package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/models"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func intp(v int) *int { return &v }

func seed(t *testing.T, c *Catalog) []models.UnitSummary {
	t.Helper()
	units := []models.UnitSummary{
		{UUID: "a", Chassis: "Atlas", Model: "AS7-D", Name: "Atlas AS7-D", UnitType: "Mek", Tonnage: 100,
			TechBase: "Inner Sphere", IntroYear: 2755, Era: "Star League", WalkMP: 3, RunMP: 5,
			ArmorTotal: 304, InternalTotal: 152, BV: intp(1897), GenericBV: 2500, MulID: intp(140)},
		{UUID: "b", Chassis: "Locust", Model: "LCT-1V", Name: "Locust LCT-1V", UnitType: "Mek", Tonnage: 20,
			TechBase: "Inner Sphere", IntroYear: 2499, Era: "Age of War", WalkMP: 8, RunMP: 12,
			ArmorTotal: 64, InternalTotal: 33, GenericBV: 600},
		{UUID: "c", Chassis: "Scorpion", Model: "Light Tank", Name: "Scorpion Light Tank", UnitType: "Tank",
			Tonnage: 25, TechBase: "Inner Sphere", IntroYear: 2380, WalkMP: 4, RunMP: 6, GenericBV: 400},
		{UUID: "d", Chassis: "Mad Cat", Model: "Prime", Name: "Mad Cat Prime", UnitType: "Mek", Tonnage: 75,
			TechBase: "Clan", IntroYear: 2945, WalkMP: 5, RunMP: 8, JumpMP: 0, BV: intp(2737)},
	}
	for i := range units {
		id, err := c.InsertUnit(context.Background(), units[i])
		require.NoError(t, err)
		units[i].ID = id
	}
	return units
}

func TestCatalogRoundTrip(t *testing.T) {
	c := openTestCatalog(t)
	units := seed(t, c)

	got, err := c.GetUnit(context.Background(), units[0].ID)
	require.NoError(t, err)
	if diff := cmp.Diff(units[0], got); diff != "" {
		t.Errorf("GetUnit mismatch (-want +got):\n%s", diff)
	}

	_, err = c.GetUnit(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogUpsert(t *testing.T) {
	c := openTestCatalog(t)
	units := seed(t, c)

	updated := units[1]
	updated.UUID = "b2"
	updated.BV = intp(432)
	id, err := c.InsertUnit(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, units[1].ID, id, "same chassis and model keeps its row")

	got, err := c.GetUnit(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got.BV)
	assert.Equal(t, 432, *got.BV)
	assert.Equal(t, "b2", got.UUID)
}

func TestListUnits(t *testing.T) {
	c := openTestCatalog(t)
	seed(t, c)
	ctx := context.Background()

	names := func(us []models.UnitSummary) []string {
		out := make([]string, len(us))
		for i, u := range us {
			out[i] = u.Name
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.UnitFilter
		want   []string
	}{
		{"all", models.UnitFilter{}, []string{"Atlas AS7-D", "Locust LCT-1V", "Mad Cat Prime", "Scorpion Light Tank"}},
		{"name", models.UnitFilter{Name: "cat"}, []string{"Mad Cat Prime"}},
		{"type", models.UnitFilter{UnitType: "Tank"}, []string{"Scorpion Light Tank"}},
		{"tech base", models.UnitFilter{TechBase: "Clan"}, []string{"Mad Cat Prime"}},
		{"tonnage", models.UnitFilter{MinTons: 25, MaxTons: 80}, []string{"Mad Cat Prime", "Scorpion Light Tank"}},
		{"year", models.UnitFilter{MaxYear: 2500}, []string{"Locust LCT-1V", "Scorpion Light Tank"}},
		{"page", models.UnitFilter{Limit: 2, Offset: 1}, []string{"Locust LCT-1V", "Mad Cat Prime"}},
		{"none", models.UnitFilter{Name: "Marauder"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ListUnits(ctx, tt.filter)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, names(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ListUnits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEquipment(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.InsertEquipment(ctx, bvcalc.EquipInfo{Name: "Medium Laser", InternalName: "ISMediumLaser", Type: "weapon", BV: 46, Heat: 3, Tonnage: 1}))
	require.NoError(t, c.InsertEquipment(ctx, bvcalc.EquipInfo{Name: "ER Medium Laser", InternalName: "CLERMediumLaser", Type: "weapon", BV: 108, Heat: 5, Tonnage: 1}))
	require.NoError(t, c.InsertEquipment(ctx, bvcalc.EquipInfo{Name: "Medium Laser", InternalName: "ISMediumLaser", Type: "weapon", BV: 47, Heat: 3, Tonnage: 1}))

	edb, err := c.LoadEquipment(ctx)
	require.NoError(t, err)
	require.Contains(t, edb.ByInternalName, "ISMediumLaser")
	assert.Equal(t, 47, edb.ByInternalName["ISMediumLaser"].BV)
	assert.Len(t, edb.ByName["Medium Laser"], 1)
	assert.Equal(t, 5, edb.ByInternalName["CLERMediumLaser"].Heat)
}

func TestOpenCatalogReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	rw, err := OpenCatalog(path, false)
	require.NoError(t, err)
	seed(t, rw)
	require.NoError(t, rw.Close())

	ro, err := OpenCatalog(path, true)
	require.NoError(t, err)
	defer ro.Close()

	units, err := ro.ListUnits(context.Background(), models.UnitFilter{})
	require.NoError(t, err)
	assert.Len(t, units, 4)
}
