package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/models"
)

func connectTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("MEKCORE_PG_DSN")
	if dsn == "" {
		t.Skip("MEKCORE_PG_DSN not set")
	}
	ctx := context.Background()
	s, err := ConnectPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.EnsureSchema(ctx))
	return s
}

func TestStoreIngestUnit(t *testing.T) {
	s := connectTestStore(t)
	ctx := context.Background()

	chassis := "Test " + uuid.NewString()
	t.Cleanup(func() {
		_, _ = s.Pool.Exec(ctx, `DELETE FROM variant_stats WHERE variant_id IN
			(SELECT v.id FROM variants v JOIN chassis c ON c.id = v.chassis_id WHERE c.name = $1)`, chassis)
		_, _ = s.Pool.Exec(ctx, `DELETE FROM variants WHERE chassis_id IN (SELECT id FROM chassis WHERE name = $1)`, chassis)
		_, _ = s.Pool.Exec(ctx, `DELETE FROM chassis WHERE name = $1`, chassis)
	})

	u := models.UnitSummary{
		UUID: uuid.NewString(), Chassis: chassis, Model: "TST-1", Name: chassis + " TST-1",
		UnitType: "Mek", Tonnage: 50, TechBase: "Inner Sphere", IntroYear: 3025, Era: "Succession Wars",
		RulesLevel: "Introductory", WalkMP: 5, RunMP: 8, JumpMP: 3, ArmorTotal: 120, InternalTotal: 83,
		BV: intp(1100), GenericBV: 1200, MulID: intp(77), Source: "TRO 3025",
	}
	require.NoError(t, s.IngestUnit(ctx, u))

	u.BV = intp(1150)
	u.WalkMP = 4
	require.NoError(t, s.IngestUnit(ctx, u), "re-ingest updates in place")

	var variants, bv, walk int
	require.NoError(t, s.Pool.QueryRow(ctx,
		`SELECT count(*), max(v.battle_value), max(st.walk_mp)
		 FROM variants v
		 JOIN chassis c ON c.id = v.chassis_id
		 JOIN variant_stats st ON st.variant_id = v.id
		 WHERE c.name = $1`, chassis).Scan(&variants, &bv, &walk))
	assert.Equal(t, 1, variants)
	assert.Equal(t, 1150, bv)
	assert.Equal(t, 4, walk)
}
