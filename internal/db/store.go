package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustinWhittecar/mekcore/internal/models"
)

// Store mirrors the catalog into Postgres.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// ConnectPostgres opens a pool for dsn and checks it answers.
func ConnectPostgres(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewStore(pool), nil
}

func (s *Store) Close() { s.Pool.Close() }

const pgSchema = `
CREATE TABLE IF NOT EXISTS chassis (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	unit_type TEXT NOT NULL,
	tonnage DOUBLE PRECISION NOT NULL,
	tech_base TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS variants (
	id SERIAL PRIMARY KEY,
	chassis_id INTEGER NOT NULL REFERENCES chassis(id),
	uuid TEXT NOT NULL,
	model_code TEXT NOT NULL,
	name TEXT NOT NULL,
	mul_id INTEGER,
	source TEXT,
	rules_level TEXT,
	tech_level TEXT,
	intro_year INTEGER,
	era TEXT,
	battle_value INTEGER,
	UNIQUE (chassis_id, model_code)
);
CREATE TABLE IF NOT EXISTS variant_stats (
	variant_id INTEGER PRIMARY KEY REFERENCES variants(id),
	walk_mp INTEGER NOT NULL,
	run_mp INTEGER NOT NULL,
	jump_mp INTEGER NOT NULL,
	armor_total INTEGER NOT NULL,
	internal_structure_total INTEGER NOT NULL,
	generic_bv INTEGER NOT NULL
);`

// EnsureSchema creates the mirror tables when they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.Pool.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("create postgres schema: %w", err)
	}
	return nil
}

func (s *Store) UpsertChassis(ctx context.Context, tx pgx.Tx, u models.UnitSummary) (int, error) {
	var id int
	err := tx.QueryRow(ctx,
		`INSERT INTO chassis (name, unit_type, tonnage, tech_base)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET tonnage = EXCLUDED.tonnage
		 RETURNING id`, u.Chassis, u.UnitType, u.Tonnage, u.TechBase).Scan(&id)
	return id, err
}

func (s *Store) InsertVariant(ctx context.Context, tx pgx.Tx, chassisID int, u models.UnitSummary) (int, error) {
	var introYear *int
	if u.IntroYear > 0 {
		introYear = &u.IntroYear
	}

	var id int
	err := tx.QueryRow(ctx,
		`INSERT INTO variants (chassis_id, uuid, model_code, name, mul_id, source, rules_level, tech_level, intro_year, era, battle_value)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (chassis_id, model_code) DO UPDATE SET
		   uuid = EXCLUDED.uuid, battle_value = EXCLUDED.battle_value, tech_level = EXCLUDED.tech_level
		 RETURNING id`,
		chassisID, u.UUID, u.Model, u.Name, u.MulID, u.Source, u.RulesLevel, u.TechLevel, introYear, u.Era, u.BV,
	).Scan(&id)
	return id, err
}

func (s *Store) InsertVariantStats(ctx context.Context, tx pgx.Tx, variantID int, u models.UnitSummary) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO variant_stats
		 (variant_id, walk_mp, run_mp, jump_mp, armor_total, internal_structure_total, generic_bv)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (variant_id) DO UPDATE SET
		   walk_mp = EXCLUDED.walk_mp, run_mp = EXCLUDED.run_mp, jump_mp = EXCLUDED.jump_mp,
		   armor_total = EXCLUDED.armor_total,
		   internal_structure_total = EXCLUDED.internal_structure_total,
		   generic_bv = EXCLUDED.generic_bv`,
		variantID, u.WalkMP, u.RunMP, u.JumpMP, u.ArmorTotal, u.InternalTotal, u.GenericBV,
	)
	return err
}

// IngestUnit writes chassis, variant and stats for u in one transaction.
func (s *Store) IngestUnit(ctx context.Context, u models.UnitSummary) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	chassisID, err := s.UpsertChassis(ctx, tx, u)
	if err != nil {
		return fmt.Errorf("upsert chassis %q: %w", u.Chassis, err)
	}

	variantID, err := s.InsertVariant(ctx, tx, chassisID, u)
	if err != nil {
		return fmt.Errorf("insert variant %q: %w", u.Name, err)
	}

	if err := s.InsertVariantStats(ctx, tx, variantID, u); err != nil {
		return fmt.Errorf("insert stats for %q: %w", u.Name, err)
	}

	return tx.Commit(ctx)
}
