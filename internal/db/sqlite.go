package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/models"
)

var ErrNotFound = errors.New("not found")

// Catalog is the sqlite unit catalog served by the API and filled by
// `mekcore ingest`.
type Catalog struct {
	DB *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS units (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT UNIQUE NOT NULL,
		chassis TEXT NOT NULL,
		model TEXT NOT NULL,
		name TEXT NOT NULL,
		unit_type TEXT NOT NULL,
		tonnage REAL NOT NULL,
		tech_base TEXT NOT NULL,
		intro_year INTEGER,
		era TEXT,
		rules_level TEXT,
		tech_level TEXT,
		walk_mp INTEGER NOT NULL DEFAULT 0,
		run_mp INTEGER NOT NULL DEFAULT 0,
		jump_mp INTEGER NOT NULL DEFAULT 0,
		armor_total INTEGER NOT NULL DEFAULT 0,
		internal_total INTEGER NOT NULL DEFAULT 0,
		battle_value INTEGER,
		generic_bv INTEGER NOT NULL DEFAULT 0,
		mul_id INTEGER,
		source TEXT,
		UNIQUE(chassis, model)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_units_name ON units(name)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		internal_name TEXT UNIQUE,
		type TEXT NOT NULL,
		bv INTEGER NOT NULL DEFAULT 0,
		heat INTEGER NOT NULL DEFAULT 0,
		rack_size INTEGER NOT NULL DEFAULT 0,
		tonnage REAL NOT NULL DEFAULT 0
	)`,
}

// OpenCatalog opens the catalog at path. A read-only catalog must already
// exist; a writable one gets its tables created.
func OpenCatalog(path string, readOnly bool) (*Catalog, error) {
	dsn := path
	if readOnly {
		dsn += "?mode=ro"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{"PRAGMA foreign_keys=ON"}
	if !readOnly {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if !readOnly {
		for _, ddl := range schema {
			if _, err := db.Exec(ddl); err != nil {
				db.Close()
				return nil, fmt.Errorf("create schema: %w", err)
			}
		}
	}

	return &Catalog{DB: db}, nil
}

func (c *Catalog) Close() error { return c.DB.Close() }

// InsertUnit stores s, replacing any earlier row for the same chassis and
// model, and returns the row id.
func (c *Catalog) InsertUnit(ctx context.Context, s models.UnitSummary) (int64, error) {
	var id int64
	err := c.DB.QueryRowContext(ctx,
		`INSERT INTO units (uuid, chassis, model, name, unit_type, tonnage, tech_base,
		  intro_year, era, rules_level, tech_level, walk_mp, run_mp, jump_mp,
		  armor_total, internal_total, battle_value, generic_bv, mul_id, source)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		 ON CONFLICT (chassis, model) DO UPDATE SET
		  uuid = excluded.uuid, name = excluded.name, unit_type = excluded.unit_type,
		  tonnage = excluded.tonnage, tech_base = excluded.tech_base,
		  intro_year = excluded.intro_year, era = excluded.era,
		  rules_level = excluded.rules_level, tech_level = excluded.tech_level,
		  walk_mp = excluded.walk_mp, run_mp = excluded.run_mp, jump_mp = excluded.jump_mp,
		  armor_total = excluded.armor_total, internal_total = excluded.internal_total,
		  battle_value = excluded.battle_value, generic_bv = excluded.generic_bv,
		  mul_id = excluded.mul_id, source = excluded.source
		 RETURNING id`,
		s.UUID, s.Chassis, s.Model, s.Name, s.UnitType, s.Tonnage, s.TechBase,
		nullInt(s.IntroYear), s.Era, s.RulesLevel, s.TechLevel, s.WalkMP, s.RunMP, s.JumpMP,
		s.ArmorTotal, s.InternalTotal, s.BV, s.GenericBV, s.MulID, s.Source,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert unit %q: %w", s.Name, err)
	}
	return id, nil
}

const unitColumns = `id, uuid, chassis, model, name, unit_type, tonnage, tech_base,
	COALESCE(intro_year, 0), COALESCE(era, ''), COALESCE(rules_level, ''), COALESCE(tech_level, ''),
	walk_mp, run_mp, jump_mp, armor_total, internal_total, battle_value, generic_bv,
	mul_id, COALESCE(source, '')`

func scanUnit(row interface{ Scan(...any) error }) (models.UnitSummary, error) {
	var s models.UnitSummary
	var bv, mulID sql.NullInt64
	err := row.Scan(&s.ID, &s.UUID, &s.Chassis, &s.Model, &s.Name, &s.UnitType, &s.Tonnage, &s.TechBase,
		&s.IntroYear, &s.Era, &s.RulesLevel, &s.TechLevel,
		&s.WalkMP, &s.RunMP, &s.JumpMP, &s.ArmorTotal, &s.InternalTotal, &bv, &s.GenericBV,
		&mulID, &s.Source)
	if err != nil {
		return s, err
	}
	if bv.Valid {
		v := int(bv.Int64)
		s.BV = &v
	}
	if mulID.Valid {
		v := int(mulID.Int64)
		s.MulID = &v
	}
	return s, nil
}

// ListUnits returns catalog rows matching f, ordered by name.
func (c *Catalog) ListUnits(ctx context.Context, f models.UnitFilter) ([]models.UnitSummary, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE 1=1`
	args := []any{}

	if f.Name != "" {
		query += " AND (name LIKE ? OR chassis LIKE ?)"
		p := "%" + f.Name + "%"
		args = append(args, p, p)
	}
	if f.UnitType != "" {
		query += " AND unit_type = ?"
		args = append(args, f.UnitType)
	}
	if f.TechBase != "" {
		query += " AND tech_base = ?"
		args = append(args, f.TechBase)
	}
	if f.MinTons > 0 {
		query += " AND tonnage >= ?"
		args = append(args, f.MinTons)
	}
	if f.MaxTons > 0 {
		query += " AND tonnage <= ?"
		args = append(args, f.MaxTons)
	}
	if f.MaxYear > 0 {
		query += " AND COALESCE(intro_year, 0) <= ?"
		args = append(args, f.MaxYear)
	}

	query += " ORDER BY name, id"
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	units := []models.UnitSummary{}
	for rows.Next() {
		s, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, s)
	}
	return units, rows.Err()
}

func (c *Catalog) GetUnit(ctx context.Context, id int64) (models.UnitSummary, error) {
	row := c.DB.QueryRowContext(ctx, `SELECT `+unitColumns+` FROM units WHERE id = ?`, id)
	s, err := scanUnit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return s, fmt.Errorf("unit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return s, fmt.Errorf("get unit %d: %w", id, err)
	}
	return s, nil
}

// InsertEquipment adds or updates an equipment row keyed by internal name.
func (c *Catalog) InsertEquipment(ctx context.Context, e bvcalc.EquipInfo) error {
	_, err := c.DB.ExecContext(ctx,
		`INSERT INTO equipment (name, internal_name, type, bv, heat, rack_size, tonnage)
		 VALUES (?,?,?,?,?,?,?)
		 ON CONFLICT (internal_name) DO UPDATE SET
		  name = excluded.name, type = excluded.type, bv = excluded.bv,
		  heat = excluded.heat, rack_size = excluded.rack_size, tonnage = excluded.tonnage`,
		e.Name, nullString(e.InternalName), e.Type, e.BV, e.Heat, e.RackSize, e.Tonnage)
	if err != nil {
		return fmt.Errorf("insert equipment %q: %w", e.Name, err)
	}
	return nil
}

// LoadEquipment reads the equipment table into a BV lookup database.
func (c *Catalog) LoadEquipment(ctx context.Context) (*bvcalc.EquipmentDB, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT name, type, bv, heat, rack_size, tonnage, COALESCE(internal_name, '') FROM equipment`)
	if err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	defer rows.Close()

	edb := bvcalc.NewEquipmentDB()
	for rows.Next() {
		var e bvcalc.EquipInfo
		if err := rows.Scan(&e.Name, &e.Type, &e.BV, &e.Heat, &e.RackSize, &e.Tonnage, &e.InternalName); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		edb.Add(e)
	}
	return edb, rows.Err()
}

func nullInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
