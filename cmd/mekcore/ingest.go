package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/db"
	"github.com/JustinWhittecar/mekcore/internal/ingestion"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/summary"
)

var (
	ingestDryRun  bool
	ingestWorkers int
	ingestPG      bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Parse every .mtf file under dir into the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "parse only, do not write")
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", runtime.NumCPU(), "parallel parsers")
	ingestCmd.Flags().BoolVar(&ingestPG, "postgres", false, "also write to $MEKCORE_PG_DSN")
}

type parsed struct {
	path    string
	summary models.UnitSummary
	err     error
}

func findMTF(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".mtf") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// parseAll parses and scores files concurrently. Per-file failures are
// kept in the result; only cancellation aborts the run.
func parseAll(ctx context.Context, files []string, edb *bvcalc.EquipmentDB, workers int) ([]parsed, error) {
	out := make([]parsed, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = parseOne(f, edb)
			return nil
		})
	}
	return out, g.Wait()
}

func parseOne(path string, edb *bvcalc.EquipmentDB) parsed {
	data, err := ingestion.ParseMTF(path)
	if err != nil {
		return parsed{path: path, err: err}
	}
	m, err := ingestion.BuildMek(data)
	if err != nil {
		return parsed{path: path, err: err}
	}
	s := summary.Summarize(m, bvcalc.CalculateMek(m, edb).FinalBV, 0)
	s.Source = data.Source
	if data.MulID > 0 {
		mul := data.MulID
		s.MulID = &mul
	}
	return parsed{path: path, summary: s}
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := findMTF(dir)
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	logger.Info("Found .mtf files", zap.String("dir", dir), zap.Int("count", len(files)))

	var catalog *db.Catalog
	edb := bvcalc.NewEquipmentDB()
	if !ingestDryRun {
		catalog, err = db.OpenCatalog(cfg.DBPath, false)
		if err != nil {
			return err
		}
		defer catalog.Close()
		if edb, err = catalog.LoadEquipment(ctx); err != nil {
			return err
		}
	}

	var store *db.Store
	if ingestPG && !ingestDryRun {
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("--postgres needs MEKCORE_PG_DSN")
		}
		store, err = db.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		logger.Info("Connected to Postgres")
	}

	results, err := parseAll(ctx, files, edb, ingestWorkers)
	if err != nil {
		return err
	}

	var ok, failed, inserted int
	for _, r := range results {
		if r.err != nil {
			failed++
			logger.Warn("Parse failed", zap.String("file", filepath.Base(r.path)), zap.Error(r.err))
			continue
		}
		ok++
		logger.Debug("Parsed",
			zap.String("name", r.summary.Name),
			zap.Float64("tons", r.summary.Tonnage),
			zap.Int("generic_bv", r.summary.GenericBV),
		)
		if catalog == nil {
			continue
		}
		if _, err := catalog.InsertUnit(ctx, r.summary); err != nil {
			failed++
			logger.Warn("Insert failed", zap.String("file", filepath.Base(r.path)), zap.Error(err))
			continue
		}
		if store != nil {
			if err := store.IngestUnit(ctx, r.summary); err != nil {
				logger.Warn("Postgres ingest failed", zap.String("unit", r.summary.Name), zap.Error(err))
			}
		}
		inserted++
	}

	logger.Info("Ingest finished",
		zap.Int("files", len(files)),
		zap.Int("parsed", ok),
		zap.Int("failed", failed),
		zap.Int("inserted", inserted),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d / %d, failed %d, inserted %d\n", ok, len(files), failed, inserted)
	return nil
}
