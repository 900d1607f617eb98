package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/db"
	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/ingestion"
	"github.com/JustinWhittecar/mekcore/internal/models"
	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/summary"
)

var statsFlags struct {
	heat     int
	gunnery  int
	piloting int
	gravity  float64
	weather  string
	wind     string
	year     int
	masc     bool
	force    bool
}

var statsCmd = &cobra.Command{
	Use:   "stats file.mtf...",
	Short: "Print movement, piloting target and BV for designs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func init() {
	f := statsCmd.Flags()
	f.IntVar(&statsFlags.heat, "heat", 0, "current heat")
	f.IntVar(&statsFlags.gunnery, "gunnery", 4, "gunnery skill")
	f.IntVar(&statsFlags.piloting, "piloting", 5, "piloting skill")
	f.Float64Var(&statsFlags.gravity, "gravity", 0, "gravity in g (default from options)")
	f.StringVar(&statsFlags.weather, "weather", "", "weather, e.g. \"heavy snow\"")
	f.StringVar(&statsFlags.wind, "wind", "", "wind, e.g. \"strong gale\"")
	f.IntVar(&statsFlags.year, "year", 0, "campaign year (default from options)")
	f.BoolVar(&statsFlags.masc, "masc", false, "engage MASC and superchargers")
	f.BoolVar(&statsFlags.force, "force", false, "also print the skill adjusted force total")
}

// statsConditions applies the command line overrides to the configured
// conditions.
func statsConditions(base rules.Conditions) (rules.Conditions, error) {
	c := base
	if statsFlags.gravity != 0 {
		c.Gravity = statsFlags.gravity
	}
	var err error
	if statsFlags.weather != "" {
		if c.Weather, err = rules.ParseWeather(statsFlags.weather); err != nil {
			return c, err
		}
	}
	if statsFlags.wind != "" {
		if c.Wind, err = rules.ParseWind(statsFlags.wind); err != nil {
			return c, err
		}
	}
	return c, c.Validate()
}

// loadEquipment reads BV data from the catalog when one exists. Without it
// BV falls back to the values carried on each mount.
func loadEquipment(cmd *cobra.Command) *bvcalc.EquipmentDB {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		logger.Debug("No catalog, using empty equipment table", zap.String("path", cfg.DBPath))
		return bvcalc.NewEquipmentDB()
	}
	catalog, err := db.OpenCatalog(cfg.DBPath, true)
	if err != nil {
		logger.Warn("Open catalog", zap.Error(err))
		return bvcalc.NewEquipmentDB()
	}
	defer catalog.Close()
	edb, err := catalog.LoadEquipment(cmd.Context())
	if err != nil {
		logger.Warn("Load equipment", zap.Error(err))
		return bvcalc.NewEquipmentDB()
	}
	return edb
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := statsConditions(cfg.Options.Conditions)
	if err != nil {
		return err
	}
	year := statsFlags.year
	if year == 0 {
		year = cfg.Options.Year
	}
	edb := loadEquipment(cmd)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	var force []entity.Unit
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		req := models.EvaluateRequest{
			MTF:        string(raw),
			Conditions: &c,
			Heat:       statsFlags.heat,
			Gunnery:    &statsFlags.gunnery,
			Piloting:   &statsFlags.piloting,
			Year:       year,
			UseMASC:    statsFlags.masc,
		}
		resp, err := summary.Evaluate(cmd.Context(), req, edb)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}

		if statsFlags.force {
			data, err := ingestion.ParseMTFReader(strings.NewReader(req.MTF))
			if err != nil {
				return err
			}
			m, err := ingestion.BuildMek(data)
			if err != nil {
				return err
			}
			m.Crew.Gunnery, m.Crew.Piloting = statsFlags.gunnery, statsFlags.piloting
			force = append(force, m)
		}
	}

	if statsFlags.force {
		fmt.Fprintf(cmd.OutOrStdout(), "Force BV: %d (%d units)\n", bvcalc.ForceBV(force, edb), len(force))
	}
	return nil
}
