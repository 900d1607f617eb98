package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/JustinWhittecar/mekcore/internal/bvcalc"
	"github.com/JustinWhittecar/mekcore/internal/db"
)

// equipmentEntry is one row of an equipment YAML file.
type equipmentEntry struct {
	Name         string  `yaml:"name"`
	InternalName string  `yaml:"internal_name"`
	Type         string  `yaml:"type"`
	BV           int     `yaml:"bv"`
	Heat         int     `yaml:"heat"`
	RackSize     int     `yaml:"rack_size"`
	Tonnage      float64 `yaml:"tonnage"`
}

var equipmentCmd = &cobra.Command{
	Use:   "equipment file.yaml",
	Short: "Load weapon and equipment BV data into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquipment,
}

func readEquipment(path string) ([]bvcalc.EquipInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []equipmentEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	items := make([]bvcalc.EquipInfo, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%s: entry %d has no name", path, i)
		}
		if e.Type == "" {
			e.Type = "weapon"
		}
		items = append(items, bvcalc.EquipInfo{
			Name:         e.Name,
			InternalName: e.InternalName,
			Type:         e.Type,
			BV:           e.BV,
			Heat:         e.Heat,
			RackSize:     e.RackSize,
			Tonnage:      e.Tonnage,
		})
	}
	return items, nil
}

func runEquipment(cmd *cobra.Command, args []string) error {
	items, err := readEquipment(args[0])
	if err != nil {
		return err
	}

	catalog, err := db.OpenCatalog(cfg.DBPath, false)
	if err != nil {
		return err
	}
	defer catalog.Close()

	for _, e := range items {
		if err := catalog.InsertEquipment(cmd.Context(), e); err != nil {
			return err
		}
	}
	logger.Info("Equipment loaded", zap.Int("items", len(items)), zap.String("db", cfg.DBPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d equipment entries\n", len(items))
	return nil
}
