// Command mekcore loads .mtf designs into the unit catalog and reports
// movement and battle value for individual designs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/config"
	"github.com/JustinWhittecar/mekcore/internal/logging"
)

var (
	verbose bool
	dbPath  string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mekcore",
	Short: "BattleTech unit catalog and rules tools",
	Long: `mekcore parses MegaMek .mtf designs, computes their movement and BV2,
and stores the results in the sqlite catalog served by the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		logger, err = logging.New(verbose || cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog path (default $MEKCORE_DB_PATH)")

	rootCmd.AddCommand(ingestCmd, statsCmd, equipmentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
