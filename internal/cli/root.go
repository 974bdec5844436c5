// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

var (
	appConfig = config.Default()
	log       = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Twisty puzzle state engine",
	Long: `twisty - apply move notation to twisty puzzles described by cycle definitions.

Puzzles are defined by lines such as "R: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1)".
Scrambles can be inspected, normalized, inverted and turned back into new
move definitions, which are saved and loaded into later runs.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.twisty/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twisty/twisty.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and configures logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

// getDBPath returns the database path from flag, then config, then default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return appConfig.DBPath
}
