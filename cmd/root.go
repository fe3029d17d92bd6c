// Package cmd implements the valvelet CLI commands.
package cmd

import (
	"os"

	"valvelet/internal/config"
	"valvelet/internal/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagHorizon int
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "valvelet",
	Short: "Personal runway simulator",
	Long: "Project your balance day by day under different spending scenarios\n" +
		"and find each one's death day. Running without a subcommand opens\n" +
		"the interactive dashboard.",
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the XML data files (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagHorizon, "horizon", 0, "Simulation horizon in days (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the logrus logger all commands share. Logs go to stderr
// so table output stays pipeable.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	switch {
	case flagVerbose:
		log.SetLevel(logrus.DebugLevel)
	case flagQuiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// resolveOptions merges flags over the config file.
func resolveOptions() (dataDir string, horizon int, currency string) {
	cfg, _ := config.Load()

	dataDir = cfg.General.DataDir
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	horizon = cfg.General.HorizonDays
	if flagHorizon > 0 {
		horizon = flagHorizon
	}

	return dataDir, horizon, cfg.General.Currency
}

// loadData is the shared recompute path used by all table commands.
func loadData(log *logrus.Logger) (*pipeline.LoadResult, string, error) {
	dataDir, horizon, currency := resolveOptions()
	lr, err := pipeline.Run(dataDir, horizon, log)
	if err != nil {
		return nil, currency, err
	}
	return lr, currency, nil
}
