package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"customshall/backend/sim"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "customssim",
	Short: "Customs-hall booth simulator and staffing optimizer",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (optional; defaults and env vars apply otherwise)")
	rootCmd.AddCommand(simulateCmd, optimizeCmd)
}

// exitCodeFor maps the error taxonomy to the exit codes spec.md assigns:
// 0 success, 1 config/store errors, 2 roster inconsistency.
func exitCodeFor(err error) int {
	switch err.(type) {
	case *sim.RosterInconsistencyError:
		return 2
	case *sim.ConfigError, *sim.StoreError:
		return 1
	default:
		return 1
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
