package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"customshall/backend/config"
	"customshall/backend/optimize"
	"customshall/backend/sim"
	"customshall/backend/store"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for the cheapest per-hour booth schedule that keeps waits under threshold",
	RunE:  runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	dep, err := buildDeployment(cfg)
	if err != nil {
		return err
	}
	defer dep.close()

	log := newLogger(cfg.Verbose)
	engine := sim.NewEngine(dep.grid, dep.schedule, dep.hall, dep.src, dep.st, log)
	engine.Verbose = cfg.Verbose

	laneIDs := make([]string, 0, len(dep.schedule))
	maxByLane := make(map[string]int, len(dep.schedule))
	for lane, ls := range dep.schedule {
		laneIDs = append(laneIDs, lane)
		maxByLane[lane] = ls.Max
	}

	result, err := optimize.Run(laneIDs, maxByLane, cfg.WaitThresholdMin, cfg.Momentum, engine.RunWithSchedule)
	if err != nil {
		return err
	}
	for _, e := range result.EmptyHours {
		log.WithError(e).Debug("empty hour skipped")
	}
	for _, e := range result.CapacityBound {
		log.WithError(e).Warn("hour is capacity-bound")
	}

	outPath, err := store.WriteReportCSV(cfg.ReportPath, result.Report)
	if err != nil {
		return &sim.StoreError{Msg: "write report", Err: err}
	}
	if outPath != "" {
		log.Infof("report written to %s", outPath)
	}
	fmt.Printf("=== Optimized Schedule ===\n")
	for lane, ls := range result.Schedule {
		fmt.Printf("lane=%s hours=%v\n", lane, ls.Hours)
	}
	return nil
}
