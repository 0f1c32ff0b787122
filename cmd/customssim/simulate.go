package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"customshall/backend/config"
	"customshall/backend/sim"
	"customshall/backend/store"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one full day with the configured fixed schedule and emit a report",
	RunE:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
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

	if err := engine.Run(); err != nil {
		return err
	}
	rows := dep.hall.GenerateReport(dep.grid.TicksPerHour(), dep.grid.SpeedFactor)

	outPath, err := store.WriteReportCSV(cfg.ReportPath, rows)
	if err != nil {
		return &sim.StoreError{Msg: "write report", Err: err}
	}
	if outPath != "" {
		log.Infof("report written to %s", outPath)
	}
	fmt.Printf("=== Simulation Report ===\n")
	for _, r := range rows {
		fmt.Printf("hour=%02d type=%-9s count=%-5d ave_wait=%.0fm max_wait=%.0fm util=%.2f servers=%d\n",
			r.Hour, r.Type, r.Count, r.AveWait, r.MaxWait, r.AveServerUtilization, r.NumServers)
	}
	return nil
}
