package main

import (
	"math/rand"

	"customshall/backend/config"
	"customshall/backend/customs"
	"customshall/backend/distribution"
	"customshall/backend/model"
	"customshall/backend/roster"
	"customshall/backend/sim"
	"customshall/backend/store"
	"customshall/backend/timegrid"
)

// deployment bundles everything a run needs once config has been loaded
// and the store opened: the grid, the schedule, the roster, and a hall
// sized from the architecture file.
type deployment struct {
	cfg      config.Config
	grid     timegrid.Grid
	schedule model.Schedule
	st       *store.Store
	hall     *customs.Hall
	src      roster.Source
}

func buildDeployment(cfg config.Config) (*deployment, error) {
	grid, err := timegrid.New(cfg.SpeedFactor)
	if err != nil {
		return nil, &sim.ConfigError{Msg: err.Error()}
	}

	schedule, err := store.ReadScheduleCSV(cfg.SchedulePath)
	if err != nil {
		return nil, &sim.ConfigError{Msg: err.Error()}
	}

	boothsByLane, err := store.LoadArchitecture(cfg.ArchitecturePath, schedule)
	if err != nil {
		return nil, &sim.ConfigError{Msg: err.Error()}
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, &sim.StoreError{Msg: "open store", Err: err}
	}

	domesticLow, err := grid.ToTick(cfg.DomesticService.Low)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	domesticMode, err := grid.ToTick(cfg.DomesticService.Mode)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	domesticHigh, err := grid.ToTick(cfg.DomesticService.High)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	domestic, err := distribution.NewTriangular(float64(domesticLow), float64(domesticMode), float64(domesticHigh))
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}

	foreignLow, err := grid.ToTick(cfg.ForeignService.Low)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	foreignMode, err := grid.ToTick(cfg.ForeignService.Mode)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	foreignHigh, err := grid.ToTick(cfg.ForeignService.High)
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}
	foreign, err := distribution.NewTriangular(float64(foreignLow), float64(foreignMode), float64(foreignHigh))
	if err != nil {
		st.Close()
		return nil, &sim.ConfigError{Msg: err.Error()}
	}

	rng := rand.New(rand.NewSource(1))
	planes, err := st.LoadRoster(grid, domestic, foreign, rng)
	if err != nil {
		st.Close()
		return nil, &sim.RosterInconsistencyError{Msg: err.Error()}
	}
	src := roster.FromStore(planes)

	laneIDs := []string{"domestic", "foreign"}
	hall := customs.New(laneIDs, boothsByLane, cfg.BoothQueueCapacity)

	return &deployment{cfg: cfg, grid: grid, schedule: schedule, st: st, hall: hall, src: src}, nil
}

func (d *deployment) close() {
	d.st.Close()
}
