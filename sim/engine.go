// Package sim drives the tick loop: the single place that advances time,
// in the fixed per-tick order the hall's operations must run in.
package sim

import (
	"sync"

	"github.com/sirupsen/logrus"

	"customshall/backend/customs"
	"customshall/backend/model"
	"customshall/backend/roster"
	"customshall/backend/store"
	"customshall/backend/timegrid"
)

var laneOrder = []string{"domestic", "foreign"}

const flushThreshold = 1000

// Engine owns one simulation run: a grid, a schedule, a hall, a roster
// source, and the store the hall's serviced passengers flush into. No
// operation in the loop suspends or awaits; the only blocking I/O is the
// flush dispatched onto the worker pool below, which exists so a slow
// write does not stall tick advancement; the loop blocks only when the
// pool's buffered channel is already full.
type Engine struct {
	Grid     timegrid.Grid
	Schedule model.Schedule
	Hall     *customs.Hall
	Roster   roster.Source
	Store    *store.Store
	Verbose  bool
	Log      *logrus.Logger

	flushCh  chan []*model.Passenger
	flushWG  sync.WaitGroup
	flushMu  sync.Mutex
	flushErr error
}

// NewEngine wires a run's dependencies together.
func NewEngine(grid timegrid.Grid, schedule model.Schedule, hall *customs.Hall, src roster.Source, st *store.Store, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{Grid: grid, Schedule: schedule, Hall: hall, Roster: src, Store: st, Log: log}
}

// Reset clears the hall for a fresh run of the same engine, the
// replacement for a destroy/recreate-Customs pattern: the engine and its
// wiring persist across runs, only the simulated state resets.
func (e *Engine) Reset() {
	e.Hall.Reset()
}

// RunWithSchedule resets the hall, installs schedule, runs one full day,
// and returns the resulting report rows — the entry point the optimizer
// calls once per candidate schedule.
func (e *Engine) RunWithSchedule(schedule model.Schedule) ([]store.ReportRow, error) {
	e.Reset()
	e.Schedule = schedule
	if err := e.Run(); err != nil {
		return nil, err
	}
	return e.Hall.GenerateReport(e.Grid.TicksPerHour(), e.Grid.SpeedFactor), nil
}

// Run advances from tick 0 to end of day inclusive, single-threaded and
// deterministic, then drains the flush pool and returns its first error,
// if any.
func (e *Engine) Run() error {
	const flushWorkers = 2
	e.startFlush(flushWorkers)

	ticksPerHour := e.Grid.TicksPerHour()
	endOfDay := e.Grid.EndOfDay()
	ticksPerMinute := model.Tick(60 / e.Grid.SpeedFactor)
	if ticksPerMinute < 1 {
		ticksPerMinute = 1
	}
	lastFlushed := 0

	for now := model.Tick(0); now <= endOfDay; now++ {
		if err := e.Hall.UpdateServers(e.Schedule, now, ticksPerHour, endOfDay); err != nil {
			e.stopFlush()
			return &ConfigError{Msg: err.Error()}
		}

		planes, err := e.Roster.PlanesAt(now)
		if err != nil {
			e.stopFlush()
			return &StoreError{Msg: "roster lookup", Err: err}
		}
		if err := e.Hall.HandleArrivals(planes); err != nil {
			e.stopFlush()
			return &RosterInconsistencyError{Msg: err.Error()}
		}

		for _, lane := range laneOrder {
			e.Hall.AssignPassengers(lane)
			e.Hall.ServicePassengers(lane, now)
			e.Hall.GetUtilization(lane, now, ticksPerHour)
		}

		if serviced := e.Hall.Outputs.Serviced; len(serviced)-lastFlushed >= flushThreshold || now == endOfDay {
			if len(serviced) > lastFlushed {
				batch := append([]*model.Passenger(nil), serviced[lastFlushed:]...)
				lastFlushed = len(serviced)
				e.dispatchFlush(batch)
			}
		}

		if e.Verbose && now%ticksPerMinute == 0 {
			e.Log.WithFields(logrus.Fields{
				"wall":     e.Grid.ToWall(now),
				"serviced": len(e.Hall.Outputs.Serviced),
			}).Debug("tick progress")
		}
	}

	e.stopFlush()
	e.flushMu.Lock()
	defer e.flushMu.Unlock()
	return e.flushErr
}

func (e *Engine) startFlush(workers int) {
	e.flushCh = make(chan []*model.Passenger, workers*2)
	for i := 0; i < workers; i++ {
		e.flushWG.Add(1)
		go func() {
			defer e.flushWG.Done()
			for batch := range e.flushCh {
				if err := e.Store.PersistServiced(batch); err != nil {
					e.flushMu.Lock()
					if e.flushErr == nil {
						e.flushErr = err
					}
					e.flushMu.Unlock()
				}
			}
		}()
	}
}

func (e *Engine) dispatchFlush(batch []*model.Passenger) {
	e.flushCh <- batch
}

func (e *Engine) stopFlush() {
	close(e.flushCh)
	e.flushWG.Wait()
}
