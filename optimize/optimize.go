// Package optimize implements the greedy hourly booth-count search:
// momentum-accelerated coarse steps followed by a tight backtracking pass
// that turns the overshoot into a local optimum, one lane and hour at a
// time.
package optimize

import (
	"customshall/backend/model"
	"customshall/backend/sim"
	"customshall/backend/store"
)

// RunFunc executes one full day with the given schedule and returns the
// resulting report rows. The caller supplies this so the optimizer never
// has to know how a simulation is wired.
type RunFunc func(schedule model.Schedule) ([]store.ReportRow, error)

// Result is the schedule the search converged on, the report from
// re-simulating it, and the non-fatal conditions observed along the way.
type Result struct {
	Schedule      model.Schedule
	Report        []store.ReportRow
	CapacityBound []*sim.CapacityBoundError
	EmptyHours    []*sim.EmptyHourError
}

func findRow(rows []store.ReportRow, lane string, hour int) (store.ReportRow, bool) {
	for _, r := range rows {
		if r.Type == lane && r.Hour == hour {
			return r, true
		}
	}
	return store.ReportRow{}, false
}

// Run performs the search described for every lane in laneIDs
// independently, starting each lane's schedule at its max booth count for
// every hour.
func Run(laneIDs []string, maxByLane map[string]int, thresholdMin float64, momentum int, run RunFunc) (Result, error) {
	schedule := make(model.Schedule, len(laneIDs))
	for _, lane := range laneIDs {
		ls := &model.LaneSchedule{Max: maxByLane[lane]}
		for h := range ls.Hours {
			ls.Hours[h] = maxByLane[lane]
		}
		schedule[lane] = ls
	}

	var capBound []*sim.CapacityBoundError
	var emptyHours []*sim.EmptyHourError
	var lastReport []store.ReportRow

	for _, lane := range laneIDs {
		max := maxByLane[lane]
		previousHour := -1

		for h := 0; h < 24; h++ {
			report, err := run(schedule)
			if err != nil {
				return Result{}, err
			}
			lastReport = report

			row, ok := findRow(report, lane, h)
			if !ok {
				emptyHours = append(emptyHours, &sim.EmptyHourError{Lane: lane, Hour: h})
				continue
			}
			aveWait := row.AveWait
			n := schedule[lane].Hours[h]

			for {
				var capped bool
				if aveWait >= thresholdMin {
					next := n + momentum
					if next > max {
						next = max
					}
					if next == n && n == max {
						capBound = append(capBound, &sim.CapacityBoundError{Lane: lane, Hour: h})
						capped = true
					}
					n = next
				} else {
					n -= momentum
					if n < 1 {
						n = 1
					}
				}
				if capped {
					break
				}

				schedule.SetFutureHours(lane, h, n)
				report, err = run(schedule)
				if err != nil {
					return Result{}, err
				}
				lastReport = report
				newAveWait := 0.0
				if r2, ok2 := findRow(report, lane, h); ok2 {
					newAveWait = r2.AveWait
				}

				crossedDown := aveWait >= thresholdMin && newAveWait < thresholdMin
				crossedUp := aveWait < thresholdMin && newAveWait >= thresholdMin

				switch {
				case crossedDown:
					for i := 0; i < momentum-1; i++ {
						n--
						if n < 1 {
							n = 1
						}
						schedule.SetFutureHours(lane, h, n)
						report, err = run(schedule)
						if err != nil {
							return Result{}, err
						}
						lastReport = report
						w := 0.0
						if r3, ok3 := findRow(report, lane, h); ok3 {
							w = r3.AveWait
						}
						if w >= thresholdMin {
							n++
							schedule.SetFutureHours(lane, h, n)
							report, err = run(schedule)
							if err != nil {
								return Result{}, err
							}
							lastReport = report
							break
						}
					}
				case crossedUp:
					for i := 0; i < momentum; i++ {
						n++
						if n > max {
							n = max
						}
						schedule.SetFutureHours(lane, h, n)
						report, err = run(schedule)
						if err != nil {
							return Result{}, err
						}
						lastReport = report
						w := 0.0
						if r3, ok3 := findRow(report, lane, h); ok3 {
							w = r3.AveWait
						}
						if w < thresholdMin {
							break
						}
					}
					if previousHour >= 0 {
						for {
							wPrev := 0.0
							if rPrev, okPrev := findRow(report, lane, previousHour); okPrev {
								wPrev = rPrev.AveWait
							}
							if wPrev < thresholdMin || n >= max {
								break
							}
							n++
							if n > max {
								n = max
							}
							schedule.SetFutureHours(lane, h, n)
							report, err = run(schedule)
							if err != nil {
								return Result{}, err
							}
							lastReport = report
						}
					}
				default:
					aveWait = newAveWait
					continue
				}
				break
			}
			previousHour = h
		}
	}

	final, err := run(schedule)
	if err != nil {
		return Result{}, err
	}
	lastReport = final
	return Result{Schedule: schedule, Report: lastReport, CapacityBound: capBound, EmptyHours: emptyHours}, nil
}
