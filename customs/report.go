package customs

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"customshall/backend/model"
	"customshall/backend/store"
)

// utilStats aggregates one (laneType, hour) cell of the per-booth hourly
// series into a mean utilization and a booth count.
type utilStats struct {
	sum float64
	n   int
}

// waitStats aggregates one (arrivalHour, nationality) cell of passenger
// wait times.
type waitStats struct {
	waitsMinutes []float64
}

// GenerateReport rolls up the day's booth utilization and passenger wait
// figures into the report rows spec.md describes, one row per
// (hour, lane) combination in which at least one serviced passenger
// arrived; an hour with booth utilization but no such passenger gets no row.
func (h *Hall) GenerateReport(ticksPerHour model.Tick, speedFactor int) []store.ReportRow {
	util := make(map[string]map[int]*utilStats)
	for laneID, lane := range h.Lanes {
		util[laneID] = make(map[int]*utilStats)
		for _, booth := range lane.Parallel.Booths {
			for startOfHour, u := range booth.HourlySeries {
				hour := startOfHour.Hour(ticksPerHour)
				cell := util[laneID][hour]
				if cell == nil {
					cell = &utilStats{}
					util[laneID][hour] = cell
				}
				cell.sum += u
				cell.n++
			}
		}
	}

	wait := make(map[string]map[int]*waitStats)
	for _, p := range h.Outputs.Serviced {
		cell := wait[p.Nationality]
		if cell == nil {
			cell = make(map[int]*waitStats)
			wait[p.Nationality] = cell
		}
		hour := p.ArrivalHour(ticksPerHour)
		ws := cell[hour]
		if ws == nil {
			ws = &waitStats{}
			cell[hour] = ws
		}
		waitTicks := p.WaitTicks()
		minutes := float64(waitTicks) * float64(speedFactor) / 60
		ws.waitsMinutes = append(ws.waitsMinutes, minutes)
	}

	var rows []store.ReportRow
	for laneID, byHour := range wait {
		for hour, ws := range byHour {
			mean := stat.Mean(ws.waitsMinutes, nil)
			maxWait := ws.waitsMinutes[0]
			for _, w := range ws.waitsMinutes {
				if w > maxWait {
					maxWait = w
				}
			}
			// Wait is converted to minutes and truncated to integer once,
			// on the aggregate — not per passenger before averaging.
			row := store.ReportRow{
				Hour:    hour,
				Type:    laneID,
				Count:   len(ws.waitsMinutes),
				AveWait: math.Trunc(mean),
				MaxWait: math.Trunc(maxWait),
			}
			if cell := util[laneID][hour]; cell != nil && cell.n > 0 {
				row.AveServerUtilization = cell.sum / float64(cell.n)
				row.NumServers = cell.n
			}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hour != rows[j].Hour {
			return rows[i].Hour < rows[j].Hour
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}
