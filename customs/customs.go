// Package customs owns the two lanes of the hall — domestic and foreign —
// and the three operations driven once per tick by the engine: bringing
// booths online or offline on the hour, routing newly landed passengers
// into their lane, and rolling up the day's utilization and wait figures
// into report rows.
package customs

import (
	"fmt"

	"customshall/backend/model"
)

// Hall is the customs area: one Subsection per lane sharing a single
// serviced-passenger sink.
type Hall struct {
	Lanes   map[string]*model.Subsection
	Outputs *model.Outputs
}

// New builds a Hall with the given lane order, the installed booth count
// per lane (from the architecture roster), and the mini-queue capacity
// every booth shares (the boothQueueCapacity configuration knob).
func New(laneIDs []string, boothsByLane map[string]int, queueCapacity int) *Hall {
	outputs := &model.Outputs{}
	lanes := make(map[string]*model.Subsection, len(laneIDs))
	for _, id := range laneIDs {
		lanes[id] = model.NewSubsection(id, boothsByLane[id], queueCapacity, outputs)
	}
	return &Hall{Lanes: lanes, Outputs: outputs}
}

// Reset clears every lane and the shared sink for a fresh run.
func (h *Hall) Reset() {
	for _, l := range h.Lanes {
		l.Reset()
	}
	h.Outputs.Reset()
}

// HandleArrivals drains each plane's passenger list in LIFO order and
// routes every passenger to the Subsection whose id equals the
// passenger's nationality. A passenger whose nationality names no lane is
// a fatal configuration error discovered at simulation time rather than
// roster-load time, since the lane set is only known once the
// architecture is loaded.
func (h *Hall) HandleArrivals(planes []*model.Plane) error {
	for _, plane := range planes {
		for i := len(plane.Passengers) - 1; i >= 0; i-- {
			p := plane.Passengers[i]
			lane, ok := h.Lanes[p.Nationality]
			if !ok {
				return fmt.Errorf("customs: passenger %d on flight %s has nationality %q, no matching lane", p.ID, plane.FlightNum, p.Nationality)
			}
			lane.Assignment.Append(p)
		}
	}
	return nil
}

// UpdateServers applies the schedule's booth count for the hour now falls
// in, to every lane, but only at hour boundaries and never on the final
// tick of the day.
func (h *Hall) UpdateServers(schedule model.Schedule, now, ticksPerHour, endOfDay model.Tick) error {
	if now%ticksPerHour != 0 {
		return nil
	}
	if now == endOfDay {
		return nil
	}
	hour := now.Hour(ticksPerHour)
	for laneID, lane := range h.Lanes {
		n, err := schedule.BoothCount(laneID, hour)
		if err != nil {
			return err
		}
		lane.Parallel.SetOnlineCount(n)
	}
	return nil
}

// AssignPassengers, ServicePassengers, and GetUtilization run the
// per-lane steps of a tick in the lane order the caller supplies — fixed
// as [domestic, foreign] by the engine.
func (h *Hall) AssignPassengers(laneID string) {
	l := h.Lanes[laneID]
	l.Assignment.AssignPassengers(l.Parallel)
}

func (h *Hall) ServicePassengers(laneID string, now model.Tick) {
	l := h.Lanes[laneID]
	l.Parallel.ServicePassengers(now)
}

func (h *Hall) GetUtilization(laneID string, now, ticksPerHour model.Tick) {
	l := h.Lanes[laneID]
	l.Parallel.GetUtilization(now, ticksPerHour)
}
