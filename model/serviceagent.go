package model

// ServiceAgent is a single customs booth: one inspection officer with a
// bounded FIFO mini-queue and at most one in-service passenger.
type ServiceAgent struct {
	ID       int
	LaneType string // "domestic" or "foreign"
	Online   bool
	Queue    []*Passenger
	Q        int // mini-queue capacity; 1 for the current engine, general code path supports more

	IsServing bool
	Current   *Passenger

	Utilization       float64
	UtilizationAnchor Tick
	HourlySeries      map[Tick]float64

	outputs *Outputs
}

// NewServiceAgent constructs an offline booth with the given queue capacity.
func NewServiceAgent(id int, laneType string, q int, outputs *Outputs) *ServiceAgent {
	return &ServiceAgent{
		ID:           id,
		LaneType:     laneType,
		Q:            q,
		HourlySeries: make(map[Tick]float64),
		outputs:      outputs,
	}
}

// HasRoom reports whether the mini-queue can accept another passenger.
func (a *ServiceAgent) HasRoom() bool {
	return len(a.Queue) < a.Q
}

// Enqueue appends a passenger to the mini-queue. Callers must check
// HasRoom first; Enqueue does not itself enforce the bound.
func (a *ServiceAgent) Enqueue(p *Passenger) {
	a.Queue = append(a.Queue, p)
}

// Serve advances this booth's state machine by at most one transition for
// tick now. Completion and pickup are kept in separate ticks: a booth that
// completes at now does not also pick up a new passenger at now, enforcing
// a minimum of serviceTime ticks between successive completions.
func (a *ServiceAgent) Serve(now Tick) {
	if !a.Online && !a.IsServing && len(a.Queue) == 0 {
		return // stays OFFLINE
	}
	if a.IsServing && a.Current.DepartureTime > now {
		return // remain SERVING
	}
	if a.IsServing && a.Current.DepartureTime == now {
		a.Current.Complete()
		a.outputs.Append(a.Current)
		a.Current = nil
		a.IsServing = false
		return
	}
	if !a.IsServing && len(a.Queue) > 0 {
		p := a.Queue[0]
		a.Queue = a.Queue[1:]
		a.Current = p
		p.Dispatch(now)
		a.IsServing = true
		return
	}
	// Else: IDLE.
}

// Reset clears all in-memory state for a fresh run, leaving Online and Q
// untouched — those come from the server schedule, not the passenger flow.
func (a *ServiceAgent) Reset() {
	a.Queue = nil
	a.IsServing = false
	a.Current = nil
	a.Utilization = 0
	a.UtilizationAnchor = 0
	a.HourlySeries = make(map[Tick]float64)
}

// UpdateUtilization performs the per-tick Welford-style incremental update
// described for booth utilization, then snapshots at the hour boundary.
func (a *ServiceAgent) UpdateUtilization(now Tick, ticksPerHour Tick) {
	busy := a.IsServing || len(a.Queue) > 0
	switch {
	case !busy && !a.Online && a.Utilization == 0 && len(a.Queue) == 0:
		a.UtilizationAnchor = now
	case busy:
		if now == a.UtilizationAnchor {
			a.Utilization = 1
		} else {
			a.Utilization += (1 - a.Utilization) / float64(now-a.UtilizationAnchor)
		}
	default:
		if now == a.UtilizationAnchor {
			a.Utilization = 0
		} else {
			a.Utilization += (0 - a.Utilization) / float64(now-a.UtilizationAnchor)
		}
	}

	if (now+1)%ticksPerHour == 0 && a.Online {
		startOfHour := now + 1 - ticksPerHour
		a.HourlySeries[startOfHour] = a.Utilization
		a.Utilization = 0
		a.UtilizationAnchor = now + 1
	}
}
