package model

// departureSentinel marks a Passenger that has not yet been picked up by a
// booth.
const departureSentinel Tick = -1

// Passenger represents a single international arrival moving through a
// customs lane. FlightNum is carried through to the persisted record and
// report grouping key even though routing itself keys only on Nationality,
// matching customs_obj.Passenger in the program this was distilled from.
type Passenger struct {
	ID            int64
	FlightNum     string
	Nationality   string // "domestic" or "foreign"; selects the lane
	EnqueTime     Tick
	ServiceTime   Tick // pre-sampled positive integer duration
	DepartureTime Tick // sentinel -1 until a booth picks the passenger up
	Processed     bool
}

// NewPassenger constructs a Passenger with its departure time unset.
func NewPassenger(id int64, flightNum, nationality string, enqueTime, serviceTime Tick) *Passenger {
	return &Passenger{
		ID:            id,
		FlightNum:     flightNum,
		Nationality:   nationality,
		EnqueTime:     enqueTime,
		ServiceTime:   serviceTime,
		DepartureTime: departureSentinel,
	}
}

// Dispatch marks the passenger picked up by a booth at tick now.
func (p *Passenger) Dispatch(now Tick) {
	p.DepartureTime = now + p.ServiceTime
}

// Complete marks the passenger as fully processed. DepartureTime is
// retained rather than reset to the sentinel — it remains a useful audit
// trail once Processed is true and costs nothing extra to keep.
func (p *Passenger) Complete() {
	p.Processed = true
}

// WaitTicks is departureTime - enqueTime, the quantity reported in minutes.
func (p *Passenger) WaitTicks() Tick {
	return p.DepartureTime - p.EnqueTime
}

// ArrivalHour buckets the passenger by when it entered its feeder queue.
func (p *Passenger) ArrivalHour(ticksPerHour Tick) int {
	return p.EnqueTime.Hour(ticksPerHour)
}
