package model

// Plane is a single scheduled international arrival and the passengers it
// carries. Origin/AirportCode/Airline are carried through from the roster
// source for audit purposes even though the simulation core never branches
// on them, matching customs_obj.Plane in the program this was distilled
// from. A Plane is created at its dispatch tick, drained into Subsection
// queues the same tick, then discarded.
type Plane struct {
	ID          int64
	FlightNum   string
	Origin      string
	AirportCode string
	Airline     string
	ArrivalTime Tick
	Passengers  []*Passenger
}
