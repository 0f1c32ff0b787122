package model

// Outputs is the append-only sink shared by reference from a Customs
// instance to every ServiceAgent it owns. In a multi-threaded port this is
// the one cross-component write target and must be guarded by an exclusive
// writer; the engine here is single-threaded so no lock is needed.
type Outputs struct {
	Serviced []*Passenger
}

// Append records a passenger that has just completed service.
func (o *Outputs) Append(p *Passenger) {
	o.Serviced = append(o.Serviced, p)
}

// Reset clears the sink for a fresh simulation run.
func (o *Outputs) Reset() {
	o.Serviced = o.Serviced[:0]
}
