package model

// AssignmentAgent is the unbounded FIFO feeder queue of waiting passengers
// for one lane.
type AssignmentAgent struct {
	Queue []*Passenger
}

// Append adds a passenger to the tail of the feeder queue.
func (a *AssignmentAgent) Append(p *Passenger) {
	a.Queue = append(a.Queue, p)
}

// AssignPassengers drains the feeder queue into the lane's ParallelServer
// for as long as there is room. Because UpdateState runs after every
// append, minQueue is always the current shortest online, non-full booth;
// with Q=1 this is equivalent to "first online booth with an empty queue".
// There is no rebalancing between booths once a passenger is enqueued.
func (a *AssignmentAgent) AssignPassengers(parallel *ParallelServer) {
	for {
		parallel.UpdateState()
		if !parallel.HasSpace || len(a.Queue) == 0 {
			return
		}
		p := a.Queue[0]
		a.Queue = a.Queue[1:]
		parallel.MinQueue.Enqueue(p)
	}
}

// Reset clears the feeder queue for a fresh run.
func (a *AssignmentAgent) Reset() {
	a.Queue = nil
}
