package roster

import "customshall/backend/model"

// Static is an in-memory Source backing scenario fixtures and unit tests;
// no store round-trip is needed to exercise the engine.
type Static struct {
	byTick map[model.Tick][]*model.Plane
}

// NewStatic buckets planes by ArrivalTime for O(1) lookup per tick.
func NewStatic(planes []*model.Plane) *Static {
	s := &Static{byTick: make(map[model.Tick][]*model.Plane)}
	for _, p := range planes {
		s.byTick[p.ArrivalTime] = append(s.byTick[p.ArrivalTime], p)
	}
	return s
}

// PlanesAt returns the planes scheduled for tick, or nil if none.
func (s *Static) PlanesAt(tick model.Tick) ([]*model.Plane, error) {
	return s.byTick[tick], nil
}
