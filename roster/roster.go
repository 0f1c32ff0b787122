// Package roster supplies the external contract the simulation engine uses
// to retrieve the planes scheduled to arrive at a given tick.
package roster

import "customshall/backend/model"

// Source exposes, at each tick, the zero or more planes whose arrival time
// maps to that tick. A Plane yields its passengers with ServiceTime already
// assigned by the source (the draw is performed once per passenger at
// roster-prep time and stored; the engine itself is deterministic given a
// roster).
type Source interface {
	PlanesAt(tick model.Tick) ([]*model.Plane, error)
}
