package roster

import "customshall/backend/model"

// FromStore buckets an already-loaded plane list (see store.Store.LoadRoster)
// into a Source by arrival tick. The SQL query itself lives in package
// store, keeping package roster free of a database/sql dependency.
func FromStore(planes []*model.Plane) Source {
	return NewStatic(planes)
}
