// Package store is the persistence adapter: SQLite-backed roster loading,
// serviced-passenger flushing, and CSV schedule/report I/O.
package store

import (
	"database/sql"
	"fmt"
	"math/rand"

	_ "modernc.org/sqlite" // pure-Go driver, registers "sqlite"

	"customshall/backend/distribution"
	"customshall/backend/model"
	"customshall/backend/timegrid"
)

// Store wraps the opaque persistent store spec.md describes: the arrivals/
// airports/planes/passengers tables.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite file at path and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS airports (
			code TEXT PRIMARY KEY,
			name TEXT,
			city TEXT,
			country TEXT,
			preclearance TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS planes (
			flight_num TEXT PRIMARY KEY,
			carrier TEXT,
			aircraft TEXT,
			total_seats INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS arrivals (
			id INTEGER PRIMARY KEY,
			origin TEXT,
			airport_code TEXT,
			arrival_time TEXT,
			airline TEXT,
			flight_num TEXT,
			terminal TEXT,
			code_share TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS passengers (
			id INTEGER PRIMARY KEY,
			flight_num TEXT,
			first_name TEXT,
			last_name TEXT,
			birthdate TEXT,
			nationality TEXT,
			service_time INTEGER,
			enque_time INTEGER,
			departure_time INTEGER,
			connecting_flight TEXT,
			processed INTEGER
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("store: ensure schema: %w", err)
		}
	}
	return nil
}

// DomesticServiceSeconds and ForeignServiceSeconds are the default (low, mode,
// high) triples in seconds before speedFactor scaling, per the roster
// source contract: domestic (30s, 60s, 120s), foreign (60s, 120s, 240s).
var (
	DomesticServiceSeconds = [3]float64{30, 60, 120}
	ForeignServiceSeconds  = [3]float64{60, 120, 240}
)

// LoadRoster runs the roster selection query spec.md describes — arrivals
// with an empty code_share, terminal '4', joined to airports where country
// is not the United States and preclearance is not true — and returns the
// resulting planes with their passengers, each already carrying a sampled
// ServiceTime. Arrival times are bucketed into a tick-keyed mapping by the
// caller (see roster.FromStore); this only builds the flat plane list.
func (s *Store) LoadRoster(grid timegrid.Grid, domestic, foreign distribution.Triangular, rng *rand.Rand) ([]*model.Plane, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.origin, a.airport_code, a.arrival_time, a.airline, a.flight_num
		FROM arrivals a
		JOIN airports p ON p.code = a.airport_code
		WHERE a.code_share = '' AND a.terminal = '4'
		  AND p.country != 'United States' AND p.preclearance != 'true'
		ORDER BY a.arrival_time, a.id
	`)
	if err != nil {
		return nil, fmt.Errorf("store: roster query: %w", err)
	}
	defer rows.Close()

	var planes []*model.Plane
	for rows.Next() {
		var pl model.Plane
		var arrivalStr string
		if err := rows.Scan(&pl.ID, &pl.Origin, &pl.AirportCode, &arrivalStr, &pl.Airline, &pl.FlightNum); err != nil {
			return nil, fmt.Errorf("store: scan arrival row: %w", err)
		}
		tick, err := grid.ToTick(arrivalStr)
		if err != nil {
			return nil, fmt.Errorf("store: arrival %s: %w", pl.FlightNum, err)
		}
		pl.ArrivalTime = tick

		passengers, err := s.passengersForFlight(pl.FlightNum, tick, domestic, foreign, rng)
		if err != nil {
			return nil, err
		}
		pl.Passengers = passengers
		planes = append(planes, &pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: roster query: %w", err)
	}
	return planes, nil
}

func (s *Store) passengersForFlight(flightNum string, enqueTime model.Tick, domestic, foreign distribution.Triangular, rng *rand.Rand) ([]*model.Passenger, error) {
	rows, err := s.db.Query(`
		SELECT id, nationality FROM passengers WHERE flight_num = ?
	`, flightNum)
	if err != nil {
		return nil, fmt.Errorf("store: passengers for %s: %w", flightNum, err)
	}
	defer rows.Close()

	var out []*model.Passenger
	for rows.Next() {
		var id int64
		var nationality string
		if err := rows.Scan(&id, &nationality); err != nil {
			return nil, fmt.Errorf("store: scan passenger row: %w", err)
		}
		var serviceTime model.Tick
		switch nationality {
		case "domestic":
			serviceTime = domestic.Sample(rng)
		case "foreign":
			serviceTime = foreign.Sample(rng)
		default:
			return nil, fmt.Errorf("store: passenger %d on flight %s has nationality %q, want domestic or foreign", id, flightNum, nationality)
		}
		if serviceTime < 1 {
			serviceTime = 1
		}
		out = append(out, model.NewPassenger(id, flightNum, nationality, enqueTime, serviceTime))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: passengers for %s: %w", flightNum, err)
	}
	return out, nil
}

// PersistServiced writes a batch of completed passengers back to the
// passengers table, called by the flush worker pool at the buffer
// threshold and unconditionally at end of day.
func (s *Store) PersistServiced(batch []*model.Passenger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin flush: %w", err)
	}
	stmt, err := tx.Prepare(`
		UPDATE passengers SET service_time = ?, enque_time = ?, departure_time = ?, processed = ?
		WHERE id = ?
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("store: prepare flush: %w", err)
	}
	defer stmt.Close()
	for _, p := range batch {
		processed := 0
		if p.Processed {
			processed = 1
		}
		if _, err := stmt.Exec(int64(p.ServiceTime), int64(p.EnqueTime), int64(p.DepartureTime), processed, p.ID); err != nil {
			tx.Rollback()
			return fmt.Errorf("store: flush passenger %d: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit flush: %w", err)
	}
	return nil
}
