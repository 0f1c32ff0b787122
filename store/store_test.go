package store

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"customshall/backend/distribution"
	"customshall/backend/model"
	"customshall/backend/timegrid"
)

func testGrid(t *testing.T) timegrid.Grid {
	t.Helper()
	g, err := timegrid.New(10)
	require.NoError(t, err)
	return g
}

func seedRoster(t *testing.T, st *Store) {
	t.Helper()
	_, err := st.db.Exec(`INSERT INTO airports (code, name, city, country, preclearance) VALUES
		('LHR', 'Heathrow', 'London', 'United Kingdom', 'false'),
		('YYZ', 'Pearson', 'Toronto', 'Canada', 'false')`)
	require.NoError(t, err)
	_, err = st.db.Exec(`INSERT INTO arrivals (id, origin, airport_code, arrival_time, airline, flight_num, terminal, code_share) VALUES
		(1, 'London', 'LHR', '00:00:00', 'BA', 'BA001', '4', ''),
		(2, 'Toronto', 'YYZ', '00:00:00', 'AC', 'AC100', '4', 'XX')`)
	require.NoError(t, err)
	_, err = st.db.Exec(`INSERT INTO passengers (id, flight_num, nationality, service_time, enque_time, departure_time, processed) VALUES
		(10, 'BA001', 'foreign', 0, 0, -1, 0),
		(11, 'BA001', 'domestic', 0, 0, -1, 0),
		(12, 'AC100', 'domestic', 0, 0, -1, 0)`)
	require.NoError(t, err)
}

func TestLoadRosterAppliesSelectionQueryAndSamplesServiceTime(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()
	seedRoster(t, st)

	domestic, err := distribution.NewTriangular(30, 60, 120)
	require.NoError(t, err)
	foreign, err := distribution.NewTriangular(60, 120, 240)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	planes, err := st.LoadRoster(testGrid(t), domestic, foreign, rng)
	require.NoError(t, err)

	require.Len(t, planes, 1, "code_share row must be excluded by the selection query")
	require.Equal(t, "BA001", planes[0].FlightNum)
	require.Len(t, planes[0].Passengers, 2)
	for _, p := range planes[0].Passengers {
		require.GreaterOrEqual(t, int64(p.ServiceTime), int64(1))
	}
}

func TestLoadRosterRejectsUnknownNationality(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	_, err = st.db.Exec(`INSERT INTO airports (code, name, city, country, preclearance) VALUES ('LHR', 'Heathrow', 'London', 'United Kingdom', 'false')`)
	require.NoError(t, err)
	_, err = st.db.Exec(`INSERT INTO arrivals (id, origin, airport_code, arrival_time, airline, flight_num, terminal, code_share) VALUES
		(1, 'London', 'LHR', '00:00:00', 'BA', 'BA001', '4', '')`)
	require.NoError(t, err)
	_, err = st.db.Exec(`INSERT INTO passengers (id, flight_num, nationality, service_time, enque_time, departure_time, processed) VALUES
		(10, 'BA001', 'martian', 0, 0, -1, 0)`)
	require.NoError(t, err)

	domestic, _ := distribution.NewTriangular(30, 60, 120)
	foreign, _ := distribution.NewTriangular(60, 120, 240)
	_, err = st.LoadRoster(testGrid(t), domestic, foreign, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestPersistServicedWritesBatch(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	_, err = st.db.Exec(`INSERT INTO passengers (id, flight_num, nationality, service_time, enque_time, departure_time, processed) VALUES
		(1, 'BA001', 'domestic', 0, 0, -1, 0)`)
	require.NoError(t, err)

	p := model.NewPassenger(1, "BA001", "domestic", 0, 5)
	p.Dispatch(0)
	p.Complete()

	require.NoError(t, st.PersistServiced([]*model.Passenger{p}))

	var processed int
	var departureTime int64
	row := st.db.QueryRow(`SELECT processed, departure_time FROM passengers WHERE id = 1`)
	require.NoError(t, row.Scan(&processed, &departureTime))
	require.Equal(t, 1, processed)
	require.Equal(t, int64(5), departureTime)
}
