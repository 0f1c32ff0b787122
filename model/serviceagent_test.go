package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceAgentOfflineStaysOffline(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.Serve(0)
	require.False(t, a.IsServing)
	require.Nil(t, a.Current)
}

func TestServiceAgentPicksUpWhenIdleWithQueue(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.Online = true
	p := NewPassenger(1, "FL1", "domestic", 0, 3)
	a.Enqueue(p)

	a.Serve(10)
	require.True(t, a.IsServing)
	require.Equal(t, p, a.Current)
	require.Equal(t, Tick(13), p.DepartureTime)
}

func TestServiceAgentCompletesAndDoesNotPickUpSameTick(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.Online = true
	p1 := NewPassenger(1, "FL1", "domestic", 0, 3)
	a.Enqueue(p1)
	a.Serve(0) // picks up p1, departs at tick 3

	p2 := NewPassenger(2, "FL1", "domestic", 0, 3)
	a.Enqueue(p2)

	a.Serve(3) // completes p1; must NOT pick up p2 in the same tick
	require.False(t, a.IsServing)
	require.Nil(t, a.Current)
	require.True(t, p1.Processed)
	require.Len(t, outputs.Serviced, 1)
	require.Equal(t, p1, outputs.Serviced[0])

	a.Serve(4) // now picks up p2
	require.True(t, a.IsServing)
	require.Equal(t, p2, a.Current)
}

func TestServiceAgentRemainsServingUntilDeparture(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.Online = true
	p := NewPassenger(1, "FL1", "domestic", 0, 5)
	a.Enqueue(p)
	a.Serve(0)
	for tick := Tick(1); tick < 5; tick++ {
		a.Serve(tick)
		require.True(t, a.IsServing, "tick %d", tick)
	}
}

func TestUpdateUtilizationDeadTimeReset(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.UpdateUtilization(5, 10)
	require.Equal(t, Tick(5), a.UtilizationAnchor)
	require.Equal(t, 0.0, a.Utilization)
}

func TestUpdateUtilizationHourlySnapshot(t *testing.T) {
	outputs := &Outputs{}
	a := NewServiceAgent(0, "domestic", 1, outputs)
	a.Online = true
	p := NewPassenger(1, "FL1", "domestic", 0, 100)
	a.Enqueue(p)
	a.Serve(0)

	for tick := Tick(0); tick < 10; tick++ {
		a.UpdateUtilization(tick, 10)
	}
	require.Contains(t, a.HourlySeries, Tick(0))
	require.Equal(t, 0.0, a.Utilization)
	require.Equal(t, Tick(10), a.UtilizationAnchor)
}
