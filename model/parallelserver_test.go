package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelServerUpdateStateTieBreaksByListOrder(t *testing.T) {
	outputs := &Outputs{}
	p := NewParallelServer("domestic", 3, 1, outputs)
	p.SetOnlineCount(3)
	p.UpdateState()
	require.True(t, p.HasSpace)
	require.Equal(t, p.Booths[0], p.MinQueue)
	require.Equal(t, 3, p.OnlineCount)
}

func TestParallelServerSetOnlineCountDoesNotInterruptService(t *testing.T) {
	outputs := &Outputs{}
	p := NewParallelServer("domestic", 2, 1, outputs)
	p.SetOnlineCount(2)
	booth := p.Booths[1]
	booth.Enqueue(NewPassenger(1, "FL1", "domestic", 0, 10))
	booth.Serve(0)
	require.True(t, booth.IsServing)

	p.SetOnlineCount(1) // booth 1 taken offline mid-service
	require.False(t, booth.Online)
	require.True(t, booth.IsServing, "in-flight service must not be interrupted")
}

func TestAssignmentAgentDrainsUntilNoSpace(t *testing.T) {
	outputs := &Outputs{}
	p := NewParallelServer("domestic", 1, 1, outputs)
	p.SetOnlineCount(1)
	agent := &AssignmentAgent{}
	agent.Append(NewPassenger(1, "FL1", "domestic", 0, 5))
	agent.Append(NewPassenger(2, "FL1", "domestic", 0, 5))

	agent.AssignPassengers(p)
	require.Len(t, agent.Queue, 1, "second passenger should remain queued: booth's mini-queue is full")
	require.Len(t, p.Booths[0].Queue, 1)
}
