package customs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"customshall/backend/model"
)

// TestGenerateReportTruncatesOnceOnTheAggregate pins down the aggregate
// computed from two passengers whose waits (119 and 1 ticks at
// speedFactor=1) mean to 60 ticks, i.e. 1 minute flat. Truncating each
// passenger's wait to whole minutes before averaging would instead give
// (1+0)/2 = 0.5; truncating the mean once gives the correct 1.
func TestGenerateReportTruncatesOnceOnTheAggregate(t *testing.T) {
	h := testHall()
	p1 := model.NewPassenger(1, "FL1", "domestic", 0, 1)
	p1.DepartureTime = 119
	p1.Complete()
	p2 := model.NewPassenger(2, "FL1", "domestic", 0, 1)
	p2.DepartureTime = 1
	p2.Complete()
	h.Outputs.Append(p1)
	h.Outputs.Append(p2)

	rows := h.GenerateReport(360, 1)
	require.Len(t, rows, 1)
	require.Equal(t, "domestic", rows[0].Type)
	require.Equal(t, 1.0, rows[0].AveWait, "mean-then-truncate, not per-passenger-truncate-then-mean")
	require.Equal(t, 1.0, rows[0].MaxWait)
}

// TestGenerateReportMaxWaitIsTruncatedTowardZero checks the max-wait
// column separately: 185 ticks at speedFactor=1 is 3.083... minutes, and
// must render as 3, not 3.08 or 4.
func TestGenerateReportMaxWaitIsTruncatedTowardZero(t *testing.T) {
	h := testHall()
	p := model.NewPassenger(1, "FL1", "foreign", 0, 1)
	p.DepartureTime = 185
	p.Complete()
	h.Outputs.Append(p)

	rows := h.GenerateReport(360, 1)
	require.Len(t, rows, 1)
	require.Equal(t, 3.0, rows[0].MaxWait)
	require.Equal(t, 3.0, rows[0].AveWait)
}
