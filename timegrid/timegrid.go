// Package timegrid converts between wall-clock HH:MM:SS strings and the
// tick counter the simulation engine advances internally.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"

	"customshall/backend/model"
)

// Grid ties a speed factor (real seconds represented by one tick) to the
// conversions between wall-clock strings and model.Tick.
type Grid struct {
	SpeedFactor int
}

// New builds a Grid, rejecting a non-positive speed factor up front so every
// caller downstream can divide by it freely.
func New(speedFactor int) (Grid, error) {
	if speedFactor <= 0 {
		return Grid{}, fmt.Errorf("timegrid: speedFactor must be positive, got %d", speedFactor)
	}
	return Grid{SpeedFactor: speedFactor}, nil
}

// ToTick parses "HH:MM:SS" and returns the tick it falls on:
// tick = floor((h*3600 + m*60 + s) / speedFactor).
func (g Grid) ToTick(hhmmss string) (model.Tick, error) {
	parts := strings.Split(hhmmss, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timegrid: malformed time %q, want HH:MM:SS", hhmmss)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timegrid: bad hour in %q: %w", hhmmss, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("timegrid: bad minute in %q: %w", hhmmss, err)
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("timegrid: bad second in %q: %w", hhmmss, err)
	}
	totalSeconds := h*3600 + m*60 + s
	return model.Tick(totalSeconds / g.SpeedFactor), nil
}

// ToWall is the inverse of ToTick, formatting a tick back to "HH:MM:SS".
func (g Grid) ToWall(t model.Tick) string {
	totalSeconds := int64(t) * int64(g.SpeedFactor)
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// EndOfDay returns the tick corresponding to 24:00:00 for this grid.
func (g Grid) EndOfDay() model.Tick {
	t, _ := g.ToTick("24:00:00")
	return t
}

// TicksPerHour returns how many ticks make up one simulated hour, rounding
// down; callers use it to bucket per-tick accounting into hourly snapshots.
func (g Grid) TicksPerHour() model.Tick {
	return model.Tick(3600 / g.SpeedFactor)
}
