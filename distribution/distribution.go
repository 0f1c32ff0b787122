// Package distribution samples service-time durations for booths.
package distribution

import (
	"fmt"
	"math"
	"math/rand"

	"customshall/backend/model"
)

// Triangular is a (low, mode, high) service-time distribution expressed in
// ticks. No third-party distribution library in the retrieval pack offers a
// triangular distribution (gonum's distuv package covers Normal, Uniform,
// Exponential, Gamma, Beta and a handful of others, but not Triangular), so
// this samples directly off math/rand via the standard inverse-CDF
// construction rather than pulling in a distribution library just for this
// one shape.
type Triangular struct {
	Low, Mode, High float64
}

// NewTriangular validates Low <= Mode <= High.
func NewTriangular(low, mode, high float64) (Triangular, error) {
	if !(low <= mode && mode <= high) {
		return Triangular{}, fmt.Errorf("distribution: triangular requires low <= mode <= high, got (%v, %v, %v)", low, mode, high)
	}
	return Triangular{Low: low, Mode: mode, High: high}, nil
}

// Sample draws one value in ticks via inverse-transform sampling, rounding
// to the nearest whole tick.
func (t Triangular) Sample(rng *rand.Rand) model.Tick {
	if t.High == t.Low {
		return model.Tick(math.Round(t.Low))
	}
	u := rng.Float64()
	fc := (t.Mode - t.Low) / (t.High - t.Low)
	var x float64
	if u < fc {
		x = t.Low + math.Sqrt(u*(t.High-t.Low)*(t.Mode-t.Low))
	} else {
		x = t.High - math.Sqrt((1-u)*(t.High-t.Low)*(t.High-t.Mode))
	}
	return model.Tick(math.Round(x))
}
