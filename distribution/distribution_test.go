package distribution

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTriangularRejectsOutOfOrderBounds(t *testing.T) {
	_, err := NewTriangular(10, 5, 20)
	require.Error(t, err)
	_, err = NewTriangular(10, 20, 5)
	require.Error(t, err)
}

func TestTriangularSampleStaysWithinBounds(t *testing.T) {
	tri, err := NewTriangular(30, 60, 120)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s := tri.Sample(rng)
		require.GreaterOrEqual(t, int64(s), int64(30))
		require.LessOrEqual(t, int64(s), int64(120))
	}
}

func TestTriangularSampleDegenerateCase(t *testing.T) {
	tri, err := NewTriangular(5, 5, 5)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, int64(5), int64(tri.Sample(rng)))
}
