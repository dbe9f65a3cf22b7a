package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HarryCarrig/Trimmute/internal/geo"
)

func TestDistanceKm(t *testing.T) {
	london := [2]float64{51.5014, -0.1419}
	manchester := [2]float64{53.4794, -2.2453}

	t.Run("same point is zero", func(t *testing.T) {
		assert.Zero(t, geo.DistanceKm(london[0], london[1], london[0], london[1]))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := geo.DistanceKm(london[0], london[1], manchester[0], manchester[1])
		ba := geo.DistanceKm(manchester[0], manchester[1], london[0], london[1])
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("london to manchester", func(t *testing.T) {
		d := geo.DistanceKm(london[0], london[1], manchester[0], manchester[1])
		assert.InDelta(t, 262, d, 5)
	})

	t.Run("nan propagates", func(t *testing.T) {
		d := geo.DistanceKm(math.NaN(), 0, 51.5, -0.1)
		assert.True(t, math.IsNaN(d))
	})
}
