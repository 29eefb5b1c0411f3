package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zee00111/islamic-project/internal/model"
)

func TestQibla_KnownBearings(t *testing.T) {
	cases := []struct {
		name       string
		loc        model.Location
		direction  float64
		distanceKm float64
	}{
		{"New York", model.Location{Lat: 40.7128, Lng: -74.0060}, 58.48, 10306},
		{"London", model.Location{Lat: 51.5074, Lng: -0.1278}, 118.99, 4770},
		{"Jakarta", model.Location{Lat: -6.2088, Lng: 106.8456}, 295.15, 7920},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Qibla(tc.loc)
			require.NoError(t, err)
			assert.InDelta(t, tc.direction, got.Direction, 0.5)
			assert.InDelta(t, tc.distanceKm, got.DistanceKm, 60)
			assert.GreaterOrEqual(t, got.Direction, 0.0)
			assert.Less(t, got.Direction, 360.0)
		})
	}
}

func TestQibla_Pure(t *testing.T) {
	loc := model.Location{Lat: 30.0444, Lng: 31.2357}
	first, err := Qibla(loc)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Qibla(loc)
		require.NoError(t, err)
		assert.InDelta(t, first.Direction, again.Direction, 1e-6)
		assert.InDelta(t, first.DistanceKm, again.DistanceKm, 1e-6)
	}
}

func TestQibla_AtKaaba(t *testing.T) {
	got, err := Qibla(Kaaba)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got.Direction))
	assert.Equal(t, 0.0, got.Direction)
	assert.Equal(t, 0.0, got.DistanceKm)
}

func TestQibla_InvalidLocation(t *testing.T) {
	_, err := Qibla(model.Location{Lat: -90.5, Lng: 10})
	assert.ErrorIs(t, err, model.ErrInvalidLocation)
}
