package utils

import (
	"testing"

	"github.com/cities-in-motion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	centre := domain.Point{Lat: 1.352083, Lon: 103.819836}
	changi := domain.Point{Lat: 1.3480297, Lon: 103.9793892}

	assert.InDelta(t, 0.0, HaversineDistance(centre, centre), 1e-9)
	assert.InDelta(t, 17.74, HaversineDistance(centre, changi), 0.1)
	assert.InDelta(t, HaversineDistance(centre, changi), HaversineDistance(changi, centre), 1e-9)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(domain.Point{Lat: 1.35, Lon: 103.8}))
	assert.False(t, ValidateCoordinates(domain.Point{Lat: 91, Lon: 0}))
	assert.False(t, ValidateCoordinates(domain.Point{Lat: 0, Lon: -181}))
}
