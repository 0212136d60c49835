package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwave-api/internal/domain/entity"
)

func TestCityNames_ClosedSet(t *testing.T) {
	names := entity.CityNames()
	assert.Equal(t, []string{"Delhi", "Mumbai", "Kolkata", "Chennai", "Bengaluru", "Chandigarh"}, names)
}

func TestFindCity(t *testing.T) {
	city, ok := entity.FindCity("Delhi")
	require.True(t, ok)
	assert.Equal(t, "Delhi", city.Name)
	assert.InDelta(t, 28.6139, city.Latitude, 0.0001)
	assert.InDelta(t, 77.2090, city.Longitude, 0.0001)

	_, ok = entity.FindCity("Pune")
	assert.False(t, ok)

	// lookup is exact, not case-insensitive
	_, ok = entity.FindCity("delhi")
	assert.False(t, ok)
}

func TestCities_ReturnsCopy(t *testing.T) {
	first := entity.Cities()
	first[0].Name = "mutated"

	second := entity.Cities()
	assert.Equal(t, "Delhi", second[0].Name)
}
