package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight_marketplace/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestHaversineMilesZeroDistance(t *testing.T) {
	assert.Zero(t, HaversineMiles(41.5, -81.7, 41.5, -81.7))
}

func TestHaversineMilesOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~69.09 miles on the FAI sphere.
	d := HaversineMiles(40, -80, 41, -80)
	assert.InDelta(t, 69.09, d, 0.05)

	// Symmetric
	assert.InDelta(t, d, HaversineMiles(41, -80, 40, -80), 1e-9)
}

func TestStopsToLineStringOrdersBySequence(t *testing.T) {
	stops := []models.Stop{
		{Sequence: 2, Lat: ptr(41), Lng: ptr(-81)},
		{Sequence: 1, Lat: ptr(40), Lng: ptr(-80)},
	}

	ls := StopsToLineString(stops)
	require.NotNil(t, ls)
	require.Equal(t, 2, ls.NumCoords())

	// [lng, lat] per GeoJSON convention, sequence 1 first
	assert.Equal(t, -80.0, ls.Coord(0)[0])
	assert.Equal(t, 40.0, ls.Coord(0)[1])
	assert.Equal(t, -81.0, ls.Coord(1)[0])
	assert.Equal(t, 41.0, ls.Coord(1)[1])
}

func TestStopsToLineStringSkipsUnlocated(t *testing.T) {
	stops := []models.Stop{
		{Sequence: 1, Lat: ptr(40), Lng: ptr(-80)},
		{Sequence: 2}, // no coordinates
		{Sequence: 3, Lat: ptr(41), Lng: ptr(-81)},
	}

	ls := StopsToLineString(stops)
	require.NotNil(t, ls)
	assert.Equal(t, 2, ls.NumCoords())
}

func TestStopsToLineStringNilWithoutCoordinates(t *testing.T) {
	assert.Nil(t, StopsToLineString(nil))
	assert.Nil(t, StopsToLineString([]models.Stop{{Sequence: 1}, {Sequence: 2}}))
}

func TestTotalMiles(t *testing.T) {
	stops := []models.Stop{
		{Sequence: 1, Lat: ptr(40), Lng: ptr(-80)},
		{Sequence: 2, Lat: ptr(41), Lng: ptr(-80)},
	}

	total := TotalMiles(stops)
	require.NotNil(t, total)
	assert.InDelta(t, 69.09, *total, 0.05)
}

func TestTotalMilesNilBelowTwoLocatedStops(t *testing.T) {
	assert.Nil(t, TotalMiles(nil))
	assert.Nil(t, TotalMiles([]models.Stop{
		{Sequence: 1, Lat: ptr(40), Lng: ptr(-80)},
		{Sequence: 2},
	}))
}

func TestWKBRoundTripToGeoJSON(t *testing.T) {
	stops := []models.Stop{
		{Sequence: 1, Lat: ptr(40), Lng: ptr(-80)},
		{Sequence: 2, Lat: ptr(41), Lng: ptr(-81)},
	}

	wkbBytes, err := StopsToWKB(stops)
	require.NoError(t, err)
	require.NotEmpty(t, wkbBytes)

	geoJSON, err := WKBToGeoJSON(wkbBytes)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(geoJSON), `"LineString"`))
	assert.True(t, strings.Contains(string(geoJSON), "-80"))
}

func TestWKBToGeoJSONEmptyInput(t *testing.T) {
	out, err := WKBToGeoJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
