package geometry

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"freight_marketplace/internal/models"
)

// earthRadiusMiles per the FAI sphere.
const earthRadiusMiles = 3958.8

// HaversineMiles computes the great-circle distance in miles between two points.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dphi := (lat2 - lat1) * math.Pi / 180
	dlam := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dphi/2)*math.Sin(dphi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlam/2)*math.Sin(dlam/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// SortStops returns the stops ordered by sequence without mutating the input.
func SortStops(stops []models.Stop) []models.Stop {
	sorted := make([]models.Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Sequence < sorted[j].Sequence })
	return sorted
}

// locatedStops filters to stops that carry both coordinates, in sequence order.
func locatedStops(stops []models.Stop) []models.Stop {
	var located []models.Stop
	for _, s := range SortStops(stops) {
		if s.Lat != nil && s.Lng != nil {
			located = append(located, s)
		}
	}
	return located
}

// StopsToLineString builds a LineString from the stop coordinates ordered by
// sequence. Coordinates are [lng, lat] per GeoJSON convention. Returns nil
// when no stop carries coordinates.
func StopsToLineString(stops []models.Stop) *geom.LineString {
	located := locatedStops(stops)
	if len(located) == 0 {
		return nil
	}
	coords := make([]geom.Coord, 0, len(located))
	for _, s := range located {
		coords = append(coords, geom.Coord{*s.Lng, *s.Lat})
	}
	ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil
	}
	return ls
}

// TotalMiles sums consecutive segment distances over the stops that carry
// coordinates, rounded to 2 decimals. Returns nil when fewer than two stops
// are located.
func TotalMiles(stops []models.Stop) *float64 {
	located := locatedStops(stops)
	if len(located) < 2 {
		return nil
	}
	total := 0.0
	for i := 0; i < len(located)-1; i++ {
		total += HaversineMiles(
			*located[i].Lat, *located[i].Lng,
			*located[i+1].Lat, *located[i+1].Lng,
		)
	}
	rounded := math.Round(total*100) / 100
	return &rounded
}

// StopsToWKB builds the LineString and encodes it as WKB for storage.
// Returns nil bytes when there is no geometry to store.
func StopsToWKB(stops []models.Stop) ([]byte, error) {
	ls := StopsToLineString(stops)
	if ls == nil {
		return nil, nil
	}
	return wkb.Marshal(ls, binary.LittleEndian)
}

// WKBToGeoJSON converts stored WKB bytes into a GeoJSON document for API
// responses. Returns nil for empty input.
func WKBToGeoJSON(wkbBytes []byte) ([]byte, error) {
	if len(wkbBytes) == 0 {
		return nil, nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return nil, err
	}
	return gjson.Marshal(g)
}
