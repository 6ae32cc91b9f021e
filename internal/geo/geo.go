// Package geo filters buildings by location.
//
// Both filters scan the whole slice. There is no spatial index: the directory
// holds few enough buildings that a linear pass is the intended design.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/heartmarshall/company-directory/internal/domain"
)

const metersPerKm = 1000.0

// point converts latitude/longitude to an orb point (lon, lat order).
func point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceKm returns the great-circle distance in kilometers between two coordinates.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return orbgeo.Distance(point(lat1, lng1), point(lat2, lng2)) / metersPerKm
}

// FindWithinRadius returns the buildings whose great-circle distance from the
// center is at most radiusKm. Input order is preserved.
func FindWithinRadius(buildings []domain.Building, centerLat, centerLng, radiusKm float64) []domain.Building {
	center := point(centerLat, centerLng)
	out := make([]domain.Building, 0)
	for _, b := range buildings {
		if orbgeo.Distance(center, point(b.Latitude, b.Longitude))/metersPerKm <= radiusKm {
			out = append(out, b)
		}
	}
	return out
}

// FindWithinRectangle returns the buildings inside the box. All four edges are
// inclusive. Longitude is compared as a raw number, so a box crossing the
// antimeridian matches nothing.
func FindWithinRectangle(buildings []domain.Building, latMin, latMax, lngMin, lngMax float64) []domain.Building {
	bound := orb.Bound{Min: point(latMin, lngMin), Max: point(latMax, lngMax)}
	out := make([]domain.Building, 0)
	for _, b := range buildings {
		if bound.Contains(point(b.Latitude, b.Longitude)) {
			out = append(out, b)
		}
	}
	return out
}
