// Package geo provides the small amount of geodesy the renderer needs:
// decoding GeoJSON boundary geometry and measuring its area in square
// meters on the sphere.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is Earth's mean radius in meters.
const EarthRadiusMeters = 6371000.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Polygon is a list of rings. The first ring is the outer boundary and any
// further rings are holes, following the GeoJSON convention.
type Polygon [][]Point

// AreaSqm returns the total area of the polygons in square meters. Holes
// are subtracted from their outer ring; degenerate rings contribute zero.
func AreaSqm(polys []Polygon) float64 {
	var total float64
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		area := ringAreaSqm(poly[0])
		for _, hole := range poly[1:] {
			area -= ringAreaSqm(hole)
		}
		if area > 0 {
			total += area
		}
	}
	return total
}

// ringAreaSqm measures one ring as a spherical loop scaled to meters.
func ringAreaSqm(ring []Point) float64 {
	// A closing point equal to the first is redundant for s2 loops.
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	if len(ring) < 3 {
		return 0
	}

	pts := make([]s2.Point, 0, len(ring))
	for _, p := range ring {
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon)))
	}

	loop := s2.LoopFromPoints(pts)
	area := loop.Area()
	// Rings arrive in either winding order; a loop wound the wrong way
	// reports the complement of the sphere.
	if area > 2*math.Pi {
		area = 4*math.Pi - area
	}
	return area * EarthRadiusMeters * EarthRadiusMeters
}
