package overpass

import (
	"fmt"
	"math"

	"github.com/voidnova-code/streetmap/internal/geo"
)

// BBox is a geographic bounding box in degrees.
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// ApproxAreaSqm estimates the box area with an equirectangular
// approximation. It only steers query splitting, so the error at high
// latitudes is acceptable.
func (b BBox) ApproxAreaSqm() float64 {
	degMeters := geo.EarthRadiusMeters * math.Pi / 180
	midLat := (b.South + b.North) / 2
	height := (b.North - b.South) * degMeters
	width := (b.East - b.West) * degMeters * math.Cos(midLat*math.Pi/180)
	return math.Abs(height * width)
}

// split quarters the box at its midpoints.
func (b BBox) split() [4]BBox {
	midLat := (b.South + b.North) / 2
	midLon := (b.West + b.East) / 2
	return [4]BBox{
		{South: b.South, West: b.West, North: midLat, East: midLon},
		{South: b.South, West: midLon, North: midLat, East: b.East},
		{South: midLat, West: b.West, North: b.North, East: midLon},
		{South: midLat, West: midLon, North: b.North, East: b.East},
	}
}

// maxSplitDepth caps recursive quartering at 256 tiles so a huge query
// area cannot fan out without bound.
const maxSplitDepth = 4

// tiles returns the sub-boxes to query so that each stays within
// maxAreaSqm, subject to the depth cap.
func (b BBox) tiles(maxAreaSqm float64) []BBox {
	return appendTiles(nil, b, maxAreaSqm, 0)
}

func appendTiles(dst []BBox, b BBox, maxAreaSqm float64, depth int) []BBox {
	if depth >= maxSplitDepth || b.ApproxAreaSqm() <= maxAreaSqm {
		return append(dst, b)
	}
	for _, q := range b.split() {
		dst = appendTiles(dst, q, maxAreaSqm, depth+1)
	}
	return dst
}

// buildQuery renders the Overpass QL for one tile: all ways matching the
// highway filter inside the box, with their geometry nodes.
func buildQuery(b BBox, filter string) string {
	return fmt.Sprintf(
		"[out:json][timeout:180];way%s(%.7f,%.7f,%.7f,%.7f);out body;>;out skel qt;",
		filter, b.South, b.West, b.North, b.East,
	)
}
