package geocode

import (
	"encoding/json"

	"github.com/voidnova-code/streetmap/internal/geo"
)

// searchResult mirrors the relevant parts of the Nominatim search payload.
// Coordinates arrive as strings; the boundingbox is [south, north, west,
// east].
type searchResult struct {
	PlaceID     int64           `json:"place_id"`
	DisplayName string          `json:"display_name"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	BoundingBox []string        `json:"boundingbox"`
	GeoJSON     json.RawMessage `json:"geojson"`
}

// Place is a geocoded place: its label, representative point, bounding
// box, and boundary polygon. The boundary exists only to be measured; it
// is discarded once the detail tier is chosen.
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
	South       float64
	West        float64
	North       float64
	East        float64
	Boundary    []geo.Polygon
}

// AreaSqm measures the boundary polygon in square meters.
func (p *Place) AreaSqm() float64 {
	return geo.AreaSqm(p.Boundary)
}
