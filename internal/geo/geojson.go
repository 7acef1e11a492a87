package geo

import (
	"encoding/json"
	"fmt"
)

// geoJSONGeometry mirrors the parts of a GeoJSON geometry object the
// renderer consumes. Coordinates stay raw until the type is known.
type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// DecodeGeoJSON parses a GeoJSON Polygon or MultiPolygon geometry into
// polygons of lat/lon points. GeoJSON positions are [lon, lat] pairs.
// Point and LineString boundaries (returned by Nominatim for some places)
// decode to an empty polygon set, which measures as zero area.
func DecodeGeoJSON(raw []byte) ([]Polygon, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var g geoJSONGeometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("failed to decode geojson geometry: %w", err)
	}

	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode polygon coordinates: %w", err)
		}
		return []Polygon{polygonFromCoords(coords)}, nil
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode multipolygon coordinates: %w", err)
		}
		polys := make([]Polygon, 0, len(coords))
		for _, pc := range coords {
			polys = append(polys, polygonFromCoords(pc))
		}
		return polys, nil
	default:
		return nil, nil
	}
}

func polygonFromCoords(coords [][][]float64) Polygon {
	poly := make(Polygon, 0, len(coords))
	for _, ring := range coords {
		points := make([]Point, 0, len(ring))
		for _, pos := range ring {
			if len(pos) < 2 {
				continue
			}
			points = append(points, Point{Lat: pos[1], Lon: pos[0]})
		}
		poly = append(poly, points)
	}
	return poly
}
