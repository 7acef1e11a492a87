// Package roadnet models the street network of one render run and the
// area-based policy that decides how much of it to fetch.
package roadnet

// Node is an intersection or way vertex.
type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// Way is one street segment: an ordered polyline of nodes tagged with its
// OSM highway classification.
type Way struct {
	ID      int64
	Highway string
	Points  []Node
}

// Network is the road graph for a single render. It lives for one run and
// is never persisted.
type Network struct {
	Nodes map[int64]Node
	Ways  []Way
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{Nodes: make(map[int64]Node)}
}

// Bounds reports the geographic extent of all way points. ok is false for
// a network with no drawable geometry.
func (n *Network) Bounds() (south, west, north, east float64, ok bool) {
	for _, way := range n.Ways {
		for _, p := range way.Points {
			if !ok {
				south, north, west, east = p.Lat, p.Lat, p.Lon, p.Lon
				ok = true
				continue
			}
			if p.Lat < south {
				south = p.Lat
			}
			if p.Lat > north {
				north = p.Lat
			}
			if p.Lon < west {
				west = p.Lon
			}
			if p.Lon > east {
				east = p.Lon
			}
		}
	}
	return south, west, north, east, ok
}
