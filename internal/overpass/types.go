package overpass

// element is one entry of an Overpass JSON response. Nodes carry lat/lon;
// ways carry an ordered node-ID list plus tags.
type element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat,omitempty"`
	Lon   float64           `json:"lon,omitempty"`
	Nodes []int64           `json:"nodes,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// response is the top-level Overpass payload. A remark is set when the
// server aborted the query (timeout, memory limit) while still returning
// HTTP 200.
type response struct {
	Elements []element `json:"elements"`
	Remark   string    `json:"remark,omitempty"`
}
