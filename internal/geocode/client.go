// Package geocode resolves free-form place queries to boundary polygons
// via the Nominatim search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/voidnova-code/streetmap/internal/cachedir"
	"github.com/voidnova-code/streetmap/internal/ctxlog"
	"github.com/voidnova-code/streetmap/internal/geo"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// UserAgent identifies this tool to the OSM services, per their usage policy.
const UserAgent = "streetmap/1.0 (github.com/voidnova-code/streetmap)"

// Client queries Nominatim. Responses pass through the byte cache so a
// kept cache makes repeated runs cheap.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Cache      *cachedir.Cache
}

// NewClient returns a client against the public Nominatim instance.
func NewClient(cache *cachedir.Cache) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  UserAgent,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Cache:      cache,
	}
}

// Search geocodes the query to a single best-match place including its
// boundary polygon. An unknown place or a service failure is an error;
// there is no retry here.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("polygon_geojson", "1")
	requestURL := c.BaseURL + "/search?" + params.Encode()

	body, err := c.fetch(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("place not found: %q", query)
	}

	return placeFromResult(&results[0])
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	if body, ok := c.Cache.Get(requestURL); ok {
		logger.Debug("Geocoding response served from cache.", "url", requestURL)
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.Cache.Put(requestURL, body); err != nil {
		logger.Warn("Failed to cache geocoding response.", "error", err)
	}
	return body, nil
}

func placeFromResult(r *searchResult) (*Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q in geocoding response: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q in geocoding response: %w", r.Lon, err)
	}

	if len(r.BoundingBox) != 4 {
		return nil, fmt.Errorf("geocoding response has no bounding box")
	}
	var bbox [4]float64
	for i, s := range r.BoundingBox {
		bbox[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bounding box value %q: %w", s, err)
		}
	}

	boundary, err := geo.DecodeGeoJSON(r.GeoJSON)
	if err != nil {
		return nil, err
	}

	return &Place{
		DisplayName: r.DisplayName,
		Lat:         lat,
		Lon:         lon,
		South:       bbox[0],
		North:       bbox[1],
		West:        bbox[2],
		East:        bbox[3],
		Boundary:    boundary,
	}, nil
}
