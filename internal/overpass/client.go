// Package overpass fetches road networks from the Overpass API, tiling
// large bounding boxes into bounded sub-queries.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voidnova-code/streetmap/internal/cachedir"
	"github.com/voidnova-code/streetmap/internal/ctxlog"
	"github.com/voidnova-code/streetmap/internal/roadnet"
)

// DefaultBaseURL is the public Overpass interpreter endpoint.
const DefaultBaseURL = "https://overpass-api.de/api/interpreter"

// DefaultMaxQueryAreaSqm bounds the area a single sub-query may cover.
// Larger boxes are quartered until each tile fits.
const DefaultMaxQueryAreaSqm = 2.5e9

// Options configures one FetchRoads call. The area limit is per call by
// design: a raised limit cannot leak into later fetches.
type Options struct {
	// Filter is the Overpass way filter clause, e.g. roadnet.TierDrive.Filter().
	Filter string
	// MaxQueryAreaSqm overrides DefaultMaxQueryAreaSqm when positive.
	MaxQueryAreaSqm float64
}

// Client queries the Overpass API. Responses pass through the byte cache
// keyed by endpoint and query text.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Cache      *cachedir.Cache
}

// NewClient returns a client against the public Overpass instance.
func NewClient(cache *cachedir.Cache) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  "streetmap/1.0 (github.com/voidnova-code/streetmap)",
		HTTPClient: &http.Client{Timeout: 300 * time.Second},
		Cache:      cache,
	}
}

// FetchRoads downloads all ways matching opts.Filter inside bbox and
// assembles them into a road network. The box is split into sub-queries
// whenever it exceeds the per-query area limit, and tile results are
// merged by element ID. An empty result is an error so callers can fall
// back to a broader filter.
func (c *Client) FetchRoads(ctx context.Context, bbox BBox, opts Options) (*roadnet.Network, error) {
	logger := ctxlog.FromContext(ctx)

	if opts.Filter == "" {
		return nil, fmt.Errorf("overpass fetch requires a way filter")
	}
	maxArea := opts.MaxQueryAreaSqm
	if maxArea <= 0 {
		maxArea = DefaultMaxQueryAreaSqm
	}

	tiles := bbox.tiles(maxArea)
	logger.Debug("Fetching road network.", "tiles", len(tiles), "max_query_area_sqm", maxArea)

	nodes := make(map[int64]roadnet.Node)
	ways := make(map[int64]element)
	var wayOrder []int64

	for _, tile := range tiles {
		resp, err := c.fetchTile(ctx, tile, opts.Filter)
		if err != nil {
			return nil, err
		}
		for _, el := range resp.Elements {
			switch el.Type {
			case "node":
				nodes[el.ID] = roadnet.Node{ID: el.ID, Lat: el.Lat, Lon: el.Lon}
			case "way":
				if _, seen := ways[el.ID]; !seen {
					ways[el.ID] = el
					wayOrder = append(wayOrder, el.ID)
				}
			}
		}
	}

	network := roadnet.NewNetwork()
	network.Nodes = nodes
	for _, id := range wayOrder {
		el := ways[id]
		points := make([]roadnet.Node, 0, len(el.Nodes))
		for _, nodeID := range el.Nodes {
			if n, ok := nodes[nodeID]; ok {
				points = append(points, n)
			}
		}
		if len(points) < 2 {
			continue
		}
		network.Ways = append(network.Ways, roadnet.Way{
			ID:      el.ID,
			Highway: el.Tags["highway"],
			Points:  points,
		})
	}

	if len(network.Ways) == 0 {
		return nil, fmt.Errorf("no roads matched the requested filter")
	}
	logger.Debug("Road network assembled.", "ways", len(network.Ways), "nodes", len(network.Nodes))
	return network, nil
}

func (c *Client) fetchTile(ctx context.Context, tile BBox, filter string) (*response, error) {
	logger := ctxlog.FromContext(ctx)
	query := buildQuery(tile, filter)
	cacheKey := c.BaseURL + "\n" + query

	body, ok := c.Cache.Get(cacheKey)
	if ok {
		logger.Debug("Overpass tile served from cache.")
	} else {
		var err error
		body, err = c.post(ctx, query)
		if err != nil {
			return nil, err
		}
		if err := c.Cache.Put(cacheKey, body); err != nil {
			logger.Warn("Failed to cache Overpass response.", "error", err)
		}
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}
	if resp.Remark != "" && strings.Contains(strings.ToLower(resp.Remark), "error") {
		return nil, fmt.Errorf("overpass query aborted: %s", resp.Remark)
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass service returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
