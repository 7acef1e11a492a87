package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/voidnova-code/streetmap/internal/cachedir"
	"github.com/voidnova-code/streetmap/internal/ctxlog"
	"github.com/voidnova-code/streetmap/internal/geocode"
	"github.com/voidnova-code/streetmap/internal/hexcolor"
	"github.com/voidnova-code/streetmap/internal/overpass"
	"github.com/voidnova-code/streetmap/internal/render"
	"github.com/voidnova-code/streetmap/internal/roadnet"
	"github.com/voidnova-code/streetmap/internal/style"
)

// attribution is the fixed credit tag on every rendered map.
const attribution = "@Voidnova"

// Geocoder resolves a place query to a boundary.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Place, error)
}

// RoadFetcher downloads a road network for a bounding box.
type RoadFetcher interface {
	FetchRoads(ctx context.Context, bbox overpass.BBox, opts overpass.Options) (*roadnet.Network, error)
}

// Flattener removes transparency from a saved image. A nil Flattener
// disables the step; any error it returns is treated as best-effort.
type Flattener interface {
	Flatten(path string, background string) error
}

// Renderer runs the pipeline: geocode, pick a detail tier, fetch roads,
// plot, flatten, clean the cache.
type Renderer struct {
	Geocoder  Geocoder
	Roads     RoadFetcher
	Flattener Flattener
	Style     *style.Style
	CacheDir  string
}

// Render produces a street map PNG for placeQuery at outputPath and
// returns the path. Geocoding and road-fetch failures (after the one
// fallback) are fatal; flattening and cache cleanup never are.
func (r *Renderer) Render(ctx context.Context, placeQuery, outputPath string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	st := r.Style
	if st == nil {
		st = style.Default()
	}

	// Environment override wins over the style background when valid.
	background := st.Background
	if v, ok := hexcolor.Normalize(os.Getenv(EnvBackground)); ok {
		background = v
	}

	place, err := r.Geocoder.Search(ctx, placeQuery)
	if err != nil {
		return "", fmt.Errorf("failed to geocode %q: %w", placeQuery, err)
	}

	areaSqm := place.AreaSqm()
	tier := roadnet.SelectTier(areaSqm)
	logger.Info("Place resolved.", "display_name", place.DisplayName, "area_sqm", areaSqm, "tier", tier.String())

	bbox := overpass.BBox{South: place.South, West: place.West, North: place.North, East: place.East}
	network, err := r.fetchWithFallback(ctx, bbox, tier, areaSqm)
	if err != nil {
		return "", err
	}

	params := render.Params{
		Style:      st,
		Background: background,
		Title:      displayLabel(placeQuery),
		Credit:     time.Now().Format("January") + " " + attribution,
	}
	if err := render.WritePNG(network, params, outputPath); err != nil {
		return "", fmt.Errorf("failed to render map: %w", err)
	}
	logger.Info("Map saved.", "path", outputPath, "ways", len(network.Ways))

	// Post-processing is best-effort from here on.
	if r.Flattener != nil {
		if err := r.Flattener.Flatten(outputPath, background); err != nil {
			logger.Warn("Failed to flatten image background.", "error", err)
		}
	} else {
		logger.Debug("No flattener available, skipping background flattening.")
	}

	if strings.TrimSpace(os.Getenv(EnvKeepCache)) == "1" {
		logger.Debug("Keep-cache flag set, skipping cache cleanup.", "dir", r.CacheDir)
	} else if err := cachedir.Clean(r.CacheDir); err != nil {
		logger.Warn("Cache cleanup incomplete.", "dir", r.CacheDir, "error", err)
	}

	return outputPath, nil
}

// fetchWithFallback fetches the road network for the chosen tier and
// falls back exactly once to the broad drivable-roads tier on failure.
// For large regions the per-query area limit is raised for this call
// only, capped at ten times the default.
func (r *Renderer) fetchWithFallback(ctx context.Context, bbox overpass.BBox, tier roadnet.Tier, areaSqm float64) (*roadnet.Network, error) {
	logger := ctxlog.FromContext(ctx)

	opts := overpass.Options{Filter: tier.Filter()}
	if tier == roadnet.TierMajor {
		opts.MaxQueryAreaSqm = min(areaSqm, 10*overpass.DefaultMaxQueryAreaSqm)
	}

	network, err := r.Roads.FetchRoads(ctx, bbox, opts)
	if err == nil {
		return network, nil
	}
	logger.Warn("Road fetch failed, falling back to drivable roads.", "tier", tier.String(), "error", err)

	network, err = r.Roads.FetchRoads(ctx, bbox, overpass.Options{Filter: roadnet.TierDrive.Filter()})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch road network: %w", err)
	}
	return network, nil
}

// displayLabel is the first comma-delimited component of the query, or
// the whole trimmed query when it has no comma.
func displayLabel(placeQuery string) string {
	head, _, _ := strings.Cut(placeQuery, ",")
	if label := strings.TrimSpace(head); label != "" {
		return label
	}
	return strings.TrimSpace(placeQuery)
}
