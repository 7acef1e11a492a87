// Package render plots a road network onto a raster canvas and writes it
// out as a PNG.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/voidnova-code/streetmap/internal/roadnet"
	"github.com/voidnova-code/streetmap/internal/style"
)

// DPI is the nominal print resolution of the output. Font and stroke
// sizes are specified in points and scaled by it.
const DPI = 300

// Label point sizes and layout constants.
const (
	titleFontPoints  = 17
	creditFontPoints = 10
	marginFraction   = 0.04
	labelInsetX      = 0.02
	titleInsetY      = 0.03
	creditInsetY     = 0.008
)

// Params describes one render: style, labels and the network to draw.
type Params struct {
	Style  *style.Style
	Title  string
	Credit string
	// Background overrides the style background when non-empty (the
	// environment override, already validated by the caller).
	Background string
}

// background returns the effective canvas color.
func (p Params) background() string {
	if p.Background != "" {
		return p.Background
	}
	return p.Style.Background
}

// WritePNG draws the network's ways (edges only, no nodes or other
// layers) onto an opaque canvas with bottom-right labels and saves it to
// outputPath, creating parent directories as needed.
func WritePNG(network *roadnet.Network, p Params, outputPath string) error {
	if p.Style == nil {
		p.Style = style.Default()
	}

	south, west, north, east, ok := network.Bounds()
	if !ok {
		return fmt.Errorf("road network has no drawable geometry")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	width, height := p.Style.Width, p.Style.Height
	dc := gg.NewContext(width, height)

	// Paint the background explicitly so no pixel is left transparent,
	// whatever the library default is.
	dc.SetHexColor(p.background())
	dc.Clear()

	proj := newProjection(south, west, north, east, width, height)

	dc.SetHexColor(p.Style.EdgeColor)
	dc.SetLineWidth(p.Style.EdgeWidth * DPI / 72)
	for _, way := range network.Ways {
		if len(way.Points) < 2 {
			continue
		}
		x, y := proj.toCanvas(way.Points[0].Lat, way.Points[0].Lon)
		dc.MoveTo(x, y)
		for _, pt := range way.Points[1:] {
			x, y = proj.toCanvas(pt.Lat, pt.Lon)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	if err := drawLabels(dc, p, width, height); err != nil {
		return err
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// drawLabels anchors the place name and the credit line to the
// bottom-right corner, both in the edge color.
func drawLabels(dc *gg.Context, p Params, width, height int) error {
	dc.SetHexColor(p.Style.EdgeColor)

	fw, fh := float64(width), float64(height)

	if p.Title != "" {
		face, err := fontFace(titleFontPoints)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.DrawStringAnchored(p.Title, fw*(1-labelInsetX), fh*(1-titleInsetY), 1, 1)
	}
	if p.Credit != "" {
		face, err := fontFace(creditFontPoints)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.DrawStringAnchored(p.Credit, fw*(1-labelInsetX), fh*(1-creditInsetY), 1, 1)
	}
	return nil
}

// projection maps lat/lon to canvas pixels: equirectangular with the
// longitude axis compressed by cos(midLat), scaled to fit inside the
// margin and centered.
type projection struct {
	south, west   float64
	cosMid        float64
	scale         float64
	offsetX       float64
	offsetY       float64
	heightDegrees float64
}

func newProjection(south, west, north, east float64, width, height int) projection {
	margin := marginFraction * math.Min(float64(width), float64(height))

	cosMid := math.Cos(((south + north) / 2) * math.Pi / 180)
	spanX := (east - west) * cosMid
	spanY := north - south

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin

	scale := math.Min(availW/spanX, availH/spanY)
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale <= 0 {
		// Degenerate extent (a single point); any finite scale will do.
		scale = 1
	}

	// Center the drawing inside the canvas.
	offsetX := (float64(width) - spanX*scale) / 2
	offsetY := (float64(height) - spanY*scale) / 2

	return projection{
		south:         south,
		west:          west,
		cosMid:        cosMid,
		scale:         scale,
		offsetX:       offsetX,
		offsetY:       offsetY,
		heightDegrees: spanY,
	}
}

func (pr projection) toCanvas(lat, lon float64) (float64, float64) {
	x := (lon - pr.west) * pr.cosMid * pr.scale
	y := (pr.heightDegrees - (lat - pr.south)) * pr.scale
	return x + pr.offsetX, y + pr.offsetY
}
