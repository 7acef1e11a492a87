// Package style holds the render style profile: colors, stroke width and
// canvas size, with an optional HCL profile file overriding the defaults.
package style

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/voidnova-code/streetmap/internal/hexcolor"
)

// Style is the resolved render style. It is built once per run and not
// mutated afterwards.
type Style struct {
	// Background is the canvas color, a hex string.
	Background string
	// EdgeColor is the street stroke color.
	EdgeColor string
	// EdgeWidth is the stroke width in points at 300 dpi.
	EdgeWidth float64
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int
}

// Defaults: a light cream background with near-black streets on a
// 12x8 inch canvas at 300 dpi.
const (
	DefaultBackground = "#f8eac2"
	DefaultEdgeColor  = "#111111"
	DefaultEdgeWidth  = 0.6
	DefaultWidth      = 3600
	DefaultHeight     = 2400
)

// Default returns the built-in style.
func Default() *Style {
	return &Style{
		Background: DefaultBackground,
		EdgeColor:  DefaultEdgeColor,
		EdgeWidth:  DefaultEdgeWidth,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// profile is the HCL shape of a style file. All attributes are optional;
// unset ones keep their defaults.
type profile struct {
	Background *string  `hcl:"background,optional"`
	EdgeColor  *string  `hcl:"edge_color,optional"`
	EdgeWidth  *float64 `hcl:"edge_width,optional"`
	Width      *int     `hcl:"width,optional"`
	Height     *int     `hcl:"height,optional"`
}

// palette exposes a few named colors to style expressions, so a profile
// can say `background = cream` instead of repeating hex strings.
func palette() map[string]cty.Value {
	return map[string]cty.Value{
		"cream": cty.StringVal("#f8eac2"),
		"ink":   cty.StringVal("#111111"),
		"white": cty.StringVal("#ffffff"),
		"black": cty.StringVal("#000000"),
		"slate": cty.StringVal("#2c3e50"),
	}
}

// Load reads an HCL style profile and merges it over the defaults.
// Colors must pass hex validation; unknown attributes are rejected by the
// decoder.
func Load(path string) (*Style, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse style file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{Variables: palette()}

	var p profile
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &p); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode style file %s: %w", path, diags)
	}

	s := Default()
	if p.Background != nil {
		v, ok := hexcolor.Normalize(*p.Background)
		if !ok {
			return nil, fmt.Errorf("style file %s: invalid background color %q", path, *p.Background)
		}
		s.Background = v
	}
	if p.EdgeColor != nil {
		v, ok := hexcolor.Normalize(*p.EdgeColor)
		if !ok {
			return nil, fmt.Errorf("style file %s: invalid edge color %q", path, *p.EdgeColor)
		}
		s.EdgeColor = v
	}
	if p.EdgeWidth != nil {
		if *p.EdgeWidth <= 0 {
			return nil, fmt.Errorf("style file %s: edge width must be positive", path)
		}
		s.EdgeWidth = *p.EdgeWidth
	}
	if p.Width != nil {
		if *p.Width <= 0 {
			return nil, fmt.Errorf("style file %s: width must be positive", path)
		}
		s.Width = *p.Width
	}
	if p.Height != nil {
		if *p.Height <= 0 {
			return nil, fmt.Errorf("style file %s: height must be positive", path)
		}
		s.Height = *p.Height
	}
	return s, nil
}
