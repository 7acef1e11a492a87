package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce   sync.Once
	fontParsed *opentype.Font
	fontErr    error
)

// fontFace builds a Go Regular face at the given point size for the
// canvas DPI. The embedded font is parsed once per process.
func fontFace(points float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", fontErr)
	}
	face, err := opentype.NewFace(fontParsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return face, nil
}
