// Package flatten removes the alpha channel from a PNG by compositing it
// onto an opaque solid-color background.
package flatten

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/voidnova-code/streetmap/internal/hexcolor"
)

// PNG flattens PNG files in place. It satisfies the renderer's Flattener
// interface; the renderer treats the whole step as best-effort.
type PNG struct{}

// New returns the PNG flattener.
func New() *PNG {
	return &PNG{}
}

// Flatten composites the image at path over an opaque canvas of the given
// background color and rewrites the file. An already-opaque image is left
// untouched. A malformed background hex defaults to white.
func (*PNG) Flatten(path string, background string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return nil
	}

	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), &image.Uniform{C: hexcolor.RGB(background)}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)

	// Write next to the target and rename, so a failure mid-write never
	// truncates the rendered output.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".flatten-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := png.Encode(tmp, out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode flattened image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace image: %w", err)
	}
	return nil
}
