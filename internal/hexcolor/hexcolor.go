// Package hexcolor validates and parses #rgb / #rrggbb color strings.
package hexcolor

import (
	"image/color"
	"strconv"
	"strings"
)

// Normalize trims the input and reports whether it is a valid hex color.
// A valid color starts with '#', is exactly 4 or 7 characters long, and
// contains only hexadecimal digits after the '#'. The trimmed value is
// returned with its case preserved; invalid input yields "" and false.
func Normalize(s string) (string, bool) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	if len(v) != 4 && len(v) != 7 {
		return "", false
	}
	for i := 1; i < len(v); i++ {
		if !isHexDigit(v[i]) {
			return "", false
		}
	}
	return v, true
}

// RGB converts a hex color to an opaque RGBA value. The 3-digit form
// duplicates each nibble, so #abc and #aabbcc yield the same triple.
// Malformed input falls back to opaque white so callers always have a
// paintable color.
func RGB(s string) color.RGBA {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	v, ok := Normalize(s)
	if !ok {
		return white
	}

	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return white
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
