package hexcolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "six digit lowercase", input: "#f8eac2", expected: "#f8eac2", valid: true},
		{name: "three digit", input: "#abc", expected: "#abc", valid: true},
		{name: "mixed case preserved", input: "#AbCdEf", expected: "#AbCdEf", valid: true},
		{name: "surrounding whitespace trimmed", input: "  #ffffff\n", expected: "#ffffff", valid: true},
		{name: "empty string", input: "", valid: false},
		{name: "missing hash", input: "f8eac2", valid: false},
		{name: "wrong length five", input: "#abcd", valid: false},
		{name: "wrong length eight", input: "#ff00ff00", valid: false},
		{name: "non hex digit", input: "#12345g", valid: false},
		{name: "hash only", input: "#", valid: false},
		{name: "multibyte junk", input: "#ffffé", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.input)
			assert.Equal(t, tc.valid, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRGB(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{name: "six digit", input: "#112233", expected: color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}},
		{name: "three digit expands nibbles", input: "#abc", expected: color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{name: "uppercase", input: "#FF00FF", expected: color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}},
		{name: "malformed falls back to white", input: "not-a-color", expected: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "empty falls back to white", input: "", expected: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RGB(tc.input))
		})
	}
}

// The short and long forms of the same color must resolve identically so
// the flattener paints the exact background the canvas used.
func TestRGB_ShortLongEquivalence(t *testing.T) {
	assert.Equal(t, RGB("#aabbcc"), RGB("#abc"))
	assert.Equal(t, RGB("#ffffff"), RGB("#fff"))
}
