package roadnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTier(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		areaSqm  float64
		expected Tier
	}{
		{name: "city", areaSqm: 4.1e7, expected: TierDriveService},
		{name: "just below threshold", areaSqm: LargeAreaThresholdSqm - 1, expected: TierDriveService},
		{name: "exactly at threshold", areaSqm: LargeAreaThresholdSqm, expected: TierMajor},
		{name: "state sized region", areaSqm: 7.8e10, expected: TierMajor},
		{name: "zero area", areaSqm: 0, expected: TierDriveService},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SelectTier(tc.areaSqm))
		})
	}
}

func TestTierFilters(t *testing.T) {
	t.Parallel()

	major := TierMajor.Filter()
	for _, class := range []string{
		"motorway", "trunk", "primary", "secondary", "tertiary",
		"motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link",
		"residential", "unclassified", "living_street",
	} {
		assert.Contains(t, major, class)
	}

	assert.Contains(t, TierDrive.Filter(), `|service"`, "drive tier must exclude service roads")
	assert.NotContains(t, TierDriveService.Filter(), `|service"`, "drive_service tier must keep service roads")
	assert.Contains(t, TierDriveService.Filter(), "parking_aisle", "but not parking aisles")
}

func TestTierString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "drive", TierDrive.String())
	assert.Equal(t, "drive_service", TierDriveService.String())
	assert.Equal(t, "major", TierMajor.String())
	assert.Equal(t, "unknown", Tier(42).String())
}

func TestNetworkBounds(t *testing.T) {
	t.Parallel()

	n := NewNetwork()
	_, _, _, _, ok := n.Bounds()
	assert.False(t, ok, "empty network has no bounds")

	n.Ways = []Way{
		{ID: 1, Highway: "residential", Points: []Node{
			{ID: 10, Lat: 46.51, Lon: 6.60},
			{ID: 11, Lat: 46.53, Lon: 6.65},
		}},
		{ID: 2, Highway: "primary", Points: []Node{
			{ID: 12, Lat: 46.49, Lon: 6.63},
		}},
	}

	south, west, north, east, ok := n.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 46.49, south)
	assert.Equal(t, 6.60, west)
	assert.Equal(t, 46.53, north)
	assert.Equal(t, 6.65, east)
}
