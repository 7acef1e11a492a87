package roadnet

// LargeAreaThresholdSqm is the boundary area (~2,000 km²) at which a place
// is treated as a large region and fetched with the curated major-road
// whitelist instead of the full drive+service detail.
const LargeAreaThresholdSqm = 2_000_000_000

// Tier is a road-classification whitelist, trading completeness for query
// and render cost.
type Tier int

const (
	// TierDrive covers drivable public roads without service roads. It is
	// the broad fallback when a more specific fetch fails.
	TierDrive Tier = iota
	// TierDriveService adds service roads for extra detail in small areas.
	TierDriveService
	// TierMajor restricts large regions to a curated whitelist of major
	// road classes to bound query cost.
	TierMajor
)

// SelectTier picks the detail tier for a boundary of the given area.
func SelectTier(areaSqm float64) Tier {
	if areaSqm >= LargeAreaThresholdSqm {
		return TierMajor
	}
	return TierDriveService
}

func (t Tier) String() string {
	switch t {
	case TierDrive:
		return "drive"
	case TierDriveService:
		return "drive_service"
	case TierMajor:
		return "major"
	default:
		return "unknown"
	}
}

// Overpass way filters per tier. The drive filters mirror the usual
// "drivable road" tag exclusions; the major filter is an explicit
// whitelist of road classes and their link variants.
const (
	majorFilter = `["highway"~"^(motorway|trunk|primary|secondary|tertiary|` +
		`motorway_link|trunk_link|primary_link|secondary_link|tertiary_link|` +
		`residential|unclassified|living_street)$"]`

	driveExclusions = `abandoned|bridleway|construction|corridor|cycleway|elevator|` +
		`escalator|footway|path|pedestrian|planned|platform|proposed|raceway|steps|track`

	driveFilter = `["highway"]["highway"!~"` + driveExclusions + `|service"]` +
		`["motor_vehicle"!~"no"]["motorcar"!~"no"]`

	driveServiceFilter = `["highway"]["highway"!~"` + driveExclusions + `"]` +
		`["motor_vehicle"!~"no"]["motorcar"!~"no"]` +
		`["service"!~"emergency_access|parking|parking_aisle|private"]`
)

// Filter returns the Overpass way filter clause for the tier.
func (t Tier) Filter() string {
	switch t {
	case TierMajor:
		return majorFilter
	case TierDriveService:
		return driveServiceFilter
	default:
		return driveFilter
	}
}
