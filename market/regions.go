package market

// knownRegions are the bookmaker regions the odds provider accepts
var knownRegions = map[Region]struct{}{
	RegionEU:  {},
	RegionUK:  {},
	RegionUS:  {},
	RegionUS2: {},
	RegionAU:  {},
}

// ValidRegion reports whether the given region is one the odds provider accepts
func ValidRegion(r Region) bool {
	_, ok := knownRegions[r]

	return ok
}

// Regions returns the supported bookmaker regions
func Regions() []Region {
	return []Region{
		RegionEU,
		RegionUK,
		RegionUS,
		RegionUS2,
		RegionAU,
	}
}
