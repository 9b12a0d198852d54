// Package plot describes land plots: named tile groups with an activity
// calendar and per-crop tile counts.
package plot

import "cellarworks/internal/calendar"

// AllCrops is the shared tile bucket: tiles under this key count for
// whichever crop the simulation asks about.
const AllCrops = "all"

// Plot is one named patch of land.
type Plot struct {
	Name        string
	TilesByCrop map[string]int
	Calendar    calendar.Calendar
}

// TilesFor returns the tile count for a crop, falling back to the shared
// "all" bucket when the crop has no explicit entry.
func (p Plot) TilesFor(cropID string) int {
	if tiles, ok := p.TilesByCrop[cropID]; ok {
		return tiles
	}
	return p.TilesByCrop[AllCrops]
}

// TotalTiles returns the plot's total tile count across configured crops.
func (p Plot) TotalTiles() int {
	if tiles, ok := p.TilesByCrop[AllCrops]; ok && len(p.TilesByCrop) == 1 {
		return tiles
	}
	total := 0
	for _, tiles := range p.TilesByCrop {
		total += tiles
	}
	return total
}
