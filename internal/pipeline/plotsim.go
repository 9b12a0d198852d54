package pipeline

import (
	"cellarworks/internal/crop"
	"cellarworks/internal/growth"
	"cellarworks/internal/plot"
)

// usage accumulates seed and fertilizer units per crop across the year.
type usage struct {
	seeds      map[string]int
	fertilizer map[string]int
}

func newUsage(cropIDs []string) *usage {
	u := &usage{
		seeds:      make(map[string]int, len(cropIDs)),
		fertilizer: make(map[string]int, len(cropIDs)),
	}
	for _, id := range cropIDs {
		u.seeds[id] = 0
		u.fertilizer[id] = 0
	}
	return u
}

// cropState is the runtime state of one crop on one plot. It persists across
// inactive calendar gaps; only planting and harvest reset it.
type cropState struct {
	spec      crop.Spec
	tiles     int
	planted   bool
	remaining int // days until next harvest once planted
}

// plotState holds every crop grown on one plot, in a fixed order.
type plotState struct {
	plot  plot.Plot
	crops []*cropState
}

// newPlotState builds runtime state for a plot.
func newPlotState(p plot.Plot, crops []crop.Spec) *plotState {
	ps := &plotState{plot: p}
	for _, spec := range crops {
		tiles := p.TilesFor(string(spec.ID))
		if tiles <= 0 {
			continue
		}
		ps.crops = append(ps.crops, &cropState{spec: spec, tiles: tiles})
	}
	return ps
}

// step advances every crop on the plot by one active day, harvesting into
// the ledger. The planting day counts as a growth day, so a crop with an
// adjusted total of N days first harvests on the Nth active day.
func (ps *plotState) step(mods growth.Modifiers, use *usage, led *Ledger) {
	for _, cs := range ps.crops {
		id := string(cs.spec.ID)
		if !cs.planted {
			cs.planted = true
			use.seeds[id] += cs.tiles
			if mods.Fertilizer != growth.FertilizerNone {
				if cs.spec.Lifecycle.ReplantsEveryHarvest() {
					use.fertilizer[id] += cs.tiles
				} else {
					// Perennials are fertilized once per season the plot runs.
					use.fertilizer[id] += cs.tiles * ps.plot.Calendar.SeasonSpan()
				}
			}
			cs.remaining = growth.DaysToFirstHarvest(cs.spec.PhaseDays, mods)
		}
		cs.remaining--
		if cs.remaining > 0 {
			continue
		}
		led.Harvest(id, cs.tiles)
		cs.remaining = cs.spec.Lifecycle.DaysUntilNextHarvest(cs.spec, mods)
		if cs.spec.Lifecycle.ReplantsEveryHarvest() {
			use.seeds[id] += cs.tiles
			if mods.Fertilizer != growth.FertilizerNone {
				use.fertilizer[id] += cs.tiles
			}
		}
	}
}
