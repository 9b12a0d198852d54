// Package pipeline runs the production economy: day-stepped crop growth on
// calendar-gated plots, fruit routed through finite processor pools under a
// fixed crop priority, and scheduled cask aging of the year's base wine.
package pipeline

import (
	"fmt"
	"sort"

	"cellarworks/internal/calendar"
	"cellarworks/internal/crop"
	"cellarworks/internal/growth"
	"cellarworks/internal/plot"
)

// Config describes one full simulation run.
type Config struct {
	Crops []crop.Spec
	Mods  growth.Modifiers
	Plots []plot.Plot

	Fermenters int
	Preservers int
	Driers     int

	Casks int
	// CaskFullBatchRequired runs the aging schedule only if every cask fills
	// on every batch day; otherwise the run repeats with CasksFallback casks
	// (zero when nil).
	CaskFullBatchRequired bool
	CasksFallback         *int

	Days           int // defaults to calendar.DaysPerYear
	StartDayOfYear int // 1-based, defaults to 1

	StartingFruit map[string]int
	StartingWine  map[string]int

	// ExternalDailyFruit feeds fruit from outside the plots (orchards,
	// trades) into the pipeline: units arriving per crop per 0-based day.
	ExternalDailyFruit map[string][]int
	// ExternalPriority orders external crop IDs behind the catalog crops
	// when filling processors. External IDs missing from the list queue
	// after it, in lexical order.
	ExternalPriority []string
}

// Simulation is a validated, ready-to-run configuration.
type Simulation struct {
	cfg      Config
	priority []string
}

// New validates the configuration and builds a simulation. Violations of the
// processor and calendar contracts panic: a bad config is a programming
// error, not a runtime condition.
func New(cfg Config) *Simulation {
	if cfg.Days == 0 {
		cfg.Days = calendar.DaysPerYear
	}
	if cfg.Days < 0 {
		panic(fmt.Sprintf("pipeline: run length %d days out of range", cfg.Days))
	}
	if cfg.StartDayOfYear == 0 {
		cfg.StartDayOfYear = 1
	}
	if cfg.StartDayOfYear < 1 || cfg.StartDayOfYear > calendar.DaysPerYear {
		panic(fmt.Sprintf("pipeline: start day-of-year %d out of range 1..%d", cfg.StartDayOfYear, calendar.DaysPerYear))
	}
	if cfg.Fermenters < 0 || cfg.Preservers < 0 || cfg.Driers < 0 || cfg.Casks < 0 {
		panic("pipeline: processor counts must be non-negative")
	}

	seen := make(map[string]bool, len(cfg.Crops))
	priority := make([]string, 0, len(cfg.Crops))
	for _, spec := range cfg.Crops {
		id := string(spec.ID)
		if seen[id] {
			panic(fmt.Sprintf("pipeline: duplicate crop %q", id))
		}
		if spec.Lifecycle == nil {
			panic(fmt.Sprintf("pipeline: crop %q has no lifecycle", id))
		}
		seen[id] = true
		priority = append(priority, id)
	}
	// The high-value replant crop always processes first.
	for i, id := range priority {
		if id == string(crop.Sunfruit) && i > 0 {
			copy(priority[1:i+1], priority[:i])
			priority[0] = id
			break
		}
	}
	for _, id := range cfg.ExternalPriority {
		if _, ok := cfg.ExternalDailyFruit[id]; !ok {
			panic(fmt.Sprintf("pipeline: external priority names unknown crop %q", id))
		}
		if !seen[id] {
			seen[id] = true
			priority = append(priority, id)
		}
	}
	for _, id := range sortedKeys(cfg.ExternalDailyFruit) {
		if !seen[id] {
			seen[id] = true
			priority = append(priority, id)
		}
	}
	for id := range cfg.StartingFruit {
		if !seen[id] {
			panic(fmt.Sprintf("pipeline: starting fruit names unknown crop %q", id))
		}
	}
	for id := range cfg.StartingWine {
		if !seen[id] {
			panic(fmt.Sprintf("pipeline: starting wine names unknown crop %q", id))
		}
	}

	return &Simulation{cfg: cfg, priority: priority}
}

// Priority returns the crop processing order the run uses.
func (s *Simulation) Priority() []string {
	out := make([]string, len(s.priority))
	copy(out, s.priority)
	return out
}

// Run steps the economy one day at a time and returns the cumulative totals.
// The daily order is fixed: finish processor batches, harvest active plots,
// take in external fruit, then fill fermenters, preservers, and driers.
func (s *Simulation) Run() Result {
	cfg := s.cfg

	led := NewLedger(s.priority)
	for id, n := range cfg.StartingFruit {
		led.Stock(id, n)
	}

	fermenters := NewPool(KindFermenter, cfg.Fermenters, FermenterDays, 1)
	preservers := NewPool(KindPreserver, cfg.Preservers, PreserverDays, 1)
	driers := NewPool(KindDrier, cfg.Driers, DrierDays, DrierInput)

	use := newUsage(s.priority)
	plots := make([]*plotState, 0, len(cfg.Plots))
	for _, p := range cfg.Plots {
		plots = append(plots, newPlotState(p, cfg.Crops))
	}

	dailyWine := make(map[string][]int, len(s.priority))
	for _, id := range s.priority {
		dailyWine[id] = make([]int, cfg.Days)
	}
	wineProduced := make(map[string]int, len(s.priority))
	preservesProduced := make(map[string]int, len(s.priority))
	driedProduced := make(map[string]int, len(s.priority))

	for day := 0; day < cfg.Days; day++ {
		dayOfYear := calendar.DayOfYear(cfg.StartDayOfYear, day)

		for id, n := range fermenters.Advance() {
			dailyWine[id][day] += n
			wineProduced[id] += n
		}
		for id, n := range preservers.Advance() {
			preservesProduced[id] += n
		}
		for id, n := range driers.Advance() {
			driedProduced[id] += n
		}

		for _, ps := range plots {
			if ps.plot.Calendar.Active(dayOfYear) {
				ps.step(cfg.Mods, use, led)
			}
		}
		for id, daily := range cfg.ExternalDailyFruit {
			if day < len(daily) {
				led.Harvest(id, daily[day])
			}
		}

		fermenters.Fill(led, s.priority)
		preservers.Fill(led, s.priority)
		driers.Fill(led, s.priority)
	}

	outcome := AgeWine(dailyWine, cfg.StartingWine, CaskPolicy{
		Casks:             cfg.Casks,
		FullBatchRequired: cfg.CaskFullBatchRequired,
		Fallback:          cfg.CasksFallback,
	}, s.priority, cfg.Days)

	res := Result{
		Days:              cfg.Days,
		CasksEffective:    outcome.Effective,
		FullCaskBatchMet:  outcome.FullBatchMet,
		CaskFills:         outcome.Fills,
		AllFruitProcessed: true,
	}
	if outcome.Effective > 0 {
		totalAged := 0
		for _, n := range outcome.Aged {
			totalAged += n
		}
		res.CaskUsesPerCask = float64(totalAged) / float64(outcome.Effective)
	}
	fermInFlight := fermenters.InFlight()
	presInFlight := preservers.InFlight()
	drierInFlight := driers.InFlight()
	for _, id := range s.priority {
		cr := CropResult{
			CropID:               id,
			FruitHarvested:       led.Harvested(id),
			FruitUnprocessed:     led.Available(id),
			WineProduced:         wineProduced[id],
			WineSold:             outcome.WineSold[id],
			AgedWineProduced:     outcome.Aged[id],
			WineInFermenters:     fermInFlight[id],
			PreservesProduced:    preservesProduced[id],
			PreservesInUnits:     presInFlight[id],
			DriedBatchesProduced: driedProduced[id],
			DriedInUnits:         drierInFlight[id],
			SeedsUsed:            use.seeds[id],
			FertilizerUsed:       use.fertilizer[id],
		}
		cr.FullyProcessed = cr.FruitUnprocessed == 0 &&
			cr.WineInFermenters == 0 && cr.PreservesInUnits == 0 && cr.DriedInUnits == 0
		if !cr.FullyProcessed {
			res.AllFruitProcessed = false
		}
		res.Crops = append(res.Crops, cr)
	}
	return res
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
