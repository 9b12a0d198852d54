// Package crop defines the crop catalog and the two lifecycle policies.
package crop

import "cellarworks/internal/growth"

// ID identifies a crop in the catalog.
type ID string

const (
	// Sunfruit is the high-value replant crop: the full phase sequence
	// restarts after every harvest and each cycle consumes new seed.
	Sunfruit ID = "sunfruit"
	// Mistfruit is the perennial crop: planted once, it regrows on a short
	// fixed cadence with no further seed cost.
	Mistfruit ID = "mistfruit"
)

// Lifecycle is the policy governing what happens to a crop after a harvest.
// New lifecycle policies plug in here without touching the plot simulator.
type Lifecycle interface {
	// Name is a short policy label for reports and logs.
	Name() string
	// ReplantsEveryHarvest reports whether each harvest consumes fresh seed
	// (and, when fertilizer is applied, a fresh fertilizer unit per tile).
	ReplantsEveryHarvest() bool
	// DaysUntilNextHarvest returns the remaining-days reset applied right
	// after a harvest completes.
	DaysUntilNextHarvest(s Spec, m growth.Modifiers) int
}

type replantLifecycle struct{}

func (replantLifecycle) Name() string               { return "replant" }
func (replantLifecycle) ReplantsEveryHarvest() bool { return true }
func (replantLifecycle) DaysUntilNextHarvest(s Spec, m growth.Modifiers) int {
	return growth.DaysToFirstHarvest(s.PhaseDays, m)
}

type perennialLifecycle struct{}

func (perennialLifecycle) Name() string               { return "perennial" }
func (perennialLifecycle) ReplantsEveryHarvest() bool { return false }
func (perennialLifecycle) DaysUntilNextHarvest(s Spec, m growth.Modifiers) int {
	// Speed bonuses affect only the first growth; regrowth is fixed.
	return s.RegrowDays
}

// Replant and Perennial are the two shipped lifecycle policies.
var (
	Replant   Lifecycle = replantLifecycle{}
	Perennial Lifecycle = perennialLifecycle{}
)

// Spec describes one crop: identity, base growth phases, and lifecycle.
type Spec struct {
	ID         ID
	PhaseDays  []int
	RegrowDays int // 0 for replant crops
	Lifecycle  Lifecycle
}

// BaseDays returns the unmodified days from planting to first harvest.
func (s Spec) BaseDays() int {
	total := 0
	for _, d := range s.PhaseDays {
		total += d
	}
	return total
}

var catalog = []Spec{
	{ID: Sunfruit, PhaseDays: []int{2, 3, 2, 3, 3}, Lifecycle: Replant},
	{ID: Mistfruit, PhaseDays: []int{2, 7, 7, 7, 5}, RegrowDays: 7, Lifecycle: Perennial},
}

// Catalog returns the fixed crop catalog.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog entry.
func ByID(id ID) (Spec, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// IDs returns every catalog crop ID as strings.
func IDs() []string {
	out := make([]string, len(catalog))
	for i, s := range catalog {
		out[i] = string(s.ID)
	}
	return out
}
