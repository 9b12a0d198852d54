package pipeline

// CaskUsesPerYear is the number of scheduled batch fills in one year.
const CaskUsesPerYear = 2

// CaskPolicy configures the aging batcher.
type CaskPolicy struct {
	Casks int
	// FullBatchRequired demands that every cask can be filled on every batch
	// day; when that fails, the effective cask count drops to Fallback (or
	// zero when Fallback is nil).
	FullBatchRequired bool
	Fallback          *int
}

// CaskOutcome is the result of the year's aging batches.
type CaskOutcome struct {
	Aged         map[string]int // aged wine per crop
	WineSold     map[string]int // base wine left unaged per crop
	Fills        []int          // casks filled on each batch day
	Effective    int            // cask count actually used
	FullBatchMet bool
}

// CaskFillDays returns the 0-based day indices of the batch fills within a
// run of the given length: the first day, and the start of the second half.
func CaskFillDays(days int) []int {
	if days <= 0 {
		return nil
	}
	spacing := days / CaskUsesPerYear
	if spacing <= 0 {
		return []int{0}
	}
	fillDays := make([]int, 0, CaskUsesPerYear)
	for i := 0; i < CaskUsesPerYear; i++ {
		day := i * spacing
		if day < days {
			fillDays = append(fillDays, day)
		}
	}
	return fillDays
}

// AgeWine replays the year's daily base-wine completions against the batch
// schedule and returns what aged, what sold as base wine, and the effective
// cask count after the full-batch policy.
func AgeWine(dailyWine map[string][]int, startingWine map[string]int, policy CaskPolicy, priority []string, days int) CaskOutcome {
	fillDays := CaskFillDays(days)
	effective := policy.Casks
	if effective < 0 {
		effective = 0
	}

	if policy.FullBatchRequired && effective > 0 {
		aged, remaining, fills := runCaskBatches(dailyWine, startingWine, effective, fillDays, priority, days)
		met := true
		for _, fill := range fills {
			if fill != effective {
				met = false
				break
			}
		}
		if met {
			return CaskOutcome{Aged: aged, WineSold: remaining, Fills: fills, Effective: effective, FullBatchMet: true}
		}
		if policy.Fallback != nil {
			fallback := *policy.Fallback
			if fallback < 0 {
				fallback = 0
			}
			if fallback < effective {
				effective = fallback
			}
		} else {
			effective = 0
		}
		aged, remaining, fills = runCaskBatches(dailyWine, startingWine, effective, fillDays, priority, days)
		return CaskOutcome{Aged: aged, WineSold: remaining, Fills: fills, Effective: effective, FullBatchMet: false}
	}

	aged, remaining, fills := runCaskBatches(dailyWine, startingWine, effective, fillDays, priority, days)
	return CaskOutcome{Aged: aged, WineSold: remaining, Fills: fills, Effective: effective, FullBatchMet: true}
}

// runCaskBatches walks the year once, accumulating wine as it completes and
// filling up to casks on each batch day, by crop priority.
func runCaskBatches(dailyWine map[string][]int, startingWine map[string]int, casks int, fillDays []int, priority []string, days int) (aged, remaining map[string]int, fills []int) {
	inventory := make(map[string]int, len(dailyWine))
	aged = make(map[string]int, len(dailyWine))
	for id := range dailyWine {
		inventory[id] = startingWine[id]
		aged[id] = 0
	}

	fillSet := make(map[int]bool, len(fillDays))
	for _, d := range fillDays {
		fillSet[d] = true
	}

	for day := 0; day < days; day++ {
		for id, daily := range dailyWine {
			if day < len(daily) {
				inventory[id] += daily[day]
			}
		}
		if !fillSet[day] || casks <= 0 {
			continue
		}
		taken, rest := allocateByPriority(inventory, casks, priority)
		inventory = rest
		filled := 0
		for id, n := range taken {
			aged[id] += n
			filled += n
		}
		fills = append(fills, filled)
	}
	return aged, inventory, fills
}

// allocateByPriority takes up to capacity units from the inventory, highest
// priority first, returning what was taken and what remains.
func allocateByPriority(inventory map[string]int, capacity int, priority []string) (taken, remaining map[string]int) {
	remaining = make(map[string]int, len(inventory))
	taken = make(map[string]int, len(inventory))
	for id, n := range inventory {
		remaining[id] = n
		taken[id] = 0
	}
	if capacity < 0 {
		capacity = 0
	}
	for _, id := range priority {
		if capacity <= 0 {
			break
		}
		available := remaining[id]
		if available <= 0 {
			continue
		}
		take := available
		if take > capacity {
			take = capacity
		}
		taken[id] = take
		remaining[id] = available - take
		capacity -= take
	}
	return taken, remaining
}
