package pipeline

// CropResult is one crop's cumulative totals for a full run.
type CropResult struct {
	CropID string

	FruitHarvested   int // fruit produced by plots and external sources
	FruitUnprocessed int // raw fruit left in inventory at end of run

	WineProduced     int // base wine completed during the run
	WineSold         int // base wine left unaged after the cask batches
	AgedWineProduced int
	WineInFermenters int // batches still mid-fermentation at end of run

	PreservesProduced int
	PreservesInUnits  int

	DriedBatchesProduced int
	DriedInUnits         int

	SeedsUsed      int
	FertilizerUsed int

	// FullyProcessed reports that every unit of this crop's fruit finished
	// processing: nothing left raw and nothing still inside a processor unit.
	FullyProcessed bool
}

// Result is a full run outcome: per-crop totals plus the shared cask facts.
type Result struct {
	Days  int
	Crops []CropResult

	CasksEffective   int   // cask count actually used after the full-batch policy
	FullCaskBatchMet bool  // every scheduled fill used every cask
	CaskFills        []int // casks filled on each batch day

	// CaskUsesPerCask is aged output divided by the effective cask count,
	// zero when no casks were used. Never exceeds CaskUsesPerYear.
	CaskUsesPerCask float64

	// AllFruitProcessed reports that every crop was fully processed, i.e. the
	// processor fleet kept up with the harvest.
	AllFruitProcessed bool
}

// ByCrop returns the result row for one crop.
func (r Result) ByCrop(cropID string) (CropResult, bool) {
	for _, c := range r.Crops {
		if c.CropID == cropID {
			return c, true
		}
	}
	return CropResult{}, false
}

// TotalHarvested sums fruit harvested across all crops.
func (r Result) TotalHarvested() int {
	total := 0
	for _, c := range r.Crops {
		total += c.FruitHarvested
	}
	return total
}

// TotalAgedWine sums aged wine across all crops.
func (r Result) TotalAgedWine() int {
	total := 0
	for _, c := range r.Crops {
		total += c.AgedWineProduced
	}
	return total
}
