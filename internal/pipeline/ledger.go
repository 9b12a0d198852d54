package pipeline

// Ledger tracks unprocessed fruit per crop plus the cumulative harvested and
// consumed totals needed for conservation checks: at any point,
// harvested + stocked = consumed + available.
type Ledger struct {
	inventory map[string]int
	harvested map[string]int
	consumed  map[string]int
}

// NewLedger creates a ledger covering the given crop IDs.
func NewLedger(cropIDs []string) *Ledger {
	l := &Ledger{
		inventory: make(map[string]int, len(cropIDs)),
		harvested: make(map[string]int, len(cropIDs)),
		consumed:  make(map[string]int, len(cropIDs)),
	}
	for _, id := range cropIDs {
		l.inventory[id] = 0
	}
	return l
}

// Stock adds starting inventory without counting it as harvested.
func (l *Ledger) Stock(cropID string, n int) {
	if n <= 0 {
		return
	}
	l.inventory[cropID] += n
}

// Harvest records freshly harvested fruit.
func (l *Ledger) Harvest(cropID string, n int) {
	if n <= 0 {
		return
	}
	l.inventory[cropID] += n
	l.harvested[cropID] += n
}

// Available returns the current unprocessed inventory for a crop.
func (l *Ledger) Available(cropID string) int {
	return l.inventory[cropID]
}

// Consume removes n units of a crop's inventory for processing. It reports
// false, consuming nothing, when inventory is short.
func (l *Ledger) Consume(cropID string, n int) bool {
	if n <= 0 || l.inventory[cropID] < n {
		return false
	}
	l.inventory[cropID] -= n
	l.consumed[cropID] += n
	return true
}

// Harvested returns the cumulative harvested total for a crop.
func (l *Ledger) Harvested(cropID string) int {
	return l.harvested[cropID]
}

// Consumed returns the cumulative consumed total for a crop.
func (l *Ledger) Consumed(cropID string) int {
	return l.consumed[cropID]
}

// CropIDs returns every crop ID the ledger tracks.
func (l *Ledger) CropIDs() []string {
	out := make([]string, 0, len(l.inventory))
	for id := range l.inventory {
		out = append(out, id)
	}
	return out
}
