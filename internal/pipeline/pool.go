package pipeline

// Conversion parameters for the three processor kinds.
const (
	FermenterDays = 7
	PreserverDays = 3
	DrierDays     = 1
	DrierInput    = 5 // fruit units consumed per drier batch
)

// PoolKind names a processor kind.
type PoolKind string

const (
	KindFermenter PoolKind = "fermenter"
	KindPreserver PoolKind = "preserver"
	KindDrier     PoolKind = "drier"
)

// poolSlot is one processor unit: empty when daysLeft is zero.
type poolSlot struct {
	cropID   string
	daysLeft int
}

// Pool is a finite set of identical timed conversion units. A unit accepts
// one batch at a time and releases one completed good when its timer runs out.
type Pool struct {
	Kind     PoolKind
	Duration int // days per conversion
	Input    int // fruit units per batch

	slots []poolSlot
}

// NewPool creates a pool with the given unit count.
func NewPool(kind PoolKind, units, durationDays, inputPerBatch int) *Pool {
	if units < 0 {
		units = 0
	}
	return &Pool{
		Kind:     kind,
		Duration: durationDays,
		Input:    inputPerBatch,
		slots:    make([]poolSlot, units),
	}
}

// Units returns the pool's total unit count.
func (p *Pool) Units() int {
	return len(p.slots)
}

// Occupied returns how many units currently hold a batch.
func (p *Pool) Occupied() int {
	n := 0
	for _, s := range p.slots {
		if s.daysLeft > 0 {
			n++
		}
	}
	return n
}

// Advance ticks every busy unit's timer by one day and returns the batches
// completed today, per crop. A unit that completes is free for new input the
// same day.
func (p *Pool) Advance() map[string]int {
	done := make(map[string]int)
	for i := range p.slots {
		s := &p.slots[i]
		if s.daysLeft == 0 {
			continue
		}
		s.daysLeft--
		if s.daysLeft == 0 && s.cropID != "" {
			done[s.cropID]++
			s.cropID = ""
		}
	}
	return done
}

// Fill loads free units from the ledger, one batch per unit, walking crops in
// priority order. Each batch consumes Input fruit units; a crop short of a
// full batch is skipped. Returns batches started.
func (p *Pool) Fill(led *Ledger, priority []string) int {
	started := 0
	for i := range p.slots {
		s := &p.slots[i]
		if s.daysLeft != 0 {
			continue
		}
		cropID := pickByPriority(led, priority, p.Input)
		if cropID == "" {
			break
		}
		led.Consume(cropID, p.Input)
		s.cropID = cropID
		s.daysLeft = p.Duration
		started++
	}
	return started
}

// InFlight returns the batches currently mid-conversion, per crop.
func (p *Pool) InFlight() map[string]int {
	out := make(map[string]int)
	for _, s := range p.slots {
		if s.daysLeft > 0 && s.cropID != "" {
			out[s.cropID]++
		}
	}
	return out
}

// pickByPriority returns the highest-priority crop with at least minimum
// inventory, or "" when none qualifies.
func pickByPriority(led *Ledger, priority []string, minimum int) string {
	for _, id := range priority {
		if led.Available(id) >= minimum {
			return id
		}
	}
	return ""
}
