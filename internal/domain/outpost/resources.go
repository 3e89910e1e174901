package outpost

import "sort"

// Ledger is the named-quantity resource store. Quantities never go negative:
// a modification that would breach zero is refused instead of clamped.
type Ledger struct {
	Quantities map[string]int
	Rates      map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{
		Quantities: StartingResources(),
		Rates:      DailyConsumptionRates(),
	}
}

// Get returns 0 for unknown kinds, never an error.
func (l *Ledger) Get(kind string) int {
	return l.Quantities[kind]
}

// Modify applies delta to kind. It fails without mutating when the kind is
// unknown or the result would be negative.
func (l *Ledger) Modify(kind string, delta int) bool {
	current, ok := l.Quantities[kind]
	if !ok {
		return false
	}
	next := current + delta
	if next < 0 {
		return false
	}
	l.Quantities[kind] = next
	return true
}

// ApplyDailyConsumption drains each kind by its configured rate. Failures are
// ignored so depletion floors at zero rather than blocking the tick.
func (l *Ledger) ApplyDailyConsumption() {
	for _, kind := range l.Kinds() {
		rate, ok := l.Rates[kind]
		if !ok || rate <= 0 {
			continue
		}
		if !l.Modify(kind, -rate) {
			l.Quantities[kind] = 0
		}
	}
}

// Kinds returns all known kinds in sorted order. Random picks index into this
// list so outcomes stay deterministic for a given seed.
func (l *Ledger) Kinds() []string {
	kinds := make([]string, 0, len(l.Quantities))
	for k := range l.Quantities {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// AllAtOrBelow reports whether every kind is at or below threshold, the
// resources-critical test used by ending predicates.
func (l *Ledger) AllAtOrBelow(threshold int) bool {
	for _, qty := range l.Quantities {
		if qty > threshold {
			return false
		}
	}
	return true
}
