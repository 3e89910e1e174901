package outpost

import "testing"

func TestLedgerModify(t *testing.T) {
	l := NewLedger()

	if !l.Modify("supplies", 10) {
		t.Fatalf("modify known kind failed")
	}
	if got := l.Get("supplies"); got != 60 {
		t.Fatalf("supplies = %d, want 60", got)
	}

	// Overdraw is refused and leaves the balance untouched.
	if l.Modify("supplies", -1000) {
		t.Fatalf("overdraw accepted")
	}
	if got := l.Get("supplies"); got != 60 {
		t.Fatalf("supplies after refused overdraw = %d, want 60", got)
	}

	if l.Modify("plutonium", 5) {
		t.Fatalf("unknown kind accepted")
	}
	if got := l.Get("plutonium"); got != 0 {
		t.Fatalf("unknown kind reads %d, want 0", got)
	}
}

func TestLedgerDailyConsumptionFloorsAtZero(t *testing.T) {
	l := NewLedger()
	l.Quantities["food"] = 1

	l.ApplyDailyConsumption()

	if got := l.Get("food"); got != 0 {
		t.Fatalf("food = %d, want 0", got)
	}
	if got := l.Get("almond_water"); got != 98 {
		t.Fatalf("almond_water = %d, want 98", got)
	}
}

func TestLedgerAllAtOrBelow(t *testing.T) {
	l := NewLedger()
	if l.AllAtOrBelow(10) {
		t.Fatalf("fresh ledger reported as depleted")
	}
	for _, kind := range l.Kinds() {
		l.Quantities[kind] = 3
	}
	if !l.AllAtOrBelow(10) {
		t.Fatalf("depleted ledger not detected")
	}
}
