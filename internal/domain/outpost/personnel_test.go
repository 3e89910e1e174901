package outpost

import (
	"math/rand"
	"testing"

	"megbase/internal/domain/catalog"
)

func TestHireValidation(t *testing.T) {
	cats := catalog.Default()
	rng := rand.New(rand.NewSource(1))
	r := NewRoster()

	a := r.Hire("Riley", "medic", cats, rng)
	if a == nil {
		t.Fatalf("hire failed")
	}
	if a.Role != "medic" || a.Status != StatusAvailable {
		t.Fatalf("hired agent = %+v", a)
	}
	if a.Medical < 3 {
		t.Fatalf("medic base skill = %d, want jittered around 4", a.Medical)
	}

	if r.Hire("Riley", "not_a_role", cats, rng) != nil {
		t.Fatalf("unknown role accepted")
	}

	for r.Count() < MaxAgents {
		r.Hire("Extra", "explorer", cats, rng)
	}
	if r.Hire("Overflow", "explorer", cats, rng) != nil {
		t.Fatalf("hire past capacity accepted")
	}
}

func TestAssignRelease(t *testing.T) {
	cats := catalog.Default()
	rng := rand.New(rand.NewSource(1))
	r := NewRoster()
	a := r.Hire("Riley", "scout", cats, rng)

	if !r.Assign(a.ID, OnMissionStatus("supply_run")) {
		t.Fatalf("assign failed")
	}
	if a.Available() {
		t.Fatalf("assigned agent still available")
	}
	if r.Assign(a.ID, OnMissionStatus("other")) {
		t.Fatalf("double assignment accepted")
	}
	if !r.Release(a.ID) {
		t.Fatalf("release failed")
	}
	if !a.Available() {
		t.Fatalf("released agent not available")
	}
}

func TestGrantExperienceLevelsUp(t *testing.T) {
	cats := catalog.Default()
	rng := rand.New(rand.NewSource(1))
	r := NewRoster()
	a := r.Hire("Riley", "explorer", cats, rng)

	before := a.Combat + a.Research + a.Survival + a.Diplomacy + a.Medical
	if !r.GrantExperience(a.ID, 250, rng) {
		t.Fatalf("grant failed")
	}
	if a.Level != 3 {
		t.Fatalf("level = %d, want 3", a.Level)
	}
	if a.Exp != 50 {
		t.Fatalf("leftover exp = %d, want 50", a.Exp)
	}
	after := a.Combat + a.Research + a.Survival + a.Diplomacy + a.Medical
	if after < before {
		t.Fatalf("skills decreased on level up: %d -> %d", before, after)
	}
}

func TestAddRandomUsesFreshNames(t *testing.T) {
	cats := catalog.Default()
	rng := rand.New(rand.NewSource(1))
	r := NewRoster()

	first := r.AddRandom(cats, rng)
	second := r.AddRandom(cats, rng)
	if first == nil || second == nil {
		t.Fatalf("random hires failed")
	}
	if first.Name == second.Name {
		t.Fatalf("duplicate random names %q", first.Name)
	}
}
