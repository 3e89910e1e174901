package outpost

import (
	"testing"

	"megbase/internal/domain/catalog"
)

func newTestState(t *testing.T, seed int64) *GameState {
	t.Helper()
	g := New(catalog.Default(), seed)
	g.NewGame()
	g.DrainNotices()
	return g
}

func TestNewGameSeeding(t *testing.T) {
	g := newTestState(t, 7)

	if g.Stats.Day != 1 {
		t.Fatalf("day = %d, want 1", g.Stats.Day)
	}
	if g.Stats.Prestige != StartingPrestige || g.Stats.Morale != StartingMorale {
		t.Fatalf("stats = %+v", g.Stats)
	}
	if got := g.Roster.Count(); got != StartingAgents {
		t.Fatalf("agents = %d, want %d", got, StartingAgents)
	}
	if got := len(g.Missions.Pool); got != DailyPoolSize {
		t.Fatalf("pool = %d, want %d", got, DailyPoolSize)
	}

	// Starting agents carry distinct names and valid roles.
	seen := map[string]bool{}
	for _, a := range g.Roster.Agents {
		if seen[a.Name] {
			t.Fatalf("duplicate agent name %q", a.Name)
		}
		seen[a.Name] = true
		if _, ok := g.Catalogs.Role(a.Role); !ok {
			t.Fatalf("agent %s has unknown role %q", a.ID, a.Role)
		}
	}
}

func TestDrainNotices(t *testing.T) {
	g := newTestState(t, 7)
	g.pushNotice("test", "hello", nil)

	first := g.DrainNotices()
	if len(first) != 1 || first[0].Message != "hello" {
		t.Fatalf("drained %+v", first)
	}
	if again := g.DrainNotices(); len(again) != 0 {
		t.Fatalf("second drain returned %+v", again)
	}
}
