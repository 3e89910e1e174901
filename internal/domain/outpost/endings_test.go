package outpost

import "testing"

func TestNoEndingOnFreshGame(t *testing.T) {
	g := newTestState(t, 13)
	if e := g.evaluateEndings(); e != nil {
		t.Fatalf("fresh game ended: %+v", e)
	}
}

func TestCollapseEnding(t *testing.T) {
	g := newTestState(t, 13)
	g.Stats.Morale = 20
	for _, kind := range g.Resources.Kinds() {
		g.Resources.Quantities[kind] = 5
	}
	for g.Roster.Count() > 2 {
		g.Roster.Remove(g.Roster.Agents[0].ID)
	}

	e := g.evaluateEndings()
	if e == nil || e.ID != "collapse" {
		t.Fatalf("ending = %+v, want collapse", e)
	}
	if !g.Ended() || g.EndingID != "collapse" {
		t.Fatalf("state not marked ended: %q", g.EndingID)
	}

	// Endings fire once.
	if again := g.evaluateEndings(); again != nil {
		t.Fatalf("ending fired twice: %+v", again)
	}
}

func TestSurvivalEndingRequiresAllClauses(t *testing.T) {
	g := newTestState(t, 13)
	g.Stats.Day = 50
	g.Stats.Prestige = 75
	g.Stats.Morale = 70

	if g.Roster.Count() < 5 {
		t.Fatalf("fresh roster below survival threshold")
	}
	e := g.evaluateEndings()
	if e == nil || e.ID != "survival" {
		t.Fatalf("ending = %+v, want survival", e)
	}
}

func TestTruthOutranksSurvival(t *testing.T) {
	g := newTestState(t, 13)
	g.Stats.Day = 50
	g.Stats.Prestige = 75
	g.Stats.Morale = 70
	g.Intel.AddPoints("level_0", 500)
	g.Intel.DiscoverSecret("level_0", "a")
	g.Intel.DiscoverSecret("level_0", "b")
	g.Intel.DiscoverSecret("level_0", "c")

	e := g.evaluateEndings()
	if e == nil || e.ID != "truth" {
		t.Fatalf("ending = %+v, want truth", e)
	}
}
