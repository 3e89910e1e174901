package outpost

import (
	"testing"

	"megbase/internal/domain/catalog"
)

func TestApplyEffects(t *testing.T) {
	g := newTestState(t, 19)

	g.ApplyEffects(catalog.EffectSpec{
		Resources:     map[string]int{"supplies": 15, "food": -30},
		Stats:         map[string]int{"morale": -10, "prestige": 5, "corruption": 3},
		IntelPoints:   12,
		IntelLocation: "level_1",
	})

	if got := g.Resources.Get("supplies"); got != 65 {
		t.Fatalf("supplies = %d, want 65", got)
	}
	if got := g.Resources.Get("food"); got != 70 {
		t.Fatalf("food = %d, want 70", got)
	}
	if g.Stats.Morale != StartingMorale-10 {
		t.Fatalf("morale = %d", g.Stats.Morale)
	}
	if g.Stats.Prestige != StartingPrestige+5 {
		t.Fatalf("prestige = %d", g.Stats.Prestige)
	}
	if g.Stats.Corruption != 3 {
		t.Fatalf("corruption = %d", g.Stats.Corruption)
	}
	if got := g.Intel.Locations["level_1"].IntelPoints; got != 12 {
		t.Fatalf("level_1 intel = %d, want 12", got)
	}
}

func TestApplyEffectsFloorsResources(t *testing.T) {
	g := newTestState(t, 19)
	g.Resources.Quantities["fuel"] = 4

	g.ApplyEffects(catalog.EffectSpec{Resources: map[string]int{"fuel": -50}})
	if got := g.Resources.Get("fuel"); got != 0 {
		t.Fatalf("fuel = %d, want 0", got)
	}
}

func TestApplyEffectsDefaultsIntelToHome(t *testing.T) {
	g := newTestState(t, 19)
	g.ApplyEffects(catalog.EffectSpec{IntelPoints: 7})
	if got := g.Intel.Locations[HomeLocationID].IntelPoints; got != 7 {
		t.Fatalf("home intel = %d, want 7", got)
	}
}

func TestApplyEffectsSuspicion(t *testing.T) {
	g := newTestState(t, 19)
	g.ApplyEffects(catalog.EffectSpec{Suspicion: true})

	flagged := 0
	for _, id := range g.Intel.LocationIDs() {
		flagged += len(g.Intel.Locations[id].SuspiciousAgents)
	}
	if flagged != 1 {
		t.Fatalf("flagged agents = %d, want 1", flagged)
	}
}

func TestEventConditionMet(t *testing.T) {
	g := newTestState(t, 19)
	g.Stats.Day = 3

	if g.eventConditionMet(catalog.EventCondition{MinDay: 5}) {
		t.Fatalf("day gate ignored")
	}
	if !g.eventConditionMet(catalog.EventCondition{MinDay: 3}) {
		t.Fatalf("satisfied day gate refused")
	}
	if g.eventConditionMet(catalog.EventCondition{MinCorruption: 1}) {
		t.Fatalf("corruption gate ignored")
	}
	if g.eventConditionMet(catalog.EventCondition{MinAlert: 2}) {
		t.Fatalf("alert gate ignored")
	}
}

func TestLocatedEventLandsOnListedSite(t *testing.T) {
	g := newTestState(t, 3)

	ev := catalog.Event{
		ID:    "echo_in_the_walls",
		Title: "Echo in the Walls",
		Effects: catalog.EffectSpec{
			IntelPoints: 5,
			Suspicion:   true,
		},
		Locations: []string{"level_2"},
		Weight:    1,
	}
	g.triggerEvent(ev)

	if got := g.Intel.Locations["level_2"].IntelPoints; got != 5 {
		t.Fatalf("level_2 intel = %d, want 5", got)
	}
	if got := g.Intel.Locations[HomeLocationID].IntelPoints; got != 0 {
		t.Fatalf("home intel = %d, want 0", got)
	}
	if got := len(g.Intel.Locations["level_2"].SuspiciousAgents); got != 1 {
		t.Fatalf("suspicious agents at level_2 = %d, want 1", got)
	}
	if len(g.ActiveEvents) != 1 || g.ActiveEvents[0].LocationID != "level_2" {
		t.Fatalf("triggered record = %+v", g.ActiveEvents)
	}
}

func TestUnlocatedEventKeepsHomeDefault(t *testing.T) {
	g := newTestState(t, 3)

	ev := catalog.Event{
		ID:      "quiet_day",
		Title:   "Quiet Day",
		Effects: catalog.EffectSpec{IntelPoints: 2},
		Weight:  1,
	}
	g.triggerEvent(ev)

	if got := g.Intel.Locations[HomeLocationID].IntelPoints; got != 2 {
		t.Fatalf("home intel = %d, want 2", got)
	}
	if g.ActiveEvents[0].LocationID != "" {
		t.Fatalf("unlocated event recorded site %q", g.ActiveEvents[0].LocationID)
	}
}
