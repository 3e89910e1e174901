package outpost

import (
	"sort"

	"megbase/internal/domain/catalog"
)

// TriggeredEvent is the per-run record of a fired event. It is transient
// state: cleared on new game and on load.
type TriggeredEvent struct {
	EventID    string `json:"event_id"`
	Day        int    `json:"day"`
	LocationID string `json:"location_id,omitempty"`
}

// ApplyEffects is the single interpreter for effect bundles, shared by random
// events, trade goods, diplomatic help and special events. Resource drains
// floor at zero rather than being refused.
func (g *GameState) ApplyEffects(spec catalog.EffectSpec) {
	for _, kind := range sortedKeys(spec.Resources) {
		amount := spec.Resources[kind]
		if !g.Resources.Modify(kind, amount) && amount < 0 {
			if _, known := g.Resources.Quantities[kind]; known {
				g.Resources.Quantities[kind] = 0
			}
		}
	}
	for _, stat := range sortedKeys(spec.Stats) {
		amount := spec.Stats[stat]
		switch stat {
		case "morale":
			g.Stats.AddMorale(amount)
		case "prestige":
			g.Stats.AddPrestige(amount)
		case "corruption":
			g.Stats.Corruption = clamp(g.Stats.Corruption+amount, 0, 100)
		case "defense_rating":
			g.Defense.Rating += amount
		}
	}
	if spec.IntelPoints != 0 {
		loc := spec.IntelLocation
		if loc == "" {
			loc = HomeLocationID
		}
		g.GrantIntel(loc, spec.IntelPoints, "event")
	}
	if spec.Suspicion {
		loc := spec.IntelLocation
		if loc == "" {
			loc = HomeLocationID
		}
		g.markRandomAgentSuspicious(loc)
	}
}

func (g *GameState) markRandomAgentSuspicious(locationID string) {
	if len(g.Roster.Agents) == 0 {
		return
	}
	agent := g.Roster.Agents[g.rng.Intn(len(g.Roster.Agents))]
	g.Intel.MarkSuspicious(locationID, agent.ID)
}

// checkRandomEvent runs the daily ~30% weighted draw over catalog events
// whose conditions hold, then applies the winner's effect bundle.
func (g *GameState) checkRandomEvent() {
	if g.rng.Float64() >= DailyEventChance {
		return
	}
	eligible := make([]catalog.Event, 0, len(g.Catalogs.Events()))
	totalWeight := 0.0
	for _, ev := range g.Catalogs.Events() {
		if !g.eventConditionMet(ev.Condition) {
			continue
		}
		if ev.Weight <= 0 {
			continue
		}
		eligible = append(eligible, ev)
		totalWeight += ev.Weight
	}
	if len(eligible) == 0 {
		return
	}
	roll := g.rng.Float64() * totalWeight
	var chosen catalog.Event
	for _, ev := range eligible {
		roll -= ev.Weight
		if roll < 0 {
			chosen = ev
			break
		}
	}
	if chosen.ID == "" {
		chosen = eligible[len(eligible)-1]
	}
	g.triggerEvent(chosen)
}

func (g *GameState) eventConditionMet(c catalog.EventCondition) bool {
	if g.Stats.Day < c.MinDay {
		return false
	}
	if g.Stats.Corruption < c.MinCorruption {
		return false
	}
	if g.Defense.AlertLevel < c.MinAlert {
		return false
	}
	return true
}

func (g *GameState) triggerEvent(ev catalog.Event) {
	effects := ev.Effects
	// A located event plays out at one of its listed sites: intel and
	// suspicion effects land there instead of the home level.
	site := ""
	if effects.IntelLocation == "" && len(ev.Locations) > 0 {
		site = ev.Locations[g.rng.Intn(len(ev.Locations))]
		effects.IntelLocation = site
	}
	g.ActiveEvents = append(g.ActiveEvents, TriggeredEvent{EventID: ev.ID, Day: g.Stats.Day, LocationID: site})
	g.ApplyEffects(effects)
	g.pushNotice("event", ev.Title, map[string]any{"event_id": ev.ID, "description": ev.Description})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
