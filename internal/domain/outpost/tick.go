package outpost

import "log/slog"

// DayReport is what one tick hands back to the caller: the new day number,
// everything that happened, and the ending if one fired.
type DayReport struct {
	Day     int      `json:"day"`
	Notices []Notice `json:"notices"`
	Ending  *Ending  `json:"ending,omitempty"`
}

type tickStep struct {
	name string
	run  func()
}

// AdvanceDay runs one daily tick in fixed order. Each step is isolated so a
// single subsystem fault cannot abort the rest of the sequence; the day
// counter advances exactly once no matter what.
func (g *GameState) AdvanceDay() DayReport {
	if g.Ended() {
		g.pushNotice("ending", "this run is already over", map[string]any{"ending_id": g.EndingID})
		return DayReport{Day: g.Stats.Day, Notices: g.DrainNotices()}
	}
	g.Stats.Day++

	var ending *Ending
	steps := []tickStep{
		{"resources", g.Resources.ApplyDailyConsumption},
		{"personnel", func() { g.Roster.DailyUpdate(g.rng) }},
		{"events", g.checkRandomEvent},
		{"missions", g.missionsDailyUpdate},
		{"defense", g.defenseDailyUpdate},
		{"diplomacy", g.diplomacyDailyUpdate},
		{"market", g.Market.DailyReset},
		{"rank", g.recomputeRank},
		{"endings", func() { ending = g.evaluateEndings() }},
	}
	for _, step := range steps {
		runStep(step)
	}

	if ending != nil {
		g.pushNotice("ending", ending.Title, map[string]any{"ending_id": ending.ID})
	}
	return DayReport{Day: g.Stats.Day, Notices: g.DrainNotices(), Ending: ending}
}

func runStep(step tickStep) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tick step failed", "step", step.name, "panic", r)
		}
	}()
	step.run()
}

// recomputeRank derives rank from prestige. Tiers reached for the first time
// grant their defense bonus exactly once and attempt one random hire; a rank
// lost to a prestige dip and regained later does not pay out again.
func (g *GameState) recomputeRank() {
	newRank := RankForPrestige(g.Stats.Prestige)
	g.Stats.Rank = newRank
	if newRank <= g.Stats.BestRank {
		return
	}
	table := RankTable()
	for tier := g.Stats.BestRank + 1; tier <= newRank; tier++ {
		g.Defense.Rating += table[tier].DefenseBonus
		if agent := g.Roster.AddRandom(g.Catalogs, g.rng); agent != nil {
			g.pushNotice("rank_up", "new agent joined: "+agent.Name, map[string]any{"agent": agent.ID, "rank": table[tier].Name})
		} else {
			g.pushNotice("rank_up", "rank achieved: "+table[tier].Name, map[string]any{"rank": table[tier].Name})
		}
	}
	g.Stats.BestRank = newRank
}
