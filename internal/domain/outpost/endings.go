package outpost

// Ending predicates are data: a conjunction of clauses over named aggregate
// metrics, evaluated by one generic checker instead of per-ending branches.
type Metric string

const (
	MetricDay            Metric = "day"
	MetricPrestige       Metric = "prestige"
	MetricMorale         Metric = "morale"
	MetricAgents         Metric = "agents"
	MetricCorruption     Metric = "corruption"
	MetricLostAgents     Metric = "lost_agents"
	MetricFailedMissions Metric = "failed_missions"
	MetricTotalIntel     Metric = "total_intel"
	MetricSecrets        Metric = "secrets"
	MetricAllResources   Metric = "all_resources"
)

type ClauseOp string

const (
	OpAtLeast ClauseOp = ">="
	OpAtMost  ClauseOp = "<="
)

type Clause struct {
	Metric Metric   `json:"metric"`
	Op     ClauseOp `json:"op"`
	Value  int      `json:"value"`
}

type Ending struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Conditions  []Clause `json:"conditions"`
	Triggered   bool     `json:"triggered"`
}

// Endings returns the catalog in evaluation priority order; the first ending
// whose predicate holds wins the tick.
func Endings() []*Ending {
	return []*Ending{
		{
			ID: "collapse", Title: "The Dark Prevails",
			Description: "The base has fallen. Survivors scatter; entities walk the empty corridors.",
			Conditions: []Clause{
				{Metric: MetricMorale, Op: OpAtMost, Value: 20},
				{Metric: MetricAllResources, Op: OpAtMost, Value: 10},
				{Metric: MetricAgents, Op: OpAtMost, Value: 2},
			},
		},
		{
			ID: "horror", Title: "The Abyss Looks Back",
			Description: "The base still stands, but the agents smile too much and the walls whisper.",
			Conditions: []Clause{
				{Metric: MetricCorruption, Op: OpAtLeast, Value: 75},
				{Metric: MetricLostAgents, Op: OpAtLeast, Value: 3},
				{Metric: MetricFailedMissions, Op: OpAtLeast, Value: 8},
			},
		},
		{
			ID: "truth", Title: "Beyond the Veil",
			Description: "Through research and sacrifice you have learned what the Backrooms really are.",
			Conditions: []Clause{
				{Metric: MetricTotalIntel, Op: OpAtLeast, Value: 500},
				{Metric: MetricSecrets, Op: OpAtLeast, Value: 3},
			},
		},
		{
			ID: "survival", Title: "Guardians of the Backrooms",
			Description: "The outpost has become a beacon of hope. Survival is possible here.",
			Conditions: []Clause{
				{Metric: MetricDay, Op: OpAtLeast, Value: 50},
				{Metric: MetricPrestige, Op: OpAtLeast, Value: 75},
				{Metric: MetricMorale, Op: OpAtLeast, Value: 70},
				{Metric: MetricAgents, Op: OpAtLeast, Value: 5},
			},
		},
	}
}

func (g *GameState) metricValue(m Metric) (int, bool) {
	switch m {
	case MetricDay:
		return g.Stats.Day, true
	case MetricPrestige:
		return g.Stats.Prestige, true
	case MetricMorale:
		return g.Stats.Morale, true
	case MetricAgents:
		return g.Roster.Count(), true
	case MetricCorruption:
		return g.Stats.Corruption, true
	case MetricLostAgents:
		return g.Stats.LostAgents, true
	case MetricFailedMissions:
		return g.Stats.FailedMissions, true
	case MetricTotalIntel:
		return g.Intel.TotalPoints(), true
	case MetricSecrets:
		return g.Intel.TotalSecrets(), true
	}
	return 0, false
}

func (g *GameState) clauseHolds(c Clause) bool {
	if c.Metric == MetricAllResources {
		if c.Op == OpAtMost {
			return g.Resources.AllAtOrBelow(c.Value)
		}
		return !g.Resources.AllAtOrBelow(c.Value - 1)
	}
	value, ok := g.metricValue(c.Metric)
	if !ok {
		return false
	}
	switch c.Op {
	case OpAtLeast:
		return value >= c.Value
	case OpAtMost:
		return value <= c.Value
	}
	return false
}

// evaluateEndings triggers at most one untriggered ending per call, in
// priority order. Once triggered, an ending never fires again.
func (g *GameState) evaluateEndings() *Ending {
	for _, ending := range g.endings {
		if ending.Triggered {
			continue
		}
		holds := true
		for _, clause := range ending.Conditions {
			if !g.clauseHolds(clause) {
				holds = false
				break
			}
		}
		if holds {
			ending.Triggered = true
			g.EndingID = ending.ID
			return ending
		}
	}
	return nil
}
