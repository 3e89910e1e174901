package outpost

import (
	"fmt"

	"megbase/internal/domain/catalog"
)

// MissionInstance is the mutable per-run state of a started mission. The
// template stays in the catalog; the instance references it by id.
type MissionInstance struct {
	TemplateID string          `json:"template_id"`
	DaysLeft   int             `json:"days_left"`
	AgentID    string          `json:"agent_id"`
	LocationID string          `json:"location_id,omitempty"`
	Completed  bool            `json:"completed"`
	Adjusted   catalog.Rewards `json:"adjusted_rewards"`
}

// MissionEngine owns the daily pool and the active instances. Invariant: a
// template id appears in at most one of {Pool, Active}.
type MissionEngine struct {
	Pool      []string           `json:"pool"`
	Active    []*MissionInstance `json:"active"`
	Completed map[string]bool    `json:"completed"`
}

func NewMissionEngine() *MissionEngine {
	return &MissionEngine{Completed: map[string]bool{}}
}

func (e *MissionEngine) inPool(templateID string) bool {
	for _, id := range e.Pool {
		if id == templateID {
			return true
		}
	}
	return false
}

func (e *MissionEngine) isActive(templateID string) bool {
	for _, inst := range e.Active {
		if inst.TemplateID == templateID {
			return true
		}
	}
	return false
}

// GenerateDailyPool refills the pool to its target size from templates not
// currently pooled or active. No-op when the pool is non-empty unless forced.
func (g *GameState) GenerateDailyPool(force bool) {
	e := g.Missions
	if len(e.Pool) > 0 && !force {
		return
	}
	candidates := make([]string, 0)
	for _, tmpl := range g.Catalogs.Missions() {
		if e.inPool(tmpl.ID) || e.isActive(tmpl.ID) {
			continue
		}
		candidates = append(candidates, tmpl.ID)
	}
	for len(e.Pool) < DailyPoolSize && len(candidates) > 0 {
		i := g.rng.Intn(len(candidates))
		e.Pool = append(e.Pool, candidates[i])
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
}

// insertChainUnlock puts a chain-unlocked template into the pool, honoring
// the same exclusivity as the daily refill.
func (e *MissionEngine) insertChainUnlock(templateID string) bool {
	if e.inPool(templateID) || e.isActive(templateID) {
		return false
	}
	e.Pool = append([]string{templateID}, e.Pool...)
	return true
}

type StartMissionResult struct {
	OK         bool
	Message    string
	LocationID string
	Difficulty int
}

// StartMission launches the pool entry at the given 1-based ordinal with the
// given agent: prerequisites, agent availability and location eligibility are
// all validated before any state changes.
func (g *GameState) StartMission(ordinal int, agentID string) StartMissionResult {
	e := g.Missions
	if ordinal < 1 || ordinal > len(e.Pool) {
		return StartMissionResult{Message: "invalid mission ordinal"}
	}
	tmpl, ok := g.Catalogs.MissionByID(e.Pool[ordinal-1])
	if !ok {
		return StartMissionResult{Message: "mission template missing from catalog"}
	}
	if msg, ok := g.prerequisitesMet(tmpl); !ok {
		return StartMissionResult{Message: msg}
	}
	agent := g.Roster.Get(agentID)
	if agent == nil || !agent.Available() {
		return StartMissionResult{Message: "agent not available"}
	}

	locationID, difficulty, ok := g.resolveLocation(tmpl)
	if !ok {
		return StartMissionResult{Message: "no eligible location for this mission"}
	}

	e.Pool = append(e.Pool[:ordinal-1], e.Pool[ordinal:]...)

	g.Roster.Assign(agentID, OnMissionStatus(tmpl.ID))
	inst := &MissionInstance{
		TemplateID: tmpl.ID,
		DaysLeft:   tmpl.Duration,
		AgentID:    agentID,
		LocationID: locationID,
		Adjusted:   adjustRewards(tmpl, difficulty),
	}
	// The instance must be active before the refill so the refill never
	// re-offers the template that was just started.
	e.Active = append(e.Active, inst)
	if len(e.Pool) == 0 {
		g.GenerateDailyPool(true)
	}
	return StartMissionResult{OK: true, Message: "mission started: " + tmpl.Title, LocationID: locationID, Difficulty: difficulty}
}

func (g *GameState) prerequisitesMet(tmpl catalog.MissionTemplate) (string, bool) {
	p := tmpl.Prereq
	for _, dep := range p.Completed {
		if !g.Missions.Completed[dep] {
			return "prerequisite mission not completed: " + dep, false
		}
	}
	if g.Stats.Prestige < p.MinPrestige {
		return "insufficient prestige", false
	}
	if g.Intel.TotalPoints() < p.MinIntel {
		return "insufficient total intel", false
	}
	if g.Stats.Corruption < p.MinCorruption {
		return "corruption requirement not met", false
	}
	if g.Stats.LostAgents < p.MinLostAgents {
		return "lost-agent requirement not met", false
	}
	return "", true
}

// resolveLocation picks a random eligible location for the template, or none
// for location-less missions. Eligibility is gated on the outpost's knowledge
// of the location and the template's difficulty ceiling.
func (g *GameState) resolveLocation(tmpl catalog.MissionTemplate) (string, int, bool) {
	if tmpl.NoLocation {
		return "", 1, true
	}
	candidates := tmpl.ValidLocations
	if len(candidates) == 0 {
		candidates = g.Intel.LocationIDs()
	}
	maxDifficulty := tmpl.MaxDifficulty
	if maxDifficulty == 0 {
		maxDifficulty = 5
	}
	eligible := make([]string, 0, len(candidates))
	difficulties := make(map[string]int, len(candidates))
	for _, locID := range candidates {
		def, ok := g.Catalogs.LocationByID(locID)
		if !ok {
			continue
		}
		if g.Intel.Knowledge(locID) < tmpl.MinKnowledge {
			continue
		}
		if def.Difficulty > maxDifficulty {
			continue
		}
		eligible = append(eligible, locID)
		difficulties[locID] = def.Difficulty
	}
	if len(eligible) == 0 {
		return "", 0, false
	}
	chosen := eligible[g.rng.Intn(len(eligible))]
	return chosen, difficulties[chosen], true
}

// adjustRewards scales template rewards by location difficulty using the
// template's per-key multipliers.
func adjustRewards(tmpl catalog.MissionTemplate, difficulty int) catalog.Rewards {
	scale := func(amount int, mult float64) int {
		return int(float64(amount) * (1 + float64(difficulty-1)*(mult-1)/4))
	}
	multFor := func(key string) float64 {
		if m, ok := tmpl.DifficultyMult[key]; ok {
			return m
		}
		return 1
	}
	adjusted := catalog.Rewards{}
	if len(tmpl.Rewards.Resources) > 0 {
		adjusted.Resources = make(map[string]int, len(tmpl.Rewards.Resources))
		for kind, amount := range tmpl.Rewards.Resources {
			adjusted.Resources[kind] = scale(amount, multFor("resources"))
		}
	}
	if len(tmpl.Rewards.Stats) > 0 {
		adjusted.Stats = make(map[string]int, len(tmpl.Rewards.Stats))
		for stat, amount := range tmpl.Rewards.Stats {
			adjusted.Stats[stat] = scale(amount, multFor(stat))
		}
	}
	adjusted.IntelPoints = scale(tmpl.Rewards.IntelPoints, multFor("intel_points"))
	return adjusted
}

// DeathProbability is the daily chance the assigned agent dies in the field,
// clamped to [0.05, 0.75]. Experience and location knowledge both push it
// down; difficulty and mission length push it up.
func DeathProbability(difficulty, duration, experience, knowledge int) float64 {
	p := float64(difficulty)*0.05 +
		float64(duration)*0.02 -
		float64(experience)*0.005 +
		(0.1 - float64(knowledge)*0.015)
	if p < DeathProbFloor {
		p = DeathProbFloor
	}
	if p > DeathProbCeil {
		p = DeathProbCeil
	}
	return p
}

// missionsDailyUpdate advances every active instance by one day, resolving
// agent deaths and completions. Completed instances leave the active set.
func (g *GameState) missionsDailyUpdate() {
	e := g.Missions
	for _, inst := range e.Active {
		inst.DaysLeft--

		tmpl, ok := g.Catalogs.MissionByID(inst.TemplateID)
		if !ok {
			inst.Completed = true
			continue
		}

		if agent := g.Roster.Get(inst.AgentID); agent != nil {
			difficulty, knowledge := 1, 0
			if inst.LocationID != "" {
				if def, ok := g.Catalogs.LocationByID(inst.LocationID); ok {
					difficulty = def.Difficulty
				}
				knowledge = g.Intel.Knowledge(inst.LocationID)
			}
			p := DeathProbability(difficulty, tmpl.Duration, agent.Exp, knowledge)
			if g.rng.Float64() < p {
				g.resolveAgentDeath(inst, tmpl, agent)
				continue
			}
		}

		if inst.DaysLeft <= 0 {
			g.resolveMissionSuccess(inst, tmpl)
		}
	}

	remaining := e.Active[:0]
	for _, inst := range e.Active {
		if !inst.Completed {
			remaining = append(remaining, inst)
		}
	}
	e.Active = remaining
}

// resolveAgentDeath removes the agent permanently, charges the recovery
// bundle, and closes the mission without rewards.
func (g *GameState) resolveAgentDeath(inst *MissionInstance, tmpl catalog.MissionTemplate, agent *Agent) {
	level := agent.Level
	name := agent.Name
	g.Roster.Remove(agent.ID)
	g.Stats.LostAgents++
	g.Stats.FailedMissions++
	g.Stats.AddMorale(-(10 + 2*level))
	g.Stats.AddPrestige(-(2 + level))
	if !g.Resources.Modify("medical", -DeathRecoveryMedical) {
		g.Resources.Quantities["medical"] = 0
	}
	if !g.Resources.Modify("supplies", -DeathRecoverySupplies) {
		g.Resources.Quantities["supplies"] = 0
	}
	if inst.LocationID != "" && g.rng.Float64() < DeathIntelLossChance {
		g.GrantIntel(inst.LocationID, -DeathIntelLoss, "agent lost")
	}
	inst.Completed = true
	g.pushNotice("agent_death", fmt.Sprintf("%s died during mission %q", name, tmpl.Title), map[string]any{
		"agent": name, "mission": tmpl.ID, "location": inst.LocationID,
	})
}

// resolveMissionSuccess grants adjusted rewards, releases the agent with
// experience, records completion, and resolves any chain unlock.
func (g *GameState) resolveMissionSuccess(inst *MissionInstance, tmpl catalog.MissionTemplate) {
	for _, kind := range sortedKeys(inst.Adjusted.Resources) {
		g.Resources.Modify(kind, inst.Adjusted.Resources[kind])
	}
	g.ApplyEffects(catalogStatsOnly(inst.Adjusted.Stats))
	if inst.Adjusted.IntelPoints != 0 && inst.LocationID != "" {
		g.GrantIntel(inst.LocationID, inst.Adjusted.IntelPoints, "mission "+tmpl.ID)
	} else if inst.Adjusted.IntelPoints != 0 {
		g.GrantIntel(HomeLocationID, inst.Adjusted.IntelPoints, "mission "+tmpl.ID)
	}

	if g.Roster.Get(inst.AgentID) != nil {
		g.Roster.Release(inst.AgentID)
		g.Roster.GrantExperience(inst.AgentID, MissionExpGrant, g.rng)
	}

	inst.Completed = true
	g.Missions.Completed[tmpl.ID] = true

	if tmpl.Chain != nil && inst.LocationID != "" {
		if loc, ok := g.Intel.Locations[inst.LocationID]; ok && loc.IntelPoints >= tmpl.Chain.IntelRequired {
			if g.Missions.insertChainUnlock(tmpl.Chain.NextID) {
				g.pushNotice("chain_unlock", "new mission available: "+tmpl.Chain.NextID, map[string]any{"mission": tmpl.Chain.NextID})
			}
		}
	}

	g.pushNotice("mission_resolved", "mission completed: "+tmpl.Title, map[string]any{
		"mission": tmpl.ID, "agent": inst.AgentID, "location": inst.LocationID,
	})
}

func catalogStatsOnly(stats map[string]int) (spec catalog.EffectSpec) {
	spec.Stats = stats
	return spec
}
