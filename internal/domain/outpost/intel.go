package outpost

import (
	"fmt"
	"sort"

	"megbase/internal/domain/catalog"
)

// LocationIntel tracks what the outpost knows about one location. Knowledge
// level only ever rises: intel points may be drained by infiltration
// penalties, but the level already earned is permanent so players are not
// punished twice for the same loss.
type LocationIntel struct {
	LocationID        string   `json:"location_id"`
	KnowledgeLevel    int      `json:"knowledge_level"`
	IntelPoints       int      `json:"intel_points"`
	DiscoveredSecrets []string `json:"discovered_secrets"`
	CorruptionLevel   int      `json:"corruption_level"`
	SuspiciousAgents  []string `json:"suspicious_agents"`
}

type IntelLedger struct {
	Locations map[string]*LocationIntel `json:"locations"`
}

func NewIntelLedger(cats *catalog.Set) *IntelLedger {
	il := &IntelLedger{Locations: map[string]*LocationIntel{}}
	for _, loc := range cats.Locations() {
		il.Locations[loc.ID] = &LocationIntel{LocationID: loc.ID}
	}
	return il
}

type AddPointsResult struct {
	NewTotal  int
	NewLevel  int
	LeveledUp bool
}

// AddPoints adjusts a location's accumulated intel and recomputes knowledge
// level against the threshold table. Negative points are allowed; the level
// is monotonic regardless.
func (il *IntelLedger) AddPoints(locationID string, points int) (AddPointsResult, bool) {
	loc, ok := il.Locations[locationID]
	if !ok {
		return AddPointsResult{}, false
	}
	loc.IntelPoints += points
	level := knowledgeLevelFor(loc.IntelPoints)
	leveled := false
	if level > loc.KnowledgeLevel {
		loc.KnowledgeLevel = level
		leveled = true
	}
	return AddPointsResult{NewTotal: loc.IntelPoints, NewLevel: loc.KnowledgeLevel, LeveledUp: leveled}, true
}

// GrantIntel feeds points into the ledger and surfaces knowledge level-ups
// as notices attributed to their source.
func (g *GameState) GrantIntel(locationID string, points int, source string) (AddPointsResult, bool) {
	res, ok := g.Intel.AddPoints(locationID, points)
	if ok && res.LeveledUp {
		g.pushNotice("intel", fmt.Sprintf("knowledge of %s reached level %d (%s)", locationID, res.NewLevel, source), map[string]any{
			"location": locationID,
			"level":    res.NewLevel,
		})
	}
	return res, ok
}

func knowledgeLevelFor(points int) int {
	level := 0
	for i, threshold := range KnowledgeThresholds {
		if points >= threshold {
			level = i + 1
		}
	}
	return level
}

func (il *IntelLedger) Knowledge(locationID string) int {
	if loc, ok := il.Locations[locationID]; ok {
		return loc.KnowledgeLevel
	}
	return 0
}

func (il *IntelLedger) DiscoverSecret(locationID, secret string) bool {
	loc, ok := il.Locations[locationID]
	if !ok {
		return false
	}
	for _, s := range loc.DiscoveredSecrets {
		if s == secret {
			return false
		}
	}
	loc.DiscoveredSecrets = append(loc.DiscoveredSecrets, secret)
	return true
}

func (il *IntelLedger) MarkSuspicious(locationID, agentID string) bool {
	loc, ok := il.Locations[locationID]
	if !ok {
		return false
	}
	for _, id := range loc.SuspiciousAgents {
		if id == agentID {
			return false
		}
	}
	loc.SuspiciousAgents = append(loc.SuspiciousAgents, agentID)
	return true
}

func (il *IntelLedger) TotalPoints() int {
	total := 0
	for _, loc := range il.Locations {
		total += loc.IntelPoints
	}
	return total
}

func (il *IntelLedger) TotalSecrets() int {
	total := 0
	for _, loc := range il.Locations {
		total += len(loc.DiscoveredSecrets)
	}
	return total
}

// LocationIDs in sorted order, for deterministic iteration alongside rng use.
func (il *IntelLedger) LocationIDs() []string {
	ids := make([]string, 0, len(il.Locations))
	for id := range il.Locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LocationInfo is the capability-gated view over a location: each field set
// unlocks at a knowledge tier rather than exposing the raw catalog entry.
type LocationInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	KnowledgeLevel int      `json:"knowledge_level"`
	Difficulty     int      `json:"difficulty,omitempty"`
	Danger         int      `json:"danger,omitempty"`
	Entities       []string `json:"entities,omitempty"`
	Resources      []string `json:"resources,omitempty"`
	SpecialItems   []string `json:"special_items,omitempty"`
	Secrets        []string `json:"secrets,omitempty"`
}

func (il *IntelLedger) LocationInfo(locationID string, cats *catalog.Set) (LocationInfo, bool) {
	loc, ok := il.Locations[locationID]
	if !ok {
		return LocationInfo{}, false
	}
	def, ok := cats.LocationByID(locationID)
	if !ok {
		return LocationInfo{}, false
	}
	info := LocationInfo{
		Name:           def.Name,
		Description:    def.Description,
		KnowledgeLevel: loc.KnowledgeLevel,
	}
	if loc.KnowledgeLevel >= 1 {
		info.Difficulty = def.Difficulty
		info.Danger = def.Danger
	}
	if loc.KnowledgeLevel >= 2 {
		info.Entities = def.Entities
	}
	if loc.KnowledgeLevel >= 3 {
		info.Resources = def.Resources
	}
	if loc.KnowledgeLevel >= 4 {
		info.SpecialItems = def.SpecialItems
	}
	if loc.KnowledgeLevel >= 5 {
		info.Secrets = loc.DiscoveredSecrets
	}
	return info, true
}

// CorruptionWarning maps a location's corruption to the warning tier shown to
// the presentation layer.
func (il *IntelLedger) CorruptionWarning(locationID string) string {
	loc, ok := il.Locations[locationID]
	if !ok {
		return "Safe"
	}
	switch {
	case loc.CorruptionLevel >= 75:
		return "Critical"
	case loc.CorruptionLevel >= 50:
		return "High"
	case loc.CorruptionLevel >= 25:
		return "Moderate"
	}
	return "Safe"
}

type InvestigateResult struct {
	OK        bool
	Corrupted bool
	Message   string
}

// InvestigateAgent spends a location's intel points to probe an agent's
// suspicious flag. Confirmation is probabilistic even when the agent really
// is flagged.
func (g *GameState) InvestigateAgent(locationID, agentID string) InvestigateResult {
	loc, ok := g.Intel.Locations[locationID]
	if !ok {
		return InvestigateResult{Message: "unknown location"}
	}
	agent := g.Roster.Get(agentID)
	if agent == nil {
		return InvestigateResult{Message: "unknown agent"}
	}
	if loc.IntelPoints < InvestigateIntelCost {
		return InvestigateResult{Message: "insufficient intel points"}
	}
	loc.IntelPoints -= InvestigateIntelCost
	for _, id := range loc.SuspiciousAgents {
		if id == agentID {
			if g.rng.Float64() < InvestigateConfirmProb {
				return InvestigateResult{OK: true, Corrupted: true, Message: agent.Name + " is corrupted"}
			}
			return InvestigateResult{OK: true, Message: "no conclusive evidence against " + agent.Name}
		}
	}
	return InvestigateResult{OK: true, Message: agent.Name + " appears clean"}
}

type PurifyResult struct {
	OK      bool
	Cleared bool
	Message string
}

// PurifyAgent spends almond water to clear an agent from suspicion lists,
// relieving some of the affected location's corruption.
func (g *GameState) PurifyAgent(agentID string) PurifyResult {
	if g.Resources.Get("almond_water") < PurifyAlmondWaterCost {
		return PurifyResult{Message: "insufficient almond water"}
	}
	g.Resources.Modify("almond_water", -PurifyAlmondWaterCost)
	for _, locID := range g.Intel.LocationIDs() {
		loc := g.Intel.Locations[locID]
		for i, id := range loc.SuspiciousAgents {
			if id == agentID {
				loc.SuspiciousAgents = append(loc.SuspiciousAgents[:i], loc.SuspiciousAgents[i+1:]...)
				loc.CorruptionLevel = clamp(loc.CorruptionLevel-PurifyCorruptionRelief, 0, 100)
				return PurifyResult{OK: true, Cleared: true, Message: "agent purified"}
			}
		}
	}
	return PurifyResult{OK: true, Message: "purification had no visible effect"}
}
