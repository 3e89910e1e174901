package outpost

import (
	"math/rand"

	"megbase/internal/domain/catalog"
)

type GameStats struct {
	Day            int `json:"day"`
	Prestige       int `json:"prestige"`
	Morale         int `json:"morale"`
	Corruption     int `json:"corruption"`
	Rank           int `json:"rank"`
	BestRank       int `json:"best_rank"`
	LostAgents     int `json:"lost_agents"`
	FailedMissions int `json:"failed_missions"`
}

func (s *GameStats) AddMorale(delta int) {
	s.Morale = clamp(s.Morale+delta, 0, 100)
}

func (s *GameStats) AddPrestige(delta int) {
	s.Prestige += delta
	if s.Prestige < 0 {
		s.Prestige = 0
	}
}

// Notice is a structured notification for the presentation layer. The core
// never blocks waiting for acknowledgement; it records and moves on.
type Notice struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// GameState is the aggregate every subsystem advances through narrow methods.
// The orchestrator owns it; subsystems touch only their own store plus Stats
// and the resource ledger.
type GameState struct {
	Stats        GameStats
	Resources    *Ledger
	Roster       *Roster
	Intel        *IntelLedger
	Defense      *Defense
	Diplomacy    *Diplomacy
	Market       *Market
	Missions     *MissionEngine
	ActiveEvents []TriggeredEvent
	EndingID     string

	Catalogs *catalog.Set

	Seed    int64
	rng     *rand.Rand
	endings []*Ending
	notices []Notice
}

// New builds an empty state bound to a catalog set and seed. Call NewGame to
// populate a playable day-1 outpost.
func New(cats *catalog.Set, seed int64) *GameState {
	g := &GameState{Catalogs: cats, Seed: seed}
	g.resetRuntime(seed)
	g.resetStores()
	return g
}

func (g *GameState) resetRuntime(seed int64) {
	g.Seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.endings = Endings()
	g.ActiveEvents = nil
	g.notices = nil
	g.EndingID = ""
}

func (g *GameState) resetStores() {
	g.Stats = GameStats{Day: 1, Prestige: StartingPrestige, Morale: StartingMorale}
	g.Resources = NewLedger()
	g.Roster = NewRoster()
	g.Intel = NewIntelLedger(g.Catalogs)
	g.Defense = NewDefense()
	g.Diplomacy = NewDiplomacy()
	g.Market = NewMarket()
	g.Missions = NewMissionEngine()
	g.Stats.Rank = RankForPrestige(g.Stats.Prestige)
}

// NewGame resets everything and seeds the starting roster and mission pool.
func (g *GameState) NewGame() {
	g.resetRuntime(g.Seed)
	g.resetStores()
	roles := g.Catalogs.RoleIDs()
	for i := 0; i < StartingAgents && g.Roster.Count() < MaxAgents; i++ {
		name := AgentNamePool[g.rng.Intn(len(AgentNamePool))]
		for g.Roster.byName(name) != nil {
			name = AgentNamePool[g.rng.Intn(len(AgentNamePool))]
		}
		g.Roster.Hire(name, roles[g.rng.Intn(len(roles))], g.Catalogs, g.rng)
	}
	g.GenerateDailyPool(true)
}

func (g *GameState) Ended() bool { return g.EndingID != "" }

func (g *GameState) pushNotice(kind, message string, fields map[string]any) {
	g.notices = append(g.notices, Notice{Kind: kind, Message: message, Fields: fields})
}

// DrainNotices returns and clears the accumulated notifications.
func (g *GameState) DrainNotices() []Notice {
	out := g.notices
	g.notices = nil
	return out
}

// Rng exposes the seeded source for callers inside the domain boundary that
// extend the simulation (tests included).
func (g *GameState) Rng() *rand.Rand { return g.rng }
