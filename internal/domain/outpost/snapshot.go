package outpost

import (
	"errors"
	"fmt"
	"sort"
)

const SnapshotVersion = 1

var (
	ErrSnapshotVersion   = errors.New("snapshot schema version mismatch")
	ErrSnapshotReference = errors.New("snapshot references missing catalog entry")
)

// Snapshot is the persistable subset of game state: mutable per-run data
// only, with catalog entries referenced by id.
type Snapshot struct {
	Version   int                      `json:"version"`
	Stats     GameStats                `json:"stats"`
	Resources ResourcesSnapshot        `json:"resources"`
	Personnel PersonnelSnapshot        `json:"personnel"`
	Missions  MissionsSnapshot         `json:"missions"`
	Defense   DefenseSnapshot          `json:"defense"`
	Diplomacy map[string]OrgSnapshot   `json:"diplomacy"`
	Intel     map[string]LocationIntel `json:"intel"`
}

type ResourcesSnapshot struct {
	Quantities map[string]int `json:"quantities"`
	Rates      map[string]int `json:"rates"`
}

type PersonnelSnapshot struct {
	Agents []Agent `json:"agents"`
	NextID int     `json:"next_id"`
}

type MissionsSnapshot struct {
	Pool      []string          `json:"pool"`
	Active    []MissionInstance `json:"active"`
	Completed []string          `json:"completed"`
}

type DefenseSnapshot struct {
	AlertLevel       int              `json:"alert_level"`
	Rating           int              `json:"rating"`
	Built            []BuiltStructure `json:"built"`
	ResearchProgress float64          `json:"research_progress"`
}

type OrgSnapshot struct {
	Attitude        int     `json:"attitude"`
	TradeBonus      float64 `json:"trade_bonus"`
	IntelSharing    bool    `json:"intel_sharing"`
	MilitarySupport bool    `json:"military_support"`
}

// Capture copies the mutable state into a snapshot. The copy is deep enough
// that further play does not alias the captured data.
func (g *GameState) Capture() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Stats:   g.Stats,
		Resources: ResourcesSnapshot{
			Quantities: copyIntMap(g.Resources.Quantities),
			Rates:      copyIntMap(g.Resources.Rates),
		},
		Personnel: PersonnelSnapshot{NextID: g.Roster.NextID},
		Defense: DefenseSnapshot{
			AlertLevel:       g.Defense.AlertLevel,
			Rating:           g.Defense.Rating,
			Built:            append([]BuiltStructure(nil), g.Defense.Built...),
			ResearchProgress: g.Defense.ResearchProgress,
		},
		Diplomacy: map[string]OrgSnapshot{},
		Intel:     map[string]LocationIntel{},
	}
	for _, a := range g.Roster.Agents {
		snap.Personnel.Agents = append(snap.Personnel.Agents, *a)
	}
	snap.Missions.Pool = append([]string(nil), g.Missions.Pool...)
	for _, inst := range g.Missions.Active {
		copied := *inst
		copied.Adjusted.Resources = copyIntMap(inst.Adjusted.Resources)
		copied.Adjusted.Stats = copyIntMap(inst.Adjusted.Stats)
		snap.Missions.Active = append(snap.Missions.Active, copied)
	}
	for id := range g.Missions.Completed {
		snap.Missions.Completed = append(snap.Missions.Completed, id)
	}
	sort.Strings(snap.Missions.Completed)
	for id, org := range g.Diplomacy.Organizations {
		snap.Diplomacy[id] = OrgSnapshot{
			Attitude:        org.Attitude,
			TradeBonus:      org.TradeBonus,
			IntelSharing:    org.IntelSharing,
			MilitarySupport: org.MilitarySupport,
		}
	}
	for id, loc := range g.Intel.Locations {
		copied := *loc
		copied.DiscoveredSecrets = append([]string(nil), loc.DiscoveredSecrets...)
		copied.SuspiciousAgents = append([]string(nil), loc.SuspiciousAgents...)
		snap.Intel[id] = copied
	}
	return snap
}

// Restore rebuilds state from a snapshot. Transient per-run state (active
// events, pending notices, the daily trade counter) is reset, every catalog
// reference is validated first, and on any failure the live state is left
// untouched.
func (g *GameState) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("version %d: %w", snap.Version, ErrSnapshotVersion)
	}
	for _, id := range snap.Missions.Pool {
		if _, ok := g.Catalogs.MissionByID(id); !ok {
			return fmt.Errorf("pooled mission %q: %w", id, ErrSnapshotReference)
		}
	}
	for _, inst := range snap.Missions.Active {
		if _, ok := g.Catalogs.MissionByID(inst.TemplateID); !ok {
			return fmt.Errorf("active mission %q: %w", inst.TemplateID, ErrSnapshotReference)
		}
		if inst.LocationID != "" {
			if _, ok := g.Catalogs.LocationByID(inst.LocationID); !ok {
				return fmt.Errorf("mission location %q: %w", inst.LocationID, ErrSnapshotReference)
			}
		}
	}
	for _, id := range snap.Missions.Completed {
		if _, ok := g.Catalogs.MissionByID(id); !ok {
			return fmt.Errorf("completed mission %q: %w", id, ErrSnapshotReference)
		}
	}
	for _, b := range snap.Defense.Built {
		if _, ok := structureDefByID(b.DefID); !ok {
			return fmt.Errorf("built structure %q: %w", b.DefID, ErrSnapshotReference)
		}
	}
	for locID := range snap.Intel {
		if _, ok := g.Catalogs.LocationByID(locID); !ok {
			return fmt.Errorf("intel location %q: %w", locID, ErrSnapshotReference)
		}
	}
	for _, a := range snap.Personnel.Agents {
		if _, ok := g.Catalogs.Role(a.Role); !ok {
			return fmt.Errorf("agent role %q: %w", a.Role, ErrSnapshotReference)
		}
	}

	g.resetRuntime(g.Seed)
	g.resetStores()

	g.Stats = snap.Stats
	g.Resources.Quantities = copyIntMap(snap.Resources.Quantities)
	g.Resources.Rates = copyIntMap(snap.Resources.Rates)

	g.Roster.NextID = snap.Personnel.NextID
	for _, a := range snap.Personnel.Agents {
		copied := a
		g.Roster.Agents = append(g.Roster.Agents, &copied)
	}

	g.Missions.Pool = append([]string(nil), snap.Missions.Pool...)
	for _, inst := range snap.Missions.Active {
		copied := inst
		copied.Adjusted.Resources = copyIntMap(inst.Adjusted.Resources)
		copied.Adjusted.Stats = copyIntMap(inst.Adjusted.Stats)
		g.Missions.Active = append(g.Missions.Active, &copied)
	}
	for _, id := range snap.Missions.Completed {
		g.Missions.Completed[id] = true
	}

	g.Defense.AlertLevel = snap.Defense.AlertLevel
	g.Defense.Rating = snap.Defense.Rating
	g.Defense.Built = append([]BuiltStructure(nil), snap.Defense.Built...)
	g.Defense.ResearchProgress = snap.Defense.ResearchProgress

	for id, org := range snap.Diplomacy {
		if live, ok := g.Diplomacy.Organizations[id]; ok {
			live.Attitude = org.Attitude
			live.TradeBonus = org.TradeBonus
			live.IntelSharing = org.IntelSharing
			live.MilitarySupport = org.MilitarySupport
		}
	}

	for id, loc := range snap.Intel {
		copied := loc
		copied.DiscoveredSecrets = append([]string(nil), loc.DiscoveredSecrets...)
		copied.SuspiciousAgents = append([]string(nil), loc.SuspiciousAgents...)
		g.Intel.Locations[id] = &copied
	}
	return nil
}

func copyIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
