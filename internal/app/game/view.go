package game

import (
	"context"

	"megbase/internal/domain/outpost"
)

// StateView is the read model handed to the presentation layer: everything a
// player sees on the status screen, with intel fields already gated by
// knowledge level.
type StateView struct {
	Stats      outpost.GameStats        `json:"stats"`
	RankName   string                   `json:"rank_name"`
	Resources  map[string]int           `json:"resources"`
	Agents     []outpost.Agent          `json:"agents"`
	Defense    DefenseView              `json:"defense"`
	Diplomacy  []OrgView                `json:"diplomacy"`
	Locations  []LocationView           `json:"locations"`
	Pool       []MissionView            `json:"mission_pool"`
	Active     []ActiveMissionView      `json:"active_missions"`
	Structures []StructureView          `json:"structures"`
	Goods      []outpost.TradeGood      `json:"goods"`
	Events     []outpost.TriggeredEvent `json:"recent_events"`
	Ended      bool                     `json:"ended"`
	EndingID   string                   `json:"ending_id,omitempty"`
}

type DefenseView struct {
	AlertLevel int                      `json:"alert_level"`
	Total      int                      `json:"total_defense"`
	Effects    outpost.AlertEffects     `json:"alert_effects"`
	Built      []outpost.BuiltStructure `json:"built"`
}

type OrgView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Attitude        int     `json:"attitude"`
	TradeBonus      float64 `json:"trade_bonus"`
	IntelSharing    bool    `json:"intel_sharing"`
	MilitarySupport bool    `json:"military_support"`
}

type LocationView struct {
	ID                string               `json:"id"`
	Info              outpost.LocationInfo `json:"info"`
	IntelPoints       int                  `json:"intel_points"`
	CorruptionWarning string               `json:"corruption_warning"`
}

type MissionView struct {
	Ordinal  int    `json:"ordinal"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

type ActiveMissionView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AgentID    string `json:"agent_id"`
	LocationID string `json:"location_id,omitempty"`
	DaysLeft   int    `json:"days_left"`
}

type StructureView struct {
	Ordinal int            `json:"ordinal"`
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Cost    map[string]int `json:"cost"`
	Built   bool           `json:"built"`
}

// State renders the current game into the read model.
func (u *UseCase) State(ctx context.Context) (StateView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == nil {
		return StateView{}, ErrNoGame
	}
	g := u.state

	view := StateView{
		Stats:    g.Stats,
		RankName: outpost.RankTable()[g.Stats.Rank].Name,
		Ended:    g.Ended(),
		EndingID: g.EndingID,
		Events:   g.ActiveEvents,
	}

	view.Resources = make(map[string]int, len(g.Resources.Quantities))
	for _, kind := range g.Resources.Kinds() {
		view.Resources[kind] = g.Resources.Get(kind)
	}

	for _, a := range g.Roster.Agents {
		view.Agents = append(view.Agents, *a)
	}

	view.Defense = DefenseView{
		AlertLevel: g.Defense.AlertLevel,
		Total:      g.Defense.TotalDefense(),
		Effects:    g.Defense.AlertEffects(),
		Built:      g.Defense.Built,
	}

	for _, orgID := range g.Diplomacy.OrgIDs() {
		org := g.Diplomacy.Get(orgID)
		view.Diplomacy = append(view.Diplomacy, OrgView{
			ID:              org.ID,
			Name:            org.Name,
			Attitude:        org.Attitude,
			TradeBonus:      org.TradeBonus,
			IntelSharing:    org.IntelSharing,
			MilitarySupport: org.MilitarySupport,
		})
	}

	for _, locID := range g.Intel.LocationIDs() {
		info, ok := g.Intel.LocationInfo(locID, g.Catalogs)
		if !ok {
			continue
		}
		view.Locations = append(view.Locations, LocationView{
			ID:                locID,
			Info:              info,
			IntelPoints:       g.Intel.Locations[locID].IntelPoints,
			CorruptionWarning: g.Intel.CorruptionWarning(locID),
		})
	}

	for i, id := range g.Missions.Pool {
		if tmpl, ok := g.Catalogs.MissionByID(id); ok {
			view.Pool = append(view.Pool, MissionView{Ordinal: i + 1, ID: id, Title: tmpl.Title, Duration: tmpl.Duration})
		}
	}
	for _, inst := range g.Missions.Active {
		title := inst.TemplateID
		if tmpl, ok := g.Catalogs.MissionByID(inst.TemplateID); ok {
			title = tmpl.Title
		}
		view.Active = append(view.Active, ActiveMissionView{
			ID:         inst.TemplateID,
			Title:      title,
			AgentID:    inst.AgentID,
			LocationID: inst.LocationID,
			DaysLeft:   inst.DaysLeft,
		})
	}

	for i, def := range outpost.StructureCatalog() {
		view.Structures = append(view.Structures, StructureView{
			Ordinal: i + 1,
			ID:      def.ID,
			Name:    def.Name,
			Cost:    def.Cost,
			Built:   g.Defense.HasStructure(def.ID),
		})
	}
	view.Goods = outpost.GoodsCatalog()

	return view, nil
}
