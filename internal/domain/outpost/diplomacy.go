package outpost

import (
	"sort"

	"megbase/internal/domain/catalog"
)

type Organization struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Attitude        int     `json:"attitude"`
	TradeBonus      float64 `json:"trade_bonus"`
	IntelSharing    bool    `json:"intel_sharing"`
	MilitarySupport bool    `json:"military_support"`
}

type Diplomacy struct {
	Organizations map[string]*Organization `json:"organizations"`
}

func NewDiplomacy() *Diplomacy {
	d := &Diplomacy{Organizations: map[string]*Organization{}}
	for _, def := range organizationDefs() {
		d.Organizations[def.ID] = &Organization{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Attitude:    50,
			TradeBonus:  1.5,
		}
	}
	return d
}

func (d *Diplomacy) Get(orgID string) *Organization {
	return d.Organizations[orgID]
}

// OrgIDs in sorted order so rng-coupled iteration is seed-deterministic.
func (d *Diplomacy) OrgIDs() []string {
	ids := make([]string, 0, len(d.Organizations))
	for id := range d.Organizations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ModifyRelation clamps attitude to [0,100], recomputes the edge-triggered
// capability flags and the derived trade bonus. Reports whether attitude
// actually changed.
func (d *Diplomacy) ModifyRelation(orgID string, delta int) bool {
	org, ok := d.Organizations[orgID]
	if !ok {
		return false
	}
	old := org.Attitude
	org.Attitude = clamp(org.Attitude+delta, 0, 100)
	org.IntelSharing = org.Attitude >= IntelSharingThreshold
	org.MilitarySupport = org.Attitude >= MilitarySupportThreshold
	org.TradeBonus = 1 + float64(org.Attitude)/100
	return org.Attitude != old
}

type HelpResult struct {
	OK      bool
	Message string
}

// RequestHelp asks an organization for military or intel support. Diplomacy
// is only interactable once the embassy stands; success probability equals
// attitude/100, and even a granted request costs a little goodwill.
func (g *GameState) RequestHelp(orgID, kind string) HelpResult {
	if !g.Defense.HasStructure(EmbassyStructureID) {
		return HelpResult{Message: "embassy not built"}
	}
	org := g.Diplomacy.Get(orgID)
	if org == nil {
		return HelpResult{Message: "unknown organization"}
	}
	if kind != "military" && kind != "intel" {
		return HelpResult{Message: "unknown help kind"}
	}
	if kind == "military" && !org.MilitarySupport {
		return HelpResult{Message: "military support not unlocked"}
	}
	if kind == "intel" && !org.IntelSharing {
		return HelpResult{Message: "intel sharing not unlocked"}
	}

	if g.rng.Float64() < float64(org.Attitude)/100 {
		g.Diplomacy.ModifyRelation(orgID, -HelpSuccessRelationCost)
		bundle := helpBundles()[orgID][kind]
		g.ApplyEffects(bundle)
		g.pushNotice("diplomacy", org.Name+" granted the request", map[string]any{"org": orgID, "kind": kind})
		return HelpResult{OK: true, Message: org.Name + " sent help"}
	}

	// A botched approach: bigger relation hit, reputation damage, and a
	// chance the convoy carrying the request gifts is lost outright.
	g.Diplomacy.ModifyRelation(orgID, -HelpFailureRelationCost)
	g.Stats.AddMorale(-HelpFailureMoraleCost)
	g.Stats.AddPrestige(-HelpFailurePrestigeCost)
	if g.rng.Float64() < HelpFailureLossChance {
		kinds := g.Resources.Kinds()
		kind := kinds[g.rng.Intn(len(kinds))]
		amount := g.rng.Intn(11) + 5
		if !g.Resources.Modify(kind, -amount) {
			g.Resources.Quantities[kind] = 0
		}
	}
	return HelpResult{Message: org.Name + " refused the request"}
}

// diplomacyDailyUpdate drifts each organization's attitude with a bias that
// reinforces the current disposition, then rolls per-org special events.
func (g *GameState) diplomacyDailyUpdate() {
	for _, orgID := range g.Diplomacy.OrgIDs() {
		org := g.Diplomacy.Organizations[orgID]
		if g.rng.Float64() < DiplomacyDriftChance {
			var delta int
			switch {
			case org.Attitude >= FriendlyAttitudeFloor:
				delta = g.rng.Intn(2) + 1
			case org.Attitude <= HostileAttitudeCeil:
				delta = -(g.rng.Intn(2) + 1)
			default:
				delta = g.rng.Intn(5) - 2
			}
			g.Diplomacy.ModifyRelation(orgID, delta)
		}
		g.maybeTriggerSpecialEvent(orgID)
	}
}

// maybeTriggerSpecialEvent rolls an organization's unique event, gated by a
// minimum relationship tier and its configured probability.
func (g *GameState) maybeTriggerSpecialEvent(orgID string) bool {
	org := g.Diplomacy.Get(orgID)
	if org == nil || org.Attitude < SpecialEventMinAttitude {
		return false
	}
	def, ok := orgDefByID(orgID)
	if !ok || g.rng.Float64() >= def.SpecialEventChance {
		return false
	}
	g.ApplyEffects(def.SpecialEvent)
	if def.SpecialEventAttitude != 0 {
		g.Diplomacy.ModifyRelation(orgID, def.SpecialEventAttitude)
	}
	g.pushNotice("special_event", org.Name+": "+def.SpecialEventTitle, map[string]any{"org": orgID})
	return true
}

// organizationDef is catalog-side data for an organization: identity plus its
// special-event bundle and request-help bundles.
type organizationDef struct {
	ID                   string
	Name                 string
	Description          string
	SpecialEventChance   float64
	SpecialEventTitle    string
	SpecialEvent         catalog.EffectSpec
	SpecialEventAttitude int
}

func orgDefByID(id string) (organizationDef, bool) {
	for _, def := range organizationDefs() {
		if def.ID == id {
			return def, true
		}
	}
	return organizationDef{}, false
}

func organizationDefs() []organizationDef {
	return []organizationDef{
		{
			ID: "partygoers", Name: "Partygoers",
			Description:        "Hosts of the endless party on Level Fun. Dangerous, but a source of rare goods.",
			SpecialEventChance: 0.04, SpecialEventTitle: "An Invitation You Cannot Refuse",
			SpecialEvent: catalog.EffectSpec{Stats: map[string]int{"morale": 10, "corruption": 5}},
		},
		{
			ID: "meg", Name: "M.E.G. Command",
			Description:        "Major Explorer Group headquarters. Keeps outposts like this one supplied.",
			SpecialEventChance: 0.05, SpecialEventTitle: "Resupply Drop",
			SpecialEvent:         catalog.EffectSpec{Resources: map[string]int{"supplies": 20, "medical": 10}},
			SpecialEventAttitude: 2,
		},
		{
			ID: "bluestar", Name: "Blue Star",
			Description:        "Scientific collective studying Backrooms anomalies.",
			SpecialEventChance: 0.04, SpecialEventTitle: "Anomaly Survey Shared",
			SpecialEvent: catalog.EffectSpec{IntelPoints: 15, IntelLocation: HomeLocationID},
		},
		{
			ID: "crimson", Name: "Crimson Order",
			Description:        "Militarized order keeping a brutal peace on its levels.",
			SpecialEventChance: 0.03, SpecialEventTitle: "Joint Patrol",
			SpecialEvent: catalog.EffectSpec{Stats: map[string]int{"defense_rating": 5}},
		},
		{
			ID: "library", Name: "The Library",
			Description:        "Keepers of Backrooms knowledge, traders in information.",
			SpecialEventChance: 0.04, SpecialEventTitle: "Reading Room Access",
			SpecialEvent: catalog.EffectSpec{IntelPoints: 20, IntelLocation: HomeLocationID},
		},
		{
			ID: "wanderers", Name: "The Wanderers",
			Description:        "Nomads moving between levels, trading goods and rumors.",
			SpecialEventChance: 0.05, SpecialEventTitle: "Caravan Stopover",
			SpecialEvent: catalog.EffectSpec{Resources: map[string]int{"fuel": 10, "food": 10}},
		},
		{
			ID: "eyes", Name: "The Eyes",
			Description:        "Observers who collect and sell secrets.",
			SpecialEventChance: 0.03, SpecialEventTitle: "A Whispered Warning",
			SpecialEvent: catalog.EffectSpec{IntelPoints: 25, IntelLocation: HomeLocationID, Stats: map[string]int{"corruption": 2}},
		},
		{
			ID: "facelings", Name: "The Facelings",
			Description:        "Native entities that sometimes trade with humans. Unpredictable.",
			SpecialEventChance: 0.02, SpecialEventTitle: "Silent Gift",
			SpecialEvent: catalog.EffectSpec{Stats: map[string]int{"defense_rating": 8, "corruption": 3}},
		},
	}
}

// helpBundles maps organization -> help kind -> the effect bundle granted on
// a successful request.
func helpBundles() map[string]map[string]catalog.EffectSpec {
	return map[string]map[string]catalog.EffectSpec{
		"partygoers": {
			"military": {Stats: map[string]int{"defense_rating": 5}},
			"intel":    {IntelPoints: 15, IntelLocation: HomeLocationID},
		},
		"meg": {
			"military": {Resources: map[string]int{"supplies": 20}},
			"intel":    {IntelPoints: 10, IntelLocation: HomeLocationID},
		},
		"bluestar": {
			"military": {Resources: map[string]int{"medical": 15}},
			"intel":    {IntelPoints: 20, IntelLocation: HomeLocationID},
		},
		"crimson": {
			"military": {Stats: map[string]int{"defense_rating": 10}},
			"intel":    {IntelPoints: 5, IntelLocation: HomeLocationID},
		},
		"library": {
			"military": {Resources: map[string]int{"almond_water": 10}},
			"intel":    {IntelPoints: 25, IntelLocation: HomeLocationID},
		},
		"wanderers": {
			"military": {Resources: map[string]int{"fuel": 15}},
			"intel":    {IntelPoints: 15, IntelLocation: HomeLocationID},
		},
		"eyes": {
			"military": {Stats: map[string]int{"prestige": 5}},
			"intel":    {IntelPoints: 30, IntelLocation: HomeLocationID},
		},
		"facelings": {
			"military": {Stats: map[string]int{"defense_rating": 15}},
			"intel":    {IntelPoints: 35, IntelLocation: HomeLocationID},
		},
	}
}
