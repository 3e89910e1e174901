package outpost

import "math/rand"

// StructureDef is an immutable catalog entry; BuiltStructure keeps the subset
// of it that matters after construction. Gameplay never mutates the catalog.
type StructureDef struct {
	ID              string
	Name            string
	DefenseBonus    int
	ResearchBonus   int
	MedicalBonus    int
	MoraleBonus     int
	DiplomaticBonus int
	SurvivalBonus   int
	Cost            map[string]int
	SpecialistMult  map[string]float64
	DailyProduction map[string]int
}

type BuiltStructure struct {
	DefID        string `json:"def_id"`
	Name         string `json:"name"`
	DefenseBonus int    `json:"defense_bonus"`
}

type Defense struct {
	AlertLevel       int              `json:"alert_level"`
	Rating           int              `json:"rating"`
	Built            []BuiltStructure `json:"built"`
	ResearchProgress float64          `json:"research_progress"`
}

func NewDefense() *Defense {
	return &Defense{AlertLevel: MinAlertLevel, Rating: BaseDefenseRating}
}

// StructureByOrdinal resolves a catalog entry by its stable 1-based ordinal.
func StructureByOrdinal(n int) (StructureDef, bool) {
	defs := StructureCatalog()
	if n < 1 || n > len(defs) {
		return StructureDef{}, false
	}
	return defs[n-1], true
}

func structureDefByID(id string) (StructureDef, bool) {
	for _, def := range StructureCatalog() {
		if def.ID == id {
			return def, true
		}
	}
	return StructureDef{}, false
}

// Build debits every cost atomically: the full affordability check precedes
// any mutation, so a failed build leaves the ledger untouched.
func (d *Defense) Build(ordinal int, ledger *Ledger) (StructureDef, bool) {
	def, ok := StructureByOrdinal(ordinal)
	if !ok {
		return StructureDef{}, false
	}
	for kind, amount := range def.Cost {
		if ledger.Get(kind) < amount {
			return StructureDef{}, false
		}
	}
	for kind, amount := range def.Cost {
		ledger.Modify(kind, -amount)
	}
	d.Built = append(d.Built, BuiltStructure{DefID: def.ID, Name: def.Name, DefenseBonus: def.DefenseBonus})
	d.Rating += def.DefenseBonus
	return def, true
}

func (d *Defense) HasStructure(defID string) bool {
	for _, b := range d.Built {
		if b.DefID == defID {
			return true
		}
	}
	return false
}

func (d *Defense) TotalDefense() int {
	total := d.Rating
	for _, b := range d.Built {
		total += b.DefenseBonus
	}
	return total + d.AlertLevel*5
}

// AlertEffects are the global modifiers derived from the 1-5 alert posture.
type AlertEffects struct {
	DefenseBonus           int
	ResourceMultiplier     float64
	MoraleEffect           int
	InfiltrationResistance int
	EventProbability       float64
}

func (d *Defense) AlertEffects() AlertEffects {
	return AlertEffects{
		DefenseBonus:           d.AlertLevel * 5,
		ResourceMultiplier:     1 + float64(d.AlertLevel-1)*0.2,
		MoraleEffect:           (3 - d.AlertLevel) * 5,
		InfiltrationResistance: d.AlertLevel * 10,
		EventProbability:       float64(d.AlertLevel) * 0.1,
	}
}

type AlertShift struct {
	OldLevel int
	NewLevel int
}

func (d *Defense) RaiseAlert() (AlertShift, bool) {
	if d.AlertLevel >= MaxAlertLevel {
		return AlertShift{}, false
	}
	d.AlertLevel++
	return AlertShift{OldLevel: d.AlertLevel - 1, NewLevel: d.AlertLevel}, true
}

func (d *Defense) LowerAlert() (AlertShift, bool) {
	if d.AlertLevel <= MinAlertLevel {
		return AlertShift{}, false
	}
	d.AlertLevel--
	return AlertShift{OldLevel: d.AlertLevel + 1, NewLevel: d.AlertLevel}, true
}

// bonusOf sums one bonus field over built structures, scaled up by specialist
// multipliers for roster roles the structure favors.
func (d *Defense) bonusOf(roster *Roster, pick func(StructureDef) int) int {
	base := 0
	specialist := 0.0
	for _, b := range d.Built {
		def, ok := structureDefByID(b.DefID)
		if !ok {
			continue
		}
		bonus := pick(def)
		base += bonus
		for _, agent := range roster.Agents {
			if mult, ok := def.SpecialistMult[agent.Role]; ok {
				specialist += float64(bonus) * (mult - 1)
			}
		}
	}
	return base + int(specialist)
}

func (d *Defense) ResearchBonus(r *Roster) int {
	return d.bonusOf(r, func(s StructureDef) int { return s.ResearchBonus })
}

func (d *Defense) MedicalBonus(r *Roster) int {
	return d.bonusOf(r, func(s StructureDef) int { return s.MedicalBonus })
}

func (d *Defense) DiplomaticBonus(r *Roster) int {
	return d.bonusOf(r, func(s StructureDef) int { return s.DiplomaticBonus })
}

func (d *Defense) SurvivalBonus(r *Roster) int {
	return d.bonusOf(r, func(s StructureDef) int { return s.SurvivalBonus })
}

func (d *Defense) MoraleBonus(r *Roster) int {
	return d.bonusOf(r, func(s StructureDef) int { return s.MoraleBonus })
}

// defenseDailyUpdate applies the alert morale delta, advances research toward
// intel grants, distributes structure production, and rolls the daily
// infiltration check.
func (g *GameState) defenseDailyUpdate() {
	d := g.Defense
	effects := d.AlertEffects()

	g.Stats.AddMorale(effects.MoraleEffect)

	researchPower := 0
	for _, b := range d.Built {
		if def, ok := structureDefByID(b.DefID); ok {
			researchPower += def.ResearchBonus
		}
	}
	if researchPower > 0 {
		modifier := 2 - effects.ResourceMultiplier*0.5
		d.ResearchProgress += float64(researchPower) * 0.1 * modifier
		for d.ResearchProgress >= ResearchUnitSize {
			d.ResearchProgress -= ResearchUnitSize
			g.GrantIntel(HomeLocationID, ResearchIntelGrant, "research")
		}
	}

	for _, b := range d.Built {
		def, ok := structureDefByID(b.DefID)
		if !ok {
			continue
		}
		for _, kind := range sortedKeys(def.DailyProduction) {
			amount := def.DailyProduction[kind]
			switch kind {
			case "morale":
				g.Stats.AddMorale(int(float64(amount) * (2 - effects.ResourceMultiplier)))
			case "intel_points":
				g.GrantIntel(HomeLocationID, amount, "production "+def.Name)
			default:
				if amount < 0 {
					amount = int(float64(amount) * effects.ResourceMultiplier)
				}
				if !g.Resources.Modify(kind, amount) && amount < 0 {
					g.Resources.Quantities[kind] = 0
				}
			}
		}
	}

	if g.rng.Float64() < DailyInfiltrationChance {
		g.rollInfiltration(d.TotalDefense(), g.rng)
	}
}

// rollInfiltration resolves a breach attempt against the given defense score.
func (g *GameState) rollInfiltration(defense int, rng *rand.Rand) {
	if rng.Intn(100)+1 <= defense {
		return
	}
	damage := rng.Intn(3) + 1
	switch rng.Intn(3) {
	case 0:
		kinds := g.Resources.Kinds()
		kind := kinds[rng.Intn(len(kinds))]
		amount := rng.Intn(11) + 5
		if !g.Resources.Modify(kind, -amount) {
			g.Resources.Quantities[kind] = 0
		}
		g.pushNotice("infiltration", "hostile agents stole "+kind, map[string]any{"kind": kind, "amount": amount})
	case 1:
		g.Stats.AddMorale(-damage * 5)
		g.pushNotice("infiltration", "hostile agents shook base morale", map[string]any{"morale": -damage * 5})
	default:
		g.GrantIntel(HomeLocationID, -damage*5, "infiltration")
		g.pushNotice("infiltration", "hostile agents leaked intel", map[string]any{"intel_points": -damage * 5})
	}
}
