package outpost

import (
	"fmt"

	"megbase/internal/domain/catalog"
)

type TradeGood struct {
	ID        string
	Name      string
	BasePrice int
	Rarity    int
	OrgMult   map[string]float64
	Effects   catalog.EffectSpec
	BaseRisk  float64
}

// GoodsCatalog lists every tradeable good in stable order. Goods are priced
// and paid in supplies.
func GoodsCatalog() []TradeGood {
	return []TradeGood{
		{
			ID: "supplies", Name: "Standard Supplies", BasePrice: 20, Rarity: 1,
			OrgMult:  map[string]float64{"meg": 0.8, "wanderers": 0.9},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"morale": 1}},
			BaseRisk: 0.02,
		},
		{
			ID: "medical", Name: "Medical Supplies", BasePrice: 30, Rarity: 2,
			OrgMult:  map[string]float64{"bluestar": 0.8, "meg": 0.9},
			BaseRisk: 0.03,
		},
		{
			ID: "fuel", Name: "Fuel", BasePrice: 25, Rarity: 2,
			OrgMult:  map[string]float64{"crimson": 0.8, "wanderers": 0.9},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"defense_rating": 1}},
			BaseRisk: 0.03,
		},
		{
			ID: "almond_water", Name: "Almond Water", BasePrice: 40, Rarity: 3,
			OrgMult:  map[string]float64{"library": 0.7, "meg": 0.8},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"morale": 2}},
			BaseRisk: 0.04,
		},
		{
			ID: "reality_stabilizer", Name: "Reality Stabilizer", BasePrice: 100, Rarity: 5,
			OrgMult:  map[string]float64{"bluestar": 0.6, "eyes": 0.7},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"defense_rating": 5}, IntelPoints: 3, IntelLocation: HomeLocationID},
			BaseRisk: 0.08,
		},
		{
			ID: "partygoers_cake", Name: "Partygoers' Cake", BasePrice: 60, Rarity: 4,
			OrgMult:  map[string]float64{"partygoers": 0.5},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"morale": 10, "corruption": 2}},
			BaseRisk: 0.10,
		},
		{
			ID: "faceling_mask", Name: "Faceling Mask", BasePrice: 80, Rarity: 4,
			OrgMult:  map[string]float64{"facelings": 0.6},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"corruption": 1, "defense_rating": 2}},
			BaseRisk: 0.07,
		},
		{
			ID: "crimson_weapon", Name: "Crimson Order Weapon", BasePrice: 70, Rarity: 4,
			OrgMult:  map[string]float64{"crimson": 0.7},
			Effects:  catalog.EffectSpec{Stats: map[string]int{"defense_rating": 8}},
			BaseRisk: 0.06,
		},
		{
			ID: "ancient_text", Name: "Ancient Text", BasePrice: 90, Rarity: 5,
			OrgMult:  map[string]float64{"library": 0.6, "eyes": 0.7},
			Effects:  catalog.EffectSpec{IntelPoints: 10, IntelLocation: HomeLocationID},
			BaseRisk: 0.08,
		},
	}
}

func GoodByID(id string) (TradeGood, bool) {
	for _, good := range GoodsCatalog() {
		if good.ID == id {
			return good, true
		}
	}
	return TradeGood{}, false
}

// Market holds per-day trading state. The trade counter feeds the
// infiltration frequency penalty and resets every tick.
type Market struct {
	DailyTrades int `json:"daily_trades"`
}

func NewMarket() *Market { return &Market{} }

func (m *Market) DailyReset() { m.DailyTrades = 0 }

// Price computes the nominal price for quantity units of a good when trading
// with an organization. Selling discounts the organization multiplier ~20%.
func Price(good TradeGood, orgID string, quantity int, buying bool) int {
	rarityMult := 1 + float64(good.Rarity-1)*0.2
	orgMult := 1.0
	if m, ok := good.OrgMult[orgID]; ok {
		orgMult = m
	}
	if !buying {
		orgMult *= 0.8
	}
	return int(float64(good.BasePrice) * rarityMult * orgMult * float64(quantity))
}

type TradeResult struct {
	OK           bool
	Message      string
	Price        int
	Infiltration bool
	Severity     int
}

// Trade validates funds or held stock before any mutation, then executes the
// exchange, applies the good's effects, adjusts relations, and finally rolls
// the infiltration risk.
func (g *GameState) Trade(goodID, orgID string, quantity int, buying bool) TradeResult {
	good, ok := GoodByID(goodID)
	if !ok {
		return TradeResult{Message: "unknown trade good"}
	}
	org := g.Diplomacy.Get(orgID)
	if org == nil {
		return TradeResult{Message: "unknown organization"}
	}
	if quantity <= 0 {
		return TradeResult{Message: "invalid quantity"}
	}

	price := Price(good, orgID, quantity, buying)
	if buying {
		if g.Resources.Get(TradeCurrency) < price {
			return TradeResult{Message: "insufficient supplies"}
		}
	} else if g.Resources.Get(goodID) < quantity {
		return TradeResult{Message: fmt.Sprintf("not enough %s to sell", good.Name)}
	}

	if buying {
		g.Resources.Modify(TradeCurrency, -price)
		g.Resources.Modify(goodID, quantity)
	} else {
		g.Resources.Modify(goodID, -quantity)
		g.Resources.Modify(TradeCurrency, int(float64(price)*SellPriceFactor))
	}

	g.ApplyEffects(good.Effects)

	relationGain := relationBonus(good, orgID, quantity, buying)
	g.Diplomacy.ModifyRelation(orgID, relationGain)

	g.Market.DailyTrades++

	result := TradeResult{OK: true, Price: price, Message: fmt.Sprintf("traded %d %s with %s", quantity, good.Name, org.Name)}
	risk := g.tradeInfiltrationRisk(good, orgID)
	if g.rng.Float64() < risk {
		severity := g.rng.Intn(3) + 1
		g.applyTradeInfiltration(good, orgID, severity, relationGain)
		result.Infiltration = true
		result.Severity = severity
	}
	return result
}

// relationBonus scales goodwill by rarity and quantity, with extra weight for
// selling and for an organization's preferred goods.
func relationBonus(good TradeGood, orgID string, quantity int, buying bool) int {
	bonus := float64(good.Rarity) * float64(quantity) * 0.5
	if buying {
		bonus += float64(good.Rarity)
	} else {
		bonus *= 1.2
	}
	if _, preferred := good.OrgMult[orgID]; preferred {
		bonus *= 1.5
	}
	gain := int(bonus)
	if gain < 1 {
		gain = 1
	}
	return gain
}

// tradeInfiltrationRisk composes the base risk with rarity, standing with
// the counterparty, trade frequency today and the outpost's defense, capped
// at 75%.
func (g *GameState) tradeInfiltrationRisk(good TradeGood, orgID string) float64 {
	risk := good.BaseRisk
	risk *= 1 + float64(good.Rarity-1)*0.1
	attitude := float64(g.Diplomacy.Get(orgID).Attitude)
	risk *= 1 - minF(0.5, attitude/200)
	risk *= 1 + 0.15*float64(g.Market.DailyTrades)
	risk *= 1 - minF(0.7, float64(g.Defense.TotalDefense())/150)
	return minF(risk, MaxInfiltrationRisk)
}

// applyTradeInfiltration damages 1-3 target categories by severity; a
// severity-3 breach also costs double the relation just gained.
func (g *GameState) applyTradeInfiltration(good TradeGood, orgID string, severity, relationGain int) {
	damageMult := severity * good.Rarity
	targets := []string{"resources", "morale", "intel"}[:severity]
	for _, target := range targets {
		switch target {
		case "resources":
			kinds := g.Resources.Kinds()
			kind := kinds[g.rng.Intn(len(kinds))]
			amount := (g.rng.Intn(6) + 5) * damageMult
			if !g.Resources.Modify(kind, -amount) {
				g.Resources.Quantities[kind] = 0
			}
		case "morale":
			g.Stats.AddMorale(-5 * damageMult)
		case "intel":
			g.GrantIntel(HomeLocationID, -3*damageMult, "trade infiltration")
		}
	}
	if severity == 3 {
		g.Diplomacy.ModifyRelation(orgID, -relationGain*2)
	}
	g.pushNotice("trade_infiltration", fmt.Sprintf("level %d infiltration during trade", severity), map[string]any{
		"good": good.ID, "org": orgID, "severity": severity,
	})
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
