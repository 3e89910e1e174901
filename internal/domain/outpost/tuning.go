package outpost

// HomeLocationID receives research output, trade intel bonuses and
// infiltration intel damage.
const HomeLocationID = "level_0"

const (
	MaxAgents       = 10
	SkillCap        = 10
	ExpPerLevel     = 100
	MissionExpGrant = 25

	StartingPrestige = 50
	StartingMorale   = 70
	StartingAgents   = 5

	DailyPoolSize = 8

	MinAlertLevel = 1
	MaxAlertLevel = 5

	BaseDefenseRating = 10

	DailyEventChance        = 0.3
	DailyInfiltrationChance = 0.1

	MoraleDriftChance = 0.1
	SkillDriftChance  = 0.05

	DiplomacyDriftChance  = 0.1
	FriendlyAttitudeFloor = 60
	HostileAttitudeCeil   = 40

	IntelSharingThreshold    = 80
	MilitarySupportThreshold = 90

	HelpSuccessRelationCost = 5
	HelpFailureRelationCost = 10
	HelpFailureMoraleCost   = 5
	HelpFailurePrestigeCost = 3
	HelpFailureLossChance   = 0.3

	InvestigateIntelCost   = 30
	InvestigateConfirmProb = 0.3
	PurifyAlmondWaterCost  = 15
	PurifyCorruptionRelief = 20

	TradeCurrency       = "supplies"
	SellPriceFactor     = 0.8
	MaxInfiltrationRisk = 0.75

	DeathProbFloor = 0.05
	DeathProbCeil  = 0.75

	// Recovery bundle debited when an agent dies in the field.
	DeathRecoveryMedical  = 10
	DeathRecoverySupplies = 5
	DeathIntelLossChance  = 0.3
	DeathIntelLoss        = 10

	ResearchUnitSize        = 10
	ResearchIntelGrant      = 5
	EmbassyStructureID      = "embassy"
	SpecialEventMinAttitude = 60
)

// KnowledgeThresholds gates the 0-5 knowledge level by cumulative intel
// points. Level is the number of thresholds at or below the running total.
var KnowledgeThresholds = []int{10, 25, 50, 100, 200}

// StartingResources also enumerates every tradeable kind; the ledger refuses
// kinds it has never seen, so goods that only enter play through the market
// start at zero.
func StartingResources() map[string]int {
	return map[string]int{
		"almond_water":       100,
		"food":               100,
		"medical":            50,
		"fuel":               75,
		"supplies":           50,
		"reality_stabilizer": 0,
		"partygoers_cake":    0,
		"faceling_mask":      0,
		"crimson_weapon":     0,
		"ancient_text":       0,
	}
}

func DailyConsumptionRates() map[string]int {
	return map[string]int{
		"almond_water": 2,
		"food":         3,
		"medical":      1,
		"fuel":         2,
		"supplies":     1,
	}
}

// RankTier is one row of the prestige threshold table. Crossing a tier upward
// grants its defense bonus exactly once and attempts one random hire.
type RankTier struct {
	Name         string
	MinPrestige  int
	DefenseBonus int
}

func RankTable() []RankTier {
	return []RankTier{
		{Name: "Outpost Recruit", MinPrestige: 0, DefenseBonus: 0},
		{Name: "Established Post", MinPrestige: 100, DefenseBonus: 5},
		{Name: "Respected Haven", MinPrestige: 200, DefenseBonus: 10},
		{Name: "Renowned Bastion", MinPrestige: 350, DefenseBonus: 15},
		{Name: "Legendary Refuge", MinPrestige: 500, DefenseBonus: 20},
	}
}

// RankForPrestige is a pure function of prestige over the threshold table.
func RankForPrestige(prestige int) int {
	table := RankTable()
	rank := 0
	for i, tier := range table {
		if prestige >= tier.MinPrestige {
			rank = i
		}
	}
	return rank
}

// AgentNamePool feeds rank-up hires and new-game seeding.
var AgentNamePool = []string{
	"Alex", "Blake", "Cameron", "Drew", "Ellis", "Francis", "Glen", "Harper",
	"Ian", "Jordan", "Kennedy", "Logan", "Morgan", "Noah", "Owen", "Parker",
	"Quinn", "Riley", "Sam", "Taylor", "Uri", "Val", "Winter", "Xavier",
	"Yuri", "Zion", "Ash", "Bailey", "Casey", "Dale", "Eden", "Finley",
	"Gray", "Hayden", "Indie", "Jamie", "Kai", "Lake", "Maven", "Noel",
}

// SkillNames in the order used for random increments.
var SkillNames = []string{"combat", "research", "survival", "diplomacy", "medical"}
