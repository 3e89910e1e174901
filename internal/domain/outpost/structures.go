package outpost

// StructureCatalog lists every buildable structure in stable ordinal order.
func StructureCatalog() []StructureDef {
	return []StructureDef{
		{
			ID: "radio_tower", Name: "Radio Tower",
			DefenseBonus: 3, DiplomaticBonus: 7, MoraleBonus: 5,
			Cost:            map[string]int{"supplies": 30, "fuel": 20},
			SpecialistMult:  map[string]float64{"diplomat": 1.5, "engineer": 1.3, "explorer": 1.2},
			DailyProduction: map[string]int{"supplies": 3, "almond_water": 1},
		},
		{
			ID: "walls", Name: "Reinforced Walls",
			DefenseBonus: 8, SurvivalBonus: 4, MoraleBonus: 2,
			Cost:            map[string]int{"supplies": 25, "fuel": 10},
			SpecialistMult:  map[string]float64{"combat_specialist": 1.4, "engineer": 1.3, "survivalist": 1.2},
			DailyProduction: map[string]int{"almond_water": 2, "supplies": 1},
		},
		{
			ID: "turrets", Name: "Defense Turrets",
			DefenseBonus: 10, SurvivalBonus: 3, MoraleBonus: 2,
			Cost:            map[string]int{"supplies": 30, "fuel": 20},
			SpecialistMult:  map[string]float64{"combat_specialist": 1.5, "engineer": 1.3, "scout": 1.2},
			DailyProduction: map[string]int{"supplies": 2, "fuel": 1},
		},
		{
			ID: "sensors", Name: "Motion Sensors",
			DefenseBonus: 3, ResearchBonus: 2,
			Cost:           map[string]int{"fuel": 10, "supplies": 15},
			SpecialistMult: map[string]float64{"engineer": 1.2, "scout": 1.1},
		},
		{
			ID: "monitoring", Name: "Monitoring Center",
			DefenseBonus: 2, ResearchBonus: 5,
			Cost:           map[string]int{"supplies": 30, "fuel": 20},
			SpecialistMult: map[string]float64{"researcher": 1.3},
		},
		{
			ID: "infirmary", Name: "Infirmary",
			MedicalBonus: 5, MoraleBonus: 2,
			Cost:           map[string]int{"medical": 25, "supplies": 15},
			SpecialistMult: map[string]float64{"medic": 1.4},
		},
		{
			ID: "psych_ward", Name: "Counseling Center",
			MedicalBonus: 2, MoraleBonus: 5,
			Cost:           map[string]int{"medical": 15, "supplies": 10},
			SpecialistMult: map[string]float64{"psychologist": 1.3},
		},
		{
			ID: "greenhouse", Name: "Hydroponic Greenhouse",
			SurvivalBonus: 4,
			Cost:           map[string]int{"supplies": 30, "almond_water": 20},
			SpecialistMult: map[string]float64{"survivalist": 1.3},
		},
		{
			ID: "water_purifier", Name: "Water Purifier",
			SurvivalBonus: 5,
			Cost:           map[string]int{"supplies": 25, "fuel": 15},
			SpecialistMult: map[string]float64{"engineer": 1.2, "survivalist": 1.2},
		},
		{
			ID: "meeting_hall", Name: "Meeting Hall",
			DiplomaticBonus: 3, MoraleBonus: 3,
			Cost:            map[string]int{"supplies": 15},
			SpecialistMult:  map[string]float64{"diplomat": 1.2, "psychologist": 1.1},
			DailyProduction: map[string]int{"morale": 1},
		},
		{
			ID: "embassy", Name: "Embassy",
			DiplomaticBonus: 10, MoraleBonus: 5,
			Cost:            map[string]int{"supplies": 50, "medical": 20, "almond_water": 25},
			SpecialistMult:  map[string]float64{"diplomat": 2.0, "psychologist": 1.5},
			DailyProduction: map[string]int{"supplies": 4, "medical": 2},
		},
		{
			ID: "comm_center", Name: "Communications Center",
			DiplomaticBonus: 5, MoraleBonus: 2,
			Cost:            map[string]int{"supplies": 20, "fuel": 15},
			SpecialistMult:  map[string]float64{"diplomat": 1.4},
			DailyProduction: map[string]int{"intel_points": 1},
		},
		{
			ID: "research_lab", Name: "Research Lab",
			ResearchBonus: 7,
			Cost:           map[string]int{"supplies": 35, "fuel": 20},
			SpecialistMult: map[string]float64{"researcher": 1.5},
		},
		{
			ID: "archive", Name: "Data Archive",
			ResearchBonus: 4,
			Cost:           map[string]int{"supplies": 20},
			SpecialistMult: map[string]float64{"researcher": 1.2, "explorer": 1.1},
		},
		{
			ID: "dormitory", Name: "Dormitories",
			MoraleBonus: 8,
			Cost:            map[string]int{"supplies": 35, "almond_water": 15},
			SpecialistMult:  map[string]float64{"psychologist": 1.3, "engineer": 1.2},
			DailyProduction: map[string]int{"morale": 2},
		},
		{
			ID: "canteen", Name: "Canteen",
			MoraleBonus: 5, SurvivalBonus: 3,
			Cost:            map[string]int{"supplies": 30, "food": 20},
			SpecialistMult:  map[string]float64{"survivalist": 1.3, "medic": 1.2},
			DailyProduction: map[string]int{"food": -2, "morale": 1},
		},
		{
			ID: "recreation", Name: "Recreation Area",
			MoraleBonus: 10, DiplomaticBonus: 2,
			Cost:            map[string]int{"supplies": 25, "fuel": 10},
			SpecialistMult:  map[string]float64{"psychologist": 1.4, "diplomat": 1.2},
			DailyProduction: map[string]int{"morale": 3},
		},
		{
			ID: "warehouse", Name: "Warehouse",
			SurvivalBonus: 5,
			Cost:            map[string]int{"supplies": 40, "fuel": 15},
			SpecialistMult:  map[string]float64{"engineer": 1.3, "survivalist": 1.2},
			DailyProduction: map[string]int{"supplies": 2},
		},
	}
}
