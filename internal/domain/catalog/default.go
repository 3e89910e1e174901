package catalog

// Default returns the built-in content set. It is the same shape the static
// loader produces from data files and is what the server falls back to when
// no data directory is configured.
func Default() *Set {
	s, err := NewSet(defaultEvents(), defaultMissions(), defaultRoles(), defaultLocations())
	if err != nil {
		// The built-in tables are fixed at compile time; a dangling id here
		// is a programming error.
		panic(err)
	}
	return s
}

func defaultLocations() []Location {
	return []Location{
		{
			ID: "level_0", Name: "Level 0", Difficulty: 1, Danger: 1,
			Description: "Endless yellow office rooms. Home turf of the outpost.",
			Entities:    []string{"smiler"},
			Resources:   []string{"almond_water", "supplies"},
		},
		{
			ID: "level_1", Name: "Level 1", Difficulty: 2, Danger: 2,
			Description:  "Damp warehouse halls with intermittent lighting.",
			Entities:     []string{"hound", "faceling"},
			Resources:    []string{"supplies", "fuel"},
			SpecialItems: []string{"flare_kit"},
		},
		{
			ID: "level_2", Name: "Level 2", Difficulty: 3, Danger: 3,
			Description:  "Maintenance tunnels, hot pipes, distant machinery.",
			Entities:     []string{"hound", "clump"},
			Resources:    []string{"fuel", "medical"},
			SpecialItems: []string{"pipe_schematics"},
		},
		{
			ID: "level_3", Name: "Level 3", Difficulty: 4, Danger: 4,
			Description:  "Electrical station. Survivable only with preparation.",
			Entities:     []string{"entity_swarm"},
			Resources:    []string{"fuel"},
			SpecialItems: []string{"generator_core"},
		},
		{
			ID: "level_fun", Name: "Level Fun", Difficulty: 4, Danger: 5,
			Description:  "Party rooms. The balloons never deflate.",
			Entities:     []string{"partygoer"},
			Resources:    []string{"supplies"},
			SpecialItems: []string{"cake_sample"},
		},
		{
			ID: "level_omega", Name: "Level Omega", Difficulty: 5, Danger: 5,
			Description:  "Reality thins out here. Few return.",
			Entities:     []string{"unknown"},
			Resources:    []string{},
			SpecialItems: []string{"reality_fragment"},
		},
	}
}

func defaultRoles() []Role {
	return []Role{
		{ID: "explorer", Name: "Explorer", Base: Skills{Combat: 2, Research: 1, Survival: 3, Diplomacy: 1, Medical: 1}},
		{ID: "researcher", Name: "Researcher", Base: Skills{Combat: 1, Research: 4, Survival: 1, Diplomacy: 1, Medical: 2}},
		{ID: "combat_specialist", Name: "Combat Specialist", Base: Skills{Combat: 4, Research: 1, Survival: 2, Diplomacy: 1, Medical: 1}},
		{ID: "medic", Name: "Medic", Base: Skills{Combat: 1, Research: 2, Survival: 1, Diplomacy: 1, Medical: 4}},
		{ID: "diplomat", Name: "Diplomat", Base: Skills{Combat: 1, Research: 1, Survival: 1, Diplomacy: 4, Medical: 1}},
		{ID: "engineer", Name: "Engineer", Base: Skills{Combat: 1, Research: 3, Survival: 2, Diplomacy: 1, Medical: 1}},
		{ID: "survivalist", Name: "Survivalist", Base: Skills{Combat: 2, Research: 1, Survival: 4, Diplomacy: 1, Medical: 1}},
		{ID: "psychologist", Name: "Psychologist", Base: Skills{Combat: 1, Research: 2, Survival: 1, Diplomacy: 3, Medical: 2}},
		{ID: "scout", Name: "Scout", Base: Skills{Combat: 2, Research: 1, Survival: 3, Diplomacy: 1, Medical: 1}},
	}
}

func defaultEvents() []Event {
	return []Event{
		{
			ID: "supply_cache", Title: "Supply Cache Found", Weight: 3,
			Description: "A scavenging party stumbles on an untouched cache.",
			Effects:     EffectSpec{Resources: map[string]int{"supplies": 15, "food": 10}},
		},
		{
			ID: "water_leak", Title: "Almond Water Leak", Weight: 3,
			Description: "A storage drum split overnight.",
			Effects:     EffectSpec{Resources: map[string]int{"almond_water": -12}},
		},
		{
			ID: "wanderer_visit", Title: "Passing Wanderers", Weight: 2,
			Description: "Travelers share news from distant levels.",
			Effects:     EffectSpec{Stats: map[string]int{"morale": 5}, IntelPoints: 5, IntelLocation: "level_1"},
		},
		{
			ID: "hound_attack", Title: "Hound Attack", Weight: 2,
			Description: "Hounds tested the perimeter during the night shift.",
			Effects:     EffectSpec{Resources: map[string]int{"medical": -8}, Stats: map[string]int{"morale": -6}},
			Condition:   EventCondition{MinDay: 5},
		},
		{
			ID: "whispering_walls", Title: "Whispering Walls", Weight: 1,
			Description: "Agents report voices in the east corridor.",
			Effects:     EffectSpec{Stats: map[string]int{"morale": -4, "corruption": 3}, Suspicion: true},
			Condition:   EventCondition{MinDay: 10},
			Locations:   []string{"level_0"},
		},
		{
			ID: "meg_broadcast", Title: "M.E.G. Broadcast", Weight: 2,
			Description: "A long-range broadcast praises the outpost's work.",
			Effects:     EffectSpec{Stats: map[string]int{"prestige": 4, "morale": 3}},
		},
		{
			ID: "reality_tremor", Title: "Reality Tremor", Weight: 1,
			Description: "Geometry refused to stay put for a few minutes.",
			Effects:     EffectSpec{Stats: map[string]int{"corruption": 5, "morale": -5}, IntelPoints: -5, IntelLocation: "level_0"},
			Condition:   EventCondition{MinCorruption: 20},
		},
		{
			ID: "generator_trouble", Title: "Generator Trouble", Weight: 2,
			Description: "The backup generator ate more fuel than it should.",
			Effects:     EffectSpec{Resources: map[string]int{"fuel": -10}},
			Condition:   EventCondition{MinAlert: 2},
		},
	}
}

func defaultMissions() []MissionTemplate {
	return []MissionTemplate{
		{
			ID: "scout_perimeter", Title: "Scout the Perimeter", Duration: 1,
			Description:    "Short sweep of nearby corridors.",
			Rewards:        Rewards{Resources: map[string]int{"supplies": 10}, IntelPoints: 8},
			ValidLocations: []string{"level_0", "level_1"},
			MaxDifficulty:  3,
		},
		{
			ID: "supply_run", Title: "Supply Run", Duration: 2,
			Description:    "Haul crates back from a known stash.",
			Rewards:        Rewards{Resources: map[string]int{"supplies": 25, "food": 15}},
			DifficultyMult: map[string]float64{"resources": 1.5},
			MaxDifficulty:  4,
		},
		{
			ID: "water_expedition", Title: "Almond Water Expedition", Duration: 3,
			Description:    "Tap a rumored almond water spring.",
			Rewards:        Rewards{Resources: map[string]int{"almond_water": 30}, IntelPoints: 5},
			ValidLocations: []string{"level_0", "level_2"},
			DifficultyMult: map[string]float64{"resources": 1.3},
			MaxDifficulty:  4,
		},
		{
			ID: "map_tunnels", Title: "Map the Tunnels", Duration: 3,
			Description:    "Chart the maintenance tunnels section by section.",
			Rewards:        Rewards{IntelPoints: 20, Stats: map[string]int{"prestige": 3}},
			ValidLocations: []string{"level_2"},
			DifficultyMult: map[string]float64{"intel_points": 1.5},
			MaxDifficulty:  4,
			Chain:          &ChainUnlock{NextID: "tunnel_depths", IntelRequired: 25},
		},
		{
			ID: "tunnel_depths", Title: "Into the Tunnel Depths", Duration: 4,
			Description:    "Follow the mapped tunnels past the lit sections.",
			Rewards:        Rewards{IntelPoints: 35, Resources: map[string]int{"fuel": 20}, Stats: map[string]int{"prestige": 5}},
			ValidLocations: []string{"level_2", "level_3"},
			MinKnowledge:   2,
			MaxDifficulty:  5,
			Prereq:         Prerequisites{Completed: []string{"map_tunnels"}},
		},
		{
			ID: "rescue_party", Title: "Rescue Stranded Wanderers", Duration: 2,
			Description:    "A distress signal from a stranded group.",
			Rewards:        Rewards{Stats: map[string]int{"prestige": 6, "morale": 5}},
			DifficultyMult: map[string]float64{"prestige": 1.5},
			MaxDifficulty:  5,
		},
		{
			ID: "medical_salvage", Title: "Medical Salvage", Duration: 2,
			Description:    "Strip an abandoned infirmary for supplies.",
			Rewards:        Rewards{Resources: map[string]int{"medical": 20}},
			ValidLocations: []string{"level_1", "level_2"},
			MaxDifficulty:  4,
		},
		{
			ID: "archive_recovery", Title: "Archive Recovery", Duration: 3,
			Description:   "Recover documents from a collapsed M.E.G. archive.",
			Rewards:       Rewards{IntelPoints: 25, Stats: map[string]int{"prestige": 4}},
			MinKnowledge:  1,
			MaxDifficulty: 4,
			Prereq:        Prerequisites{MinPrestige: 60},
		},
		{
			ID: "fun_reconnaissance", Title: "Reconnaissance: Level Fun", Duration: 3,
			Description:    "Observe the partygoers without joining the party.",
			Rewards:        Rewards{IntelPoints: 30, Stats: map[string]int{"corruption": 2}},
			ValidLocations: []string{"level_fun"},
			MinKnowledge:   1,
			MaxDifficulty:  5,
			Prereq:         Prerequisites{MinIntel: 50},
		},
		{
			ID: "omega_probe", Title: "Probe Level Omega", Duration: 5,
			Description:    "Plant instruments at the edge of Level Omega.",
			Rewards:        Rewards{IntelPoints: 50, Stats: map[string]int{"prestige": 10}},
			ValidLocations: []string{"level_omega"},
			MinKnowledge:   3,
			MaxDifficulty:  5,
			Prereq:         Prerequisites{MinPrestige: 80, MinIntel: 150},
		},
		{
			ID: "stabilize_breach", Title: "Stabilize a Breach", Duration: 4,
			Description:   "Anchor a reality breach before it spreads.",
			Rewards:       Rewards{Stats: map[string]int{"prestige": 8, "corruption": -5}, IntelPoints: 15},
			MinKnowledge:  2,
			MaxDifficulty: 5,
			Prereq:        Prerequisites{MinCorruption: 30},
		},
		{
			ID: "memorial_sweep", Title: "Memorial Sweep", Duration: 1,
			Description: "Recover the effects of agents lost in the field.",
			Rewards:     Rewards{Stats: map[string]int{"morale": 8}},
			NoLocation:  true,
			Prereq:      Prerequisites{MinLostAgents: 1},
		},
	}
}
