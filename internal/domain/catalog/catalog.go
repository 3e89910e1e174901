// Package catalog holds the immutable content tables the simulation core is
// handed at startup: event definitions, mission templates, role base stats
// and location descriptors. The tables are read-only; per-run mutable state
// references them by id.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMissingReference = errors.New("missing catalog reference")

type Skills struct {
	Combat    int `json:"combat" yaml:"combat"`
	Research  int `json:"research" yaml:"research"`
	Survival  int `json:"survival" yaml:"survival"`
	Diplomacy int `json:"diplomacy" yaml:"diplomacy"`
	Medical   int `json:"medical" yaml:"medical"`
}

type Role struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Base Skills `json:"base_stats" yaml:"base_stats"`
}

type Location struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Difficulty   int      `json:"difficulty" yaml:"difficulty"`
	Danger       int      `json:"danger" yaml:"danger"`
	Entities     []string `json:"entities" yaml:"entities"`
	Resources    []string `json:"resources" yaml:"resources"`
	SpecialItems []string `json:"special_items" yaml:"special_items"`
}

// EffectSpec is the uniform effect bundle interpreted by the core's generic
// applier. Stats keys: morale, prestige, corruption, defense_rating.
type EffectSpec struct {
	Resources     map[string]int `json:"resources,omitempty" yaml:"resources,omitempty"`
	Stats         map[string]int `json:"stats,omitempty" yaml:"stats,omitempty"`
	IntelPoints   int            `json:"intel_points,omitempty" yaml:"intel_points,omitempty"`
	IntelLocation string         `json:"intel_location,omitempty" yaml:"intel_location,omitempty"`
	Suspicion     bool           `json:"suspicion,omitempty" yaml:"suspicion,omitempty"`
}

type EventCondition struct {
	MinDay        int `json:"min_day,omitempty" yaml:"min_day,omitempty"`
	MinCorruption int `json:"min_corruption,omitempty" yaml:"min_corruption,omitempty"`
	MinAlert      int `json:"min_alert,omitempty" yaml:"min_alert,omitempty"`
}

// Event is a random daily occurrence. A non-empty Locations list names the
// sites the event can play out at; intel and suspicion effects land on one
// of them instead of the home level.
type Event struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Effects     EffectSpec     `json:"effects" yaml:"effects"`
	Locations   []string       `json:"locations,omitempty" yaml:"locations,omitempty"`
	Weight      float64        `json:"weight" yaml:"weight"`
	Condition   EventCondition `json:"condition" yaml:"condition"`
}

type Rewards struct {
	Resources   map[string]int `json:"resources,omitempty" yaml:"resources,omitempty"`
	Stats       map[string]int `json:"stats,omitempty" yaml:"stats,omitempty"`
	IntelPoints int            `json:"intel_points,omitempty" yaml:"intel_points,omitempty"`
}

type ChainUnlock struct {
	NextID        string `json:"next_id" yaml:"next_id"`
	IntelRequired int    `json:"intel_required" yaml:"intel_required"`
}

type Prerequisites struct {
	Completed     []string `json:"completed,omitempty" yaml:"completed,omitempty"`
	MinPrestige   int      `json:"min_prestige,omitempty" yaml:"min_prestige,omitempty"`
	MinIntel      int      `json:"min_intel,omitempty" yaml:"min_intel,omitempty"`
	MinCorruption int      `json:"min_corruption,omitempty" yaml:"min_corruption,omitempty"`
	MinLostAgents int      `json:"min_lost_agents,omitempty" yaml:"min_lost_agents,omitempty"`
}

type MissionTemplate struct {
	ID             string             `json:"id" yaml:"id"`
	Title          string             `json:"title" yaml:"title"`
	Description    string             `json:"description" yaml:"description"`
	Duration       int                `json:"duration" yaml:"duration"`
	Rewards        Rewards            `json:"rewards" yaml:"rewards"`
	ValidLocations []string           `json:"valid_locations,omitempty" yaml:"valid_locations,omitempty"`
	NoLocation     bool               `json:"no_location,omitempty" yaml:"no_location,omitempty"`
	MinKnowledge   int                `json:"min_knowledge,omitempty" yaml:"min_knowledge,omitempty"`
	MaxDifficulty  int                `json:"max_difficulty,omitempty" yaml:"max_difficulty,omitempty"`
	DifficultyMult map[string]float64 `json:"difficulty_multiplier,omitempty" yaml:"difficulty_multiplier,omitempty"`
	Chain          *ChainUnlock       `json:"chain,omitempty" yaml:"chain,omitempty"`
	Prereq         Prerequisites      `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// Set is a validated, immutable bundle of all content tables.
type Set struct {
	events     []Event
	missions   []MissionTemplate
	locations  []Location
	eventsByID map[string]Event
	missionsBy map[string]MissionTemplate
	locsByID   map[string]Location
	roles      map[string]Role
}

// NewSet validates every cross-reference in the tables and fails fast on the
// first dangling id.
func NewSet(events []Event, missions []MissionTemplate, roles []Role, locations []Location) (*Set, error) {
	s := &Set{
		events:     events,
		missions:   missions,
		locations:  locations,
		eventsByID: make(map[string]Event, len(events)),
		missionsBy: make(map[string]MissionTemplate, len(missions)),
		locsByID:   make(map[string]Location, len(locations)),
		roles:      make(map[string]Role, len(roles)),
	}
	for _, l := range locations {
		if l.ID == "" {
			return nil, fmt.Errorf("location with empty id: %w", ErrMissingReference)
		}
		s.locsByID[l.ID] = l
	}
	for _, r := range roles {
		if r.ID == "" {
			return nil, fmt.Errorf("role with empty id: %w", ErrMissingReference)
		}
		s.roles[r.ID] = r
	}
	for _, e := range events {
		for _, loc := range e.Locations {
			if _, ok := s.locsByID[loc]; !ok {
				return nil, fmt.Errorf("event %q references location %q: %w", e.ID, loc, ErrMissingReference)
			}
		}
		s.eventsByID[e.ID] = e
	}
	for _, m := range missions {
		s.missionsBy[m.ID] = m
	}
	for _, m := range missions {
		for _, loc := range m.ValidLocations {
			if _, ok := s.locsByID[loc]; !ok {
				return nil, fmt.Errorf("mission %q references location %q: %w", m.ID, loc, ErrMissingReference)
			}
		}
		if m.Chain != nil {
			if _, ok := s.missionsBy[m.Chain.NextID]; !ok {
				return nil, fmt.Errorf("mission %q chains to %q: %w", m.ID, m.Chain.NextID, ErrMissingReference)
			}
		}
		for _, dep := range m.Prereq.Completed {
			if _, ok := s.missionsBy[dep]; !ok {
				return nil, fmt.Errorf("mission %q requires %q: %w", m.ID, dep, ErrMissingReference)
			}
		}
	}
	return s, nil
}

func (s *Set) Events() []Event { return s.events }

func (s *Set) EventByID(id string) (Event, bool) {
	e, ok := s.eventsByID[id]
	return e, ok
}

func (s *Set) Missions() []MissionTemplate { return s.missions }

func (s *Set) MissionByID(id string) (MissionTemplate, bool) {
	m, ok := s.missionsBy[id]
	return m, ok
}

func (s *Set) Locations() []Location { return s.locations }

func (s *Set) LocationByID(id string) (Location, bool) {
	l, ok := s.locsByID[id]
	return l, ok
}

func (s *Set) Role(id string) (Role, bool) {
	r, ok := s.roles[id]
	return r, ok
}

// RoleIDs returns role ids in sorted order so random picks drawn against the
// list stay deterministic for a given seed.
func (s *Set) RoleIDs() []string {
	ids := make([]string, 0, len(s.roles))
	for id := range s.roles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
