package outpost

import (
	"fmt"
	"math/rand"
	"strings"

	"megbase/internal/domain/catalog"
)

const StatusAvailable = "available"

// OnMissionStatus encodes an assignment as "on-mission:<template id>".
func OnMissionStatus(missionID string) string {
	return "on-mission:" + missionID
}

type Agent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Level  int    `json:"level"`
	Exp    int    `json:"exp"`
	Morale int    `json:"morale"`
	Status string `json:"status"`

	Combat    int `json:"combat"`
	Research  int `json:"research"`
	Survival  int `json:"survival"`
	Diplomacy int `json:"diplomacy"`
	Medical   int `json:"medical"`
}

func (a *Agent) Available() bool { return a.Status == StatusAvailable }

func (a *Agent) skill(name string) *int {
	switch name {
	case "combat":
		return &a.Combat
	case "research":
		return &a.Research
	case "survival":
		return &a.Survival
	case "diplomacy":
		return &a.Diplomacy
	case "medical":
		return &a.Medical
	}
	return nil
}

// Roster owns every agent. Missions hold agent ids only; removal here is the
// single point of destruction for both dismissal and death.
type Roster struct {
	Agents []*Agent `json:"agents"`
	NextID int      `json:"next_id"`
}

func NewRoster() *Roster {
	return &Roster{NextID: 1}
}

func (r *Roster) Get(id string) *Agent {
	for _, a := range r.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *Roster) Count() int { return len(r.Agents) }

func (r *Roster) Available() []*Agent {
	out := make([]*Agent, 0, len(r.Agents))
	for _, a := range r.Agents {
		if a.Available() {
			out = append(out, a)
		}
	}
	return out
}

// Hire creates an agent with role base stats plus a small random jitter.
// Fails when the roster is at capacity or the role is unknown.
func (r *Roster) Hire(name, roleID string, cats *catalog.Set, rng *rand.Rand) *Agent {
	if len(r.Agents) >= MaxAgents {
		return nil
	}
	role, ok := cats.Role(roleID)
	if !ok {
		return nil
	}
	jitter := func(base int) int {
		v := base + rng.Intn(3) - 1
		if v < 1 {
			v = 1
		}
		return v
	}
	agent := &Agent{
		ID:        fmt.Sprintf("agent_%d", r.NextID),
		Name:      name,
		Role:      role.ID,
		Level:     1,
		Morale:    60 + rng.Intn(41),
		Status:    StatusAvailable,
		Combat:    jitter(role.Base.Combat),
		Research:  jitter(role.Base.Research),
		Survival:  jitter(role.Base.Survival),
		Diplomacy: jitter(role.Base.Diplomacy),
		Medical:   jitter(role.Base.Medical),
	}
	r.NextID++
	r.Agents = append(r.Agents, agent)
	return agent
}

// Remove drops an agent from the roster. Same operation for voluntary
// dismissal and forced death; the caller decides the context.
func (r *Roster) Remove(id string) bool {
	for i, a := range r.Agents {
		if a.ID == id {
			r.Agents = append(r.Agents[:i], r.Agents[i+1:]...)
			return true
		}
	}
	return false
}

// Assign marks an available agent with a status label. Fails for any other
// current status.
func (r *Roster) Assign(id, label string) bool {
	a := r.Get(id)
	if a == nil || !a.Available() {
		return false
	}
	a.Status = label
	return true
}

func (r *Roster) Release(id string) bool {
	a := r.Get(id)
	if a == nil {
		return false
	}
	a.Status = StatusAvailable
	return true
}

// GrantExperience accumulates exp, rolling each full 100 points into one
// level-up with a random skill increment.
func (r *Roster) GrantExperience(id string, amount int, rng *rand.Rand) bool {
	a := r.Get(id)
	if a == nil {
		return false
	}
	a.Exp += amount
	for a.Exp >= ExpPerLevel {
		a.Exp -= ExpPerLevel
		a.Level++
		if p := a.skill(SkillNames[rng.Intn(len(SkillNames))]); p != nil {
			*p++
		}
	}
	return true
}

// DailyUpdate applies per-agent morale drift and rare skill improvement.
func (r *Roster) DailyUpdate(rng *rand.Rand) {
	for _, a := range r.Agents {
		if rng.Float64() < MoraleDriftChance {
			a.Morale = clamp(a.Morale+rng.Intn(11)-5, 0, 100)
		}
		if rng.Float64() < SkillDriftChance {
			if p := a.skill(SkillNames[rng.Intn(len(SkillNames))]); p != nil && *p < SkillCap {
				*p++
			}
		}
	}
}

// AddRandom hires a random unused name with a random role, used on rank-up.
func (r *Roster) AddRandom(cats *catalog.Set, rng *rand.Rand) *Agent {
	if len(r.Agents) >= MaxAgents {
		return nil
	}
	used := make(map[string]bool, len(r.Agents))
	for _, a := range r.Agents {
		used[strings.SplitN(a.Name, " ", 2)[0]] = true
	}
	free := make([]string, 0, len(AgentNamePool))
	for _, n := range AgentNamePool {
		if !used[n] {
			free = append(free, n)
		}
	}
	var name string
	if len(free) > 0 {
		name = free[rng.Intn(len(free))]
	} else {
		base := AgentNamePool[rng.Intn(len(AgentNamePool))]
		for i := 2; ; i++ {
			name = fmt.Sprintf("%s %d", base, i)
			if r.byName(name) == nil {
				break
			}
		}
	}
	roles := cats.RoleIDs()
	return r.Hire(name, roles[rng.Intn(len(roles))], cats, rng)
}

func (r *Roster) byName(name string) *Agent {
	for _, a := range r.Agents {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
