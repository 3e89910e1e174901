// Package game is the application service over the simulation core: it owns
// the single running game, serializes access to it, and talks to the save
// repository. Transport adapters call into it and render the outcomes.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"megbase/internal/app/ports"
	"megbase/internal/domain/catalog"
	"megbase/internal/domain/outpost"
)

var ErrNoGame = errors.New("no game in progress")

// Outcome is the uniform reply for player commands: whether the command took
// effect, a human-readable line, and optional structured payload.
type Outcome struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Notices []string `json:"notices,omitempty"`
	Payload any      `json:"payload,omitempty"`
}

type UseCase struct {
	Saves    ports.SaveRepository
	Catalogs *catalog.Set
	Seed     int64
	Logger   *slog.Logger

	mu    sync.Mutex
	state *outpost.GameState
}

func NewUseCase(saves ports.SaveRepository, cats *catalog.Set, seed int64, logger *slog.Logger) *UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UseCase{Saves: saves, Catalogs: cats, Seed: seed, Logger: logger}
}

// NewGame discards any running game and starts a fresh one.
func (u *UseCase) NewGame(ctx context.Context) (Outcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = outpost.New(u.Catalogs, u.Seed)
	u.state.NewGame()
	u.Logger.InfoContext(ctx, "new game started", "seed", u.Seed)
	return Outcome{OK: true, Message: "a new outpost stirs to life", Notices: noticeLines(u.state.DrainNotices())}, nil
}

// AdvanceDay runs one tick of the daily loop.
func (u *UseCase) AdvanceDay(ctx context.Context) (Outcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == nil {
		return Outcome{}, ErrNoGame
	}

	report := u.state.AdvanceDay()
	out := Outcome{
		OK:      true,
		Message: fmt.Sprintf("day %d", report.Day),
		Notices: noticeLines(report.Notices),
		Payload: report,
	}
	if report.Ending != nil {
		u.Logger.InfoContext(ctx, "game ended", "ending", report.Ending.ID, "day", report.Day)
		out.Message = report.Ending.Title
	}
	return out, nil
}

// Save captures the running game under a name; an existing save of the same
// name is overwritten.
func (u *UseCase) Save(ctx context.Context, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Outcome{Message: "save name required"}, nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == nil {
		return Outcome{}, ErrNoGame
	}

	record := ports.SaveRecord{
		Name:     name,
		Snapshot: u.state.Capture(),
		Seed:     u.state.Seed,
		SavedAt:  time.Now().UTC(),
	}
	if err := u.Saves.Put(ctx, record); err != nil {
		return Outcome{}, fmt.Errorf("store save %q: %w", name, err)
	}
	return Outcome{OK: true, Message: fmt.Sprintf("saved %q at day %d", name, record.Snapshot.Stats.Day)}, nil
}

// Load replaces the running game with a stored snapshot. A snapshot that no
// longer matches the schema or the loaded catalogs is refused and the running
// game, if any, stays as it was.
func (u *UseCase) Load(ctx context.Context, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Outcome{Message: "save name required"}, nil
	}
	record, err := u.Saves.Get(ctx, name)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch save %q: %w", name, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	fresh := outpost.New(u.Catalogs, record.Seed)
	if err := fresh.Restore(record.Snapshot); err != nil {
		switch {
		case errors.Is(err, outpost.ErrSnapshotVersion):
			return Outcome{}, fmt.Errorf("load %q: %w", name, ports.ErrSchemaMismatch)
		case errors.Is(err, outpost.ErrSnapshotReference):
			return Outcome{}, fmt.Errorf("load %q: %w", name, ports.ErrCatalogMissing)
		}
		return Outcome{}, fmt.Errorf("load %q: %w", name, err)
	}
	u.state = fresh
	u.Logger.InfoContext(ctx, "game loaded", "save", name, "day", fresh.Stats.Day)
	return Outcome{OK: true, Message: fmt.Sprintf("loaded %q, day %d", name, fresh.Stats.Day)}, nil
}

func (u *UseCase) ListSaves(ctx context.Context) ([]ports.SaveInfo, error) {
	return u.Saves.List(ctx)
}

func (u *UseCase) DeleteSave(ctx context.Context, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Outcome{Message: "save name required"}, nil
	}
	if err := u.Saves.Delete(ctx, name); err != nil {
		return Outcome{}, fmt.Errorf("delete save %q: %w", name, err)
	}
	return Outcome{OK: true, Message: fmt.Sprintf("deleted save %q", name)}, nil
}

// Build constructs the structure at the given 1-based catalog ordinal.
func (u *UseCase) Build(ctx context.Context, ordinal int) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		def, ok := g.Defense.Build(ordinal, g.Resources)
		if !ok {
			return Outcome{Message: "cannot build: unknown structure or insufficient resources"}
		}
		return Outcome{OK: true, Message: "built " + def.Name}
	})
}

func (u *UseCase) Trade(ctx context.Context, goodID, orgID string, quantity int, buying bool) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		res := g.Trade(goodID, orgID, quantity, buying)
		return Outcome{OK: res.OK, Message: res.Message, Payload: res}
	})
}

func (u *UseCase) Hire(ctx context.Context, name, roleID string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		agent := g.Roster.Hire(name, roleID, g.Catalogs, g.Rng())
		if agent == nil {
			return Outcome{Message: "cannot hire: roster full or unknown role"}
		}
		return Outcome{OK: true, Message: "hired " + agent.Name, Payload: agent}
	})
}

func (u *UseCase) Dismiss(ctx context.Context, agentID string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		agent := g.Roster.Get(agentID)
		if agent == nil {
			return Outcome{Message: "unknown agent"}
		}
		if !agent.Available() {
			return Outcome{Message: agent.Name + " is in the field and cannot be dismissed"}
		}
		g.Roster.Remove(agentID)
		return Outcome{OK: true, Message: "dismissed " + agent.Name}
	})
}

func (u *UseCase) RequestHelp(ctx context.Context, orgID, kind string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		res := g.RequestHelp(orgID, kind)
		return Outcome{OK: res.OK, Message: res.Message}
	})
}

func (u *UseCase) StartMission(ctx context.Context, ordinal int, agentID string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		res := g.StartMission(ordinal, agentID)
		return Outcome{OK: res.OK, Message: res.Message, Payload: res}
	})
}

func (u *UseCase) Investigate(ctx context.Context, locationID, agentID string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		res := g.InvestigateAgent(locationID, agentID)
		return Outcome{OK: res.OK, Message: res.Message, Payload: res}
	})
}

func (u *UseCase) Purify(ctx context.Context, agentID string) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		res := g.PurifyAgent(agentID)
		return Outcome{OK: res.OK, Message: res.Message, Payload: res}
	})
}

func (u *UseCase) RaiseAlert(ctx context.Context) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		shift, ok := g.Defense.RaiseAlert()
		if !ok {
			return Outcome{Message: "alert already at maximum"}
		}
		return Outcome{OK: true, Message: fmt.Sprintf("alert raised to level %d", shift.NewLevel), Payload: shift}
	})
}

func (u *UseCase) LowerAlert(ctx context.Context) (Outcome, error) {
	return u.command(func(g *outpost.GameState) Outcome {
		shift, ok := g.Defense.LowerAlert()
		if !ok {
			return Outcome{Message: "alert already at minimum"}
		}
		return Outcome{OK: true, Message: fmt.Sprintf("alert lowered to level %d", shift.NewLevel), Payload: shift}
	})
}

// command runs one mutation under the lock, then drains notices into the
// outcome so nothing the command caused is lost.
func (u *UseCase) command(fn func(*outpost.GameState) Outcome) (Outcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == nil {
		return Outcome{}, ErrNoGame
	}
	if u.state.Ended() {
		return Outcome{Message: "this run is over; start a new game"}, nil
	}
	out := fn(u.state)
	out.Notices = append(out.Notices, noticeLines(u.state.DrainNotices())...)
	return out, nil
}

func noticeLines(notices []outpost.Notice) []string {
	if len(notices) == 0 {
		return nil
	}
	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		lines = append(lines, n.Message)
	}
	return lines
}
