package game

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"megbase/internal/adapter/repo/memory"
	"megbase/internal/app/ports"
	"megbase/internal/domain/catalog"
	"megbase/internal/domain/outpost"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	return NewUseCase(memory.NewSaveRepo(), catalog.Default(), 42, slog.Default())
}

func TestCommandsRequireGame(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()

	if _, err := u.AdvanceDay(ctx); !errors.Is(err, ErrNoGame) {
		t.Fatalf("advance err = %v, want ErrNoGame", err)
	}
	if _, err := u.State(ctx); !errors.Is(err, ErrNoGame) {
		t.Fatalf("state err = %v, want ErrNoGame", err)
	}
	if _, err := u.Build(ctx, 1); !errors.Is(err, ErrNoGame) {
		t.Fatalf("build err = %v, want ErrNoGame", err)
	}
}

func TestNewGameAndAdvance(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()

	out, err := u.NewGame(ctx)
	if err != nil || !out.OK {
		t.Fatalf("new game = %+v, %v", out, err)
	}

	out, err = u.AdvanceDay(ctx)
	if err != nil || !out.OK {
		t.Fatalf("advance = %+v, %v", out, err)
	}
	view, err := u.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if view.Stats.Day != 2 {
		t.Fatalf("day = %d, want 2", view.Stats.Day)
	}
	if len(view.Pool) == 0 || len(view.Agents) != outpost.StartingAgents {
		t.Fatalf("view = pool %d agents %d", len(view.Pool), len(view.Agents))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()

	u.NewGame(ctx)
	for i := 0; i < 3; i++ {
		u.AdvanceDay(ctx)
	}
	out, err := u.Save(ctx, "checkpoint")
	if err != nil || !out.OK {
		t.Fatalf("save = %+v, %v", out, err)
	}

	// Play past the checkpoint, then rewind.
	u.AdvanceDay(ctx)
	u.AdvanceDay(ctx)

	out, err = u.Load(ctx, "checkpoint")
	if err != nil || !out.OK {
		t.Fatalf("load = %+v, %v", out, err)
	}
	view, _ := u.State(ctx)
	if view.Stats.Day != 4 {
		t.Fatalf("day after load = %d, want 4", view.Stats.Day)
	}

	infos, err := u.ListSaves(ctx)
	if err != nil || len(infos) != 1 || infos[0].Day != 4 {
		t.Fatalf("list = %+v, %v", infos, err)
	}

	if out, err := u.DeleteSave(ctx, "checkpoint"); err != nil || !out.OK {
		t.Fatalf("delete = %+v, %v", out, err)
	}
	if _, err := u.Load(ctx, "checkpoint"); !errors.Is(err, ports.ErrSaveNotFound) {
		t.Fatalf("load deleted err = %v, want ErrSaveNotFound", err)
	}
}

func TestLoadSchemaMismatch(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()
	u.NewGame(ctx)
	u.Save(ctx, "slot")

	record, err := u.Saves.Get(ctx, "slot")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	record.Snapshot.Version = 99
	u.Saves.Put(ctx, record)

	if _, err := u.Load(ctx, "slot"); !errors.Is(err, ports.ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadCatalogMissing(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()
	u.NewGame(ctx)
	u.Save(ctx, "slot")

	record, _ := u.Saves.Get(ctx, "slot")
	record.Snapshot.Missions.Pool = append(record.Snapshot.Missions.Pool, "not_in_catalog")
	u.Saves.Put(ctx, record)

	if _, err := u.Load(ctx, "slot"); !errors.Is(err, ports.ErrCatalogMissing) {
		t.Fatalf("err = %v, want ErrCatalogMissing", err)
	}

	// The running game survives a refused load.
	if _, err := u.State(ctx); err != nil {
		t.Fatalf("state after refused load: %v", err)
	}
}

func TestEndedGameRefusesCommands(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()
	u.NewGame(ctx)
	u.state.EndingID = "collapse"

	out, err := u.Build(ctx, 2)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if out.OK {
		t.Fatalf("command accepted after ending")
	}
}

func TestBuildAndAlertCommands(t *testing.T) {
	u := newTestUseCase(t)
	ctx := context.Background()
	u.NewGame(ctx)

	// Ordinal 2 is the walls: 25 supplies, 10 fuel, affordable at start.
	out, err := u.Build(ctx, 2)
	if err != nil || !out.OK {
		t.Fatalf("build = %+v, %v", out, err)
	}
	out, _ = u.Build(ctx, 999)
	if out.OK {
		t.Fatalf("bad ordinal accepted")
	}

	out, err = u.RaiseAlert(ctx)
	if err != nil || !out.OK {
		t.Fatalf("raise = %+v, %v", out, err)
	}
	out, err = u.LowerAlert(ctx)
	if err != nil || !out.OK {
		t.Fatalf("lower = %+v, %v", out, err)
	}
	if out, _ := u.LowerAlert(ctx); out.OK {
		t.Fatalf("lowered past the floor")
	}
}
