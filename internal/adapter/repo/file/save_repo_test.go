package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"megbase/internal/app/ports"
	"megbase/internal/domain/catalog"
	"megbase/internal/domain/outpost"
)

func testRecord(t *testing.T, name string) ports.SaveRecord {
	t.Helper()
	g := outpost.New(catalog.Default(), 3)
	g.NewGame()
	return ports.SaveRecord{Name: name, Snapshot: g.Capture(), Seed: 3, SavedAt: time.Now().UTC()}
}

func TestFileSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSaveRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	record := testRecord(t, "expedition")
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "expedition")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Seed != 3 || got.Snapshot.Stats.Day != record.Snapshot.Stats.Day {
		t.Fatalf("got = %+v", got)
	}

	infos, err := repo.List(ctx)
	if err != nil || len(infos) != 1 || infos[0].Name != "expedition" {
		t.Fatalf("list = %+v, %v", infos, err)
	}

	if err := repo.Delete(ctx, "expedition"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "expedition"); !errors.Is(err, ports.ErrSaveNotFound) {
		t.Fatalf("err = %v, want ErrSaveNotFound", err)
	}
}

func TestFileSaveRejectsTraversalNames(t *testing.T) {
	repo, err := NewSaveRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if err := repo.Put(context.Background(), ports.SaveRecord{Name: name}); err == nil {
			t.Errorf("name %q accepted", name)
		}
	}
}

func TestFileSaveCorrupt(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewSaveRepo(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad"+saveExt), []byte("not zstd"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := repo.Get(context.Background(), "bad"); !errors.Is(err, ports.ErrSaveCorrupt) {
		t.Fatalf("err = %v, want ErrSaveCorrupt", err)
	}
}

func TestFileSaveOverwrite(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSaveRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	record := testRecord(t, "slot")
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("put: %v", err)
	}
	record.Snapshot.Stats.Day = 42
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := repo.Get(ctx, "slot")
	if err != nil || got.Snapshot.Stats.Day != 42 {
		t.Fatalf("get after overwrite = %+v, %v", got, err)
	}
}
