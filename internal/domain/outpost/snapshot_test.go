package outpost

import (
	"errors"
	"reflect"
	"testing"

	"megbase/internal/domain/catalog"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestState(t, 17)
	for i := 0; i < 5; i++ {
		g.AdvanceDay()
	}
	g.Missions.Completed["supply_run"] = true
	g.Intel.AddPoints("level_2", 60)
	g.Intel.DiscoverSecret("level_2", "hidden door")
	snap := g.Capture()

	restored := New(catalog.Default(), 17)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if !reflect.DeepEqual(restored.Capture(), snap) {
		t.Fatalf("round trip diverged:\n%+v\n%+v", restored.Capture(), snap)
	}
	if restored.Stats.Day != g.Stats.Day {
		t.Fatalf("day = %d, want %d", restored.Stats.Day, g.Stats.Day)
	}
	if got := restored.Intel.Knowledge("level_2"); got != g.Intel.Knowledge("level_2") {
		t.Fatalf("knowledge = %d, want %d", got, g.Intel.Knowledge("level_2"))
	}
}

func TestRestoreRejectsVersionMismatch(t *testing.T) {
	g := newTestState(t, 17)
	snap := g.Capture()
	snap.Version = 99

	err := New(catalog.Default(), 17).Restore(snap)
	if !errors.Is(err, ErrSnapshotVersion) {
		t.Fatalf("err = %v, want ErrSnapshotVersion", err)
	}
}

func TestRestoreRejectsUnknownReferences(t *testing.T) {
	g := newTestState(t, 17)
	snap := g.Capture()
	snap.Missions.Pool = append(snap.Missions.Pool, "mission_from_the_future")

	target := newTestState(t, 17)
	dayBefore := target.Stats.Day
	err := target.Restore(snap)
	if !errors.Is(err, ErrSnapshotReference) {
		t.Fatalf("err = %v, want ErrSnapshotReference", err)
	}
	// A refused restore leaves the live state alone.
	if target.Stats.Day != dayBefore {
		t.Fatalf("failed restore mutated state")
	}
}

func TestCaptureIsDetached(t *testing.T) {
	g := newTestState(t, 17)
	snap := g.Capture()

	g.Resources.Modify("supplies", -10)
	g.Roster.Agents[0].Morale = 0

	if snap.Resources.Quantities["supplies"] != 50 {
		t.Fatalf("snapshot aliased the resource map")
	}
	if snap.Personnel.Agents[0].Morale == 0 {
		t.Fatalf("snapshot aliased agent state")
	}
}
