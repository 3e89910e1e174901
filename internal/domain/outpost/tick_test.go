package outpost

import (
	"reflect"
	"testing"

	"megbase/internal/domain/catalog"
)

func TestAdvanceDayIncrementsOnce(t *testing.T) {
	g := newTestState(t, 21)

	report := g.AdvanceDay()
	if report.Day != 2 || g.Stats.Day != 2 {
		t.Fatalf("day = %d/%d, want 2", report.Day, g.Stats.Day)
	}
	report = g.AdvanceDay()
	if report.Day != 3 {
		t.Fatalf("day = %d, want 3", report.Day)
	}
}

func TestAdvanceDayDeterministic(t *testing.T) {
	a := New(catalog.Default(), 42)
	a.NewGame()
	b := New(catalog.Default(), 42)
	b.NewGame()

	for i := 0; i < 10; i++ {
		a.AdvanceDay()
		b.AdvanceDay()
	}

	sa, sb := a.Capture(), b.Capture()
	if !reflect.DeepEqual(sa, sb) {
		t.Fatalf("same seed diverged after 10 days:\n%+v\n%+v", sa, sb)
	}
}

func TestRankPromotionGrantsOnce(t *testing.T) {
	g := newTestState(t, 21)
	ratingBefore := g.Defense.Rating

	g.Stats.Prestige = 150
	g.recomputeRank()
	if g.Stats.Rank != 1 || g.Stats.BestRank != 1 {
		t.Fatalf("rank = %d best = %d, want 1/1", g.Stats.Rank, g.Stats.BestRank)
	}
	if g.Defense.Rating != ratingBefore+5 {
		t.Fatalf("rating = %d, want %d", g.Defense.Rating, ratingBefore+5)
	}

	// Dipping below the threshold demotes the display rank but a later
	// recovery must not pay the tier bonus again.
	g.Stats.Prestige = 50
	g.recomputeRank()
	if g.Stats.Rank != 0 || g.Stats.BestRank != 1 {
		t.Fatalf("rank after dip = %d best = %d", g.Stats.Rank, g.Stats.BestRank)
	}
	g.Stats.Prestige = 150
	g.recomputeRank()
	if g.Defense.Rating != ratingBefore+5 {
		t.Fatalf("tier bonus paid twice: rating = %d", g.Defense.Rating)
	}
}

func TestEndedGameStopsTicking(t *testing.T) {
	g := newTestState(t, 21)
	g.EndingID = "collapse"

	day := g.Stats.Day
	report := g.AdvanceDay()
	if g.Stats.Day != day {
		t.Fatalf("ended game advanced to day %d", g.Stats.Day)
	}
	if len(report.Notices) == 0 {
		t.Fatalf("no notice for a finished run")
	}
}
