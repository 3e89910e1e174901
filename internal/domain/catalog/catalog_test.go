package catalog

import (
	"errors"
	"testing"
)

func TestDefaultIsConsistent(t *testing.T) {
	s := Default()
	if len(s.Missions()) == 0 || len(s.Events()) == 0 || len(s.Locations()) == 0 {
		t.Fatalf("default tables empty")
	}
	for _, m := range s.Missions() {
		if m.Duration < 1 {
			t.Errorf("mission %q has duration %d", m.ID, m.Duration)
		}
	}
}

func TestNewSetRejectsDanglingLocation(t *testing.T) {
	_, err := NewSet(nil, []MissionTemplate{
		{ID: "m", Title: "m", Duration: 1, ValidLocations: []string{"level_404"}},
	}, nil, nil)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("err = %v, want ErrMissingReference", err)
	}
}

func TestNewSetRejectsDanglingChain(t *testing.T) {
	_, err := NewSet(nil, []MissionTemplate{
		{ID: "m", Title: "m", Duration: 1, Chain: &ChainUnlock{NextID: "ghost"}},
	}, nil, nil)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("err = %v, want ErrMissingReference", err)
	}
}

func TestNewSetRejectsDanglingPrereq(t *testing.T) {
	_, err := NewSet(nil, []MissionTemplate{
		{ID: "m", Title: "m", Duration: 1, Prereq: Prerequisites{Completed: []string{"ghost"}}},
	}, nil, nil)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("err = %v, want ErrMissingReference", err)
	}
}

func TestRoleIDsSorted(t *testing.T) {
	ids := Default().RoleIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("role ids not strictly sorted: %v", ids)
		}
	}
}
