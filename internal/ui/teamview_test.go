package ui

import (
	"strings"
	"testing"
)

func TestTeamView_ListsMatchupsInScheduleOrder(t *testing.T) {
	v := NewTeamView("cowboys", testStore(t))

	if len(v.Matchups) != 2 {
		t.Fatalf("matchups = %d, want 2", len(v.Matchups))
	}
	first, second := v.Matchups[0], v.Matchups[1]
	if first.Week != 1 || first.Home != "Cowboys" || first.Away != "Giants" {
		t.Errorf("first = %+v, want week 1 Cowboys/Giants", first)
	}
	if second.Week != 2 || second.Home != "Cowboys" || second.Away != "Jets" {
		t.Errorf("second = %+v, want week 2 Cowboys/Jets", second)
	}

	view := v.View()
	if !strings.Contains(view, "Cowboys") || !strings.Contains(view, "Giants") {
		t.Error("view should render the matchup rows")
	}
}

func TestTeamView_MatchesCaseInsensitively(t *testing.T) {
	for _, name := range []string{"cowboys", "COWBOYS", "Cowboys"} {
		v := NewTeamView(name, testStore(t))
		if len(v.Matchups) != 2 {
			t.Errorf("%q: matchups = %d, want 2", name, len(v.Matchups))
		}
		// The header shows the name as routed, not normalized.
		if !strings.Contains(v.View(), name) {
			t.Errorf("%q: header should carry the raw name", name)
		}
	}
}

func TestTeamView_UnknownTeamShowsEmptyState(t *testing.T) {
	v := NewTeamView("packers", testStore(t))

	if len(v.Matchups) != 0 {
		t.Fatalf("matchups = %d, want 0", len(v.Matchups))
	}
	if !strings.Contains(v.View(), "No matchups found") {
		t.Error(`unknown team should render "No matchups found"`)
	}
}

func TestTeamView_LookupIsIdempotent(t *testing.T) {
	store := testStore(t)
	a := NewTeamView("chiefs", store)
	b := NewTeamView("chiefs", store)

	if len(a.Matchups) != len(b.Matchups) {
		t.Fatalf("lookups differ: %d vs %d", len(a.Matchups), len(b.Matchups))
	}
	for i := range a.Matchups {
		if a.Matchups[i] != b.Matchups[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, a.Matchups[i], b.Matchups[i])
		}
	}
}
