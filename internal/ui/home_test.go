package ui

import (
	"strings"
	"testing"

	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/vote"
)

func TestHomeView_Defaults(t *testing.T) {
	h := NewHomeView(testStore(t))

	if h.Week() != 1 {
		t.Errorf("Week = %d, want 1", h.Week())
	}
	want := schedule.Matchup{Home: "Chiefs", Away: "Lions"}
	if h.Selected != want {
		t.Errorf("Selected = %v, want %v", h.Selected, want)
	}
	if h.Focus.Current != PanelWeek {
		t.Errorf("initial focus = %q, want %q", h.Focus.Current, PanelWeek)
	}
}

func TestHomeView_SetWeekClamps(t *testing.T) {
	h := NewHomeView(testStore(t))

	h.SetWeek(0)
	if h.Week() != 1 {
		t.Errorf("SetWeek(0): Week = %d, want 1", h.Week())
	}
	h.SetWeek(99)
	if h.Week() != 3 {
		t.Errorf("SetWeek(99): Week = %d, want 3", h.Week())
	}
	h.SetWeek(2)
	h.SetWeek(2) // idempotent
	if h.Week() != 2 {
		t.Errorf("SetWeek(2): Week = %d, want 2", h.Week())
	}
}

func TestHomeView_SetWeekReloadsListOnly(t *testing.T) {
	h := NewHomeView(testStore(t))
	h.CastVote(vote.Away)

	h.SetWeek(2)

	// The list follows the slider...
	var titles []string
	for _, item := range h.list.Items() {
		titles = append(titles, item.(matchupItem).Title())
	}
	want := []string{"Chiefs @ Bengals", "Cowboys @ Jets"}
	if len(titles) != 2 || titles[0] != want[0] || titles[1] != want[1] {
		t.Errorf("week 2 list = %v, want %v", titles, want)
	}

	// ...but the selection and its tally stay put.
	if h.Selected != (schedule.Matchup{Home: "Chiefs", Away: "Lions"}) {
		t.Errorf("selection changed on week change: %v", h.Selected)
	}
	if h.Voter.Tally != (vote.Tally{Home: 0, Away: 1}) {
		t.Errorf("tally changed on week change: %+v", h.Voter.Tally)
	}
}

func TestHomeView_SelectRekeysVoter(t *testing.T) {
	h := NewHomeView(testStore(t))
	h.CastVote(vote.Home)
	h.CastVote(vote.Home)

	// Re-selecting the same matchup keeps the tally.
	h.Select(schedule.Matchup{Home: "Chiefs", Away: "Lions"})
	if h.Voter.Tally.Total() != 2 {
		t.Errorf("re-selecting same matchup reset tally: %+v", h.Voter.Tally)
	}

	// A different matchup gets a fresh voter.
	other := schedule.Matchup{Home: "Cowboys", Away: "Giants"}
	h.Select(other)
	if h.Voter.Matchup != other {
		t.Errorf("voter matchup = %v, want %v", h.Voter.Matchup, other)
	}
	if h.Voter.Tally.Total() != 0 {
		t.Errorf("new selection should zero the tally, got %+v", h.Voter.Tally)
	}
}

func TestHomeView_WeekKeysEmitSetWeek(t *testing.T) {
	h := NewHomeView(testStore(t))

	_, cmd := h.Update(keyMsg("right"))
	if cmd == nil {
		t.Fatal("right on week panel should emit a command")
	}
	msg, ok := cmd().(SetWeekMsg)
	if !ok || msg.Week != 2 {
		t.Errorf("msg = %#v, want SetWeekMsg{2}", msg)
	}

	// Stepping past the lower bound still emits; the clamp is in SetWeek.
	_, cmd = h.Update(keyMsg("left"))
	if m, ok := cmd().(SetWeekMsg); !ok || m.Week != 0 {
		t.Errorf("msg = %#v, want SetWeekMsg{0}", m)
	}
}

func TestHomeView_EnterEmitsSelection(t *testing.T) {
	h := NewHomeView(testStore(t))
	h.Focus.SetFocus(PanelMatchups)

	h.Update(keyMsg("down"))
	_, cmd := h.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on matchup list should emit a command")
	}
	msg, ok := cmd().(SelectMatchupMsg)
	if !ok {
		t.Fatalf("msg = %T, want SelectMatchupMsg", msg)
	}
	want := schedule.Matchup{Home: "Cowboys", Away: "Giants"}
	if msg.Matchup != want {
		t.Errorf("selected = %v, want %v", msg.Matchup, want)
	}
}

func TestHomeView_VoterKeysEmitVotes(t *testing.T) {
	h := NewHomeView(testStore(t))
	h.Focus.SetFocus(PanelVoter)

	_, cmd := h.Update(keyMsg("left"))
	if m, ok := cmd().(CastVoteMsg); !ok || m.Side != vote.Home {
		t.Errorf("left = %#v, want CastVoteMsg{Home}", m)
	}
	_, cmd = h.Update(keyMsg("right"))
	if m, ok := cmd().(CastVoteMsg); !ok || m.Side != vote.Away {
		t.Errorf("right = %#v, want CastVoteMsg{Away}", m)
	}
}

func TestHomeView_TabCyclesFocus(t *testing.T) {
	h := NewHomeView(testStore(t))

	h.Update(keyMsg("tab"))
	if h.Focus.Current != PanelMatchups {
		t.Errorf("focus = %q, want matchups", h.Focus.Current)
	}
	h.Update(keyMsg("tab"))
	if h.Focus.Current != PanelVoter {
		t.Errorf("focus = %q, want voter", h.Focus.Current)
	}
	h.Update(keyMsg("tab"))
	if h.Focus.Current != PanelWeek {
		t.Errorf("focus = %q, want week (wrapped)", h.Focus.Current)
	}
	h.Update(keyMsg("shift+tab"))
	if h.Focus.Current != PanelVoter {
		t.Errorf("focus = %q, want voter (reverse wrap)", h.Focus.Current)
	}
}

func TestHomeView_VoteScenario(t *testing.T) {
	// Start at week 1, default selection Chiefs/Lions. One vote for the
	// Lions side reads 0% / 100%; week 2 leaves everything in place.
	a := testApp(t)

	a.Home.Focus.SetFocus(PanelVoter)
	_, cmd := a.Update(keyMsg("right"))
	drain(a, cmd)

	if a.Home.Voter.Tally != (vote.Tally{Home: 0, Away: 1}) {
		t.Fatalf("tally = %+v, want {0 1}", a.Home.Voter.Tally)
	}
	split := a.Home.Voter.Tally.Split()
	if split.Home != 0 || split.Away != 100 {
		t.Errorf("split = %d/%d, want 0/100", split.Home, split.Away)
	}

	a.Update(SetWeekMsg{Week: 2})
	if a.Home.Selected != (schedule.Matchup{Home: "Chiefs", Away: "Lions"}) {
		t.Errorf("selection lost on week change: %v", a.Home.Selected)
	}
	if a.Home.Voter.Tally.Total() != 1 {
		t.Errorf("tally lost on week change: %+v", a.Home.Voter.Tally)
	}
}

func TestHomeView_EmptyWeekRenders(t *testing.T) {
	store, err := schedule.New(map[int][]schedule.Matchup{
		1: {{Home: "Chiefs", Away: "Lions"}},
		5: {{Home: "Bills", Away: "Jets"}},
	})
	if err != nil {
		t.Fatalf("schedule.New: %v", err)
	}
	h := NewHomeView(store)

	// Two weeks in the store, so the slider tops out at position 2,
	// which has no matchups.
	h.SetWeek(2)
	if got := len(h.list.Items()); got != 0 {
		t.Fatalf("items = %d, want 0", got)
	}
	if !strings.Contains(h.View(), "no games this week") {
		t.Error("empty week should render its empty state, not crash")
	}
}
