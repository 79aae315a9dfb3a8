package ui

import (
	"github.com/jtbby/PickEm/internal/route"
	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/vote"
)

// NavigateMsg is sent when any widget requests navigation to a route
// (search submit, team picker, deep links).
type NavigateMsg struct {
	To route.Route
}

// GoHomeMsg is sent when user navigates home (g, SPC g).
type GoHomeMsg struct{}

// SetWeekMsg is sent when user steps the week selector. Week carries the
// requested week position; the home view clamps it to the slider bounds.
type SetWeekMsg struct {
	Week int
}

// SelectMatchupMsg is sent when user picks a matchup from the home list (Enter).
type SelectMatchupMsg struct {
	Matchup schedule.Matchup
}

// CastVoteMsg is sent when user votes for one side of the selected matchup.
type CastVoteMsg struct {
	Side vote.Side
}

// FocusSearchMsg focuses the header search field (/, SPC /).
type FocusSearchMsg struct{}

// ShowTeamPickerMsg opens the team picker modal (t, SPC t).
type ShowTeamPickerMsg struct{}

// PickTeamMsg is sent when user selects a team in the picker.
type PickTeamMsg struct {
	Name string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
