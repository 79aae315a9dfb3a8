package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/ui/textutil"
)

const (
	defaultTeamViewWidth  = 60
	defaultTeamViewHeight = 14
)

// TeamView lists every matchup a team plays in, week by week. The name
// comes from the route verbatim; matching against the schedule is
// case-insensitive inside the store lookup.
type TeamView struct {
	Name     string
	Matchups []schedule.TeamMatchup

	viewport viewport.Model
}

// Ensure TeamView implements View.
var _ View = (*TeamView)(nil)

// NewTeamView creates a lookup view for the given team name.
func NewTeamView(name string, store *schedule.Store) *TeamView {
	vp := viewport.New(defaultTeamViewWidth, defaultTeamViewHeight)
	v := &TeamView{
		Name:     name,
		Matchups: store.TeamMatchups(name),
		viewport: vp,
	}
	v.viewport.SetContent(v.content())
	return v
}

// Init implements View.
func (v *TeamView) Init() tea.Cmd {
	return nil
}

// Update implements View. The viewport handles j/k/pgup/pgdn scrolling.
func (v *TeamView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w < 40 {
			w = 40
		}
		h := msg.Height - 6
		if h < 8 {
			h = 8
		}
		v.viewport.Width = w
		v.viewport.Height = h
		v.viewport.SetContent(v.content())
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *TeamView) View() string {
	header := "← " + Styles.Title.Render("Matchups: "+v.Name)
	hint := Styles.Hint.Render("esc: back  g: home  /: search")
	return header + "\n\n" + v.viewport.View() + "\n" + hint
}

// content renders the matchup rows, or the empty state for unknown teams.
func (v *TeamView) content() string {
	if len(v.Matchups) == 0 {
		return Styles.Empty.Render("No matchups found")
	}
	var b strings.Builder
	for i, m := range v.Matchups {
		week := Styles.Muted.Render(fmt.Sprintf("Week %2d", m.Week))
		game := Styles.Normal.Render(textutil.PadRightVisual(m.Home, 14) + " @ " + m.Away)
		b.WriteString(week + "  " + game)
		if i < len(v.Matchups)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
