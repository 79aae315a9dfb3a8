package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtbby/PickEm/internal/route"
	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/telemetry"
)

// AppModel is the root model. It owns the current route, the navigation
// history, the header search field, and the two views; children communicate
// upward only through messages.
type AppModel struct {
	Store      *schedule.Store
	Mode       AppMode
	Current    route.Route
	History    History
	Home       *HomeView
	Team       *TeamView
	Search     *SearchField
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Recorder   *telemetry.Recorder

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model opened at the given route.
// A team deep link gets the home route seeded beneath it so Esc still walks
// home.
func NewAppModel(store *schedule.Store, rec *telemetry.Recorder, start route.Route) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("g", func() tea.Msg { return GoHomeMsg{} }, "Home")
	reg.BindWithDesc("SPC g", func() tea.Msg { return GoHomeMsg{} }, "Home")
	reg.BindWithDesc("t", func() tea.Msg { return ShowTeamPickerMsg{} }, "Teams")
	reg.BindWithDesc("SPC t", func() tea.Msg { return ShowTeamPickerMsg{} }, "Teams")
	reg.BindWithDesc("/", func() tea.Msg { return FocusSearchMsg{} }, "Search")
	reg.BindWithDesc("SPC /", func() tea.Msg { return FocusSearchMsg{} }, "Search")

	a := &AppModel{
		Store:      store,
		Mode:       ModeHome,
		Current:    route.Home(),
		Home:       NewHomeView(store),
		Search:     NewSearchField(),
		KeyHandler: NewKeyHandler(reg),
		Recorder:   rec,
	}
	if start.Kind() == route.KindTeam {
		a.History.Push(a.Current)
		a.setRoute(start)
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The home view is retained, so it always tracks the size; a team
		// view is rebuilt per navigation and re-sized in setRoute.
		v, _ := a.Home.Update(msg)
		a.Home = v.(*HomeView)
		if a.Team != nil {
			v, _ := a.Team.Update(msg)
			a.Team = v.(*TeamView)
		}
		return a, nil

	case NavigateMsg:
		return a.navigate(msg.To)
	case GoHomeMsg:
		return a.navigate(route.Home())

	case SetWeekMsg:
		a.Recorder.Action("week.set", telemetry.Int("week", msg.Week))
		a.Home.SetWeek(msg.Week)
		return a, nil
	case SelectMatchupMsg:
		a.Recorder.Action("matchup.select",
			telemetry.Str("home", msg.Matchup.Home),
			telemetry.Str("away", msg.Matchup.Away))
		a.Home.Select(msg.Matchup)
		return a, nil
	case CastVoteMsg:
		a.Recorder.Action("vote.cast", telemetry.Str("side", msg.Side.String()))
		a.Home.CastVote(msg.Side)
		return a, nil

	case FocusSearchMsg:
		return a, a.Search.Focus()
	case ShowTeamPickerMsg:
		a.Overlays.Push(Overlay{View: NewTeamPickerModal(a.Store.Teams()), Dismiss: "esc"})
		return a, nil
	case PickTeamMsg:
		a.Overlays.Pop()
		return a.navigate(route.Team(msg.Name))
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.KeyMsg:
		// The focused search field swallows everything except its own
		// submit and blur keys.
		if a.Search.Focused() {
			switch msg.String() {
			case "esc":
				a.Search.Blur()
				return a, nil
			case "enter":
				if r, ok := a.Search.Submit(); ok {
					a.Recorder.Action("search", telemetry.Str("team", r.TeamName()))
					return a.navigate(r)
				}
				return a, nil
			}
			return a, a.Search.Update(msg)
		}
		// Topmost overlay receives input next; it dismisses itself via
		// DismissModalMsg.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if msg.String() == "esc" {
			return a.goBack()
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	header := Styles.Title.Render("PickEm") + "  " + a.Search.View()

	content := a.currentView().View()
	if top, ok := a.Overlays.Peek(); ok {
		content = top.View.View()
	}

	out := header + "\n\n" + content
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		out += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return out
}

// navigate pushes the current route onto the history and switches to the
// target. Navigating to the route already shown is a no-op.
func (a *appModelAdapter) navigate(to route.Route) (tea.Model, tea.Cmd) {
	if to == a.Current {
		return a, nil
	}
	a.Recorder.Action("navigate", telemetry.Str("path", to.Path()))
	a.History.Push(a.Current)
	a.setRoute(to)
	return a, a.currentView().Init()
}

// goBack pops the history. Esc with an empty history on a non-home view
// still lands home; Esc on home does nothing.
func (a *appModelAdapter) goBack() (tea.Model, tea.Cmd) {
	back, ok := a.History.Pop()
	if !ok {
		if a.Mode == ModeHome {
			return a, nil
		}
		back = route.Home()
	}
	a.Recorder.Action("navigate.back", telemetry.Str("path", back.Path()))
	a.setRoute(back)
	return a, a.currentView().Init()
}

// setRoute points the model at a route without touching the history.
// The home view is retained across navigations; a team view is built fresh
// for each visit.
func (a *AppModel) setRoute(to route.Route) {
	a.Current = to
	switch to.Kind() {
	case route.KindTeam:
		a.Mode = ModeTeam
		a.Team = NewTeamView(to.TeamName(), a.Store)
		if a.width > 0 {
			v, _ := a.Team.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			a.Team = v.(*TeamView)
		}
	default:
		a.Mode = ModeHome
		a.Team = nil
	}
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeTeam && a.Team != nil {
		return a.Team
	}
	return a.Home
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeHome:
		if h, ok := v.(*HomeView); ok {
			a.Home = h
		}
	case ModeTeam:
		if t, ok := v.(*TeamView); ok {
			a.Team = t
		}
	}
}
