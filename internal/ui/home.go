package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/vote"
)

// matchupItem implements list.Item for schedule.Matchup.
type matchupItem struct {
	schedule.Matchup
}

func (m matchupItem) FilterValue() string { return m.Home + " " + m.Away }
func (m matchupItem) Title() string       { return m.Home + " @ " + m.Away }
func (m matchupItem) Description() string { return "" }

// HomeView is the schedule browser: week slider, matchup list, and the
// voter for the currently selected matchup. It owns the selection state;
// changing week never changes the selection, only Enter on the list does.
type HomeView struct {
	store    *schedule.Store
	Slider   WeekSlider
	Selected schedule.Matchup
	Voter    *Voter
	Focus    FocusManager

	list   list.Model
	width  int
	height int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home view with week 1 shown and week 1's first
// matchup selected. The store must have passed schedule.New validation.
func NewHomeView(store *schedule.Store) *HomeView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	h := &HomeView{
		store:    store,
		Slider:   NewWeekSlider(store.NumWeeks()),
		Selected: store.First(),
		Focus: FocusManager{
			Current: PanelWeek,
			Order:   []string{PanelWeek, PanelMatchups, PanelVoter},
		},
		list: l,
	}
	h.Voter = NewVoter(h.Selected)
	h.reloadMatchups()
	return h
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View. Key handling is per focused panel; domain
// transitions are emitted as messages and applied by the root adapter.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		h.list.SetWidth(h.panelWidth())
		h.list.SetHeight(6)
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			h.Focus.Next()
			return h, nil
		case "shift+tab":
			h.Focus.Prev()
			return h, nil
		}

		switch h.Focus.Current {
		case PanelWeek:
			return h, h.handleWeekKey(msg.String())
		case PanelMatchups:
			switch msg.String() {
			case "left", "right":
				return h, h.handleWeekKey(msg.String())
			case "enter":
				if item, ok := h.list.SelectedItem().(matchupItem); ok {
					return h, func() tea.Msg {
						return SelectMatchupMsg{Matchup: item.Matchup}
					}
				}
				return h, nil
			}
		case PanelVoter:
			switch msg.String() {
			case "left", "h":
				return h, func() tea.Msg { return CastVoteMsg{Side: vote.Home} }
			case "right", "l":
				return h, func() tea.Msg { return CastVoteMsg{Side: vote.Away} }
			}
			return h, nil
		}
	}

	if h.Focus.Current == PanelMatchups {
		var cmd tea.Cmd
		h.list, cmd = h.list.Update(msg)
		return h, cmd
	}
	return h, nil
}

// handleWeekKey maps arrow/vi keys to a week step message.
func (h *HomeView) handleWeekKey(key string) tea.Cmd {
	var delta int
	switch key {
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	default:
		return nil
	}
	week := h.Slider.Week + delta
	return func() tea.Msg { return SetWeekMsg{Week: week} }
}

// SetWeek moves the slider (clamped) and reloads the matchup list.
// The selection and its voter are left alone until the user picks anew.
func (h *HomeView) SetWeek(n int) {
	h.Slider.Set(n)
	h.reloadMatchups()
}

// Select makes m the selected matchup. A fresh voter is constructed only
// when the identity changes; re-picking the same matchup keeps its tally.
func (h *HomeView) Select(m schedule.Matchup) {
	if m == h.Selected {
		return
	}
	h.Selected = m
	h.Voter = NewVoter(m)
}

// CastVote records a vote on the current voter.
func (h *HomeView) CastVote(side vote.Side) {
	h.Voter.Cast(side)
}

// Week returns the week the slider points at.
func (h *HomeView) Week() int {
	return h.Slider.Week
}

// reloadMatchups rebuilds the list items for the slider's week.
func (h *HomeView) reloadMatchups() {
	matchups := h.store.Matchups(h.Slider.Week)
	items := make([]list.Item, len(matchups))
	for i, m := range matchups {
		items[i] = matchupItem{Matchup: m}
	}
	h.list.SetItems(items)
	h.list.Select(0)
	h.list.Title = fmt.Sprintf("Week %d matchups", h.Slider.Week)
}

// View implements View.
func (h *HomeView) View() string {
	if h.list.Width() == 0 {
		h.list.SetWidth(h.panelWidth())
		h.list.SetHeight(6)
	}

	matchups := h.list.View()
	if len(h.list.Items()) == 0 {
		matchups = h.list.Title + "\n" + Styles.Empty.Render("(no games this week)")
	}

	panels := []string{
		h.panel(PanelWeek, h.Slider.View()),
		h.panel(PanelMatchups, matchups),
		h.panel(PanelVoter, h.Voter.View()),
	}
	hint := Styles.Hint.Render("tab: panels  enter: pick  ←/→: week / vote  /: search  t: teams  SPC: commands")
	return lipgloss.JoinVertical(lipgloss.Left, panels...) + "\n" + hint
}

// panel wraps content in a border reflecting focus.
func (h *HomeView) panel(id, content string) string {
	style := Styles.PanelBlurred
	if h.Focus.Current == id {
		style = Styles.PanelFocused
	}
	return style.Width(h.panelWidth()).Render(content)
}

func (h *HomeView) panelWidth() int {
	w := h.width - 4
	if w < 44 {
		w = 44
	}
	return w
}
