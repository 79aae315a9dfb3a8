package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// TeamPickerModal is a modal for jumping to a team's lookup view.
type TeamPickerModal struct {
	list list.Model
}

type teamItem string

func (t teamItem) FilterValue() string { return string(t) }
func (t teamItem) Title() string       { return string(t) }
func (t teamItem) Description() string { return "" }

// Ensure TeamPickerModal implements View.
var _ View = (*TeamPickerModal)(nil)

// NewTeamPickerModal creates a picker over the given team names (already
// sorted by the schedule store).
func NewTeamPickerModal(names []string) *TeamPickerModal {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = teamItem(n)
	}
	l := list.New(items, NewCompactListDelegate(), 40, 12)
	l.Title = "Teams"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &TeamPickerModal{list: l}
}

// Init implements View.
func (m *TeamPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *TeamPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				name := string(sel.(teamItem))
				return m, func() tea.Msg { return PickTeamMsg{Name: name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *TeamPickerModal) View() string {
	help := "Enter: open  Esc: cancel"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
