package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtbby/PickEm/internal/route"
)

// SearchField is the header's team search box. While focused it swallows
// all key input; Enter submits, Esc blurs. A whitespace-only submission is
// ignored and the typed content stays put; the field is cleared only after
// a successful navigation.
type SearchField struct {
	input textinput.Model
}

// NewSearchField creates a blurred search field.
func NewSearchField() *SearchField {
	ti := textinput.New()
	ti.Placeholder = "team name"
	ti.Prompt = "⌕ "
	ti.Width = 24
	return &SearchField{input: ti}
}

// Focused reports whether the field currently owns key input.
func (s *SearchField) Focused() bool {
	return s.input.Focused()
}

// Focus gives the field key input and returns the cursor blink command.
func (s *SearchField) Focus() tea.Cmd {
	s.input.Focus()
	return textinput.Blink
}

// Blur releases key input without touching the field's content.
func (s *SearchField) Blur() {
	s.input.Blur()
}

// Value returns the field's raw content.
func (s *SearchField) Value() string {
	return s.input.Value()
}

// Submit attempts a search navigation. The trimmed query becomes a team
// route; an empty trim is a no-op that keeps the content and the focus.
func (s *SearchField) Submit() (route.Route, bool) {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		return route.Route{}, false
	}
	s.input.SetValue("")
	s.input.Blur()
	return route.Team(query), true
}

// Update feeds a message to the underlying textinput.
func (s *SearchField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the field.
func (s *SearchField) View() string {
	return s.input.View()
}
