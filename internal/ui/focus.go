package ui

// Home view panel IDs, in tab order.
const (
	PanelWeek     = "week"
	PanelMatchups = "matchups"
	PanelVoter    = "voter"
)

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current string   // ID of the currently focused panel
	Order   []string // Tab order for focus rotation
}

// Next advances focus to the next panel in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	f.Current = f.Order[(idx+1)%len(f.Order)]
	return f.Current
}

// Prev advances focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	idx--
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.Current = f.Order[idx]
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
