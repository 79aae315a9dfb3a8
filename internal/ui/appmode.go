package ui

// AppMode represents the top-level application mode, one per route kind.
type AppMode int

const (
	ModeHome AppMode = iota
	ModeTeam
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeTeam:
		return "Team"
	default:
		return "Unknown"
	}
}
