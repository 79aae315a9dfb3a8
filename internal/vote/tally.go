// Package vote implements the head-to-head vote tally: two counters and the
// percentage split derived from them. It has no state beyond the counters
// and no notion of what is being voted on.
package vote

import "math"

// Side identifies which half of a head-to-head matchup a vote lands on.
type Side int

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	switch s {
	case Home:
		return "home"
	case Away:
		return "away"
	default:
		return "unknown"
	}
}

// Tally counts votes for one matchup. The zero value is ready to use.
type Tally struct {
	Home int
	Away int
}

// Cast records one vote for the given side. Exactly one counter grows by
// exactly 1; an unrecognized side is ignored.
func (t *Tally) Cast(s Side) {
	switch s {
	case Home:
		t.Home++
	case Away:
		t.Away++
	}
}

// Total returns the number of votes cast so far.
func (t Tally) Total() int {
	return t.Home + t.Away
}

// Split is the percentage view of a Tally. When no votes have been cast,
// HasVotes is false and the percentages are meaningless; renderers show an
// explicit no-data state rather than zeros.
type Split struct {
	Home     int
	Away     int
	HasVotes bool
}

// Split derives the current percentages. The away share is computed as the
// complement of the rounded home share so the two always sum to exactly 100.
func (t Tally) Split() Split {
	total := t.Total()
	if total == 0 {
		return Split{}
	}
	home := int(math.Round(float64(t.Home) / float64(total) * 100))
	return Split{Home: home, Away: 100 - home, HasVotes: true}
}
