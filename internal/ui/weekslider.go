package ui

import (
	"fmt"
	"strings"
)

// WeekSlider is the range control over the schedule's weeks. Week stays
// within [1, Max] no matter what callers pass in; the keys make out-of-range
// input impossible, the clamp keeps it impossible.
type WeekSlider struct {
	Week int
	Max  int
}

// NewWeekSlider creates a slider positioned at week 1.
func NewWeekSlider(max int) WeekSlider {
	return WeekSlider{Week: 1, Max: max}
}

// Set moves the slider to week n, clamped to [1, Max].
func (w *WeekSlider) Set(n int) {
	if n < 1 {
		n = 1
	}
	if n > w.Max {
		n = w.Max
	}
	w.Week = n
}

// Step moves the slider by delta weeks, clamped to [1, Max].
func (w *WeekSlider) Step(delta int) {
	w.Set(w.Week + delta)
}

// View renders the track with a knob at the current week.
func (w WeekSlider) View() string {
	var track strings.Builder
	for i := 1; i <= w.Max; i++ {
		if i == w.Week {
			track.WriteString(Styles.Selected.Render("●"))
		} else {
			track.WriteString(Styles.Muted.Render("─"))
		}
		if i < w.Max {
			track.WriteString(Styles.Muted.Render("───"))
		}
	}
	label := fmt.Sprintf("Week %d of %d", w.Week, w.Max)
	return Styles.Section.Render(label) + "\n" + track.String()
}
