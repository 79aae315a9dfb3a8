package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/ui/textutil"
	"github.com/jtbby/PickEm/internal/vote"
)

const voterBarWidth = 24

// Voter is the head-to-head voting widget for one matchup. Its tally lives
// exactly as long as the widget: the home view builds a fresh Voter whenever
// the selected matchup changes, which is what resets the counters.
type Voter struct {
	Matchup schedule.Matchup
	Tally   vote.Tally

	homeBar progress.Model
	awayBar progress.Model
}

// NewVoter creates a voter for the given matchup with zeroed counters.
func NewVoter(m schedule.Matchup) *Voter {
	newBar := func() progress.Model {
		b := progress.New(
			progress.WithSolidFill(ColorAccent),
			progress.WithoutPercentage(),
		)
		b.Width = voterBarWidth
		return b
	}
	return &Voter{
		Matchup: m,
		homeBar: newBar(),
		awayBar: newBar(),
	}
}

// Cast records one vote for the given side.
func (v *Voter) Cast(side vote.Side) {
	v.Tally.Cast(side)
}

// View renders the matchup header, one row per side, and the running split.
func (v *Voter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Who wins?") + "\n")
	b.WriteString(Styles.Normal.Render(v.Matchup.Home+" vs "+v.Matchup.Away) + "\n\n")

	split := v.Tally.Split()
	b.WriteString(v.sideRow(v.Matchup.Home, v.Tally.Home, split.Home, split.HasVotes, v.homeBar) + "\n")
	b.WriteString(v.sideRow(v.Matchup.Away, v.Tally.Away, split.Away, split.HasVotes, v.awayBar) + "\n")

	if !split.HasVotes {
		b.WriteString("\n" + Styles.Empty.Render("No votes yet — ← votes "+v.Matchup.Home+", → votes "+v.Matchup.Away))
	} else {
		total := v.Tally.Total()
		label := "votes"
		if total == 1 {
			label = "vote"
		}
		b.WriteString("\n" + Styles.Hint.Render(fmt.Sprintf("%d %s cast", total, label)))
	}
	return b.String()
}

// sideRow renders one team's name, percentage, and bar in fixed columns.
func (v *Voter) sideRow(name string, count, pct int, hasVotes bool, bar progress.Model) string {
	col := textutil.PadRightVisual(name, 12)
	if !hasVotes {
		return Styles.Normal.Render(col) + "  " + Styles.Muted.Render("--") + "   " + bar.ViewAs(0)
	}
	pctCol := fmt.Sprintf("%3d%%", pct)
	return Styles.Normal.Render(col) + " " + Styles.Status.Render(pctCol) + "  " +
		bar.ViewAs(float64(pct)/100) + "  " + Styles.Muted.Render(fmt.Sprintf("(%d)", count))
}
