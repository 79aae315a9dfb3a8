package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally_ZeroValueHasNoVotes(t *testing.T) {
	var tally Tally
	split := tally.Split()
	assert.False(t, split.HasVotes)
	assert.Zero(t, tally.Total())
}

func TestTally_CastIncrementsExactlyOneSide(t *testing.T) {
	var tally Tally

	tally.Cast(Home)
	assert.Equal(t, Tally{Home: 1, Away: 0}, tally)

	tally.Cast(Away)
	assert.Equal(t, Tally{Home: 1, Away: 1}, tally)

	tally.Cast(Away)
	assert.Equal(t, Tally{Home: 1, Away: 2}, tally)
}

func TestTally_CastUnknownSideIsIgnored(t *testing.T) {
	var tally Tally
	tally.Cast(Side(42))
	assert.Zero(t, tally.Total())
}

func TestTally_SplitSingleVote(t *testing.T) {
	var tally Tally
	tally.Cast(Away)

	split := tally.Split()
	assert.True(t, split.HasVotes)
	assert.Equal(t, 0, split.Home)
	assert.Equal(t, 100, split.Away)
}

func TestTally_SplitRounding(t *testing.T) {
	tests := []struct {
		name string
		home int
		away int
		want Split
	}{
		{"even split", 1, 1, Split{Home: 50, Away: 50, HasVotes: true}},
		{"two thirds home", 2, 1, Split{Home: 67, Away: 33, HasVotes: true}},
		{"one third home", 1, 2, Split{Home: 33, Away: 67, HasVotes: true}},
		{"one sixth home", 1, 5, Split{Home: 17, Away: 83, HasVotes: true}},
		{"all home", 7, 0, Split{Home: 100, Away: 0, HasVotes: true}},
		{"rounds half up", 1, 7, Split{Home: 13, Away: 87, HasVotes: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := Tally{Home: tt.home, Away: tt.away}
			assert.Equal(t, tt.want, tally.Split())
		})
	}
}

func TestTally_SplitAlwaysSumsToHundred(t *testing.T) {
	var tally Tally
	votes := []Side{Home, Away, Away, Home, Home, Home, Away, Home, Home, Away, Away}
	for _, side := range votes {
		tally.Cast(side)
		split := tally.Split()
		assert.Equal(t, 100, split.Home+split.Away, "after %d votes", tally.Total())
	}
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "away", Away.String())
}
