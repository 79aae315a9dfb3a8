// Package schedule holds the fixed week-by-week slate the app browses.
// A Store is built once at startup and is read-only afterwards.
package schedule

import (
	"fmt"
	"os"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Matchup pairs the two opposing team names for one scheduled game.
type Matchup struct {
	Home string `yaml:"home"`
	Away string `yaml:"away"`
}

// TeamMatchup is a Matchup annotated with the week it is played in.
// Produced by team lookups, which cross week boundaries.
type TeamMatchup struct {
	Week int
	Home string
	Away string
}

// Store maps week numbers to their ordered matchups. Weeks are positive,
// held in ascending order, and need not be contiguous. Slices returned by
// accessors share the Store's backing arrays and must not be mutated.
type Store struct {
	weeks  []int
	byWeek map[int][]Matchup
}

// New validates and copies the given mapping into a Store.
// Week numbers must be >= 1, every listed week must have at least one
// matchup with non-empty team names, and week 1 must be present: the app
// seeds its initial selection from week 1's first matchup.
func New(byWeek map[int][]Matchup) (*Store, error) {
	if len(byWeek) == 0 {
		return nil, fmt.Errorf("schedule: no weeks")
	}
	weeks := make([]int, 0, len(byWeek))
	copied := make(map[int][]Matchup, len(byWeek))
	for week, matchups := range byWeek {
		if week < 1 {
			return nil, fmt.Errorf("schedule: week %d: week numbers start at 1", week)
		}
		if len(matchups) == 0 {
			return nil, fmt.Errorf("schedule: week %d has no matchups", week)
		}
		for i, m := range matchups {
			if strings.TrimSpace(m.Home) == "" || strings.TrimSpace(m.Away) == "" {
				return nil, fmt.Errorf("schedule: week %d matchup %d: empty team name", week, i)
			}
		}
		weeks = append(weeks, week)
		copied[week] = append([]Matchup(nil), matchups...)
	}
	sort.Ints(weeks)
	if weeks[0] != 1 {
		return nil, fmt.Errorf("schedule: week 1 missing (first week is %d)", weeks[0])
	}
	return &Store{weeks: weeks, byWeek: copied}, nil
}

// Load reads a YAML schedule file: a mapping from week number to a list of
// {home, away} entries.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %s: %w", path, err)
	}
	return s, nil
}

func parse(data []byte) (*Store, error) {
	var raw map[int][]Matchup
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return New(raw)
}

// Weeks returns the week numbers in ascending order.
func (s *Store) Weeks() []int {
	return s.weeks
}

// NumWeeks returns how many weeks the store holds. This is the upper bound
// of the week selector, so with a non-contiguous schedule some selector
// positions resolve to empty weeks.
func (s *Store) NumWeeks() int {
	return len(s.weeks)
}

// Matchups returns the ordered matchups for a week, or an empty slice when
// the week is absent. Absent weeks are a rendering condition, not an error.
func (s *Store) Matchups(week int) []Matchup {
	return s.byWeek[week]
}

// First returns the first matchup of week 1, the app's initial selection.
func (s *Store) First() Matchup {
	return s.byWeek[1][0]
}

// TeamMatchups returns every matchup in which the named team plays home or
// away, in schedule order: weeks ascending, in-week order preserved. Name
// matching is case-insensitive. An unknown team yields an empty result.
func (s *Store) TeamMatchups(name string) []TeamMatchup {
	var out []TeamMatchup
	for _, week := range s.weeks {
		for _, m := range s.byWeek[week] {
			if strings.EqualFold(m.Home, name) || strings.EqualFold(m.Away, name) {
				out = append(out, TeamMatchup{Week: week, Home: m.Home, Away: m.Away})
			}
		}
	}
	return out
}

// Teams returns every distinct team name in the store, sorted.
func (s *Store) Teams() []string {
	seen := make(map[string]bool)
	for _, matchups := range s.byWeek {
		for _, m := range matchups {
			seen[m.Home] = true
			seen[m.Away] = true
		}
	}
	teams := make([]string, 0, len(seen))
	for t := range seen {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}
