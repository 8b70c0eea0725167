package core

import "iter"

// A Schedule holds the fixtures of one round robin.
//
// Every team owns the fixtures against all teams after it in the
// roster so every pair meets exactly once per round. Repeated rounds
// replay the same fixtures in the same order and with the same home
// team.
type Schedule struct {
	teams    []*Team
	fixtures []Fixture
}

// Creates the schedule and assigns every team the opponents it is
// responsible for facing.
func NewSchedule(teams []*Team) *Schedule {
	numFixtures := len(teams) * (len(teams) - 1) / 2
	fixtures := make([]Fixture, 0, numFixtures)

	remaining := teams
	for len(remaining) > 0 {
		owner := remaining[0]
		remaining = remaining[1:]

		owner.opponents = append([]*Team(nil), remaining...)
		for _, opponent := range owner.opponents {
			fixtures = append(fixtures, Fixture{Home: owner, Away: opponent})
		}
	}

	return &Schedule{teams: teams, fixtures: fixtures}
}

// The fixtures of one round in play order
func (s *Schedule) Fixtures() []Fixture {
	return s.fixtures
}

// Number of fixtures per round
func (s *Schedule) Len() int {
	return len(s.fixtures)
}

// Iterates the fixtures of numRounds rounds together with the
// index of the round they belong to
func (s *Schedule) Rounds(numRounds int) iter.Seq2[int, Fixture] {
	return func(yield func(round int, f Fixture) bool) {
		for round := range numRounds {
			for _, f := range s.fixtures {
				if !yield(round, f) {
					return
				}
			}
		}
	}
}
