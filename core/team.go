package core

import (
	"slices"
	"strings"
)

// An Entry is one line of a validated seed list.
type Entry struct {
	Name string
	Seed int
}

// A Roster is the ordered list of entries a season is created from.
type Roster []Entry

// Checks that the roster has at least two entries, unique non-empty
// names and that the seeds are a permutation of 1..N.
func ValidateRoster(roster Roster) error {
	if len(roster) < 2 {
		return &ValidationError{Err: ErrTooFewTeams}
	}

	names := make(map[string]struct{}, len(roster))
	seeds := make(map[int]struct{}, len(roster))
	for _, e := range roster {
		switch {
		case strings.TrimSpace(e.Name) == "":
			return &ValidationError{Team: e.Name, Seed: e.Seed, Err: ErrEmptyName}
		case e.Seed < 1 || e.Seed > len(roster):
			return &ValidationError{Team: e.Name, Seed: e.Seed, Err: ErrSeedRange}
		}
		if _, ok := names[e.Name]; ok {
			return &ValidationError{Team: e.Name, Seed: e.Seed, Err: ErrDuplicateName}
		}
		if _, ok := seeds[e.Seed]; ok {
			return &ValidationError{Team: e.Name, Seed: e.Seed, Err: ErrDuplicateSeed}
		}
		names[e.Name] = struct{}{}
		seeds[e.Seed] = struct{}{}
	}

	return nil
}

// Aggregates of a team's regular season games
type LeagueRecord struct {
	Wins, Draws, Losses    int
	GoalsFor, GoalsAgainst int
}

// Aggregates of a team's knockout games
type PlayoffRecord struct {
	Wins, Losses           int
	GoalsFor, GoalsAgainst int
}

// A Team takes part in the league and possibly the tournament
// after it.
//
// The team owns its two result lists. Results are only ever
// appended by the match engines.
type Team struct {
	Name string
	Seed int

	League LeagueRecord

	// Seed in the elimination bracket. Zero when the
	// team did not qualify.
	PlayoffSeed int
	Playoffs    PlayoffRecord

	// The teams that this team hosts in every round of
	// the round robin
	opponents []*Team

	results        []*MatchResult
	playoffResults []*MatchResult
}

func NewTeam(name string, seed int) *Team {
	return &Team{Name: name, Seed: seed}
}

// Returns 3 points per win and 1 per draw
func (t *Team) Points() int {
	return 3*t.League.Wins + t.League.Draws
}

func (t *Team) GoalDifference() int {
	return t.League.GoalsFor - t.League.GoalsAgainst
}

func (t *Team) Played() int {
	return len(t.results)
}

func (t *Team) PlayoffGoalDifference() int {
	return t.Playoffs.GoalsFor - t.Playoffs.GoalsAgainst
}

// Returns true when the team played at least one knockout game
func (t *Team) MadePlayoffs() bool {
	return len(t.playoffResults) > 0
}

// Returns a copy of the regular season results in the order
// they were played
func (t *Team) Results() []*MatchResult {
	return slices.Clone(t.results)
}

// Returns a copy of the knockout results in the order they
// were played
func (t *Team) PlayoffResults() []*MatchResult {
	return slices.Clone(t.playoffResults)
}

// The teams this team is responsible for facing in each round
func (t *Team) Opponents() []*Team {
	return t.opponents
}

// Returns the regular season results of games against the named team
func (t *Team) ResultsAgainst(name string) []*MatchResult {
	return resultsAgainst(t.results, name)
}

// Returns the knockout results of games against the named team
func (t *Team) PlayoffResultsAgainst(name string) []*MatchResult {
	return resultsAgainst(t.playoffResults, name)
}

func resultsAgainst(results []*MatchResult, name string) []*MatchResult {
	against := make([]*MatchResult, 0, 5)
	for _, r := range results {
		if r.Involves(name) {
			against = append(against, r)
		}
	}
	return slices.Clip(against)
}

func (t *Team) recordLeagueResult(result *MatchResult) {
	t.results = append(t.results, result)

	t.League.GoalsFor += result.GoalsFor(t.Name)
	t.League.GoalsAgainst += result.GoalsAgainst(t.Name)

	switch result.Winner() {
	case DrawMarker:
		t.League.Draws += 1
	case t.Name:
		t.League.Wins += 1
	default:
		t.League.Losses += 1
	}
}

func (t *Team) recordPlayoffResult(result *MatchResult) {
	t.playoffResults = append(t.playoffResults, result)

	t.Playoffs.GoalsFor += result.GoalsFor(t.Name)
	t.Playoffs.GoalsAgainst += result.GoalsAgainst(t.Name)

	if result.Winner() == t.Name {
		t.Playoffs.Wins += 1
	} else {
		t.Playoffs.Losses += 1
	}
}

// Creates the teams of a validated roster in roster order
func createTeams(roster Roster) []*Team {
	teams := make([]*Team, 0, len(roster))
	for _, e := range roster {
		teams = append(teams, NewTeam(e.Name, e.Seed))
	}
	return teams
}
