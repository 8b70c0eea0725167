package core

import (
	"fmt"
	"strings"
)

// Marks a MatchResult without a winner
const DrawMarker = "Draw"

type Outcome int

const (
	HomeWin Outcome = iota
	AwayWin
	Draw
)

// The result of one game. Results are immutable once created.
type MatchResult struct {
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Outcome   Outcome
}

func newMatchResult(home, away string, homeGoals, awayGoals int) *MatchResult {
	outcome := Draw
	switch {
	case homeGoals > awayGoals:
		outcome = HomeWin
	case awayGoals > homeGoals:
		outcome = AwayWin
	}

	return &MatchResult{
		Home:      home,
		Away:      away,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Outcome:   outcome,
	}
}

// Returns the name of the winning team or DrawMarker
func (r *MatchResult) Winner() string {
	switch r.Outcome {
	case HomeWin:
		return r.Home
	case AwayWin:
		return r.Away
	}
	return DrawMarker
}

// Returns the name of the losing team or DrawMarker
func (r *MatchResult) Loser() string {
	switch r.Outcome {
	case HomeWin:
		return r.Away
	case AwayWin:
		return r.Home
	}
	return DrawMarker
}

func (r *MatchResult) IsDraw() bool {
	return r.Outcome == Draw
}

func (r *MatchResult) Involves(name string) bool {
	return r.Home == name || r.Away == name
}

// Goals scored by the named team. Zero if the team did not play.
func (r *MatchResult) GoalsFor(name string) int {
	switch name {
	case r.Home:
		return r.HomeGoals
	case r.Away:
		return r.AwayGoals
	}
	return 0
}

// Goals conceded by the named team. Zero if the team did not play.
func (r *MatchResult) GoalsAgainst(name string) int {
	switch name {
	case r.Home:
		return r.AwayGoals
	case r.Away:
		return r.HomeGoals
	}
	return 0
}

// Returns the result as seen from the named team:
// its own name and goals first.
func (r *MatchResult) From(name string) (team string, goalsFor, goalsAgainst int, opponent string) {
	if name == r.Away {
		return r.Away, r.AwayGoals, r.HomeGoals, r.Home
	}
	return r.Home, r.HomeGoals, r.AwayGoals, r.Away
}

func (r *MatchResult) String() string {
	var sb strings.Builder
	sb.WriteString(r.Home)
	sb.WriteString(fmt.Sprintf(" %v - %v ", r.HomeGoals, r.AwayGoals))
	sb.WriteString(r.Away)
	return sb.String()
}

// A Fixture is one scheduled league game.
// Home is the team that owns the pairing.
type Fixture struct {
	Home *Team
	Away *Team
}

// A Tie is one knockout pairing of the bracket.
type Tie struct {
	// Upper slot of the pairing
	Home *Team
	// Lower slot of the pairing
	Away *Team

	// Nil until the tie is played
	Result *MatchResult
	Winner *Team
	Loser  *Team

	// Index of the round the tie belongs to
	Round int

	// Id for graph node hashing
	id int
}

func newTie(home, away *Team, round int) *Tie {
	return &Tie{Home: home, Away: away, Round: round, id: nextTieId()}
}

func (t *Tie) Id() int {
	return t.id
}

func (t *Tie) Played() bool {
	return t.Result != nil
}

func (t *Tie) Contains(team *Team) bool {
	return t.Home == team || t.Away == team
}

func (t *Tie) String() string {
	var sb strings.Builder
	writeTeam := func(team *Team) {
		if team == nil {
			sb.WriteString("[Empty]")
			return
		}
		sb.WriteString(fmt.Sprintf("%v: %v", team.PlayoffSeed, team.Name))
	}

	writeTeam(t.Home)
	sb.WriteString(" vs. ")
	writeTeam(t.Away)

	if t.Result != nil {
		sb.WriteRune('\t')
		sb.WriteString(fmt.Sprintf("%v - %v", t.Result.HomeGoals, t.Result.AwayGoals))
	}

	return sb.String()
}
