// Package render prints seasons, brackets and projections as
// plain text tables.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ezBadminton/goleague/core"
	"github.com/ezBadminton/goleague/internal/projection"
)

var (
	ErrUnknownTeam = errors.New("invalid team")
	ErrNotPlayed   = errors.New("the regular season has not been played")
)

const sectionRule = "-------------------"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Prints the standings of a played regular season
func LeagueTable(w io.Writer, season *core.Season) error {
	if season.Standings == nil {
		return ErrNotPlayed
	}

	gamesPlayed := (len(season.Teams) - 1) * season.Settings.Rounds

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tGP\tW\tD\tL\tGF\tGA\tGD\tPTS\t")
	for i, team := range season.Standings.Ranks {
		fmt.Fprintf(
			tw,
			"%d.\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			i+1,
			team.Name,
			gamesPlayed,
			team.League.Wins,
			team.League.Draws,
			team.League.Losses,
			team.League.GoalsFor,
			team.League.GoalsAgainst,
			team.GoalDifference(),
			team.Points(),
		)
	}
	return tw.Flush()
}

func writeSection(w io.Writer, title string, results []*core.MatchResult, perspective string) {
	fmt.Fprintf(w, "\n%s:\n%s\n", title, sectionRule)
	for _, r := range results {
		team, gf, ga, opponent := r.From(perspective)
		fmt.Fprintf(w, "%s %d - %d %s\n", team, gf, ga, opponent)
	}
}

// Prints every game of the named team from its perspective
func TeamResults(w io.Writer, season *core.Season, name string) error {
	team := season.Team(name)
	if team == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}

	writeSection(w, "REGULAR SEASON", team.Results(), team.Name)
	if team.MadePlayoffs() {
		writeSection(w, "PLAYOFFS", team.PlayoffResults(), team.Name)
	}
	return nil
}

// Prints the games between two teams from the perspective of a.
// Knockout games are only listed when both teams made the playoffs.
func HeadToHead(w io.Writer, season *core.Season, a, b string) error {
	league, playoffs, ok := season.HeadToHead(a, b)
	if !ok {
		return fmt.Errorf("%w: %q vs. %q", ErrUnknownTeam, a, b)
	}

	writeSection(w, "REGULAR SEASON", league, a)
	if season.Team(a).MadePlayoffs() && season.Team(b).MadePlayoffs() {
		writeSection(w, "PLAYOFFS", playoffs, a)
	}
	return nil
}

// Prints the season summary of the named team
func TeamStats(w io.Writer, season *core.Season, name string) error {
	team := season.Team(name)
	if team == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}
	if season.Standings == nil {
		return ErrNotPlayed
	}

	gamesPlayed := (len(season.Teams) - 1) * season.Settings.Rounds

	fmt.Fprintf(w, "\n%s:\n%s\n", team.Name, sectionRule)
	fmt.Fprintf(w, "Regular Season Finish: %d\n", season.Standings.Position(team.Name))
	fmt.Fprintf(
		w,
		"Regular Season Record (W-D-L): %d-%d-%d (%d games)\n",
		team.League.Wins, team.League.Draws, team.League.Losses, gamesPlayed,
	)
	fmt.Fprintf(
		w,
		"Regular Season Goals: GF: %d, GA: %d, GD: %d\n",
		team.League.GoalsFor, team.League.GoalsAgainst, team.GoalDifference(),
	)

	if season.Bracket == nil {
		return nil
	}
	if !team.MadePlayoffs() {
		fmt.Fprintf(w, "\n%s did not make the playoffs.\n", team.Name)
		return nil
	}

	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Playoff Record (W-L): %d-%d\n", team.Playoffs.Wins, team.Playoffs.Losses)
	fmt.Fprintf(
		w,
		"Playoff Goals: GF: %d, GA: %d, GD: %d\n",
		team.Playoffs.GoalsFor, team.Playoffs.GoalsAgainst, team.PlayoffGoalDifference(),
	)

	path := season.Bracket.Path(team)
	if len(path) == 0 || !path[0].Played() {
		return nil
	}
	fmt.Fprintln(w, "Playoff Path:")
	for _, tie := range path {
		outcome := "W"
		if tie.Loser == team {
			outcome = "L"
		}
		fmt.Fprintf(w, "  %s: %s %s\n", season.Bracket.RoundName(tie.Round), outcome, tie.Result)
	}
	return nil
}

func seeded(team *core.Team) string {
	if team == nil {
		return "[Empty]"
	}
	return fmt.Sprintf("%d: %s", team.PlayoffSeed, team.Name)
}

const shellWidth = 20

// Prints one tie as a bracket shell with the winner to the right
func writeShell(w io.Writer, tie *core.Tie) {
	line := strings.Repeat("-", shellWidth)
	pad := strings.Repeat(" ", shellWidth)

	winner := "TBD"
	if tie.Winner != nil {
		winner = seeded(tie.Winner)
		if tie.Result != nil {
			winner = fmt.Sprintf("%s (%d - %d)", winner, tie.Result.HomeGoals, tie.Result.AwayGoals)
		}
	}

	fmt.Fprintf(w, "\n%s\n", seeded(tie.Home))
	fmt.Fprintf(w, "%s|\n", line)
	fmt.Fprintf(w, "%s|\n", pad)
	fmt.Fprintf(w, "%s|  %s\n", pad, winner)
	fmt.Fprintf(w, "%s|%s\n", pad, line)
	fmt.Fprintf(w, "%s|\n", pad)
	fmt.Fprintf(w, "%s|\n", line)
	fmt.Fprintf(w, "%s\n", seeded(tie.Away))
}

// Prints every round of the bracket followed by the champion
// and the runner-up once the bracket is played
func Bracket(w io.Writer, bracket *core.Bracket) error {
	for i, round := range bracket.Rounds {
		fmt.Fprintf(w, "\n\n%s:\n", bracket.RoundName(i))
		for _, tie := range round.Ties {
			writeShell(w, tie)
		}
	}

	if champion := bracket.Champion(); champion != nil {
		fmt.Fprintf(w, "\n\nCHAMPION: %s\n", seeded(champion))
		fmt.Fprintf(w, "RUNNER-UP: %s\n", seeded(bracket.RunnerUp()))
	}
	return nil
}

// Prints the projected table of a projection report
func Projection(w io.Writer, report *projection.Report) error {
	fmt.Fprintf(w, "PROJECTION OF %d SEASONS (seed %d)\n\n", report.Runs, report.Seed)

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tSEED\tPTS\tSD\tPOS\tTITLE\tPLAYOFFS\tCHAMPION\t")
	for i, team := range report.Teams {
		fmt.Fprintf(
			tw,
			"%d.\t%s\t%d\t%.1f\t%.1f\t%.2f\t%.1f%%\t%.1f%%\t%.1f%%\t\n",
			i+1,
			team.Name,
			team.Seed,
			team.MeanPoints,
			team.StdDevPoints,
			team.MeanPosition,
			100*team.LeagueTitles,
			100*team.Playoffs,
			100*team.Championships,
		)
	}
	return tw.Flush()
}
