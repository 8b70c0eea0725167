package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/ezBadminton/goleague/core"
	"github.com/ezBadminton/goleague/internal/projection"
	"github.com/ezBadminton/goleague/internal/roster"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedSeason(t *testing.T, playoffSize int) *core.Season {
	t.Helper()

	names := []string{"Lions", "Tigers", "Bears", "Wolves", "Hawks", "Sharks"}
	settings := core.SeasonSettings{Rounds: 2, Randomness: core.ModerateFavorites}
	season, err := core.NewSeason(roster.FromNames(names), settings)
	require.NoError(t, err)

	rng := core.NewRand(21)
	season.PlayRegularSeason(rng)
	if playoffSize > 0 {
		_, err := season.PlayOffs(playoffSize, core.ModerateFavorites, rng)
		require.NoError(t, err)
	}
	return season
}

func TestLeagueTable(t *testing.T) {
	season := playedSeason(t, 0)

	var buf bytes.Buffer
	require.NoError(t, LeagueTable(&buf, season))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"#", "TEAM", "GP", "W", "D", "L", "GF", "GA", "GD", "PTS"}, strings.Fields(lines[0]))

	for i, team := range season.Standings.Ranks {
		fields := strings.Fields(lines[i+1])
		assert.Equal(t, team.Name, fields[1])
		assert.Equal(t, "10", fields[2])
		assert.Equal(t, strconv.Itoa(team.Points()), fields[9])
	}
}

func TestLeagueTableNotPlayed(t *testing.T) {
	season, err := core.NewSeason(roster.FromNames([]string{"A", "B"}), core.SeasonSettings{Rounds: 1, Randomness: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, LeagueTable(&bytes.Buffer{}, season), ErrNotPlayed)
}

func TestTeamResults(t *testing.T) {
	season := playedSeason(t, 4)
	champion := season.Bracket.Champion()

	var buf bytes.Buffer
	require.NoError(t, TeamResults(&buf, season, champion.Name))

	out := buf.String()
	assert.Contains(t, out, "REGULAR SEASON:")
	assert.Contains(t, out, "PLAYOFFS:")

	lines := strings.Split(out, "\n")
	games := 0
	for _, line := range lines {
		if strings.Contains(line, " - ") {
			assert.True(t, strings.HasPrefix(line, champion.Name+" "), "%q is not from the team's perspective", line)
			games += 1
		}
	}
	assert.Equal(t, 10+2, games)

	assert.ErrorIs(t, TeamResults(&buf, season, "Nobody"), ErrUnknownTeam)
}

func TestTeamResultsWithoutPlayoffs(t *testing.T) {
	season := playedSeason(t, 2)
	last := season.Standings.At(5)

	var buf bytes.Buffer
	require.NoError(t, TeamResults(&buf, season, last.Name))
	assert.NotContains(t, buf.String(), "PLAYOFFS:")
}

func TestHeadToHead(t *testing.T) {
	season := playedSeason(t, 2)
	first := season.Standings.At(0).Name
	second := season.Standings.At(1).Name
	third := season.Standings.At(2).Name

	var buf bytes.Buffer
	require.NoError(t, HeadToHead(&buf, season, first, second))
	assert.Contains(t, buf.String(), "PLAYOFFS:")
	assert.Equal(t, 3, strings.Count(buf.String(), " - "))

	buf.Reset()
	require.NoError(t, HeadToHead(&buf, season, third, first))
	assert.NotContains(t, buf.String(), "PLAYOFFS:")
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, " - ") {
			assert.True(t, strings.HasPrefix(line, third+" "))
		}
	}

	assert.ErrorIs(t, HeadToHead(&buf, season, first, "Nobody"), ErrUnknownTeam)
}

func TestTeamStats(t *testing.T) {
	season := playedSeason(t, 4)
	leader := season.Standings.At(0)
	last := season.Standings.At(5)

	var buf bytes.Buffer
	require.NoError(t, TeamStats(&buf, season, leader.Name))
	out := buf.String()
	assert.Contains(t, out, "Regular Season Finish: 1\n")
	assert.Contains(t, out, "(10 games)")
	assert.Contains(t, out, "Playoff Record (W-L): ")
	assert.Contains(t, out, "Playoff Path:\n  SEMIFINALS: ")

	buf.Reset()
	require.NoError(t, TeamStats(&buf, season, last.Name))
	assert.Contains(t, buf.String(), last.Name+" did not make the playoffs.")

	season = playedSeason(t, 0)
	buf.Reset()
	require.NoError(t, TeamStats(&buf, season, leader.Name))
	assert.NotContains(t, buf.String(), "playoffs")
	assert.NotContains(t, buf.String(), "Playoff")
}

func TestTeamStatsPlayoffPath(t *testing.T) {
	season := playedSeason(t, 4)
	champion := season.Bracket.Champion()
	runnerUp := season.Bracket.RunnerUp()

	var buf bytes.Buffer
	require.NoError(t, TeamStats(&buf, season, champion.Name))
	out := buf.String()

	semi := season.Bracket.Path(champion)[0]
	final := season.Bracket.Final()
	assert.Contains(t, out, "  SEMIFINALS: W "+semi.Result.String()+"\n")
	assert.Contains(t, out, "  CHAMPIONSHIP: W "+final.Result.String()+"\n")
	assert.Less(t, strings.Index(out, "SEMIFINALS: "), strings.Index(out, "CHAMPIONSHIP: "))

	buf.Reset()
	require.NoError(t, TeamStats(&buf, season, runnerUp.Name))
	assert.Contains(t, buf.String(), "  CHAMPIONSHIP: L "+final.Result.String()+"\n")
}

func TestBracket(t *testing.T) {
	season := playedSeason(t, 4)

	var buf bytes.Buffer
	require.NoError(t, Bracket(&buf, season.Bracket))
	out := buf.String()

	assert.Contains(t, out, "SEMIFINALS:")
	assert.Contains(t, out, "CHAMPIONSHIP:")
	assert.Less(t, strings.Index(out, "SEMIFINALS:"), strings.Index(out, "CHAMPIONSHIP:"))
	assert.Contains(t, out, "\n1: "+season.Standings.At(0).Name+"\n")
	assert.Contains(t, out, "CHAMPION: "+seeded(season.Bracket.Champion()))
	assert.Contains(t, out, "RUNNER-UP: "+seeded(season.Bracket.RunnerUp()))
}

func TestUnplayedBracket(t *testing.T) {
	bracket, err := core.NewBracket(playedSeason(t, 0).Standings.Ranks, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Bracket(&buf, bracket))
	assert.Contains(t, buf.String(), "[Empty]")
	assert.Contains(t, buf.String(), "TBD")
	assert.NotContains(t, buf.String(), "CHAMPION:")
}

func TestProjection(t *testing.T) {
	report := &projection.Report{
		ID:   uuid.New(),
		Runs: 100,
		Seed: 5,
		Teams: []projection.TeamProjection{
			{Name: "Lions", Seed: 1, MeanPoints: 20.26, StdDevPoints: 3.5, MeanPosition: 1.4, LeagueTitles: 0.7, Playoffs: 1, Championships: 0.55},
			{Name: "Tigers", Seed: 2, MeanPoints: 12, StdDevPoints: 4, MeanPosition: 1.6, LeagueTitles: 0.3, Playoffs: 1, Championships: 0.45},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Projection(&buf, report))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "PROJECTION OF 100 SEASONS (seed 5)"))
	assert.Contains(t, out, "70.0%")
	assert.Contains(t, out, "55.0%")
	assert.Contains(t, out, "20.3")
}
