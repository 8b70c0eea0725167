package projection

import (
	"context"
	"fmt"
	"testing"

	"github.com/ezBadminton/goleague/core"
	"github.com/ezBadminton/goleague/internal/roster"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(n int) core.Roster {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Team %d", i+1)
	}
	return roster.FromNames(names)
}

func testOptions() Options {
	return Options{
		Settings:          core.SeasonSettings{Rounds: 2, Randomness: core.HeavyFavorites},
		PlayoffSize:       4,
		PlayoffRandomness: core.ModerateFavorites,
		Runs:              200,
		Seed:              99,
		Workers:           4,
	}
}

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()

	report, err := Run(context.Background(), testRoster(8), testOptions(), logger)
	require.NoError(t, err)

	assert.Equal(t, 200, report.Runs)
	assert.Equal(t, int64(99), report.Seed)
	require.Len(t, report.Teams, 8)

	var titles, playoffs, championships, positions float64
	for i, team := range report.Teams {
		titles += team.LeagueTitles
		playoffs += team.Playoffs
		championships += team.Championships
		positions += team.MeanPosition

		assert.GreaterOrEqual(t, team.MeanPoints, 0.0)
		assert.LessOrEqual(t, team.MeanPoints, 42.0)
		assert.GreaterOrEqual(t, team.StdDevPoints, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, team.MeanPosition, report.Teams[i-1].MeanPosition)
		}
	}

	assert.InDelta(t, 1.0, titles, 1e-9)
	assert.InDelta(t, 4.0, playoffs, 1e-9)
	assert.InDelta(t, 1.0, championships, 1e-9)
	assert.InDelta(t, 36.0, positions, 1e-9)

	// Heavily favored top seeds should finish ahead of the bottom seeds
	assert.Equal(t, "Team 1", report.Teams[0].Name)
	assert.Greater(t, report.Teams[0].MeanPoints, report.Teams[7].MeanPoints)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Projection completed", hook.LastEntry().Message)
	assert.Equal(t, report.ID, hook.LastEntry().Data["projection"])
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	logger, _ := test.NewNullLogger()
	opts := testOptions()

	opts.Workers = 1
	sequential, err := Run(context.Background(), testRoster(6), opts, logger)
	require.NoError(t, err)

	opts.Workers = 8
	parallel, err := Run(context.Background(), testRoster(6), opts, logger)
	require.NoError(t, err)

	assert.Equal(t, sequential.Teams, parallel.Teams)
	assert.NotEqual(t, sequential.ID, parallel.ID)
}

func TestRunWithoutPlayoffs(t *testing.T) {
	logger, _ := test.NewNullLogger()
	opts := testOptions()
	opts.PlayoffSize = 0
	opts.PlayoffRandomness = 0
	opts.Runs = 1

	report, err := Run(context.Background(), testRoster(4), opts, logger)
	require.NoError(t, err)

	for _, team := range report.Teams {
		assert.Zero(t, team.Playoffs)
		assert.Zero(t, team.Championships)
		assert.Zero(t, team.StdDevPoints)
	}
}

func TestRunErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	opts := testOptions()
	opts.Runs = 0
	_, err := Run(context.Background(), testRoster(8), opts, logger)
	assert.ErrorIs(t, err, ErrRunsRange)

	opts = testOptions()
	opts.PlayoffSize = 16
	_, err = Run(context.Background(), testRoster(8), opts, logger)
	assert.ErrorIs(t, err, core.ErrBracketTooLarge)

	opts = testOptions()
	opts.PlayoffRandomness = 9
	_, err = Run(context.Background(), testRoster(8), opts, logger)
	assert.ErrorIs(t, err, core.ErrRandomnessRange)

	opts = testOptions()
	opts.Settings.Rounds = 0
	_, err = Run(context.Background(), testRoster(8), opts, logger)
	assert.ErrorIs(t, err, core.ErrRoundsRange)

	_, err = Run(context.Background(), testRoster(1), testOptions(), logger)
	assert.ErrorIs(t, err, core.ErrTooFewTeams)
}

func TestRunCanceled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testRoster(8), testOptions(), logger)
	assert.ErrorIs(t, err, context.Canceled)
}
