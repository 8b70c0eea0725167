// Package projection estimates how a league is likely to end by
// simulating many seasons from consecutive seeds.
package projection

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ezBadminton/goleague/core"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var ErrRunsRange = errors.New("a projection needs at least one run")

type Options struct {
	Settings core.SeasonSettings

	// Bracket size of the tournament after every season.
	// 0 skips the tournament.
	PlayoffSize       int
	PlayoffRandomness core.Randomness

	Runs int
	// Run i is simulated with the random seed Seed+i
	Seed    int64
	Workers int
}

func (o *Options) validate(numTeams int) error {
	if o.Runs < 1 {
		return &core.ConfigError{Field: "runs", Value: o.Runs, Err: ErrRunsRange}
	}
	if err := o.Settings.Validate(); err != nil {
		return err
	}
	if o.PlayoffSize == 0 {
		return nil
	}
	if err := core.ValidateBracketSize(o.PlayoffSize, numTeams); err != nil {
		return err
	}
	return o.PlayoffRandomness.Validate()
}

// The projected season of one team
type TeamProjection struct {
	Name string `json:"name"`
	Seed int    `json:"seed"`

	MeanPoints   float64 `json:"meanPoints"`
	StdDevPoints float64 `json:"stdDevPoints"`
	MeanPosition float64 `json:"meanPosition"`

	// Shares of the runs in [0, 1]
	LeagueTitles  float64 `json:"leagueTitles"`
	Playoffs      float64 `json:"playoffs"`
	Championships float64 `json:"championships"`
}

type Report struct {
	ID   uuid.UUID `json:"id"`
	Runs int       `json:"runs"`
	Seed int64     `json:"seed"`
	// Ordered by mean finishing position
	Teams []TeamProjection `json:"teams"`
}

// The outcome of one simulated season indexed by roster position
type outcome struct {
	points    []float64
	positions []float64
	playoffs  []bool
	// Roster index of the tournament winner or -1
	champion int
}

// Simulates opts.Runs seasons of the roster and aggregates them.
//
// The report only depends on the roster and the options, not on the
// number of workers.
func Run(ctx context.Context, roster core.Roster, opts Options, logger logrus.FieldLogger) (*Report, error) {
	if err := core.ValidateRoster(roster); err != nil {
		return nil, err
	}
	if err := opts.validate(len(roster)); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(roster))
	for i, e := range roster {
		index[e.Name] = i
	}

	outcomes := make([]outcome, opts.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i := range opts.Runs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := simulate(roster, index, opts, opts.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:    uuid.New(),
		Runs:  opts.Runs,
		Seed:  opts.Seed,
		Teams: aggregate(roster, outcomes),
	}

	logger.WithFields(logrus.Fields{
		"projection": report.ID,
		"runs":       report.Runs,
		"seed":       report.Seed,
		"favorite":   report.Teams[0].Name,
	}).Info("Projection completed")

	return report, nil
}

func simulate(roster core.Roster, index map[string]int, opts Options, seed int64) (outcome, error) {
	season, err := core.NewSeason(roster, opts.Settings)
	if err != nil {
		return outcome{}, err
	}

	rng := core.NewRand(seed)
	standings := season.PlayRegularSeason(rng)

	o := outcome{
		points:    make([]float64, len(roster)),
		positions: make([]float64, len(roster)),
		playoffs:  make([]bool, len(roster)),
		champion:  -1,
	}
	for position, team := range standings.Ranks {
		i := index[team.Name]
		o.points[i] = float64(team.Points())
		o.positions[i] = float64(position + 1)
	}

	if opts.PlayoffSize == 0 {
		return o, nil
	}

	bracket, err := season.PlayOffs(opts.PlayoffSize, opts.PlayoffRandomness, rng)
	if err != nil {
		return outcome{}, err
	}
	for _, team := range bracket.Slots() {
		o.playoffs[index[team.Name]] = true
	}
	o.champion = index[bracket.Champion().Name]

	return o, nil
}

func aggregate(roster core.Roster, outcomes []outcome) []TeamProjection {
	runs := float64(len(outcomes))
	points := make([]float64, len(outcomes))
	positions := make([]float64, len(outcomes))

	teams := make([]TeamProjection, 0, len(roster))
	for i, e := range roster {
		leagueTitles, playoffs, championships := 0, 0, 0
		for run, o := range outcomes {
			points[run] = o.points[i]
			positions[run] = o.positions[i]
			if o.positions[i] == 1 {
				leagueTitles += 1
			}
			if o.playoffs[i] {
				playoffs += 1
			}
			if o.champion == i {
				championships += 1
			}
		}

		mean, std := stat.MeanStdDev(points, nil)
		if len(outcomes) == 1 {
			std = 0
		}

		teams = append(teams, TeamProjection{
			Name:          e.Name,
			Seed:          e.Seed,
			MeanPoints:    mean,
			StdDevPoints:  std,
			MeanPosition:  stat.Mean(positions, nil),
			LeagueTitles:  float64(leagueTitles) / runs,
			Playoffs:      float64(playoffs) / runs,
			Championships: float64(championships) / runs,
		})
	}

	slices.SortStableFunc(teams, func(a, b TeamProjection) int {
		return cmp.Or(
			cmp.Compare(a.MeanPosition, b.MeanPosition),
			cmp.Compare(a.Seed, b.Seed),
		)
	})

	return teams
}
