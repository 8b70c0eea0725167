// Command leaguesim simulates a round robin league season and an
// optional seeded knockout tournament from a seed list.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ezBadminton/goleague/core"
	"github.com/ezBadminton/goleague/internal/config"
	"github.com/ezBadminton/goleague/internal/projection"
	"github.com/ezBadminton/goleague/internal/render"
	"github.com/ezBadminton/goleague/internal/roster"
	"github.com/sirupsen/logrus"
)

var errHeadToHead = errors.New("-h2h expects two team names separated by a comma")

type options struct {
	configPath string
	settings   config.Settings

	team    string
	h2h     string
	stats   string
	json    bool
	project bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("leaguesim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	var overrides config.Settings

	fs.StringVar(&opts.configPath, "config", "", "path to a settings file (yaml, json or toml)")
	fs.StringVar(&overrides.Roster, "roster", "", "path to the seed list with one \"<seed>: <team>\" line per team")
	fs.IntVar(&overrides.Teams, "teams", 0, "expected number of teams in the seed list (0 = any)")
	fs.IntVar(&overrides.Rounds, "rounds", 0, "number of round robins (1-5)")
	fs.IntVar(&overrides.Randomness, "randomness", 0, "1: heavy favorites, 2: moderate favorites, 3: slight favorites, 4: toss up")
	fs.IntVar(&overrides.Playoffs.Size, "playoffs", 0, "bracket size of the tournament after the season (0 = none)")
	fs.IntVar(&overrides.Playoffs.Randomness, "playoff-randomness", 0, "randomness level of the knockout games (0 = regular season level)")
	fs.Int64Var(&overrides.Seed, "seed", 0, "random seed (0 = fresh seed)")
	fs.IntVar(&overrides.Runs, "runs", 0, "number of seasons a projection simulates")
	fs.StringVar(&opts.team, "team", "", "print every result of the team")
	fs.StringVar(&opts.h2h, "h2h", "", "print the games between two comma-separated teams")
	fs.StringVar(&opts.stats, "stats", "", "print the season summary of the team")
	fs.BoolVar(&opts.json, "json", false, "output the season or projection as JSON")
	fs.BoolVar(&opts.project, "project", false, "simulate many seasons and print the projected table")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return nil, err
	}

	// Flags are visited in name order so the playoff level is
	// settled after every flag is applied
	inherited := settings.Playoffs.Randomness == settings.Randomness
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
		switch f.Name {
		case "roster":
			settings.Roster = overrides.Roster
		case "teams":
			settings.Teams = overrides.Teams
		case "rounds":
			settings.Rounds = overrides.Rounds
		case "randomness":
			settings.Randomness = overrides.Randomness
		case "playoffs":
			settings.Playoffs.Size = overrides.Playoffs.Size
		case "playoff-randomness":
			settings.Playoffs.Randomness = overrides.Playoffs.Randomness
		case "seed":
			settings.Seed = overrides.Seed
		case "runs":
			settings.Runs = overrides.Runs
		}
	})
	if set["randomness"] && !set["playoff-randomness"] && inherited {
		settings.Playoffs.Randomness = settings.Randomness
	}
	if settings.Playoffs.Randomness == 0 {
		settings.Playoffs.Randomness = settings.Randomness
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	opts.settings = *settings

	return &opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	logger, err := env.NewLogger(stderr)
	if err != nil {
		return err
	}

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	settings := opts.settings

	teams, err := roster.Load(settings.Roster, settings.Teams)
	if err != nil {
		return err
	}

	if settings.Seed == 0 {
		if settings.Seed, err = core.NewSeed(); err != nil {
			return err
		}
	}
	logger.WithField("seed", settings.Seed).Info("Simulation seed")

	if opts.project {
		return runProjection(ctx, teams, settings, env.Workers, opts.json, stdout, logger)
	}

	season, err := core.NewSeason(teams, settings.Season(), core.WithLogger(logger))
	if err != nil {
		return err
	}

	rng := core.NewRand(settings.Seed)
	season.PlayRegularSeason(rng)
	if settings.Playoffs.Size != 0 {
		if _, err := season.PlayOffs(settings.Playoffs.Size, settings.PlayoffRandomness(), rng); err != nil {
			return err
		}
	}

	if opts.json {
		data, err := core.MarshalSeason(season)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	return printSeason(stdout, season, opts)
}

func runProjection(
	ctx context.Context,
	teams core.Roster,
	settings config.Settings,
	workers int,
	asJSON bool,
	stdout io.Writer,
	logger logrus.FieldLogger,
) error {
	opts := projection.Options{
		Settings:          settings.Season(),
		PlayoffSize:       settings.Playoffs.Size,
		PlayoffRandomness: settings.PlayoffRandomness(),
		Runs:              settings.Runs,
		Seed:              settings.Seed,
		Workers:           workers,
	}

	report, err := projection.Run(ctx, teams, opts, logger)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	return render.Projection(stdout, report)
}

func printSeason(w io.Writer, season *core.Season, opts *options) error {
	if err := render.LeagueTable(w, season); err != nil {
		return err
	}
	if season.Bracket != nil {
		if err := render.Bracket(w, season.Bracket); err != nil {
			return err
		}
	}

	if opts.team != "" {
		if err := render.TeamResults(w, season, opts.team); err != nil {
			return err
		}
	}
	if opts.h2h != "" {
		a, b, ok := strings.Cut(opts.h2h, ",")
		if !ok {
			return errHeadToHead
		}
		if err := render.HeadToHead(w, season, strings.TrimSpace(a), strings.TrimSpace(b)); err != nil {
			return err
		}
	}
	if opts.stats != "" {
		if err := render.TeamStats(w, season, opts.stats); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
