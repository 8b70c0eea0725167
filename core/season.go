package core

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// The settings of a regular season
type SeasonSettings struct {
	// Number of round robins to play
	Rounds     int
	Randomness Randomness
}

func (s SeasonSettings) Validate() error {
	if s.Rounds < 1 || s.Rounds > 5 {
		return &ConfigError{Field: "rounds", Value: s.Rounds, Err: ErrRoundsRange}
	}
	return s.Randomness.Validate()
}

type Option func(s *Season)

// Sets the logger that the season reports its progress to
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Season) {
		s.logger = logger
	}
}

// A Season is a league of round robins optionally followed by
// a seeded elimination bracket.
type Season struct {
	ID       uuid.UUID
	Settings SeasonSettings

	// The teams in roster order
	Teams    []*Team
	Schedule *Schedule

	// Nil until the regular season is played
	Standings *Standings
	// Nil until the playoffs are played
	Bracket *Bracket

	logger logrus.FieldLogger
}

// Creates a season from the roster.
//
// The roster and the settings are validated before any team
// is created.
func NewSeason(roster Roster, settings SeasonSettings, options ...Option) (*Season, error) {
	if err := ValidateRoster(roster); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	teams := createTeams(roster)
	season := &Season{
		ID:       uuid.New(),
		Settings: settings,
		Teams:    teams,
		Schedule: NewSchedule(teams),
		logger:   discardLogger(),
	}
	for _, o := range options {
		o(season)
	}

	season.logger.WithFields(logrus.Fields{
		"season":     season.ID,
		"teams":      len(teams),
		"rounds":     settings.Rounds,
		"randomness": int(settings.Randomness),
	}).Info("Season created")

	return season, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Plays every fixture of every round and ranks the teams
func (s *Season) PlayRegularSeason(rng Rand) *Standings {
	if s.Standings != nil {
		return s.Standings
	}

	engine := &MatchEngine{
		Rand:       rng,
		Randomness: s.Settings.Randomness,
		NumTeams:   len(s.Teams),
	}

	played := 0
	for round, f := range s.Schedule.Rounds(s.Settings.Rounds) {
		engine.Play(f.Home, f.Away)
		played += 1
		if played%s.Schedule.Len() == 0 {
			s.logger.WithFields(logrus.Fields{
				"season": s.ID,
				"round":  round + 1,
			}).Debug("Round robin completed")
		}
	}

	s.Standings = NewStandings(s.Teams)

	s.logger.WithFields(logrus.Fields{
		"season": s.ID,
		"games":  played,
		"leader": s.Standings.At(0).Name,
	}).Info("Regular season completed")

	return s.Standings
}

// Seeds the best size teams of the standings into a bracket
// and plays it out.
func (s *Season) PlayOffs(size int, level Randomness, rng Rand) (*Bracket, error) {
	if s.Standings == nil {
		return nil, ErrRegularSeason
	}
	if s.Bracket != nil {
		return nil, ErrPlayedOff
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	bracket, err := NewBracket(s.Standings.Ranks, size)
	if err != nil {
		return nil, err
	}

	if err := bracket.Play(rng, level); err != nil {
		return nil, err
	}
	s.Bracket = bracket

	for i, round := range bracket.Rounds {
		for _, tie := range round.Ties {
			s.logger.WithFields(logrus.Fields{
				"season": s.ID,
				"round":  bracket.RoundName(i),
				"home":   tie.Home.Name,
				"away":   tie.Away.Name,
				"winner": tie.Winner.Name,
				"score":  tie.Result.String(),
			}).Debug("Knockout tie resolved")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"season":    s.ID,
		"champion":  bracket.Champion().Name,
		"runner_up": bracket.RunnerUp().Name,
	}).Info("Champion decided")

	return bracket, nil
}

// Returns the named team or nil
func (s *Season) Team(name string) *Team {
	for _, t := range s.Teams {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Returns the regular season and knockout results between two teams.
// ok is false when one of the names is unknown.
func (s *Season) HeadToHead(a, b string) (league, playoffs []*MatchResult, ok bool) {
	teamA := s.Team(a)
	teamB := s.Team(b)
	if teamA == nil || teamB == nil || teamA == teamB {
		return nil, nil, false
	}

	league = teamA.ResultsAgainst(b)
	if teamA.MadePlayoffs() && teamB.MadePlayoffs() {
		playoffs = teamA.PlayoffResultsAgainst(b)
	}
	return league, playoffs, true
}
