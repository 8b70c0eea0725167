package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezBadminton/goleague/core"
	"github.com/spf13/viper"
)

const envPrefix = "LEAGUESIM"

var (
	ErrNoRoster  = errors.New("no roster file given")
	ErrRunsRange = errors.New("runs must be at least 1")
)

// Settings of one simulation run. Read from an optional settings
// file and LEAGUESIM_ environment overrides.
type Settings struct {
	// Path to the seed list
	Roster string `mapstructure:"roster"`
	// Expected number of teams in the seed list. 0 accepts any count.
	Teams      int             `mapstructure:"teams"`
	Rounds     int             `mapstructure:"rounds"`
	Randomness int             `mapstructure:"randomness"`
	Playoffs   PlayoffSettings `mapstructure:"playoffs"`
	// Seed of the random generator. 0 draws a fresh seed.
	Seed int64 `mapstructure:"seed"`
	// Number of seasons a projection simulates
	Runs int `mapstructure:"runs"`
}

type PlayoffSettings struct {
	// Bracket size. 0 skips the tournament.
	Size int `mapstructure:"size"`
	// Randomness level of the knockout games. 0 uses the
	// regular season level.
	Randomness int `mapstructure:"randomness"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("roster", "")
	v.SetDefault("teams", 0)
	v.SetDefault("rounds", 1)
	v.SetDefault("randomness", int(core.ModerateFavorites))
	v.SetDefault("playoffs.size", 0)
	v.SetDefault("playoffs.randomness", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("runs", 1000)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Loads the settings from the file at path. An empty path only
// applies the defaults and the environment.
func LoadSettings(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if settings.Playoffs.Randomness == 0 {
		settings.Playoffs.Randomness = settings.Randomness
	}

	return &settings, nil
}

// The regular season part of the settings
func (s *Settings) Season() core.SeasonSettings {
	return core.SeasonSettings{
		Rounds:     s.Rounds,
		Randomness: core.Randomness(s.Randomness),
	}
}

func (s *Settings) PlayoffRandomness() core.Randomness {
	return core.Randomness(s.Playoffs.Randomness)
}

// Checks every setting that can be checked without the roster.
// The bracket size is checked against the number of teams when
// the playoffs start.
func (s *Settings) Validate() error {
	if s.Roster == "" {
		return ErrNoRoster
	}
	if err := s.Season().Validate(); err != nil {
		return err
	}
	if s.Playoffs.Size != 0 {
		if err := s.PlayoffRandomness().Validate(); err != nil {
			return err
		}
	}
	if s.Runs < 1 {
		return &core.ConfigError{Field: "runs", Value: s.Runs, Err: ErrRunsRange}
	}
	return nil
}
