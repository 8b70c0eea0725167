package core

import (
	"errors"
	"fmt"
)

var (
	ErrRoundsRange     = errors.New("rounds must be between 1 and 5")
	ErrRandomnessRange = errors.New("randomness level must be between 1 and 4")
	ErrBracketSize     = errors.New("bracket size must be a power of two and at least 2")
	ErrBracketTooLarge = errors.New("bracket size exceeds the number of teams")
	ErrRegularSeason   = errors.New("regular season has not been played")
	ErrPlayedOff       = errors.New("playoffs have already been played")
)

var (
	ErrTooFewTeams   = errors.New("a roster needs at least 2 teams")
	ErrEmptyName     = errors.New("team name is empty")
	ErrDuplicateName = errors.New("duplicate team name")
	ErrSeedRange     = errors.New("seed is outside of 1..N")
	ErrDuplicateSeed = errors.New("duplicate seed")
)

// A ConfigError reports a season or tournament setting
// that is outside of its allowed range.
type ConfigError struct {
	Field string
	Value int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// A ValidationError reports a roster that is not a set of
// unique team names with a dense 1..N seed permutation.
type ValidationError struct {
	Team string
	Seed int
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Team == "" {
		return fmt.Sprintf("invalid roster: %v", e.Err)
	}
	return fmt.Sprintf("invalid roster entry %d: %q: %v", e.Seed, e.Team, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
