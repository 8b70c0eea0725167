// Package roster reads seed lists.
//
// A seed list has one "<seed>: <team name>" line per team with
// the seeds listed in order starting at 1. Everything after the
// first colon is the team name. Blank lines are skipped.
//
// Seed lists with a .yaml or .yml extension are a sequence of team
// names instead, seeded in the order they are listed.
package roster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ezBadminton/goleague/core"
	"gopkg.in/yaml.v2"
)

var (
	ErrSeedOrder    = errors.New("seeds must be listed in order starting at 1")
	ErrTeamCount    = errors.New("number of teams does not match")
	ErrMissingColon = errors.New("line has no \"<seed>: <team>\" form")
	ErrNotASequence = errors.New("yaml seed list must be a sequence of team names")
)

// Reads and validates the seed list at path. When expected is not 0
// the list must contain exactly that many teams.
func Load(path string, expected int) (core.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, expected)
	}
	return Parse(data, expected)
}

func Parse(data []byte, expected int) (core.Roster, error) {
	roster := make(core.Roster, 0, bytes.Count(data, []byte("\n"))+1)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		seed := len(roster) + 1
		key, name, found := strings.Cut(line, ":")
		if !found {
			return nil, &core.ValidationError{Team: line, Seed: seed, Err: ErrMissingColon}
		}
		name = strings.TrimSpace(name)

		listed, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || listed != seed {
			return nil, &core.ValidationError{Team: name, Seed: seed, Err: ErrSeedOrder}
		}
		roster = append(roster, core.Entry{Name: name, Seed: seed})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	return validate(roster, expected)
}

// Parses a yaml sequence of team names
func ParseYAML(data []byte, expected int) (core.Roster, error) {
	var names []string
	if err := yaml.UnmarshalStrict(data, &names); err != nil {
		return nil, &core.ValidationError{Err: fmt.Errorf("%w: %v", ErrNotASequence, err)}
	}
	return validate(FromNames(names), expected)
}

func validate(roster core.Roster, expected int) (core.Roster, error) {
	if expected != 0 && len(roster) != expected {
		return nil, &core.ValidationError{
			Err: fmt.Errorf("%w: expected %d, got %d", ErrTeamCount, expected, len(roster)),
		}
	}

	if err := core.ValidateRoster(roster); err != nil {
		return nil, err
	}

	return roster, nil
}

// Seeds the names in the given order
func FromNames(names []string) core.Roster {
	roster := make(core.Roster, len(names))
	for i, name := range names {
		roster[i] = core.Entry{Name: strings.TrimSpace(name), Seed: i + 1}
	}
	return roster
}
