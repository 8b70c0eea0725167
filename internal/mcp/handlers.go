package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ezBadminton/goleague/core"
	"github.com/ezBadminton/goleague/internal/projection"
	"github.com/ezBadminton/goleague/internal/roster"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// Upper bound of the runs a single project_season call may request
const maxRuns = 100_000

// SeasonArgs represents the parameters shared by both tools
type SeasonArgs struct {
	Teams             []string
	Rounds            int
	Randomness        int
	PlayoffSize       int
	PlayoffRandomness int
	Seed              int64
}

// SeasonHandler handles the simulation MCP tools
type SeasonHandler struct {
	logger  *logrus.Logger
	workers int
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(logger *logrus.Logger, workers int) *SeasonHandler {
	return &SeasonHandler{
		logger:  logger,
		workers: max(workers, 1),
	}
}

func seasonProperties() map[string]interface{} {
	return map[string]interface{}{
		"teams": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Team names ordered by seed, best team first",
			"required":    true,
		},
		"rounds": map[string]interface{}{
			"type":        "integer",
			"description": "Number of round robins in the regular season (1-5, default 1)",
		},
		"randomness": map[string]interface{}{
			"type":        "integer",
			"description": "1: heavy favorites, 2: moderate favorites, 3: slight favorites, 4: toss up (default 2)",
		},
		"playoff_size": map[string]interface{}{
			"type":        "integer",
			"description": "Bracket size of the tournament after the season, a power of two up to the number of teams. 0 skips it",
		},
		"playoff_randomness": map[string]interface{}{
			"type":        "integer",
			"description": "Randomness level of the knockout games (default: the regular season level)",
		},
		"seed": map[string]interface{}{
			"type":        "integer",
			"description": "Random seed for a reproducible result. 0 or missing draws a fresh seed",
		},
	}
}

// SimulateSeasonTool returns the MCP tool definition for simulate_season
func (h *SeasonHandler) SimulateSeasonTool() mcp.Tool {
	return mcp.Tool{
		Name:        "simulate_season",
		Description: "Simulate one league season with an optional seeded knockout tournament and return the standings, every result and the bracket",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: seasonProperties(),
		},
	}
}

// ProjectSeasonTool returns the MCP tool definition for project_season
func (h *SeasonHandler) ProjectSeasonTool() mcp.Tool {
	properties := seasonProperties()
	properties["runs"] = map[string]interface{}{
		"type":        "integer",
		"description": fmt.Sprintf("Number of seasons to simulate (1-%d, default 1000)", maxRuns),
	}

	return mcp.Tool{
		Name:        "project_season",
		Description: "Simulate many seasons and return each team's expected points, finishing position, league title and championship chances",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}
}

// HandleSimulateSeason handles the simulate_season tool call
func (h *SeasonHandler) HandleSimulateSeason(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling simulate_season")

	seasonArgs, err := parseSeasonArgs(args)
	if err != nil {
		return nil, err
	}

	season, err := core.NewSeason(
		roster.FromNames(seasonArgs.Teams),
		seasonArgs.settings(),
		core.WithLogger(h.logger),
	)
	if err != nil {
		return errorResult("Invalid season", err), nil
	}

	rng := core.NewRand(seasonArgs.Seed)
	season.PlayRegularSeason(rng)
	if seasonArgs.PlayoffSize != 0 {
		_, err := season.PlayOffs(seasonArgs.PlayoffSize, core.Randomness(seasonArgs.PlayoffRandomness), rng)
		if err != nil {
			return errorResult("Invalid tournament", err), nil
		}
	}

	data, err := core.MarshalSeason(season)
	if err != nil {
		h.logger.WithError(err).Error("Failed to format season")
		return errorResult("Error formatting response", err), nil
	}

	return jsonResult(map[string]any{
		"seed":   seasonArgs.Seed,
		"season": json.RawMessage(data),
	})
}

// HandleProjectSeason handles the project_season tool call
func (h *SeasonHandler) HandleProjectSeason(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling project_season")

	seasonArgs, err := parseSeasonArgs(args)
	if err != nil {
		return nil, err
	}
	runs, err := intArg(args, "runs", 1000)
	if err != nil {
		return nil, err
	}
	if runs > maxRuns {
		return errorResult("Invalid projection", fmt.Errorf("runs must be at most %d", maxRuns)), nil
	}

	opts := projection.Options{
		Settings:          seasonArgs.settings(),
		PlayoffSize:       seasonArgs.PlayoffSize,
		PlayoffRandomness: core.Randomness(seasonArgs.PlayoffRandomness),
		Runs:              runs,
		Seed:              seasonArgs.Seed,
		Workers:           h.workers,
	}

	report, err := projection.Run(ctx, roster.FromNames(seasonArgs.Teams), opts, h.logger)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if err != nil {
		return errorResult("Invalid projection", err), nil
	}

	return jsonResult(report)
}

func (a *SeasonArgs) settings() core.SeasonSettings {
	return core.SeasonSettings{
		Rounds:     a.Rounds,
		Randomness: core.Randomness(a.Randomness),
	}
}

func parseSeasonArgs(args map[string]interface{}) (*SeasonArgs, error) {
	rawTeams, ok := args["teams"].([]interface{})
	if !ok || len(rawTeams) == 0 {
		return nil, fmt.Errorf("teams is required and must be a list of team names")
	}

	teams := make([]string, 0, len(rawTeams))
	for _, t := range rawTeams {
		name, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("teams must only contain strings")
		}
		teams = append(teams, name)
	}

	a := &SeasonArgs{Teams: teams}

	var err error
	if a.Rounds, err = intArg(args, "rounds", 1); err != nil {
		return nil, err
	}
	if a.Randomness, err = intArg(args, "randomness", int(core.ModerateFavorites)); err != nil {
		return nil, err
	}
	if a.PlayoffSize, err = intArg(args, "playoff_size", 0); err != nil {
		return nil, err
	}
	if a.PlayoffRandomness, err = intArg(args, "playoff_randomness", a.Randomness); err != nil {
		return nil, err
	}

	seed, err := intArg(args, "seed", 0)
	if err != nil {
		return nil, err
	}
	a.Seed = int64(seed)
	if a.Seed == 0 {
		if a.Seed, err = core.NewSeed(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// JSON numbers arrive as float64
func intArg(args map[string]interface{}, key string, fallback int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be a whole number", key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}
	return 0, fmt.Errorf("%s must be a number", key)
}

func errorResult(message string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: fmt.Sprintf("%s: %s", message, err.Error()),
			},
		},
		IsError: true,
	}
}

func jsonResult(response interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
