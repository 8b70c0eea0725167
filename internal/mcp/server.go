package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func NewLeagueMCPServer(logger *logrus.Logger, workers int) *server.DefaultServer {
	seasonHandler := NewSeasonHandler(logger, workers)

	s := server.NewDefaultServer("League Simulator", "1.0.0")
	if s == nil {
		logger.Error("Failed to create MCP server instance")
		return nil
	}

	s.HandleListTools(func(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
		tools := []mcp.Tool{
			seasonHandler.SimulateSeasonTool(),
			seasonHandler.ProjectSeasonTool(),
		}

		logger.WithField("tools_count", len(tools)).Info("Listing available tools")

		return &mcp.ListToolsResult{
			Tools: tools,
		}, nil
	})

	s.HandleCallTool(func(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		logger.WithFields(logrus.Fields{
			"tool": name,
			"args": arguments,
		}).Info("Tool called")

		switch name {
		case "simulate_season":
			return seasonHandler.HandleSimulateSeason(ctx, arguments)
		case "project_season":
			return seasonHandler.HandleProjectSeason(ctx, arguments)
		default:
			logger.WithField("tool", name).Warn("Unknown tool called")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{
						Type: "text",
						Text: "Unknown tool: " + name,
					},
				},
				IsError: true,
			}, nil
		}
	})

	logger.Info("All tools registered successfully")
	return s
}
