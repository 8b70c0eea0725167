// Command leaguesim-mcp serves the league simulation as MCP tools
// over stdio.
package main

import (
	"os"

	"github.com/ezBadminton/goleague/internal/config"
	"github.com/ezBadminton/goleague/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read environment")
	}

	// stdout carries the protocol
	env.LogFormat = "json"
	logger, err := env.NewLogger(os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create logger")
	}

	mcpServer := mcp.NewLeagueMCPServer(logger, env.Workers)
	if mcpServer == nil {
		logger.Fatal("Failed to create MCP server")
	}

	logger.Info("Starting League Simulator MCP Server...")

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
