// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes the relay's operations to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs bezzie as an MCP (Model Context Protocol) server, giving
LLM agents the send_message and analyze_mental_state tools via stdio.

Logs go to stderr so they never interleave with the protocol stream.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  bezzie mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "bezzie": {
  #       "command": "bezzie",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	server := mcpserver.NewMCPServer(
		"Bezzie Relay",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, a.Service)

	logger.Info("bezzie MCP server starting on stdio...")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
