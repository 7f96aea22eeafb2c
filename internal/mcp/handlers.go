// ABOUTME: MCP tool handler implementations for the bezzie relay
// ABOUTME: Upstream failures become tool errors carrying the provider's message
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/bezzie/internal/logger"
	"github.com/harper/bezzie/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Relay is the service the tools call into
type Relay interface {
	SendMessage(ctx context.Context, query string) (string, error)
	AnalyzeMentalState(ctx context.Context, id, chatHistory string) (models.AnalysisResult, error)
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	relay Relay
}

// SendMessage handles the send_message tool
func (h *Handlers) SendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	reply, err := h.relay.SendMessage(ctx, query)
	if err != nil {
		logger.Error("send_message failed: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{"response": reply})
}

// AnalyzeMentalState handles the analyze_mental_state tool
func (h *Handlers) AnalyzeMentalState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required and must be a string"), nil
	}
	chatHistory, err := request.RequireString("chat_history")
	if err != nil {
		return mcp.NewToolResultError("chat_history argument is required and must be a string"), nil
	}

	result, err := h.relay.AnalyzeMentalState(ctx, id, chatHistory)
	if err != nil {
		logger.Error("analyze_mental_state failed for %s: %v", id, err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
