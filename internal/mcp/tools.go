// ABOUTME: MCP tool definitions and registration for the bezzie relay
// ABOUTME: Exposes send_message and analyze_mental_state with the same payloads as the HTTP API
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, relay Relay) *Handlers {
	handlers := &Handlers{relay: relay}

	// 1. send_message - Reply in the companion persona
	server.AddTool(mcp.Tool{
		Name:        "send_message",
		Description: "Send a message to the supportive companion and get its reply.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The user's message",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SendMessage)

	// 2. analyze_mental_state - Summarize a transcript and find the most similar user
	server.AddTool(mcp.Tool{
		Name:        "analyze_mental_state",
		Description: "Analyze a user's chat history, store the result under their id, and return the id of the most similar other user (or null).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Stable identifier of the user",
				},
				"chat_history": map[string]interface{}{
					"type":        "string",
					"description": "Full chat transcript to analyze",
				},
			},
			Required: []string{"id", "chat_history"},
		},
	}, handlers.AnalyzeMentalState)

	return handlers
}
