// Package probes provides the liveness and health MCP tools.
//
// Two tools are exported via [Tools]:
//   - "ping"         — returns the literal string "pong".
//   - "health_check" — returns a structured server status record.
//
// Both handlers take no arguments, never fail, and are safe for concurrent use.
package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools"
)

// ServerInfo identifies the running server in health_check responses.
type ServerInfo struct {
	// Name is the server's name as reported to clients.
	Name string

	// Version is the server's version string.
	Version string

	// ToolNames lists every tool the server exposes, in registration order.
	ToolNames []string
}

// healthResult is the JSON-encoded output of the "health_check" tool.
type healthResult struct {
	// Status is always "healthy" — the process answering at all is the check.
	Status string `json:"status"`

	// Timestamp is the server's current time in RFC 3339 format.
	Timestamp string `json:"timestamp"`

	// Server is the server name.
	Server string `json:"server"`

	// Version is the server version.
	Version string `json:"version"`

	// ToolsAvailable lists the names of all registered tools.
	ToolsAvailable []string `json:"tools_available"`
}

// pingHandler implements the "ping" tool.
func pingHandler(_ context.Context, _ string) (string, error) {
	return "pong", nil
}

// healthHandler returns the "health_check" handler closed over info. now is
// injectable for tests; pass nil to use [time.Now].
func healthHandler(info ServerInfo, now func() time.Time) func(context.Context, string) (string, error) {
	if now == nil {
		now = time.Now
	}
	return func(_ context.Context, _ string) (string, error) {
		res, err := json.Marshal(healthResult{
			Status:         "healthy",
			Timestamp:      now().UTC().Format(time.RFC3339),
			Server:         info.Name,
			Version:        info.Version,
			ToolsAvailable: info.ToolNames,
		})
		if err != nil {
			return "", fmt.Errorf("probes: health_check: failed to encode result: %w", err)
		}
		return string(res), nil
	}
}

// emptySchema is the parameter schema shared by both probe tools: an object
// with no properties.
func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// Tools returns the probe tools ready for registration with the MCP server.
func Tools(info ServerInfo) []tools.Tool {
	return []tools.Tool{
		{
			Definition: tools.Definition{
				Name:        "ping",
				Description: "Liveness probe. Returns the literal string \"pong\".",
				Parameters:  emptySchema(),
			},
			Handler: pingHandler,
		},
		{
			Definition: tools.Definition{
				Name:        "health_check",
				Description: "Report server health: status, current timestamp, server name, version, and the list of available tools.",
				Parameters:  emptySchema(),
			},
			Handler: healthHandler(info, nil),
		},
	}
}
