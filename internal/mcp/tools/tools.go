// Package tools defines the shared [Tool] type used by all built-in MCP tool
// packages in lyrical-mcp. Each sub-package exports a constructor function
// that returns a slice of [Tool] values ready for registration with the MCP
// server.
package tools

import "context"

// Definition is a tool's public descriptor: the schema presented to MCP
// clients in tools/list responses.
type Definition struct {
	// Name is the tool's unique identifier.
	Name string

	// Description explains what the tool does.
	Description string

	// Parameters is the JSON Schema describing the tool's input object.
	Parameters map[string]any
}

// Tool represents a built-in tool ready for registration with the MCP server.
//
// Each Tool carries its client-facing [Definition] together with the handler
// function invoked when a client calls the tool. Handlers receive the call's
// JSON-encoded arguments object and return the result rendered into the
// response's text content. Implementations must be safe for concurrent use.
type Tool struct {
	Definition Definition

	// Handler executes the tool with JSON-encoded args and returns the
	// result string on success, or a descriptive error. Errors are reported
	// to the client as tool execution errors, not protocol faults.
	Handler func(ctx context.Context, args string) (string, error)
}
