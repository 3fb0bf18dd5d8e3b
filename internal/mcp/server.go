// Package mcp wires the lyrical tool set into an MCP server using the
// official MCP Go SDK (github.com/modelcontextprotocol/go-sdk).
//
// Tools are registered via the low-level [mcpsdk.Server.AddTool] so that every
// result is plain text content produced by a [tools.Tool] handler. The wrapper
// adds tracing, metrics, structured logging and panic recovery around each
// invocation.
//
// Typical usage:
//
//	srv, err := mcp.New(mcp.Options{Tools: allTools})
//	if err != nil { ... }
//	err = srv.Run(ctx) // stdio transport, blocks until the client disconnects
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools"
	"github.com/ForceConstant/lyrical-mcp/internal/observe"
)

// ServerName and ServerVersion identify this server in the MCP initialize
// handshake and in the health_check payload.
const (
	ServerName    = "lyrical-mcp"
	ServerVersion = "1.0.0"
)

// Options configures a [Server].
type Options struct {
	// Tools is the full tool catalogue to expose. Tool names must be unique.
	Tools []tools.Tool

	// Metrics receives per-call counters and latency histograms. When nil,
	// [observe.DefaultMetrics] is used.
	Metrics *observe.Metrics
}

// Server wraps an [mcpsdk.Server] exposing the lyrical tool set.
//
// The zero value is not usable; create instances with [New].
type Server struct {
	srv     *mcpsdk.Server
	metrics *observe.Metrics
	names   []string
}

// New builds a Server with all tools from opts registered. Returns an error
// on duplicate tool names or malformed parameter schemas.
func New(opts Options) (*Server, error) {
	s := &Server{
		srv: mcpsdk.NewServer(
			&mcpsdk.Implementation{Name: ServerName, Version: ServerVersion},
			nil,
		),
		metrics: opts.Metrics,
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}

	seen := make(map[string]bool, len(opts.Tools))
	for _, t := range opts.Tools {
		if t.Definition.Name == "" {
			return nil, fmt.Errorf("mcp: tool with empty name")
		}
		if seen[t.Definition.Name] {
			return nil, fmt.Errorf("mcp: duplicate tool name %q", t.Definition.Name)
		}
		seen[t.Definition.Name] = true

		schema, err := schemaFromMap(t.Definition.Parameters)
		if err != nil {
			return nil, fmt.Errorf("mcp: tool %q: invalid parameter schema: %w", t.Definition.Name, err)
		}

		s.srv.AddTool(&mcpsdk.Tool{
			Name:        t.Definition.Name,
			Description: t.Definition.Description,
			InputSchema: schema,
		}, s.adapt(t))
		s.names = append(s.names, t.Definition.Name)
	}

	return s, nil
}

// ToolNames returns the names of all registered tools in registration order.
func (s *Server) ToolNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect binds the server to the given transport and returns the session.
// Used by tests with in-memory transports.
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.srv.Connect(ctx, t, nil)
}

// HTTPHandler returns an [http.Handler] serving MCP over the streamable-HTTP
// transport. Every request is dispatched to this server instance.
func (s *Server) HTTPHandler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s.srv
	}, nil)
}

// schemaFromMap converts a JSON-schema-shaped map into the SDK's schema type.
// A nil map becomes the permissive empty object schema.
func schemaFromMap(params map[string]any) (*jsonschema.Schema, error) {
	if params == nil {
		params = map[string]any{"type": "object"}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// adapt wraps a [tools.Tool] handler into an SDK [mcpsdk.ToolHandler],
// translating arguments to the JSON string the handler expects and the string
// result back into text content. Handler errors become in-band tool errors
// (IsError: true) rather than protocol errors, so MCP clients always receive
// a result they can surface to the model.
func (s *Server) adapt(t tools.Tool) mcpsdk.ToolHandler {
	name := t.Definition.Name
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (res *mcpsdk.CallToolResult, err error) {
		ctx, span := observe.StartSpan(ctx, "tool."+name)
		defer span.End()

		start := time.Now()
		status := "ok"
		defer func() {
			// A panic in a tool handler must not kill the whole server.
			if r := recover(); r != nil {
				status = "panic"
				observe.Logger(ctx).Error("tool handler panicked",
					"tool", name, "panic", r)
				res = errorResult(fmt.Sprintf("internal error in tool %q", name))
				err = nil
			}
			elapsed := time.Since(start)
			s.metrics.RecordToolCall(ctx, name, status, elapsed.Seconds())
			observe.Logger(ctx).Debug("tool call finished",
				"tool", name, "status", status, "duration", elapsed)
		}()

		out, herr := t.Handler(ctx, rawArguments(req))
		if herr != nil {
			status = "error"
			observe.Logger(ctx).Warn("tool call failed", "tool", name, "error", herr)
			return errorResult(herr.Error()), nil
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: out}},
		}, nil
	}
}

// rawArguments extracts the call arguments as a JSON string. Missing
// arguments yield the empty object so handlers can unconditionally unmarshal.
func rawArguments(req *mcpsdk.CallToolRequest) string {
	if req == nil || req.Params == nil {
		return "{}"
	}
	switch a := any(req.Params.Arguments).(type) {
	case nil:
		return "{}"
	case json.RawMessage:
		if len(a) == 0 {
			return "{}"
		}
		return string(a)
	default:
		raw, err := json.Marshal(a)
		if err != nil {
			return "{}"
		}
		return string(raw)
	}
}

func errorResult(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}
