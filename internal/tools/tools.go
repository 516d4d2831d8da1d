// Package tools defines the MCP tools exposed by the server: their input
// schemas, per-tool validation, and handlers over the Store and query
// engine. All builds the immutable (name, schema, handler) table once at
// startup; the composition root registers it and nothing mutates it after.
package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"remindmcp/internal/query"
	"remindmcp/internal/service"
)

// Deps carries the collaborators shared by all tools.
type Deps struct {
	Store  service.Store
	Engine *query.Engine
}

// Handler is the per-tool handler signature expected by the MCP server.
type Handler func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Registration pairs a tool definition with its handler.
type Registration struct {
	Def    mcp.Tool
	Handle Handler
}

// All builds the complete registration table.
func All(deps Deps) []Registration {
	return []Registration{
		createReminderTool(deps),
		getReminderTool(deps),
		updateReminderTool(deps),
		completeReminderTool(deps),
		uncompleteReminderTool(deps),
		deleteReminderTool(deps),
		openReminderTool(deps),
		listRemindersTool(deps),
		listReminderListsTool(deps),
		createReminderListTool(deps),
		deleteReminderListTool(deps),
		searchRemindersTool(deps),
		dueTodayTool(deps),
		overdueTool(deps),
		upcomingRemindersTool(deps),
		flaggedRemindersTool(deps),
		bulkCreateRemindersTool(deps),
		bulkCompleteRemindersTool(deps),
		bulkDeleteRemindersTool(deps),
	}
}

// textResult pretty-prints v as the tool's JSON payload.
func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult is the thrown-failure payload used by read operations and
// input validation.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError("Error: " + err.Error()), nil
}

// mutationResult wraps a mutating operation's outcome. Execution failures
// become {"success": false, "error": ...} payloads instead of propagating.
func mutationResult(err error, extra map[string]any) (*mcp.CallToolResult, error) {
	payload := map[string]any{"success": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	}
	for k, v := range extra {
		payload[k] = v
	}
	return textResult(payload)
}

// requireString validates a mandatory string field before any subprocess is
// spawned.
func requireString(req mcp.CallToolRequest, field string) (string, error) {
	v := strings.TrimSpace(req.GetString(field, ""))
	if v == "" {
		return "", &service.ValidationError{Field: field}
	}
	return v, nil
}

// priorityArg resolves the number-or-string priority parameter to a tagged
// variant. Symbolic names (case-insensitive) map through the canonical
// table; unrecognized names map to none. Returns ok=false when the
// parameter is absent.
func priorityArg(args map[string]any) (service.PriorityArg, bool) {
	v, present := args["priority"]
	if !present || v == nil {
		return service.PriorityArg{}, false
	}
	switch p := v.(type) {
	case float64:
		return service.NumericPriority(int(p)), true
	case int:
		return service.NumericPriority(p), true
	case json.Number:
		if n, err := p.Int64(); err == nil {
			return service.NumericPriority(int(n)), true
		}
		return service.SymbolicPriority(p.String()), true
	case string:
		if code, ok := atoiStrict(p); ok {
			return service.NumericPriority(code), true
		}
		return service.SymbolicPriority(p), true
	default:
		return service.PriorityArg{}, false
	}
}

func atoiStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// stringSlice coerces a JSON array argument into []string, skipping
// non-string elements.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// remindersPayload is the common list-result shape.
func remindersPayload(reminders []service.Reminder) map[string]any {
	if reminders == nil {
		reminders = []service.Reminder{}
	}
	return map[string]any{
		"reminders": reminders,
		"count":     len(reminders),
	}
}
