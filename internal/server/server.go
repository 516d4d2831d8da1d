// Package server wires the MCP server: it builds the tool table once and
// registers every tool. No business logic lives here, only composition.
package server

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"remindmcp/internal/query"
	"remindmcp/internal/service"
	"remindmcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = `Tools for reading and managing Apple Reminders on this Mac.
Reads always reflect the live store; nothing is cached. Bulk operations are
best-effort and not atomic: check the per-item error list in their results.
If a tool reports denied access, grant it under System Settings > Privacy &
Security > Reminders and call the tool again.`

// New creates the MCP server with every tool registered over the given
// store.
func New(store service.Store) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"remind-mcp",
		Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(instructions),
	)

	deps := tools.Deps{
		Store:  store,
		Engine: query.New(store),
	}
	for _, reg := range tools.All(deps) {
		s.AddTool(reg.Def, mcpserver.ToolHandlerFunc(reg.Handle))
	}
	return s
}
