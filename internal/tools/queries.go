package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"remindmcp/internal/service"
)

func searchRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("search_reminders",
		mcp.WithDescription("Case-insensitive substring search over reminder names and notes, in one list or across every list. Results appear in store order, not ranked."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to search for")),
		mcp.WithString("list", mcp.Description("Restrict the search to one list")),
		mcp.WithNumber("limit", mcp.Description("Maximum results (default 50)")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := requireString(req, "query")
		if err != nil {
			return errorResult(err)
		}
		reminders, err := deps.Engine.Search(ctx, q, req.GetString("list", ""), req.GetInt("limit", 0))
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}

func dueTodayTool(deps Deps) Registration {
	def := mcp.NewTool("due_today",
		mcp.WithDescription("Incomplete reminders due during the current local day, across every list."),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminders, err := deps.Engine.DueToday(ctx)
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}

func overdueTool(deps Deps) Registration {
	def := mcp.NewTool("overdue",
		mcp.WithDescription("Incomplete reminders whose due date has passed, across every list."),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminders, err := deps.Engine.Overdue(ctx)
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}

func upcomingRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("upcoming_reminders",
		mcp.WithDescription("Incomplete reminders due between now and the given number of days from now (inclusive), sorted by due date."),
		mcp.WithNumber("days", mcp.Required(), mcp.Description("Window size in days")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days := req.GetInt("days", 0)
		if days <= 0 {
			return errorResult(&service.ValidationError{Field: "days"})
		}
		reminders, err := deps.Engine.Upcoming(ctx, days)
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}

func flaggedRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("flagged_reminders",
		mcp.WithDescription("Incomplete flagged reminders across every list."),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reminders, err := deps.Engine.Flagged(ctx)
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}
