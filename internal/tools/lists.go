package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"remindmcp/internal/service"
)

func listRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("list_reminders",
		mcp.WithDescription("List reminders in one list (the default list when omitted), optionally filtered by completion state."),
		mcp.WithString("list", mcp.Description("List name; the default list when omitted")),
		mcp.WithBoolean("completed", mcp.Description("Only completed (true) or only incomplete (false) reminders; both when omitted")),
		mcp.WithNumber("limit", mcp.Description("Maximum results (default 100)")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		var completed *bool
		if v, ok := args["completed"].(bool); ok {
			completed = &v
		}
		reminders, err := deps.Engine.ListReminders(ctx, req.GetString("list", ""), completed, req.GetInt("limit", 0))
		if err != nil {
			return errorResult(err)
		}
		return textResult(remindersPayload(reminders))
	}}
}

func listReminderListsTool(deps Deps) Registration {
	def := mcp.NewTool("list_reminder_lists",
		mcp.WithDescription("Enumerate all reminder lists with their item counts."),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lists, err := deps.Store.Lists(ctx)
		if err != nil {
			return errorResult(err)
		}
		if lists == nil {
			lists = []service.List{}
		}
		return textResult(map[string]any{"lists": lists, "count": len(lists)})
	}}
}

func createReminderListTool(deps Deps) Registration {
	def := mcp.NewTool("create_reminder_list",
		mcp.WithDescription("Create a new reminder list."),
		mcp.WithString("name", mcp.Required(), mcp.Description("List name (unique per store)")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := requireString(req, "name")
		if err != nil {
			return errorResult(err)
		}
		list, err := deps.Store.CreateList(ctx, name)
		if err != nil {
			return mutationResult(err, nil)
		}
		return mutationResult(nil, map[string]any{"list": list})
	}}
}

func deleteReminderListTool(deps Deps) Registration {
	def := mcp.NewTool("delete_reminder_list",
		mcp.WithDescription("Delete a reminder list by name, including its reminders."),
		mcp.WithString("name", mcp.Required(), mcp.Description("List name")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := requireString(req, "name")
		if err != nil {
			return errorResult(err)
		}
		err = deps.Store.DeleteList(ctx, name)
		return mutationResult(err, map[string]any{"name": name})
	}}
}
