package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"remindmcp/internal/service"
)

func createReminderTool(deps Deps) Registration {
	def := mcp.NewTool("create_reminder",
		mcp.WithDescription("Create a reminder in Apple Reminders. Returns the created reminder including its id."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Reminder name")),
		mcp.WithString("list", mcp.Description("Target list name; the default list when omitted")),
		mcp.WithString("body", mcp.Description("Note text attached to the reminder")),
		mcp.WithString("dueDate", mcp.Description("Due date, ISO-8601 (e.g. 2025-09-01T09:00:00)")),
		mcp.WithString("priority", mcp.Description("Priority: none, high, medium, low, or a numeric code 0-9")),
		mcp.WithBoolean("flagged", mcp.Description("Flag the reminder")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := requireString(req, "name")
		if err != nil {
			return errorResult(err)
		}
		args := req.GetArguments()
		draft := service.ReminderDraft{
			Name:     name,
			List:     req.GetString("list", ""),
			Body:     req.GetString("body", ""),
			DueDate:  req.GetString("dueDate", ""),
			Priority: -1,
		}
		if arg, ok := priorityArg(args); ok {
			draft.Priority = arg.Code()
		}
		if flagged, ok := args["flagged"].(bool); ok {
			draft.Flagged = &flagged
		}
		reminder, err := deps.Store.CreateReminder(ctx, draft)
		if err != nil {
			return mutationResult(err, nil)
		}
		return mutationResult(nil, map[string]any{"reminder": reminder})
	}}
}

func getReminderTool(deps Deps) Registration {
	def := mcp.NewTool("get_reminder",
		mcp.WithDescription("Read a single reminder by its id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id from a prior read or create")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireString(req, "id")
		if err != nil {
			return errorResult(err)
		}
		reminder, err := deps.Store.Reminder(ctx, id)
		if err != nil {
			return errorResult(err)
		}
		return textResult(reminder)
	}}
}

func updateReminderTool(deps Deps) Registration {
	def := mcp.NewTool("update_reminder",
		mcp.WithDescription("Update fields of an existing reminder by id. Omitted fields are left unchanged; an empty dueDate clears the due date. Reminders cannot be moved between lists."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("body", mcp.Description("New note text")),
		mcp.WithString("dueDate", mcp.Description("New due date, ISO-8601; empty string clears it")),
		mcp.WithString("priority", mcp.Description("Priority: none, high, medium, low, or a numeric code 0-9")),
		mcp.WithBoolean("flagged", mcp.Description("New flagged state")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireString(req, "id")
		if err != nil {
			return errorResult(err)
		}
		args := req.GetArguments()
		var patch service.ReminderPatch
		if v, ok := args["name"].(string); ok {
			patch.Name = &v
		}
		if v, ok := args["body"].(string); ok {
			patch.Body = &v
		}
		if v, ok := args["dueDate"].(string); ok {
			patch.DueDate = &v
		}
		if arg, ok := priorityArg(args); ok {
			code := arg.Code()
			patch.Priority = &code
		}
		if v, ok := args["flagged"].(bool); ok {
			patch.Flagged = &v
		}
		err = deps.Store.UpdateReminder(ctx, id, patch)
		return mutationResult(err, map[string]any{"id": id})
	}}
}

func completeReminderTool(deps Deps) Registration {
	def := mcp.NewTool("complete_reminder",
		mcp.WithDescription("Mark a reminder as completed. Completing an already-completed reminder succeeds without change."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id")),
	)
	return Registration{Def: def, Handle: setCompletedHandler(deps, true)}
}

func uncompleteReminderTool(deps Deps) Registration {
	def := mcp.NewTool("uncomplete_reminder",
		mcp.WithDescription("Mark a completed reminder as not completed. Uncompleting an incomplete reminder succeeds without change."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id")),
	)
	return Registration{Def: def, Handle: setCompletedHandler(deps, false)}
}

func setCompletedHandler(deps Deps, completed bool) Handler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireString(req, "id")
		if err != nil {
			return errorResult(err)
		}
		err = deps.Store.SetCompleted(ctx, id, completed)
		return mutationResult(err, map[string]any{"id": id, "completed": completed})
	}
}

func deleteReminderTool(deps Deps) Registration {
	def := mcp.NewTool("delete_reminder",
		mcp.WithDescription("Delete a reminder by id. The id is invalid immediately afterwards."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireString(req, "id")
		if err != nil {
			return errorResult(err)
		}
		err = deps.Store.DeleteReminder(ctx, id)
		return mutationResult(err, map[string]any{"id": id})
	}}
}

func openReminderTool(deps Deps) Registration {
	def := mcp.NewTool("open_reminder",
		mcp.WithDescription("Bring the Reminders app to the foreground. The app offers no way to navigate to a specific reminder, so this activates the app only."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque reminder id")),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireString(req, "id")
		if err != nil {
			return errorResult(err)
		}
		err = deps.Store.OpenApp(ctx)
		return mutationResult(err, map[string]any{"id": id})
	}}
}
