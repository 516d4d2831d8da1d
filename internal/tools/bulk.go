package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"remindmcp/internal/batch"
	"remindmcp/internal/service"
)

func bulkCreateRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("bulk_create_reminders",
		mcp.WithDescription("Create several reminders in one call. Items are processed in order and independently; this is not a transaction, so some items can succeed while others fail."),
		mcp.WithArray("items", mcp.Required(),
			mcp.Description("Reminder descriptors: {name (required), list, body, dueDate, priority, flagged}"),
			mcp.Items(map[string]any{"type": "object"}),
		),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, ok := req.GetArguments()["items"].([]any)
		if !ok || len(items) == 0 {
			return errorResult(&service.ValidationError{Field: "items"})
		}
		drafts := make([]service.ReminderDraft, 0, len(items))
		for _, item := range items {
			drafts = append(drafts, draftFrom(item))
		}
		res := batch.CreateAll(ctx, deps.Store, drafts)
		return textResult(map[string]any{
			"created": res.Succeeded,
			"errors":  res.Errors,
			"success": res.Success,
		})
	}}
}

func bulkCompleteRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("bulk_complete_reminders",
		mcp.WithDescription("Mark several reminders completed in one call. Not a transaction; failures are reported per item and do not stop the rest."),
		mcp.WithArray("ids", mcp.Required(),
			mcp.Description("Opaque reminder ids"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids := stringSlice(req.GetArguments()["ids"])
		if len(ids) == 0 {
			return errorResult(&service.ValidationError{Field: "ids"})
		}
		res := batch.CompleteAll(ctx, deps.Store, ids)
		return textResult(map[string]any{
			"completed": res.Succeeded,
			"errors":    res.Errors,
			"success":   res.Success,
		})
	}}
}

func bulkDeleteRemindersTool(deps Deps) Registration {
	def := mcp.NewTool("bulk_delete_reminders",
		mcp.WithDescription("Delete several reminders in one call. Not a transaction; failures are reported per item and do not stop the rest."),
		mcp.WithArray("ids", mcp.Required(),
			mcp.Description("Opaque reminder ids"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	return Registration{Def: def, Handle: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids := stringSlice(req.GetArguments()["ids"])
		if len(ids) == 0 {
			return errorResult(&service.ValidationError{Field: "ids"})
		}
		res := batch.DeleteAll(ctx, deps.Store, ids)
		return textResult(map[string]any{
			"deleted": res.Succeeded,
			"errors":  res.Errors,
			"success": res.Success,
		})
	}}
}

// draftFrom coerces one bulk item descriptor. Missing or mistyped fields
// fall back to their zero values; name validation happens item-level in the
// batch coordinator.
func draftFrom(item any) service.ReminderDraft {
	obj, ok := item.(map[string]any)
	if !ok {
		return service.ReminderDraft{Priority: -1}
	}
	draft := service.ReminderDraft{Priority: -1}
	if v, ok := obj["name"].(string); ok {
		draft.Name = v
	}
	if v, ok := obj["list"].(string); ok {
		draft.List = v
	}
	if v, ok := obj["body"].(string); ok {
		draft.Body = v
	}
	if v, ok := obj["dueDate"].(string); ok {
		draft.DueDate = v
	}
	if arg, ok := priorityArg(obj); ok {
		draft.Priority = arg.Code()
	}
	if v, ok := obj["flagged"].(bool); ok {
		draft.Flagged = &v
	}
	return draft
}
