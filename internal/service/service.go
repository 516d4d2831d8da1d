package service

import "context"

// Store defines the interface for native reminder store operations.
// All osascript invocations go through this interface; tools and queries
// never build AppleScript directly.
//
// The native store exclusively owns the authoritative list/reminder graph.
// Implementations hold no durable state: every read is a fresh query, and
// consistency beyond one call is not guaranteed.
type Store interface {
	// Lists returns all reminder lists in native enumeration order.
	Lists(ctx context.Context) ([]List, error)

	// DefaultList returns the store's default reminder list.
	DefaultList(ctx context.Context) (List, error)

	// CreateList creates a new reminder list and returns it.
	CreateList(ctx context.Context, name string) (List, error)

	// DeleteList deletes a reminder list by name.
	DeleteList(ctx context.Context, name string) error

	// Reminders returns reminders in native enumeration order.
	// listName selects one list; "" scans every list. completed filters by
	// completion state when non-nil. No cap is applied here; callers
	// truncate.
	Reminders(ctx context.Context, listName string, completed *bool) ([]Reminder, error)

	// Reminder returns a single reminder by its opaque id.
	// A dead or unknown id is an error, never a silent zero value.
	Reminder(ctx context.Context, id string) (Reminder, error)

	// CreateReminder creates a reminder and returns it with its new id.
	CreateReminder(ctx context.Context, draft ReminderDraft) (Reminder, error)

	// UpdateReminder mutates the fields set in patch on the reminder with
	// the given id.
	UpdateReminder(ctx context.Context, id string, patch ReminderPatch) error

	// SetCompleted marks a reminder completed or not. Setting the state it
	// already has is a successful no-op.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// DeleteReminder deletes a reminder by id. The id is invalid
	// immediately; later operations on it fail.
	DeleteReminder(ctx context.Context, id string) error

	// OpenApp brings the native Reminders application to the foreground.
	// There is no native verb to navigate to a specific item.
	OpenApp(ctx context.Context) error
}
