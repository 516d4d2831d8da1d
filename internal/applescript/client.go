package applescript

import (
	"context"
	"fmt"

	"remindmcp/internal/service"
)

// runner is the execution seam: satisfied by *Runner, stubbed in tests.
type runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Client implements service.Store by rendering AppleScript, executing it
// through a Runner, decoding the reply, and normalizing the records.
type Client struct {
	run runner
}

// New creates a Client backed by the given Runner.
func New(r *Runner) *Client {
	return &Client{run: r}
}

func newWithRunner(r runner) *Client {
	return &Client{run: r}
}

// Lists returns all reminder lists in native enumeration order.
func (c *Client) Lists(ctx context.Context) ([]service.List, error) {
	res, err := c.exec(ctx, listsScript())
	if err != nil {
		return nil, err
	}
	lists := make([]service.List, 0, len(res.Records))
	for _, rec := range res.Records {
		lists = append(lists, normalizeList(rec))
	}
	return lists, nil
}

// DefaultList returns the store's default reminder list.
func (c *Client) DefaultList(ctx context.Context) (service.List, error) {
	res, err := c.exec(ctx, defaultListScript())
	if err != nil {
		return service.List{}, err
	}
	if len(res.Records) == 0 {
		return service.List{}, unexpectedReply(res)
	}
	return normalizeList(res.Records[0]), nil
}

// CreateList creates a reminder list and returns it.
func (c *Client) CreateList(ctx context.Context, name string) (service.List, error) {
	res, err := c.exec(ctx, createListScript(name))
	if err != nil {
		return service.List{}, err
	}
	if len(res.Records) == 0 {
		// degraded decode: the list exists, carry what we know
		return service.List{ID: res.Scalar, Name: name}, nil
	}
	return normalizeList(res.Records[0]), nil
}

// DeleteList deletes a reminder list by name.
func (c *Client) DeleteList(ctx context.Context, name string) error {
	_, err := c.exec(ctx, deleteListScript(name))
	return err
}

// Reminders enumerates reminders; listName "" scans every list.
func (c *Client) Reminders(ctx context.Context, listName string, completed *bool) ([]service.Reminder, error) {
	res, err := c.exec(ctx, fetchRemindersScript(listName, completed))
	if err != nil {
		return nil, err
	}
	reminders := make([]service.Reminder, 0, len(res.Records))
	for _, rec := range res.Records {
		reminders = append(reminders, normalizeReminder(rec))
	}
	return reminders, nil
}

// Reminder returns a single reminder by id. An unknown or dead id fails at
// the host and surfaces as an execution error.
func (c *Client) Reminder(ctx context.Context, id string) (service.Reminder, error) {
	res, err := c.exec(ctx, findReminderScript(id))
	if err != nil {
		return service.Reminder{}, err
	}
	if len(res.Records) == 0 {
		return service.Reminder{}, unexpectedReply(res)
	}
	return normalizeReminder(res.Records[0]), nil
}

// CreateReminder creates a reminder and returns the stored record. When the
// reply does not decode as a record the raw scalar is taken as the new id:
// a degraded success, not an error.
func (c *Client) CreateReminder(ctx context.Context, draft service.ReminderDraft) (service.Reminder, error) {
	res, err := c.exec(ctx, createReminderScript(draft))
	if err != nil {
		return service.Reminder{}, err
	}
	if len(res.Records) == 0 {
		priority := draft.Priority
		if priority < 0 || priority > 9 {
			priority = 0
		}
		flagged := draft.Flagged != nil && *draft.Flagged
		return service.Reminder{
			ID:           res.Scalar,
			Name:         draft.Name,
			Body:         draft.Body,
			Priority:     priority,
			PriorityName: service.PriorityName(priority),
			Flagged:      flagged,
			List:         draft.List,
		}, nil
	}
	return normalizeReminder(res.Records[0]), nil
}

// UpdateReminder mutates the fields set in patch.
func (c *Client) UpdateReminder(ctx context.Context, id string, patch service.ReminderPatch) error {
	_, err := c.exec(ctx, updateReminderScript(id, patch))
	return err
}

// SetCompleted marks a reminder completed or not. Re-applying the current
// state acknowledges without error.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := c.exec(ctx, setCompletedScript(id, completed))
	return err
}

// DeleteReminder deletes a reminder by id.
func (c *Client) DeleteReminder(ctx context.Context, id string) error {
	_, err := c.exec(ctx, deleteReminderScript(id))
	return err
}

// OpenApp activates the Reminders application.
func (c *Client) OpenApp(ctx context.Context) error {
	_, err := c.exec(ctx, openAppScript())
	return err
}

func (c *Client) exec(ctx context.Context, script string) (Result, error) {
	out, err := c.run.Run(ctx, script)
	if err != nil {
		return Result{}, err
	}
	return Decode(out), nil
}

func unexpectedReply(res Result) error {
	scalar := res.Scalar
	if len(scalar) > 120 {
		scalar = scalar[:120] + "..."
	}
	return &service.ExecError{Diagnostic: fmt.Sprintf("unexpected reply from Reminders: %q", scalar)}
}
