package applescript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"remindmcp/internal/service"
)

// scriptedRunner returns canned replies and records the scripts it ran.
type scriptedRunner struct {
	reply   string
	err     error
	scripts []string
}

func (s *scriptedRunner) Run(ctx context.Context, script string) (string, error) {
	s.scripts = append(s.scripts, script)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestClientLists(t *testing.T) {
	run := &scriptedRunner{reply: `[{"id":"l1","name":"Reminders","itemCount":2},{"id":"l2","name":"Work","itemCount":0}]`}
	c := newWithRunner(run)

	lists, err := c.Lists(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].Name != "Reminders" || lists[0].ItemCount != 2 {
		t.Errorf("unexpected first list: %+v", lists[0])
	}
}

func TestClientRemindersNormalizes(t *testing.T) {
	run := &scriptedRunner{reply: `[{"id":"r1","name":"Buy milk","body":"missing value","completed":false,"dueDate":"missing value","priority":0,"flagged":false,"list":"Reminders"}]`}
	c := newWithRunner(run)

	rs, err := c.Reminders(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(rs))
	}
	r := rs[0]
	if r.Body != "" || r.DueDate != "" {
		t.Errorf("sentinels not normalized: %+v", r)
	}
	if r.PriorityName != "none" {
		t.Errorf("PriorityName = %q", r.PriorityName)
	}
}

// When the create reply does not decode as a record, the raw scalar is
// taken as the new id. Degraded success, not an error.
func TestClientCreateReminderScalarFallback(t *testing.T) {
	run := &scriptedRunner{reply: "x-apple-reminder://NEW-1"}
	c := newWithRunner(run)

	r, err := c.CreateReminder(context.Background(), service.ReminderDraft{Name: "Task", Priority: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "x-apple-reminder://NEW-1" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.Name != "Task" {
		t.Errorf("Name = %q", r.Name)
	}
}

func TestClientErrorsPropagate(t *testing.T) {
	wantErr := &service.ExecError{Diagnostic: "reminder not found: dead"}
	run := &scriptedRunner{err: wantErr}
	c := newWithRunner(run)

	if err := c.SetCompleted(context.Background(), "dead", true); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if _, err := c.Reminder(context.Background(), "dead"); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestClientRunsExpectedScripts(t *testing.T) {
	run := &scriptedRunner{reply: "ok"}
	c := newWithRunner(run)

	_ = c.DeleteReminder(context.Background(), "r1")
	_ = c.OpenApp(context.Background())

	if len(run.scripts) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(run.scripts))
	}
	if !strings.Contains(run.scripts[0], "delete r") {
		t.Errorf("first script is not a delete:\n%s", run.scripts[0])
	}
	if !strings.Contains(run.scripts[1], "activate") {
		t.Errorf("second script is not an activate:\n%s", run.scripts[1])
	}
}
