package applescript

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	// sentinel and empty normalize to absent
	if got := normalizeTimestamp(""); got != "" {
		t.Errorf("empty = %q", got)
	}
	if got := normalizeTimestamp("missing value"); got != "" {
		t.Errorf("sentinel = %q", got)
	}
	// unparseable values normalize to absent rather than failing the record
	if got := normalizeTimestamp("Donnerstag, 3. Juni 2024"); got != "" {
		t.Errorf("unparseable = %q", got)
	}
}

func TestNormalizeTimestampISO(t *testing.T) {
	got := normalizeTimestamp("2024-06-03T10:00:00")
	want := time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local).Format(time.RFC3339)
	if got != want {
		t.Errorf("iso = %q, want %q", got, want)
	}
}

func TestNormalizeTimestampLocaleDrift(t *testing.T) {
	tests := []string{
		"Monday, June 3, 2024 at 10:00:00 AM",
		"June 3, 2024 at 10:00:00 AM",
		"6/3/2024, 10:00:00 AM",
	}
	want := time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local).Format(time.RFC3339)
	for _, in := range tests {
		if got := normalizeTimestamp(in); got != want {
			t.Errorf("normalizeTimestamp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeReminderDefaults(t *testing.T) {
	// absent optional fields default so consumers never observe an
	// undefined field
	r := normalizeReminder(Record{"id": "r1", "name": "Task"})
	if r.Body != "" || r.Flagged || r.Completed || r.Priority != 0 {
		t.Errorf("defaults not applied: %+v", r)
	}
	if r.PriorityName != "none" {
		t.Errorf("PriorityName = %q, want none", r.PriorityName)
	}
	if r.DueDate != "" {
		t.Errorf("DueDate = %q, want empty", r.DueDate)
	}
}

func TestNormalizeReminderPriorityProjection(t *testing.T) {
	r := normalizeReminder(Record{"id": "r1", "name": "Task", "priority": json.Number("5")})
	if r.Priority != 5 || r.PriorityName != "medium" {
		t.Errorf("priority = %d/%q", r.Priority, r.PriorityName)
	}

	// out-of-range codes clamp into the domain
	r = normalizeReminder(Record{"id": "r1", "name": "Task", "priority": json.Number("42")})
	if r.Priority != 9 || r.PriorityName != "low" {
		t.Errorf("clamped priority = %d/%q", r.Priority, r.PriorityName)
	}
}

// A bad timestamp in one field must not fail the rest of the record.
func TestNormalizeReminderBadTimestamp(t *testing.T) {
	r := normalizeReminder(Record{
		"id":      "r1",
		"name":    "Task",
		"dueDate": "garbage",
	})
	if r.DueDate != "" {
		t.Errorf("DueDate = %q, want empty", r.DueDate)
	}
	if r.Name != "Task" {
		t.Errorf("Name = %q", r.Name)
	}
}

func TestNormalizeReminderSentinelBody(t *testing.T) {
	r := normalizeReminder(Record{"id": "r1", "name": "Task", "body": "missing value"})
	if r.Body != "" {
		t.Errorf("sentinel body = %q, want empty", r.Body)
	}
}

func TestNormalizeList(t *testing.T) {
	l := normalizeList(Record{"id": "l1", "name": "Groceries", "itemCount": json.Number("3")})
	if l.ID != "l1" || l.Name != "Groceries" || l.ItemCount != 3 {
		t.Errorf("unexpected list: %+v", l)
	}

	l = normalizeList(Record{"id": "l1", "name": "Empty", "itemCount": json.Number("-1")})
	if l.ItemCount != 0 {
		t.Errorf("negative count should clamp to 0, got %d", l.ItemCount)
	}
}
