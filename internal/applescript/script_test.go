package applescript

import (
	"strings"
	"testing"
	"time"

	"remindmcp/internal/service"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		// backslash escaping runs first, so a pre-escaped quote is not
		// double-processed into a live quote
		{`\"`, `\\\"`},
		{"line1\nline2", `line1\nline2`},
		{"line1\r\nline2", `line1\nline2`},
		{"line1\rline2", `line1\nline2`},
		{"col1\tcol2", `col1\tcol2`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// An embedded newline must not be able to terminate a statement early.
func TestEscapeNeutralizesLineTerminator(t *testing.T) {
	got := Escape("innocent\ndelete every reminder")
	if strings.ContainsAny(got, "\r\n") {
		t.Errorf("escaped text still contains a raw line terminator: %q", got)
	}
}

func TestCreateReminderScriptEscapesName(t *testing.T) {
	draft := service.ReminderDraft{Name: `buy "milk" \ eggs`, Priority: -1}
	script := createReminderScript(draft)

	if !strings.Contains(script, `{name:"buy \"milk\" \\ eggs"}`) {
		t.Errorf("script does not contain the escaped name:\n%s", script)
	}
	if strings.Contains(script, "set priority of r") {
		t.Error("unset priority should not render a priority clause")
	}
}

func TestCreateReminderScriptOptionalFields(t *testing.T) {
	flagged := true
	draft := service.ReminderDraft{
		Name:     "task",
		List:     "Work",
		Body:     "notes",
		DueDate:  "2025-09-01T09:30:00",
		Priority: 5,
		Flagged:  &flagged,
	}
	script := createReminderScript(draft)

	for _, want := range []string{
		`list "Work"`,
		`set body of r to "notes"`,
		`set due date of r to my mkdate(2025, 9, 1, 9, 30, 0)`,
		`set priority of r to 5`,
		`set flagged of r to true`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}

// Out-of-domain numeric input is silently dropped; the operation proceeds
// without setting that field.
func TestCreateReminderScriptSkipsOutOfDomainPriority(t *testing.T) {
	for _, priority := range []int{-1, 10, 99} {
		script := createReminderScript(service.ReminderDraft{Name: "x", Priority: priority})
		if strings.Contains(script, "set priority of r") {
			t.Errorf("priority %d should be skipped, got clause in:\n%s", priority, script)
		}
	}
}

func TestCreateReminderScriptSkipsBadDueDate(t *testing.T) {
	script := createReminderScript(service.ReminderDraft{Name: "x", DueDate: "soonish", Priority: -1})
	if strings.Contains(script, "mkdate") {
		t.Errorf("unparseable due date should be skipped:\n%s", script)
	}
}

func TestFetchRemindersScript(t *testing.T) {
	all := fetchRemindersScript("", nil)
	if !strings.Contains(all, "every list") {
		t.Error("all-list scan should enumerate every list")
	}
	if strings.Contains(all, "whose completed") {
		t.Error("nil filter should not render a whose-clause")
	}

	incomplete := false
	one := fetchRemindersScript("Groceries", &incomplete)
	if !strings.Contains(one, `list "Groceries"`) {
		t.Error("named scan should target the named list")
	}
	if !strings.Contains(one, "whose completed is false") {
		t.Error("completion filter should render a whose-clause")
	}
}

func TestUpdateReminderScriptClearsDueDate(t *testing.T) {
	empty := ""
	script := updateReminderScript("abc", service.ReminderPatch{DueDate: &empty})
	if !strings.Contains(script, "set due date of r to missing value") {
		t.Errorf("empty due date should clear the field:\n%s", script)
	}
}

func TestMutationScriptsFailOnUnknownID(t *testing.T) {
	for name, script := range map[string]string{
		"complete": setCompletedScript("dead-id", true),
		"delete":   deleteReminderScript("dead-id"),
		"find":     findReminderScript("dead-id"),
	} {
		if !strings.Contains(script, `error "reminder not found: " & "dead-id"`) {
			t.Errorf("%s script should raise on unknown id:\n%s", name, script)
		}
	}
}

func TestParseInputDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-09-01T09:30:00", true, time.Date(2025, 9, 1, 9, 30, 0, 0, time.Local)},
		{"2025-09-01 09:30:00", true, time.Date(2025, 9, 1, 9, 30, 0, 0, time.Local)},
		{"2025-09-01", true, time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)},
		{"", false, time.Time{}},
		{"next tuesday", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := parseInputDate(tt.in)
		if ok != tt.ok {
			t.Errorf("parseInputDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("parseInputDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
