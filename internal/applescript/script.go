// Package applescript implements the service.Store interface by generating
// AppleScript, executing it through the osascript interpreter, and decoding
// the textual reply back into typed records.
package applescript

import (
	"fmt"
	"strings"
	"time"

	"remindmcp/internal/service"
)

// Escape neutralizes parameter content for interpolation into an AppleScript
// string literal. Backslashes are escaped before quotes so already-escaped
// input is not double-processed, and line terminators become the literal
// two-character sequence \n so embedded newlines cannot terminate a
// statement early.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

// quote renders s as a quoted AppleScript string literal.
func quote(s string) string {
	return `"` + Escape(s) + `"`
}

// prelude is the encode side of the wire format: a set of AppleScript
// handlers that assemble a strict JSON subset (array of flat objects with
// string/number/bool leaves, one escaping scheme). Dates are emitted through
// the ISO coercion rather than locale-dependent display text, and mkdate
// builds dates from numeric components so no locale-dependent date literal
// ever appears in generated scripts.
const prelude = `on replaceText(subject, oldText, newText)
	set prevDelims to AppleScript's text item delimiters
	set AppleScript's text item delimiters to oldText
	set parts to text items of subject
	set AppleScript's text item delimiters to newText
	set subject to parts as text
	set AppleScript's text item delimiters to prevDelims
	return subject
end replaceText

on jesc(subject)
	set subject to my replaceText(subject, "\\", "\\\\")
	set subject to my replaceText(subject, "\"", "\\\"")
	set subject to my replaceText(subject, return, "\\n")
	set subject to my replaceText(subject, linefeed, "\\n")
	set subject to my replaceText(subject, tab, "\\t")
	return subject
end jesc

on jstr(v)
	if v is missing value then return "\"\""
	return "\"" & my jesc(v as text) & "\""
end jstr

on jbool(v)
	if v is missing value then return "false"
	if v then return "true"
	return "false"
end jbool

on jnum(v)
	if v is missing value then return "0"
	return v as text
end jnum

on jdate(v)
	if v is missing value then return "\"\""
	try
		return "\"" & (v as «class isot» as string) & "\""
	on error
		return "\"" & my jesc(v as text) & "\""
	end try
end jdate

on mkdate(y, m, d, h, mi, s)
	set dt to current date
	set day of dt to 1
	set year of dt to y
	set month of dt to m
	set day of dt to d
	set time of dt to h * 3600 + mi * 60 + s
	return dt
end mkdate

on jreminder(r, theListName)
	tell application "Reminders"
		set rec to "{\"id\":" & my jstr(id of r) & ¬
			",\"name\":" & my jstr(name of r) & ¬
			",\"body\":" & my jstr(body of r) & ¬
			",\"completed\":" & my jbool(completed of r) & ¬
			",\"dueDate\":" & my jdate(due date of r) & ¬
			",\"priority\":" & my jnum(priority of r) & ¬
			",\"flagged\":" & my jbool(flagged of r) & ¬
			",\"list\":" & my jstr(theListName) & ¬
			",\"creationDate\":" & my jdate(creation date of r) & ¬
			",\"modificationDate\":" & my jdate(modification date of r) & "}"
	end tell
	return rec
end jreminder

on jlist(l)
	tell application "Reminders"
		set rec to "{\"id\":" & my jstr(id of l) & ¬
			",\"name\":" & my jstr(name of l) & ¬
			",\"itemCount\":" & my jnum(count of reminders of l) & "}"
	end tell
	return rec
end jlist
`

// listsScript enumerates every list with its derived item count.
func listsScript() string {
	return prelude + `
set out to "["
set sep to ""
tell application "Reminders"
	repeat with l in every list
		set out to out & sep & my jlist(l)
		set sep to ","
	end repeat
end tell
return out & "]"
`
}

// defaultListScript returns the store's default list.
func defaultListScript() string {
	return prelude + `
tell application "Reminders"
	return "[" & my jlist(default list) & "]"
end tell
`
}

// createListScript creates a list and echoes it back.
func createListScript(name string) string {
	return prelude + fmt.Sprintf(`
tell application "Reminders"
	set l to make new list with properties {name:%s}
	return "[" & my jlist(l) & "]"
end tell
`, quote(name))
}

// deleteListScript deletes a list by name. The host raises if no such list
// exists, which the executor surfaces as an execution failure.
func deleteListScript(name string) string {
	return fmt.Sprintf(`tell application "Reminders"
	delete list %s
end tell
return "ok"
`, quote(name))
}

// fetchRemindersScript enumerates reminders. listName "" scans every list;
// completed narrows the scan with a whose-clause when non-nil.
func fetchRemindersScript(listName string, completed *bool) string {
	source := "every list"
	if listName != "" {
		source = "{list " + quote(listName) + "}"
	}
	selector := "reminders of l"
	if completed != nil {
		selector = fmt.Sprintf("(reminders of l whose completed is %t)", *completed)
	}
	return prelude + fmt.Sprintf(`
set out to "["
set sep to ""
tell application "Reminders"
	repeat with l in %s
		set theListName to name of l
		repeat with r in %s
			set out to out & sep & my jreminder(r, theListName)
			set sep to ","
		end repeat
	end repeat
end tell
return out & "]"
`, source, selector)
}

// findReminderScript locates a reminder by opaque id and echoes its record.
// An unknown id raises, so operations on a deleted id fail rather than
// silently succeeding.
func findReminderScript(id string) string {
	q := quote(id)
	return prelude + fmt.Sprintf(`
tell application "Reminders"
	repeat with l in every list
		set hits to (reminders of l whose id is %s)
		if (count of hits) > 0 then
			return "[" & my jreminder(item 1 of hits, name of l) & "]"
		end if
	end repeat
end tell
error "reminder not found: " & %s
`, q, q)
}

// mutateReminderScript wraps a block of set/delete statements in the same
// find-by-id loop, returning the given acknowledgment string on success.
func mutateReminderScript(id, body, ack string) string {
	q := quote(id)
	return prelude + fmt.Sprintf(`
tell application "Reminders"
	repeat with l in every list
		set hits to (reminders of l whose id is %s)
		if (count of hits) > 0 then
			set r to item 1 of hits
%s
			return %s
		end if
	end repeat
end tell
error "reminder not found: " & %s
`, q, body, quote(ack), q)
}

// createReminderScript creates a reminder with the draft's initial
// properties and echoes the new record. Optional fields render only when
// set; an out-of-domain priority is silently skipped and the operation
// proceeds without it.
func createReminderScript(d service.ReminderDraft) string {
	var b strings.Builder
	if d.Body != "" {
		fmt.Fprintf(&b, "\t\tset body of r to %s\n", quote(d.Body))
	}
	if clause, ok := dueDateClause("r", d.DueDate); ok {
		b.WriteString("\t\t" + clause + "\n")
	}
	if d.Priority >= 0 && d.Priority <= 9 {
		fmt.Fprintf(&b, "\t\tset priority of r to %d\n", d.Priority)
	}
	if d.Flagged != nil {
		fmt.Fprintf(&b, "\t\tset flagged of r to %t\n", *d.Flagged)
	}

	target := "default list"
	if d.List != "" {
		target = "list " + quote(d.List)
	}
	return prelude + fmt.Sprintf(`
tell application "Reminders"
	set targetList to %s
	tell targetList
		set r to make new reminder with properties {name:%s}
	end tell
%s	return "[" & my jreminder(r, name of targetList) & "]"
end tell
`, target, quote(d.Name), b.String())
}

// updateReminderScript mutates the fields set in patch.
func updateReminderScript(id string, p service.ReminderPatch) string {
	var b strings.Builder
	if p.Name != nil {
		fmt.Fprintf(&b, "\t\t\tset name of r to %s\n", quote(*p.Name))
	}
	if p.Body != nil {
		fmt.Fprintf(&b, "\t\t\tset body of r to %s\n", quote(*p.Body))
	}
	if p.DueDate != nil {
		if *p.DueDate == "" {
			b.WriteString("\t\t\tset due date of r to missing value\n")
		} else if clause, ok := dueDateClause("r", *p.DueDate); ok {
			b.WriteString("\t\t\t" + clause + "\n")
		}
	}
	if p.Priority != nil && *p.Priority >= 0 && *p.Priority <= 9 {
		fmt.Fprintf(&b, "\t\t\tset priority of r to %d\n", *p.Priority)
	}
	if p.Flagged != nil {
		fmt.Fprintf(&b, "\t\t\tset flagged of r to %t\n", *p.Flagged)
	}
	return mutateReminderScript(id, strings.TrimRight(b.String(), "\n"), "updated")
}

// setCompletedScript marks a reminder completed or not. Re-applying the
// current state is a host-level no-op, so the call still acknowledges.
func setCompletedScript(id string, completed bool) string {
	body := fmt.Sprintf("\t\t\tset completed of r to %t", completed)
	ack := "reopened"
	if completed {
		ack = "completed"
	}
	return mutateReminderScript(id, body, ack)
}

// deleteReminderScript removes a reminder by id.
func deleteReminderScript(id string) string {
	return mutateReminderScript(id, "\t\t\tdelete r", "deleted")
}

// openAppScript activates the Reminders application. There is no native
// verb to navigate to a specific reminder.
func openAppScript() string {
	return `tell application "Reminders" to activate
return "ok"
`
}

// inputDateLayouts are the accepted shapes for caller-supplied due dates.
var inputDateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// dueDateClause renders a due-date assignment through the mkdate handler,
// which constructs the date from numeric components. An unparseable value
// is skipped, matching the renderer's never-fail contract.
func dueDateClause(target, iso string) (string, bool) {
	t, ok := parseInputDate(iso)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("set due date of %s to my mkdate(%d, %d, %d, %d, %d, %d)",
		target, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()), true
}

func parseInputDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}
