// Package service defines the backend-agnostic interface for reminder
// operations and the external data model they trade in.
package service

import "strings"

// List represents a reminder list.
type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
}

// Reminder represents a single reminder item as seen by callers.
//
// Timestamps are ISO-8601 (RFC 3339) strings, or "" when the native store
// has no value. PriorityName is derived from Priority and never stored.
type Reminder struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Body             string `json:"body"`
	Completed        bool   `json:"completed"`
	DueDate          string `json:"dueDate,omitempty"`
	Priority         int    `json:"priority"`
	PriorityName     string `json:"priorityName"`
	Flagged          bool   `json:"flagged"`
	List             string `json:"list"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// ReminderDraft holds the initial properties for a new reminder.
// Priority -1 means "not set"; values outside [0,9] are silently skipped
// by the renderer rather than rejected.
type ReminderDraft struct {
	Name     string
	List     string
	Body     string
	DueDate  string
	Priority int
	Flagged  *bool
}

// ReminderPatch holds field updates for an existing reminder.
// Nil pointers mean "leave unchanged". An empty *DueDate clears the due date.
type ReminderPatch struct {
	Name     *string
	Body     *string
	DueDate  *string
	Priority *int
	Flagged  *bool
}

// Priority codes. The store keeps only the numeric code; the symbolic view
// is a pure projection.
const (
	PriorityNone   = 0
	PriorityHigh   = 1
	PriorityMedium = 5
	PriorityLow    = 9
)

// PriorityName returns the symbolic projection of a numeric priority code:
// 0 none, 1-4 high, 5 medium, 6-9 low. Out-of-range codes project to none.
func PriorityName(code int) string {
	switch {
	case code >= 1 && code <= 4:
		return "high"
	case code == 5:
		return "medium"
	case code >= 6 && code <= 9:
		return "low"
	default:
		return "none"
	}
}

// PriorityCode maps a symbolic priority name to its representative numeric
// code. Matching is case-insensitive; unrecognized names map to none (0).
func PriorityCode(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return PriorityNone
	}
}

// PriorityArg is the boundary representation of a priority parameter, which
// callers may supply either as a numeric code or a symbolic name. It is
// resolved to a single canonical numeric code at the boundary and never
// carried deeper into the system.
type PriorityArg struct {
	Numeric  int
	Symbolic string
	IsNum    bool
}

// NumericPriority wraps a numeric priority code.
func NumericPriority(code int) PriorityArg {
	return PriorityArg{Numeric: code, IsNum: true}
}

// SymbolicPriority wraps a symbolic priority name.
func SymbolicPriority(name string) PriorityArg {
	return PriorityArg{Symbolic: name}
}

// Code resolves the argument to its canonical numeric code.
func (a PriorityArg) Code() int {
	if a.IsNum {
		return a.Numeric
	}
	return PriorityCode(a.Symbolic)
}
