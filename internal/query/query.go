// Package query composes list, search, and date-window predicates over the
// Store. Every cross-list query is a full scan of every list's reminders;
// the native store is local and small.
package query

import (
	"context"
	"sort"
	"strings"
	"time"

	"remindmcp/internal/service"
)

const (
	// DefaultListLimit caps list-scoped fetches.
	DefaultListLimit = 100

	// DefaultSearchLimit caps free-text search results.
	DefaultSearchLimit = 50
)

// Engine runs predicate queries against a Store. Now is injectable for
// deterministic boundary tests and defaults to time.Now.
type Engine struct {
	store service.Store
	Now   func() time.Time
}

// New creates an Engine over the given store.
func New(store service.Store) *Engine {
	return &Engine{store: store, Now: time.Now}
}

// ListReminders fetches one list (the default list when listName is empty)
// with an optional completion filter. The cap truncates the native result
// set; it never samples.
func (e *Engine) ListReminders(ctx context.Context, listName string, completed *bool, limit int) ([]service.Reminder, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if listName == "" {
		dl, err := e.store.DefaultList(ctx)
		if err != nil {
			return nil, err
		}
		listName = dl.Name
	}
	reminders, err := e.store.Reminders(ctx, listName, completed)
	if err != nil {
		return nil, err
	}
	if len(reminders) > limit {
		reminders = reminders[:limit]
	}
	return reminders, nil
}

// Search matches the query as a case-insensitive substring of name or body
// across one named list or all lists. Case folding is ASCII-only. The scan
// stops filling results at the cap but still proceeds list by list, so
// results are discovered in store enumeration order, not ranked. The outer
// list loop keeps going even after an earlier list filled the cap.
func (e *Engine) Search(ctx context.Context, q, listName string, limit int) ([]service.Reminder, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	needle := foldASCII(q)

	var names []string
	if listName != "" {
		names = []string{listName}
	} else {
		lists, err := e.store.Lists(ctx)
		if err != nil {
			return nil, err
		}
		for _, l := range lists {
			names = append(names, l.Name)
		}
	}

	results := make([]service.Reminder, 0, limit)
	for _, name := range names {
		reminders, err := e.store.Reminders(ctx, name, nil)
		if err != nil {
			return nil, err
		}
		for _, r := range reminders {
			if len(results) >= limit {
				break
			}
			if strings.Contains(foldASCII(r.Name), needle) ||
				strings.Contains(foldASCII(r.Body), needle) {
				results = append(results, r)
			}
		}
	}
	return results, nil
}

// DueToday returns incomplete reminders due within the current local day:
// [startOfLocalDay, startOfLocalDay + 24h). Uncapped.
func (e *Engine) DueToday(ctx context.Context) ([]service.Reminder, error) {
	now := e.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	return e.dueWindow(ctx, func(due time.Time) bool {
		return !due.Before(start) && due.Before(end)
	})
}

// Overdue returns incomplete reminders due strictly before now. Uncapped.
func (e *Engine) Overdue(ctx context.Context) ([]service.Reminder, error) {
	now := e.Now()
	return e.dueWindow(ctx, func(due time.Time) bool {
		return due.Before(now)
	})
}

// Upcoming returns incomplete reminders due in [now, now + days*24h],
// inclusive of both ends, sorted ascending by due instant. This is the only
// query sorted after the scan; all others preserve enumeration order.
func (e *Engine) Upcoming(ctx context.Context, days int) ([]service.Reminder, error) {
	now := e.Now()
	end := now.Add(time.Duration(days) * 24 * time.Hour)
	results, err := e.dueWindow(ctx, func(due time.Time) bool {
		return !due.Before(now) && !due.After(end)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DueDate < results[j].DueDate
	})
	return results, nil
}

// Flagged returns incomplete flagged reminders across all lists, with no
// date filter.
func (e *Engine) Flagged(ctx context.Context) ([]service.Reminder, error) {
	incomplete := false
	reminders, err := e.store.Reminders(ctx, "", &incomplete)
	if err != nil {
		return nil, err
	}
	results := make([]service.Reminder, 0)
	for _, r := range reminders {
		if r.Flagged {
			results = append(results, r)
		}
	}
	return results, nil
}

// dueWindow scans incomplete reminders across all lists and keeps those
// whose parsed due instant satisfies the predicate. Reminders without a
// parseable due date never match a date window.
func (e *Engine) dueWindow(ctx context.Context, match func(time.Time) bool) ([]service.Reminder, error) {
	incomplete := false
	reminders, err := e.store.Reminders(ctx, "", &incomplete)
	if err != nil {
		return nil, err
	}
	results := make([]service.Reminder, 0)
	for _, r := range reminders {
		if r.DueDate == "" {
			continue
		}
		due, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			continue
		}
		if match(due) {
			results = append(results, r)
		}
	}
	return results, nil
}

// foldASCII lowercases A-Z only and leaves non-ASCII case alone.
func foldASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
