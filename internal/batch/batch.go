// Package batch sequences independent single-item operations and aggregates
// per-item outcomes. Bulk operations are best-effort, not transactions: a
// failure on one item never prevents attempting the next, and callers see
// partial success explicitly.
package batch

import (
	"context"
	"fmt"
	"strings"

	"remindmcp/internal/service"
)

// Result aggregates a bulk run: a running success counter, the ordered
// "<item-identifier>: <message>" failure list, and Success true iff that
// list is empty.
type Result struct {
	Succeeded int
	Errors    []string
	Success   bool
}

func newResult() Result {
	return Result{Errors: []string{}}
}

func (r *Result) fail(ident string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", ident, err))
}

func (r *Result) finish() Result {
	r.Success = len(r.Errors) == 0
	return *r
}

// CreateAll creates each draft in order. A draft without a name fails
// item-level validation before any subprocess is spawned; the remaining
// items are still attempted.
func CreateAll(ctx context.Context, store service.Store, drafts []service.ReminderDraft) Result {
	res := newResult()
	for i, draft := range drafts {
		ident := strings.TrimSpace(draft.Name)
		if ident == "" {
			ident = fmt.Sprintf("item %d", i+1)
			res.fail(ident, &service.ValidationError{Field: "name"})
			continue
		}
		if _, err := store.CreateReminder(ctx, draft); err != nil {
			res.fail(ident, err)
			continue
		}
		res.Succeeded++
	}
	return res.finish()
}

// CompleteAll marks each id completed, in order.
func CompleteAll(ctx context.Context, store service.Store, ids []string) Result {
	return forEachID(ids, func(id string) error {
		return store.SetCompleted(ctx, id, true)
	})
}

// DeleteAll deletes each id, in order.
func DeleteAll(ctx context.Context, store service.Store, ids []string) Result {
	return forEachID(ids, func(id string) error {
		return store.DeleteReminder(ctx, id)
	})
}

func forEachID(ids []string, op func(id string) error) Result {
	res := newResult()
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			res.fail(fmt.Sprintf("item %d", i+1), &service.ValidationError{Field: "id"})
			continue
		}
		if err := op(id); err != nil {
			res.fail(id, err)
			continue
		}
		res.Succeeded++
	}
	return res.finish()
}
