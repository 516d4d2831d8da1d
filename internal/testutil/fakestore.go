// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"remindmcp/internal/service"
)

// DefaultListName is the name of the list FakeStore starts with.
const DefaultListName = "Reminders"

// FakeStore is an in-memory implementation of service.Store for testing.
// It mirrors the real backend's failure shape: unknown names and dead ids
// surface as *service.ExecError, the way script errors do.
type FakeStore struct {
	mu        sync.RWMutex
	listNames []string
	reminders map[string][]service.Reminder // list name -> reminders, insertion order

	// Error injection for testing
	ListsErr          error
	RemindersErr      error
	CreateListErr     error
	DeleteListErr     error
	CreateReminderErr error
	UpdateReminderErr error
	SetCompletedErr   error
	DeleteReminderErr error
	OpenAppErr        error
}

// NewFakeStore creates a FakeStore with the default list.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		listNames: []string{DefaultListName},
		reminders: map[string][]service.Reminder{DefaultListName: nil},
	}
}

// AddList adds a list.
func (f *FakeStore) AddList(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listNames = append(f.listNames, name)
	if _, ok := f.reminders[name]; !ok {
		f.reminders[name] = nil
	}
}

// AddReminder adds a reminder to a list, minting an opaque id when none is
// set, and returns the stored copy.
func (f *FakeStore) AddReminder(listName string, r service.Reminder) service.Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == "" {
		r.ID = "x-apple-reminder://" + uuid.NewString()
	}
	r.List = listName
	r.PriorityName = service.PriorityName(r.Priority)
	f.reminders[listName] = append(f.reminders[listName], r)
	return r
}

func notFound(kind, name string) error {
	return &service.ExecError{Diagnostic: fmt.Sprintf("%s not found: %s", kind, name)}
}

// Lists implements service.Store.
func (f *FakeStore) Lists(ctx context.Context) ([]service.List, error) {
	if f.ListsErr != nil {
		return nil, f.ListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	lists := make([]service.List, 0, len(f.listNames))
	for _, name := range f.listNames {
		lists = append(lists, service.List{
			ID:        "list-" + name,
			Name:      name,
			ItemCount: len(f.reminders[name]),
		})
	}
	return lists, nil
}

// DefaultList implements service.Store.
func (f *FakeStore) DefaultList(ctx context.Context) (service.List, error) {
	if f.ListsErr != nil {
		return service.List{}, f.ListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	name := f.listNames[0]
	return service.List{ID: "list-" + name, Name: name, ItemCount: len(f.reminders[name])}, nil
}

// CreateList implements service.Store.
func (f *FakeStore) CreateList(ctx context.Context, name string) (service.List, error) {
	if f.CreateListErr != nil {
		return service.List{}, f.CreateListErr
	}
	f.AddList(name)
	return service.List{ID: "list-" + name, Name: name}, nil
}

// DeleteList implements service.Store.
func (f *FakeStore) DeleteList(ctx context.Context, name string) error {
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.listNames {
		if n == name {
			f.listNames = append(f.listNames[:i], f.listNames[i+1:]...)
			delete(f.reminders, name)
			return nil
		}
	}
	return notFound("list", name)
}

// Reminders implements service.Store. Enumeration is list order, then
// insertion order within each list, matching the native scan.
func (f *FakeStore) Reminders(ctx context.Context, listName string, completed *bool) ([]service.Reminder, error) {
	if f.RemindersErr != nil {
		return nil, f.RemindersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := f.listNames
	if listName != "" {
		if _, ok := f.reminders[listName]; !ok {
			return nil, notFound("list", listName)
		}
		names = []string{listName}
	}

	var out []service.Reminder
	for _, name := range names {
		for _, r := range f.reminders[name] {
			if completed != nil && r.Completed != *completed {
				continue
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// Reminder implements service.Store.
func (f *FakeStore) Reminder(ctx context.Context, id string) (service.Reminder, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, _, _, ok := f.locate(id)
	if !ok {
		return service.Reminder{}, notFound("reminder", id)
	}
	return r, nil
}

// CreateReminder implements service.Store.
func (f *FakeStore) CreateReminder(ctx context.Context, draft service.ReminderDraft) (service.Reminder, error) {
	if f.CreateReminderErr != nil {
		return service.Reminder{}, f.CreateReminderErr
	}
	listName := draft.List
	if listName == "" {
		f.mu.RLock()
		listName = f.listNames[0]
		f.mu.RUnlock()
	}
	f.mu.RLock()
	_, ok := f.reminders[listName]
	f.mu.RUnlock()
	if !ok {
		return service.Reminder{}, notFound("list", listName)
	}

	priority := draft.Priority
	if priority < 0 || priority > 9 {
		// out-of-domain priority is silently skipped, like the renderer
		priority = 0
	}
	now := time.Now().Format(time.RFC3339)
	r := service.Reminder{
		Name:             draft.Name,
		Body:             draft.Body,
		DueDate:          draft.DueDate,
		Priority:         priority,
		Flagged:          draft.Flagged != nil && *draft.Flagged,
		CreationDate:     now,
		ModificationDate: now,
	}
	return f.AddReminder(listName, r), nil
}

// UpdateReminder implements service.Store.
func (f *FakeStore) UpdateReminder(ctx context.Context, id string, patch service.ReminderPatch) error {
	if f.UpdateReminderErr != nil {
		return f.UpdateReminderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, listName, i, ok := f.locate(id)
	if !ok {
		return notFound("reminder", id)
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Body != nil {
		r.Body = *patch.Body
	}
	if patch.DueDate != nil {
		r.DueDate = *patch.DueDate
	}
	if patch.Priority != nil && *patch.Priority >= 0 && *patch.Priority <= 9 {
		r.Priority = *patch.Priority
		r.PriorityName = service.PriorityName(r.Priority)
	}
	if patch.Flagged != nil {
		r.Flagged = *patch.Flagged
	}
	r.ModificationDate = time.Now().Format(time.RFC3339)
	f.reminders[listName][i] = r
	return nil
}

// SetCompleted implements service.Store. Setting the state a reminder
// already has succeeds without change.
func (f *FakeStore) SetCompleted(ctx context.Context, id string, completed bool) error {
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, listName, i, ok := f.locate(id)
	if !ok {
		return notFound("reminder", id)
	}
	r.Completed = completed
	f.reminders[listName][i] = r
	return nil
}

// DeleteReminder implements service.Store.
func (f *FakeStore) DeleteReminder(ctx context.Context, id string) error {
	if f.DeleteReminderErr != nil {
		return f.DeleteReminderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, listName, i, ok := f.locate(id)
	if !ok {
		return notFound("reminder", id)
	}
	rs := f.reminders[listName]
	f.reminders[listName] = append(rs[:i], rs[i+1:]...)
	return nil
}

// OpenApp implements service.Store.
func (f *FakeStore) OpenApp(ctx context.Context) error {
	return f.OpenAppErr
}

// locate finds a reminder by id. Callers must hold the lock.
func (f *FakeStore) locate(id string) (service.Reminder, string, int, bool) {
	for _, name := range f.listNames {
		for i, r := range f.reminders[name] {
			if r.ID == id || strings.TrimPrefix(r.ID, "x-apple-reminder://") == id {
				return r, name, i, true
			}
		}
	}
	return service.Reminder{}, "", 0, false
}
