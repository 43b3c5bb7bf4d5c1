// Package taskstore owns the authoritative in-memory task collection. Every
// mutation updates memory first, then writes the entire collection through to
// the persistence adapter; storage errors are logged and swallowed so the
// session stays usable when durability is degraded.
package taskstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"dayplan/internal/logging"
	"dayplan/internal/model"
	"dayplan/internal/storage"
)

// StorageKey holds the serialized whole collection, all dates included. The
// per-day filter is a view concern, never a storage concern.
const StorageKey = "tasks_data"

// NotifyFunc receives the feedback event a mutation produced.
type NotifyFunc func(message string, typ model.NotificationType)

// Draft is the user-supplied part of a new task.
type Draft struct {
	Title    string
	Time     string
	Category model.Category
	Date     string
}

type Store struct {
	mu     sync.Mutex
	kv     storage.Store
	notify NotifyFunc
	now    func() time.Time
	tasks  []model.Task
}

type Option func(*Store)

// WithClock fixes the store's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(kv storage.Store, notify NotifyFunc, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		notify: notify,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored collection exactly once. A missing key, unreadable
// payload or backend failure falls back to the seed set for today; none of
// those are user-visible errors.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logging.Warn("task load failed, starting from seed tasks", zap.Error(err))
		}
		s.reset(DefaultSeed(model.CurrentDate(s.now())))
		return
	}

	tasks, err := model.DecodeTasks([]byte(raw))
	if err != nil {
		logging.Warn("stored tasks unreadable, starting from seed tasks", zap.Error(err))
		s.reset(DefaultSeed(model.CurrentDate(s.now())))
		return
	}
	s.reset(tasks)
}

func (s *Store) reset(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

// Add appends a new task for the given draft. An empty title after trimming
// is silently rejected. New tasks go to the end of the collection, so default
// render order is creation order.
func (s *Store) Add(ctx context.Context, draft Draft) (model.Task, bool) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return model.Task{}, false
	}

	now := s.now()
	task := model.Task{
		ID:        model.NewTaskID(now),
		Title:     title,
		Time:      strings.TrimSpace(draft.Time),
		Category:  draft.Category,
		CreatedAt: now.UnixMilli(),
		Date:      draft.Date,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.writeThrough(ctx)
	s.emit(fmt.Sprintf("Task %q added successfully!", title), model.NotificationSuccess)
	return task, true
}

// Toggle flips the completed flag of the task with the given id. Unknown ids
// are a no-op, not an error.
func (s *Store) Toggle(ctx context.Context, id string) (model.Task, bool) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, false
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	task := s.tasks[idx]
	s.mu.Unlock()

	s.writeThrough(ctx)
	if task.Completed {
		s.emit(fmt.Sprintf("Task %q completed!", task.Title), model.NotificationSuccess)
	} else {
		s.emit(fmt.Sprintf("Task %q marked as incomplete", task.Title), model.NotificationInfo)
	}
	return task, true
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) (model.Task, bool) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, false
	}
	task := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.mu.Unlock()

	s.writeThrough(ctx)
	s.emit(fmt.Sprintf("Task %q deleted successfully", task.Title), model.NotificationError)
	return task, true
}

// TasksFor returns the tasks belonging to date, preserving collection order.
func (s *Store) TasksFor(date string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// All returns a copy of the whole collection.
func (s *Store) All() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Flush serializes the current whole collection under the single storage key.
// The snapshot is taken under the store lock, so concurrent flushes always
// settle on the most recent state (last write wins over full snapshots).
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	data, err := model.EncodeTasks(s.tasks)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.kv.Set(ctx, StorageKey, string(data))
	s.mu.Unlock()
	return err
}

// writeThrough persists after a mutation. Failures degrade durability only;
// the in-memory state stays authoritative for the rest of the session.
func (s *Store) writeThrough(ctx context.Context) {
	if err := s.Flush(ctx); err != nil {
		logging.Warn("task write-through failed", zap.Error(err))
	}
}

func (s *Store) emit(message string, typ model.NotificationType) {
	if s.notify != nil {
		s.notify(message, typ)
	}
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
