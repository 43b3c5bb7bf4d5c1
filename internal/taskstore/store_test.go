package taskstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplan/internal/model"
	"dayplan/internal/storage"
)

type capturedNotification struct {
	Message string
	Type    model.NotificationType
}

type recorder struct {
	events []capturedNotification
}

func (r *recorder) notify(message string, typ model.NotificationType) {
	r.events = append(r.events, capturedNotification{Message: message, Type: typ})
}

func fixedClock(iso string) func() time.Time {
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func newStore(t *testing.T) (*Store, *storage.MemoryStore, *recorder) {
	t.Helper()
	kv := storage.NewMemoryStore()
	rec := &recorder{}
	s := New(kv, rec.notify, WithClock(fixedClock("2024-01-15T12:00:00Z")))
	return s, kv, rec
}

func TestAddCreatesTaskForSelectedDate(t *testing.T) {
	s, _, rec := newStore(t)
	ctx := context.Background()

	task, ok := s.Add(ctx, Draft{Title: "  Buy milk  ", Time: "10:00", Category: model.CategoryFood, Date: "2024-01-15"})
	require.True(t, ok)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2024-01-15", task.Date)
	assert.False(t, task.Completed)
	assert.Equal(t, int64(1705320000000), task.CreatedAt)
	require.NoError(t, task.Validate())

	require.Len(t, rec.events, 1)
	assert.Equal(t, model.NotificationSuccess, rec.events[0].Type)
	assert.Contains(t, rec.events[0].Message, "Buy milk")
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	s, _, rec := newStore(t)
	ctx := context.Background()

	_, ok := s.Add(ctx, Draft{Title: "", Date: "2024-01-15"})
	assert.False(t, ok)
	_, ok = s.Add(ctx, Draft{Title: "   ", Date: "2024-01-15"})
	assert.False(t, ok)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, rec.events, "rejected adds must not notify")
}

func TestAddGeneratesDistinctIDs(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task, ok := s.Add(ctx, Draft{Title: "Task", Date: "2024-01-15"})
		require.True(t, ok)
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestToggleFlipsAndNotifies(t *testing.T) {
	s, _, rec := newStore(t)
	ctx := context.Background()

	task, _ := s.Add(ctx, Draft{Title: "Buy milk", Date: "2024-01-15"})
	rec.events = nil

	toggled, ok := s.Toggle(ctx, task.ID)
	require.True(t, ok)
	assert.True(t, toggled.Completed)
	require.Len(t, rec.events, 1)
	assert.Equal(t, model.NotificationSuccess, rec.events[0].Type)

	toggled, ok = s.Toggle(ctx, task.ID)
	require.True(t, ok)
	assert.False(t, toggled.Completed, "double toggle restores original state")
	require.Len(t, rec.events, 2)
	assert.Equal(t, model.NotificationInfo, rec.events[1].Type)
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	s, _, rec := newStore(t)
	_, ok := s.Toggle(context.Background(), "missing")
	assert.False(t, ok)
	assert.Empty(t, rec.events)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s, _, rec := newStore(t)
	ctx := context.Background()

	first, _ := s.Add(ctx, Draft{Title: "First", Date: "2024-01-15"})
	second, _ := s.Add(ctx, Draft{Title: "Second", Date: "2024-01-15"})
	third, _ := s.Add(ctx, Draft{Title: "Third", Date: "2024-01-15"})
	rec.events = nil

	deleted, ok := s.Delete(ctx, second.ID)
	require.True(t, ok)
	assert.Equal(t, "Second", deleted.Title)
	assert.Equal(t, 2, s.Len())
	require.Len(t, rec.events, 1)
	assert.Equal(t, model.NotificationError, rec.events[0].Type)

	_, ok = s.Delete(ctx, second.ID)
	assert.False(t, ok, "second delete of same id is a no-op")
	assert.Equal(t, 2, s.Len())

	remaining := s.All()
	assert.Equal(t, []string{first.ID, third.ID}, []string{remaining[0].ID, remaining[1].ID})
}

func TestTasksForFiltersAndPreservesOrder(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	a, _ := s.Add(ctx, Draft{Title: "A", Date: "2024-01-15"})
	s.Add(ctx, Draft{Title: "B", Date: "2024-01-16"})
	c, _ := s.Add(ctx, Draft{Title: "C", Date: "2024-01-15"})

	got := s.TasksFor("2024-01-15")
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)

	assert.Empty(t, s.TasksFor("2024-01-17"))
}

func TestWriteThroughPersistsWholeCollection(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	first := New(kv, nil, WithClock(fixedClock("2024-01-15T12:00:00Z")))
	first.Add(ctx, Draft{Title: "Monday task", Date: "2024-01-15"})
	first.Add(ctx, Draft{Title: "Tuesday task", Date: "2024-01-16"})

	// A fresh store over the same backend sees every date, not just one day.
	second := New(kv, nil)
	second.Load(ctx)
	assert.Equal(t, 2, second.Len())
	assert.Len(t, second.TasksFor("2024-01-15"), 1)
	assert.Len(t, second.TasksFor("2024-01-16"), 1)
}

func TestLoadMissingKeyFallsBackToSeed(t *testing.T) {
	s, _, _ := newStore(t)
	s.Load(context.Background())

	tasks := s.All()
	require.Len(t, tasks, 6)
	for _, task := range tasks {
		assert.Equal(t, "2024-01-15", task.Date)
	}
}

func TestLoadCorruptPayloadFallsBackToSeed(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `{"not":"an array"}`))

	s := New(kv, nil, WithClock(fixedClock("2024-01-15T12:00:00Z")))
	s.Load(ctx)
	assert.Equal(t, 6, s.Len())
}

func TestLoadEmptyArrayStaysEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `[]`))

	s := New(kv, nil)
	s.Load(ctx)
	assert.Equal(t, 0, s.Len(), "an explicitly empty store is not corrupt")
}

type failingStore struct {
	storage.Store
}

func (f failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestMutationsSurviveWriteFailure(t *testing.T) {
	s := New(failingStore{storage.NewMemoryStore()}, nil)
	ctx := context.Background()

	task, ok := s.Add(ctx, Draft{Title: "Still here", Date: "2024-01-15"})
	require.True(t, ok, "write failure must not abort the mutation")
	assert.Equal(t, 1, s.Len())

	_, ok = s.Toggle(ctx, task.ID)
	assert.True(t, ok)
}

func TestEndToEndScenario(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	task, ok := s.Add(ctx, Draft{Title: "Buy milk", Date: "2024-01-15"})
	require.True(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.False(t, task.Completed)

	toggled, ok := s.Toggle(ctx, task.ID)
	require.True(t, ok)
	assert.True(t, toggled.Completed)

	assert.Empty(t, s.TasksFor("2024-01-16"))

	back := s.TasksFor("2024-01-15")
	require.Len(t, back, 1)
	assert.Equal(t, task.ID, back[0].ID)
	assert.True(t, back[0].Completed)
}
