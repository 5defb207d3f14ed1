package memory

import (
	"fmt"
	"priority-task-list/internal/domain"
	"priority-task-list/internal/store"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Option func(*TaskStore)

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(ts *TaskStore) {
		ts.newID = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(ts *TaskStore) {
		ts.now = now
	}
}

// TaskStore keeps tasks in insertion order. Every mutation swaps in a new
// slice, so a slice handed out by List never changes afterwards.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
	newID func() (uuid.UUID, error)
	now   func() time.Time
}

var _ store.TaskStore = (*TaskStore)(nil)

func New(opts ...Option) *TaskStore {
	ts := &TaskStore{
		newID: uuid.NewV7,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

func (ts *TaskStore) Add(task domain.Task) (domain.Task, error) {
	id, err := ts.newID()
	if err != nil {
		return domain.Task{}, fmt.Errorf("generate task id: %w", err)
	}

	task.ID = id
	// completion is never set by the caller
	task.Completed = false
	if task.CreatedAt.IsZero() {
		task.CreatedAt = ts.now()
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.indexOf(id) >= 0 {
		return domain.Task{}, store.ErrDuplicateID
	}

	next := make([]domain.Task, len(ts.tasks), len(ts.tasks)+1)
	copy(next, ts.tasks)
	ts.tasks = append(next, task)

	return task, nil
}

func (ts *TaskStore) Get(id uuid.UUID) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return ts.tasks[i], true
}

// List returns the current snapshot. Callers must not modify it.
func (ts *TaskStore) List() []domain.Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return ts.tasks
}

func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return len(ts.tasks)
}

func (ts *TaskStore) Delete(id uuid.UUID) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]domain.Task, 0, len(ts.tasks)-1)
	next = append(next, ts.tasks[:i]...)
	next = append(next, ts.tasks[i+1:]...)
	ts.tasks = next

	return true
}

// Complete marks the task done. It reports false when the id is unknown or
// the task was already completed.
func (ts *TaskStore) Complete(id uuid.UUID) (domain.Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	if ts.tasks[i].Completed {
		return ts.tasks[i], false
	}

	next := slices.Clone(ts.tasks)
	next[i].Completed = true
	ts.tasks = next

	return next[i], true
}

func (ts *TaskStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(ts.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
