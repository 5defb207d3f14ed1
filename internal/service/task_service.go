package service

import (
	"fmt"
	"log/slog"
	"priority-task-list/internal/domain"
	"priority-task-list/internal/view"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDeadlineLayouts are tried in order when parsing a deadline.
// The first one is what a datetime-local input submits.
var DefaultDeadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

type TaskStore interface {
	Add(task domain.Task) (domain.Task, error)
	List() []domain.Task
	Delete(id uuid.UUID) bool
	Complete(id uuid.UUID) (domain.Task, bool)
}

// Board is what the presentation layer renders.
type Board struct {
	Active    []domain.Task
	Completed []domain.Task
	Sort      domain.SortState
	Sections  domain.Sections
}

type AddTaskInput struct {
	Title    string
	Priority string
	Deadline string
}

type Option func(*TaskService)

func WithLogger(l *slog.Logger) Option {
	return func(s *TaskService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithDeadlineLayouts(layouts []string) Option {
	return func(s *TaskService) {
		if len(layouts) > 0 {
			s.layouts = layouts
		}
	}
}

// WithLocation sets the zone deadlines without an offset are read in.
func WithLocation(loc *time.Location) Option {
	return func(s *TaskService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// TaskService is the application root of one board: the task collection,
// the sort setting and the section flags. Operations run one at a time and
// each ends by recomputing the derived lists.
type TaskService struct {
	mu       sync.Mutex
	store    TaskStore
	sort     domain.SortState
	sections domain.Sections
	board    Board

	layouts []string
	loc     *time.Location
	log     *slog.Logger
}

func New(store TaskStore, opts ...Option) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	s := &TaskService{
		store:    store,
		sort:     domain.DefaultSortState(),
		sections: domain.DefaultSections(),
		layouts:  DefaultDeadlineLayouts,
		loc:      time.Local,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.refresh()

	return s, nil
}

func (s *TaskService) AddTask(in AddTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	deadlineStr := strings.TrimSpace(in.Deadline)

	if title == "" || deadlineStr == "" {
		return domain.Task{}, ErrInvalidInput
	}

	// the entry form preselects Low
	priority := domain.PriorityLow
	if strings.TrimSpace(in.Priority) != "" {
		p, ok := domain.ParsePriority(in.Priority)
		if !ok {
			return domain.Task{}, fmt.Errorf("%w %q", ErrInvalidPriority, in.Priority)
		}
		priority = p
	}

	deadline, err := s.parseDeadline(deadlineStr)
	if err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.Add(domain.Task{
		Title:    title,
		Priority: priority,
		Deadline: deadline,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.log.Debug("task added", "id", created.ID, "priority", created.Priority, "deadline", created.Deadline)
	s.refresh()

	return created, nil
}

// DeleteTask removes the task. Unknown ids are ignored.
func (s *TaskService) DeleteTask(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.store.Delete(id)
	s.log.Debug("task delete", "id", id, "removed", removed)
	s.refresh()

	return removed
}

// CompleteTask marks the task done. Unknown or already completed ids are ignored.
func (s *TaskService) CompleteTask(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, changed := s.store.Complete(id)
	s.log.Debug("task complete", "id", id, "changed", changed)
	s.refresh()

	return changed
}

func (s *TaskService) SelectSort(key string) (domain.SortState, error) {
	k, ok := domain.ParseSortKey(key)
	if !ok {
		return domain.SortState{}, fmt.Errorf("%w %q", ErrInvalidSortKey, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = s.sort.Select(k)
	s.log.Debug("sort selected", "key", s.sort.Key, "order", s.sort.Order)
	s.refresh()

	return s.sort, nil
}

func (s *TaskService) ToggleSection(name string) (domain.Sections, error) {
	section, ok := domain.ParseSection(name)
	if !ok {
		return domain.Sections{}, fmt.Errorf("%w %q", ErrInvalidSection, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections = s.sections.Toggle(section)
	s.log.Debug("section toggled", "section", section, "open", s.sections.IsOpen(section))
	s.refresh()

	return s.sections, nil
}

// Board returns the lists as of the last operation. The slices are shared
// between callers and must not be modified.
func (s *TaskService) Board() Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board
}

// refresh recomputes the derived lists; callers hold s.mu.
func (s *TaskService) refresh() {
	v := view.Derive(s.store.List(), s.sort)
	s.board = Board{
		Active:    v.Active,
		Completed: v.Completed,
		Sort:      s.sort,
		Sections:  s.sections,
	}
}

func (s *TaskService) parseDeadline(v string) (time.Time, error) {
	for _, layout := range s.layouts {
		if t, err := time.ParseInLocation(layout, v, s.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDeadline, v)
}

func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
