package store

import (
	"errors"
	"priority-task-list/internal/domain"

	"github.com/google/uuid"
)

var ErrDuplicateID = errors.New("task id already in use")

// TaskStore owns the ordered task collection of one board.
// Delete and Complete on an unknown id are no-ops reported through the bool.
type TaskStore interface {
	Add(t domain.Task) (domain.Task, error)
	Get(id uuid.UUID) (domain.Task, bool)
	List() []domain.Task
	Delete(id uuid.UUID) bool
	Complete(id uuid.UUID) (domain.Task, bool)
}
