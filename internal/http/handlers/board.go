package handlers

import (
	"priority-task-list/internal/domain"
	"priority-task-list/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const boardKey = "tasklist.board"

// Board is one session's task list as seen by the handlers.
type Board interface {
	AddTask(in service.AddTaskInput) (domain.Task, error)
	DeleteTask(id uuid.UUID) bool
	CompleteTask(id uuid.UUID) bool
	SelectSort(key string) (domain.SortState, error)
	ToggleSection(name string) (domain.Sections, error)
	Board() service.Board
}

// SetBoard attaches the session's board to the request.
func SetBoard(c *gin.Context, b Board) {
	c.Set(boardKey, b)
}

func boardFrom(c *gin.Context) (Board, bool) {
	v, ok := c.Get(boardKey)
	if !ok {
		return nil, false
	}
	b, ok := v.(Board)
	return b, ok
}
