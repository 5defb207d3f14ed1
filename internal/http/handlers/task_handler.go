package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"priority-task-list/internal/http/dto"
	"priority-task-list/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the JSON API.
type TaskHandler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{log: log}
}

// GET /api/board
func (h *TaskHandler) GetBoard(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.FromBoard(board.Board()))
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := board.AddTask(service.AddTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		Deadline: req.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("add task failed", "error", err)
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromTask(task))
}

// POST /api/tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, service.ErrInvalidID.Error())
		return
	}

	board.CompleteTask(id)
	c.Status(http.StatusNoContent)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, service.ErrInvalidID.Error())
		return
	}

	board.DeleteTask(id)
	c.Status(http.StatusNoContent)
}

// POST /api/sort
func (h *TaskHandler) SelectSort(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := board.SelectSort(req.Key)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.FromSort(state))
}

// POST /api/sections/:name/toggle
func (h *TaskHandler) ToggleSection(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	sections, err := board.ToggleSection(c.Param("name"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.FromSections(sections))
}

func (h *TaskHandler) board(c *gin.Context) (Board, bool) {
	b, ok := boardFrom(c)
	if !ok {
		h.log.Error("request reached handler without a session board", "path", c.FullPath())
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
	return b, ok
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}
