package handlers

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"priority-task-list/internal/domain"
	"priority-task-list/internal/service"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const DeadlineDisplayLayout = "Jan 2, 2006 3:04 PM"

// Templates parses the page templates for gin's HTML renderer.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"lower": func(p domain.Priority) string { return strings.ToLower(string(p)) },
		"due":   func(t time.Time) string { return t.Format(DeadlineDisplayLayout) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

type sortButton struct {
	Key    domain.SortKey
	Label  string
	Glyph  string
	Active bool
}

type formValues struct {
	Title    string
	Priority string
	Deadline string
}

func defaultForm() formValues {
	return formValues{Priority: string(domain.PriorityLow)}
}

type pageData struct {
	Board       service.Board
	SortButtons []sortButton
	Priorities  []domain.Priority
	Form        formValues
	Error       string
}

// PageHandler serves the server-rendered page. Every form posts back and
// redirects to / so a reload never resubmits.
type PageHandler struct {
	log *slog.Logger
}

func NewPage(log *slog.Logger) *PageHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PageHandler{log: log}
}

// GET /
func (h *PageHandler) Index(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, board.Board(), defaultForm(), "")
}

// POST /tasks
func (h *PageHandler) AddTask(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	form := formValues{
		Title:    c.PostForm("title"),
		Priority: c.DefaultPostForm("priority", string(domain.PriorityLow)),
		Deadline: c.PostForm("deadline"),
	}

	_, err := board.AddTask(service.AddTaskInput{
		Title:    form.Title,
		Priority: form.Priority,
		Deadline: form.Deadline,
	})
	if err != nil {
		status := http.StatusBadRequest
		msg := err.Error()
		if !errors.Is(err, service.ErrInvalidInput) {
			h.log.Error("add task failed", "error", err)
			status = http.StatusInternalServerError
			msg = "could not add task"
		}
		h.render(c, status, board.Board(), form, msg)
		return
	}

	h.home(c)
}

// POST /tasks/:id/complete
func (h *PageHandler) CompleteTask(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		h.render(c, http.StatusBadRequest, board.Board(), defaultForm(), err.Error())
		return
	}

	board.CompleteTask(id)
	h.home(c)
}

// POST /tasks/:id/delete
func (h *PageHandler) DeleteTask(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		h.render(c, http.StatusBadRequest, board.Board(), defaultForm(), err.Error())
		return
	}

	board.DeleteTask(id)
	h.home(c)
}

// POST /sort/:key
func (h *PageHandler) SelectSort(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	if _, err := board.SelectSort(c.Param("key")); err != nil {
		h.render(c, http.StatusBadRequest, board.Board(), defaultForm(), err.Error())
		return
	}
	h.home(c)
}

// POST /sections/:name/toggle
func (h *PageHandler) ToggleSection(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	if _, err := board.ToggleSection(c.Param("name")); err != nil {
		h.render(c, http.StatusBadRequest, board.Board(), defaultForm(), err.Error())
		return
	}
	h.home(c)
}

func (h *PageHandler) render(c *gin.Context, status int, b service.Board, form formValues, errMsg string) {
	buttons := []sortButton{
		{Key: domain.SortByDate, Label: "By Date"},
		{Key: domain.SortByPriority, Label: "By Priority"},
	}
	for i := range buttons {
		buttons[i].Glyph = b.Sort.Indicator(buttons[i].Key)
		buttons[i].Active = b.Sort.Key == buttons[i].Key
	}

	c.HTML(status, "index.html", pageData{
		Board:       b,
		SortButtons: buttons,
		Priorities:  domain.Priorities,
		Form:        form,
		Error:       errMsg,
	})
}

func (h *PageHandler) home(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) board(c *gin.Context) (Board, bool) {
	b, ok := boardFrom(c)
	if !ok {
		h.log.Error("request reached handler without a session board", "path", c.FullPath())
		c.AbortWithStatus(http.StatusInternalServerError)
	}
	return b, ok
}
