package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	approuter "priority-task-list/internal/http"
	"priority-task-list/internal/http/dto"
	"priority-task-list/internal/http/handlers"
	"priority-task-list/internal/service"
	"priority-task-list/internal/session"
	"priority-task-list/internal/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type client struct {
	t      *testing.T
	app    http.Handler
	cookie *http.Cookie
}

func newApp(t *testing.T) (http.Handler, *session.Registry) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg, err := session.New(func() (*service.TaskService, error) {
		return service.New(memory.New(), service.WithLogger(log), service.WithLocation(time.UTC))
	}, time.Hour, session.WithLogger(log))
	if err != nil {
		t.Fatalf("session.New err=%v", err)
	}

	return approuter.New(reg, handlers.New(log), handlers.NewPage(log), log), reg
}

func newClient(t *testing.T, app http.Handler) *client {
	return &client{t: t, app: app}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()

	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rr := httptest.NewRecorder()
	c.app.ServeHTTP(rr, req)

	for _, ck := range rr.Result().Cookies() {
		if ck.Name == approuter.SessionCookie {
			c.cookie = ck
		}
	}
	return rr
}

func (c *client) json(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode body err=%v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) raw(method, path, raw string) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) form(path string, values url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) board() dto.BoardResponse {
	c.t.Helper()

	rr := c.json(http.MethodGet, "/api/board", nil)
	if rr.Code != http.StatusOK {
		c.t.Fatalf("GET /api/board status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.BoardResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		c.t.Fatalf("decode board err=%v", err)
	}
	return out
}

func (c *client) create(title, priority, deadline string) dto.TaskResponse {
	c.t.Helper()

	rr := c.json(http.MethodPost, "/api/tasks", dto.CreateTaskRequest{Title: title, Priority: priority, Deadline: deadline})
	if rr.Code != http.StatusCreated {
		c.t.Fatalf("POST /api/tasks status=%d, want %d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	var out dto.TaskResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		c.t.Fatalf("decode task err=%v", err)
	}
	return out
}

func titles(tasks []dto.TaskResponse) string {
	var out []string
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return strings.Join(out, ",")
}

func TestPOST_Tasks_Created(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	out := c.create("Buy groceries", "Medium", "2025-01-10T09:00")

	if _, err := uuid.Parse(out.ID); err != nil {
		t.Fatalf("id=%q is not a uuid", out.ID)
	}
	if out.Completed {
		t.Fatal("completed=true, want false")
	}
	if out.Priority != "Medium" {
		t.Fatalf("priority=%q, want Medium", out.Priority)
	}
	if want := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC); !out.Deadline.Equal(want) {
		t.Fatalf("deadline=%v, want %v", out.Deadline, want)
	}
}

func TestPOST_Tasks_InvalidInput(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	cases := []dto.CreateTaskRequest{
		{Title: "   ", Deadline: "2025-01-10T09:00"},
		{Title: "no deadline"},
		{Title: "x", Priority: "Urgent", Deadline: "2025-01-10T09:00"},
		{Title: "x", Deadline: "soon"},
	}
	for _, req := range cases {
		rr := c.json(http.MethodPost, "/api/tasks", req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%+v: status=%d, want %d", req, rr.Code, http.StatusBadRequest)
		}
	}

	if n := len(c.board().Active); n != 0 {
		t.Fatalf("active=%d after invalid adds, want 0", n)
	}
}

func TestPOST_Tasks_MalformedJSON(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	rr := c.raw(http.MethodPost, "/api/tasks", `{"title":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusBadRequest)
	}
	var out dto.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil || out.Error == "" {
		t.Fatalf("error body=%q", rr.Body.String())
	}
}

func TestScenario_SortCompleteDelete(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	a := c.create("Write report", "High", "2025-01-10T09:00")
	c.create("Buy milk", "Low", "2025-01-05T09:00")

	b := c.board()
	if got := titles(b.Active); got != "Buy milk,Write report" {
		t.Fatalf("date asc=%s", got)
	}
	if b.Sort.Key != "date" || b.Sort.Order != "asc" || b.Sort.Indicator != "↑" {
		t.Fatalf("sort=%+v", b.Sort)
	}

	rr := c.json(http.MethodPost, "/api/sort", dto.SortRequest{Key: "priority"})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /api/sort status=%d body=%s", rr.Code, rr.Body.String())
	}
	if got := titles(c.board().Active); got != "Write report,Buy milk" {
		t.Fatalf("priority asc=%s", got)
	}

	rr = c.json(http.MethodPost, "/api/tasks/"+a.ID+"/complete", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("complete status=%d, want %d", rr.Code, http.StatusNoContent)
	}
	b = c.board()
	if titles(b.Active) != "Buy milk" || titles(b.Completed) != "Write report" {
		t.Fatalf("after complete active=%s completed=%s", titles(b.Active), titles(b.Completed))
	}

	rr = c.json(http.MethodDelete, "/api/tasks/"+a.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d, want %d", rr.Code, http.StatusNoContent)
	}
	b = c.board()
	if len(b.Completed) != 0 || titles(b.Active) != "Buy milk" {
		t.Fatalf("after delete active=%s completed=%s", titles(b.Active), titles(b.Completed))
	}

	// unknown ids are a no-op
	rr = c.json(http.MethodDelete, "/api/tasks/"+a.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("second delete status=%d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestInvalidID(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/tasks/42/complete"},
		{http.MethodDelete, "/api/tasks/not-a-uuid"},
	} {
		rr := c.json(tc.method, tc.path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s %s status=%d, want %d", tc.method, tc.path, rr.Code, http.StatusBadRequest)
		}
		var out dto.ErrorResponse
		_ = json.NewDecoder(rr.Body).Decode(&out)
		if out.Error != service.ErrInvalidID.Error() {
			t.Fatalf("error=%q, want %q", out.Error, service.ErrInvalidID.Error())
		}
	}
}

func TestSortAndSection_Errors(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	if rr := c.json(http.MethodPost, "/api/sort", dto.SortRequest{Key: "title"}); rr.Code != http.StatusBadRequest {
		t.Fatalf("sort status=%d, want %d", rr.Code, http.StatusBadRequest)
	}
	if rr := c.json(http.MethodPost, "/api/sections/footer/toggle", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("section status=%d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestToggleSection(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	rr := c.json(http.MethodPost, "/api/sections/completed/toggle", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out dto.SectionsResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode err=%v", err)
	}
	if out != (dto.SectionsResponse{Form: false, Active: true, Completed: false}) {
		t.Fatalf("sections=%+v", out)
	}
}

func TestSessions_Isolated(t *testing.T) {
	app, reg := newApp(t)
	alice := newClient(t, app)
	bob := newClient(t, app)

	alice.create("alice task", "High", "2025-01-10T09:00")

	if n := len(bob.board().Active); n != 0 {
		t.Fatalf("bob sees %d tasks, want 0", n)
	}
	if n := len(alice.board().Active); n != 1 {
		t.Fatalf("alice sees %d tasks, want 1", n)
	}
	if reg.Len() != 2 {
		t.Fatalf("sessions=%d, want 2", reg.Len())
	}
}

func TestSessions_UnknownCookieStartsFresh(t *testing.T) {
	app, reg := newApp(t)
	c := newClient(t, app)
	c.cookie = &http.Cookie{Name: approuter.SessionCookie, Value: uuid.NewString()}

	c.board()

	if reg.Len() != 1 {
		t.Fatalf("sessions=%d, want 1", reg.Len())
	}
	if _, ok := reg.Get(uuid.MustParse(c.cookie.Value)); !ok {
		t.Fatal("client was not moved to the new session")
	}
}

func TestHealthz(t *testing.T) {
	app, _ := newApp(t)
	c := newClient(t, app)

	rr := c.json(http.MethodGet, "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if c.cookie != nil {
		t.Fatal("healthz started a session")
	}
}
