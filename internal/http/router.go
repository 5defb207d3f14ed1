package router

import (
	"log/slog"
	"net/http"
	"priority-task-list/internal/http/handlers"
	"priority-task-list/internal/session"

	"github.com/gin-gonic/gin"
)

func New(sessions *session.Registry, handler *handlers.TaskHandler, page *handlers.PageHandler, log *slog.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))
	r.SetHTMLTemplate(handlers.Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessions.Len()})
	})

	web := r.Group("/", Sessions(sessions, log))
	{
		web.GET("/", page.Index)
		web.POST("/tasks", page.AddTask)
		web.POST("/tasks/:id/complete", page.CompleteTask)
		web.POST("/tasks/:id/delete", page.DeleteTask)
		web.POST("/sort/:key", page.SelectSort)
		web.POST("/sections/:name/toggle", page.ToggleSection)
	}

	api := r.Group("/api", Sessions(sessions, log))
	{
		api.GET("/board", handler.GetBoard)
		api.POST("/tasks", handler.Create)
		api.POST("/tasks/:id/complete", handler.Complete)
		api.DELETE("/tasks/:id", handler.Delete)
		api.POST("/sort", handler.SelectSort)
		api.POST("/sections/:name/toggle", handler.ToggleSection)
	}

	return r
}
