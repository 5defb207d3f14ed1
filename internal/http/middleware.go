package router

import (
	"log/slog"
	"net/http"
	"priority-task-list/internal/http/dto"
	"priority-task-list/internal/http/handlers"
	"priority-task-list/internal/session"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "tasklist_session"

// Sessions binds each request to the board of its browser session, starting
// a new one when the cookie is missing or has expired.
func Sessions(reg *session.Registry, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookie); err == nil {
			if id, err := uuid.Parse(raw); err == nil {
				if board, ok := reg.Get(id); ok {
					handlers.SetBoard(c, board)
					c.Next()
					return
				}
			}
		}

		id, board, err := reg.Create()
		if err != nil {
			log.Error("create session failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id.String(), 0, "/", "", false, true)
		handlers.SetBoard(c, board)
		c.Next()
	}
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
