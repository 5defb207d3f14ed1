// Package session maps browser sessions to their own in-memory boards.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"priority-task-list/internal/service"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrFactoryNil = errors.New("board factory is nil")

// Factory builds an empty board for a new session.
type Factory func() (*service.TaskService, error)

type Option func(*Registry)

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

type entry struct {
	board    *service.TaskService
	lastSeen time.Time
}

// Registry owns every live board. A board lives until its session has been
// idle for longer than the ttl; a ttl <= 0 keeps boards forever.
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry

	newBoard Factory
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func New(newBoard Factory, ttl time.Duration, opts ...Option) (*Registry, error) {
	if newBoard == nil {
		return nil, ErrFactoryNil
	}

	r := &Registry{
		entries:  make(map[uuid.UUID]*entry),
		newBoard: newBoard,
		ttl:      ttl,
		now:      time.Now,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the board of a known session and marks the session as seen.
func (r *Registry) Get(id uuid.UUID) (*service.TaskService, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()

	return e.board, true
}

func (r *Registry) Create() (uuid.UUID, *service.TaskService, error) {
	board, err := r.newBoard()
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("create board: %w", err)
	}

	id := uuid.New()

	r.mu.Lock()
	r.entries[id] = &entry{board: board, lastSeen: r.now()}
	r.mu.Unlock()

	r.log.Debug("session created", "session", id)

	return id, board, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Sweep drops sessions idle since before now-ttl and returns how many went.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := now.Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	swept := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			swept++
		}
	}
	return swept
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				r.log.Info("expired idle sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}
