// Package server exposes annotation sessions over HTTP. Every session is
// independent and guarded by its own lock.
package server

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/settings"
)

// ErrSessionNotFound is returned for unknown session IDs
var ErrSessionNotFound = errors.New("session not found")

// entry serializes access to one session
type entry struct {
	mu      sync.Mutex
	session *annotate.Session
	created time.Time
}

// Server owns the fiber app and the open sessions
type Server struct {
	cfg   config.Config
	store settings.Store
	app   *fiber.App

	mu       sync.RWMutex
	sessions map[string]*entry
}

// New builds the server and registers all routes. store may be nil, in
// which case save and load are no-ops.
func New(cfg config.Config, store settings.Store) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		sessions: make(map[string]*entry),
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "gofloor",
		BodyLimit:    32 * 1024 * 1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	s.app.Post("/sessions", s.createSession)
	s.app.Get("/sessions", s.listSessions)
	s.app.Get("/sessions/:id", s.getSession)
	s.app.Delete("/sessions/:id", s.deleteSession)

	sessions := s.app.Group("/sessions/:id")
	sessions.Post("/hover", s.hover)
	sessions.Post("/click", s.click)
	sessions.Post("/key", s.key)
	sessions.Post("/command", s.command)
	sessions.Post("/midlines", s.midlines)
	sessions.Post("/view", s.updateView)
	sessions.Get("/export.svg", s.exportSVG)
	sessions.Get("/export.png", s.exportPNG)

	return s
}

// App returns the fiber application, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the app is shut down
func (s *Server) Listen(addr string) error {
	log.Printf("[SERVER] Listening on %s", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the listener
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) add(session *annotate.Session) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &entry{session: session, created: time.Now()}
	s.mu.Unlock()
	log.Printf("[SERVER] Session %s opened for %s", id, session.Document())
	return id
}

func (s *Server) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	log.Printf("[SERVER] Session %s closed", id)
	return nil
}

// with runs fn holding the lock of session id
func (s *Server) with(id string, fn func(*annotate.Session) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// IDs lists the open sessions, oldest first
func (s *Server) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.sessions[ids[i]], s.sessions[ids[j]]
		if a.created.Equal(b.created) {
			return ids[i] < ids[j]
		}
		return a.created.Before(b.created)
	})
	return ids
}
