package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/certquiz/backend/internal/domain/session"
)

// runningSession pairs an engine with the certification and group it was
// started for. The mutex serializes handler access to the engine, which
// is itself single-threaded.
type runningSession struct {
	mu            sync.Mutex
	engine        *session.Engine
	certification string
	group         string
}

// SessionRegistry tracks live quiz runs in memory. Sessions are never
// persisted; a restart of the server discards them, exactly like a page
// reload did in the browser.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*runningSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*runningSession)}
}

// Add registers a started engine and returns its id. Starting a new run
// for the same certification and group discards the in-flight one; there
// is no explicit cancellation.
func (r *SessionRegistry) Add(certification, group string, engine *session.Engine) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.certification == certification && s.group == group {
			delete(r.sessions, id)
		}
	}

	id := uuid.NewString()
	r.sessions[id] = &runningSession{
		engine:        engine,
		certification: certification,
		group:         group,
	}
	return id
}

func (r *SessionRegistry) Get(id string) (*runningSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}
