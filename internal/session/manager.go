package session

import (
	"sync"

	"jobdeck_gateway/internal/state"
)

// Manager hands out one Session per browser profile, keeping the in-memory
// container alive between requests of the same profile.
type Manager struct {
	store *state.Store

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(store *state.Store) *Manager {
	return &Manager{
		store:    store,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session of the given profile, creating it on first sight.
func (m *Manager) Get(profileID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[profileID]; ok {
		return s
	}
	s := New(m.store, profileID)
	m.sessions[profileID] = s
	return s
}
