package cart

import (
	"sync"

	"jobdeck_gateway/internal/state"
)

// Manager hands out one Cart per browser profile.
type Manager struct {
	store *state.Store

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager(store *state.Store) *Manager {
	return &Manager{
		store: store,
		carts: make(map[string]*Cart),
	}
}

func (m *Manager) Get(profileID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.carts[profileID]; ok {
		return c
	}
	c := New(m.store, profileID)
	m.carts[profileID] = c
	return c
}
