package session

import (
	"sync"

	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/state"
)

// Persisted keys of the auth container.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Session is the auth state container of one browser profile: the cached
// user record plus the bearer token. The in-memory copy is authoritative for
// the lifetime of the session and is mutated first; every mutation is then
// mirrored to the persisted store, user and token in one transaction.
type Session struct {
	profileID string
	store     *state.Store

	mu       sync.Mutex
	user     *models.User
	token    string
	hydrated bool
}

func New(store *state.Store, profileID string) *Session {
	return &Session{
		profileID: profileID,
		store:     store,
	}
}

func (s *Session) ProfileID() string {
	return s.profileID
}

// Hydrate loads the persisted user and token. Absent keys leave the session
// unauthenticated. Runs at most once; later calls are no-ops.
func (s *Session) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	var user models.User
	if ok, err := s.store.Get(s.profileID, KeyUser, &user); err != nil {
		logger.Warn("failed to read persisted user", "profile_id", s.profileID, "error", err)
	} else if ok {
		s.user = &user
	}

	var token string
	if ok, err := s.store.Get(s.profileID, KeyToken, &token); err != nil {
		logger.Warn("failed to read persisted token", "profile_id", s.profileID, "error", err)
	} else if ok {
		s.token = token
	}
}

// User returns the cached user record, nil when unauthenticated.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether both a user record and a token are present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// LoginSuccess replaces the current user and token and persists both.
func (s *Session) LoginSuccess(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.token = token
	s.hydrated = true

	if err := s.store.PutAll(s.profileID, map[string]interface{}{
		KeyUser:  user,
		KeyToken: token,
	}); err != nil {
		logger.Warn("failed to persist credentials", "profile_id", s.profileID, "error", err)
	}
}

// Logout clears the token and the cached user record, in memory and in the
// persisted store.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.hydrated = true

	if err := s.store.Delete(s.profileID, KeyUser, KeyToken); err != nil {
		logger.Warn("failed to clear persisted credentials", "profile_id", s.profileID, "error", err)
	}
}
