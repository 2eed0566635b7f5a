package session

import (
	"path/filepath"
	"testing"

	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	store, err := state.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return store
}

func TestHydrate_EmptyStoreStaysUnauthenticated(t *testing.T) {
	s := New(newTestStore(t), "profile-1")

	s.Hydrate()

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.False(t, s.Authenticated())
}

func TestLoginSuccess_SetsAndPersistsCredentials(t *testing.T) {
	store := newTestStore(t)
	s := New(store, "profile-1")

	user := models.User{ID: 7, Name: "Aliya", Email: "aliya@test.com", Role: models.RoleUser}
	s.LoginSuccess(user, "token-abc")

	assert.True(t, s.Authenticated())
	assert.Equal(t, "token-abc", s.Token())
	require.NotNil(t, s.User())
	assert.EqualValues(t, 7, s.User().ID)

	// A restarted session over the same store hydrates the same identity.
	restarted := New(store, "profile-1")
	restarted.Hydrate()
	assert.True(t, restarted.Authenticated())
	assert.Equal(t, "token-abc", restarted.Token())
	require.NotNil(t, restarted.User())
	assert.Equal(t, "aliya@test.com", restarted.User().Email)
}

func TestLogout_ClearsUserAndToken(t *testing.T) {
	store := newTestStore(t)
	s := New(store, "profile-1")
	s.LoginSuccess(models.User{ID: 7, Name: "Aliya"}, "token-abc")

	s.Logout()

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.False(t, s.Authenticated())

	// The clear is durable, not just in memory.
	restarted := New(store, "profile-1")
	restarted.Hydrate()
	assert.False(t, restarted.Authenticated())
}

func TestHydrate_RunsOnce(t *testing.T) {
	store := newTestStore(t)
	s := New(store, "profile-1")
	s.Hydrate()

	// Writes landing behind an already-hydrated session are not picked up.
	require.NoError(t, store.Put("profile-1", KeyToken, "late-token"))
	s.Hydrate()

	assert.Empty(t, s.Token())
}

func TestUser_ReturnsACopy(t *testing.T) {
	s := New(newTestStore(t), "profile-1")
	s.LoginSuccess(models.User{ID: 7, Name: "Aliya"}, "token-abc")

	u := s.User()
	u.Name = "mutated"

	assert.Equal(t, "Aliya", s.User().Name)
}

func TestSessions_ProfilesAreIsolated(t *testing.T) {
	store := newTestStore(t)
	first := New(store, "profile-1")
	first.LoginSuccess(models.User{ID: 7}, "token-abc")

	second := New(store, "profile-2")
	second.Hydrate()
	assert.False(t, second.Authenticated())
}

func TestManager_ReturnsSameSessionPerProfile(t *testing.T) {
	m := NewManager(newTestStore(t))

	a := m.Get("profile-1")
	b := m.Get("profile-1")
	c := m.Get("profile-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
