package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return store
}

func TestStore_GetMissingKey(t *testing.T) {
	store := openTestStore(t)

	var out string
	ok, err := store.Get("profile-1", "token", &out)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Put("profile-1", "user", payload{Name: "Aliya", Count: 3}))

	var out payload
	ok, err := store.Get("profile-1", "user", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Aliya", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestStore_PutOverwritesExistingKey(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("profile-1", "token", "first"))
	require.NoError(t, store.Put("profile-1", "token", "second"))

	var out string
	ok, err := store.Get("profile-1", "token", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", out)
}

func TestStore_ProfilesAreIsolated(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("profile-1", "token", "abc"))

	var out string
	ok, err := store.Get("profile-2", "token", &out)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutAllWritesEveryKey(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.PutAll("profile-1", map[string]interface{}{
		"user":  "Aliya",
		"token": "abc",
	}))

	var user, token string
	ok, err := store.Get("profile-1", "user", &user)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = store.Get("profile-1", "token", &token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Aliya", user)
	assert.Equal(t, "abc", token)
}

func TestStore_DeleteRemovesOnlyNamedKeys(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("profile-1", "user", "Aliya"))
	require.NoError(t, store.Put("profile-1", "token", "abc"))
	require.NoError(t, store.Put("profile-1", "jobCart", []string{"x"}))

	require.NoError(t, store.Delete("profile-1", "user", "token"))

	var out string
	ok, _ := store.Get("profile-1", "user", &out)
	assert.False(t, ok)
	ok, _ = store.Get("profile-1", "token", &out)
	assert.False(t, ok)

	var cart []string
	ok, err := store.Get("profile-1", "jobCart", &cart)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_PurgeStaleKeepsFreshRows(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("profile-1", "token", "abc"))

	purged, err := store.PurgeStale(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, purged)

	var out string
	ok, _ := store.Get("profile-1", "token", &out)
	assert.True(t, ok)

	purged, err = store.PurgeStale(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	ok, _ = store.Get("profile-1", "token", &out)
	assert.False(t, ok)
}
