package cart

import (
	"path/filepath"
	"testing"

	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*Cart, *state.Store) {
	t.Helper()
	store, err := state.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return New(store, "profile-1"), store
}

func job(id int64) models.Job {
	return models.Job{ID: id, Title: "Job"}
}

func TestAddItem_DuplicateJobIsIgnored(t *testing.T) {
	c, _ := newTestCart(t)
	c.SetActiveUser(7)

	c.AddItem(job(1), models.TierQuick)
	c.AddItem(job(1), models.TierManual)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.TierQuick, items[0].Tier)
}

func TestAddItem_WithoutActiveUserIsNoOp(t *testing.T) {
	c, _ := newTestCart(t)

	c.AddItem(job(1), models.TierQuick)

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
}

func TestRemoveItem_UnknownJobIsNoOp(t *testing.T) {
	c, _ := newTestCart(t)
	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierSmart)

	c.RemoveItem(99)

	assert.Len(t, c.Items(), 1)
}

func TestClearThenAddYieldsSingleItem(t *testing.T) {
	c, _ := newTestCart(t)
	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierQuick)
	c.AddItem(job(2), models.TierSmart)

	c.Clear()
	assert.Empty(t, c.Items())

	c.AddItem(job(3), models.TierManual)
	items := c.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 3, items[0].Job.ID)
}

func TestTotal_SumsTierPrices(t *testing.T) {
	c, _ := newTestCart(t)
	c.SetActiveUser(7)

	c.AddItem(job(1), models.TierQuick)
	c.AddItem(job(2), models.TierSmart)
	c.AddItem(job(3), models.TierManual)

	assert.Equal(t, 30, c.Total())
}

func TestSetActiveUser_PartitionsAreIsolated(t *testing.T) {
	c, _ := newTestCart(t)

	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierQuick)
	c.AddItem(job(2), models.TierSmart)

	c.SetActiveUser(8)
	assert.Empty(t, c.Items())
	c.AddItem(job(3), models.TierManual)
	assert.Len(t, c.Items(), 1)

	// User 7's entries survive user 8's session untouched.
	c.SetActiveUser(7)
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 15, c.Total())
}

func TestSetActiveUser_ZeroEmptiesTheView(t *testing.T) {
	c, _ := newTestCart(t)
	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierQuick)

	c.SetActiveUser(0)

	assert.Empty(t, c.Items())
	c.RemoveItem(1)
	c.Clear()

	c.SetActiveUser(7)
	assert.Len(t, c.Items(), 1)
}

func TestCart_PersistsAcrossContainers(t *testing.T) {
	c, store := newTestCart(t)
	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierSmart)

	// A fresh container over the same store sees the persisted partition.
	fresh := New(store, "profile-1")
	fresh.SetActiveUser(7)
	items := fresh.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].Job.ID)
	assert.Equal(t, models.TierSmart, items[0].Tier)
}

func TestCart_ProfilesDoNotShareState(t *testing.T) {
	c, store := newTestCart(t)
	c.SetActiveUser(7)
	c.AddItem(job(1), models.TierQuick)

	other := New(store, "profile-2")
	other.SetActiveUser(7)
	assert.Empty(t, other.Items())
}
