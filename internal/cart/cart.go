package cart

import (
	"sync"

	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/models"
	"jobdeck_gateway/internal/state"
)

// KeyCart is the persisted key of the combined cart blob. One blob per
// browser profile covers every user ever active in it; each entry is tagged
// with its owning user id.
const KeyCart = "jobCart"

// Cart is the cart state container of one browser profile. Only the active
// user's partition is visible through it; SetActiveUser must be called
// whenever the authenticated identity changes. Every mutation rewrites the
// full multi-user blob in the persisted store, leaving other users' entries
// untouched.
type Cart struct {
	profileID string
	store     *state.Store

	mu         sync.Mutex
	activeUser int64
	items      []models.CartItem
}

func New(store *state.Store, profileID string) *Cart {
	return &Cart{
		profileID: profileID,
		store:     store,
	}
}

// SetActiveUser switches the visible partition to the given user, loading it
// from the persisted store. Zero means no active user: the cart goes empty
// and every mutation becomes a silent no-op.
func (c *Cart) SetActiveUser(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeUser = userID
	c.items = nil
	if userID == 0 {
		return
	}
	for _, item := range c.loadAll() {
		if item.OwnerID == userID {
			c.items = append(c.items, item)
		}
	}
}

func (c *Cart) ActiveUser() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeUser
}

// AddItem appends a cart item for the active user unless one for the same
// job id already exists. Duplicate adds and adds without an active user are
// silent no-ops.
func (c *Cart) AddItem(job models.Job, tier models.ApplyTier) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeUser == 0 {
		return
	}
	for _, item := range c.items {
		if item.Job.ID == job.ID {
			return
		}
	}
	c.items = append(c.items, models.CartItem{
		Job:     job,
		Tier:    tier,
		OwnerID: c.activeUser,
	})
	c.persist()
}

// RemoveItem drops the active user's item for the given job id. Unknown ids
// are a no-op.
func (c *Cart) RemoveItem(jobID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeUser == 0 {
		return
	}
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if item.Job.ID == jobID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	c.items = kept
	c.persist()
}

// Clear empties the active user's partition.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeUser == 0 {
		return
	}
	c.items = nil
	c.persist()
}

// Items returns a snapshot of the active user's partition.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums the fixed tier prices of the active partition, in whole dollars.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Tier.Price()
	}
	return total
}

// loadAll reads the full multi-user blob. Callers hold c.mu.
func (c *Cart) loadAll() []models.CartItem {
	var all []models.CartItem
	ok, err := c.store.Get(c.profileID, KeyCart, &all)
	if err != nil {
		logger.Warn("failed to read persisted cart", "profile_id", c.profileID, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return all
}

// persist rewrites the blob: everyone else's entries as stored, plus the
// active user's current set. Callers hold c.mu.
func (c *Cart) persist() {
	var next []models.CartItem
	for _, item := range c.loadAll() {
		if item.OwnerID != c.activeUser {
			next = append(next, item)
		}
	}
	next = append(next, c.items...)

	if err := c.store.Put(c.profileID, KeyCart, next); err != nil {
		logger.Warn("failed to persist cart", "profile_id", c.profileID, "error", err)
	}
}
