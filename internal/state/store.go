package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key of one browser profile. Values are opaque JSON
// blobs written whole; there is no partial update, so concurrent writers of
// the same key resolve last-write-wins, exactly like the browser storage this
// store replaces.
type Entry struct {
	ProfileID string         `gorm:"primaryKey;size:64"`
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string {
	return "profile_state"
}

// Store is the durable key-value store for browser-profile state: the cached
// user record, the bearer token and the combined cart blob. One embedded
// SQLite file, one row per (profile, key).
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the state database at path and migrates the schema.
// WAL mode plus a busy timeout lets concurrent requests of different browser
// profiles write without tripping over SQLite's file lock.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open state db at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-open connection. Used by tests.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get unmarshals the blob stored under (profileID, key) into out. The second
// return is false when the key has never been written or was deleted.
func (s *Store) Get(profileID, key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.db.Where("profile_id = ? AND key = ?", profileID, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		return false, fmt.Errorf("decode state %s/%s: %w", profileID, key, err)
	}
	return true, nil
}

// Put serializes value and writes it whole under (profileID, key).
func (s *Store) Put(profileID, key string, value interface{}) error {
	return s.put(s.db, profileID, key, value)
}

// PutAll writes several keys of one profile in a single transaction, so that
// related keys (user and token) are either all replaced or none.
func (s *Store) PutAll(profileID string, values map[string]interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := s.put(tx, profileID, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) put(db *gorm.DB, profileID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %s/%s: %w", profileID, key, err)
	}
	entry := Entry{
		ProfileID: profileID,
		Key:       key,
		Value:     datatypes.JSON(raw),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes the given keys of one profile in a single transaction.
// Missing keys are not an error.
func (s *Store) Delete(profileID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.
		Where("profile_id = ? AND key IN ?", profileID, keys).
		Delete(&Entry{}).Error
}

// PurgeStale drops every entry not touched since cutoff and reports how many
// rows went away. Driven by the background sweeper.
func (s *Store) PurgeStale(cutoff time.Time) (int64, error) {
	result := s.db.Where("updated_at < ?", cutoff).Delete(&Entry{})
	return result.RowsAffected, result.Error
}
