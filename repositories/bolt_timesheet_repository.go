package repositories

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blogem/timesheet-tracker/models"
	bolt "go.etcd.io/bbolt"
)

var bucketTimesheets = []byte("timesheets")

// boltTimesheetRepository stores entries as JSON values keyed by a big-endian sequence number
type boltTimesheetRepository struct {
	db *bolt.DB
}

// NewBoltTimesheetRepository opens (or creates) a bbolt database at the given path
func NewBoltTimesheetRepository(path string) (TimesheetRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTimesheets)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create timesheets bucket: %w", err)
	}

	return &boltTimesheetRepository{db: db}, nil
}

// Append stores the entry under the next sequence number
func (r *boltTimesheetRepository) Append(ctx context.Context, entry *models.TimesheetEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode timesheet: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTimesheets)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), value)
	})
	if err != nil {
		return fmt.Errorf("failed to insert timesheet: %w", err)
	}

	return nil
}

// Count returns the number of stored entries
func (r *boltTimesheetRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(bucketTimesheets).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count timesheets: %w", err)
	}
	return count, nil
}

// All returns every entry in insertion order
func (r *boltTimesheetRepository) All(ctx context.Context) ([]models.TimesheetEntry, error) {
	entries := []models.TimesheetEntry{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTimesheets).ForEach(func(k, v []byte) error {
			var entry models.TimesheetEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to decode timesheet %d: %w", binary.BigEndian.Uint64(k), err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read timesheets: %w", err)
	}
	return entries, nil
}

// Close closes the underlying bbolt database
func (r *boltTimesheetRepository) Close() error {
	return r.db.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
