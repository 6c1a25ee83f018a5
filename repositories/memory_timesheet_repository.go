package repositories

import (
	"context"
	"sync"

	"github.com/blogem/timesheet-tracker/models"
)

// memoryTimesheetRepository keeps entries in process memory; they are lost on restart
type memoryTimesheetRepository struct {
	mu      sync.RWMutex
	entries []models.TimesheetEntry
}

// NewMemoryTimesheetRepository creates an empty in-memory timesheet repository
func NewMemoryTimesheetRepository() TimesheetRepository {
	return &memoryTimesheetRepository{}
}

// Append stores a copy of the entry at the end of the sequence
func (r *memoryTimesheetRepository) Append(ctx context.Context, entry *models.TimesheetEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

// Count returns the number of stored entries
func (r *memoryTimesheetRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries), nil
}

// All returns every entry in insertion order
func (r *memoryTimesheetRepository) All(ctx context.Context) ([]models.TimesheetEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.TimesheetEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

// Close is a no-op for the memory store
func (r *memoryTimesheetRepository) Close() error {
	return nil
}
