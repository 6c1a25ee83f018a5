// Package events publishes timesheet submission events to external consumers.
package events

import (
	"context"
	"log"

	"github.com/blogem/timesheet-tracker/models"
)

// Publisher sends an event for every stored timesheet entry.
// Implementations must not block the request on network I/O.
type Publisher interface {
	Publish(ctx context.Context, entry *models.TimesheetEntry) error
	Close() error
}

// LogPublisher is the default publisher; it only writes a debug line
type LogPublisher struct{}

// NewLogPublisher creates a publisher that logs instead of sending
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the entry id
func (p *LogPublisher) Publish(ctx context.Context, entry *models.TimesheetEntry) error {
	log.Printf("[EVENT] timesheet.submitted id=%d", entry.ID)
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error {
	return nil
}
