package repositories

import (
	"context"
	"fmt"

	"github.com/blogem/timesheet-tracker/config"
	"github.com/blogem/timesheet-tracker/database"
	"github.com/blogem/timesheet-tracker/models"
)

// TimesheetRepository defines timesheet storage operations.
// Entries are append-only and kept in insertion order.
type TimesheetRepository interface {
	Append(ctx context.Context, entry *models.TimesheetEntry) error
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]models.TimesheetEntry, error)
	Close() error
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Timesheet TimesheetRepository
}

// NewRepositories creates the repositories for the configured store driver
func NewRepositories(cfg *config.Config) (*Repositories, error) {
	var (
		timesheets TimesheetRepository
		err        error
	)

	switch cfg.StoreDriver {
	case config.StoreMemory:
		timesheets = NewMemoryTimesheetRepository()
	case config.StoreSQLite:
		db, dbErr := database.InitializeDatabase(cfg.DBPath)
		if dbErr != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", dbErr)
		}
		timesheets = NewSQLiteTimesheetRepository(db)
	case config.StoreBolt:
		timesheets, err = NewBoltTimesheetRepository(cfg.DBPath)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}

	return &Repositories{
		Timesheet: timesheets,
	}, nil
}

// Close releases the resources held by all repositories
func (r *Repositories) Close() error {
	return r.Timesheet.Close()
}

