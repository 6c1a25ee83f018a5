package services

import (
	"context"
	"fmt"
	"log"

	"github.com/blogem/timesheet-tracker/events"
	"github.com/blogem/timesheet-tracker/models"
	"github.com/blogem/timesheet-tracker/repositories"
)

// TimesheetService interface defines timesheet business logic
type TimesheetService interface {
	Submit(ctx context.Context, submission *models.TimesheetSubmission) (*models.TimesheetEntry, error)
	List(ctx context.Context) (*models.TimesheetSummary, error)
}

// timesheetService implements TimesheetService interface
type timesheetService struct {
	timesheetRepo repositories.TimesheetRepository
	publisher     events.Publisher
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(timesheetRepo repositories.TimesheetRepository, publisher events.Publisher) TimesheetService {
	return &timesheetService{
		timesheetRepo: timesheetRepo,
		publisher:     publisher,
	}
}

// Submit stores a new entry built verbatim from the submission.
// Nothing is validated; the server only assigns timestamp and id.
func (s *timesheetService) Submit(ctx context.Context, submission *models.TimesheetSubmission) (*models.TimesheetEntry, error) {
	now := timeNow()
	entry := models.NewTimesheetEntry(submission, models.FormatTimestamp(now), models.EntryID(now))

	if err := s.timesheetRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store timesheet: %w", err)
	}

	log.Printf("[SUCCESS] Timesheet submitted: %s - %sh on %s", entry.NameText(), entry.HoursText(), entry.ProjectText())

	// The entry is already stored, so a publishing failure does not fail the submission
	if err := s.publisher.Publish(ctx, entry); err != nil {
		log.Printf("Failed to publish timesheet event: %v", err)
	}

	return entry, nil
}

// List returns the aggregate over all entries and the most recent ones
func (s *timesheetService) List(ctx context.Context) (*models.TimesheetSummary, error) {
	entries, err := s.timesheetRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheets: %w", err)
	}

	log.Printf("[INFO] Fetching timesheets - Total: %d", len(entries))

	return &models.TimesheetSummary{
		Total:      len(entries),
		TotalHours: models.FormatHours(models.SumHours(entries)),
		Timesheets: models.RecentEntries(entries, models.RecentLimit),
	}, nil
}
