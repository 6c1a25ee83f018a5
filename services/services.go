package services

import (
	"time"

	"github.com/blogem/timesheet-tracker/events"
	"github.com/blogem/timesheet-tracker/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// Services holds all service instances
type Services struct {
	Timesheet TimesheetService
	System    SystemService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, publisher events.Publisher, version string) *Services {
	return &Services{
		Timesheet: NewTimesheetService(repos.Timesheet, publisher),
		System:    NewSystemService(repos.Timesheet, version),
	}
}
