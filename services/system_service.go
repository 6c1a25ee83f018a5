package services

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/blogem/timesheet-tracker/models"
	"github.com/blogem/timesheet-tracker/repositories"
)

// SystemService interface defines request accounting, system info and liveness
type SystemService interface {
	RecordRequest() int64
	RequestCount() int64
	Version() string
	DeploymentTime() string
	Info(ctx context.Context) (*models.SystemInfo, error)
	Health() *models.HealthStatus
}

// systemService implements SystemService interface
type systemService struct {
	timesheetRepo  repositories.TimesheetRepository
	version        string
	startedAt      time.Time
	deploymentTime string
	requests       atomic.Int64
}

// NewSystemService creates a new system service; the deployment time is fixed at creation
func NewSystemService(timesheetRepo repositories.TimesheetRepository, version string) SystemService {
	startedAt := timeNow()
	return &systemService{
		timesheetRepo:  timesheetRepo,
		version:        version,
		startedAt:      startedAt,
		deploymentTime: models.FormatTimestamp(startedAt),
	}
}

// RecordRequest counts one inbound request and returns the new total
func (s *systemService) RecordRequest() int64 {
	return s.requests.Add(1)
}

// RequestCount returns the number of requests served so far
func (s *systemService) RequestCount() int64 {
	return s.requests.Load()
}

// Version returns the application version
func (s *systemService) Version() string {
	return s.version
}

// DeploymentTime returns the process start time as an ISO timestamp
func (s *systemService) DeploymentTime() string {
	return s.deploymentTime
}

// Info returns the static identifiers plus live counters
func (s *systemService) Info(ctx context.Context) (*models.SystemInfo, error) {
	count, err := s.timesheetRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count timesheets: %w", err)
	}

	log.Println("[INFO] System info requested")

	return &models.SystemInfo{
		Version:         s.version,
		DeploymentTime:  s.deploymentTime,
		Status:          "running",
		TotalTimesheets: count,
		TotalRequests:   s.RequestCount(),
	}, nil
}

// Health reports liveness only; it never looks at the store
func (s *systemService) Health() *models.HealthStatus {
	now := timeNow()
	log.Println("[HEALTH] Health check performed")

	return &models.HealthStatus{
		Status:    "healthy",
		Uptime:    max(now.Sub(s.startedAt).Seconds(), 0),
		Timestamp: models.FormatTimestamp(now),
	}
}
