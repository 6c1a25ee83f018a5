package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blogem/timesheet-tracker/models"
	"github.com/blogem/timesheet-tracker/services"
)

// TimesheetController handles the timesheet JSON API
type TimesheetController struct {
	services *services.Services
}

// NewTimesheetController creates a new timesheet controller
func NewTimesheetController(services *services.Services) *TimesheetController {
	return &TimesheetController{
		services: services,
	}
}

// List handles GET /api/timesheets
func (c *TimesheetController) List(w http.ResponseWriter, r *http.Request) {
	summary, err := c.services.Timesheet.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to load timesheets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Create handles POST /api/timesheets.
// Any JSON object is accepted; only an unparseable body is an error.
func (c *TimesheetController) Create(w http.ResponseWriter, r *http.Request) {
	var submission models.TimesheetSubmission
	if err := decodeSubmission(r.Body, &submission); err != nil {
		http.Error(w, "Failed to parse timesheet: "+err.Error(), http.StatusInternalServerError)
		return
	}

	entry, err := c.services.Timesheet.Submit(r.Context(), &submission)
	if err != nil {
		http.Error(w, "Failed to submit timesheet: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.SubmitResult{
		Success: true,
		Entry:   entry,
	})
}

// decodeSubmission reads exactly one JSON object from body.
// An empty body is treated as an empty object.
func decodeSubmission(body io.Reader, submission *models.TimesheetSubmission) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(submission); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after timesheet object")
	}
	return nil
}
