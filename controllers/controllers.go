package controllers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/blogem/timesheet-tracker/services"
	"github.com/blogem/timesheet-tracker/templates"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := template.New(templateName).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// writeJSON encodes data as the JSON response body
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Dashboard *DashboardController
	Timesheet *TimesheetController
	System    *SystemController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Dashboard: NewDashboardController(services),
		Timesheet: NewTimesheetController(services),
		System:    NewSystemController(services),
	}
}
