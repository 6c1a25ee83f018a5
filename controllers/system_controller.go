package controllers

import (
	"net/http"

	"github.com/blogem/timesheet-tracker/services"
)

// SystemController handles system info and health requests
type SystemController struct {
	services *services.Services
}

// NewSystemController creates a new system controller
func NewSystemController(services *services.Services) *SystemController {
	return &SystemController{
		services: services,
	}
}

// Info handles GET /api/info
func (c *SystemController) Info(w http.ResponseWriter, r *http.Request) {
	info, err := c.services.System.Info(r.Context())
	if err != nil {
		http.Error(w, "Failed to load system info: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// Health handles GET /health
func (c *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.services.System.Health())
}
