package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/blogem/timesheet-tracker/models"
	"github.com/blogem/timesheet-tracker/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// DashboardData is baked into the page at render time; totals are fetched by the page itself
type DashboardData struct {
	RequestCount   int64
	Version        string
	DeploymentTime string
	ServerTime     string
	Projects       []string
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	log.Println("[INFO] Home page accessed")

	templateData := models.PageData{
		Title:       "Timesheet App - CI/CD Demo",
		CurrentPage: "dashboard",
		Data: &DashboardData{
			RequestCount:   c.services.System.RequestCount(),
			Version:        c.services.System.Version(),
			DeploymentTime: c.services.System.DeploymentTime(),
			ServerTime:     models.FormatDateTime(time.Now()),
			Projects:       models.Projects,
		},
	}

	renderTemplate(w, "dashboard", "dashboard.html", templateData)
}
