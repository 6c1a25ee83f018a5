package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/timesheet-tracker/controllers"
	"github.com/blogem/timesheet-tracker/events"
	"github.com/blogem/timesheet-tracker/models"
	"github.com/blogem/timesheet-tracker/repositories"
	"github.com/blogem/timesheet-tracker/services"
)

// setupTestServer starts the full router over a fresh in-memory store
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "robots.txt"), []byte("User-agent: *"), 0o644))

	repos := &repositories.Repositories{Timesheet: repositories.NewMemoryTimesheetRepository()}
	srvs := services.NewServices(repos, events.NewLogPublisher(), "1.0.0-test")
	r := setupRouter(controllers.NewControllers(srvs), srvs.System, staticDir)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func postTimesheet(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/timesheets", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

type submitResponse struct {
	Success bool                  `json:"success"`
	Entry   models.TimesheetEntry `json:"entry"`
}

func TestListBeforeAnySubmission(t *testing.T) {
	srv := setupTestServer(t)

	var raw map[string]json.RawMessage
	resp := getJSON(t, srv, "/api/timesheets", &raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `0`, string(raw["total"]))
	assert.JSONEq(t, `"0.0"`, string(raw["totalHours"]))
	assert.JSONEq(t, `[]`, string(raw["timesheets"]))
}

func TestSubmitAndList(t *testing.T) {
	srv := setupTestServer(t)

	resp := postTimesheet(t, srv, `{"name":"Alice","date":"2024-01-01","hours":8,"project":"Testing"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "Alice", result.Entry.NameText())
	assert.NotEmpty(t, result.Entry.Timestamp)
	assert.NotZero(t, result.Entry.ID)

	var summary models.TimesheetSummary
	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, "8.0", summary.TotalHours)
	require.Len(t, summary.Timesheets, 1)
	assert.Equal(t, "Alice", summary.Timesheets[0].NameText())
}

func TestSubmitElevenKeepsTenNewest(t *testing.T) {
	srv := setupTestServer(t)

	for i := 1; i <= 11; i++ {
		resp := postTimesheet(t, srv, fmt.Sprintf(`{"name":"Employee %d","hours":2}`, i))
		resp.Body.Close()
	}

	var summary models.TimesheetSummary
	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, 11, summary.Total)
	assert.Equal(t, "22.0", summary.TotalHours)
	require.Len(t, summary.Timesheets, 10)
	assert.Equal(t, "Employee 11", summary.Timesheets[0].NameText())
	assert.Equal(t, "Employee 2", summary.Timesheets[9].NameText())
}

func TestSubmitAcceptsAnyObject(t *testing.T) {
	srv := setupTestServer(t)

	for _, body := range []string{`{}`, ``, `{"hours":"eight","team":"blue"}`} {
		resp := postTimesheet(t, srv, body)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body %q", body)
	}

	var summary models.TimesheetSummary
	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, "NaN", summary.TotalHours)
	assert.Equal(t, `"blue"`, string(summary.Timesheets[0].Extra["team"]))
}

func TestSubmitKeepsNonStringFields(t *testing.T) {
	srv := setupTestServer(t)

	bodies := map[string]string{
		`{"name":42,"hours":8}`:           `"name":42`,
		`{"project":["a","b"],"hours":8}`: `"project":["a","b"]`,
		`{"date":{"day":1},"name":true}`:  `"date":{"day":1}`,
	}
	for body, want := range bodies {
		resp := postTimesheet(t, srv, body)
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "body %q", body)
		assert.Contains(t, string(data), want)
	}

	var raw struct {
		Total      int               `json:"total"`
		Timesheets []json.RawMessage `json:"timesheets"`
	}
	getJSON(t, srv, "/api/timesheets", &raw)
	assert.Equal(t, 3, raw.Total)
	require.Len(t, raw.Timesheets, 3)
}

func TestSubmitNullAndMissingFields(t *testing.T) {
	srv := setupTestServer(t)

	resp := postTimesheet(t, srv, `{"name":null,"hours":8}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Entry map[string]json.RawMessage `json:"entry"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, `null`, string(result.Entry["name"]))
	assert.Equal(t, `8`, string(result.Entry["hours"]))
	assert.NotContains(t, result.Entry, "date")
	assert.NotContains(t, result.Entry, "project")

	var listed struct {
		Timesheets []map[string]json.RawMessage `json:"timesheets"`
	}
	getJSON(t, srv, "/api/timesheets", &listed)
	require.Len(t, listed.Timesheets, 1)
	assert.Equal(t, `null`, string(listed.Timesheets[0]["name"]))
	assert.NotContains(t, listed.Timesheets[0], "date")
}

func TestTotalHoursCoercesBooleansAndOverflow(t *testing.T) {
	srv := setupTestServer(t)

	for _, body := range []string{`{"hours":8}`, `{"hours":true}`, `{"hours":false}`, `{"hours":null}`} {
		resp := postTimesheet(t, srv, body)
		resp.Body.Close()
	}

	var summary models.TimesheetSummary
	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, "9.0", summary.TotalHours)

	resp := postTimesheet(t, srv, `{"hours":1e400}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, "Infinity", summary.TotalHours)
}

func TestSubmitUnparseableBody(t *testing.T) {
	srv := setupTestServer(t)

	for _, body := range []string{`{"name":`, `[1,2]`, `{"name":"a"} trailing`, `{"name":"a"}{"name":"b"}`} {
		resp := postTimesheet(t, srv, body)
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "body %q", body)
	}

	var summary models.TimesheetSummary
	getJSON(t, srv, "/api/timesheets", &summary)
	assert.Equal(t, 0, summary.Total)
}

func TestSubmitTrailingWhitespace(t *testing.T) {
	srv := setupTestServer(t)

	resp := postTimesheet(t, srv, "{\"name\":\"a\"}\n  \n")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t)

	var health models.HealthStatus
	resp := getJSON(t, srv, "/health", &health)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.Uptime, 0.0)
	assert.NotEmpty(t, health.Timestamp)
}

func TestInfoCountsEveryRequest(t *testing.T) {
	srv := setupTestServer(t)

	for _, path := range []string{"/health", "/api/timesheets", "/does-not-exist", "/static/robots.txt", "/"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
	resp := postTimesheet(t, srv, `{"name":"Alice","hours":8}`)
	resp.Body.Close()

	var info models.SystemInfo
	getJSON(t, srv, "/api/info", &info)
	assert.Equal(t, "1.0.0-test", info.Version)
	assert.Equal(t, "running", info.Status)
	assert.NotEmpty(t, info.DeploymentTime)
	assert.Equal(t, 1, info.TotalTimesheets)
	assert.Equal(t, int64(7), info.TotalRequests)

	getJSON(t, srv, "/api/info", &info)
	assert.Equal(t, int64(8), info.TotalRequests)
}

func TestDashboard(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	page := string(body)
	assert.Contains(t, page, "<title>Timesheet App - CI/CD Demo</title>")
	assert.Contains(t, page, `<div class="stat-value" id="requestCount">2</div>`)
	assert.Contains(t, page, "1.0.0-test")
	assert.Contains(t, page, "Web Development")
}

func TestRootCommandRejectsUnknownStore(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--store", "postgres"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid store driver")
}
