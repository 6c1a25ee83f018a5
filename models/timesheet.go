package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Projects lists the choices offered by the dashboard form; the server accepts any value
var Projects = []string{
	"CI/CD Pipeline",
	"Web Development",
	"DevOps",
	"Testing",
}

// TimesheetEntry represents a single submitted timesheet record.
// Client-supplied fields are kept as raw JSON so any value type is stored as sent.
type TimesheetEntry struct {
	Name      json.RawMessage `json:"name,omitempty"`
	Date      json.RawMessage `json:"date,omitempty"`
	Hours     json.RawMessage `json:"hours,omitempty"` // normally a number
	Project   json.RawMessage `json:"project,omitempty"`
	Timestamp string          `json:"timestamp"`
	ID        int64           `json:"id"`

	// Extra holds any other top-level fields of the submission
	Extra map[string]json.RawMessage `json:"-"`
}

// TimesheetSubmission represents the payload of POST /api/timesheets
type TimesheetSubmission struct {
	Name    json.RawMessage
	Date    json.RawMessage
	Hours   json.RawMessage
	Project json.RawMessage
	Extra   map[string]json.RawMessage
}

// timesheetEntryJSON is TimesheetEntry without its custom marshalling
type timesheetEntryJSON struct {
	Name      json.RawMessage `json:"name,omitempty"`
	Date      json.RawMessage `json:"date,omitempty"`
	Hours     json.RawMessage `json:"hours,omitempty"`
	Project   json.RawMessage `json:"project,omitempty"`
	Timestamp string          `json:"timestamp"`
	ID        int64           `json:"id"`
}

// UnmarshalJSON decodes a submission, keeping unknown fields in Extra
func (s *TimesheetSubmission) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("timesheet must be a JSON object: %w", err)
	}

	s.Name = takeRaw(fields, "name")
	s.Date = takeRaw(fields, "date")
	s.Hours = takeRaw(fields, "hours")
	s.Project = takeRaw(fields, "project")

	s.Extra = nil
	if len(fields) > 0 {
		s.Extra = fields
	}
	return nil
}

// NewTimesheetEntry builds an entry from a submission, copying every field verbatim
func NewTimesheetEntry(sub *TimesheetSubmission, timestamp string, id int64) *TimesheetEntry {
	entry := &TimesheetEntry{
		Name:      sub.Name,
		Date:      sub.Date,
		Hours:     sub.Hours,
		Project:   sub.Project,
		Timestamp: timestamp,
		ID:        id,
	}

	for key, value := range sub.Extra {
		// Server-assigned fields always win
		if key == "timestamp" || key == "id" {
			continue
		}
		if entry.Extra == nil {
			entry.Extra = make(map[string]json.RawMessage, len(sub.Extra))
		}
		entry.Extra[key] = value
	}

	return entry
}

// MarshalJSON encodes the entry with its extra fields merged in at the top level
func (e TimesheetEntry) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(timesheetEntryJSON{
		Name:      e.Name,
		Date:      e.Date,
		Hours:     e.Hours,
		Project:   e.Project,
		Timestamp: e.Timestamp,
		ID:        e.ID,
	})
	if err != nil || len(e.Extra) == 0 {
		return base, err
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(base, &known); err != nil {
		return nil, err
	}

	merged := make(map[string]json.RawMessage, len(known)+len(e.Extra))
	for key, value := range e.Extra {
		merged[key] = value
	}
	for key, value := range known {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes an entry previously produced by MarshalJSON
func (e *TimesheetEntry) UnmarshalJSON(data []byte) error {
	var sub TimesheetSubmission
	if err := json.Unmarshal(data, &sub); err != nil {
		return err
	}

	var timestamp string
	if raw, ok := sub.Extra["timestamp"]; ok {
		if err := json.Unmarshal(raw, &timestamp); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	var id int64
	if raw, ok := sub.Extra["id"]; ok {
		if err := json.Unmarshal(raw, &id); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
	}

	*e = *NewTimesheetEntry(&sub, timestamp, id)
	return nil
}

// HoursValue returns hours the way they add up into the total.
// null and false count as 0, true as 1, and numbers beyond float64 range as ±Inf.
// ok is false when hours are absent, a string, an array or an object.
func (e *TimesheetEntry) HoursValue() (float64, bool) {
	raw := strings.TrimSpace(string(e.Hours))
	switch raw {
	case "":
		return 0, false
	case "null", "false":
		return 0, true
	case "true":
		return 1, true
	}

	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		return 0, false
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return hours, true
}

// NameText returns the name for log lines
func (e *TimesheetEntry) NameText() string {
	return rawText(e.Name)
}

// DateText returns the date for log lines
func (e *TimesheetEntry) DateText() string {
	return rawText(e.Date)
}

// HoursText returns hours as written by the client, for log lines
func (e *TimesheetEntry) HoursText() string {
	return rawText(e.Hours)
}

// ProjectText returns the project for log lines
func (e *TimesheetEntry) ProjectText() string {
	return rawText(e.Project)
}

// JSONString encodes s as a raw JSON string value
func JSONString(s string) json.RawMessage {
	data, _ := json.Marshal(s)
	return data
}

// rawText renders a raw value as text: strings unquoted, anything else as its JSON
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "undefined"
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil && raw[0] == '"' {
		return text
	}
	return string(raw)
}

// takeRaw removes key from fields and returns its raw value, nil when absent
func takeRaw(fields map[string]json.RawMessage, key string) json.RawMessage {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	delete(fields, key)
	return raw
}
