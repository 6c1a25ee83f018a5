package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/blogem/timesheet-tracker/models"
)

// sqliteTimesheetRepository implements TimesheetRepository on SQLite
type sqliteTimesheetRepository struct {
	db *sql.DB
}

// NewSQLiteTimesheetRepository creates a timesheet repository backed by a migrated SQLite database
func NewSQLiteTimesheetRepository(db *sql.DB) TimesheetRepository {
	return &sqliteTimesheetRepository{db: db}
}

// Append inserts a new timesheet entry
func (r *sqliteTimesheetRepository) Append(ctx context.Context, entry *models.TimesheetEntry) error {
	query := `
		INSERT INTO timesheets (id, name, date, hours, project, timestamp, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var extra sql.NullString
	if len(entry.Extra) > 0 {
		data, err := json.Marshal(entry.Extra)
		if err != nil {
			return fmt.Errorf("failed to encode extra fields: %w", err)
		}
		extra = sql.NullString{String: string(data), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		rawColumn(entry.Name),
		rawColumn(entry.Date),
		rawColumn(entry.Hours),
		rawColumn(entry.Project),
		entry.Timestamp,
		extra,
	)
	if err != nil {
		return fmt.Errorf("failed to insert timesheet: %w", err)
	}

	return nil
}

// Count returns the number of stored entries
func (r *sqliteTimesheetRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM timesheets").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count timesheets: %w", err)
	}
	return count, nil
}

// All returns every entry in insertion order
func (r *sqliteTimesheetRepository) All(ctx context.Context) ([]models.TimesheetEntry, error) {
	query := `
		SELECT id, name, date, hours, project, timestamp, extra
		FROM timesheets
		ORDER BY seq ASC
	`
	return r.query(ctx, query)
}

// Close closes the database connection
func (r *sqliteTimesheetRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteTimesheetRepository) query(ctx context.Context, query string, args ...any) ([]models.TimesheetEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	entries := []models.TimesheetEntry{}
	for rows.Next() {
		var (
			entry                      models.TimesheetEntry
			name, date, hours, project sql.NullString
			extra                      sql.NullString
		)
		err := rows.Scan(
			&entry.ID,
			&name,
			&date,
			&hours,
			&project,
			&entry.Timestamp,
			&extra,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}

		entry.Name = rawValue(name)
		entry.Date = rawValue(date)
		entry.Hours = rawValue(hours)
		entry.Project = rawValue(project)
		if extra.Valid {
			if err := json.Unmarshal([]byte(extra.String), &entry.Extra); err != nil {
				return nil, fmt.Errorf("failed to decode extra fields: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timesheets: %w", err)
	}

	return entries, nil
}

// rawColumn stores a raw JSON field as text, NULL when the field was absent
func rawColumn(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

func rawValue(column sql.NullString) json.RawMessage {
	if !column.Valid {
		return nil
	}
	return json.RawMessage(column.String)
}
