package database

import (
	"database/sql"
	"fmt"

	"filingai/models"
)

// SubmissionStore journals submission outcomes. It stores outcomes only;
// option lists are live UI state and never hit the database.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore wraps an open connection.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Record inserts one submission outcome.
func (s *SubmissionStore) Record(rec models.SubmissionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO submissions (id, target_url, section, status, error_detail, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.TargetURL, rec.Section, rec.Status, rec.ErrorDetail, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error recording submission %s: %w", rec.ID, err)
	}
	return nil
}

// History returns the most recent submission outcomes, newest first.
func (s *SubmissionStore) History(limit int) ([]models.SubmissionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, target_url, section, status, error_detail, created_at
		 FROM submissions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error reading submission history: %w", err)
	}
	defer rows.Close()

	var records []models.SubmissionRecord
	for rows.Next() {
		var rec models.SubmissionRecord
		if err := rows.Scan(&rec.ID, &rec.TargetURL, &rec.Section, &rec.Status, &rec.ErrorDetail, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning submission row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
