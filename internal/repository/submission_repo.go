package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/models"
)

// SubmissionRepository handles submission journal database operations
type SubmissionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sql.DB, logger *zap.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// Create journals a submission
func (r *SubmissionRepository) Create(sub *models.Submission) error {
	query := `
		INSERT INTO submissions (
			form_id, title, vertical, item_count, grand_total,
			payload, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		sub.FormID,
		sub.Title,
		sub.Vertical,
		sub.ItemCount,
		sub.GrandTotal,
		sub.Payload,
		sub.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("Failed to journal submission",
			zap.String("form_id", sub.FormID),
			zap.Error(err))
		return fmt.Errorf("failed to journal submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	sub.ID = id
	return nil
}

// GetByID retrieves a journaled submission by ID
func (r *SubmissionRepository) GetByID(id int64) (*models.Submission, error) {
	query := `
		SELECT id, form_id, title, vertical, item_count, grand_total,
			payload, submitted_at, created_at
		FROM submissions
		WHERE id = ?
	`

	var sub models.Submission
	err := r.db.QueryRow(query, id).Scan(
		&sub.ID,
		&sub.FormID,
		&sub.Title,
		&sub.Vertical,
		&sub.ItemCount,
		&sub.GrandTotal,
		&sub.Payload,
		&sub.SubmittedAt,
		&sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &sub, nil
}

// List retrieves journaled submissions, newest first, optionally filtered
// by form id. An empty formID returns every form's submissions.
func (r *SubmissionRepository) List(formID string, limit int) ([]*models.Submission, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, form_id, title, vertical, item_count, grand_total,
			payload, submitted_at, created_at
		FROM submissions
	`
	args := []interface{}{}
	if formID != "" {
		query += " WHERE form_id = ?"
		args = append(args, formID)
	}
	query += " ORDER BY submitted_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(
			&sub.ID,
			&sub.FormID,
			&sub.Title,
			&sub.Vertical,
			&sub.ItemCount,
			&sub.GrandTotal,
			&sub.Payload,
			&sub.SubmittedAt,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}
