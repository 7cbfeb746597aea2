package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/dberrors"
)

// SubmissionRepository handles database operations for submission metadata.
// File bodies live in the blob store; rows here only reference them.
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

// Create inserts submission metadata. Submissions are immutable; there is no
// update operation.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, submitted_at, file_name, content_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		submission.AssignmentID,
		submission.StudentID,
		submission.SubmittedAt,
		submission.FileName,
		submission.ContentType,
	).Scan(&submission.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("error creating submission: %w", err)
	}

	return nil
}

// GetByID retrieves submission metadata by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	query := `
		SELECT id, assignment_id, student_id, submitted_at, file_name, content_type
		FROM submissions
		WHERE id = $1
	`

	var submission models.Submission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.SubmittedAt,
		&submission.FileName,
		&submission.ContentType,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &submission, nil
}

// Count counts submissions under the assignment, optionally narrowed to one
// student (studentID 0 matches all students).
func (r *SubmissionRepository) Count(ctx context.Context, assignmentID, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM submissions
		WHERE assignment_id = $1 AND ($2 = 0 OR student_id = $2)`,
		assignmentID, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting submissions: %w", err)
	}

	return count, nil
}

// ListPage returns one page of submissions under the assignment, optionally
// narrowed to one student, ordered by id (creation order) so later inserts
// only ever appear on later pages.
func (r *SubmissionRepository) ListPage(ctx context.Context, assignmentID, studentID int64, offset uint64, limit int) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, assignment_id, student_id, submitted_at, file_name, content_type
		FROM submissions
		WHERE assignment_id = $1 AND ($2 = 0 OR student_id = $2)
		ORDER BY id
		OFFSET $3 LIMIT $4`,
		assignmentID, studentID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(
			&s.ID,
			&s.AssignmentID,
			&s.StudentID,
			&s.SubmittedAt,
			&s.FileName,
			&s.ContentType,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
