package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/db"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/dberrors"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

// Create inserts a new assignment. The row carries the course reference, so
// the assignment is discoverable from its course atomically with insertion.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (course_id, title, points, due)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		assignment.CourseID, assignment.Title, assignment.Points, assignment.Due).
		Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `
		SELECT id, course_id, title, points, due, created_at
		FROM assignments
		WHERE id = $1
	`

	var assignment models.Assignment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.CourseID,
		&assignment.Title,
		&assignment.Points,
		&assignment.Due,
		&assignment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return &assignment, nil
}

// Update applies a typed patch to an assignment. An empty patch is reported
// as ErrNoUpdatableFields, distinct from a missing assignment.
func (r *AssignmentRepository) Update(ctx context.Context, id int64, patch models.AssignmentPatch) error {
	if patch.Empty() {
		return apperrors.ErrNoUpdatableFields
	}

	var fields []patchField
	if patch.Title != nil {
		fields = append(fields, patchField{"title", *patch.Title})
	}
	if patch.Points != nil {
		fields = append(fields, patchField{"points", *patch.Points})
	}
	if patch.Due != nil {
		fields = append(fields, patchField{"due", *patch.Due})
	}

	set, args := buildSetClause(fields, 2)
	query := fmt.Sprintf("UPDATE assignments SET %s WHERE id = $1", set)

	cmdTag, err := r.db.Exec(ctx, query, append([]interface{}{id}, args...)...)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// Delete removes an assignment and its submission rows in one transaction.
// It returns the blob names of the deleted submissions so the caller can
// clean up the file store.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	var fileNames []string

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT file_name FROM submissions WHERE assignment_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error collecting submission blobs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			fileNames = append(fileNames, name)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting assignment: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrAssignmentNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return fileNames, nil
}
