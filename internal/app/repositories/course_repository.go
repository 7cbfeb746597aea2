package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/db"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/dberrors"
)

// CourseFilter narrows course listings. Empty fields match everything.
type CourseFilter struct {
	Subject string
	Number  string
	Term    string
}

// CourseRepository handles database operations for courses, including their
// enrollment and assignment sets.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course. A new course starts with empty enrollment and
// assignment sets by construction.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (subject, number, term, instructor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Subject, course.Number, course.Term, course.InstructorID).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID together with its assignment and student
// id sets.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, subject, number, term, instructor_id, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Subject,
		&course.Number,
		&course.Term,
		&course.InstructorID,
		&course.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if course.AssignmentIDs, err = r.GetAssignmentIDs(ctx, id); err != nil {
		return nil, err
	}
	if course.StudentIDs, err = r.GetStudentIDs(ctx, id); err != nil {
		return nil, err
	}

	return &course, nil
}

// Count returns the number of courses matching the filter.
func (r *CourseRepository) Count(ctx context.Context, filter CourseFilter) (int64, error) {
	where, args := buildCourseWhere(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}

// ListPage returns one page of courses matching the filter, ordered by id so
// sequential page fetches never skip or duplicate an item.
func (r *CourseRepository) ListPage(ctx context.Context, filter CourseFilter, offset uint64, limit int) ([]*models.Course, error) {
	where, args := buildCourseWhere(filter)
	query := fmt.Sprintf(`
		SELECT id, subject, number, term, instructor_id, created_at
		FROM courses%s
		ORDER BY id
		OFFSET $%d LIMIT $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Subject,
			&course.Number,
			&course.Term,
			&course.InstructorID,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// buildCourseWhere renders the WHERE clause for a course filter.
func buildCourseWhere(filter CourseFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Subject != "" {
		args = append(args, filter.Subject)
		conds = append(conds, fmt.Sprintf("subject = $%d", len(args)))
	}
	if filter.Number != "" {
		args = append(args, filter.Number)
		conds = append(conds, fmt.Sprintf("number = $%d", len(args)))
	}
	if filter.Term != "" {
		args = append(args, filter.Term)
		conds = append(conds, fmt.Sprintf("term = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update applies a typed patch to a course. An empty patch is reported as
// ErrNoUpdatableFields, distinct from a missing course.
func (r *CourseRepository) Update(ctx context.Context, id int64, patch models.CoursePatch) error {
	if patch.Empty() {
		return apperrors.ErrNoUpdatableFields
	}

	var fields []patchField
	if patch.Subject != nil {
		fields = append(fields, patchField{"subject", *patch.Subject})
	}
	if patch.Number != nil {
		fields = append(fields, patchField{"number", *patch.Number})
	}
	if patch.Term != nil {
		fields = append(fields, patchField{"term", *patch.Term})
	}
	if patch.InstructorID != nil {
		fields = append(fields, patchField{"instructor_id", *patch.InstructorID})
	}

	set, args := buildSetClause(fields, 2)
	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $1", set)

	cmdTag, err := r.db.Exec(ctx, query, append([]interface{}{id}, args...)...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and, through cascading constraints, its
// assignments, enrollments and submission rows. It returns the blob names of
// the deleted submissions so the caller can clean up the file store.
func (r *CourseRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	var fileNames []string

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT s.file_name
			FROM submissions s
			JOIN assignments a ON a.id = s.assignment_id
			WHERE a.course_id = $1`,
			id)
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

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return fileNames, nil
}

// AddStudents enrolls the given students. Enrolling an already-enrolled
// student is a no-op, not an error.
func (r *CourseRepository) AddStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (course_id, student_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		courseID, studentIDs)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error enrolling students: %w", err)
	}

	return nil
}

// RemoveStudents unenrolls the given students. Removing a student who is not
// enrolled is a no-op, not an error.
func (r *CourseRepository) RemoveStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		DELETE FROM enrollments
		WHERE course_id = $1 AND student_id = ANY($2)`,
		courseID, studentIDs)
	if err != nil {
		return fmt.Errorf("error unenrolling students: %w", err)
	}

	return nil
}

// GetStudentIDs returns the course's enrollment set.
func (r *CourseRepository) GetStudentIDs(ctx context.Context, courseID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id FROM enrollments WHERE course_id = $1 ORDER BY student_id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment set: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// GetAssignmentIDs returns the course's assignment set in creation order.
func (r *CourseRepository) GetAssignmentIDs(ctx context.Context, courseID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM assignments WHERE course_id = $1 ORDER BY id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignment set: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// IsStudentEnrolled checks enrollment set membership.
func (r *CourseRepository) IsStudentEnrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	var enrolled bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return enrolled, nil
}

// GetRosterStudents resolves the enrollment set to public user records for
// roster projection. Credential and role fields are not loaded.
func (r *CourseRepository) GetRosterStudents(ctx context.Context, courseID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.name, u.email
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY u.id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		students = append(students, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
