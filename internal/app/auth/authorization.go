// Package auth is the single source of truth for access-control decisions.
// Every role, ownership and enrollment check in the application routes
// through here; handlers and services never compare role strings themselves.
package auth

import (
	"context"
	"errors"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/logger"
)

// RoleRank maps a role onto the hierarchy used for creation checks.
// Unknown roles rank below student.
func RoleRank(role models.RoleType) int {
	switch role {
	case models.RoleAdmin:
		return 3
	case models.RoleInstructor:
		return 2
	case models.RoleStudent:
		return 1
	default:
		return 0
	}
}

// IsAdmin reports whether the role carries admin privileges.
func IsAdmin(role models.RoleType) bool {
	return role == models.RoleAdmin
}

// CanCreateUser decides whether a caller may create an account with the
// target role. Only an admin may create instructor or admin accounts; any
// authenticated caller may create a student account. Note this is not a
// "higher rank creates lower rank" rule: an instructor may create students
// but not other instructors.
func CanCreateUser(creatorRole, targetRole models.RoleType) bool {
	return !(RoleRank(targetRole) > 1 && RoleRank(creatorRole) != 3)
}

// CanActOnCourse decides whether the caller may administer the course:
// update, delete, roster export and enrollment mutation. Allowed for admins
// and for the course's owning instructor.
func CanActOnCourse(userID int64, role models.RoleType, course *models.Course) bool {
	if IsAdmin(role) {
		return true
	}
	return course != nil && userID == course.InstructorID
}

// CanViewUser decides whether the caller may read a user record: self or
// admin.
func CanViewUser(callerID int64, callerRole models.RoleType, targetID int64) bool {
	return IsAdmin(callerRole) || callerID == targetID
}

// CourseReader is the slice of course persistence the engine consults for
// ownership and enrollment facts.
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	IsStudentEnrolled(ctx context.Context, courseID, studentID int64) (bool, error)
}

// AuthorizationService resolves the ownership and enrollment facts that the
// pure rules above need. Decisions are made per request against committed
// state and are never cached, since enrollment can change between requests.
type AuthorizationService struct {
	courseRepo CourseReader
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courseRepo CourseReader) *AuthorizationService {
	return &AuthorizationService{
		courseRepo: courseRepo,
	}
}

// CanViewSubmission decides whether the caller may read submissions (and
// their files) under the assignment. Instructors and admins defer to course
// ownership; a student is allowed only while enrolled in the assignment's
// course.
func (s *AuthorizationService) CanViewSubmission(ctx context.Context, userID int64, role models.RoleType, assignment *models.Assignment) (bool, error) {
	course, err := s.courseRepo.GetByID(ctx, assignment.CourseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			logger.Warn().Int64("assignmentID", assignment.ID).Int64("courseID", assignment.CourseID).
				Msg("Assignment references a missing course")
			return false, apperrors.ErrCourseNotFound
		}
		return false, err
	}

	if role == models.RoleStudent {
		return s.courseRepo.IsStudentEnrolled(ctx, course.ID, userID)
	}

	return CanActOnCourse(userID, role, course), nil
}

// CanSubmit decides whether the caller may create a submission under the
// assignment: students only, and only while enrolled in the assignment's
// course.
func (s *AuthorizationService) CanSubmit(ctx context.Context, userID int64, role models.RoleType, assignment *models.Assignment) (bool, error) {
	if role != models.RoleStudent {
		return false, nil
	}

	return s.courseRepo.IsStudentEnrolled(ctx, assignment.CourseID, userID)
}

// ValidateCourseOwnership returns ErrPermissionDenied unless the caller may
// administer the course.
func (s *AuthorizationService) ValidateCourseOwnership(userID int64, role models.RoleType, course *models.Course) error {
	if !CanActOnCourse(userID, role, course) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
