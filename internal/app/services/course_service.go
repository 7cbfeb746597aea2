package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/filestorage"
	"github.com/kaanb/courseboard/internal/pkg/helpers"
)

// CourseService defines the interface for course, enrollment and roster
// operations.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (int64, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseFilter, page, pageSize int) ([]*models.Course, *dto.PaginationInfo, error)
	UpdateCourse(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, patch models.CoursePatch) error
	DeleteCourse(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) error
	GetEnrollment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) ([]int64, error)
	UpdateEnrollment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, add, remove []int64) error
	BuildRoster(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (string, error)
	GetAssignmentIDs(ctx context.Context, id int64) ([]int64, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo  *repositories.CourseRepository
	userRepo    *repositories.UserRepository
	authService *appauth.AuthorizationService
	fileStorage filestorage.BlobStore
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	authService *appauth.AuthorizationService,
	fileStorage filestorage.BlobStore,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		authService: authService,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// CreateCourse creates a new course after checking that the instructor
// reference names a user who actually holds the instructor role.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (int64, error) {
	if err := s.validateInstructor(ctx, req.InstructorID); err != nil {
		return 0, err
	}

	course := &models.Course{
		Subject:      req.Subject,
		Number:       req.Number,
		Term:         req.Term,
		InstructorID: req.InstructorID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return 0, err
	}

	s.logger.Info().Int64("courseID", course.ID).Int64("instructorID", course.InstructorID).
		Msg("Course created")

	return course.ID, nil
}

// GetCourse retrieves a course with its assignment and student id sets.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses returns one page of courses matching the filter. Out-of-range
// pages are clamped rather than rejected, so any page number yields a valid
// response.
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter, page, pageSize int) ([]*models.Course, *dto.PaginationInfo, error) {
	total, err := s.courseRepo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	page, totalPages, offset := helpers.Paginate(total, page, pageSize)

	courses, err := s.courseRepo.ListPage(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, totalPages, pageSize)
	return courses, &pagination, nil
}

// UpdateCourse applies a patch to a course the caller administers. A patched
// instructor reference is validated the same way as on create.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, patch models.CoursePatch) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return err
	}

	if patch.InstructorID != nil {
		if err := s.validateInstructor(ctx, *patch.InstructorID); err != nil {
			return err
		}
	}

	return s.courseRepo.Update(ctx, id, patch)
}

// DeleteCourse removes a course, its assignments, enrollments and
// submissions. Submission blobs are removed after the rows commit; a blob
// that fails to delete is logged and left for manual cleanup rather than
// failing the request.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return err
	}

	fileNames, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.removeBlobs(fileNames)
	s.logger.Info().Int64("courseID", id).Int("submissionBlobs", len(fileNames)).
		Msg("Course deleted")

	return nil
}

// GetEnrollment returns the course's enrollment set to a caller who
// administers the course.
func (s *courseServiceImpl) GetEnrollment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) ([]int64, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return nil, err
	}

	return course.StudentIDs, nil
}

// UpdateEnrollment applies additions and removals to the enrollment set in
// one call, additions first. Both operations are idempotent set updates; an
// id present in both lists ends up unenrolled. Every added id must belong to
// a student.
func (s *courseServiceImpl) UpdateEnrollment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, add, remove []int64) error {
	if len(add) == 0 && len(remove) == 0 {
		return apperrors.ErrNoUpdatableFields
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return err
	}

	add = dedupIDs(add)
	if len(add) > 0 {
		count, err := s.userRepo.CountStudentsByIDs(ctx, add)
		if err != nil {
			return err
		}
		if count != int64(len(add)) {
			return apperrors.NewBadRequestError("add list contains ids that are not students")
		}
	}

	if err := s.courseRepo.AddStudents(ctx, id, add); err != nil {
		return err
	}
	if err := s.courseRepo.RemoveStudents(ctx, id, remove); err != nil {
		return err
	}

	s.logger.Info().Int64("courseID", id).Int("added", len(add)).Int("removed", len(remove)).
		Msg("Enrollment updated")

	return nil
}

// BuildRoster projects the course's enrolled students to CSV text. An empty
// roster yields an empty string; the boundary decides how to report that.
func (s *courseServiceImpl) BuildRoster(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (string, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return "", err
	}

	students, err := s.courseRepo.GetRosterStudents(ctx, id)
	if err != nil {
		return "", err
	}

	return ProjectRosterCSV(students), nil
}

// GetAssignmentIDs returns the ids of the course's assignments.
func (s *courseServiceImpl) GetAssignmentIDs(ctx context.Context, id int64) ([]int64, error) {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.courseRepo.GetAssignmentIDs(ctx, id)
}

// validateInstructor checks that the referenced user exists and holds the
// instructor role.
func (s *courseServiceImpl) validateInstructor(ctx context.Context, instructorID int64) error {
	instructor, err := s.userRepo.GetUserByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidInstructor
		}
		return fmt.Errorf("error resolving instructor: %w", err)
	}
	if instructor.Role != models.RoleInstructor {
		return apperrors.ErrInvalidInstructor
	}
	return nil
}

// removeBlobs deletes submission blobs left behind by a cascading delete.
func (s *courseServiceImpl) removeBlobs(fileNames []string) {
	for _, name := range fileNames {
		if err := s.fileStorage.Delete(name); err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("Failed to delete submission blob")
		}
	}
}

// dedupIDs removes duplicate ids preserving first occurrence order.
func dedupIDs(ids []int64) []int64 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
