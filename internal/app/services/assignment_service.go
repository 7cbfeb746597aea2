package services

import (
	"context"

	"github.com/rs/zerolog"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/pkg/filestorage"
)

// AssignmentService defines the interface for assignment operations.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, req *dto.CreateAssignmentRequest) (int64, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	UpdateAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, patch models.AssignmentPatch) error
	DeleteAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) error
}

// assignmentServiceImpl implements AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	courseRepo     *repositories.CourseRepository
	authService    *appauth.AuthorizationService
	fileStorage    filestorage.BlobStore
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	courseRepo *repositories.CourseRepository,
	authService *appauth.AuthorizationService,
	fileStorage filestorage.BlobStore,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		authService:    authService,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// CreateAssignment creates an assignment under a course the caller
// administers. The insert itself carries the course linkage, so the new
// assignment appears in the course's assignment set atomically.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, req *dto.CreateAssignmentRequest) (int64, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return 0, err
	}
	if err := s.authService.ValidateCourseOwnership(callerID, callerRole, course); err != nil {
		return 0, err
	}

	assignment := &models.Assignment{
		CourseID: req.CourseID,
		Title:    req.Title,
		Points:   req.Points,
		Due:      req.Due,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return 0, err
	}

	s.logger.Info().Int64("assignmentID", assignment.ID).Int64("courseID", course.ID).
		Msg("Assignment created")

	return assignment.ID, nil
}

// GetAssignment retrieves an assignment by ID
func (s *assignmentServiceImpl) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// UpdateAssignment applies a patch to an assignment whose course the caller
// administers. The patch cannot move the assignment to another course.
func (s *assignmentServiceImpl) UpdateAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64, patch models.AssignmentPatch) error {
	if err := s.authorize(ctx, callerID, callerRole, id); err != nil {
		return err
	}

	return s.assignmentRepo.Update(ctx, id, patch)
}

// DeleteAssignment removes an assignment and its submissions. Blob cleanup
// follows the row delete and never fails the request.
func (s *assignmentServiceImpl) DeleteAssignment(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) error {
	if err := s.authorize(ctx, callerID, callerRole, id); err != nil {
		return err
	}

	fileNames, err := s.assignmentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	for _, name := range fileNames {
		if err := s.fileStorage.Delete(name); err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("Failed to delete submission blob")
		}
	}

	s.logger.Info().Int64("assignmentID", id).Int("submissionBlobs", len(fileNames)).
		Msg("Assignment deleted")

	return nil
}

// authorize resolves the assignment's course and checks ownership.
func (s *assignmentServiceImpl) authorize(ctx context.Context, callerID int64, callerRole models.RoleType, assignmentID int64) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, assignment.CourseID)
	if err != nil {
		return err
	}

	return s.authService.ValidateCourseOwnership(callerID, callerRole, course)
}
