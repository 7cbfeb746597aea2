package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/filestorage"
	"github.com/kaanb/courseboard/internal/pkg/helpers"
)

// SubmissionService defines the interface for submission uploads, listing
// and file download.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, callerID int64, callerRole models.RoleType, assignmentID int64, fileHeader *multipart.FileHeader) (int64, error)
	ListSubmissions(ctx context.Context, callerID int64, callerRole models.RoleType, assignmentID, studentID int64, page, pageSize int) ([]*dto.SubmissionResponse, *dto.PaginationInfo, error)
	OpenSubmissionFile(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (*models.Submission, io.ReadCloser, error)
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	submissionRepo *repositories.SubmissionRepository
	assignmentRepo *repositories.AssignmentRepository
	authService    *appauth.AuthorizationService
	fileStorage    filestorage.BlobStore
	logger         zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	submissionRepo *repositories.SubmissionRepository,
	assignmentRepo *repositories.AssignmentRepository,
	authService *appauth.AuthorizationService,
	fileStorage filestorage.BlobStore,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		authService:    authService,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// CreateSubmission stores the uploaded file and records the submission. Only
// a student enrolled in the assignment's course may submit. The blob is
// written first and removed again if the metadata insert fails, so the store
// never holds a blob without a row for longer than a failed request.
func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, callerID int64, callerRole models.RoleType, assignmentID int64, fileHeader *multipart.FileHeader) (int64, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return 0, err
	}

	allowed, err := s.authService.CanSubmit(ctx, callerID, callerRole, assignment)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, apperrors.ErrPermissionDenied
	}

	file, err := fileHeader.Open()
	if err != nil {
		return 0, apperrors.NewBadRequestError("could not read uploaded file")
	}
	defer file.Close()

	storedName, err := s.fileStorage.Save(file, fileHeader.Filename)
	if err != nil {
		return 0, fmt.Errorf("error storing submission file: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    callerID,
		SubmittedAt:  time.Now().UTC(),
		FileName:     storedName,
		ContentType:  contentType,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if delErr := s.fileStorage.Delete(storedName); delErr != nil {
			s.logger.Warn().Err(delErr).Str("file", storedName).
				Msg("Failed to delete orphaned submission blob")
		}
		return 0, err
	}

	s.logger.Info().Int64("submissionID", submission.ID).Int64("assignmentID", assignmentID).
		Int64("studentID", callerID).Msg("Submission created")

	return submission.ID, nil
}

// ListSubmissions returns one page of submission metadata under the
// assignment, optionally narrowed to one student (studentID 0 means all).
// Rows are id-ascending, so a submission arriving mid-listing can only
// appear on a later page, never shift earlier ones.
func (s *submissionServiceImpl) ListSubmissions(ctx context.Context, callerID int64, callerRole models.RoleType, assignmentID, studentID int64, page, pageSize int) ([]*dto.SubmissionResponse, *dto.PaginationInfo, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, nil, err
	}

	allowed, err := s.authService.CanViewSubmission(ctx, callerID, callerRole, assignment)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		return nil, nil, apperrors.ErrPermissionDenied
	}

	total, err := s.submissionRepo.Count(ctx, assignmentID, studentID)
	if err != nil {
		return nil, nil, err
	}

	page, totalPages, offset := helpers.Paginate(total, page, pageSize)

	submissions, err := s.submissionRepo.ListPage(ctx, assignmentID, studentID, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}

	resp := make([]*dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		resp = append(resp, &dto.SubmissionResponse{
			ID:           sub.ID,
			AssignmentID: sub.AssignmentID,
			StudentID:    sub.StudentID,
			Timestamp:    sub.SubmittedAt,
		})
	}

	pagination := helpers.NewPaginationInfo(total, page, totalPages, pageSize)
	return resp, &pagination, nil
}

// OpenSubmissionFile authorizes the caller against the submission's
// assignment and opens the stored blob for streaming. The caller must close
// the reader.
func (s *submissionServiceImpl) OpenSubmissionFile(ctx context.Context, callerID int64, callerRole models.RoleType, id int64) (*models.Submission, io.ReadCloser, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, nil, err
	}

	allowed, err := s.authService.CanViewSubmission(ctx, callerID, callerRole, assignment)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		return nil, nil, apperrors.ErrPermissionDenied
	}

	reader, err := s.fileStorage.Open(submission.FileName)
	if err != nil {
		return nil, nil, err
	}

	return submission, reader, nil
}
