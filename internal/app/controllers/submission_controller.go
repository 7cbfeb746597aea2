package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/services"
	"github.com/kaanb/courseboard/internal/middleware"
	"github.com/kaanb/courseboard/internal/pkg/helpers"
)

// SubmissionController handles submission uploads, listing and download
type SubmissionController struct {
	submissionService services.SubmissionService
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// ListSubmissions handles paginated submission listing
// @Summary List submissions
// @Description Returns one page of submission metadata under the assignment, optionally filtered by student
// @Tags submissions
// @Produce json
// @Param id path int true "Assignment ID"
// @Param studentId query int false "Filter by student id"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionListResponse} "Submission page"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not view these submissions"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/submissions [get]
// @Security BearerAuth
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// studentId 0 means no student filter.
	studentID, _ := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
	if studentID < 0 {
		studentID = 0
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	submissions, pagination, err := c.submissionService.ListSubmissions(
		ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx),
		assignmentID, studentID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       dto.SubmissionListResponse{Submissions: submissions},
		Pagination: pagination,
	})
}

// CreateSubmission handles submission upload
// @Summary Submit to an assignment
// @Description Uploads a file as a new submission. Students only, and only while enrolled in the assignment's course.
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Assignment ID"
// @Param file formData file true "Submission file"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Submission created"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not submit to this assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id}/submissions [post]
// @Security BearerAuth
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing submission file").
			WithDetails("Request must carry a multipart file field named 'file'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.submissionService.CreateSubmission(
		ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx),
		assignmentID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.CreatedResponse{ID: id},
	})
}

// DownloadSubmissionFile handles submission file download
// @Summary Download a submission file
// @Description Streams the stored file with its original content type
// @Tags submissions
// @Produce octet-stream
// @Param id path int true "Submission ID"
// @Success 200 {file} file "Submission file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not view this submission"
// @Failure 404 {object} dto.ErrorResponse "Submission or file not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions/{id}/file [get]
// @Security BearerAuth
func (c *SubmissionController) DownloadSubmissionFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submission, reader, err := c.submissionService.OpenSubmissionFile(
		ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.DataFromReader(http.StatusOK, -1, submission.ContentType, reader, nil)
}
