package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/app/services"
	"github.com/kaanb/courseboard/internal/middleware"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
	"github.com/kaanb/courseboard/internal/pkg/helpers"
)

// CourseController handles course, enrollment and roster operations
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses handles the public course listing
// @Summary List courses
// @Description Returns one page of courses, filterable by subject, number and term. Out-of-range pages are clamped.
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param subject query string false "Subject code filter"
// @Param number query string false "Course number filter"
// @Param term query string false "Term filter"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Course page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := repositories.CourseFilter{
		Subject: ctx.Query("subject"),
		Number:  ctx.Query("number"),
		Term:    ctx.Query("term"),
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	courses, pagination, err := c.courseService.ListCourses(ctx.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	links := buildPageLinks("/api/v1/courses", pagination, map[string]string{
		"subject": filter.Subject,
		"number":  filter.Number,
		"term":    filter.Term,
	})

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       dto.CourseListResponse{Courses: courses},
		Pagination: pagination,
		Links:      links,
	})
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a new course. Admin only; the instructor reference must name an instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or instructor reference"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
// @Security BearerAuth
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid course creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.CreatedResponse{ID: id},
	})
}

// GetCourse handles single course reads
// @Summary Get a course
// @Description Returns the course with its assignment and student id sets
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course record"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: course,
	})
}

// UpdateCourse handles course patches
// @Summary Update a course
// @Description Applies a partial update. Allowed for admins and the course's instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or empty patch"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [patch]
// @Security BearerAuth
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := models.CoursePatch{
		Subject:      req.Subject,
		Number:       req.Number,
		Term:         req.Term,
		InstructorID: req.InstructorID,
	}

	err := c.courseService.UpdateCourse(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Course updated successfully"},
	})
}

// DeleteCourse handles course deletion
// @Summary Delete a course
// @Description Removes the course with its assignments, enrollments and submissions. Allowed for admins and the course's instructor.
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
// @Security BearerAuth
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.courseService.DeleteCourse(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetEnrollment handles enrollment set reads
// @Summary Get enrolled students
// @Description Returns the ids of students enrolled in the course. Allowed for admins and the course's instructor.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Student id list"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/students [get]
// @Security BearerAuth
func (c *CourseController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	studentIDs, err := c.courseService.GetEnrollment(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{"students": studentIDs},
	})
}

// UpdateEnrollment handles enrollment set mutation
// @Summary Update enrollment
// @Description Enrolls and unenrolls students in one call, additions first. Both operations are idempotent.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.EnrollmentUpdateRequest true "Student ids to add and remove"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrollment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or non-student ids"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/students [post]
// @Security BearerAuth
func (c *CourseController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollmentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	err := c.courseService.UpdateEnrollment(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id, req.Add, req.Remove)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Enrollment updated successfully"},
	})
}

// GetRoster handles roster CSV export
// @Summary Export course roster
// @Description Returns the enrolled students as CSV. Allowed for admins and the course's instructor.
// @Tags courses
// @Produce text/csv
// @Param id path int true "Course ID"
// @Success 200 {string} string "CSV roster"
// @Failure 400 {object} dto.ErrorResponse "Course has no enrolled students"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/roster [get]
// @Security BearerAuth
func (c *CourseController) GetRoster(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roster, err := c.courseService.BuildRoster(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if roster == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrEmptyRoster)
		return
	}

	ctx.Data(http.StatusOK, "text/csv", []byte(roster))
}

// GetCourseAssignments handles the public assignment id listing
// @Summary List course assignments
// @Description Returns the ids of the course's assignments
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Assignment id list"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/assignments [get]
func (c *CourseController) GetCourseAssignments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignmentIDs, err := c.courseService.GetAssignmentIDs(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{"assignments": assignmentIDs},
	})
}
