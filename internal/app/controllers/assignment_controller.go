package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/app/services"
	"github.com/kaanb/courseboard/internal/middleware"
)

// AssignmentController handles assignment operations
type AssignmentController struct {
	assignmentService services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// CreateAssignment handles assignment creation
// @Summary Create an assignment
// @Description Creates an assignment under a course the caller administers
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer the course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
// @Security BearerAuth
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid assignment creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.assignmentService.CreateAssignment(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.CreatedResponse{ID: id},
	})
}

// GetAssignment handles single assignment reads
// @Summary Get an assignment
// @Description Returns the assignment record
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment record"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [get]
// @Security BearerAuth
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetAssignment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: assignment,
	})
}

// UpdateAssignment handles assignment patches
// @Summary Update an assignment
// @Description Applies a partial update to an assignment whose course the caller administers
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or empty patch"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer the course"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [patch]
// @Security BearerAuth
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := models.AssignmentPatch{
		Title:  req.Title,
		Points: req.Points,
		Due:    req.Due,
	}

	err := c.assignmentService.UpdateAssignment(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Assignment updated successfully"},
	})
}

// DeleteAssignment handles assignment deletion
// @Summary Delete an assignment
// @Description Removes the assignment and its submissions
// @Tags assignments
// @Param id path int true "Assignment ID"
// @Success 204 "Assignment deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller may not administer the course"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
// @Security BearerAuth
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.assignmentService.DeleteAssignment(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
