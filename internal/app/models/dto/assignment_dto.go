package dto

import "time"

// CreateAssignmentRequest represents the data needed to create an assignment.
type CreateAssignmentRequest struct {
	CourseID int64     `json:"courseId" binding:"required,gt=0" example:"5"`
	Title    string    `json:"title" binding:"required" example:"Final project"`
	Points   int       `json:"points" binding:"required,gte=0" example:"100"`
	Due      time.Time `json:"due" binding:"required" example:"2026-06-14T17:00:00Z"`
}

// UpdateAssignmentRequest is a typed patch for an assignment. The course
// reference is immutable and deliberately absent.
type UpdateAssignmentRequest struct {
	Title  *string    `json:"title,omitempty" example:"Final project (revised)"`
	Points *int       `json:"points,omitempty" example:"120"`
	Due    *time.Time `json:"due,omitempty" example:"2026-06-21T17:00:00Z"`
}
