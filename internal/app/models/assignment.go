package models

import "time"

// Assignment defines the assignment model based on the 'assignments' table.
// The course reference is immutable after creation.
type Assignment struct {
	ID        int64     `json:"id" db:"id" example:"12"`
	CourseID  int64     `json:"courseId" db:"course_id" example:"5"`
	Title     string    `json:"title" db:"title" example:"Final project"`
	Points    int       `json:"points" db:"points" example:"100"`
	Due       time.Time `json:"due" db:"due" example:"2026-06-14T17:00:00Z"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AssignmentPatch enumerates the updatable assignment fields. The course
// reference is immutable after creation and deliberately absent.
type AssignmentPatch struct {
	Title  *string
	Points *int
	Due    *time.Time
}

// Empty reports whether the patch carries no recognized fields.
func (p AssignmentPatch) Empty() bool {
	return p.Title == nil && p.Points == nil && p.Due == nil
}
