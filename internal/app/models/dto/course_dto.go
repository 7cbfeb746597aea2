package dto

import "github.com/kaanb/courseboard/internal/app/models"

// CreateCourseRequest represents the data needed to create a course.
type CreateCourseRequest struct {
	Subject      string `json:"subject" binding:"required" example:"CS"`
	Number       string `json:"number" binding:"required" example:"493"`
	Term         string `json:"term" binding:"required" example:"sp26"`
	InstructorID int64  `json:"instructorId" binding:"required,gt=0" example:"2"`
}

// UpdateCourseRequest is a typed patch for a course. Nil fields were not
// supplied and stay untouched; a patch with no supplied fields is rejected as
// distinct from a missing course. Enrollment and assignment sets are not
// patchable here, they change only through their dedicated operations.
type UpdateCourseRequest struct {
	Subject      *string `json:"subject,omitempty" example:"CS"`
	Number       *string `json:"number,omitempty" example:"461"`
	Term         *string `json:"term,omitempty" example:"fa26"`
	InstructorID *int64  `json:"instructorId,omitempty" example:"3"`
}

// EnrollmentUpdateRequest mutates a course's enrollment set. Both lists may be
// supplied in one call; additions are applied before removals and each is an
// idempotent set operation.
type EnrollmentUpdateRequest struct {
	Add    []int64 `json:"add" example:"7,8"`
	Remove []int64 `json:"remove" example:"9"`
}

// CourseListResponse is a page of courses. Pagination metadata travels in
// the response envelope.
type CourseListResponse struct {
	Courses []*models.Course `json:"courses"`
}
