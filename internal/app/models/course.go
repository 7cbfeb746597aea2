package models

import "time"

// Course defines the course model based on the 'courses' table.
// The instructor reference is the ownership anchor: absent admin override,
// only that user may administer the course.
type Course struct {
	ID           int64     `json:"id" db:"id" example:"5"`
	Subject      string    `json:"subject" db:"subject" example:"CS"`             // Subject prefix (e.g. CS)
	Number       string    `json:"number" db:"number" example:"493"`              // Catalog number
	Term         string    `json:"term" db:"term" example:"sp26"`                 // Academic term
	InstructorID int64     `json:"instructorId" db:"instructor_id" example:"2"`   // Owning instructor
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relations, populated on detail reads only
	AssignmentIDs []int64 `json:"assignments,omitempty"` // Assignment set, creation order
	StudentIDs    []int64 `json:"students,omitempty"`    // Enrollment set
}

// CoursePatch enumerates the updatable course fields. Nil means "leave
// unchanged". Enrollment and assignment sets are excluded; they are mutated
// only through their dedicated set operations.
type CoursePatch struct {
	Subject      *string
	Number       *string
	Term         *string
	InstructorID *int64
}

// Empty reports whether the patch carries no recognized fields.
func (p CoursePatch) Empty() bool {
	return p.Subject == nil && p.Number == nil && p.Term == nil && p.InstructorID == nil
}
