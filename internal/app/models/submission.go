package models

import "time"

// Submission defines the submission metadata stored in the 'submissions'
// table. A submission is immutable once created; resubmission creates a new
// row for the same (assignment, student) pair. The file body itself lives in
// the blob store under FileName and is never embedded in listings.
type Submission struct {
	ID           int64     `json:"id" db:"id" example:"31"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id" example:"12"`
	StudentID    int64     `json:"studentId" db:"student_id" example:"7"`
	SubmittedAt  time.Time `json:"timestamp" db:"submitted_at" example:"2026-06-14T16:59:31Z"`
	FileName     string    `json:"-" db:"file_name"`    // Content-addressed blob name
	ContentType  string    `json:"-" db:"content_type"` // MIME type recorded at upload
}
