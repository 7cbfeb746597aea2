package dto

import "time"

// SubmissionResponse is the listing view of a submission: metadata only, the
// file body is streamed separately by id.
type SubmissionResponse struct {
	ID           int64     `json:"id" example:"31"`
	AssignmentID int64     `json:"assignmentId" example:"12"`
	StudentID    int64     `json:"studentId" example:"7"`
	Timestamp    time.Time `json:"timestamp" example:"2026-06-14T16:59:31Z"`
}

// SubmissionListResponse is a page of submissions. Pagination metadata
// travels in the response envelope.
type SubmissionListResponse struct {
	Submissions []*SubmissionResponse `json:"submissions"`
}
