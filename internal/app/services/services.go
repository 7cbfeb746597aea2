package services

// Services defined in this package:
// - AuthService: Handles credential verification and token issuance
// - UserService: Handles account creation and user reads
// - CourseService: Handles courses, enrollment and roster export
// - AssignmentService: Handles assignments under courses
// - SubmissionService: Handles submission uploads, listing and download
