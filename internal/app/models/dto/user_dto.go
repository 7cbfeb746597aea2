package dto

// CreateUserRequest represents the data needed to create a user account.
// The caller's role decides whether the requested role is permitted.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.edu"`
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	Role     string `json:"role" binding:"required,oneof=admin instructor student" example:"student"`
}

// UserResponse is the public view of a user record. Credential material is
// never present.
type UserResponse struct {
	ID    int64  `json:"id" example:"7"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jdoe@example.edu"`
	Role  string `json:"role" example:"student"`

	// Related course ids: courses taught for instructors, courses enrolled
	// in for students. Omitted for admins.
	CourseIDs []int64 `json:"courses,omitempty"`
}
