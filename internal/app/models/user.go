package models

import (
	"time"
)

// RoleType represents a user's role
type RoleType string

// Application roles. A user's role is fixed at creation; there is no
// role-escalation endpoint.
const (
	RoleAdmin      RoleType = "admin"
	RoleInstructor RoleType = "instructor"
	RoleStudent    RoleType = "student"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                       // Display name
	Email     string    `json:"email" db:"email" example:"jdoe@example.edu"`             // User's email address
	Password  string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"student"`                        // admin, instructor or student
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
