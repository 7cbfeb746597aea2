package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
)

type enrollmentKey struct {
	courseID  int64
	studentID int64
}

type fakeCourseReader struct {
	courses  map[int64]*models.Course
	enrolled map[enrollmentKey]bool
}

func (f *fakeCourseReader) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseReader) IsStudentEnrolled(_ context.Context, courseID, studentID int64) (bool, error) {
	return f.enrolled[enrollmentKey{courseID, studentID}], nil
}

// Two courses: course 10 taught by instructor 2, course 20 taught by
// instructor 5. Student 7 is enrolled in course 10 only.
func newFakeCourseReader() *fakeCourseReader {
	return &fakeCourseReader{
		courses: map[int64]*models.Course{
			10: {ID: 10, Subject: "CS", Number: "493", Term: "sp26", InstructorID: 2},
			20: {ID: 20, Subject: "CS", Number: "461", Term: "sp26", InstructorID: 5},
		},
		enrolled: map[enrollmentKey]bool{
			{courseID: 10, studentID: 7}: true,
		},
	}
}

func TestCanViewSubmission(t *testing.T) {
	svc := NewAuthorizationService(newFakeCourseReader())

	asgCourse10 := &models.Assignment{ID: 100, CourseID: 10}
	asgCourse20 := &models.Assignment{ID: 200, CourseID: 20}

	tests := []struct {
		name       string
		userID     int64
		role       models.RoleType
		assignment *models.Assignment
		want       bool
	}{
		{"enrolled student", 7, models.RoleStudent, asgCourse10, true},
		{"student enrolled in another course", 7, models.RoleStudent, asgCourse20, false},
		{"unenrolled student", 8, models.RoleStudent, asgCourse10, false},
		{"owning instructor", 2, models.RoleInstructor, asgCourse10, true},
		{"other instructor", 5, models.RoleInstructor, asgCourse10, false},
		{"admin", 1, models.RoleAdmin, asgCourse10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanViewSubmission(context.Background(), tt.userID, tt.role, tt.assignment)
			if err != nil {
				t.Fatalf("CanViewSubmission: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanViewSubmission = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanViewSubmissionMissingCourse(t *testing.T) {
	svc := NewAuthorizationService(newFakeCourseReader())

	orphan := &models.Assignment{ID: 300, CourseID: 99}
	got, err := svc.CanViewSubmission(context.Background(), 1, models.RoleAdmin, orphan)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
	if got {
		t.Error("CanViewSubmission = true for an assignment with a missing course")
	}
}

func TestCanSubmit(t *testing.T) {
	svc := NewAuthorizationService(newFakeCourseReader())

	asgCourse10 := &models.Assignment{ID: 100, CourseID: 10}

	tests := []struct {
		name   string
		userID int64
		role   models.RoleType
		want   bool
	}{
		{"enrolled student", 7, models.RoleStudent, true},
		{"unenrolled student", 8, models.RoleStudent, false},
		{"owning instructor", 2, models.RoleInstructor, false},
		{"admin", 1, models.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanSubmit(context.Background(), tt.userID, tt.role, asgCourse10)
			if err != nil {
				t.Fatalf("CanSubmit: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanSubmit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateCourseOwnership(t *testing.T) {
	svc := NewAuthorizationService(newFakeCourseReader())
	course := &models.Course{ID: 10, InstructorID: 2}

	if err := svc.ValidateCourseOwnership(2, models.RoleInstructor, course); err != nil {
		t.Errorf("owning instructor rejected: %v", err)
	}
	if err := svc.ValidateCourseOwnership(5, models.RoleInstructor, course); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}
