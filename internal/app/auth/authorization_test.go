package auth

import (
	"testing"

	"github.com/kaanb/courseboard/internal/app/models"
)

func TestRoleRank(t *testing.T) {
	cases := []struct {
		role models.RoleType
		want int
	}{
		{models.RoleAdmin, 3},
		{models.RoleInstructor, 2},
		{models.RoleStudent, 1},
		{models.RoleType("janitor"), 0},
		{models.RoleType(""), 0},
	}

	for _, tc := range cases {
		if got := RoleRank(tc.role); got != tc.want {
			t.Errorf("RoleRank(%q) = %d, want %d", tc.role, got, tc.want)
		}
	}
}

func TestCanCreateUser(t *testing.T) {
	cases := []struct {
		name    string
		creator models.RoleType
		target  models.RoleType
		want    bool
	}{
		{"admin creates admin", models.RoleAdmin, models.RoleAdmin, true},
		{"admin creates instructor", models.RoleAdmin, models.RoleInstructor, true},
		{"admin creates student", models.RoleAdmin, models.RoleStudent, true},
		{"instructor creates student", models.RoleInstructor, models.RoleStudent, true},
		{"instructor creates instructor", models.RoleInstructor, models.RoleInstructor, false},
		{"instructor creates admin", models.RoleInstructor, models.RoleAdmin, false},
		{"student creates student", models.RoleStudent, models.RoleStudent, true},
		{"student creates instructor", models.RoleStudent, models.RoleInstructor, false},
		{"student creates admin", models.RoleStudent, models.RoleAdmin, false},
		{"unknown creates student", models.RoleType("x"), models.RoleStudent, true},
		{"unknown creates admin", models.RoleType("x"), models.RoleAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCreateUser(tc.creator, tc.target); got != tc.want {
				t.Errorf("CanCreateUser(%q, %q) = %v, want %v", tc.creator, tc.target, got, tc.want)
			}
		})
	}
}

func TestCanActOnCourse(t *testing.T) {
	course := &models.Course{ID: 7, InstructorID: 42}

	if !CanActOnCourse(1, models.RoleAdmin, course) {
		t.Error("admin should administer any course")
	}
	if !CanActOnCourse(42, models.RoleInstructor, course) {
		t.Error("owning instructor should administer the course")
	}
	if CanActOnCourse(43, models.RoleInstructor, course) {
		t.Error("non-owning instructor should not administer the course")
	}
	if CanActOnCourse(42, models.RoleStudent, course) {
		t.Error("student should never administer a course, even with a matching id")
	}
	if CanActOnCourse(42, models.RoleInstructor, nil) {
		t.Error("nil course should never be administrable by a non-admin")
	}
}

func TestCanViewUser(t *testing.T) {
	if !CanViewUser(5, models.RoleStudent, 5) {
		t.Error("user should read their own record")
	}
	if CanViewUser(5, models.RoleStudent, 6) {
		t.Error("student should not read another user")
	}
	if CanViewUser(5, models.RoleInstructor, 6) {
		t.Error("instructor should not read another user")
	}
	if !CanViewUser(5, models.RoleAdmin, 6) {
		t.Error("admin should read any user")
	}
}
