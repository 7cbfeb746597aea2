package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/models"
)

func TestRoleRequiredAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		role      models.RoleType
		wantAbort bool
	}{
		{"admin passes", models.RoleAdmin, false},
		{"instructor rejected", models.RoleInstructor, true},
		{"student rejected", models.RoleStudent, true},
		{"unknown role rejected", models.RoleType("owner"), true},
	}

	handler := NewAuthMiddleware(nil).RoleRequired(appauth.IsAdmin)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil)
			c.Set(ContextUserID, int64(1))
			c.Set(ContextRole, string(tt.role))

			handler(c)

			if c.IsAborted() != tt.wantAbort {
				t.Fatalf("aborted = %v, want %v", c.IsAborted(), tt.wantAbort)
			}
			if tt.wantAbort && w.Code != http.StatusForbidden {
				t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
			}
		})
	}
}

func TestCallerRoleUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CallerRole(c); got != models.RoleType("") {
		t.Errorf("CallerRole = %q, want empty", got)
	}
	if got := CallerID(c); got != 0 {
		t.Errorf("CallerID = %d, want 0", got)
	}
}
