package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/kaanb/courseboard/internal/app/auth"
	"github.com/kaanb/courseboard/internal/app/controllers"
	"github.com/kaanb/courseboard/internal/app/models/dto"
	"github.com/kaanb/courseboard/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	assignmentController *controllers.AssignmentController,
	submissionController *controllers.SubmissionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/users/login", authController.Login)

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/:id/assignments", courseController.GetCourseAssignments)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/users", userController.CreateUser)
		authenticated.GET("/users/:id", userController.GetUser)

		// Course administration. Creation is admin-only; the remaining
		// operations authorize against course ownership in the service.
		coursesProtected := authenticated.Group("/courses")
		{
			coursesAdminProtected := coursesProtected.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(appauth.IsAdmin))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
			}

			coursesProtected.PATCH("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
			coursesProtected.GET("/:id/students", courseController.GetEnrollment)
			coursesProtected.POST("/:id/students", courseController.UpdateEnrollment)
			coursesProtected.GET("/:id/roster", courseController.GetRoster)
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.GET("/:id", assignmentController.GetAssignment)
			assignments.PATCH("/:id", assignmentController.UpdateAssignment)
			assignments.DELETE("/:id", assignmentController.DeleteAssignment)

			assignments.GET("/:id/submissions", submissionController.ListSubmissions)
			assignments.POST("/:id/submissions", submissionController.CreateSubmission)
		}

		authenticated.GET("/submissions/:id/file", submissionController.DownloadSubmissionFile)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
