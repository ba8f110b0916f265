package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/handlers"
)

// SetupRoutes configures the API routes
func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// User routes
	api.POST("/users", handlers.CreateUserHandler)
	api.GET("/users", handlers.FindAllUsersHandler)
	api.GET("/users/:userId", handlers.FindUserByIDHandler)
	api.PUT("/users/:userId", handlers.UpdateUserHandler)
	api.DELETE("/users/:userId", handlers.DeleteUserHandler)
	api.POST("/users/signup", handlers.SignupHandler)
	api.POST("/users/signin", handlers.SigninHandler)
	api.POST("/users/signout", handlers.SignoutHandler)
	api.POST("/users/profile", handlers.ProfileHandler)
	api.GET("/users/:userId/courses", handlers.FindCoursesForEnrolledUserHandler)
	api.POST("/users/current/courses", handlers.CreateCourseForCurrentUserHandler)
	api.GET("/users/:userId/grades", handlers.FindGradesForStudentHandler)

	// Course routes
	api.GET("/courses", handlers.FindAllCoursesHandler)
	api.GET("/courses/:courseId", handlers.FindCourseByIDHandler)
	api.PUT("/courses/:courseId", handlers.UpdateCourseHandler)
	api.DELETE("/courses/:courseId", handlers.DeleteCourseHandler)
	api.GET("/courses/:courseId/users", handlers.FindUsersForCourseHandler)

	// Module routes; modules live embedded in course documents
	api.GET("/courses/:courseId/modules", handlers.FindModulesForCourseHandler)
	api.POST("/courses/:courseId/modules", handlers.CreateModuleHandler)
	api.PUT("/modules/:moduleId", handlers.UpdateModuleHandler)
	api.DELETE("/modules/:moduleId", handlers.DeleteModuleHandler)

	// Assignment routes
	api.GET("/courses/:courseId/assignments", handlers.FindAssignmentsForCourseHandler)
	api.GET("/courses/:courseId/assignments/:assignmentId", handlers.FindAssignmentByIDHandler)
	api.POST("/courses/:courseId/assignments", handlers.CreateAssignmentHandler)
	api.PUT("/courses/:courseId/assignments/:assignmentId", handlers.UpdateAssignmentHandler)
	api.DELETE("/courses/:courseId/assignments/:assignmentId", handlers.DeleteAssignmentHandler)

	// Enrollment routes
	api.POST("/enrollments/:userId/:courseId", handlers.EnrollUserHandler)
	api.DELETE("/enrollments/:userId/:courseId", handlers.UnenrollUserHandler)

	// Grade routes
	api.POST("/assignments/:assignmentId/grades", handlers.CreateGradeHandler)
	api.GET("/assignments/:assignmentId/grades", handlers.FindGradesForAssignmentHandler)
	api.PUT("/grades/:gradeId", handlers.UpdateGradeHandler)
	api.DELETE("/grades/:gradeId", handlers.DeleteGradeHandler)
}
