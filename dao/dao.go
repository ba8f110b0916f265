package dao

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanrk18/kambaz-server-go/models"
)

// ErrNotFound is returned when no document matches the given identifier.
var ErrNotFound = errors.New("not found")

// UserDAO wraps the users collection
type UserDAO interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	FindUsersByRole(ctx context.Context, role string) ([]models.User, error)
	FindUsersByPartialName(ctx context.Context, partialName string) ([]models.User, error)
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, userID string) error
}

// CourseDAO wraps the courses collection; modules and lessons live embedded
// in their owning course document
type CourseDAO interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	FindAllCourses(ctx context.Context) ([]models.Course, error)
	FindCourseByID(ctx context.Context, courseID string) (models.Course, error)
	FindCoursesByIDs(ctx context.Context, ids []string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error
	DeleteCourse(ctx context.Context, courseID string) error

	FindModulesForCourse(ctx context.Context, courseID string) ([]models.Module, error)
	AddModuleToCourse(ctx context.Context, courseID string, module models.Module) (models.Module, error)
	UpdateModule(ctx context.Context, moduleID string, updates map[string]interface{}) error
	DeleteModule(ctx context.Context, moduleID string) error
}

// EnrollmentDAO wraps the enrollments collection
type EnrollmentDAO interface {
	EnrollUserInCourse(ctx context.Context, userID, courseID string) (models.Enrollment, error)
	UnenrollUserFromCourse(ctx context.Context, userID, courseID string) error
	FindEnrollmentsForUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	FindEnrollmentsForCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
}

// AssignmentDAO wraps the assignments collection
type AssignmentDAO interface {
	CreateAssignment(ctx context.Context, courseID string, assignment models.Assignment) (models.Assignment, error)
	FindAssignmentsForCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	FindAssignmentByID(ctx context.Context, courseID, assignmentID string) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, courseID, assignmentID string, updates map[string]interface{}) error
	DeleteAssignment(ctx context.Context, courseID, assignmentID string) error
}

// GradeDAO wraps the grades collection
type GradeDAO interface {
	CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error)
	FindGradesForAssignment(ctx context.Context, assignmentID string) ([]models.Grade, error)
	FindGradesForStudent(ctx context.Context, studentID string) ([]models.Grade, error)
	UpdateGrade(ctx context.Context, gradeID string, updates map[string]interface{}) error
	DeleteGrade(ctx context.Context, gradeID string) error
}

// DAOs aggregates the per-entity persistence adapters. The set is injected
// into the gin context once in main and pulled by handlers with MustGet.
type DAOs struct {
	Users       UserDAO
	Courses     CourseDAO
	Enrollments EnrollmentDAO
	Assignments AssignmentDAO
	Grades      GradeDAO
}

// NewDAOs builds the Mongo-backed adapter set
func NewDAOs(db *mongo.Database) *DAOs {
	return &DAOs{
		Users:       &mongoUserDAO{users: db.Collection("users")},
		Courses:     &mongoCourseDAO{courses: db.Collection("courses")},
		Enrollments: &mongoEnrollmentDAO{enrollments: db.Collection("enrollments")},
		Assignments: &mongoAssignmentDAO{assignments: db.Collection("assignments")},
		Grades:      &mongoGradeDAO{grades: db.Collection("grades")},
	}
}
