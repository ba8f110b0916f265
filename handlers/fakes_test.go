package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/models"
)

type fakeUserDAO struct {
	users []models.User
}

func (f *fakeUserDAO) CreateUser(_ context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserDAO) FindAllUsers(context.Context) ([]models.User, error) {
	return append([]models.User{}, f.users...), nil
}

func (f *fakeUserDAO) FindUsersByRole(_ context.Context, role string) ([]models.User, error) {
	matches := []models.User{}
	for _, u := range f.users {
		if u.Role == role {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (f *fakeUserDAO) FindUsersByPartialName(_ context.Context, partialName string) ([]models.User, error) {
	needle := strings.ToLower(partialName)
	matches := []models.User{}
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (f *fakeUserDAO) FindUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	matches := []models.User{}
	for _, u := range f.users {
		if idSet[u.ID] {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (f *fakeUserDAO) FindUserByID(_ context.Context, userID string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return models.User{}, dao.ErrNotFound
}

func (f *fakeUserDAO) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, dao.ErrNotFound
}

func (f *fakeUserDAO) UpdateUser(_ context.Context, userID string, updates map[string]interface{}) error {
	for i, u := range f.users {
		if u.ID != userID {
			continue
		}
		if v, ok := updates["username"].(string); ok {
			u.Username = v
		}
		if v, ok := updates["password"].(string); ok {
			u.Password = v
		}
		if v, ok := updates["firstName"].(string); ok {
			u.FirstName = v
		}
		if v, ok := updates["lastName"].(string); ok {
			u.LastName = v
		}
		if v, ok := updates["role"].(string); ok {
			u.Role = v
		}
		f.users[i] = u
		return nil
	}
	return dao.ErrNotFound
}

func (f *fakeUserDAO) DeleteUser(_ context.Context, userID string) error {
	for i, u := range f.users {
		if u.ID == userID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return dao.ErrNotFound
}

type fakeCourseDAO struct {
	courses []models.Course
}

func (f *fakeCourseDAO) CreateCourse(_ context.Context, course models.Course) (models.Course, error) {
	course.ID = uuid.NewString()
	if course.Modules == nil {
		course.Modules = []models.Module{}
	}
	f.courses = append(f.courses, course)
	return course, nil
}

func (f *fakeCourseDAO) FindAllCourses(context.Context) ([]models.Course, error) {
	return append([]models.Course{}, f.courses...), nil
}

func (f *fakeCourseDAO) FindCourseByID(_ context.Context, courseID string) (models.Course, error) {
	for _, course := range f.courses {
		if course.ID == courseID {
			return course, nil
		}
	}
	return models.Course{}, dao.ErrNotFound
}

func (f *fakeCourseDAO) FindCoursesByIDs(_ context.Context, ids []string) ([]models.Course, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	matches := []models.Course{}
	for _, course := range f.courses {
		if idSet[course.ID] {
			matches = append(matches, course)
		}
	}
	return matches, nil
}

func (f *fakeCourseDAO) UpdateCourse(_ context.Context, courseID string, updates map[string]interface{}) error {
	for i, course := range f.courses {
		if course.ID != courseID {
			continue
		}
		if v, ok := updates["name"].(string); ok {
			course.Name = v
		}
		if v, ok := updates["description"].(string); ok {
			course.Description = v
		}
		f.courses[i] = course
		return nil
	}
	return dao.ErrNotFound
}

func (f *fakeCourseDAO) DeleteCourse(_ context.Context, courseID string) error {
	for i, course := range f.courses {
		if course.ID == courseID {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return dao.ErrNotFound
}

func (f *fakeCourseDAO) FindModulesForCourse(ctx context.Context, courseID string) ([]models.Module, error) {
	course, err := f.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course.Modules, nil
}

func (f *fakeCourseDAO) AddModuleToCourse(_ context.Context, courseID string, module models.Module) (models.Module, error) {
	for i, course := range f.courses {
		if course.ID != courseID {
			continue
		}
		module.ID = uuid.NewString()
		if module.Lessons == nil {
			module.Lessons = []models.Lesson{}
		}
		course.Modules = append(course.Modules, module)
		f.courses[i] = course
		return module, nil
	}
	return models.Module{}, dao.ErrNotFound
}

func (f *fakeCourseDAO) UpdateModule(_ context.Context, moduleID string, updates map[string]interface{}) error {
	for i, course := range f.courses {
		for j, existing := range course.Modules {
			if existing.ID != moduleID {
				continue
			}
			if v, ok := updates["name"].(string); ok {
				existing.Name = v
			}
			if v, ok := updates["description"].(string); ok {
				existing.Description = v
			}
			f.courses[i].Modules[j] = existing
			return nil
		}
	}
	return dao.ErrNotFound
}

func (f *fakeCourseDAO) DeleteModule(_ context.Context, moduleID string) error {
	for i, course := range f.courses {
		for j, existing := range course.Modules {
			if existing.ID == moduleID {
				f.courses[i].Modules = append(course.Modules[:j], course.Modules[j+1:]...)
				return nil
			}
		}
	}
	return dao.ErrNotFound
}

// fakeEnrollmentDAO mirrors the store-level contract: enrolling an already
// enrolled pair returns the existing document untouched.
type fakeEnrollmentDAO struct {
	enrollments []models.Enrollment
}

func (f *fakeEnrollmentDAO) EnrollUserInCourse(_ context.Context, userID, courseID string) (models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.User == userID && e.Course == courseID {
			return e, nil
		}
	}
	enrollment := models.Enrollment{ID: uuid.NewString(), User: userID, Course: courseID}
	f.enrollments = append(f.enrollments, enrollment)
	return enrollment, nil
}

func (f *fakeEnrollmentDAO) UnenrollUserFromCourse(_ context.Context, userID, courseID string) error {
	kept := f.enrollments[:0]
	for _, e := range f.enrollments {
		if !(e.User == userID && e.Course == courseID) {
			kept = append(kept, e)
		}
	}
	f.enrollments = kept
	return nil
}

func (f *fakeEnrollmentDAO) FindEnrollmentsForUser(_ context.Context, userID string) ([]models.Enrollment, error) {
	matches := []models.Enrollment{}
	for _, e := range f.enrollments {
		if e.User == userID {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (f *fakeEnrollmentDAO) FindEnrollmentsForCourse(_ context.Context, courseID string) ([]models.Enrollment, error) {
	matches := []models.Enrollment{}
	for _, e := range f.enrollments {
		if e.Course == courseID {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

type fakeAssignmentDAO struct {
	assignments []models.Assignment
}

func (f *fakeAssignmentDAO) CreateAssignment(_ context.Context, courseID string, assignment models.Assignment) (models.Assignment, error) {
	assignment.ID = uuid.NewString()
	assignment.Course = courseID
	f.assignments = append(f.assignments, assignment)
	return assignment, nil
}

func (f *fakeAssignmentDAO) FindAssignmentsForCourse(_ context.Context, courseID string) ([]models.Assignment, error) {
	matches := []models.Assignment{}
	for _, a := range f.assignments {
		if a.Course == courseID {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

func (f *fakeAssignmentDAO) FindAssignmentByID(_ context.Context, courseID, assignmentID string) (models.Assignment, error) {
	for _, a := range f.assignments {
		if a.ID == assignmentID && a.Course == courseID {
			return a, nil
		}
	}
	return models.Assignment{}, dao.ErrNotFound
}

func (f *fakeAssignmentDAO) UpdateAssignment(_ context.Context, courseID, assignmentID string, updates map[string]interface{}) error {
	for i, a := range f.assignments {
		if a.ID != assignmentID || a.Course != courseID {
			continue
		}
		if v, ok := updates["name"].(string); ok {
			a.Name = v
		}
		if v, ok := updates["points"].(float64); ok {
			a.Points = v
		}
		f.assignments[i] = a
		return nil
	}
	return dao.ErrNotFound
}

func (f *fakeAssignmentDAO) DeleteAssignment(_ context.Context, courseID, assignmentID string) error {
	for i, a := range f.assignments {
		if a.ID == assignmentID && a.Course == courseID {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return dao.ErrNotFound
}

type fakeGradeDAO struct {
	grades []models.Grade
}

func (f *fakeGradeDAO) CreateGrade(_ context.Context, grade models.Grade) (models.Grade, error) {
	grade.ID = uuid.NewString()
	f.grades = append(f.grades, grade)
	return grade, nil
}

func (f *fakeGradeDAO) FindGradesForAssignment(_ context.Context, assignmentID string) ([]models.Grade, error) {
	matches := []models.Grade{}
	for _, g := range f.grades {
		if g.Assignment == assignmentID {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

func (f *fakeGradeDAO) FindGradesForStudent(_ context.Context, studentID string) ([]models.Grade, error) {
	matches := []models.Grade{}
	for _, g := range f.grades {
		if g.Student == studentID {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

func (f *fakeGradeDAO) UpdateGrade(_ context.Context, gradeID string, updates map[string]interface{}) error {
	for i, g := range f.grades {
		if g.ID != gradeID {
			continue
		}
		if v, ok := updates["grade"].(float64); ok {
			g.Grade = v
		}
		f.grades[i] = g
		return nil
	}
	return dao.ErrNotFound
}

func (f *fakeGradeDAO) DeleteGrade(_ context.Context, gradeID string) error {
	for i, g := range f.grades {
		if g.ID == gradeID {
			f.grades = append(f.grades[:i], f.grades[i+1:]...)
			return nil
		}
	}
	return dao.ErrNotFound
}

func newFakeDAOs() *dao.DAOs {
	return &dao.DAOs{
		Users:       &fakeUserDAO{},
		Courses:     &fakeCourseDAO{},
		Enrollments: &fakeEnrollmentDAO{},
		Assignments: &fakeAssignmentDAO{},
		Grades:      &fakeGradeDAO{},
	}
}

func newTestRouter(daos *dao.DAOs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("kambaz-session", store))
	r.Use(func(c *gin.Context) {
		c.Set(DAOsKey, daos)
		c.Next()
	})

	// Mirror the route table from routes.SetupRoutes; importing it here
	// would create an import cycle.
	api := r.Group("/api")
	api.POST("/users", CreateUserHandler)
	api.GET("/users", FindAllUsersHandler)
	api.GET("/users/:userId", FindUserByIDHandler)
	api.PUT("/users/:userId", UpdateUserHandler)
	api.DELETE("/users/:userId", DeleteUserHandler)
	api.POST("/users/signup", SignupHandler)
	api.POST("/users/signin", SigninHandler)
	api.POST("/users/signout", SignoutHandler)
	api.POST("/users/profile", ProfileHandler)
	api.GET("/users/:userId/courses", FindCoursesForEnrolledUserHandler)
	api.POST("/users/current/courses", CreateCourseForCurrentUserHandler)
	api.GET("/users/:userId/grades", FindGradesForStudentHandler)
	api.GET("/courses", FindAllCoursesHandler)
	api.GET("/courses/:courseId", FindCourseByIDHandler)
	api.PUT("/courses/:courseId", UpdateCourseHandler)
	api.DELETE("/courses/:courseId", DeleteCourseHandler)
	api.GET("/courses/:courseId/users", FindUsersForCourseHandler)
	api.GET("/courses/:courseId/modules", FindModulesForCourseHandler)
	api.POST("/courses/:courseId/modules", CreateModuleHandler)
	api.PUT("/modules/:moduleId", UpdateModuleHandler)
	api.DELETE("/modules/:moduleId", DeleteModuleHandler)
	api.GET("/courses/:courseId/assignments", FindAssignmentsForCourseHandler)
	api.GET("/courses/:courseId/assignments/:assignmentId", FindAssignmentByIDHandler)
	api.POST("/courses/:courseId/assignments", CreateAssignmentHandler)
	api.PUT("/courses/:courseId/assignments/:assignmentId", UpdateAssignmentHandler)
	api.DELETE("/courses/:courseId/assignments/:assignmentId", DeleteAssignmentHandler)
	api.POST("/enrollments/:userId/:courseId", EnrollUserHandler)
	api.DELETE("/enrollments/:userId/:courseId", UnenrollUserHandler)
	api.POST("/assignments/:assignmentId/grades", CreateGradeHandler)
	api.GET("/assignments/:assignmentId/grades", FindGradesForAssignmentHandler)
	api.PUT("/grades/:gradeId", UpdateGradeHandler)
	api.DELETE("/grades/:gradeId", DeleteGradeHandler)

	return r
}

func doRequest(r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
