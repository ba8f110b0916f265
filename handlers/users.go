package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/models"
	"github.com/darshanrk18/kambaz-server-go/session"
	"github.com/darshanrk18/kambaz-server-go/utils"
)

// SigninHandler checks credentials and binds the user to the session
func SigninHandler(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	user, err := daos.Users.FindUserByUsername(c.Request.Context(), req.Username)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unable to login. Try again later."})
		return
	} else if err != nil {
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := utils.ComparePassword(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unable to login. Try again later."})
		return
	}

	if err := session.BindCurrentUser(c, user.ID); err != nil {
		log.Printf("Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// SignupHandler registers a new user and binds the session
func SignupHandler(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	_, err := daos.Users.FindUserByUsername(c.Request.Context(), req.Username)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
		return
	} else if err != dao.ErrNotFound {
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	user, err := userFromSignup(req)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	created, err := daos.Users.CreateUser(c.Request.Context(), user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := session.BindCurrentUser(c, created.ID); err != nil {
		log.Printf("Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
		return
	}

	c.JSON(http.StatusOK, created)
}

func userFromSignup(req models.SignupRequest) (models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Username: req.Username,
		Password: hash,
		Role:     "USER",
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Dob != nil {
		user.Dob = *req.Dob
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.LoginID != nil {
		user.LoginID = *req.LoginID
	}
	if req.Section != nil {
		user.Section = *req.Section
	}
	return user, nil
}

// SignoutHandler destroys the session
func SignoutHandler(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		log.Printf("Error clearing session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
		return
	}
	c.Status(http.StatusOK)
}

// ProfileHandler returns the session-bound user
func ProfileHandler(c *gin.Context) {
	userID, ok := session.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	daos := getDAOs(c)
	user, err := daos.Users.FindUserByID(c.Request.Context(), userID)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	} else if err != nil {
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUserHandler creates a user directly (admin-style, no session binding)
func CreateUserHandler(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	user, err := userFromSignup(req)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	daos := getDAOs(c)
	created, err := daos.Users.CreateUser(c.Request.Context(), user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// FindAllUsersHandler lists users, optionally filtered by role or a
// case-insensitive partial match over first and last name
func FindAllUsersHandler(c *gin.Context) {
	daos := getDAOs(c)

	var users []models.User
	var err error
	switch {
	case c.Query("role") != "":
		users, err = daos.Users.FindUsersByRole(c.Request.Context(), c.Query("role"))
	case c.Query("name") != "":
		users, err = daos.Users.FindUsersByPartialName(c.Request.Context(), c.Query("name"))
	default:
		users, err = daos.Users.FindAllUsers(c.Request.Context())
	}
	if err != nil {
		log.Printf("Error querying users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// FindUserByIDHandler returns a single user or 404
func FindUserByIDHandler(c *gin.Context) {
	daos := getDAOs(c)
	user, err := daos.Users.FindUserByID(c.Request.Context(), c.Param("userId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	} else if err != nil {
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUserHandler applies a partial update and returns the updated user
func UpdateUserHandler(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	setIfPresent := func(key string, value *string) {
		if value != nil {
			updates[key] = *value
		}
	}
	setIfPresent("username", req.Username)
	setIfPresent("firstName", req.FirstName)
	setIfPresent("lastName", req.LastName)
	setIfPresent("email", req.Email)
	setIfPresent("dob", req.Dob)
	setIfPresent("role", req.Role)
	setIfPresent("loginId", req.LoginID)
	setIfPresent("section", req.Section)
	setIfPresent("lastActivity", req.LastActivity)
	setIfPresent("totalActivity", req.TotalActivity)
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		updates["password"] = hash
	}

	userID := c.Param("userId")
	daos := getDAOs(c)
	if len(updates) > 0 {
		if err := daos.Users.UpdateUser(c.Request.Context(), userID, updates); err == dao.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		} else if err != nil {
			log.Printf("Error updating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	user, err := daos.Users.FindUserByID(c.Request.Context(), userID)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	} else if err != nil {
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUserHandler removes a user
func DeleteUserHandler(c *gin.Context) {
	daos := getDAOs(c)
	err := daos.Users.DeleteUser(c.Request.Context(), c.Param("userId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	} else if err != nil {
		log.Printf("Error deleting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// FindCoursesForEnrolledUserHandler lists the courses a user is enrolled in;
// the userId token may be the "current" sentinel
func FindCoursesForEnrolledUserHandler(c *gin.Context) {
	userID, ok := session.ResolveUserID(c, c.Param("userId"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	daos := getDAOs(c)
	enrollments, err := daos.Enrollments.FindEnrollmentsForUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error querying enrollments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	courseIDs := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.Course)
	}

	courses, err := daos.Courses.FindCoursesByIDs(c.Request.Context(), courseIDs)
	if err != nil {
		log.Printf("Error querying courses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// CreateCourseForCurrentUserHandler creates a course owned by the session
// user and enrolls them in it. The two writes are independent; a failed
// enroll leaves the course in place.
func CreateCourseForCurrentUserHandler(c *gin.Context) {
	userID, ok := session.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	created, err := daos.Courses.CreateCourse(c.Request.Context(), course)
	if err != nil {
		log.Printf("Error creating course: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if _, err := daos.Enrollments.EnrollUserInCourse(c.Request.Context(), userID, created.ID); err != nil {
		log.Printf("Error enrolling course creator %s in course %s: %v", userID, created.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, created)
}
