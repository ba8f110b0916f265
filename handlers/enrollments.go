package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/session"
)

// EnrollUserHandler enrolls a user in a course. The userId token may be the
// "current" sentinel; enrolling twice returns the existing enrollment.
func EnrollUserHandler(c *gin.Context) {
	userID, ok := session.ResolveUserID(c, c.Param("userId"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	daos := getDAOs(c)
	enrollment, err := daos.Enrollments.EnrollUserInCourse(c.Request.Context(), userID, c.Param("courseId"))
	if err != nil {
		log.Printf("Error enrolling user %s in course %s: %v", userID, c.Param("courseId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// UnenrollUserHandler removes every enrollment for the (user, course) pair;
// a no-op when none exists
func UnenrollUserHandler(c *gin.Context) {
	userID, ok := session.ResolveUserID(c, c.Param("userId"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	daos := getDAOs(c)
	if err := daos.Enrollments.UnenrollUserFromCourse(c.Request.Context(), userID, c.Param("courseId")); err != nil {
		log.Printf("Error unenrolling user %s from course %s: %v", userID, c.Param("courseId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// FindUsersForCourseHandler lists the users enrolled in a course
func FindUsersForCourseHandler(c *gin.Context) {
	daos := getDAOs(c)
	enrollments, err := daos.Enrollments.FindEnrollmentsForCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		log.Printf("Error querying enrollments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	userIDs := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		userIDs = append(userIDs, enrollment.User)
	}

	users, err := daos.Users.FindUsersByIDs(c.Request.Context(), userIDs)
	if err != nil {
		log.Printf("Error querying users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
