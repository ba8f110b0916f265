package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
)

// FindAllCoursesHandler lists every course
func FindAllCoursesHandler(c *gin.Context) {
	daos := getDAOs(c)
	courses, err := daos.Courses.FindAllCourses(c.Request.Context())
	if err != nil {
		log.Printf("Error querying courses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// FindCourseByIDHandler returns a single course or 404
func FindCourseByIDHandler(c *gin.Context) {
	daos := getDAOs(c)
	course, err := daos.Courses.FindCourseByID(c.Request.Context(), c.Param("courseId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	} else if err != nil {
		log.Printf("Error querying course: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateCourseHandler applies the request body as a partial update
func UpdateCourseHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	delete(updates, "_id")

	daos := getDAOs(c)
	err := daos.Courses.UpdateCourse(c.Request.Context(), c.Param("courseId"), updates)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	} else if err != nil {
		log.Printf("Error updating course: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourseHandler removes a course
func DeleteCourseHandler(c *gin.Context) {
	daos := getDAOs(c)
	err := daos.Courses.DeleteCourse(c.Request.Context(), c.Param("courseId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	} else if err != nil {
		log.Printf("Error deleting course: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}
