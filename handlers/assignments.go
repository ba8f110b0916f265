package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/models"
)

// FindAssignmentsForCourseHandler lists a course's assignments
func FindAssignmentsForCourseHandler(c *gin.Context) {
	daos := getDAOs(c)
	assignments, err := daos.Assignments.FindAssignmentsForCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		log.Printf("Error querying assignments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// FindAssignmentByIDHandler returns one assignment scoped to its course
func FindAssignmentByIDHandler(c *gin.Context) {
	daos := getDAOs(c)
	assignment, err := daos.Assignments.FindAssignmentByID(c.Request.Context(), c.Param("courseId"), c.Param("assignmentId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found"})
		return
	} else if err != nil {
		log.Printf("Error querying assignment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CreateAssignmentHandler creates an assignment under a course
func CreateAssignmentHandler(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	created, err := daos.Assignments.CreateAssignment(c.Request.Context(), c.Param("courseId"), assignment)
	if err != nil {
		log.Printf("Error creating assignment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateAssignmentHandler applies the request body as a partial update
func UpdateAssignmentHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	delete(updates, "_id")
	delete(updates, "course")

	daos := getDAOs(c)
	err := daos.Assignments.UpdateAssignment(c.Request.Context(), c.Param("courseId"), c.Param("assignmentId"), updates)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found"})
		return
	} else if err != nil {
		log.Printf("Error updating assignment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAssignmentHandler removes an assignment scoped to its course
func DeleteAssignmentHandler(c *gin.Context) {
	daos := getDAOs(c)
	err := daos.Assignments.DeleteAssignment(c.Request.Context(), c.Param("courseId"), c.Param("assignmentId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found"})
		return
	} else if err != nil {
		log.Printf("Error deleting assignment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}
