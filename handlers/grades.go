package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/models"
	"github.com/darshanrk18/kambaz-server-go/session"
)

// CreateGradeHandler records a grade for a student on an assignment
func CreateGradeHandler(c *gin.Context) {
	var req models.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	grade, err := daos.Grades.CreateGrade(c.Request.Context(), models.Grade{
		Student:    req.Student,
		Assignment: c.Param("assignmentId"),
		Grade:      req.Grade,
	})
	if err != nil {
		log.Printf("Error creating grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, grade)
}

// FindGradesForAssignmentHandler lists the grades recorded for an assignment
func FindGradesForAssignmentHandler(c *gin.Context) {
	daos := getDAOs(c)
	grades, err := daos.Grades.FindGradesForAssignment(c.Request.Context(), c.Param("assignmentId"))
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, grades)
}

// FindGradesForStudentHandler lists a student's grades; the userId token may
// be the "current" sentinel
func FindGradesForStudentHandler(c *gin.Context) {
	userID, ok := session.ResolveUserID(c, c.Param("userId"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
		return
	}

	daos := getDAOs(c)
	grades, err := daos.Grades.FindGradesForStudent(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, grades)
}

// UpdateGradeHandler applies the request body as a partial update
func UpdateGradeHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	delete(updates, "_id")

	daos := getDAOs(c)
	err := daos.Grades.UpdateGrade(c.Request.Context(), c.Param("gradeId"), updates)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Grade not found"})
		return
	} else if err != nil {
		log.Printf("Error updating grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteGradeHandler removes a grade
func DeleteGradeHandler(c *gin.Context) {
	daos := getDAOs(c)
	err := daos.Grades.DeleteGrade(c.Request.Context(), c.Param("gradeId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Grade not found"})
		return
	} else if err != nil {
		log.Printf("Error deleting grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}
