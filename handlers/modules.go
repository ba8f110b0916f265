package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/models"
)

// FindModulesForCourseHandler returns the modules embedded in a course
func FindModulesForCourseHandler(c *gin.Context) {
	daos := getDAOs(c)
	modules, err := daos.Courses.FindModulesForCourse(c.Request.Context(), c.Param("courseId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	} else if err != nil {
		log.Printf("Error querying modules: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, modules)
}

// CreateModuleHandler appends a module to its owning course document
func CreateModuleHandler(c *gin.Context) {
	var module models.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	daos := getDAOs(c)
	created, err := daos.Courses.AddModuleToCourse(c.Request.Context(), c.Param("courseId"), module)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	} else if err != nil {
		log.Printf("Error creating module: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateModuleHandler merges the request body into the embedded module in
// whichever course owns it; omitted fields (lessons included) are untouched
func UpdateModuleHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	delete(updates, "_id")

	daos := getDAOs(c)
	err := daos.Courses.UpdateModule(c.Request.Context(), c.Param("moduleId"), updates)
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Module not found"})
		return
	} else if err != nil {
		log.Printf("Error updating module: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteModuleHandler pulls the embedded module from its owning course
func DeleteModuleHandler(c *gin.Context) {
	daos := getDAOs(c)
	err := daos.Courses.DeleteModule(c.Request.Context(), c.Param("moduleId"))
	if err == dao.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Module not found"})
		return
	} else if err != nil {
		log.Printf("Error deleting module: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Status(http.StatusNoContent)
}
