package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/enrollment-api/internal/repository"
	"github.com/opencampus/enrollment-api/internal/store"
)

// Handlers aggregates the API surface mounted under the configured prefix.
type Handlers struct {
	Students    *StudentHandler
	Courses     *CourseHandler
	Departments *DepartmentHandler
	Admin       *AdminHandler

	ExportsEnabled bool
}

// Register mounts the entity routes on the given group.
func Register(api *gin.RouterGroup, h Handlers) {
	students := api.Group("/students")
	{
		students.GET("", h.Students.List)
		students.POST("", h.Students.Create)
		students.GET("/search", h.Students.Search)
		if h.ExportsEnabled {
			students.GET("/export", h.Students.Export)
		}
		students.GET("/email/:email", h.Students.GetByEmail)
		students.GET("/course/:courseId", h.Students.ByCourse)
		students.GET("/:id", h.Students.Get)
		students.PUT("/:id", h.Students.Update)
		students.DELETE("/:id", h.Students.Delete)
		students.POST("/:id/enroll/:courseId", h.Students.Enroll)
		students.DELETE("/:id/withdraw/:courseId", h.Students.Withdraw)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.POST("", h.Courses.Create)
		if h.ExportsEnabled {
			courses.GET("/export", h.Courses.Export)
		}
		courses.GET("/:id", h.Courses.Get)
		courses.PUT("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
		courses.GET("/:id/students", h.Courses.Students)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", h.Departments.List)
		departments.POST("", h.Departments.Create)
		departments.GET("/:id", h.Departments.Get)
		departments.PUT("/:id", h.Departments.Update)
		departments.DELETE("/:id", h.Departments.Delete)
		departments.GET("/:id/courses", h.Departments.Courses)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/collections", h.Admin.Collections)
		admin.POST("/collections/:kind/reset", h.Admin.Reset)
	}
}

// Ready probes the collection store; a missing key still counts as reachable.
func Ready(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if _, err := s.Read(ctx, repository.KeyStudents); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
