package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/enrollment-api/internal/service"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
	"github.com/opencampus/enrollment-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
	exports  *service.ExportService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, exports *service.ExportService) *StudentHandler {
	return &StudentHandler{students: students, exports: exports}
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s: %s", name, c.Param(name)))
	}
	return id, nil
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param lastName query string false "Filter by last-name fragment"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), strings.TrimSpace(c.Query("lastName")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Search godoc
// @Summary Search students by last name
// @Tags Students
// @Produce json
// @Param lastName query string true "Last-name fragment"
// @Success 200 {object} response.Envelope
// @Router /students/search [get]
func (h *StudentHandler) Search(c *gin.Context) {
	needle := strings.TrimSpace(c.Query("lastName"))
	if needle == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "lastName query parameter is required"))
		return
	}
	students, err := h.students.List(c.Request.Context(), needle)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get student by id
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// GetByEmail godoc
// @Summary Get student by email
// @Tags Students
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} response.Envelope
// @Router /students/email/{email} [get]
func (h *StudentHandler) GetByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "email is required"))
		return
	}
	student, err := h.students.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// ByCourse godoc
// @Summary List students enrolled in a course
// @Tags Students
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /students/course/{courseId} [get]
func (h *StudentHandler) ByCourse(c *gin.Context) {
	courseID, err := pathID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	students, err := h.students.ByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Create godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/enroll/{courseId} [post]
func (h *StudentHandler) Enroll(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Enroll(c.Request.Context(), id, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Withdraw godoc
// @Summary Withdraw a student from a course
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/withdraw/{courseId} [delete]
func (h *StudentHandler) Withdraw(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Withdraw(c.Request.Context(), id, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Export godoc
// @Summary Export the student roster
// @Tags Students
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	result, err := h.exports.Students(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
