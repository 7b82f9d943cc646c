package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/repository"
	"github.com/opencampus/enrollment-api/internal/service"
	"github.com/opencampus/enrollment-api/internal/store"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	logr := zap.NewNop()
	students := repository.NewStudentRepository(st, logr)
	courses := repository.NewCourseRepository(st, logr)
	departments := repository.NewDepartmentRepository(st, logr)

	validate := validator.New()
	studentSvc := service.NewStudentService(students, courses, validate, logr)
	courseSvc := service.NewCourseService(courses, validate, logr)
	departmentSvc := service.NewDepartmentService(departments, validate, logr)
	adminSvc := service.NewAdminService(students, courses, departments, logr)
	exportSvc := service.NewExportService(students, courses, 0, logr)

	r := gin.New()
	r.GET("/ready", Ready(st))
	api := r.Group("/api")
	Register(api, Handlers{
		Students:       NewStudentHandler(studentSvc, exportSvc),
		Courses:        NewCourseHandler(courseSvc, studentSvc, exportSvc),
		Departments:    NewDepartmentHandler(departmentSvc),
		Admin:          NewAdminHandler(adminSvc),
		ExportsEnabled: true,
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage  `json:"data"`
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *appErrors.Error {
	t.Helper()
	var envelope struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error
}

func TestStudentsListReturnsSeed(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var students []models.Student
	decodeData(t, w, &students)
	require.Len(t, students, 6)
	assert.Equal(t, 1, students[0].ID)
	assert.Equal(t, "Rahul", students[0].FirstName)
}

func TestStudentGetUnknownReturns404(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, appErrors.ErrNotFound.Code, apiErr.Code)
}

func TestStudentGetInvalidIDReturns400(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentCreateAssignsNextID(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/students", gin.H{
		"firstName":   "Kiran",
		"lastName":    "Desai",
		"email":       "kiran.desai@example.com",
		"phoneNumber": "+91 9000000001",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Student
	decodeData(t, w, &created)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
}

func TestStudentCreateDuplicateEmailReturns409(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/students", gin.H{
		"firstName":   "Copy",
		"lastName":    "Cat",
		"email":       "rahul.sharma@example.com",
		"phoneNumber": "+91 9000000002",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestStudentCreateMalformedBodyReturns400(t *testing.T) {
	r := setupRouter(t)

	req, err := http.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(`{"firstName":`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentEnrollAndCourseRoster(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/students/1/enroll/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var enrolled models.Student
	decodeData(t, w, &enrolled)
	assert.Contains(t, enrolled.EnrolledCourseIDs, 2)

	// Enrolling twice is rejected.
	w = doRequest(t, r, http.MethodPost, "/api/students/1/enroll/2", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/courses/2/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roster []models.StudentSummary
	decodeData(t, w, &roster)
	require.Len(t, roster, 1)
	assert.Equal(t, 1, roster[0].ID)

	w = doRequest(t, r, http.MethodDelete, "/api/students/1/withdraw/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/students/course/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	roster = nil
	decodeData(t, w, &roster)
	assert.Empty(t, roster)
}

func TestStudentSearchByLastName(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/search?lastName=sharma", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	decodeData(t, w, &students)
	require.NotEmpty(t, students)
	for _, s := range students {
		assert.Contains(t, s.LastName, "Sharma")
	}

	w = doRequest(t, r, http.MethodGet, "/api/students/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentGetByEmail(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/email/rahul.sharma@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var student models.Student
	decodeData(t, w, &student)
	assert.Equal(t, 1, student.ID)
}

func TestStudentDeleteReturns204(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/students/3", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/students/3", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseDetailEnriched(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/courses/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.CourseDetail
	decodeData(t, w, &detail)
	assert.Equal(t, "IT101", detail.Code)
	assert.NotEmpty(t, detail.Instructor)
	assert.NotEmpty(t, detail.Schedule)
	assert.Equal(t, []string{"None"}, detail.Prerequisites)
}

func TestCourseCreateRejectsBadCode(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/courses", gin.H{
		"code":       "BAD",
		"name":       "Broken",
		"department": "Information Technology",
		"credits":    3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepartmentDetailFilled(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/departments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var department models.Department
	decodeData(t, w, &department)
	assert.NotEmpty(t, department.Email)
	assert.NotEmpty(t, department.Faculty)
	assert.NotZero(t, department.Budget)
}

func TestDepartmentCoursesEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/departments/1/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var courses []models.CourseSummary
	decodeData(t, w, &courses)
	assert.NotEmpty(t, courses)
}

func TestAdminResetRestoresSeed(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/students/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/admin/collections/students/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/students", nil)
	var students []models.Student
	decodeData(t, w, &students)
	assert.Len(t, students, 6)
}

func TestAdminResetUnknownKindReturns400(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/admin/collections/grades/reset", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentExportCSV(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "students.csv")
	assert.Contains(t, w.Body.String(), "rahul.sharma@example.com")
}

func TestCourseExportPDF(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/courses/export?format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestReadyProbe(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
}

func TestUpdatePreservesEnrollmentDate(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/students/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before models.Student
	decodeData(t, w, &before)

	w = doRequest(t, r, http.MethodPut, "/api/students/2", gin.H{
		"firstName":   before.FirstName,
		"lastName":    "Renamed",
		"email":       before.Email,
		"phoneNumber": before.PhoneNumber,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var after models.Student
	decodeData(t, w, &after)
	assert.Equal(t, "Renamed", after.LastName)
	assert.Equal(t, before.EnrollmentDate, after.EnrollmentDate)
	assert.Equal(t, before.Status, after.Status)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := doRequest(t, r, http.MethodDelete, "/api/courses/4", nil)
		require.Equal(t, http.StatusNoContent, w.Code, fmt.Sprintf("attempt %d", i+1))
	}
}
