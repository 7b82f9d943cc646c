package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/repository"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int) (models.Student, error)
	FindByEmail(ctx context.Context, email string) (models.Student, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
	Update(ctx context.Context, id int, student models.Student) (models.Student, error)
	Delete(ctx context.Context, id int) error
}

type courseReader interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id int) (models.Course, error)
}

// CreateStudentRequest holds the payload for registering students.
type CreateStudentRequest struct {
	FirstName         string        `json:"firstName" validate:"required"`
	LastName          string        `json:"lastName" validate:"required"`
	Email             string        `json:"email" validate:"required,email"`
	PhoneNumber       string        `json:"phoneNumber" validate:"required"`
	Gender            models.Gender `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth       models.Date   `json:"dateOfBirth"`
	Address           string        `json:"address"`
	EnrolledCourseIDs []int         `json:"enrolledCourseIds"`
}

// UpdateStudentRequest holds the payload for updating students. Status is
// optional; when absent the stored value carries over.
type UpdateStudentRequest struct {
	FirstName         string        `json:"firstName" validate:"required"`
	LastName          string        `json:"lastName" validate:"required"`
	Email             string        `json:"email" validate:"required,email"`
	PhoneNumber       string        `json:"phoneNumber" validate:"required"`
	Gender            models.Gender `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth       models.Date   `json:"dateOfBirth"`
	Address           string        `json:"address"`
	Status            models.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	EnrolledCourseIDs []int         `json:"enrolledCourseIds"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	courses   courseReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, courses courseReader, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, courses: courses, validator: validate, logger: logger}
}

// List returns all students, optionally filtered by a last-name fragment.
// Storage failures degrade to an empty collection on this read path.
func (s *StudentService) List(ctx context.Context, lastName string) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("student list degraded to empty", zap.Error(err))
		return []models.Student{}, nil
	}
	if lastName == "" {
		return students, nil
	}
	needle := strings.ToLower(lastName)
	filtered := make([]models.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.LastName), needle) {
			filtered = append(filtered, st)
		}
	}
	return filtered, nil
}

// Get returns one student by id.
func (s *StudentService) Get(ctx context.Context, id int) (models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student %d not found", id))
	}
	return student, nil
}

// GetByEmail returns one student by email address.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	student, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student with email %s not found", email))
	}
	return student, nil
}

// ByCourse returns summaries of students whose enrollments contain the course.
func (s *StudentService) ByCourse(ctx context.Context, courseID int) ([]models.StudentSummary, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return nil, mapLookupError(err, fmt.Sprintf("course %d not found", courseID))
	}
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("course roster degraded to empty", zap.Int("course_id", courseID), zap.Error(err))
		return []models.StudentSummary{}, nil
	}
	enrolled := make([]models.StudentSummary, 0)
	for _, st := range students {
		if st.EnrolledIn(courseID) {
			enrolled = append(enrolled, st.Summary())
		}
	}
	return enrolled, nil
}

// Create registers a new student. Enrollment date and status are
// server-assigned; referenced courses must exist.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return models.Student{}, storeFailure(err, "failed to validate email")
	}
	if exists {
		return models.Student{}, appErrors.Clone(appErrors.ErrConflict, "email already in use: "+req.Email)
	}
	courseIDs, err := s.verifyCourses(ctx, req.EnrolledCourseIDs)
	if err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		Gender:            req.Gender,
		DateOfBirth:       req.DateOfBirth,
		Address:           req.Address,
		EnrollmentDate:    models.Today(),
		Status:            models.StatusActive,
		EnrolledCourseIDs: courseIDs,
	}
	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return models.Student{}, storeFailure(err, "failed to create student")
	}
	return created, nil
}

// Update replaces an existing student. The stored enrollment date always
// carries over, and status falls back to the previous value when omitted.
func (s *StudentService) Update(ctx context.Context, id int, req UpdateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student %d not found", id))
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		return models.Student{}, storeFailure(err, "failed to validate email")
	}
	if exists {
		return models.Student{}, appErrors.Clone(appErrors.ErrConflict, "email already in use: "+req.Email)
	}
	courseIDs, err := s.verifyCourses(ctx, req.EnrolledCourseIDs)
	if err != nil {
		return models.Student{}, err
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	student := models.Student{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		Gender:            req.Gender,
		DateOfBirth:       req.DateOfBirth,
		Address:           req.Address,
		EnrollmentDate:    existing.EnrollmentDate,
		Status:            status,
		EnrolledCourseIDs: courseIDs,
	}
	updated, err := s.repo.Update(ctx, id, student)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student %d not found", id))
	}
	return updated, nil
}

// Delete removes a student; deleting an unknown id is a no-op.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err, "failed to delete student")
	}
	return nil
}

// Enroll adds the course to the student's enrollments, rejecting duplicates
// and full courses.
func (s *StudentService) Enroll(ctx context.Context, studentID, courseID int) (models.Student, error) {
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student %d not found", studentID))
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("course %d not found", courseID))
	}
	if student.EnrolledIn(courseID) {
		return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "student is already enrolled in this course")
	}
	if course.Capacity > 0 {
		count, err := s.enrolledCount(ctx, courseID)
		if err != nil {
			return models.Student{}, err
		}
		if count >= course.Capacity {
			return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "course has reached its maximum capacity")
		}
	}

	student.EnrolledCourseIDs = append(student.EnrolledCourseIDs, courseID)
	updated, err := s.repo.Update(ctx, studentID, student)
	if err != nil {
		return models.Student{}, storeFailure(err, "failed to enroll student")
	}
	return updated, nil
}

// Withdraw removes the course from the student's enrollments.
func (s *StudentService) Withdraw(ctx context.Context, studentID, courseID int) (models.Student, error) {
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("student %d not found", studentID))
	}
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return models.Student{}, mapLookupError(err, fmt.Sprintf("course %d not found", courseID))
	}
	if !student.EnrolledIn(courseID) {
		return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "student is not enrolled in this course")
	}

	remaining := make([]int, 0, len(student.EnrolledCourseIDs))
	for _, id := range student.EnrolledCourseIDs {
		if id != courseID {
			remaining = append(remaining, id)
		}
	}
	student.EnrolledCourseIDs = remaining
	updated, err := s.repo.Update(ctx, studentID, student)
	if err != nil {
		return models.Student{}, storeFailure(err, "failed to withdraw student")
	}
	return updated, nil
}

func (s *StudentService) verifyCourses(ctx context.Context, ids []int) ([]int, error) {
	verified := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, err := s.courses.FindByID(ctx, id); err != nil {
			return nil, mapLookupError(err, fmt.Sprintf("course %d not found", id))
		}
		verified = append(verified, id)
	}
	return verified, nil
}

func (s *StudentService) enrolledCount(ctx context.Context, courseID int) (int, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return 0, storeFailure(err, "failed to count enrollments")
	}
	count := 0
	for _, st := range students {
		if st.EnrolledIn(courseID) {
			count++
		}
	}
	return count, nil
}

// mapLookupError maps a repository miss to NotFound and anything else to a
// store failure.
func mapLookupError(err error, message string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return storeFailure(err, "collection store unavailable")
}

func storeFailure(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, message)
}
