package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id int) (models.Course, error)
	Create(ctx context.Context, course models.Course) (models.Course, error)
	Update(ctx context.Context, id int, course models.Course) (models.Course, error)
	Delete(ctx context.Context, id int) error
}

// Human course codes look like IT101 or AIH1000.
var courseCodePattern = regexp.MustCompile(`^[A-Za-z]{2,4}[0-9]{3,4}$`)

// CreateCourseRequest holds the payload for creating courses.
type CreateCourseRequest struct {
	Code        string        `json:"code" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Department  string        `json:"department" validate:"required"`
	Credits     int           `json:"credits" validate:"required,min=1,max=6"`
	Capacity    int           `json:"capacity" validate:"omitempty,min=5,max=300"`
	Status      models.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateCourseRequest holds the payload for updating courses.
type UpdateCourseRequest struct {
	Code        string        `json:"code" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Department  string        `json:"department" validate:"required"`
	Credits     int           `json:"credits" validate:"required,min=1,max=6"`
	Capacity    int           `json:"capacity" validate:"omitempty,min=5,max=300"`
	Status      models.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// courseEnrichment carries the presentation fields synthesized for a detail
// view. None of it is persisted.
type courseEnrichment struct {
	description string
	instructor  string
	location    string
}

// Detail enrichment keyed by department name; departments without an entry
// fall back to the generic values.
var courseEnrichments = map[string]courseEnrichment{
	"Information Technology": {
		description: "A comprehensive course on programming fundamentals with emphasis on practical applications in the Indian IT industry.",
		instructor:  "Dr. Rajesh Khanna",
		location:    "APJ Abdul Kalam Block, Lab 101",
	},
	"Mechanical Engineering": {
		description: "Study of forces and their effect on rigid bodies, with applications in Indian manufacturing sector.",
		instructor:  "Dr. Suresh Patel",
		location:    "Visvesvaraya Block, Room 205",
	},
	"Hindi Literature": {
		description: "Exploration of modern Hindi literary works by prominent Indian authors.",
		instructor:  "Dr. Meera Patel",
		location:    "Premchand Bhavan, Room 102",
	},
	"Ancient Indian History": {
		description: "Study of ancient Indian civilizations, cultural heritage and historical developments.",
		instructor:  "Dr. Arjun Reddy",
		location:    "Tagore Block, Room 110",
	},
	"Biotechnology": {
		description: "Study of India's rich biodiversity and its applications in biotechnology.",
		instructor:  "Dr. Sunita Sharma",
		location:    "CV Raman Block, Lab 203",
	},
	"Electronics & Communication": {
		description: "Study of microprocessor architecture and applications in embedded systems.",
		instructor:  "Dr. Vikram Malhotra",
		location:    "JC Bose Block, Lab 105",
	},
}

var defaultCourseEnrichment = courseEnrichment{
	description: "An introductory course covering fundamental concepts with practical applications relevant to Indian industry.",
	instructor:  "Dr. Rajesh Khanna",
	location:    "APJ Abdul Kalam Block, Room 101",
}

const (
	defaultCourseSchedule = "Mon, Wed, Fri 10:00 AM - 11:15 AM"
	defaultCourseCapacity = 30
	defaultCourseEnrolled = 22
)

// CourseService handles course use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// List returns all courses; storage failures degrade to empty on this read path.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("course list degraded to empty", zap.Error(err))
		return []models.Course{}, nil
	}
	return courses, nil
}

// Get returns one course with its synthesized detail fields.
func (s *CourseService) Get(ctx context.Context, id int) (models.CourseDetail, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.CourseDetail{}, mapLookupError(err, fmt.Sprintf("course %d not found", id))
	}
	return enrichCourse(course), nil
}

// Create adds a new course after validating its shape.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (models.Course, error) {
	if err := s.validateCoursePayload(req.Code, req); err != nil {
		return models.Course{}, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	course := models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
		Credits:     req.Credits,
		Capacity:    req.Capacity,
		Status:      status,
	}
	created, err := s.repo.Create(ctx, course)
	if err != nil {
		return models.Course{}, storeFailure(err, "failed to create course")
	}
	return created, nil
}

// Update replaces an existing course. The enrolled-students counter carries
// over from the stored record.
func (s *CourseService) Update(ctx context.Context, id int, req UpdateCourseRequest) (models.Course, error) {
	if err := s.validateCoursePayload(req.Code, req); err != nil {
		return models.Course{}, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Course{}, mapLookupError(err, fmt.Sprintf("course %d not found", id))
	}
	status := req.Status
	if status == "" {
		status = existing.Status
	}
	course := models.Course{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Department:       req.Department,
		Credits:          req.Credits,
		Capacity:         req.Capacity,
		EnrolledStudents: existing.EnrolledStudents,
		Status:           status,
	}
	updated, err := s.repo.Update(ctx, id, course)
	if err != nil {
		return models.Course{}, mapLookupError(err, fmt.Sprintf("course %d not found", id))
	}
	return updated, nil
}

// Delete removes a course; deleting an unknown id is a no-op.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err, "failed to delete course")
	}
	return nil
}

func (s *CourseService) validateCoursePayload(code string, req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if !courseCodePattern.MatchString(code) {
		return appErrors.Clone(appErrors.ErrValidation, "course code must be 2-4 letters followed by 3-4 digits")
	}
	return nil
}

// enrichCourse fills the presentation fields the list view never stores.
func enrichCourse(course models.Course) models.CourseDetail {
	enrichment, ok := courseEnrichments[course.Department]
	if !ok {
		enrichment = defaultCourseEnrichment
	}

	detail := models.CourseDetail{
		Course:        course,
		Instructor:    enrichment.instructor,
		Schedule:      defaultCourseSchedule,
		Location:      enrichment.location,
		Prerequisites: []string{"None"},
		StartDate:     models.MustDate("2023-07-15"),
		EndDate:       models.MustDate("2023-11-30"),
	}
	if detail.Description == "" {
		detail.Description = enrichment.description
	}
	if detail.Capacity == 0 {
		detail.Capacity = defaultCourseCapacity
	}
	if detail.EnrolledStudents == 0 {
		detail.EnrolledStudents = defaultCourseEnrolled
	}
	return detail
}
