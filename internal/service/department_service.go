package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id int) (models.Department, error)
	Create(ctx context.Context, department models.Department) (models.Department, error)
	Update(ctx context.Context, id int, department models.Department) (models.Department, error)
	Delete(ctx context.Context, id int) error
}

// CreateDepartmentRequest holds the payload for creating departments.
type CreateDepartmentRequest struct {
	Name        string        `json:"name" validate:"required"`
	Head        string        `json:"head" validate:"required"`
	FoundedYear int           `json:"foundedYear" validate:"required,min=1800"`
	Location    string        `json:"location"`
	Status      models.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Budget      float64       `json:"budget" validate:"omitempty,min=0,max=10000000"`
	Email       string        `json:"email" validate:"omitempty,email"`
	Phone       string        `json:"phone"`
	Description string        `json:"description"`
}

// UpdateDepartmentRequest holds the payload for updating departments. The
// denormalized counters are never writable through this request.
type UpdateDepartmentRequest struct {
	Name        string        `json:"name" validate:"required"`
	Head        string        `json:"head" validate:"required"`
	FoundedYear int           `json:"foundedYear" validate:"required,min=1800"`
	Location    string        `json:"location"`
	Status      models.Status `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Budget      float64       `json:"budget" validate:"omitempty,min=0,max=10000000"`
	Email       string        `json:"email" validate:"omitempty,email"`
	Phone       string        `json:"phone"`
	Description string        `json:"description"`
}

// DepartmentService handles department use-cases.
type DepartmentService struct {
	repo      departmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDepartmentService constructs the department service.
func NewDepartmentService(repo departmentRepository, validate *validator.Validate, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, validator: validate, logger: logger}
}

// List returns all departments; storage failures degrade to empty on this
// read path.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("department list degraded to empty", zap.Error(err))
		return []models.Department{}, nil
	}
	return departments, nil
}

// Get returns one department with its optional detail fields defaulted.
func (s *DepartmentService) Get(ctx context.Context, id int) (models.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Department{}, mapLookupError(err, fmt.Sprintf("department %d not found", id))
	}
	return fillDepartmentDetail(department), nil
}

// Courses returns the summaries embedded on the department record. This is a
// denormalized view, not a live join against the course collection.
func (s *DepartmentService) Courses(ctx context.Context, id int) ([]models.CourseSummary, error) {
	department, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if department.Courses == nil {
		return []models.CourseSummary{}, nil
	}
	return department.Courses, nil
}

// Create adds a new department with zeroed counters.
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (models.Department, error) {
	if err := s.validateDepartmentPayload(req.FoundedYear, req); err != nil {
		return models.Department{}, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	department := models.Department{
		Name:          req.Name,
		Head:          req.Head,
		FoundedYear:   req.FoundedYear,
		Location:      req.Location,
		Status:        status,
		Budget:        req.Budget,
		Email:         req.Email,
		Phone:         req.Phone,
		Description:   req.Description,
		StudentsCount: 0,
		CoursesCount:  0,
	}
	created, err := s.repo.Create(ctx, department)
	if err != nil {
		return models.Department{}, storeFailure(err, "failed to create department")
	}
	return created, nil
}

// Update replaces an existing department, carrying the stored counters over.
func (s *DepartmentService) Update(ctx context.Context, id int, req UpdateDepartmentRequest) (models.Department, error) {
	if err := s.validateDepartmentPayload(req.FoundedYear, req); err != nil {
		return models.Department{}, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Department{}, mapLookupError(err, fmt.Sprintf("department %d not found", id))
	}
	status := req.Status
	if status == "" {
		status = existing.Status
	}
	department := models.Department{
		Name:          req.Name,
		Head:          req.Head,
		FoundedYear:   req.FoundedYear,
		Location:      req.Location,
		Status:        status,
		Budget:        req.Budget,
		Email:         req.Email,
		Phone:         req.Phone,
		Description:   req.Description,
		StudentsCount: existing.StudentsCount,
		CoursesCount:  existing.CoursesCount,
		Faculty:       existing.Faculty,
		Courses:       existing.Courses,
	}
	updated, err := s.repo.Update(ctx, id, department)
	if err != nil {
		return models.Department{}, mapLookupError(err, fmt.Sprintf("department %d not found", id))
	}
	return updated, nil
}

// Delete removes a department. Courses referencing it are untouched.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err, "failed to delete department")
	}
	return nil
}

func (s *DepartmentService) validateDepartmentPayload(foundedYear int, req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department payload")
	}
	if foundedYear > time.Now().Year() {
		return appErrors.Clone(appErrors.ErrValidation, "foundedYear cannot be in the future")
	}
	return nil
}

// Detail-view defaults for records that never set the optional fields.
const (
	defaultDepartmentDescription = "Department focused on cutting-edge technology fields with emphasis on developing skills relevant to Indian IT industry."
	defaultDepartmentLocation    = "APJ Abdul Kalam Block, Second Floor"
	defaultDepartmentBudget      = 5000000
	defaultDepartmentPhone       = "011-2345-6789"
)

// fillDepartmentDetail defaults every optional detail field in one place.
func fillDepartmentDetail(d models.Department) models.Department {
	if d.Description == "" {
		d.Description = defaultDepartmentDescription
	}
	if d.Location == "" {
		d.Location = defaultDepartmentLocation
	}
	if d.Budget == 0 {
		d.Budget = defaultDepartmentBudget
	}
	if d.Email == "" {
		d.Email = departmentEmail(d.Name)
	}
	if d.Phone == "" {
		d.Phone = defaultDepartmentPhone
	}
	if len(d.Courses) == 0 {
		d.Courses = []models.CourseSummary{
			{ID: 1, Code: "IT101", Name: "Introduction to Programming", Credits: 3},
			{ID: 2, Code: "IT201", Name: "Data Structures and Algorithms", Credits: 4},
			{ID: 3, Code: "IT301", Name: "Database Management Systems", Credits: 4},
		}
	}
	if len(d.Faculty) == 0 {
		d.Faculty = []models.FacultyMember{
			{ID: 1, Name: d.Head, Position: "Department Head", Email: facultyEmail(d.Head)},
			{ID: 2, Name: "Dr. Anjali Narayan Singh", Position: "Professor", Email: "anjali.singh@university.ac.in"},
			{ID: 3, Name: "Dr. Rajendra Mohan Prasad", Position: "Associate Professor", Email: "rajendra.prasad@university.ac.in"},
			{ID: 4, Name: "Dr. Aishwarya Krishnan", Position: "Assistant Professor", Email: "aishwarya.krishnan@university.ac.in"},
			{ID: 5, Name: "Dr. Gopal Chandra Verma", Position: "Assistant Professor", Email: "gopal.verma@university.ac.in"},
		}
	}
	return d
}

func departmentEmail(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "admin.department@university.ac.in"
	}
	return fields[0] + ".department@university.ac.in"
}

func facultyEmail(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.TrimPrefix(slug, "dr.")
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.Join(strings.Fields(slug), ".")
	if slug == "" {
		return "faculty@university.ac.in"
	}
	return slug + "@university.ac.in"
}
