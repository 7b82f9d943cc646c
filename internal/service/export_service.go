package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
	"github.com/opencampus/enrollment-api/pkg/export"
)

// Export formats accepted by the roster endpoints.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportResult bundles rendered bytes with response metadata.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportService renders entity rosters for download.
type ExportService struct {
	students studentRepository
	courses  courseRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	maxRows  int
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students studentRepository, courses courseRepository, maxRows int, logger *zap.Logger) *ExportService {
	if maxRows <= 0 {
		maxRows = 5000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		courses:  courses,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		maxRows:  maxRows,
		logger:   logger,
	}
}

// Students renders the student roster in the requested format.
func (s *ExportService) Students(ctx context.Context, format string) (*ExportResult, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to load students for export")
	}
	if len(students) > s.maxRows {
		students = students[:s.maxRows]
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "First Name", "Last Name", "Email", "Phone", "Status", "Enrollment Date"},
	}
	for _, st := range students {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":              strconv.Itoa(st.ID),
			"First Name":      st.FirstName,
			"Last Name":       st.LastName,
			"Email":           st.Email,
			"Phone":           st.PhoneNumber,
			"Status":          string(st.Status),
			"Enrollment Date": st.EnrollmentDate.String(),
		})
	}
	return s.render(dataset, format, "students", "Student Roster")
}

// Courses renders the course catalog in the requested format.
func (s *ExportService) Courses(ctx context.Context, format string) (*ExportResult, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, storeFailure(err, "failed to load courses for export")
	}
	if len(courses) > s.maxRows {
		courses = courses[:s.maxRows]
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "Code", "Name", "Department", "Credits", "Status"},
	}
	for _, c := range courses {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":         strconv.Itoa(c.ID),
			"Code":       c.Code,
			"Name":       c.Name,
			"Department": c.Department,
			"Credits":    strconv.Itoa(c.Credits),
			"Status":     string(c.Status),
		})
	}
	return s.render(dataset, format, "courses", "Course Catalog")
}

func (s *ExportService) render(dataset export.Dataset, format, name, title string) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV, "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Data: data, ContentType: "text/csv", Filename: name + ".csv"}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Data: data, ContentType: "application/pdf", Filename: name + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}
