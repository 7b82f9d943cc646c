package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/repository"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type resetter interface {
	Reset(ctx context.Context) error
}

// AdminService exposes administrative collection maintenance.
type AdminService struct {
	collections map[string]resetter
	logger      *zap.Logger
}

// NewAdminService wires the resettable collections by kind.
func NewAdminService(students, courses, departments resetter, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		collections: map[string]resetter{
			repository.KeyStudents:    students,
			repository.KeyCourses:     courses,
			repository.KeyDepartments: departments,
		},
		logger: logger,
	}
}

// ResetCollection clears the persisted data for one entity kind; the next
// read reseeds the fixed defaults.
func (s *AdminService) ResetCollection(ctx context.Context, kind string) error {
	col, ok := s.collections[kind]
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown collection kind: %s", kind))
	}
	if err := col.Reset(ctx); err != nil {
		return storeFailure(err, "failed to reset collection")
	}
	s.logger.Info("collection reset requested", zap.String("kind", kind))
	return nil
}

// Kinds lists the resettable collection names.
func (s *AdminService) Kinds() []string {
	return []string{repository.KeyStudents, repository.KeyCourses, repository.KeyDepartments}
}
