package repository

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/store"
)

// StudentRepository manages the student collection.
type StudentRepository struct {
	col *collection[models.Student]
}

// NewStudentRepository constructs a StudentRepository over the given store.
func NewStudentRepository(s store.Store, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{
		col: newCollection(s, KeyStudents, seedStudents,
			func(st models.Student) int { return st.ID },
			func(st *models.Student, id int) { st.ID = id },
			logger),
	}
}

// List returns all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	return r.col.List(ctx)
}

// FindByID fetches one student or ErrRecordNotFound.
func (r *StudentRepository) FindByID(ctx context.Context, id int) (models.Student, error) {
	return r.col.FindByID(ctx, id)
}

// FindByEmail scans for a student with the given email, case-insensitive.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (models.Student, error) {
	students, err := r.col.List(ctx)
	if err != nil {
		return models.Student{}, err
	}
	for _, s := range students {
		if strings.EqualFold(s.Email, email) {
			return s, nil
		}
	}
	return models.Student{}, ErrRecordNotFound
}

// ExistsByEmail checks email uniqueness, optionally excluding one id.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	students, err := r.col.List(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range students {
		if s.ID != excludeID && strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Create appends the student with the next id.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	return r.col.Create(ctx, student)
}

// Update replaces the student with the matching id.
func (r *StudentRepository) Update(ctx context.Context, id int, student models.Student) (models.Student, error) {
	return r.col.Update(ctx, id, student)
}

// Delete removes the student; a missing id is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	return r.col.Delete(ctx, id)
}

// Reset clears the collection so the next read reseeds.
func (r *StudentRepository) Reset(ctx context.Context) error {
	return r.col.Reset(ctx)
}
