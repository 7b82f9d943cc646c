package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/store"
)

// DepartmentRepository manages the department collection.
type DepartmentRepository struct {
	col *collection[models.Department]
}

// NewDepartmentRepository constructs a DepartmentRepository over the given store.
func NewDepartmentRepository(s store.Store, logger *zap.Logger) *DepartmentRepository {
	return &DepartmentRepository{
		col: newCollection(s, KeyDepartments, seedDepartments,
			func(d models.Department) int { return d.ID },
			func(d *models.Department, id int) { d.ID = id },
			logger),
	}
}

// List returns all departments in insertion order.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	return r.col.List(ctx)
}

// FindByID fetches one department or ErrRecordNotFound.
func (r *DepartmentRepository) FindByID(ctx context.Context, id int) (models.Department, error) {
	return r.col.FindByID(ctx, id)
}

// Create appends the department with the next id.
func (r *DepartmentRepository) Create(ctx context.Context, department models.Department) (models.Department, error) {
	return r.col.Create(ctx, department)
}

// Update replaces the department with the matching id.
func (r *DepartmentRepository) Update(ctx context.Context, id int, department models.Department) (models.Department, error) {
	return r.col.Update(ctx, id, department)
}

// Delete removes the department; a missing id is a no-op. Deleting a
// department does not touch its courses.
func (r *DepartmentRepository) Delete(ctx context.Context, id int) error {
	return r.col.Delete(ctx, id)
}

// Reset clears the collection so the next read reseeds.
func (r *DepartmentRepository) Reset(ctx context.Context) error {
	return r.col.Reset(ctx)
}
