package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/store"
)

// CourseRepository manages the course collection.
type CourseRepository struct {
	col *collection[models.Course]
}

// NewCourseRepository constructs a CourseRepository over the given store.
func NewCourseRepository(s store.Store, logger *zap.Logger) *CourseRepository {
	return &CourseRepository{
		col: newCollection(s, KeyCourses, seedCourses,
			func(c models.Course) int { return c.ID },
			func(c *models.Course, id int) { c.ID = id },
			logger),
	}
}

// List returns all courses in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	return r.col.List(ctx)
}

// FindByID fetches one course or ErrRecordNotFound.
func (r *CourseRepository) FindByID(ctx context.Context, id int) (models.Course, error) {
	return r.col.FindByID(ctx, id)
}

// Create appends the course with the next id.
func (r *CourseRepository) Create(ctx context.Context, course models.Course) (models.Course, error) {
	return r.col.Create(ctx, course)
}

// Update replaces the course with the matching id.
func (r *CourseRepository) Update(ctx context.Context, id int, course models.Course) (models.Course, error) {
	return r.col.Update(ctx, id, course)
}

// Delete removes the course; a missing id is a no-op.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	return r.col.Delete(ctx, id)
}

// Reset clears the collection so the next read reseeds.
func (r *CourseRepository) Reset(ctx context.Context) error {
	return r.col.Reset(ctx)
}
