// Package repository implements whole-collection CRUD over the blob store.
// Every collection is read, modified, and written back as one JSON array; the
// strategy holds only because collections stay small and there is a single
// logical writer.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/store"
)

// Storage keys, one blob per entity kind.
const (
	KeyStudents    = "students"
	KeyCourses     = "courses"
	KeyDepartments = "departments"
)

// ErrRecordNotFound signals that no record matches the requested id.
var ErrRecordNotFound = errors.New("repository: record not found")

// collection owns the seed/load/save cycle for one entity kind.
type collection[T any] struct {
	store  store.Store
	key    string
	seed   func() []T
	id     func(T) int
	setID  func(*T, int)
	logger *zap.Logger
}

func newCollection[T any](s store.Store, key string, seed func() []T, id func(T) int, setID func(*T, int), logger *zap.Logger) *collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &collection[T]{store: s, key: key, seed: seed, id: id, setID: setID, logger: logger}
}

// load returns the full collection, writing the fixed seed on the first-ever
// access. Storage failures propagate; callers on read paths decide whether to
// degrade.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Read(ctx, c.key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return c.seedCollection(ctx)
		}
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *collection[T]) seedCollection(ctx context.Context) ([]T, error) {
	items := c.seed()
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	c.logger.Info("collection seeded", zap.String("key", c.key), zap.Int("records", len(items)))
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Write(ctx, c.key, data); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// List returns the collection in insertion order.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// FindByID scans for a matching id.
func (c *collection[T]) FindByID(ctx context.Context, id int) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if c.id(item) == id {
			return item, nil
		}
	}
	return zero, ErrRecordNotFound
}

// Create assigns the next id, appends, and writes the collection back.
func (c *collection[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	next := 0
	for _, existing := range items {
		if c.id(existing) > next {
			next = c.id(existing)
		}
	}
	c.setID(&item, next+1)

	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the record with the matching id wholesale. The id on the
// stored record always wins over whatever the payload carried.
func (c *collection[T]) Update(ctx context.Context, id int, item T) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	for i := range items {
		if c.id(items[i]) != id {
			continue
		}
		c.setID(&item, id)
		items[i] = item
		if err := c.save(ctx, items); err != nil {
			return zero, err
		}
		return item, nil
	}
	return zero, ErrRecordNotFound
}

// Delete filters out the matching id. A missing id is a no-op, not an error.
func (c *collection[T]) Delete(ctx context.Context, id int) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	filtered := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			filtered = append(filtered, item)
		}
	}
	return c.save(ctx, filtered)
}

// Reset clears the stored blob; the next read reseeds.
func (c *collection[T]) Reset(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("reset %s: %w", c.key, err)
	}
	c.logger.Info("collection reset", zap.String("key", c.key))
	return nil
}
