package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/repository"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type fakeResetter struct {
	calls int
	err   error
}

func (f *fakeResetter) Reset(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestAdminServiceResetCollection(t *testing.T) {
	students := &fakeResetter{}
	courses := &fakeResetter{}
	departments := &fakeResetter{}
	svc := NewAdminService(students, courses, departments, zap.NewNop())

	require.NoError(t, svc.ResetCollection(context.Background(), repository.KeyCourses))
	assert.Equal(t, 0, students.calls)
	assert.Equal(t, 1, courses.calls)
	assert.Equal(t, 0, departments.calls)
}

func TestAdminServiceResetUnknownKind(t *testing.T) {
	svc := NewAdminService(&fakeResetter{}, &fakeResetter{}, &fakeResetter{}, zap.NewNop())

	err := svc.ResetCollection(context.Background(), "grades")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestAdminServiceResetStoreFailure(t *testing.T) {
	students := &fakeResetter{err: errors.New("backend down")}
	svc := NewAdminService(students, &fakeResetter{}, &fakeResetter{}, zap.NewNop())

	err := svc.ResetCollection(context.Background(), repository.KeyStudents)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrStoreUnavailable))
}

func TestAdminServiceKinds(t *testing.T) {
	svc := NewAdminService(&fakeResetter{}, &fakeResetter{}, &fakeResetter{}, zap.NewNop())

	assert.Equal(t, []string{repository.KeyStudents, repository.KeyCourses, repository.KeyDepartments}, svc.Kinds())
}
