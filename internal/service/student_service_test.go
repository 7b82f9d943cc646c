package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opencampus/enrollment-api/internal/models"
	"github.com/opencampus/enrollment-api/internal/repository"
	appErrors "github.com/opencampus/enrollment-api/pkg/errors"
)

type fakeStudentRepo struct {
	students map[int]models.Student
	nextID   int
	err      error
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: make(map[int]models.Student), nextID: 1}
	for _, s := range students {
		repo.students[s.ID] = s
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id int) (models.Student, error) {
	if f.err != nil {
		return models.Student{}, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return models.Student{}, repository.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) FindByEmail(ctx context.Context, email string) (models.Student, error) {
	if f.err != nil {
		return models.Student{}, f.err
	}
	for _, s := range f.students {
		if strings.EqualFold(s.Email, email) {
			return s, nil
		}
	}
	return models.Student{}, repository.ErrRecordNotFound
}

func (f *fakeStudentRepo) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.students {
		if s.ID != excludeID && strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student models.Student) (models.Student, error) {
	if f.err != nil {
		return models.Student{}, f.err
	}
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	return student, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, id int, student models.Student) (models.Student, error) {
	if f.err != nil {
		return models.Student{}, f.err
	}
	if _, ok := f.students[id]; !ok {
		return models.Student{}, repository.ErrRecordNotFound
	}
	student.ID = id
	f.students[id] = student
	return student, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.students, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int]models.Course
	nextID  int
	err     error
}

func newFakeCourseRepo(courses ...models.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{courses: make(map[int]models.Course), nextID: 1}
	for _, c := range courses {
		repo.courses[c.ID] = c
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseRepo) FindByID(ctx context.Context, id int) (models.Course, error) {
	if f.err != nil {
		return models.Course{}, f.err
	}
	c, ok := f.courses[id]
	if !ok {
		return models.Course{}, repository.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCourseRepo) Create(ctx context.Context, course models.Course) (models.Course, error) {
	if f.err != nil {
		return models.Course{}, f.err
	}
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return course, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, id int, course models.Course) (models.Course, error) {
	if f.err != nil {
		return models.Course{}, f.err
	}
	if _, ok := f.courses[id]; !ok {
		return models.Course{}, repository.ErrRecordNotFound
	}
	course.ID = id
	f.courses[id] = course
	return course, nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.courses, id)
	return nil
}

func testStudent(id int, lastName, email string, courseIDs ...int) models.Student {
	if courseIDs == nil {
		courseIDs = []int{}
	}
	return models.Student{
		ID:                id,
		FirstName:         "Test",
		LastName:          lastName,
		Email:             email,
		PhoneNumber:       "+91 9876543210",
		EnrollmentDate:    models.MustDate("2023-08-01"),
		Status:            models.StatusActive,
		EnrolledCourseIDs: courseIDs,
	}
}

func TestStudentServiceCreateAssignsServerFields(t *testing.T) {
	repo := newFakeStudentRepo()
	courses := newFakeCourseRepo(models.Course{ID: 1, Code: "IT101", Name: "Intro", Status: models.StatusActive})
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), CreateStudentRequest{
		FirstName:         "Rahul",
		LastName:          "Sharma",
		Email:             "rahul@example.com",
		PhoneNumber:       "+91 9876543210",
		EnrolledCourseIDs: []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, models.Today(), created.EnrollmentDate)
	assert.Equal(t, []int{1}, created.EnrolledCourseIDs)
}

func TestStudentServiceCreateRejectsInvalidPayload(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeCourseRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{FirstName: "Only"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestStudentServiceCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "rahul@example.com"))
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		FirstName:   "Other",
		LastName:    "Person",
		Email:       "RAHUL@example.com",
		PhoneNumber: "+91 9876543211",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
}

func TestStudentServiceCreateRejectsUnknownCourse(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeCourseRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		FirstName:         "Rahul",
		LastName:          "Sharma",
		Email:             "rahul@example.com",
		PhoneNumber:       "+91 9876543210",
		EnrolledCourseIDs: []int{99},
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceUpdatePreservesEnrollmentDate(t *testing.T) {
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "rahul@example.com"))
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	updated, err := svc.Update(context.Background(), 1, UpdateStudentRequest{
		FirstName:   "Rahul",
		LastName:    "Verma",
		Email:       "rahul@example.com",
		PhoneNumber: "+91 9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Verma", updated.LastName)
	assert.Equal(t, models.MustDate("2023-08-01"), updated.EnrollmentDate)
	assert.Equal(t, models.StatusActive, updated.Status)
}

func TestStudentServiceUpdateMissingReturnsNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeCourseRepo(), validator.New(), zap.NewNop())

	_, err := svc.Update(context.Background(), 42, UpdateStudentRequest{
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@b.com",
		PhoneNumber: "1",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceListFiltersByLastName(t *testing.T) {
	repo := newFakeStudentRepo(
		testStudent(1, "Sharma", "a@example.com"),
		testStudent(2, "Patel", "b@example.com"),
		testStudent(3, "Sharmila", "c@example.com"),
	)
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	students, err := svc.List(context.Background(), "sharm")
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, 1, students[0].ID)
	assert.Equal(t, 3, students[1].ID)
}

func TestStudentServiceListDegradesToEmptyOnStoreFailure(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.err = errors.New("backend down")
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	students, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestStudentServiceGetByEmail(t *testing.T) {
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "rahul@example.com"))
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	student, err := svc.GetByEmail(context.Background(), "RAHUL@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, 1, student.ID)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceByCourse(t *testing.T) {
	courses := newFakeCourseRepo(models.Course{ID: 2, Code: "IT201", Name: "DSA", Status: models.StatusActive})
	repo := newFakeStudentRepo(
		testStudent(1, "Sharma", "a@example.com", 2),
		testStudent(2, "Patel", "b@example.com"),
		testStudent(3, "Singh", "c@example.com", 1, 2),
	)
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	summaries, err := svc.ByCourse(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].ID)
	assert.Equal(t, 3, summaries[1].ID)

	_, err = svc.ByCourse(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceEnroll(t *testing.T) {
	courses := newFakeCourseRepo(models.Course{ID: 1, Code: "IT101", Name: "Intro", Capacity: 2, Status: models.StatusActive})
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "a@example.com"))
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	updated, err := svc.Enroll(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, updated.EnrolledCourseIDs)
}

func TestStudentServiceEnrollRejectsDuplicate(t *testing.T) {
	courses := newFakeCourseRepo(models.Course{ID: 1, Code: "IT101", Name: "Intro", Status: models.StatusActive})
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "a@example.com", 1))
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), "already enrolled")
}

func TestStudentServiceEnrollRejectsFullCourse(t *testing.T) {
	courses := newFakeCourseRepo(models.Course{ID: 1, Code: "IT101", Name: "Intro", Capacity: 2, Status: models.StatusActive})
	repo := newFakeStudentRepo(
		testStudent(1, "Sharma", "a@example.com", 1),
		testStudent(2, "Patel", "b@example.com", 1),
		testStudent(3, "Singh", "c@example.com"),
	)
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), 3, 1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), "maximum capacity")
}

func TestStudentServiceWithdraw(t *testing.T) {
	courses := newFakeCourseRepo(models.Course{ID: 1, Code: "IT101", Name: "Intro", Status: models.StatusActive})
	repo := newFakeStudentRepo(testStudent(1, "Sharma", "a@example.com", 1, 2))
	svc := NewStudentService(repo, courses, validator.New(), zap.NewNop())

	updated, err := svc.Withdraw(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, updated.EnrolledCourseIDs)

	_, err = svc.Withdraw(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), "not enrolled")
}

func TestStudentServiceWriteFailuresSurfaceAsStoreUnavailable(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.err = errors.New("backend down")
	svc := NewStudentService(repo, newFakeCourseRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@b.com",
		PhoneNumber: "1",
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrStoreUnavailable))

	err = svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrStoreUnavailable))
}
