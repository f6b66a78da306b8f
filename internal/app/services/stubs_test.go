package services

import (
	"context"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/pkg/apperrors"
)

// In-memory repository stubs. Each one keeps just enough state to drive
// the service under test without a database.

type stubUserRepo struct {
	users      map[string]*models.User
	nextID     int64
	createErr  error
	createdVia []*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (r *stubUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[user.Username] = &stored
	r.createdVia = append(r.createdVia, &stored)
	return id, nil
}

func (r *stubUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetAllUsers(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubDepartmentRepo struct {
	existing map[int64]bool
	created  []*models.Department
}

func (r *stubDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	department.ID = int64(len(r.created) + 1)
	r.created = append(r.created, department)
	return nil
}

func (r *stubDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	return r.created, nil
}

func (r *stubDepartmentRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.existing[id], nil
}

type stubCourseRepo struct {
	existing map[int64]bool
	created  []*models.Course
}

func (r *stubCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = int64(len(r.created) + 1)
	r.created = append(r.created, course)
	return nil
}

func (r *stubCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	return r.created, nil
}

func (r *stubCourseRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.existing[id], nil
}

type stubStudentRepo struct {
	existing map[int64]bool
	created  []*models.Student
}

func (r *stubStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = int64(len(r.created) + 1)
	r.created = append(r.created, student)
	return nil
}

func (r *stubStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	return r.created, nil
}

func (r *stubStudentRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.existing[id], nil
}

type stubAttendanceRepo struct {
	created []*models.AttendanceLog
}

func (r *stubAttendanceRepo) Create(_ context.Context, log *models.AttendanceLog) error {
	log.ID = int64(len(r.created) + 1)
	r.created = append(r.created, log)
	return nil
}

func (r *stubAttendanceRepo) GetAll(_ context.Context) ([]*models.AttendanceLog, error) {
	return r.created, nil
}
