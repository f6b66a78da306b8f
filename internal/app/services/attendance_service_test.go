package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitk/attendance/internal/app/models/dto"
	"github.com/amitk/attendance/internal/pkg/apperrors"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateLogUnknownStudent(t *testing.T) {
	attendanceRepo := &stubAttendanceRepo{}
	svc := NewAttendanceService(
		attendanceRepo,
		&stubStudentRepo{existing: map[int64]bool{}},
		&stubCourseRepo{existing: map[int64]bool{1: true}},
	)

	_, err := svc.CreateLog(context.Background(), &dto.CreateAttendanceLogRequest{
		StudentID:   99,
		CourseID:    1,
		Present:     boolPtr(true),
		SubmittedBy: "amit",
	})

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, attendanceRepo.created, "nothing may be persisted when a reference fails")
}

func TestCreateLogUnknownCourse(t *testing.T) {
	attendanceRepo := &stubAttendanceRepo{}
	svc := NewAttendanceService(
		attendanceRepo,
		&stubStudentRepo{existing: map[int64]bool{1: true}},
		&stubCourseRepo{existing: map[int64]bool{}},
	)

	_, err := svc.CreateLog(context.Background(), &dto.CreateAttendanceLogRequest{
		StudentID:   1,
		CourseID:    99,
		Present:     boolPtr(true),
		SubmittedBy: "amit",
	})

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, attendanceRepo.created)
}

func TestCreateLogPresentFalse(t *testing.T) {
	attendanceRepo := &stubAttendanceRepo{}
	svc := NewAttendanceService(
		attendanceRepo,
		&stubStudentRepo{existing: map[int64]bool{1: true}},
		&stubCourseRepo{existing: map[int64]bool{2: true}},
	)

	log, err := svc.CreateLog(context.Background(), &dto.CreateAttendanceLogRequest{
		StudentID:   1,
		CourseID:    2,
		Present:     boolPtr(false),
		SubmittedBy: "amit",
	})
	require.NoError(t, err)

	assert.False(t, log.Present, "an explicit absence must be recorded as false")
	assert.Len(t, attendanceRepo.created, 1)
}

func TestCreateCourseUnknownDepartment(t *testing.T) {
	courseRepo := &stubCourseRepo{}
	svc := NewCourseService(courseRepo, &stubDepartmentRepo{existing: map[int64]bool{}})

	_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		CourseName:   "Algorithms",
		DepartmentID: 5,
		SubmittedBy:  "amit",
	})

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.Empty(t, courseRepo.created)
}

func TestCreateStudentUnknownDepartment(t *testing.T) {
	studentRepo := &stubStudentRepo{}
	svc := NewStudentService(studentRepo, &stubDepartmentRepo{existing: map[int64]bool{}})

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName:     "Ravi Sharma",
		DepartmentID: 5,
		SubmittedBy:  "amit",
	})

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.Empty(t, studentRepo.created)
}

func TestCreateStudentValidDepartment(t *testing.T) {
	studentRepo := &stubStudentRepo{}
	svc := NewStudentService(studentRepo, &stubDepartmentRepo{existing: map[int64]bool{5: true}})

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName:     "Ravi Sharma",
		DepartmentID: 5,
		Class:        "A",
		SubmittedBy:  "amit",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), student.DepartmentID)
	assert.Len(t, studentRepo.created, 1)
}
