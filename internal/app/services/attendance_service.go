package services

import (
	"context"
	"fmt"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/app/models/dto"
	"github.com/amitk/attendance/internal/app/repositories"
	"github.com/amitk/attendance/internal/pkg/apperrors"
)

// attendanceService implements AttendanceService
type attendanceService struct {
	attendanceRepo repositories.IAttendanceRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo repositories.IAttendanceRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// CreateLog appends one attendance decision. Both the student and the
// course reference must resolve before anything is written.
func (s *attendanceService) CreateLog(ctx context.Context, req *dto.CreateAttendanceLogRequest) (*models.AttendanceLog, error) {
	exists, err := s.studentRepo.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student reference: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	exists, err = s.courseRepo.Exists(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course reference: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	log := &models.AttendanceLog{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		Present:     *req.Present,
		SubmittedBy: req.SubmittedBy,
		UpdatedBy:   req.UpdatedBy,
	}

	if err := s.attendanceRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

// GetAllLogs returns all attendance logs
func (s *attendanceService) GetAllLogs(ctx context.Context) ([]*models.AttendanceLog, error) {
	return s.attendanceRepo.GetAll(ctx)
}
