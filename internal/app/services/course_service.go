package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/app/models/dto"
	"github.com/amitk/attendance/internal/app/repositories"
	"github.com/amitk/attendance/internal/pkg/apperrors"
)

// courseService implements CourseService
type courseService struct {
	courseRepo     repositories.ICourseRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, departmentRepo repositories.IDepartmentRepository) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateCourse persists a new course after resolving its department
// reference. An unresolved department is rejected, never inserted as an
// orphan.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.departmentRepo.Exists(ctx, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking department reference: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	updatedAt := time.Now()
	if req.UpdatedAt != nil {
		updatedAt = *req.UpdatedAt
	}

	course := &models.Course{
		CourseName:   req.CourseName,
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
		Class:        req.Class,
		LectureHours: req.LectureHours,
		SubmittedBy:  req.SubmittedBy,
		UpdatedAt:    updatedAt,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllCourses returns all courses
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}
