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

// studentService implements StudentService
type studentService struct {
	studentRepo    repositories.IStudentRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, departmentRepo repositories.IDepartmentRepository) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateStudent persists a new student after resolving its department
// reference.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
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

	student := &models.Student{
		FullName:     req.FullName,
		DepartmentID: req.DepartmentID,
		Class:        req.Class,
		SubmittedBy:  req.SubmittedBy,
		UpdatedAt:    updatedAt,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents returns all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}
