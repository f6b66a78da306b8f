package services

import (
	"context"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/app/models/dto"
)

// Service interfaces consumed by the controllers. Constructors in this
// package return the concrete implementations.

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// UserService handles token-gated user operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// DepartmentService handles department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
}

// CourseService handles course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
}

// StudentService handles student operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// AttendanceService handles attendance log operations
type AttendanceService interface {
	CreateLog(ctx context.Context, req *dto.CreateAttendanceLogRequest) (*models.AttendanceLog, error)
	GetAllLogs(ctx context.Context) ([]*models.AttendanceLog, error)
}
