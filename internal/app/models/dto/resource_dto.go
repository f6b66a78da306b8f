package dto

import "time"

// CreateUserRequest represents the token-gated user creation payload.
// The password is hashed before persistence, same as registration.
type CreateUserRequest struct {
	Type        string `json:"type" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	SubmittedBy string `json:"submitted_by" binding:"required"`
	UpdatedBy   string `json:"updated_by"`
}

// CreateDepartmentRequest represents the department creation payload
type CreateDepartmentRequest struct {
	DepartmentName string     `json:"department_name" binding:"required" example:"CS"`
	SubmittedBy    string     `json:"submitted_by" binding:"required" example:"amit"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// CreateCourseRequest represents the course creation payload
type CreateCourseRequest struct {
	CourseName   string     `json:"course_name" binding:"required"`
	DepartmentID int64      `json:"department_id" binding:"required,min=1"`
	Semester     string     `json:"semester"`
	Class        string     `json:"class"`
	LectureHours int        `json:"lecture_hours"`
	SubmittedBy  string     `json:"submitted_by" binding:"required"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// CreateStudentRequest represents the student creation payload
type CreateStudentRequest struct {
	FullName     string     `json:"full_name" binding:"required"`
	DepartmentID int64      `json:"department_id" binding:"required,min=1"`
	Class        string     `json:"class"`
	SubmittedBy  string     `json:"submitted_by" binding:"required"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// CreateAttendanceLogRequest represents the attendance log creation
// payload. Present is a pointer so an explicit false still passes the
// required check.
type CreateAttendanceLogRequest struct {
	StudentID   int64  `json:"student_id" binding:"required,min=1"`
	CourseID    int64  `json:"course_id" binding:"required,min=1"`
	Present     *bool  `json:"present" binding:"required"`
	SubmittedBy string `json:"submitted_by" binding:"required"`
	UpdatedBy   string `json:"updated_by"`
}
