package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	CourseName   string    `json:"course_name" db:"course_name"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	Semester     string    `json:"semester" db:"semester"`
	Class        string    `json:"class" db:"class_name"`
	LectureHours int       `json:"lecture_hours" db:"lecture_hours"`
	SubmittedBy  string    `json:"submitted_by" db:"submitted_by"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
