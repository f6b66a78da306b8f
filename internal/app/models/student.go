package models

import "time"

// Student defines the student model based on the 'students' table.
type Student struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	Class        string    `json:"class" db:"class_name"`
	SubmittedBy  string    `json:"submitted_by" db:"submitted_by"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
