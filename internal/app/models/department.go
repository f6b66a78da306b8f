package models

import "time"

// Department is a leaf entity referenced by students and courses.
type Department struct {
	ID             int64     `json:"id" db:"id"`
	DepartmentName string    `json:"department_name" db:"department_name"`
	SubmittedBy    string    `json:"submitted_by" db:"submitted_by"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
