package models

import "time"

// AttendanceLog records one attendance decision for one student in one
// course. Rows are append-only.
type AttendanceLog struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	Present     bool      `json:"present" db:"present"`
	SubmittedBy string    `json:"submitted_by" db:"submitted_by"`
	UpdatedBy   string    `json:"updated_by" db:"updated_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
