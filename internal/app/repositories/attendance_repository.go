package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/pkg/apperrors"
	"github.com/amitk/attendance/internal/pkg/dberrors"
)

// IAttendanceRepository defines the interface for attendance log database operations
type IAttendanceRepository interface {
	Create(ctx context.Context, log *models.AttendanceLog) error
	GetAll(ctx context.Context) ([]*models.AttendanceLog, error)
}

// AttendanceRepository handles database operations for attendance logs
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create appends an attendance log row
func (r *AttendanceRepository) Create(ctx context.Context, log *models.AttendanceLog) error {
	query := `
		INSERT INTO attendance_logs (student_id, course_id, present, submitted_by, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		log.StudentID,
		log.CourseID,
		log.Present,
		log.SubmittedBy,
		log.UpdatedBy,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		// The FK constraints are the authority; the service existence
		// checks only narrow the race window.
		switch {
		case dberrors.IsForeignKeyViolationOn(err, "attendance_logs_student_id_fkey"):
			return apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyViolationOn(err, "attendance_logs_course_id_fkey"):
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating attendance log: %w", err)
	}

	return nil
}

// GetAll retrieves all attendance logs ordered by id
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.AttendanceLog, error) {
	query := `
		SELECT id, student_id, course_id, present, submitted_by, updated_by, created_at
		FROM attendance_logs
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AttendanceLog
	for rows.Next() {
		var log models.AttendanceLog
		if err := rows.Scan(
			&log.ID,
			&log.StudentID,
			&log.CourseID,
			&log.Present,
			&log.SubmittedBy,
			&log.UpdatedBy,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
